package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rmccall/shelftrack-golang/internal/auth"
)

// CredentialsInput is the JSON body for both register and login. It is
// separate from models.User because we never accept an id or a hash
// from the client.
type CredentialsInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register is the handler for POST /v1/register.
func (h *Handlers) Register(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := h.Users.Register(input.Username, input.Password)
	if err != nil {
		// Blank-after-trim username lands here too; the store never
		// echoes the password back in either case.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Registration failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Username is already taken"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login is the handler for POST /v1/login. Unknown usernames and wrong
// passwords produce the identical response, so the endpoint cannot be
// used to enumerate accounts.
func (h *Handlers) Login(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := h.Users.Authenticate(input.Username, input.Password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	var userID int64
	if err := h.DB.QueryRow("SELECT id FROM users WHERE username = ?", strings.TrimSpace(input.Username)).Scan(&userID); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := auth.GenerateToken(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}
