package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rmccall/shelftrack-golang/internal/store"
)

// Legacy endpoints preserving the pre-normalization three-field item
// surface. They ride on the same inventory table through the store's
// legacy adapters.

// LegacyDataInput is the old flat item body.
type LegacyDataInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// AddData is the handler for POST /v1/data
func (h *Handlers) AddData(c *gin.Context) {
	var input LegacyDataInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Inventory.AddData(input.Title, input.Description); err != nil {
		if errors.Is(err, store.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add data"})
		return
	}

	if err := h.refreshDisplay(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh display data"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Data added successfully!"})
}

// GetAllData is the handler for GET /v1/data
func (h *Handlers) GetAllData(c *gin.Context) {
	items, err := h.Inventory.AllData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// DeleteData is the handler for DELETE /v1/data/:id
func (h *Handlers) DeleteData(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	h.Display.Remove(id)

	if err := h.Inventory.DeleteData(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete data"})
		return
	}

	if err := h.refreshDisplay(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh display data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data deleted"})
}
