package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rmccall/shelftrack-golang/internal/models"
	"github.com/rmccall/shelftrack-golang/internal/store"
)

// CreateCategoryInput defines the JSON input for creating a category
type CreateCategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory is the handler for POST /v1/categories
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Categories.Add(input.Name)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidArgument):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category name cannot be empty"})
		case errors.Is(err, store.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category created",
		"category": models.Category{ID: id, Name: input.Name},
	})
}

// GetAllCategories is the handler for GET /v1/categories
func (h *Handlers) GetAllCategories(c *gin.Context) {
	categories, err := h.Categories.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// DeleteCategory is the handler for DELETE /v1/categories/:id. Items
// referencing the category keep existing with a cleared reference, so
// the inventory listing (and the display index) must be refreshed.
func (h *Handlers) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	deleted, err := h.Categories.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	if err := h.refreshDisplay(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh display data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
