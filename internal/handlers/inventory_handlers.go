package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rmccall/shelftrack-golang/internal/display"
	"github.com/rmccall/shelftrack-golang/internal/store"
)

// InventoryItemInput defines the JSON input for creating or updating
// an inventory item. CategoryID zero or negative means "no category";
// a negative quantity is accepted and clamped by the store.
type InventoryItemInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	CategoryID  int64  `json:"categoryId"`
	Quantity    int    `json:"quantity"`
}

// QuantityInput defines the JSON input for a quantity-only update.
type QuantityInput struct {
	Quantity int `json:"quantity"`
}

// CreateInventoryItem is the handler for POST /v1/inventory. The
// success message is the caller's toast text; the core itself sends no
// notifications.
func (h *Handlers) CreateInventoryItem(c *gin.Context) {
	var input InventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Inventory.AddItem(input.Title, input.Description, input.CategoryID, input.Quantity)
	if err != nil {
		if errors.Is(err, store.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add inventory item"})
		return
	}

	if err := h.refreshDisplay(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh display data"})
		return
	}

	item, _ := h.Display.Lookup(id)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Item added successfully!",
		"item":    item,
	})
}

// GetAllInventoryItems is the handler for GET /v1/inventory
func (h *Handlers) GetAllInventoryItems(c *gin.Context) {
	items, err := h.Inventory.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetInventoryByCategory is the handler for GET /v1/inventory/category/:id
func (h *Handlers) GetInventoryByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	items, err := h.Inventory.ListByCategory(categoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// UpdateInventoryItem is the handler for PUT /v1/inventory/:id
func (h *Handlers) UpdateInventoryItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var input InventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Inventory.UpdateItem(id, input.Title, input.Description, input.CategoryID, input.Quantity)
	if err != nil {
		if errors.Is(err, store.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inventory item"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	if err := h.refreshDisplay(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh display data"})
		return
	}

	item, _ := h.Display.Lookup(id)
	c.JSON(http.StatusOK, gin.H{
		"message": "Item updated successfully",
		"item":    item,
	})
}

// UpdateItemQuantity is the handler for PATCH /v1/inventory/:id/quantity
func (h *Handlers) UpdateItemQuantity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var input QuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Inventory.UpdateQuantity(id, input.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quantity"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	if err := h.refreshDisplay(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh display data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quantity updated"})
}

// DeleteInventoryItem is the handler for DELETE /v1/inventory/:id
func (h *Handlers) DeleteInventoryItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	// Opportunistic O(1) removal from the lookup map; the rebuild
	// below remains the source of truth for both containers.
	h.Display.Remove(id)

	deleted, err := h.Inventory.DeleteItem(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inventory item"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	if err := h.refreshDisplay(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh display data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

// SortInventory is the handler for POST /v1/inventory/sort. It refreshes
// the display index from the store, merge-sorts the ordered sequence by
// title, and returns the sorted snapshot.
func (h *Handlers) SortInventory(c *gin.Context) {
	if err := h.refreshDisplay(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh display data"})
		return
	}

	display.SortByTitle(h.Display.Items())

	c.JSON(http.StatusOK, gin.H{
		"message": "Items sorted by title",
		"items":   h.Display.Items(),
	})
}

// GetInventoryCount is the handler for GET /v1/inventory/count
func (h *Handlers) GetInventoryCount(c *gin.Context) {
	count, err := h.Inventory.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
