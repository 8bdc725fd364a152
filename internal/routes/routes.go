package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmccall/shelftrack-golang/internal/handlers"
	"github.com/rmccall/shelftrack-golang/internal/middleware"
)

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		v1.POST("/register", h.Register)
		v1.POST("/login", h.Login)

		// --- Protected Routes (Login Required) ---
		auth := v1.Group("/")
		auth.Use(middleware.AuthMiddleware())
		{
			// --- Category Routes ---
			auth.POST("/categories", h.CreateCategory)
			auth.GET("/categories", h.GetAllCategories)
			auth.DELETE("/categories/:id", h.DeleteCategory)

			// --- Inventory Routes ---
			auth.POST("/inventory", h.CreateInventoryItem)
			auth.GET("/inventory", h.GetAllInventoryItems)
			auth.GET("/inventory/count", h.GetInventoryCount)
			auth.GET("/inventory/category/:id", h.GetInventoryByCategory)
			auth.PUT("/inventory/:id", h.UpdateInventoryItem)
			auth.PATCH("/inventory/:id/quantity", h.UpdateItemQuantity)
			auth.DELETE("/inventory/:id", h.DeleteInventoryItem)
			auth.POST("/inventory/sort", h.SortInventory)

			// --- Legacy Data Routes ---
			auth.POST("/data", h.AddData)
			auth.GET("/data", h.GetAllData)
			auth.DELETE("/data/:id", h.DeleteData)
		}
	}

	return router
}
