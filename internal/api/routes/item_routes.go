package routes

import (
	"items-api/internal/api/handlers"
	"items-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterItemRoutes registers all routes related to items. Write routes run
// through their schema validation first.
func RegisterItemRoutes(rg *gin.RouterGroup, itemHandler handlers.ItemHandlerInterface) {
	// Define the sub-group for items (e.g., /api/items)
	items := rg.Group("/items")
	{
		items.GET("", itemHandler.GetItems)
		items.GET("/", itemHandler.GetItems)
		items.POST("", middleware.ValidateItemCreate(), itemHandler.CreateItem)
		items.POST("/", middleware.ValidateItemCreate(), itemHandler.CreateItem)
		items.GET("/:id", itemHandler.GetItemByID)
		items.PUT("/:id", middleware.ValidateItemUpdate(), itemHandler.UpdateItem)
		items.DELETE("/:id", itemHandler.DeleteItem)
	}
}
