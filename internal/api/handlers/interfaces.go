package handlers

import "github.com/gin-gonic/gin"

// ItemHandlerInterface is what RegisterItemRoutes mounts. Route tests pass a
// mock in its place.
type ItemHandlerInterface interface {
	GetItems(c *gin.Context)
	GetItemByID(c *gin.Context)
	CreateItem(c *gin.Context)
	UpdateItem(c *gin.Context)
	DeleteItem(c *gin.Context)
}

var _ ItemHandlerInterface = (*ItemHandler)(nil)
