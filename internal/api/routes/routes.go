package routes

import (
	"items-api/internal/api/handlers"
	"items-api/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	api := router.Group("/api")

	itemHandler := handlers.NewItemHandler(app.ItemRepo)
	RegisterItemRoutes(api, itemHandler)

	// A nil *pgxpool.Pool must not become a non-nil Pinger.
	var db handlers.Pinger
	if app.DBPool != nil {
		db = app.DBPool
	}
	router.GET("/health", handlers.HealthCheck(db))

	logrus.Debug("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
