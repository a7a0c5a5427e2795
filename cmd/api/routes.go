package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	v1 := app.router.Group("/api/v1")
	{
		// Location resolution
		v1.POST("/location/resolve", app.handleResolveLocation)
		v1.GET("/location/geocode", app.handleGeocodeAddress)
		v1.GET("/location/current", app.handleCurrentLocation)

		// Merchants
		v1.GET("/merchants", app.handleListMerchants)
		v1.GET("/merchants/states", app.handleListStates)
		v1.GET("/merchants/nearby", app.handleNearbyMerchants)
		v1.GET("/merchants/:id", app.handleGetMerchant)
	}

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
