package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Widget page and chart frame
	app.router.GET("/", app.handleIndex)
	app.router.GET("/chart", app.handleGetChart)

	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Widget endpoints
	api := app.router.Group("/api")
	api.POST("/search", app.handleSearch)
	api.GET("/status", app.handleGetStatus)
	api.GET("/searches", app.handleListSearches)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
