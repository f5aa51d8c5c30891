// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/machineryhub/b2b-backend/internal/catalog"
	"github.com/machineryhub/b2b-backend/internal/handlers"
	"github.com/machineryhub/b2b-backend/internal/middleware"
	"github.com/machineryhub/b2b-backend/internal/observability"
)

func Initialize(service *catalog.Service, log *logrus.Logger) *gin.Engine {
	catalogHandler := handlers.NewCatalogHandler(service)

	observability.Register()

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	r.GET("/metrics", observability.MetricsHandler())

	api := r.Group("/api")
	{
		api.GET("/products", catalogHandler.ListProducts)
		api.GET("/products/:id", catalogHandler.GetProduct)
		api.POST("/contact", catalogHandler.ContactSupplier)
		api.POST("/scrape", middleware.ScrapeRateLimit(), catalogHandler.ScrapeProducts)
		api.GET("/stats", catalogHandler.GetStats)
	}

	return r
}
