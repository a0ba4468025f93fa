package route

import (
	"LocalPicks/controllers"
	"LocalPicks/handlers"
	"LocalPicks/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes initializes all routes. One PlacesService backs every
// controller so the rate limiter, circuit breaker, and caches are shared.
func RegisterRoutes(router *gin.Engine) {
	placesService := services.NewPlacesService()
	picksController := controllers.NewPicksController(placesService)
	suggestController := controllers.NewSuggestController(placesService)

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterPicksRoutes(v1Routes, picksController)
		handlers.RegisterSuggestRoutes(v1Routes, suggestController)

		v1Routes.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"service":              "localpicks",
				"status":               "ok",
				"provider_credentials": placesService.HasCredentials(),
			})
		})
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
