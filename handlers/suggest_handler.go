package handlers

import (
	"LocalPicks/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSuggestRoutes(router *gin.RouterGroup, suggestController *controllers.SuggestController) {
	suggestGroup := router.Group("/suggest")
	{
		suggestGroup.GET("/", suggestController.GetSuggestions)
	}
}
