package handlers

import (
	"LocalPicks/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPicksRoutes(router *gin.RouterGroup, picksController *controllers.PicksController) {
	picksGroup := router.Group("/picks")
	{
		picksGroup.GET("/", picksController.GetPicks)
	}
}
