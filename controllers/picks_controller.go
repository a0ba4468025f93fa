package controllers

import (
	"LocalPicks/models"
	"LocalPicks/services"
	"LocalPicks/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type PicksController struct {
	PicksService *services.PicksService
}

// NewPicksController initializes PicksController with the shared places
// provider so all request paths reuse one rate limiter and breaker.
func NewPicksController(provider services.PlacesProvider) *PicksController {
	return &PicksController{
		PicksService: services.NewPicksService(provider),
	}
}

func (pc *PicksController) GetPicks(c *gin.Context) {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "location is required")
		return
	}
	cuisine := c.Query("cuisine")

	mode, err := models.ParseMode(c.Query("mode"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	picks, err := pc.PicksService.GetPicks(c, location, cuisine, mode)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Picks fetched successfully", picks)
}
