package controllers

import (
	"LocalPicks/services"
	"LocalPicks/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SuggestController struct {
	SuggestService *services.SuggestService
}

func NewSuggestController(provider services.PlacesProvider) *SuggestController {
	return &SuggestController{
		SuggestService: services.NewSuggestService(provider),
	}
}

func (sc *SuggestController) GetSuggestions(c *gin.Context) {
	query := c.Query("q")

	// A bad limit is not worth a 400 on a typeahead path; fall back to the
	// default instead.
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	suggestions := sc.SuggestService.GetSuggestions(c, query, limit)

	utils.SuccessResponse(c, http.StatusOK, "Suggestions fetched successfully", suggestions)
}
