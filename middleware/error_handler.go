package middleware

import (
	"LocalPicks/utils"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware turns errors attached to the context into the shared
// error envelope. CustomError carries its own status; anything else becomes a
// 500.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var customErr *utils.CustomError
		if errors.As(err, &customErr) {
			if customErr.Cause != nil {
				log.Warn().
					Err(customErr.Cause).
					Int("status", customErr.StatusCode).
					Str("path", c.Request.URL.Path).
					Msg("request failed")
			}
			utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
			return
		}

		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
