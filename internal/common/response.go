package common

import (
	"github.com/creatorlab/creator-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ErrorResponse writes the uniform error body {"error": message}.
// The message is a fixed per-operation string; err carries the
// internal detail and is logged server-side only, never returned to
// the caller.
func ErrorResponse(c *gin.Context, status int, message string, err error) {
	if err != nil {
		logger.GetLogger().Error().
			Err(err).
			Int("status", status).
			Str("path", c.Request.URL.Path).
			Msg(message)
	}
	c.JSON(status, gin.H{"error": message})
}
