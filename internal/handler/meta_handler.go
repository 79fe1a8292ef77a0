package handler

import (
	"net/http"
	"time"

	"github.com/creatorlab/creator-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// Health handles GET /api/health. No authentication.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "creator-backend",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ContentTypes handles GET /api/content-types: the registry of field
// descriptors the form layer renders from.
func ContentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Registry())
}
