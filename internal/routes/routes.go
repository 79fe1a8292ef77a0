package routes

import (
	"github.com/creatorlab/creator-backend/internal/domain"
	"github.com/creatorlab/creator-backend/internal/handler"
	"github.com/creatorlab/creator-backend/internal/middleware"
	"github.com/creatorlab/creator-backend/internal/service"
	"github.com/creatorlab/creator-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// SetupAuth configures authentication routes
func SetupAuth(router *gin.Engine, h *handler.AuthHandler, jwtManager *jwt.Manager) {
	authGroup := router.Group("/api/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)
	authGroup.GET("/profile", middleware.JWTAuth(jwtManager), h.GetProfile)
}

// SetupContent mounts the uniform CRUD+generate routes for every
// registry entry. One handler instance per content type, all running
// the same generic code.
func SetupContent(router *gin.Engine, svc *service.ContentService, jwtManager *jwt.Manager) {
	auth := middleware.JWTAuth(jwtManager)

	for _, ct := range domain.Registry() {
		h := handler.NewContentHandler(svc, ct)

		// Generation persists nothing and is not owner-scoped, so it
		// skips the token check.
		router.POST("/api/"+ct.Slug+"/generate", h.Generate)

		grp := router.Group("/api/"+ct.Slug, auth)
		grp.GET("", h.List)
		grp.GET("/:id", h.Get)
		grp.POST("", h.Create)
		grp.PUT("/:id", h.Update)
		grp.DELETE("/:id", h.Delete)
	}
}

// SetupDashboard configures the aggregate views
func SetupDashboard(router *gin.Engine, h *handler.DashboardHandler, jwtManager *jwt.Manager) {
	auth := middleware.JWTAuth(jwtManager)

	dash := router.Group("/api/dashboard", auth)
	dash.GET("/stats", h.Stats)
	dash.GET("/schedule", h.Schedule)
}

// SetupMeta configures unauthenticated service endpoints
func SetupMeta(router *gin.Engine) {
	router.GET("/api/health", handler.Health)
	router.GET("/api/content-types", handler.ContentTypes)
}
