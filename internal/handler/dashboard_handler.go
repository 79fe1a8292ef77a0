package handler

import (
	"net/http"

	"github.com/creatorlab/creator-backend/internal/common"
	"github.com/creatorlab/creator-backend/internal/middleware"
	"github.com/creatorlab/creator-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the cross-type aggregate views.
type DashboardHandler struct {
	svc *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats handles GET /api/dashboard/stats
// @Summary      Record counts per content type
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} service.TypeCount
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID := middleware.GetUserID(c)
	stats, err := h.svc.Stats(c.Request.Context(), userID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Schedule handles GET /api/dashboard/schedule
// @Summary      Scheduled records across all content types
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} service.ScheduleItem
// @Router       /api/dashboard/schedule [get]
func (h *DashboardHandler) Schedule(c *gin.Context) {
	userID := middleware.GetUserID(c)
	items, err := h.svc.Schedule(userID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch schedule", err)
		return
	}
	if items == nil {
		items = []service.ScheduleItem{}
	}
	c.JSON(http.StatusOK, items)
}
