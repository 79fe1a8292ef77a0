package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/creatorlab/creator-backend/internal/common"
	"github.com/creatorlab/creator-backend/internal/domain"
	"github.com/creatorlab/creator-backend/internal/middleware"
	"github.com/creatorlab/creator-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ContentHandler serves one content type's endpoints. The same
// handler code runs for all types; routes bind an instance per
// registry entry.
type ContentHandler struct {
	svc *service.ContentService
	ct  *domain.ContentType
}

// NewContentHandler creates a handler bound to a content type.
func NewContentHandler(svc *service.ContentService, ct *domain.ContentType) *ContentHandler {
	return &ContentHandler{svc: svc, ct: ct}
}

// List handles GET /api/<type>?status=
func (h *ContentHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	items, err := h.svc.List(h.ct, userID, c.Query("status"))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch "+h.ct.Slug, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get handles GET /api/<type>/:id
func (h *ContentHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid id", err)
		return
	}

	item, err := h.svc.Get(h.ct, userID, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, h.notFoundMessage(), nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch "+h.ct.Name, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create handles POST /api/<type>
func (h *ContentHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	in := service.CreateInput{Params: body}
	if v, ok := body["aiOutput"].(string); ok {
		in.AIOutput = v
	}
	if v, ok := body["status"].(string); ok {
		in.Status = v
	}
	if raw, ok := body["scheduledAt"]; ok {
		ts, err := parseScheduledAt(raw)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid scheduledAt", err)
			return
		}
		in.ScheduledAt = ts
	}

	item, err := h.svc.Create(h.ct, userID, in)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create "+h.ct.Name, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Generate handles POST /api/<type>/generate. Nothing is persisted;
// the response carries only the generated text.
func (h *ContentHandler) Generate(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	start := time.Now()
	text, err := h.svc.Generate(c.Request.Context(), h.ct, body)
	middleware.ObserveGeneration(h.ct.Slug, time.Since(start))
	if err != nil {
		// Upstream failures and everything else surface the same way;
		// the status code from an APIError stays in the server log.
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to generate "+h.ct.Name, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"aiOutput": text})
}

// Update handles PUT /api/<type>/:id with a partial merge.
func (h *ContentHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid id", err)
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	in := service.UpdateInput{Params: body}
	if v, ok := body["aiOutput"].(string); ok {
		in.AIOutput = &v
	}
	if v, ok := body["status"].(string); ok {
		in.Status = &v
	}
	if raw, ok := body["scheduledAt"]; ok {
		ts, err := parseScheduledAt(raw)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid scheduledAt", err)
			return
		}
		in.ScheduledAt = ts
		in.ScheduledAtSet = true
	}

	item, err := h.svc.Update(h.ct, userID, id, in)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, h.notFoundMessage(), nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update "+h.ct.Name, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/<type>/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid id", err)
		return
	}

	if err := h.svc.Remove(h.ct, userID, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, h.notFoundMessage(), nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete "+h.ct.Name, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": capitalize(h.ct.Name) + " deleted successfully"})
}

func (h *ContentHandler) notFoundMessage() string {
	return capitalize(h.ct.Name) + " not found"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// parseScheduledAt accepts null or an RFC3339 timestamp string.
func parseScheduledAt(raw interface{}) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, common.ErrInvalidInput
	}
	if s == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
