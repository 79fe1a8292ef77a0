package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/creatorlab/creator-backend/internal/domain"
	"github.com/creatorlab/creator-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// --- Mocks ---

type mockContentRepo struct {
	mock.Mock
}

func (m *mockContentRepo) ListByOwner(table string, userID uint64, status domain.Status) ([]*domain.ContentRecord, error) {
	args := m.Called(table, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ContentRecord), args.Error(1)
}

func (m *mockContentRepo) FindByOwnerAndID(table string, userID, id uint64) (*domain.ContentRecord, error) {
	args := m.Called(table, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentRecord), args.Error(1)
}

func (m *mockContentRepo) CountByOwner(table string, userID uint64) (int64, error) {
	args := m.Called(table, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockContentRepo) Create(table string, rec *domain.ContentRecord) error {
	return m.Called(table, rec).Error(0)
}

func (m *mockContentRepo) Save(table string, rec *domain.ContentRecord) error {
	return m.Called(table, rec).Error(0)
}

func (m *mockContentRepo) Delete(table string, userID, id uint64) error {
	return m.Called(table, userID, id).Error(0)
}

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

// --- Setup ---

func setupContentRouter(repo *mockContentRepo, gen service.Generator, userID uint64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewContentService(repo, gen)
	ct, _ := domain.TypeBySlug("titles")
	h := NewContentHandler(svc, ct)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", userID)
	})
	r.GET("/api/titles", h.List)
	r.GET("/api/titles/:id", h.Get)
	r.POST("/api/titles", h.Create)
	r.POST("/api/titles/generate", h.Generate)
	r.PUT("/api/titles/:id", h.Update)
	r.DELETE("/api/titles/:id", h.Delete)
	return r
}

// --- Tests ---

func TestList_EmptyReturnsJSONArray(t *testing.T) {
	repo := new(mockContentRepo)
	repo.On("ListByOwner", "titles", uint64(1), domain.Status("")).
		Return([]*domain.ContentRecord{}, nil)
	r := setupContentRouter(repo, nil, 1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/titles", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestList_StatusQueryPassedThrough(t *testing.T) {
	repo := new(mockContentRepo)
	repo.On("ListByOwner", "titles", uint64(1), domain.StatusDraft).
		Return([]*domain.ContentRecord{}, nil)
	r := setupContentRouter(repo, nil, 1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/titles?status=draft", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestGet_InvalidID(t *testing.T) {
	r := setupContentRouter(new(mockContentRepo), nil, 1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/titles/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid id"}`, w.Body.String())
}

func TestGet_NotOwned(t *testing.T) {
	repo := new(mockContentRepo)
	repo.On("FindByOwnerAndID", "titles", uint64(1), uint64(9)).
		Return(nil, gorm.ErrRecordNotFound)
	r := setupContentRouter(repo, nil, 1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/titles/9", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Title not found"}`, w.Body.String())
}

func TestCreate_FlattenedRecordReturned(t *testing.T) {
	repo := new(mockContentRepo)
	repo.On("Create", "titles", mock.AnythingOfType("*domain.ContentRecord")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.ContentRecord).ID = 11
		}).
		Return(nil)
	r := setupContentRouter(repo, nil, 1)

	body, _ := json.Marshal(map[string]any{
		"topic":    "cats",
		"platform": "YouTube",
		"style":    "Clickbait",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/titles", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var out map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, float64(11), out["id"])
	assert.Equal(t, "cats", out["topic"])
	assert.Equal(t, "draft", out["status"])
}

func TestGenerate_ReturnsAIOutputOnly(t *testing.T) {
	repo := new(mockContentRepo)
	r := setupContentRouter(repo, &stubGenerator{text: "5 great titles"}, 1)

	body, _ := json.Marshal(map[string]any{"topic": "cats"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/titles/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"aiOutput":"5 great titles"}`, w.Body.String())
	// Generation never touches the store.
	repo.AssertExpectations(t)
}

func TestGenerate_UpstreamFailure(t *testing.T) {
	r := setupContentRouter(new(mockContentRepo), &stubGenerator{err: assert.AnError}, 1)

	body, _ := json.Marshal(map[string]any{"topic": "cats"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/titles/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to generate title"}`, w.Body.String())
}

func TestDelete_Confirmation(t *testing.T) {
	repo := new(mockContentRepo)
	repo.On("FindByOwnerAndID", "titles", uint64(1), uint64(5)).
		Return(&domain.ContentRecord{ID: 5, UserID: 1}, nil)
	repo.On("Delete", "titles", uint64(1), uint64(5)).Return(nil)
	r := setupContentRouter(repo, nil, 1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/titles/5", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Title deleted successfully"}`, w.Body.String())
}

func TestUpdate_NotOwned(t *testing.T) {
	repo := new(mockContentRepo)
	repo.On("FindByOwnerAndID", "titles", uint64(1), uint64(5)).
		Return(nil, gorm.ErrRecordNotFound)
	r := setupContentRouter(repo, nil, 1)

	body, _ := json.Marshal(map[string]any{"topic": "dogs"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/titles/5", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Title not found"}`, w.Body.String())
}
