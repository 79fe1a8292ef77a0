package handler

import (
	"errors"
	"net/http"

	"github.com/creatorlab/creator-backend/internal/common"
	"github.com/creatorlab/creator-backend/internal/middleware"
	"github.com/creatorlab/creator-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/auth/register
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body registerRequest true "registration"
// @Success      201 {object} service.AuthResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Email and password are required", err)
		return
	}

	resp, err := h.authService.Register(req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, common.ErrUserAlreadyExists) {
			common.ErrorResponse(c, http.StatusConflict, "Email already registered", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to register", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body loginRequest true "credentials"
// @Success      200 {object} service.AuthResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Email and password are required", err)
		return
	}

	resp, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			common.ErrorResponse(c, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to log in", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfile handles GET /api/auth/profile
// @Summary      Current account profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} domain.User
// @Router       /api/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	user, err := h.authService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "User not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch profile", err)
		return
	}
	c.JSON(http.StatusOK, user)
}
