package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/teamnest/teamnest-backend/internal/common"
	"github.com/teamnest/teamnest-backend/internal/domain"
	"github.com/teamnest/teamnest-backend/internal/middleware"
	"github.com/teamnest/teamnest-backend/internal/service"
)

// AuthHandler handles authentication API endpoints
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "invalid request body")
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.CreatedResponse(c, user)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "invalid request body")
		return
	}

	tokens, user, err := h.authService.Login(&req)
	if err != nil {
		// credential failures surface as 401 at the transport boundary
		if appErr, ok := common.AsError(err); ok && appErr.Kind == common.KindAuthorization {
			common.ErrorResponse(c, 401, appErr.Message)
			return
		}
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"tokens": tokens, "user": user}, nil)
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "invalid request body")
		return
	}

	tokens, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		if appErr, ok := common.AsError(err); ok && appErr.Kind == common.KindAuthorization {
			common.ErrorResponse(c, 401, appErr.Message)
			return
		}
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, tokens, nil)
}

// Profile handles GET /api/v1/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.authService.GetProfile(middleware.GetUserID(c))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, user, nil)
}
