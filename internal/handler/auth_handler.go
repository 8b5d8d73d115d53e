package handler

import (
	"errors"
	"net/http"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/common"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/middleware"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// InitiateSignup handles POST /api/auth/initiate-signup
// @Summary Start signup by issuing a verification token to a campus email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.InitiateSignupRequest true "campus email"
// @Success 200 {object} common.APIResponse
// @Router /auth/initiate-signup [post]
func (h *AuthHandler) InitiateSignup(c *gin.Context) {
	var req service.InitiateSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.service.InitiateSignup(req.Email); err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidEmailDomain):
			common.ErrorResponse(c, http.StatusBadRequest, "Only campus email addresses are allowed", err)
		case errors.Is(err, common.ErrUserAlreadyExists):
			common.ErrorResponse(c, http.StatusConflict, "An account with this email already exists", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to initiate signup", err)
		}
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"success": true}})
}

// VerifyToken handles POST /api/auth/verify-token
// @Summary Check a pending verification token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.VerifyTokenRequest true "email and token"
// @Success 200 {object} common.APIResponse
// @Router /auth/verify-token [post]
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	var req service.VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.service.VerifyToken(req.Email, req.Token); err != nil {
		if errors.Is(err, common.ErrInvalidToken) {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid or expired verification token", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to verify token", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"valid": true}})
}

// CompleteSignup handles POST /api/auth/complete-signup
// @Summary Finish registration and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.CompleteSignupRequest true "signup payload"
// @Success 200 {object} common.APIResponse{data=service.LoginResponse}
// @Router /auth/complete-signup [post]
func (h *AuthHandler) CompleteSignup(c *gin.Context) {
	var req service.CompleteSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.service.CompleteSignup(&req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidToken):
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid or expired verification token", err)
		case errors.Is(err, common.ErrUserAlreadyExists):
			common.ErrorResponse(c, http.StatusConflict, "Email or username already taken", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to complete signup", err)
		}
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: result})
}

// Login handles POST /api/auth/login
// @Summary Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "credentials"
// @Success 200 {object} common.APIResponse{data=service.LoginResponse}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			common.ErrorResponse(c, http.StatusUnauthorized, "Invalid email or password", err)
		case errors.Is(err, common.ErrAccountSuspended):
			common.ErrorResponse(c, http.StatusForbidden, "This account has been suspended", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to log in", err)
		}
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: result})
}

// Me handles GET /api/auth/me
// @Summary Current authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} common.APIResponse{data=domain.UserResponse}
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	uid := middleware.GetUID(c)

	user, err := h.service.Me(uid)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "User not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load user", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: user})
}
