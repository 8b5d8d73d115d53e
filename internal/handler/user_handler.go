package handler

import (
	"errors"
	"net/http"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/common"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/middleware"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/service"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user profile HTTP requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetProfile handles GET /api/users/:uid
// @Summary Public profile of a user
// @Tags users
// @Produce json
// @Param uid path string true "user uid"
// @Success 200 {object} common.APIResponse{data=domain.UserResponse}
// @Security BearerAuth
// @Router /users/{uid} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid := c.Param("uid")

	user, err := h.service.GetProfile(uid)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "User not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: user})
}

// UpdateProfile handles PATCH /api/users/me
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body domain.UpdateProfileRequest true "fields to update"
// @Success 200 {object} common.APIResponse{data=domain.UserResponse}
// @Security BearerAuth
// @Router /users/me [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid := middleware.GetUID(c)

	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.service.UpdateProfile(uid, &req)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "User not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update profile", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: user})
}

// CheckUsername handles POST /api/users/check-username
// @Summary Check whether a username is available
// @Tags users
// @Accept json
// @Produce json
// @Param request body domain.CheckUsernameRequest true "username to check"
// @Success 200 {object} common.APIResponse
// @Router /users/check-username [post]
func (h *UserHandler) CheckUsername(c *gin.Context) {
	var req domain.CheckUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	available, err := h.service.CheckUsername(req.Username)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to check username", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"available": available}})
}

// RecoverUsername handles POST /api/users/recover-username.
// Always responds success so the endpoint cannot be used to probe
// which emails are registered.
// @Summary Recover username by campus email
// @Tags users
// @Accept json
// @Produce json
// @Param request body domain.RecoverUsernameRequest true "registered email"
// @Success 200 {object} common.APIResponse
// @Router /users/recover-username [post]
func (h *UserHandler) RecoverUsername(c *gin.Context) {
	var req domain.RecoverUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.service.RecoverUsername(req.Email)

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"success": true}})
}

// ListAll handles GET /api/users
// @Summary List all users (admin)
// @Tags admin
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.UserResponse}
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListAll(c *gin.Context) {
	users, err := h.service.ListAll()
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list users", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: users})
}

// SetSuspended handles PATCH /api/users/:uid/blacklist
// @Summary Suspend or reinstate a user (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param uid path string true "user uid"
// @Param request body domain.SetSuspendedRequest true "suspension flag"
// @Success 200 {object} common.APIResponse
// @Security BearerAuth
// @Router /users/{uid}/blacklist [patch]
func (h *UserHandler) SetSuspended(c *gin.Context) {
	uid := c.Param("uid")

	var req domain.SetSuspendedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.service.SetSuspended(uid, *req.IsSuspended); err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "User not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update user", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"success": true}})
}
