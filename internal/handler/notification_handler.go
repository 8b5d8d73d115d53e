package handler

import (
	"net/http"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/common"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/middleware"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/service"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// NotificationHandler handles notification feed HTTP requests
type NotificationHandler struct {
	service service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(service service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List handles GET /api/notifications
// @Summary Recent notifications for the authenticated user, newest first
// @Tags notifications
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.NotificationResponse}
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	uid := middleware.GetUID(c)

	notifications, err := h.service.List(uid)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list notifications", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: notifications})
}

// UnreadCount handles GET /api/notifications/unread-count
// @Summary Unread notification total
// @Tags notifications
// @Produce json
// @Success 200 {object} common.APIResponse{data=domain.UnreadCountResponse}
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	uid := middleware.GetUID(c)

	count, err := h.service.CountUnread(uid)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to count unread notifications", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: domain.UnreadCountResponse{Count: count}})
}

// MarkAsRead handles PATCH /api/notifications/:id/read.
// Succeeds even when the notification does not exist or belongs to
// another user, so ids cannot be probed.
// @Summary Mark one notification as read
// @Tags notifications
// @Produce json
// @Param id path int true "notification id"
// @Success 200 {object} common.APIResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	uid := middleware.GetUID(c)

	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid notification ID", err)
		return
	}

	if err := h.service.MarkAsRead(id, uid); err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to mark notification read", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"success": true}})
}
