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

// MessageHandler handles direct message HTTP requests
type MessageHandler struct {
	service service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(service service.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Send handles POST /api/messages
// @Summary Send a direct message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body domain.SendMessageRequest true "message payload"
// @Success 200 {object} common.APIResponse{data=domain.MessageResponse}
// @Security BearerAuth
// @Router /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	uid := middleware.GetUID(c)

	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.service.Send(uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmptyMessage):
			common.ErrorResponse(c, http.StatusBadRequest, "Message body must not be empty", err)
		case errors.Is(err, common.ErrRecipientNotFound):
			common.ErrorResponse(c, http.StatusBadRequest, "Recipient not found", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to send message", err)
		}
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: result})
}

// ListConversations handles GET /api/messages/conversations
// @Summary List conversations, most recent activity first
// @Tags messages
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.ConversationSummary}
// @Security BearerAuth
// @Router /messages/conversations [get]
func (h *MessageHandler) ListConversations(c *gin.Context) {
	uid := middleware.GetUID(c)

	conversations, err := h.service.ListConversations(uid)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list conversations", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: conversations})
}

// UnreadCount handles GET /api/messages/unread-count
// @Summary Unread message total
// @Tags messages
// @Produce json
// @Success 200 {object} common.APIResponse{data=domain.UnreadCountResponse}
// @Security BearerAuth
// @Router /messages/unread-count [get]
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	uid := middleware.GetUID(c)

	count, err := h.service.CountUnread(uid)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to count unread messages", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: domain.UnreadCountResponse{Count: count}})
}

// ListThread handles GET /api/messages/:otherUid
// @Summary Fetch the thread with one user, oldest first
// @Tags messages
// @Produce json
// @Param otherUid path string true "counterpart uid"
// @Success 200 {object} common.APIResponse{data=[]domain.MessageResponse}
// @Security BearerAuth
// @Router /messages/{otherUid} [get]
func (h *MessageHandler) ListThread(c *gin.Context) {
	uid := middleware.GetUID(c)
	otherUID := c.Param("otherUid")

	messages, err := h.service.ListBetween(uid, otherUID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch messages", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: messages})
}

// MarkThreadRead handles PATCH /api/messages/:otherUid/read
// @Summary Mark every message from one counterpart as read
// @Tags messages
// @Produce json
// @Param otherUid path string true "counterpart uid"
// @Success 200 {object} common.APIResponse
// @Security BearerAuth
// @Router /messages/{otherUid}/read [patch]
func (h *MessageHandler) MarkThreadRead(c *gin.Context) {
	uid := middleware.GetUID(c)
	otherUID := c.Param("otherUid")

	if err := h.service.MarkConversationRead(uid, otherUID); err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to mark messages read", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"success": true}})
}
