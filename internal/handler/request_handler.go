package handler

import (
	"errors"
	"net/http"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/common"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/middleware"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/service"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// RequestHandler handles service request HTTP requests
type RequestHandler struct {
	service service.RequestService
}

// NewRequestHandler creates a new RequestHandler
func NewRequestHandler(service service.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// Create handles POST /api/requests
// @Summary Request a service from a provider
// @Tags requests
// @Accept json
// @Produce json
// @Param request body domain.CreateRequestRequest true "request payload"
// @Success 200 {object} common.APIResponse{data=domain.RequestResponse}
// @Security BearerAuth
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	uid := middleware.GetUID(c)

	var req domain.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.service.Create(uid, &req)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create request", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: result})
}

// Get handles GET /api/requests/:id
// @Summary Fetch one request; only the seeker or provider may view it
// @Tags requests
// @Produce json
// @Param id path int true "request id"
// @Success 200 {object} common.APIResponse{data=domain.RequestResponse}
// @Security BearerAuth
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	uid := middleware.GetUID(c)

	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request ID", err)
		return
	}

	result, err := h.service.Get(id, uid)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRequestNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Request not found", err)
		case errors.Is(err, common.ErrForbidden):
			common.ErrorResponse(c, http.StatusForbidden, "You are not a party to this request", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load request", err)
		}
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: result})
}
