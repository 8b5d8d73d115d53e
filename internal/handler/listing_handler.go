package handler

import (
	"errors"
	"net/http"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/common"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/middleware"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/repository"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/service"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// ListingHandler handles service listing HTTP requests
type ListingHandler struct {
	service service.ListingService
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(service service.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// List handles GET /api/services
// @Summary Browse approved service listings
// @Tags services
// @Produce json
// @Param category query string false "category filter"
// @Param provider query string false "provider uid filter"
// @Param limit query int false "max results"
// @Success 200 {object} common.APIResponse{data=[]domain.ListingResponse}
// @Router /services [get]
func (h *ListingHandler) List(c *gin.Context) {
	params := &repository.ListingListParams{
		Status:      domain.ListingStatusApproved,
		Category:    c.Query("category"),
		ProviderUID: c.Query("provider"),
		Limit:       ginutil.QueryInt(c, "limit", 0),
	}

	listings, err := h.service.List(params)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list services", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: listings})
}

// ListPending handles GET /api/services/pending
// @Summary List listings awaiting moderation (admin)
// @Tags admin
// @Produce json
// @Success 200 {object} common.APIResponse
// @Security BearerAuth
// @Router /services/pending [get]
func (h *ListingHandler) ListPending(c *gin.Context) {
	params := &repository.ListingListParams{Status: domain.ListingStatusPending}

	listings, err := h.service.List(params)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list pending services", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: listings})
}

// Get handles GET /api/services/:id
// @Summary Fetch one service listing
// @Tags services
// @Produce json
// @Param id path int true "listing id"
// @Success 200 {object} common.APIResponse{data=domain.ListingResponse}
// @Router /services/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid listing ID", err)
		return
	}

	listing, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, common.ErrListingNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Service not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load service", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: listing})
}

// Create handles POST /api/services
// @Summary Submit a new service listing for moderation
// @Tags services
// @Accept json
// @Produce json
// @Param request body domain.CreateListingRequest true "listing payload"
// @Success 200 {object} common.APIResponse{data=domain.ListingResponse}
// @Security BearerAuth
// @Router /services [post]
func (h *ListingHandler) Create(c *gin.Context) {
	uid := middleware.GetUID(c)

	var req domain.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	listing, err := h.service.Create(uid, &req)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create service", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: listing})
}

// SetStatus handles PATCH /api/services/:id/status
// @Summary Approve or reject a listing (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "listing id"
// @Param request body domain.SetListingStatusRequest true "moderation decision"
// @Success 200 {object} common.APIResponse
// @Security BearerAuth
// @Router /services/{id}/status [patch]
func (h *ListingHandler) SetStatus(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid listing ID", err)
		return
	}

	var req domain.SetListingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.service.SetStatus(id, &req); err != nil {
		if errors.Is(err, common.ErrListingNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Service not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update service status", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"success": true}})
}

// Delete handles DELETE /api/services/:id
// @Summary Delete a listing and its dependent requests (admin)
// @Tags admin
// @Produce json
// @Param id path int true "listing id"
// @Success 200 {object} common.APIResponse
// @Security BearerAuth
// @Router /services/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid listing ID", err)
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, common.ErrListingNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Service not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete service", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"success": true}})
}
