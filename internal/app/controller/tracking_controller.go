package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/service"
	apperrors "github.com/Kiattisakchaochata/backendTopaward/internal/errors"
)

type TrackingController struct {
	trackingService service.TrackingService
}

func NewTrackingController(trackingService service.TrackingService) *TrackingController {
	return &TrackingController{trackingService: trackingService}
}

func (ctrl *TrackingController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTrackingNotFound):
		apperrors.NotFound(c, apperrors.TrackingNotFound, "Tracking script not found")
	case errors.Is(err, service.ErrTrackingBodyRequired):
		apperrors.BadRequest(c, apperrors.TrackingBodyRequired, "A tracking id or raw script is required")
	default:
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "tracking")
	}
}

// GetPublicScripts resolves scripts for a page.
// GET /api/tracking?storeId=&only=store|global
// Without storeId the main-website set is returned. With storeId the
// store's scripts are combined with the global set unless narrowed by
// only=.
func (ctrl *TrackingController) GetPublicScripts(c *gin.Context) {
	var storeID *uint
	if raw := c.Query("storeId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidID, "storeId must be a number")
			return
		}
		value := uint(parsed)
		storeID = &value
	}

	scope := service.ScopeCombined
	switch c.Query("only") {
	case "store":
		scope = service.ScopeStore
	case "global":
		scope = service.ScopeGlobal
	}

	scripts, err := ctrl.trackingService.GetPublicScripts(storeID, scope)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scripts": scripts})
}

// GetScripts lists every script for the admin panel
// GET /api/admin/tracking
func (ctrl *TrackingController) GetScripts(c *gin.Context) {
	scripts, err := ctrl.trackingService.GetScripts()
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scripts": scripts})
}

// CreateScript registers a tracking script
// POST /api/admin/tracking
func (ctrl *TrackingController) CreateScript(c *gin.Context) {
	var req service.TrackingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid tracking payload")
		return
	}

	script, err := ctrl.trackingService.CreateScript(req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"script": script})
}

// UpdateScript patches a tracking script
// PATCH /api/admin/tracking/:id
func (ctrl *TrackingController) UpdateScript(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.TrackingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid tracking payload")
		return
	}

	script, err := ctrl.trackingService.UpdateScript(id, req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"script": script})
}

// DeleteScript removes a tracking script
// DELETE /api/admin/tracking/:id
func (ctrl *TrackingController) DeleteScript(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.trackingService.DeleteScript(id); err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tracking script deleted"})
}
