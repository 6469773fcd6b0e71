package controller

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/service"
	apperrors "github.com/Kiattisakchaochata/backendTopaward/internal/errors"
)

type VisitorController struct {
	visitorService service.VisitorService
}

func NewVisitorController(visitorService service.VisitorService) *VisitorController {
	return &VisitorController{visitorService: visitorService}
}

// visitorFingerprint derives a stable anonymous key from the client IP
// and user agent for the dedup window.
func visitorFingerprint(c *gin.Context) string {
	sum := sha256.Sum256([]byte(c.ClientIP() + "|" + c.Request.UserAgent()))
	return hex.EncodeToString(sum[:8])
}

// RecordVisit counts a page view for a store
// POST /api/visitor/:storeId
func (ctrl *VisitorController) RecordVisit(c *gin.Context) {
	storeID, ok := parseIDParam(c, "storeId")
	if !ok {
		return
	}

	result, err := ctrl.visitorService.RecordVisit(c.Request.Context(), storeID, visitorFingerprint(c))
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			apperrors.NotFound(c, apperrors.StoreNotFound, "Store not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "visitor")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetStoreCount returns the visit counter for a store
// GET /api/visitor/:storeId
func (ctrl *VisitorController) GetStoreCount(c *gin.Context) {
	storeID, ok := parseIDParam(c, "storeId")
	if !ok {
		return
	}

	count, err := ctrl.visitorService.GetStoreCount(storeID)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "visitor")
		return
	}
	c.JSON(http.StatusOK, gin.H{"store_id": storeID, "count": count})
}

// GetTotalCount returns the site-wide counter
// GET /api/visitor
func (ctrl *VisitorController) GetTotalCount(c *gin.Context) {
	total, err := ctrl.visitorService.GetTotalCount()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "visitor")
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}
