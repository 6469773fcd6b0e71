package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Kiattisakchaochata/backendTopaward/internal/errors"
	"github.com/Kiattisakchaochata/backendTopaward/internal/middleware"
	"github.com/Kiattisakchaochata/backendTopaward/internal/storage"
)

type UploadController struct {
	store storage.Storage
}

func NewUploadController(mediaStore storage.Storage) *UploadController {
	return &UploadController{store: mediaStore}
}

type PresignedURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Folder      string `json:"folder"`
}

// Only image uploads go through the presign path.
var allowedUploadTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// GeneratePresignedURL hands the admin panel a short-lived direct-to-S3
// upload URL so large files skip the API server
// POST /api/admin/uploads/presign
func (ctrl *UploadController) GeneratePresignedURL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req PresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "filename and content_type are required")
		return
	}

	if _, ok := allowedUploadTypes[req.ContentType]; !ok {
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "Only image files are allowed (JPEG, PNG, GIF, WEBP)")
		return
	}

	folder := req.Folder
	if folder == "" {
		folder = "uploads"
	}

	response, err := ctrl.store.GeneratePresignedURL(req.Filename, req.ContentType, folder)
	if err != nil {
		log.Error("Failed to generate presigned URL", err, map[string]interface{}{
			"filename": req.Filename,
			"folder":   folder,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Could not generate an upload URL")
		return
	}

	c.JSON(http.StatusOK, response)
}
