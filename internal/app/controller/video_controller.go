package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/service"
	apperrors "github.com/Kiattisakchaochata/backendTopaward/internal/errors"
)

type VideoController struct {
	videoService service.VideoService
}

func NewVideoController(videoService service.VideoService) *VideoController {
	return &VideoController{videoService: videoService}
}

func (ctrl *VideoController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		apperrors.NotFound(c, apperrors.VideoNotFound, "Video not found")
	case errors.Is(err, service.ErrVideoTitle):
		apperrors.BadRequest(c, apperrors.ValidationRequired, "A video title is required")
	case errors.Is(err, service.ErrVideoLinkRequired):
		apperrors.BadRequest(c, apperrors.VideoLinkRequired, "A YouTube or TikTok link is required")
	case errors.Is(err, service.ErrVideoInvalidURL):
		apperrors.BadRequest(c, apperrors.VideoInvalidURL, "The video link is not a recognized YouTube or TikTok URL")
	default:
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "video")
	}
}

// GetActiveVideos lists videos visible right now
// GET /api/videos
func (ctrl *VideoController) GetActiveVideos(c *gin.Context) {
	videos, err := ctrl.videoService.GetActiveVideos(time.Now())
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

// GetVideos lists every video for the admin panel
// GET /api/admin/videos
func (ctrl *VideoController) GetVideos(c *gin.Context) {
	videos, err := ctrl.videoService.GetVideos()
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

// GetVideo returns one video
// GET /api/admin/videos/:id
func (ctrl *VideoController) GetVideo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	video, err := ctrl.videoService.GetVideoByID(id)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"video": video})
}

// CreateVideo creates a video entry
// POST /api/admin/videos
func (ctrl *VideoController) CreateVideo(c *gin.Context) {
	var req service.VideoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid video payload")
		return
	}

	video, err := ctrl.videoService.CreateVideo(req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"video": video})
}

// UpdateVideo patches a video entry
// PATCH /api/admin/videos/:id
func (ctrl *VideoController) UpdateVideo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.VideoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid video payload")
		return
	}

	video, err := ctrl.videoService.UpdateVideo(id, req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"video": video})
}

// DeleteVideo removes a video entry
// DELETE /api/admin/videos/:id
func (ctrl *VideoController) DeleteVideo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.videoService.DeleteVideo(id); err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}
