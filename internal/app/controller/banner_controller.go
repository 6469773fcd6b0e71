package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/service"
	apperrors "github.com/Kiattisakchaochata/backendTopaward/internal/errors"
)

type BannerController struct {
	bannerService service.BannerService
	tempDir       string
}

func NewBannerController(bannerService service.BannerService, tempDir string) *BannerController {
	return &BannerController{
		bannerService: bannerService,
		tempDir:       tempDir,
	}
}

func (ctrl *BannerController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBannerNotFound):
		apperrors.NotFound(c, apperrors.BannerNotFound, "Banner not found")
	case errors.Is(err, service.ErrBannerImageRequired):
		apperrors.BadRequest(c, apperrors.UploadFileRequired, "A banner image is required")
	default:
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "banner")
	}
}

func (ctrl *BannerController) inputFromForm(c *gin.Context) (service.BannerInput, bool) {
	input := service.BannerInput{
		Title:   c.PostForm("title"),
		LinkURL: c.PostForm("link_url"),
	}

	if raw, ok := c.GetPostForm("order_number"); ok {
		order, err := strconv.Atoi(raw)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "order_number must be a number")
			return input, false
		}
		input.OrderNumber = &order
	}
	if raw, ok := c.GetPostForm("is_active"); ok {
		active := raw == "true"
		input.IsActive = &active
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := saveTempUpload(c, file, ctrl.tempDir)
		if err != nil {
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Could not store the uploaded file")
			return input, false
		}
		input.ImagePath = path
	}
	return input, true
}

// GetBanners lists banners; the public view only sees active ones
// GET /api/banners
func (ctrl *BannerController) GetBanners(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	banners, err := ctrl.bannerService.GetBanners(activeOnly)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

// CreateBanner creates a banner from a multipart form
// POST /api/admin/banners
func (ctrl *BannerController) CreateBanner(c *gin.Context) {
	input, ok := ctrl.inputFromForm(c)
	if !ok {
		return
	}

	banner, err := ctrl.bannerService.CreateBanner(c.Request.Context(), input)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"banner": banner})
}

// UpdateBanner patches a banner
// PATCH /api/admin/banners/:id
func (ctrl *BannerController) UpdateBanner(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	input, ok := ctrl.inputFromForm(c)
	if !ok {
		return
	}

	banner, err := ctrl.bannerService.UpdateBanner(c.Request.Context(), id, input)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"banner": banner})
}

// DeleteBanner removes a banner and its image
// DELETE /api/admin/banners/:id
func (ctrl *BannerController) DeleteBanner(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.bannerService.DeleteBanner(c.Request.Context(), id); err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
}
