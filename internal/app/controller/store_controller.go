package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/service"
	apperrors "github.com/Kiattisakchaochata/backendTopaward/internal/errors"
	"github.com/Kiattisakchaochata/backendTopaward/internal/middleware"
)

type StoreController struct {
	storeService  service.StoreService
	exportService service.ExportService
	tempDir       string
}

func NewStoreController(storeService service.StoreService, exportService service.ExportService, tempDir string) *StoreController {
	return &StoreController{
		storeService:  storeService,
		exportService: exportService,
		tempDir:       tempDir,
	}
}

type RenewStoreRequest struct {
	Months *int `json:"months" binding:"required"`
}

type ReactivateStoreRequest struct {
	ExpiredAt *time.Time `json:"expired_at" binding:"required"`
}

type StoreStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type SwapOrderRequest struct {
	OrderNumber *int `json:"order_number" binding:"required"`
}

type ReorderImagesRequest struct {
	Orders []service.ImageOrderInput `json:"orders" binding:"required"`
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// respondStoreError maps service errors onto the wire taxonomy.
func (ctrl *StoreController) respondStoreError(c *gin.Context, err error) {
	var conflict *service.OrderConflictError
	switch {
	case errors.As(err, &conflict):
		apperrors.Conflict(c, apperrors.StoreOrderTaken,
			fmt.Sprintf("Order number %d is already taken in this category", conflict.OrderNumber))
	case errors.Is(err, service.ErrStoreNotFound):
		apperrors.NotFound(c, apperrors.StoreNotFound, "Store not found")
	case errors.Is(err, service.ErrStoreImageNotFound):
		apperrors.NotFound(c, apperrors.StoreImageNotFound, "Store image not found")
	case errors.Is(err, service.ErrCategoryNotFound):
		apperrors.NotFound(c, apperrors.CategoryNotFound, "Category not found")
	case errors.Is(err, service.ErrCategoryRequired):
		apperrors.BadRequest(c, apperrors.StoreCategoryNeeded, "A category is required")
	case errors.Is(err, service.ErrNameRequired):
		apperrors.BadRequest(c, apperrors.ValidationRequired, "A store name is required")
	case errors.Is(err, service.ErrInvalidOrder):
		apperrors.BadRequest(c, apperrors.ValidationInvalidRange, "Order number must be positive")
	case errors.Is(err, service.ErrInvalidMonths):
		apperrors.BadRequest(c, apperrors.StoreInvalidMonths, "Months must be a positive number")
	case errors.Is(err, service.ErrMissingExpiry):
		apperrors.BadRequest(c, apperrors.StoreMissingExpiry, "An expiration date is required")
	default:
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "store")
	}
}

// GetStores lists stores
// GET /api/stores?search=&basic=&limit=
func (ctrl *StoreController) GetStores(c *gin.Context) {
	filter := repository.StoreFilter{
		Search: c.Query("search"),
		Basic:  c.Query("basic") == "true",
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	stores, err := ctrl.storeService.GetStores(filter)
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stores": model.ToResponses(stores)})
}

// GetStore returns one store by id
// GET /api/stores/:id
func (ctrl *StoreController) GetStore(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	store, err := ctrl.storeService.GetStoreByID(id)
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"store": store.ToResponse()})
}

// GetStoreBySlug returns one store by its slug
// GET /api/stores/slug/:slug
func (ctrl *StoreController) GetStoreBySlug(c *gin.Context) {
	store, err := ctrl.storeService.GetStoreBySlug(c.Param("slug"))
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"store": store.ToResponse()})
}

// SearchStores full-text-ish search over name/description/category
// GET /api/stores/search?q=
func (ctrl *StoreController) SearchStores(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"stores": []model.StoreResponse{}})
		return
	}

	stores, err := ctrl.storeService.SearchStores(query)
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stores": model.ToResponses(stores)})
}

// GetPopularStores returns active stores rated 4.0 or better
// GET /api/stores/popular
func (ctrl *StoreController) GetPopularStores(c *gin.Context) {
	popular, err := ctrl.storeService.GetPopularStores(4.0)
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stores": popular})
}

// storeInputFromForm reads the multipart fields shared by create and
// update. Presence of a field is tracked so update can patch only what
// was sent.
func storeFormValue(c *gin.Context, key string) *string {
	if value, ok := c.GetPostForm(key); ok {
		return &value
	}
	return nil
}

// CreateStore creates a store from a multipart form
// POST /api/admin/stores
func (ctrl *StoreController) CreateStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	input := service.CreateStoreInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Address:     c.PostForm("address"),
		Province:    c.PostForm("province"),
	}

	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.StoreCategoryNeeded, "A category is required")
		return
	}
	input.CategoryID = uint(categoryID)

	if raw := storeFormValue(c, "order_number"); raw != nil {
		order, err := strconv.Atoi(*raw)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "order_number must be a number")
			return
		}
		input.OrderNumber = &order
	}
	if raw := storeFormValue(c, "expired_at"); raw != nil && *raw != "" {
		expiredAt, err := time.Parse(time.RFC3339, *raw)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "expired_at must be RFC3339")
			return
		}
		input.ExpiredAt = &expiredAt
	}
	if raw := storeFormValue(c, "is_active"); raw != nil {
		active := *raw == "true"
		input.IsActive = &active
	}
	if raw := storeFormValue(c, "social_links"); raw != nil && *raw != "" {
		var links model.JSONMap
		if err := json.Unmarshal([]byte(*raw), &links); err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "social_links must be a JSON object")
			return
		}
		input.SocialLinks = links
	}

	if cover, err := c.FormFile("cover"); err == nil {
		path, err := saveTempUpload(c, cover, ctrl.tempDir)
		if err != nil {
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Could not store the uploaded file")
			return
		}
		input.CoverPath = path
	}
	if form, err := c.MultipartForm(); err == nil {
		for _, file := range form.File["images"] {
			path, err := saveTempUpload(c, file, ctrl.tempDir)
			if err != nil {
				log.Warn("Skipping unreadable gallery file", map[string]interface{}{
					"filename": file.Filename,
				})
				continue
			}
			input.ImagePaths = append(input.ImagePaths, path)
		}
	}

	store, err := ctrl.storeService.CreateStore(c.Request.Context(), input)
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"store": store.ToResponse()})
}

// UpdateStore patches a store from a multipart form
// PATCH /api/admin/stores/:id
func (ctrl *StoreController) UpdateStore(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	input := service.UpdateStoreInput{
		Name:        storeFormValue(c, "name"),
		Description: storeFormValue(c, "description"),
		Address:     storeFormValue(c, "address"),
		Province:    storeFormValue(c, "province"),
	}

	if raw := storeFormValue(c, "category_id"); raw != nil {
		categoryID, err := strconv.ParseUint(*raw, 10, 32)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "category_id must be a number")
			return
		}
		value := uint(categoryID)
		input.CategoryID = &value
	}
	if raw := storeFormValue(c, "order_number"); raw != nil {
		order, err := strconv.Atoi(*raw)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "order_number must be a number")
			return
		}
		input.OrderNumber = &order
	}
	if raw := storeFormValue(c, "expired_at"); raw != nil {
		input.ExpiredAtSet = true
		if *raw != "" {
			expiredAt, err := time.Parse(time.RFC3339, *raw)
			if err != nil {
				apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "expired_at must be RFC3339")
				return
			}
			input.ExpiredAt = &expiredAt
		}
	}
	if raw := storeFormValue(c, "is_active"); raw != nil {
		active := *raw == "true"
		input.IsActive = &active
	}
	if raw := storeFormValue(c, "social_links"); raw != nil && *raw != "" {
		var links model.JSONMap
		if err := json.Unmarshal([]byte(*raw), &links); err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "social_links must be a JSON object")
			return
		}
		input.SocialLinks = links
	}

	if cover, err := c.FormFile("cover"); err == nil {
		path, err := saveTempUpload(c, cover, ctrl.tempDir)
		if err != nil {
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Could not store the uploaded file")
			return
		}
		input.CoverPath = path
	}

	store, err := ctrl.storeService.UpdateStore(c.Request.Context(), id, input)
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"store": store.ToResponse()})
}

// DeleteStore removes a store and its media
// DELETE /api/admin/stores/:id
func (ctrl *StoreController) DeleteStore(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.storeService.DeleteStore(c.Request.Context(), id); err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Store deleted"})
}

// RenewStore extends the subscription
// POST /api/admin/stores/:id/renew
func (ctrl *StoreController) RenewStore(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RenewStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.StoreInvalidMonths, "Months must be a positive number")
		return
	}

	store, err := ctrl.storeService.RenewStore(id, *req.Months)
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"store": store.ToResponse()})
}

// ReactivateStore turns a store back on with an absolute expiry
// POST /api/admin/stores/:id/reactivate
func (ctrl *StoreController) ReactivateStore(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ReactivateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.StoreMissingExpiry, "An expiration date is required")
		return
	}

	store, err := ctrl.storeService.ReactivateStore(id, *req.ExpiredAt)
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"store": store.ToResponse()})
}

// SetStatus sets visibility explicitly
// PATCH /api/admin/stores/:id/status
func (ctrl *StoreController) SetStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req StoreStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "is_active is required")
		return
	}

	store, err := ctrl.storeService.SetStoreStatus(id, *req.IsActive)
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"store": store.ToResponse()})
}

// EnableStore is shorthand for status=true
// PATCH /api/admin/stores/:id/enable
func (ctrl *StoreController) EnableStore(c *gin.Context) {
	ctrl.setStatusShorthand(c, true)
}

// DisableStore is shorthand for status=false
// PATCH /api/admin/stores/:id/disable
func (ctrl *StoreController) DisableStore(c *gin.Context) {
	ctrl.setStatusShorthand(c, false)
}

func (ctrl *StoreController) setStatusShorthand(c *gin.Context, active bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	store, err := ctrl.storeService.SetStoreStatus(id, active)
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"store": store.ToResponse()})
}

// SwapOrder exchanges order numbers with the store occupying the target
// slot in the same category
// PATCH /api/admin/stores/:id/order
func (ctrl *StoreController) SwapOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SwapOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "order_number is required")
		return
	}

	store, err := ctrl.storeService.SwapOrder(id, *req.OrderNumber)
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"store": store.ToResponse()})
}

// GetExpiringStores lists active stores expiring within N days
// GET /api/admin/stores/expiring-soon?days=30
func (ctrl *StoreController) GetExpiringStores(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	stores, err := ctrl.storeService.GetExpiringStores(days)
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stores": model.ToResponses(stores)})
}

// GetExpiredStores lists stores whose expiry has passed
// GET /api/admin/stores/expired
func (ctrl *StoreController) GetExpiredStores(c *gin.Context) {
	stores, err := ctrl.storeService.GetExpiredStores()
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stores": model.ToResponses(stores)})
}

// GetLoyaltyStats ranks stores by renewals
// GET /api/admin/stores/loyalty
func (ctrl *StoreController) GetLoyaltyStats(c *gin.Context) {
	stats, err := ctrl.storeService.GetLoyaltyStats()
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stores": stats})
}

// ExportLoyaltyReport streams the loyalty report as an xlsx file
// GET /api/admin/stores/export
func (ctrl *StoreController) ExportLoyaltyReport(c *gin.Context) {
	data, err := ctrl.exportService.LoyaltyReportXLSX()
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}

	filename := fmt.Sprintf("loyalty-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// UpdateCover replaces the cover image
// PATCH /api/admin/stores/:id/cover
func (ctrl *StoreController) UpdateCover(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cover, err := c.FormFile("cover")
	if err != nil {
		apperrors.BadRequest(c, apperrors.UploadFileRequired, "A cover file is required")
		return
	}
	path, err := saveTempUpload(c, cover, ctrl.tempDir)
	if err != nil {
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Could not store the uploaded file")
		return
	}

	store, err := ctrl.storeService.UpdateCover(c.Request.Context(), id, path)
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"store": store.ToResponse()})
}

// AddImages appends gallery images
// POST /api/admin/stores/:id/images
func (ctrl *StoreController) AddImages(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		apperrors.BadRequest(c, apperrors.UploadFileRequired, "At least one image file is required")
		return
	}

	paths := make([]string, 0, len(form.File["images"]))
	for _, file := range form.File["images"] {
		path, err := saveTempUpload(c, file, ctrl.tempDir)
		if err != nil {
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Could not store the uploaded file")
			return
		}
		paths = append(paths, path)
	}

	images, err := ctrl.storeService.AddImages(c.Request.Context(), id, paths)
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"images": images})
}

// DeleteImage removes one gallery image
// DELETE /api/admin/images/:id
func (ctrl *StoreController) DeleteImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.storeService.DeleteImage(c.Request.Context(), id); err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}

// ReorderImages applies an explicit gallery order, reporting per-row
// results
// PATCH /api/admin/images/reorder/:storeId
func (ctrl *StoreController) ReorderImages(c *gin.Context) {
	storeID, ok := parseIDParam(c, "storeId")
	if !ok {
		return
	}

	var req ReorderImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Orders) == 0 {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "orders must be a non-empty array")
		return
	}

	result, err := ctrl.storeService.ReorderImages(storeID, req.Orders)
	if err != nil {
		ctrl.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
