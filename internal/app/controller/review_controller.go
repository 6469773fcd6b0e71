package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/service"
	apperrors "github.com/Kiattisakchaochata/backendTopaward/internal/errors"
	"github.com/Kiattisakchaochata/backendTopaward/internal/middleware"
)

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (ctrl *ReviewController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrReviewNotFound):
		apperrors.NotFound(c, apperrors.ReviewNotFound, "Review not found")
	case errors.Is(err, service.ErrStoreNotFound):
		apperrors.NotFound(c, apperrors.StoreNotFound, "Store not found")
	case errors.Is(err, service.ErrInvalidRating):
		apperrors.BadRequest(c, apperrors.ReviewInvalidRating, "Rating must be between 1 and 5")
	case errors.Is(err, service.ErrReviewExists):
		apperrors.Conflict(c, apperrors.ResourceAlreadyExists, "You already reviewed this store")
	case errors.Is(err, service.ErrReviewAccessDenied):
		apperrors.Forbidden(c, "You can only modify your own reviews")
	default:
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "review")
	}
}

// GetStoreReviews lists reviews for a store
// GET /api/reviews/store/:storeId
func (ctrl *ReviewController) GetStoreReviews(c *gin.Context) {
	storeID, ok := parseIDParam(c, "storeId")
	if !ok {
		return
	}

	reviews, err := ctrl.reviewService.GetStoreReviews(storeID)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	summary, err := ctrl.reviewService.GetStoreRating(storeID)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"rating":  summary,
	})
}

// CreateReview adds a review by the authenticated user
// POST /api/reviews
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		apperrors.Unauthorized(c, "")
		return
	}

	var req service.ReviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "store_id and rating are required")
		return
	}

	review, err := ctrl.reviewService.CreateReview(user.ID, req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review})
}

// UpdateReview edits the user's own review
// PATCH /api/reviews/:id
func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		apperrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "rating is required")
		return
	}

	review, err := ctrl.reviewService.UpdateReview(user.ID, id, service.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

// DeleteReview removes a review (author or admin)
// DELETE /api/reviews/:id
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		apperrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.reviewService.DeleteReview(user, id); err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
