package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
)

var (
	ErrReviewNotFound     = errors.New("review not found")
	ErrReviewExists       = errors.New("review already exists for this store")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrReviewAccessDenied = errors.New("review belongs to another user")
)

type ReviewInput struct {
	StoreID uint   `json:"store_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

type StoreRatingSummary struct {
	StoreID       uint    `json:"store_id"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

type ReviewService interface {
	CreateReview(userID uint, input ReviewInput) (*model.Review, error)
	UpdateReview(userID uint, reviewID uint, input ReviewInput) (*model.Review, error)
	DeleteReview(user *model.User, reviewID uint) error
	GetStoreReviews(storeID uint) ([]model.Review, error)
	GetStoreRating(storeID uint) (*StoreRatingSummary, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	storeRepo  repository.StoreRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, storeRepo repository.StoreRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		storeRepo:  storeRepo,
	}
}

func (s *reviewService) CreateReview(userID uint, input ReviewInput) (*model.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.storeRepo.FindByID(input.StoreID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	// One review per user per store.
	if _, err := s.reviewRepo.FindByUserAndStore(userID, input.StoreID); err == nil {
		return nil, ErrReviewExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &model.Review{
		StoreID: input.StoreID,
		UserID:  userID,
		Rating:  input.Rating,
		Comment: input.Comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return s.reviewRepo.FindByID(review.ID)
}

func (s *reviewService) UpdateReview(userID uint, reviewID uint, input ReviewInput) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if review.UserID != userID {
		return nil, ErrReviewAccessDenied
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	review.Rating = input.Rating
	review.Comment = input.Comment
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview allows the author or an admin to remove a review.
func (s *reviewService) DeleteReview(user *model.User, reviewID uint) error {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	if review.UserID != user.ID && !user.IsAdmin() {
		return ErrReviewAccessDenied
	}
	return s.reviewRepo.Delete(reviewID)
}

func (s *reviewService) GetStoreReviews(storeID uint) ([]model.Review, error) {
	return s.reviewRepo.FindByStore(storeID)
}

func (s *reviewService) GetStoreRating(storeID uint) (*StoreRatingSummary, error) {
	avg, count, err := s.reviewRepo.AverageRating(storeID)
	if err != nil {
		return nil, err
	}
	return &StoreRatingSummary{
		StoreID:       storeID,
		AverageRating: avg,
		ReviewCount:   count,
	}, nil
}
