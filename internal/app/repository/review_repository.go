package repository

import (
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *model.Review) error
	Update(review *model.Review) error
	Delete(id uint) error
	FindByID(id uint) (*model.Review, error)
	FindByStore(storeID uint) ([]model.Review, error)
	FindByUserAndStore(userID, storeID uint) (*model.Review, error)
	AverageRating(storeID uint) (float64, int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) Update(review *model.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) Delete(id uint) error {
	return r.db.Delete(&model.Review{}, id).Error
}

func (r *reviewRepository) FindByID(id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.Preload("User").First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByStore(storeID uint) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.
		Preload("User").
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) FindByUserAndStore(userID, storeID uint) (*model.Review, error) {
	var review model.Review
	err := r.db.
		Where("user_id = ? AND store_id = ?", userID, storeID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// AverageRating returns the mean rating and the review count for a store.
func (r *reviewRepository) AverageRating(storeID uint) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := r.db.Model(&model.Review{}).
		Where("store_id = ?", storeID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Avg, result.Count, nil
}
