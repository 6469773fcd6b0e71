package repository

import (
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(video *model.Video) error
	Update(video *model.Video) error
	Delete(id uint) error
	FindByID(id uint) (*model.Video, error)
	FindAll() ([]model.Video, error)
	FindActive() ([]model.Video, error)
	MaxOrder() (int, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

func (r *videoRepository) Update(video *model.Video) error {
	return r.db.Save(video).Error
}

func (r *videoRepository) Delete(id uint) error {
	return r.db.Delete(&model.Video{}, id).Error
}

func (r *videoRepository) FindByID(id uint) (*model.Video, error) {
	var video model.Video
	if err := r.db.Preload("Store").First(&video, id).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) FindAll() ([]model.Video, error) {
	var videos []model.Video
	err := r.db.
		Preload("Store").
		Order("order_number ASC").
		Order("created_at DESC").
		Find(&videos).Error
	return videos, err
}

// FindActive returns enabled videos; date-window filtering happens in the
// service because start/end are both optional.
func (r *videoRepository) FindActive() ([]model.Video, error) {
	var videos []model.Video
	err := r.db.
		Preload("Store").
		Where("is_active = ?", true).
		Order("order_number ASC").
		Find(&videos).Error
	return videos, err
}

func (r *videoRepository) MaxOrder() (int, error) {
	var max int
	err := r.db.Model(&model.Video{}).
		Select("COALESCE(MAX(order_number), 0)").
		Scan(&max).Error
	return max, err
}
