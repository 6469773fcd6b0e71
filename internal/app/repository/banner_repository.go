package repository

import (
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"gorm.io/gorm"
)

type BannerRepository interface {
	Create(banner *model.Banner) error
	Update(banner *model.Banner) error
	Delete(id uint) error
	FindByID(id uint) (*model.Banner, error)
	FindAll(activeOnly bool) ([]model.Banner, error)
	MaxOrder() (int, error)
}

type bannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &bannerRepository{db: db}
}

func (r *bannerRepository) Create(banner *model.Banner) error {
	return r.db.Create(banner).Error
}

func (r *bannerRepository) Update(banner *model.Banner) error {
	return r.db.Save(banner).Error
}

func (r *bannerRepository) Delete(id uint) error {
	return r.db.Delete(&model.Banner{}, id).Error
}

func (r *bannerRepository) FindByID(id uint) (*model.Banner, error) {
	var banner model.Banner
	if err := r.db.First(&banner, id).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepository) FindAll(activeOnly bool) ([]model.Banner, error) {
	query := r.db.Model(&model.Banner{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var banners []model.Banner
	err := query.Order("order_number ASC").Find(&banners).Error
	return banners, err
}

func (r *bannerRepository) MaxOrder() (int, error) {
	var max int
	err := r.db.Model(&model.Banner{}).
		Select("COALESCE(MAX(order_number), 0)").
		Scan(&max).Error
	return max, err
}
