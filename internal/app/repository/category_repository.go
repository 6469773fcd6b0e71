package repository

import (
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	Update(category *model.Category) error
	Delete(id uint) error
	FindAll(activeOnly bool) ([]model.Category, error)
	FindAllWithStores(activeOnly bool) ([]model.Category, error)
	FindByID(id uint) (*model.Category, error)
	FindByName(name string) (*model.Category, error)
	CountStores(categoryID uint) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) Delete(id uint) error {
	return r.db.Delete(&model.Category{}, id).Error
}

func (r *categoryRepository) FindAll(activeOnly bool) ([]model.Category, error) {
	query := r.db.Model(&model.Category{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var categories []model.Category
	if err := query.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindAllWithStores loads categories with their active stores in display
// order. Used by the public landing pages.
func (r *categoryRepository) FindAllWithStores(activeOnly bool) ([]model.Category, error) {
	query := r.db.Model(&model.Category{}).
		Preload("Stores", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("order_number ASC")
		}).
		Preload("Stores.Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_number ASC")
		})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var categories []model.Category
	if err := query.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByName(name string) (*model.Category, error) {
	var category model.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) CountStores(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Store{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
