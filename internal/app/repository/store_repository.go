package repository

import (
	"time"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/logger"
	"gorm.io/gorm"
)

type StoreFilter struct {
	Search string
	Basic  bool // names and ids only
	Limit  int
}

type StoreRepository interface {
	Create(tx *gorm.DB, store *model.Store) error
	Updates(tx *gorm.DB, id uint, values map[string]interface{}) error
	Delete(id uint) error
	FindAll(filter StoreFilter) ([]model.Store, error)
	FindByID(id uint) (*model.Store, error)
	FindBySlug(slug string) (*model.Store, error)
	FindSlugsByPrefix(prefix string, excludeID uint) ([]string, error)
	MaxOrderInCategory(categoryID uint) (int, error)
	FindByOrder(categoryID uint, orderNumber int, excludeID uint) (*model.Store, error)
	OrderTaken(categoryID uint, orderNumber int, excludeID uint) (bool, error)
	FindExpiring(from, to time.Time) ([]model.Store, error)
	FindExpired(before time.Time, onlyInactive bool) ([]model.Store, error)
	FindAllWithReviews() ([]model.Store, error)
	Search(query string) ([]model.Store, error)

	MaxImageOrder(storeID uint) (int, error)
	CreateImages(images []model.Image) error
	FindImageByID(id uint) (*model.Image, error)
	DeleteImage(id uint) error
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

// Create inserts the store row. When tx is non-nil the write joins that
// transaction, otherwise the repository's own handle is used.
func (r *storeRepository) Create(tx *gorm.DB, store *model.Store) error {
	if tx == nil {
		tx = r.db
	}

	if err := tx.Create(store).Error; err != nil {
		logger.Error("Failed to create store in database", err, map[string]interface{}{
			"name":        store.Name,
			"category_id": store.CategoryID,
		})
		return err
	}

	logger.Debug("Store created in database", map[string]interface{}{
		"store_id": store.ID,
		"slug":     store.Slug,
	})
	return nil
}

func (r *storeRepository) Updates(tx *gorm.DB, id uint, values map[string]interface{}) error {
	if tx == nil {
		tx = r.db
	}
	if len(values) == 0 {
		return nil
	}
	return tx.Model(&model.Store{}).Where("id = ?", id).Updates(values).Error
}

func (r *storeRepository) Delete(id uint) error {
	logger.Debug("Deleting store from database", map[string]interface{}{
		"store_id": id,
	})
	return r.db.Delete(&model.Store{}, id).Error
}

func (r *storeRepository) FindAll(filter StoreFilter) ([]model.Store, error) {
	query := r.db.Model(&model.Store{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ?", like)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var stores []model.Store
	if filter.Basic {
		if err := query.Select("id", "name").Order("created_at DESC").Find(&stores).Error; err != nil {
			return nil, err
		}
		return stores, nil
	}

	err := query.
		Preload("Category").
		Preload("Images", imagesInOrder).
		Preload("Reviews").
		Preload("VisitorCounter").
		Order("category_id ASC").
		Order("order_number ASC").
		Order("created_at DESC").
		Find(&stores).Error
	if err != nil {
		logger.Error("Failed to find stores", err, map[string]interface{}{
			"search": filter.Search,
		})
		return nil, err
	}
	return stores, nil
}

func imagesInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("order_number ASC")
}

func (r *storeRepository) FindByID(id uint) (*model.Store, error) {
	var store model.Store
	err := r.db.
		Preload("Category").
		Preload("Images", imagesInOrder).
		Preload("Reviews.User").
		Preload("VisitorCounter").
		First(&store, id).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) FindBySlug(slug string) (*model.Store, error) {
	var store model.Store
	err := r.db.
		Preload("Category").
		Preload("Images", imagesInOrder).
		Preload("Reviews.User").
		Preload("VisitorCounter").
		Where("slug = ?", slug).
		First(&store).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// FindSlugsByPrefix returns every slug starting with prefix, excluding
// the given store id (0 excludes nothing). Feeds the slug allocator.
func (r *storeRepository) FindSlugsByPrefix(prefix string, excludeID uint) ([]string, error) {
	query := r.db.Model(&model.Store{}).Where("slug LIKE ?", prefix+"%")
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	var slugs []string
	if err := query.Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}
	return slugs, nil
}

// MaxOrderInCategory returns the highest order number used in the
// category, 0 when the category has no stores.
func (r *storeRepository) MaxOrderInCategory(categoryID uint) (int, error) {
	var max int
	err := r.db.Model(&model.Store{}).
		Where("category_id = ?", categoryID).
		Select("COALESCE(MAX(order_number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

func (r *storeRepository) FindByOrder(categoryID uint, orderNumber int, excludeID uint) (*model.Store, error) {
	query := r.db.Where("category_id = ? AND order_number = ?", categoryID, orderNumber)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	var store model.Store
	if err := query.First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) OrderTaken(categoryID uint, orderNumber int, excludeID uint) (bool, error) {
	query := r.db.Model(&model.Store{}).
		Where("category_id = ? AND order_number = ?", categoryID, orderNumber)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *storeRepository) FindExpiring(from, to time.Time) ([]model.Store, error) {
	var stores []model.Store
	err := r.db.
		Preload("Category").
		Where("expired_at >= ? AND expired_at <= ?", from, to).
		Where("is_active = ?", true).
		Order("expired_at ASC").
		Find(&stores).Error
	return stores, err
}

func (r *storeRepository) FindExpired(before time.Time, onlyInactive bool) ([]model.Store, error) {
	query := r.db.
		Preload("Category").
		Where("expired_at IS NOT NULL AND expired_at <= ?", before)
	if onlyInactive {
		query = query.Where("is_active = ?", false)
	}

	var stores []model.Store
	err := query.Order("expired_at ASC").Find(&stores).Error
	return stores, err
}

func (r *storeRepository) FindAllWithReviews() ([]model.Store, error) {
	var stores []model.Store
	err := r.db.
		Preload("Category").
		Preload("Images", imagesInOrder).
		Preload("Reviews").
		Find(&stores).Error
	return stores, err
}

// Search matches the query against store name, description and the
// category name.
func (r *storeRepository) Search(query string) ([]model.Store, error) {
	like := "%" + query + "%"
	var stores []model.Store
	err := r.db.
		Joins("LEFT JOIN categories ON categories.id = stores.category_id").
		Where("stores.name LIKE ? OR stores.description LIKE ? OR categories.name LIKE ?", like, like, like).
		Preload("Category").
		Preload("Images", imagesInOrder).
		Preload("Reviews").
		Order("stores.created_at DESC").
		Find(&stores).Error
	return stores, err
}

func (r *storeRepository) MaxImageOrder(storeID uint) (int, error) {
	var max int
	err := r.db.Model(&model.Image{}).
		Where("store_id = ?", storeID).
		Select("COALESCE(MAX(order_number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

func (r *storeRepository) CreateImages(images []model.Image) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.Create(&images).Error
}

func (r *storeRepository) FindImageByID(id uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *storeRepository) DeleteImage(id uint) error {
	return r.db.Delete(&model.Image{}, id).Error
}
