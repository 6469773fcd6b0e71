package repository

import (
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"gorm.io/gorm"
)

type TrackingRepository interface {
	Create(script *model.TrackingScript) error
	Update(script *model.TrackingScript) error
	Delete(id uint) error
	FindByID(id uint) (*model.TrackingScript, error)
	FindAll() ([]model.TrackingScript, error)
	FindEnabledGlobal() ([]model.TrackingScript, error)
	FindEnabledForStore(storeID uint) ([]model.TrackingScript, error)
	FindEnabledStoreOnly(storeID uint) ([]model.TrackingScript, error)
}

type trackingRepository struct {
	db *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

func (r *trackingRepository) Create(script *model.TrackingScript) error {
	return r.db.Create(script).Error
}

func (r *trackingRepository) Update(script *model.TrackingScript) error {
	return r.db.Save(script).Error
}

func (r *trackingRepository) Delete(id uint) error {
	return r.db.Delete(&model.TrackingScript{}, id).Error
}

func (r *trackingRepository) FindByID(id uint) (*model.TrackingScript, error) {
	var script model.TrackingScript
	if err := r.db.First(&script, id).Error; err != nil {
		return nil, err
	}
	return &script, nil
}

func (r *trackingRepository) FindAll() ([]model.TrackingScript, error) {
	var scripts []model.TrackingScript
	err := r.db.Order("created_at DESC").Find(&scripts).Error
	return scripts, err
}

// FindEnabledGlobal returns enabled scripts attached to the main website.
func (r *trackingRepository) FindEnabledGlobal() ([]model.TrackingScript, error) {
	var scripts []model.TrackingScript
	err := r.db.
		Where("enabled = ? AND store_id IS NULL", true).
		Find(&scripts).Error
	return scripts, err
}

// FindEnabledForStore returns enabled scripts for the store plus the
// global ones, in one query.
func (r *trackingRepository) FindEnabledForStore(storeID uint) ([]model.TrackingScript, error) {
	var scripts []model.TrackingScript
	err := r.db.
		Where("enabled = ?", true).
		Where("store_id = ? OR store_id IS NULL", storeID).
		Find(&scripts).Error
	return scripts, err
}

func (r *trackingRepository) FindEnabledStoreOnly(storeID uint) ([]model.TrackingScript, error) {
	var scripts []model.TrackingScript
	err := r.db.
		Where("enabled = ? AND store_id = ?", true, storeID).
		Find(&scripts).Error
	return scripts, err
}
