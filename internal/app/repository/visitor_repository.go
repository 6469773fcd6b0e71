package repository

import (
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VisitorRepository interface {
	Increment(storeID uint) (int64, error)
	Get(storeID uint) (int64, error)
	Total() (int64, error)
}

type visitorRepository struct {
	db *gorm.DB
}

func NewVisitorRepository(db *gorm.DB) VisitorRepository {
	return &visitorRepository{db: db}
}

// Increment bumps the per-store counter, creating the row on first visit.
func (r *visitorRepository) Increment(storeID uint) (int64, error) {
	counter := model.VisitorCounter{StoreID: storeID, Count: 1}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("visitor_counters.count + 1")}),
	}).Create(&counter).Error
	if err != nil {
		return 0, err
	}
	return r.Get(storeID)
}

func (r *visitorRepository) Get(storeID uint) (int64, error) {
	var counter model.VisitorCounter
	err := r.db.Where("store_id = ?", storeID).First(&counter).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return counter.Count, nil
}

func (r *visitorRepository) Total() (int64, error) {
	var total int64
	err := r.db.Model(&model.VisitorCounter{}).
		Select("COALESCE(SUM(count), 0)").
		Scan(&total).Error
	return total, err
}
