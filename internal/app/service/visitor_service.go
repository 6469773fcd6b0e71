package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/redis"
)

// visitDedupWindow is how long a repeat hit from the same client is
// ignored.
const visitDedupWindow = 24 * time.Hour

type VisitResult struct {
	StoreID uint  `json:"store_id"`
	Count   int64 `json:"count"`
	Counted bool  `json:"counted"`
}

type VisitorService interface {
	RecordVisit(ctx context.Context, storeID uint, visitorKey string) (*VisitResult, error)
	GetStoreCount(storeID uint) (int64, error)
	GetTotalCount() (int64, error)
}

type visitorService struct {
	visitorRepo repository.VisitorRepository
	storeRepo   repository.StoreRepository
}

func NewVisitorService(visitorRepo repository.VisitorRepository, storeRepo repository.StoreRepository) VisitorService {
	return &visitorService{
		visitorRepo: visitorRepo,
		storeRepo:   storeRepo,
	}
}

// RecordVisit counts a page hit for a store. Hits from the same client
// inside the dedup window return the current count without incrementing.
func (s *visitorService) RecordVisit(ctx context.Context, storeID uint, visitorKey string) (*VisitResult, error) {
	if _, err := s.storeRepo.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	fresh, err := redis.MarkVisit(ctx, storeID, visitorKey, visitDedupWindow)
	if err != nil {
		// Redis trouble never blocks the page; count the hit.
		fresh = true
	}

	if !fresh {
		count, err := s.visitorRepo.Get(storeID)
		if err != nil {
			return nil, err
		}
		return &VisitResult{StoreID: storeID, Count: count, Counted: false}, nil
	}

	count, err := s.visitorRepo.Increment(storeID)
	if err != nil {
		return nil, err
	}
	return &VisitResult{StoreID: storeID, Count: count, Counted: true}, nil
}

func (s *visitorService) GetStoreCount(storeID uint) (int64, error) {
	return s.visitorRepo.Get(storeID)
}

func (s *visitorService) GetTotalCount() (int64, error) {
	return s.visitorRepo.Total()
}
