package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
	"github.com/Kiattisakchaochata/backendTopaward/internal/storage"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/logger"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/util"
)

var (
	ErrStoreNotFound      = errors.New("store not found")
	ErrStoreImageNotFound = errors.New("store image not found")
	ErrCategoryRequired   = errors.New("category is required")
	ErrInvalidMonths      = errors.New("months must be a positive number")
	ErrInvalidOrder       = errors.New("order number must be positive")
	ErrMissingExpiry      = errors.New("expiration date is required")
	ErrNameRequired       = errors.New("store name is required")
)

// OrderConflictError reports that an explicitly requested order number is
// already taken inside the category.
type OrderConflictError struct {
	CategoryID  uint
	OrderNumber int
}

func (e *OrderConflictError) Error() string {
	return fmt.Sprintf("order number %d is already taken in category %d", e.OrderNumber, e.CategoryID)
}

const (
	slugProbeMax = 200
	// Renewals at or beyond this many months grant a 100-year extension.
	lifetimeMonths = 600
)

type CreateStoreInput struct {
	Name        string
	Description string
	Address     string
	Province    string
	SocialLinks model.JSONMap
	CategoryID  uint
	OrderNumber *int
	ExpiredAt   *time.Time
	IsActive    *bool
	CoverPath   string
	ImagePaths  []string
}

type UpdateStoreInput struct {
	Name        *string
	Description *string
	Address     *string
	Province    *string
	SocialLinks model.JSONMap
	CategoryID  *uint
	OrderNumber *int
	ExpiredAt   *time.Time
	// ExpiredAtSet distinguishes "clear the expiry" from "leave it alone".
	ExpiredAtSet bool
	IsActive     *bool
	CoverPath    string
}

type ImageOrderInput struct {
	ImageID     uint `json:"image_id"`
	OrderNumber int  `json:"order_number"`
}

// ImageReorderResult reports per-row outcomes of a batch reorder.
type ImageReorderResult struct {
	Updated []uint          `json:"updated"`
	Failed  map[uint]string `json:"failed,omitempty"`
}

type StoreLoyalty struct {
	StoreID      uint       `json:"store_id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	RenewCount   int        `json:"renew_count"`
	ExpiredAt    *time.Time `json:"expired_at"`
	IsActive     bool       `json:"is_active"`
	VisitorCount int64      `json:"visitor_count"`
}

type PopularStore struct {
	Store         model.StoreResponse `json:"store"`
	AverageRating float64             `json:"average_rating"`
	ReviewCount   int                 `json:"review_count"`
}

type StoreService interface {
	CreateStore(ctx context.Context, input CreateStoreInput) (*model.Store, error)
	UpdateStore(ctx context.Context, id uint, input UpdateStoreInput) (*model.Store, error)
	DeleteStore(ctx context.Context, id uint) error
	GetStores(filter repository.StoreFilter) ([]model.Store, error)
	GetStoreByID(id uint) (*model.Store, error)
	GetStoreBySlug(slug string) (*model.Store, error)
	SearchStores(query string) ([]model.Store, error)
	GetPopularStores(minRating float64) ([]PopularStore, error)

	SwapOrder(id uint, targetOrder int) (*model.Store, error)
	ReorderImages(storeID uint, items []ImageOrderInput) (*ImageReorderResult, error)

	RenewStore(id uint, months int) (*model.Store, error)
	ReactivateStore(id uint, expiredAt time.Time) (*model.Store, error)
	SetStoreStatus(id uint, active bool) (*model.Store, error)

	GetExpiringStores(days int) ([]model.Store, error)
	GetExpiredStores() ([]model.Store, error)
	DeactivateExpiredStores() (int, error)

	GetLoyaltyStats() ([]StoreLoyalty, error)

	UpdateCover(ctx context.Context, id uint, localPath string) (*model.Store, error)
	AddImages(ctx context.Context, storeID uint, localPaths []string) ([]model.Image, error)
	DeleteImage(ctx context.Context, imageID uint) error
}

type storeService struct {
	db           *gorm.DB
	storeRepo    repository.StoreRepository
	categoryRepo repository.CategoryRepository
	store        storage.Storage
}

func NewStoreService(db *gorm.DB, storeRepo repository.StoreRepository, categoryRepo repository.CategoryRepository, mediaStore storage.Storage) StoreService {
	return &storeService{
		db:           db,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
		store:        mediaStore,
	}
}

// allocateSlug turns a name into a unique slug. The normalized base is
// tried first, then base-2 through base-200, then base-<unix millis>.
func (s *storeService) allocateSlug(name string, excludeID uint) (string, error) {
	base := util.Slugify(name)
	if base == "" {
		base = fmt.Sprintf("%d", time.Now().UnixMilli())
	}

	existing, err := s.storeRepo.FindSlugsByPrefix(base, excludeID)
	if err != nil {
		return "", err
	}

	taken := make(map[string]struct{}, len(existing))
	for _, slug := range existing {
		taken[slug] = struct{}{}
	}

	if _, ok := taken[base]; !ok {
		return base, nil
	}
	for i := 2; i <= slugProbeMax; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if _, ok := taken[candidate]; !ok {
			return candidate, nil
		}
	}
	return fmt.Sprintf("%s-%d", base, time.Now().UnixMilli()), nil
}

// allocateOrder resolves the order number for a store in a category.
// Without an explicit request the next free slot (max+1) is used; a
// non-positive request counts as unset, the negative range is reserved
// for swap sentinels. An explicit request that is already taken is a
// conflict, never a silent reassignment.
func (s *storeService) allocateOrder(categoryID uint, requested *int, excludeID uint) (int, error) {
	if requested == nil || *requested < 1 {
		max, err := s.storeRepo.MaxOrderInCategory(categoryID)
		if err != nil {
			return 0, err
		}
		return max + 1, nil
	}

	taken, err := s.storeRepo.OrderTaken(categoryID, *requested, excludeID)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, &OrderConflictError{CategoryID: categoryID, OrderNumber: *requested}
	}
	return *requested, nil
}

func (s *storeService) CreateStore(ctx context.Context, input CreateStoreInput) (*model.Store, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.CategoryID == 0 {
		return nil, ErrCategoryRequired
	}
	if _, err := s.categoryRepo.FindByID(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	slug, err := s.allocateSlug(input.Name, 0)
	if err != nil {
		return nil, err
	}
	order, err := s.allocateOrder(input.CategoryID, input.OrderNumber, 0)
	if err != nil {
		return nil, err
	}

	store := &model.Store{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Address:     input.Address,
		Province:    input.Province,
		SocialLinks: input.SocialLinks,
		CategoryID:  input.CategoryID,
		OrderNumber: order,
		IsActive:    true,
		ExpiredAt:   input.ExpiredAt,
	}
	if input.IsActive != nil {
		store.IsActive = *input.IsActive
	}

	if input.CoverPath != "" {
		coverURL, err := s.store.Upload(ctx, input.CoverPath, "stores/covers")
		if err != nil {
			return nil, err
		}
		store.CoverImage = coverURL
	}

	if err := s.storeRepo.Create(nil, store); err != nil {
		return nil, err
	}

	logger.Info("Store created", map[string]interface{}{
		"store_id":     store.ID,
		"slug":         store.Slug,
		"order_number": store.OrderNumber,
	})

	// Gallery uploads happen after the row exists. A failed upload does
	// not roll the store back; the admin retries via the image endpoint.
	if len(input.ImagePaths) > 0 {
		if _, err := s.AddImages(ctx, store.ID, input.ImagePaths); err != nil {
			logger.Error("Gallery upload failed after store creation", err, map[string]interface{}{
				"store_id": store.ID,
			})
		}
	}

	return s.storeRepo.FindByID(store.ID)
}

func (s *storeService) UpdateStore(ctx context.Context, id uint, input UpdateStoreInput) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	// A non-positive order request counts as unset.
	if input.OrderNumber != nil && *input.OrderNumber < 1 {
		input.OrderNumber = nil
	}

	values := map[string]interface{}{}

	// The slug is recomputed only when the name materially changes;
	// whitespace or casing touch-ups keep the published URL stable.
	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		if !strings.EqualFold(strings.TrimSpace(*input.Name), strings.TrimSpace(store.Name)) {
			slug, err := s.allocateSlug(*input.Name, store.ID)
			if err != nil {
				return nil, err
			}
			values["slug"] = slug
		}
		if *input.Name != store.Name {
			values["name"] = *input.Name
		}
	}
	if input.Description != nil {
		values["description"] = *input.Description
	}
	if input.Address != nil {
		values["address"] = *input.Address
	}
	if input.Province != nil {
		values["province"] = *input.Province
	}
	if input.SocialLinks != nil {
		values["social_links"] = input.SocialLinks
	}
	if input.ExpiredAtSet {
		values["expired_at"] = input.ExpiredAt
	}
	if input.IsActive != nil {
		values["is_active"] = *input.IsActive
	}

	categoryID := store.CategoryID
	if input.CategoryID != nil && *input.CategoryID != store.CategoryID {
		if _, err := s.categoryRepo.FindByID(*input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		categoryID = *input.CategoryID

		// Moving category carries the order along; the slot must be free
		// in the destination.
		order := store.OrderNumber
		if input.OrderNumber != nil {
			order = *input.OrderNumber
		}
		taken, err := s.storeRepo.OrderTaken(categoryID, order, store.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, &OrderConflictError{CategoryID: categoryID, OrderNumber: order}
		}
		values["category_id"] = categoryID
		values["order_number"] = order
	} else if input.OrderNumber != nil && *input.OrderNumber != store.OrderNumber {
		order, err := s.allocateOrder(categoryID, input.OrderNumber, store.ID)
		if err != nil {
			return nil, err
		}
		values["order_number"] = order
	}

	if input.CoverPath != "" {
		coverURL, err := s.store.Upload(ctx, input.CoverPath, "stores/covers")
		if err != nil {
			return nil, err
		}
		if store.CoverImage != "" {
			if err := s.store.Destroy(ctx, store.CoverImage); err != nil {
				logger.Error("Failed to remove previous cover", err, map[string]interface{}{
					"store_id": store.ID,
				})
			}
		}
		values["cover_image"] = coverURL
	}

	if err := s.storeRepo.Updates(nil, store.ID, values); err != nil {
		return nil, err
	}

	return s.storeRepo.FindByID(store.ID)
}

func (s *storeService) DeleteStore(ctx context.Context, id uint) error {
	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoreNotFound
		}
		return err
	}

	if err := s.storeRepo.Delete(id); err != nil {
		return err
	}

	// Remote cleanup is best effort; the rows are already gone.
	if store.CoverImage != "" {
		if err := s.store.Destroy(ctx, store.CoverImage); err != nil {
			logger.Error("Failed to remove cover object", err, map[string]interface{}{
				"store_id": id,
			})
		}
	}
	for _, image := range store.Images {
		if err := s.store.Destroy(ctx, image.ImageURL); err != nil {
			logger.Error("Failed to remove image object", err, map[string]interface{}{
				"image_id": image.ID,
			})
		}
	}

	logger.Info("Store deleted", map[string]interface{}{
		"store_id": id,
	})
	return nil
}

func (s *storeService) GetStores(filter repository.StoreFilter) ([]model.Store, error) {
	return s.storeRepo.FindAll(filter)
}

func (s *storeService) GetStoreByID(id uint) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return store, nil
}

func (s *storeService) GetStoreBySlug(slug string) (*model.Store, error) {
	store, err := s.storeRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return store, nil
}

func (s *storeService) SearchStores(query string) ([]model.Store, error) {
	return s.storeRepo.Search(query)
}

// GetPopularStores returns active stores whose average rating reaches
// minRating, best rated first.
func (s *storeService) GetPopularStores(minRating float64) ([]PopularStore, error) {
	stores, err := s.storeRepo.FindAllWithReviews()
	if err != nil {
		return nil, err
	}

	popular := make([]PopularStore, 0)
	for _, store := range stores {
		if !store.IsActive || len(store.Reviews) == 0 {
			continue
		}
		sum := 0
		for _, review := range store.Reviews {
			sum += review.Rating
		}
		avg := float64(sum) / float64(len(store.Reviews))
		if avg >= minRating {
			popular = append(popular, PopularStore{
				Store:         store.ToResponse(),
				AverageRating: avg,
				ReviewCount:   len(store.Reviews),
			})
		}
	}

	sort.Slice(popular, func(i, j int) bool {
		if popular[i].AverageRating != popular[j].AverageRating {
			return popular[i].AverageRating > popular[j].AverageRating
		}
		return popular[i].ReviewCount > popular[j].ReviewCount
	})
	return popular, nil
}

// SwapOrder exchanges the store's order number with whichever store holds
// targetOrder in the same category. The occupant is parked on a negative
// sentinel so the unique index never sees both rows on the same value.
// When the slot is free the store simply moves there.
func (s *storeService) SwapOrder(id uint, targetOrder int) (*model.Store, error) {
	if targetOrder < 1 {
		return nil, ErrInvalidOrder
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var store model.Store
		if err := tx.First(&store, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStoreNotFound
			}
			return err
		}
		if store.OrderNumber == targetOrder {
			return nil
		}

		var occupant model.Store
		err := tx.Where("category_id = ? AND order_number = ? AND id != ?",
			store.CategoryID, targetOrder, store.ID).First(&occupant).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Model(&model.Store{}).Where("id = ?", store.ID).
				Update("order_number", targetOrder).Error
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&model.Store{}).Where("id = ?", occupant.ID).
			Update("order_number", -1).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Store{}).Where("id = ?", store.ID).
			Update("order_number", targetOrder).Error; err != nil {
			return err
		}
		return tx.Model(&model.Store{}).Where("id = ?", occupant.ID).
			Update("order_number", store.OrderNumber).Error
	})
	if err != nil {
		return nil, err
	}
	return s.storeRepo.FindByID(id)
}

// ReorderImages applies a batch of explicit image orders in two phases:
// every image is first parked on a distinct negative temp, then moved to
// its final order. Rows that fail are reported and skipped; the rest
// still land.
func (s *storeService) ReorderImages(storeID uint, items []ImageOrderInput) (*ImageReorderResult, error) {
	if _, err := s.storeRepo.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	result := &ImageReorderResult{
		Updated: make([]uint, 0, len(items)),
		Failed:  make(map[uint]string),
	}

	parked := make([]ImageOrderInput, 0, len(items))
	for i, item := range items {
		temp := -(i + 1)
		res := s.db.Model(&model.Image{}).
			Where("id = ? AND store_id = ?", item.ImageID, storeID).
			Update("order_number", temp)
		if res.Error != nil {
			result.Failed[item.ImageID] = res.Error.Error()
			continue
		}
		if res.RowsAffected == 0 {
			result.Failed[item.ImageID] = "image not found"
			continue
		}
		parked = append(parked, item)
	}

	for _, item := range parked {
		err := s.db.Model(&model.Image{}).
			Where("id = ? AND store_id = ?", item.ImageID, storeID).
			Update("order_number", item.OrderNumber).Error
		if err != nil {
			result.Failed[item.ImageID] = err.Error()
			continue
		}
		result.Updated = append(result.Updated, item.ImageID)
	}

	if len(result.Failed) == 0 {
		result.Failed = nil
	}
	return result, nil
}

// RenewStore extends the subscription by months counted from whichever
// is later, now or the current expiry. 600 months or more grants a flat
// 100 years. Exactly one renewal is recorded per call.
func (s *storeService) RenewStore(id uint, months int) (*model.Store, error) {
	if months < 1 {
		return nil, ErrInvalidMonths
	}

	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	now := time.Now()
	base := now
	if store.ExpiredAt != nil && store.ExpiredAt.After(now) {
		base = *store.ExpiredAt
	}

	var newExpiry time.Time
	if months >= lifetimeMonths {
		newExpiry = base.AddDate(100, 0, 0)
	} else {
		newExpiry = base.AddDate(0, months, 0)
	}

	err = s.storeRepo.Updates(nil, store.ID, map[string]interface{}{
		"expired_at":    newExpiry,
		"is_active":     true,
		"renewal_count": gorm.Expr("renewal_count + 1"),
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Store renewed", map[string]interface{}{
		"store_id":   store.ID,
		"months":     months,
		"expired_at": newExpiry,
	})
	return s.storeRepo.FindByID(store.ID)
}

// ReactivateStore turns the store back on with an absolute expiry.
func (s *storeService) ReactivateStore(id uint, expiredAt time.Time) (*model.Store, error) {
	if expiredAt.IsZero() {
		return nil, ErrMissingExpiry
	}

	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	err = s.storeRepo.Updates(nil, store.ID, map[string]interface{}{
		"expired_at":    expiredAt,
		"is_active":     true,
		"renewal_count": gorm.Expr("renewal_count + 1"),
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Store reactivated", map[string]interface{}{
		"store_id":   store.ID,
		"expired_at": expiredAt,
	})
	return s.storeRepo.FindByID(store.ID)
}

// SetStoreStatus flips visibility without touching the renewal count.
func (s *storeService) SetStoreStatus(id uint, active bool) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	err = s.storeRepo.Updates(nil, store.ID, map[string]interface{}{
		"is_active": active,
	})
	if err != nil {
		return nil, err
	}
	return s.storeRepo.FindByID(store.ID)
}

func (s *storeService) GetExpiringStores(days int) ([]model.Store, error) {
	if days <= 0 {
		days = 30
	}
	now := time.Now()
	return s.storeRepo.FindExpiring(now, now.AddDate(0, 0, days))
}

func (s *storeService) GetExpiredStores() ([]model.Store, error) {
	return s.storeRepo.FindExpired(time.Now(), false)
}

// DeactivateExpiredStores disables every active store whose expiry has
// passed and returns how many were touched. The scheduler calls this.
func (s *storeService) DeactivateExpiredStores() (int, error) {
	res := s.db.Model(&model.Store{}).
		Where("is_active = ?", true).
		Where("expired_at IS NOT NULL AND expired_at <= ?", time.Now()).
		Update("is_active", false)
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected > 0 {
		logger.Info("Expired stores deactivated", map[string]interface{}{
			"count": res.RowsAffected,
		})
	}
	return int(res.RowsAffected), nil
}

func (s *storeService) GetLoyaltyStats() ([]StoreLoyalty, error) {
	stores, err := s.storeRepo.FindAll(repository.StoreFilter{})
	if err != nil {
		return nil, err
	}

	stats := make([]StoreLoyalty, 0, len(stores))
	for _, store := range stores {
		entry := StoreLoyalty{
			StoreID:    store.ID,
			Name:       store.Name,
			RenewCount: store.RenewalCount,
			ExpiredAt:  store.ExpiredAt,
			IsActive:   store.IsActive,
		}
		if store.Category != nil {
			entry.Category = store.Category.Name
		}
		if store.VisitorCounter != nil {
			entry.VisitorCount = store.VisitorCounter.Count
		}
		stats = append(stats, entry)
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].RenewCount > stats[j].RenewCount
	})
	return stats, nil
}

func (s *storeService) UpdateCover(ctx context.Context, id uint, localPath string) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	coverURL, err := s.store.Upload(ctx, localPath, "stores/covers")
	if err != nil {
		return nil, err
	}

	if store.CoverImage != "" {
		if err := s.store.Destroy(ctx, store.CoverImage); err != nil {
			logger.Error("Failed to remove previous cover", err, map[string]interface{}{
				"store_id": store.ID,
			})
		}
	}

	err = s.storeRepo.Updates(nil, store.ID, map[string]interface{}{
		"cover_image": coverURL,
	})
	if err != nil {
		return nil, err
	}
	return s.storeRepo.FindByID(store.ID)
}

// AddImages uploads gallery files and appends them after the store's
// current highest order.
func (s *storeService) AddImages(ctx context.Context, storeID uint, localPaths []string) ([]model.Image, error) {
	if _, err := s.storeRepo.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	max, err := s.storeRepo.MaxImageOrder(storeID)
	if err != nil {
		return nil, err
	}

	images := make([]model.Image, 0, len(localPaths))
	next := max + 1
	for _, path := range localPaths {
		imageURL, err := s.store.Upload(ctx, path, "stores/images")
		if err != nil {
			logger.Error("Image upload failed", err, map[string]interface{}{
				"store_id": storeID,
				"path":     path,
			})
			continue
		}
		images = append(images, model.Image{
			StoreID:     storeID,
			ImageURL:    imageURL,
			OrderNumber: next,
		})
		next++
	}

	if len(images) == 0 {
		if len(localPaths) > 0 {
			return nil, fmt.Errorf("all image uploads failed")
		}
		return images, nil
	}

	if err := s.storeRepo.CreateImages(images); err != nil {
		return nil, err
	}
	return images, nil
}

func (s *storeService) DeleteImage(ctx context.Context, imageID uint) error {
	image, err := s.storeRepo.FindImageByID(imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoreImageNotFound
		}
		return err
	}

	if err := s.storeRepo.DeleteImage(imageID); err != nil {
		return err
	}

	if err := s.store.Destroy(ctx, image.ImageURL); err != nil {
		logger.Error("Failed to remove image object", err, map[string]interface{}{
			"image_id": imageID,
		})
	}
	return nil
}
