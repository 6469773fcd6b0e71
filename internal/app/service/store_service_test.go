package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
	"github.com/Kiattisakchaochata/backendTopaward/internal/db"
	"github.com/Kiattisakchaochata/backendTopaward/internal/storage"
)

// fakeStorage satisfies storage.Storage without touching the network.
type fakeStorage struct {
	uploads   int
	destroyed []string
}

func (f *fakeStorage) Upload(_ context.Context, localPath, folder string) (string, error) {
	f.uploads++
	return fmt.Sprintf("https://cdn.test/%s/%d", folder, f.uploads), nil
}

func (f *fakeStorage) Destroy(_ context.Context, fileURL string) error {
	f.destroyed = append(f.destroyed, fileURL)
	return nil
}

func (f *fakeStorage) GeneratePresignedURL(string, string, string) (*storage.PresignedURLResponse, error) {
	return &storage.PresignedURLResponse{}, nil
}

func setupStoreServiceTest(t *testing.T) (StoreService, *model.Category, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	storeRepo := repository.NewStoreRepository(testDB)
	categoryRepo := repository.NewCategoryRepository(testDB)
	storeService := NewStoreService(testDB, storeRepo, categoryRepo, &fakeStorage{})

	category := &model.Category{Name: "Restaurants", IsActive: true}
	require.NoError(t, testDB.Create(category).Error)

	return storeService, category, testDB
}

func createTestStore(t *testing.T, svc StoreService, categoryID uint, name string, order *int) *model.Store {
	store, err := svc.CreateStore(context.Background(), CreateStoreInput{
		Name:        name,
		CategoryID:  categoryID,
		OrderNumber: order,
	})
	require.NoError(t, err)
	return store
}

func TestStoreService_SlugAllocation(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	first := createTestStore(t, svc, category.ID, "Som Tam Heaven", nil)
	assert.Equal(t, "som-tam-heaven", first.Slug)

	second := createTestStore(t, svc, category.ID, "Som Tam Heaven", nil)
	assert.Equal(t, "som-tam-heaven-2", second.Slug)

	third := createTestStore(t, svc, category.ID, "Som Tam Heaven", nil)
	assert.Equal(t, "som-tam-heaven-3", third.Slug)
}

func TestStoreService_SlugThaiName(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	store := createTestStore(t, svc, category.ID, "ร้านส้มตำ อร่อย", nil)
	assert.Equal(t, "ร้านส้มตำ-อร่อย", store.Slug)
}

func TestStoreService_SlugUnchangedWhenNameUnchanged(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	store := createTestStore(t, svc, category.ID, "Cafe Luna", nil)
	originalSlug := store.Slug

	desc := "updated description"
	sameName := store.Name
	updated, err := svc.UpdateStore(context.Background(), store.ID, UpdateStoreInput{
		Name:        &sameName,
		Description: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, originalSlug, updated.Slug)
	assert.Equal(t, desc, updated.Description)
}

func TestStoreService_SlugRecomputedOnRename(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	store := createTestStore(t, svc, category.ID, "Cafe Luna", nil)

	newName := "Cafe Sol"
	updated, err := svc.UpdateStore(context.Background(), store.ID, UpdateStoreInput{
		Name: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "cafe-sol", updated.Slug)
	assert.Equal(t, newName, updated.Name)
}

func TestStoreService_SlugKeptOnCosmeticRename(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	store := createTestStore(t, svc, category.ID, "Som Tam Heaven", nil)
	require.Equal(t, "som-tam-heaven", store.Slug)

	// Whitespace and casing touch-ups must not move the published URL.
	newName := "  SOM TAM HEAVEN "
	updated, err := svc.UpdateStore(context.Background(), store.ID, UpdateStoreInput{
		Name: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "som-tam-heaven", updated.Slug)
	assert.Equal(t, newName, updated.Name)
}

func TestStoreService_SlugSymbolOnlyNameGetsTimestampToken(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	store := createTestStore(t, svc, category.ID, "!!!", nil)
	assert.Regexp(t, `^\d+$`, store.Slug)
}

func TestStoreService_OrderDefaultsToMaxPlusOne(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	first := createTestStore(t, svc, category.ID, "Store A", nil)
	assert.Equal(t, 1, first.OrderNumber)

	second := createTestStore(t, svc, category.ID, "Store B", nil)
	assert.Equal(t, 2, second.OrderNumber)
}

func TestStoreService_ExplicitOrderConflict(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	three := 3
	createTestStore(t, svc, category.ID, "Store A", &three)

	_, err := svc.CreateStore(context.Background(), CreateStoreInput{
		Name:        "Store B",
		CategoryID:  category.ID,
		OrderNumber: &three,
	})
	require.Error(t, err)

	var conflict *OrderConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, 3, conflict.OrderNumber)
}

func TestStoreService_ExplicitFreeOrder(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	seven := 7
	store := createTestStore(t, svc, category.ID, "Store A", &seven)
	assert.Equal(t, 7, store.OrderNumber)

	// The next default still lands after it.
	next := createTestStore(t, svc, category.ID, "Store B", nil)
	assert.Equal(t, 8, next.OrderNumber)
}

func TestStoreService_NonPositiveOrderTreatedAsUnset(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	minusThree := -3
	store := createTestStore(t, svc, category.ID, "Store A", &minusThree)
	assert.Equal(t, 1, store.OrderNumber)

	zero := 0
	second := createTestStore(t, svc, category.ID, "Store B", &zero)
	assert.Equal(t, 2, second.OrderNumber)

	// An update with a non-positive order keeps the current slot.
	updated, err := svc.UpdateStore(context.Background(), store.ID, UpdateStoreInput{
		OrderNumber: &minusThree,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.OrderNumber)
}

func TestStoreService_CategoryChangeCarriesOrder(t *testing.T) {
	svc, category, testDB := setupStoreServiceTest(t)

	other := &model.Category{Name: "Cafes", IsActive: true}
	require.NoError(t, testDB.Create(other).Error)

	three := 3
	store := createTestStore(t, svc, category.ID, "Mover", &three)

	moved, err := svc.UpdateStore(context.Background(), store.ID, UpdateStoreInput{
		CategoryID: &other.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, other.ID, moved.CategoryID)
	assert.Equal(t, 3, moved.OrderNumber)
}

func TestStoreService_CategoryChangeOrderConflict(t *testing.T) {
	svc, category, testDB := setupStoreServiceTest(t)

	other := &model.Category{Name: "Cafes", IsActive: true}
	require.NoError(t, testDB.Create(other).Error)

	three := 3
	createTestStore(t, svc, other.ID, "Occupant", &three)
	store := createTestStore(t, svc, category.ID, "Mover", &three)

	_, err := svc.UpdateStore(context.Background(), store.ID, UpdateStoreInput{
		CategoryID: &other.ID,
	})
	var conflict *OrderConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, other.ID, conflict.CategoryID)
}

func TestStoreService_SwapOrder(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	three, five := 3, 5
	x := createTestStore(t, svc, category.ID, "Store X", &three)
	y := createTestStore(t, svc, category.ID, "Store Y", &five)

	swapped, err := svc.SwapOrder(x.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, swapped.OrderNumber)

	yAfter, err := svc.GetStoreByID(y.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, yAfter.OrderNumber)

	// Swapping again restores the original arrangement.
	restored, err := svc.SwapOrder(x.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, restored.OrderNumber)

	yBack, err := svc.GetStoreByID(y.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, yBack.OrderNumber)
}

func TestStoreService_SwapOrderIntoFreeSlot(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	three := 3
	store := createTestStore(t, svc, category.ID, "Solo", &three)

	moved, err := svc.SwapOrder(store.ID, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, moved.OrderNumber)
}

func TestStoreService_SwapOrderStoreNotFound(t *testing.T) {
	svc, _, _ := setupStoreServiceTest(t)

	_, err := svc.SwapOrder(9999, 1)
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestStoreService_SwapOrderRejectsNonPositiveTarget(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	store := createTestStore(t, svc, category.ID, "Store A", nil)

	_, err := svc.SwapOrder(store.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = svc.SwapOrder(store.ID, -2)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestStoreService_ReorderImages(t *testing.T) {
	svc, category, testDB := setupStoreServiceTest(t)

	store := createTestStore(t, svc, category.ID, "Gallery", nil)
	images := []model.Image{
		{StoreID: store.ID, ImageURL: "https://cdn.test/a", OrderNumber: 1},
		{StoreID: store.ID, ImageURL: "https://cdn.test/b", OrderNumber: 2},
		{StoreID: store.ID, ImageURL: "https://cdn.test/c", OrderNumber: 3},
	}
	require.NoError(t, testDB.Create(&images).Error)

	result, err := svc.ReorderImages(store.ID, []ImageOrderInput{
		{ImageID: images[0].ID, OrderNumber: 3},
		{ImageID: images[1].ID, OrderNumber: 1},
		{ImageID: images[2].ID, OrderNumber: 2},
	})
	require.NoError(t, err)
	assert.Len(t, result.Updated, 3)
	assert.Empty(t, result.Failed)

	reloaded, err := svc.GetStoreByID(store.ID)
	require.NoError(t, err)
	orders := map[string]int{}
	for _, image := range reloaded.Images {
		orders[image.ImageURL] = image.OrderNumber
	}
	assert.Equal(t, 3, orders["https://cdn.test/a"])
	assert.Equal(t, 1, orders["https://cdn.test/b"])
	assert.Equal(t, 2, orders["https://cdn.test/c"])
}

func TestStoreService_ReorderImagesReportsUnknownRows(t *testing.T) {
	svc, category, testDB := setupStoreServiceTest(t)

	store := createTestStore(t, svc, category.ID, "Gallery", nil)
	image := model.Image{StoreID: store.ID, ImageURL: "https://cdn.test/a", OrderNumber: 1}
	require.NoError(t, testDB.Create(&image).Error)

	result, err := svc.ReorderImages(store.ID, []ImageOrderInput{
		{ImageID: image.ID, OrderNumber: 2},
		{ImageID: 9999, OrderNumber: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{image.ID}, result.Updated)
	assert.Contains(t, result.Failed, uint(9999))
}

func TestStoreService_RenewFromScratch(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	store := createTestStore(t, svc, category.ID, "Fresh", nil)
	require.Nil(t, store.ExpiredAt)
	require.Equal(t, 0, store.RenewalCount)

	renewed, err := svc.RenewStore(store.ID, 12)
	require.NoError(t, err)
	require.NotNil(t, renewed.ExpiredAt)

	expected := time.Now().AddDate(0, 12, 0)
	assert.WithinDuration(t, expected, *renewed.ExpiredAt, time.Minute)
	assert.True(t, renewed.IsActive)
	assert.Equal(t, 1, renewed.RenewalCount)
}

func TestStoreService_RenewExtendsFutureExpiry(t *testing.T) {
	svc, category, testDB := setupStoreServiceTest(t)

	store := createTestStore(t, svc, category.ID, "Running", nil)
	future := time.Now().AddDate(0, 6, 0)
	require.NoError(t, testDB.Model(&model.Store{}).
		Where("id = ?", store.ID).
		Update("expired_at", future).Error)

	renewed, err := svc.RenewStore(store.ID, 3)
	require.NoError(t, err)
	require.NotNil(t, renewed.ExpiredAt)

	// Counted from the current expiry, not from now.
	assert.WithinDuration(t, future.AddDate(0, 3, 0), *renewed.ExpiredAt, time.Minute)
}

func TestStoreService_RenewLapsedCountsFromNow(t *testing.T) {
	svc, category, testDB := setupStoreServiceTest(t)

	store := createTestStore(t, svc, category.ID, "Lapsed", nil)
	past := time.Now().AddDate(0, -2, 0)
	require.NoError(t, testDB.Model(&model.Store{}).
		Where("id = ?", store.ID).
		Updates(map[string]interface{}{"expired_at": past, "is_active": false}).Error)

	renewed, err := svc.RenewStore(store.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, renewed.ExpiredAt)

	assert.WithinDuration(t, time.Now().AddDate(0, 1, 0), *renewed.ExpiredAt, time.Minute)
	assert.True(t, renewed.IsActive)
}

func TestStoreService_RenewLifetime(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	store := createTestStore(t, svc, category.ID, "Forever", nil)

	renewed, err := svc.RenewStore(store.ID, 600)
	require.NoError(t, err)
	require.NotNil(t, renewed.ExpiredAt)

	assert.WithinDuration(t, time.Now().AddDate(100, 0, 0), *renewed.ExpiredAt, time.Hour)
	assert.Equal(t, 1, renewed.RenewalCount)
}

func TestStoreService_RenewInvalidMonths(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	store := createTestStore(t, svc, category.ID, "Store", nil)

	_, err := svc.RenewStore(store.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidMonths)

	_, err = svc.RenewStore(store.ID, -5)
	assert.ErrorIs(t, err, ErrInvalidMonths)
}

func TestStoreService_RenewCountsExactlyOnce(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	store := createTestStore(t, svc, category.ID, "Loyal", nil)
	for i := 1; i <= 3; i++ {
		renewed, err := svc.RenewStore(store.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, i, renewed.RenewalCount)
	}
}

func TestStoreService_Reactivate(t *testing.T) {
	svc, category, testDB := setupStoreServiceTest(t)

	store := createTestStore(t, svc, category.ID, "Dormant", nil)
	require.NoError(t, testDB.Model(&model.Store{}).
		Where("id = ?", store.ID).
		Update("is_active", false).Error)

	target := time.Now().AddDate(1, 0, 0).Truncate(time.Second)
	reactivated, err := svc.ReactivateStore(store.ID, target)
	require.NoError(t, err)
	require.NotNil(t, reactivated.ExpiredAt)

	assert.WithinDuration(t, target, *reactivated.ExpiredAt, time.Second)
	assert.True(t, reactivated.IsActive)
	assert.Equal(t, 1, reactivated.RenewalCount)
}

func TestStoreService_StatusDoesNotTouchRenewalCount(t *testing.T) {
	svc, category, _ := setupStoreServiceTest(t)

	store := createTestStore(t, svc, category.ID, "Store", nil)

	disabled, err := svc.SetStoreStatus(store.ID, false)
	require.NoError(t, err)
	assert.False(t, disabled.IsActive)
	assert.Equal(t, 0, disabled.RenewalCount)

	enabled, err := svc.SetStoreStatus(store.ID, true)
	require.NoError(t, err)
	assert.True(t, enabled.IsActive)
	assert.Equal(t, 0, enabled.RenewalCount)
}

func TestStoreService_ExpiringAndExpiredQueries(t *testing.T) {
	svc, category, testDB := setupStoreServiceTest(t)

	soon := createTestStore(t, svc, category.ID, "Soon", nil)
	later := createTestStore(t, svc, category.ID, "Later", nil)
	gone := createTestStore(t, svc, category.ID, "Gone", nil)

	require.NoError(t, testDB.Model(&model.Store{}).Where("id = ?", soon.ID).
		Update("expired_at", time.Now().AddDate(0, 0, 10)).Error)
	require.NoError(t, testDB.Model(&model.Store{}).Where("id = ?", later.ID).
		Update("expired_at", time.Now().AddDate(0, 6, 0)).Error)
	require.NoError(t, testDB.Model(&model.Store{}).Where("id = ?", gone.ID).
		Update("expired_at", time.Now().AddDate(0, 0, -1)).Error)

	expiring, err := svc.GetExpiringStores(30)
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, soon.ID, expiring[0].ID)

	expired, err := svc.GetExpiredStores()
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, gone.ID, expired[0].ID)
}

func TestStoreService_DeactivateExpiredStores(t *testing.T) {
	svc, category, testDB := setupStoreServiceTest(t)

	expired := createTestStore(t, svc, category.ID, "Expired", nil)
	alive := createTestStore(t, svc, category.ID, "Alive", nil)

	require.NoError(t, testDB.Model(&model.Store{}).Where("id = ?", expired.ID).
		Update("expired_at", time.Now().AddDate(0, 0, -1)).Error)
	require.NoError(t, testDB.Model(&model.Store{}).Where("id = ?", alive.ID).
		Update("expired_at", time.Now().AddDate(0, 1, 0)).Error)

	count, err := svc.DeactivateExpiredStores()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	reloaded, err := svc.GetStoreByID(expired.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)

	stillAlive, err := svc.GetStoreByID(alive.ID)
	require.NoError(t, err)
	assert.True(t, stillAlive.IsActive)

	// Running the sweep again is a no-op.
	again, err := svc.DeactivateExpiredStores()
	require.NoError(t, err)
	assert.Equal(t, 0, again)
}

func TestStoreService_DeleteStoreRemovesMedia(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	storeRepo := repository.NewStoreRepository(testDB)
	categoryRepo := repository.NewCategoryRepository(testDB)
	media := &fakeStorage{}
	svc := NewStoreService(testDB, storeRepo, categoryRepo, media)

	category := &model.Category{Name: "Restaurants", IsActive: true}
	require.NoError(t, testDB.Create(category).Error)

	store := createTestStore(t, svc, category.ID, "Doomed", nil)
	require.NoError(t, testDB.Model(&model.Store{}).Where("id = ?", store.ID).
		Update("cover_image", "https://cdn.test/cover").Error)
	image := model.Image{StoreID: store.ID, ImageURL: "https://cdn.test/img", OrderNumber: 1}
	require.NoError(t, testDB.Create(&image).Error)

	require.NoError(t, svc.DeleteStore(context.Background(), store.ID))

	_, err = svc.GetStoreByID(store.ID)
	assert.ErrorIs(t, err, ErrStoreNotFound)
	assert.Contains(t, media.destroyed, "https://cdn.test/cover")
	assert.Contains(t, media.destroyed, "https://cdn.test/img")
}

func TestStoreService_GetPopularStores(t *testing.T) {
	svc, category, testDB := setupStoreServiceTest(t)

	good := createTestStore(t, svc, category.ID, "Good", nil)
	bad := createTestStore(t, svc, category.ID, "Bad", nil)

	user := model.User{Name: "Reviewer", Email: "rev@example.com", Role: model.RoleUser}
	require.NoError(t, testDB.Create(&user).Error)

	require.NoError(t, testDB.Create(&model.Review{StoreID: good.ID, UserID: user.ID, Rating: 5}).Error)
	require.NoError(t, testDB.Create(&model.Review{StoreID: bad.ID, UserID: user.ID, Rating: 2}).Error)

	popular, err := svc.GetPopularStores(4.0)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, good.ID, popular[0].Store.ID)
	assert.Equal(t, 5.0, popular[0].AverageRating)
}
