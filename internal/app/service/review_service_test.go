package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
	"github.com/Kiattisakchaochata/backendTopaward/internal/db"
)

func setupReviewServiceTest(t *testing.T) (ReviewService, *model.User, *model.Store, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	reviewRepo := repository.NewReviewRepository(testDB)
	storeRepo := repository.NewStoreRepository(testDB)
	svc := NewReviewService(reviewRepo, storeRepo)

	user := &model.User{Name: "Reviewer", Email: "rev@example.com", Role: model.RoleUser}
	require.NoError(t, testDB.Create(user).Error)

	category := &model.Category{Name: "Restaurants", IsActive: true}
	require.NoError(t, testDB.Create(category).Error)

	store := &model.Store{
		Name: "Reviewed", Slug: "reviewed",
		CategoryID: category.ID, OrderNumber: 1, IsActive: true,
	}
	require.NoError(t, testDB.Create(store).Error)

	return svc, user, store, testDB
}

func TestReviewService_CreateAndAverage(t *testing.T) {
	svc, user, store, testDB := setupReviewServiceTest(t)

	review, err := svc.CreateReview(user.ID, ReviewInput{
		StoreID: store.ID, Rating: 4, Comment: "Good place",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)

	other := model.User{Name: "Other", Email: "other@example.com", Role: model.RoleUser}
	require.NoError(t, testDB.Create(&other).Error)
	_, err = svc.CreateReview(other.ID, ReviewInput{StoreID: store.ID, Rating: 2})
	require.NoError(t, err)

	summary, err := svc.GetStoreRating(store.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.ReviewCount)
	assert.InDelta(t, 3.0, summary.AverageRating, 0.001)
}

func TestReviewService_OneReviewPerUserPerStore(t *testing.T) {
	svc, user, store, _ := setupReviewServiceTest(t)

	_, err := svc.CreateReview(user.ID, ReviewInput{StoreID: store.ID, Rating: 5})
	require.NoError(t, err)

	_, err = svc.CreateReview(user.ID, ReviewInput{StoreID: store.ID, Rating: 1})
	assert.ErrorIs(t, err, ErrReviewExists)
}

func TestReviewService_RatingBounds(t *testing.T) {
	svc, user, store, _ := setupReviewServiceTest(t)

	_, err := svc.CreateReview(user.ID, ReviewInput{StoreID: store.ID, Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.CreateReview(user.ID, ReviewInput{StoreID: store.ID, Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestReviewService_OnlyAuthorOrAdminDeletes(t *testing.T) {
	svc, user, store, testDB := setupReviewServiceTest(t)

	review, err := svc.CreateReview(user.ID, ReviewInput{StoreID: store.ID, Rating: 5})
	require.NoError(t, err)

	stranger := model.User{Name: "Stranger", Email: "stranger@example.com", Role: model.RoleUser}
	require.NoError(t, testDB.Create(&stranger).Error)

	err = svc.DeleteReview(&stranger, review.ID)
	assert.ErrorIs(t, err, ErrReviewAccessDenied)

	admin := model.User{Name: "Admin", Email: "admin@example.com", Role: model.RoleAdmin}
	require.NoError(t, testDB.Create(&admin).Error)

	require.NoError(t, svc.DeleteReview(&admin, review.ID))
}

func TestReviewService_UpdateOwnReviewOnly(t *testing.T) {
	svc, user, store, testDB := setupReviewServiceTest(t)

	review, err := svc.CreateReview(user.ID, ReviewInput{StoreID: store.ID, Rating: 3})
	require.NoError(t, err)

	updated, err := svc.UpdateReview(user.ID, review.ID, ReviewInput{Rating: 5, Comment: "Better now"})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)

	stranger := model.User{Name: "Stranger", Email: "stranger@example.com", Role: model.RoleUser}
	require.NoError(t, testDB.Create(&stranger).Error)

	_, err = svc.UpdateReview(stranger.ID, review.ID, ReviewInput{Rating: 1})
	assert.ErrorIs(t, err, ErrReviewAccessDenied)
}
