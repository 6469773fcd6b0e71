package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
	"github.com/Kiattisakchaochata/backendTopaward/internal/db"
)

func setupVisitorServiceTest(t *testing.T) (VisitorService, *model.Store) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	visitorRepo := repository.NewVisitorRepository(testDB)
	storeRepo := repository.NewStoreRepository(testDB)
	svc := NewVisitorService(visitorRepo, storeRepo)

	category := &model.Category{Name: "Restaurants", IsActive: true}
	require.NoError(t, testDB.Create(category).Error)

	store := &model.Store{
		Name: "Visited", Slug: "visited",
		CategoryID: category.ID, OrderNumber: 1, IsActive: true,
	}
	require.NoError(t, testDB.Create(store).Error)

	return svc, store
}

// Without Redis every hit counts, so each call increments.
func TestVisitorService_RecordVisit(t *testing.T) {
	svc, store := setupVisitorServiceTest(t)

	first, err := svc.RecordVisit(context.Background(), store.ID, "fp-1")
	require.NoError(t, err)
	assert.True(t, first.Counted)
	assert.Equal(t, int64(1), first.Count)

	second, err := svc.RecordVisit(context.Background(), store.ID, "fp-2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Count)

	count, err := svc.GetStoreCount(store.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestVisitorService_UnknownStore(t *testing.T) {
	svc, _ := setupVisitorServiceTest(t)

	_, err := svc.RecordVisit(context.Background(), 9999, "fp-1")
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestVisitorService_CountForUnvisitedStoreIsZero(t *testing.T) {
	svc, store := setupVisitorServiceTest(t)

	count, err := svc.GetStoreCount(store.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	total, err := svc.GetTotalCount()
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
