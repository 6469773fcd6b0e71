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

func setupCategoryServiceTest(t *testing.T) (CategoryService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})
	return NewCategoryService(repository.NewCategoryRepository(testDB)), testDB
}

func TestCategoryService_CreateAndDuplicate(t *testing.T) {
	svc, _ := setupCategoryServiceTest(t)

	category, err := svc.CreateCategory(CategoryInput{Name: "Cafes"})
	require.NoError(t, err)
	assert.True(t, category.IsActive)

	_, err = svc.CreateCategory(CategoryInput{Name: "Cafes"})
	assert.ErrorIs(t, err, ErrCategoryExists)
}

func TestCategoryService_DeleteRefusedWhileInUse(t *testing.T) {
	svc, testDB := setupCategoryServiceTest(t)

	category, err := svc.CreateCategory(CategoryInput{Name: "Cafes"})
	require.NoError(t, err)

	store := model.Store{
		Name: "Tenant", Slug: "tenant",
		CategoryID: category.ID, OrderNumber: 1, IsActive: true,
	}
	require.NoError(t, testDB.Create(&store).Error)

	err = svc.DeleteCategory(category.ID)
	assert.ErrorIs(t, err, ErrCategoryInUse)

	// Once the store is gone the category can be removed.
	require.NoError(t, testDB.Delete(&store).Error)
	require.NoError(t, svc.DeleteCategory(category.ID))

	_, err = svc.GetCategoryByID(category.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryService_ListWithStores(t *testing.T) {
	svc, testDB := setupCategoryServiceTest(t)

	category, err := svc.CreateCategory(CategoryInput{Name: "Cafes"})
	require.NoError(t, err)

	stores := []model.Store{
		{Name: "Second", Slug: "second", CategoryID: category.ID, OrderNumber: 2, IsActive: true},
		{Name: "First", Slug: "first", CategoryID: category.ID, OrderNumber: 1, IsActive: true},
		{Name: "Hidden", Slug: "hidden", CategoryID: category.ID, OrderNumber: 3, IsActive: false},
	}
	for i := range stores {
		require.NoError(t, testDB.Create(&stores[i]).Error)
	}

	categories, err := svc.GetCategoriesWithStores(true)
	require.NoError(t, err)
	require.Len(t, categories, 1)

	// Only active stores, in display order.
	require.Len(t, categories[0].Stores, 2)
	assert.Equal(t, "First", categories[0].Stores[0].Name)
	assert.Equal(t, "Second", categories[0].Stores[1].Name)
}

func TestCategoryService_ActiveFilter(t *testing.T) {
	svc, _ := setupCategoryServiceTest(t)

	_, err := svc.CreateCategory(CategoryInput{Name: "Visible"})
	require.NoError(t, err)

	off := false
	_, err = svc.CreateCategory(CategoryInput{Name: "Hidden", IsActive: &off})
	require.NoError(t, err)

	active, err := svc.GetCategories(true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Visible", active[0].Name)

	all, err := svc.GetCategories(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
