package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
	apperrors "github.com/Kiattisakchaochata/backendTopaward/internal/errors"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/logger"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category still has stores")
	ErrCategoryExists   = errors.New("category name already exists")
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type CategoryService interface {
	CreateCategory(input CategoryInput) (*model.Category, error)
	UpdateCategory(id uint, input CategoryInput) (*model.Category, error)
	DeleteCategory(id uint) error
	GetCategories(activeOnly bool) ([]model.Category, error)
	GetCategoriesWithStores(activeOnly bool) ([]model.Category, error)
	GetCategoryByID(id uint) (*model.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(input CategoryInput) (*model.Category, error) {
	category := &model.Category{
		Name:        input.Name,
		Description: input.Description,
		IsActive:    true,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}

	logger.Info("Category created", map[string]interface{}{
		"category_id": category.ID,
		"name":        category.Name,
	})
	return category, nil
}

func (s *categoryService) UpdateCategory(id uint, input CategoryInput) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if input.Name != "" {
		category.Name = input.Name
	}
	category.Description = input.Description
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := s.categoryRepo.Update(category); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return category, nil
}

// DeleteCategory refuses to remove a category that still owns stores.
func (s *categoryService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	count, err := s.categoryRepo.CountStores(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		if apperrors.IsForeignKeyViolation(err) {
			return ErrCategoryInUse
		}
		return err
	}
	return nil
}

func (s *categoryService) GetCategories(activeOnly bool) ([]model.Category, error) {
	return s.categoryRepo.FindAll(activeOnly)
}

func (s *categoryService) GetCategoriesWithStores(activeOnly bool) ([]model.Category, error) {
	return s.categoryRepo.FindAllWithStores(activeOnly)
}

func (s *categoryService) GetCategoryByID(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}
