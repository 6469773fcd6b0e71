package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/service"
	apperrors "github.com/Kiattisakchaochata/backendTopaward/internal/errors"
)

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

func (ctrl *CategoryController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		apperrors.NotFound(c, apperrors.CategoryNotFound, "Category not found")
	case errors.Is(err, service.ErrCategoryExists):
		apperrors.Conflict(c, apperrors.CategoryExists, "A category with this name already exists")
	case errors.Is(err, service.ErrCategoryInUse):
		apperrors.Conflict(c, apperrors.CategoryInUse, "The category still has stores attached")
	default:
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "category")
	}
}

// GetCategories lists categories; include=stores nests each category's
// active stores in display order
// GET /api/categories?all=true&include=stores
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	var (
		categories []model.Category
		err        error
	)
	if c.Query("include") == "stores" {
		categories, err = ctrl.categoryService.GetCategoriesWithStores(activeOnly)
	} else {
		categories, err = ctrl.categoryService.GetCategories(activeOnly)
	}
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategory returns one category
// GET /api/categories/:id
func (ctrl *CategoryController) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := ctrl.categoryService.GetCategoryByID(id)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

// CreateCategory creates a category
// POST /api/admin/categories
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req service.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "A category name is required")
		return
	}

	category, err := ctrl.categoryService.CreateCategory(req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// UpdateCategory updates a category
// PATCH /api/admin/categories/:id
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid category payload")
		return
	}

	category, err := ctrl.categoryService.UpdateCategory(id, req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory removes an empty category
// DELETE /api/admin/categories/:id
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.categoryService.DeleteCategory(id); err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
