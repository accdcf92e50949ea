package controller

import (
	"laraigo_backend/internals/features/portal/categories/dto"
	"laraigo_backend/internals/features/portal/categories/model"
	helper "laraigo_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateCategory = validator.New()

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// =============================
// 📄 Get All Categories
// =============================
func (ctrl *CategoryController) GetAllCategories(c *fiber.Ctx) error {
	categories := []model.CategoryModel{}
	if err := ctrl.DB.Order("category_created_at ASC").Find(&categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(categories)
}

// =============================
// ➕ Create Category
// =============================
func (ctrl *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var body dto.CreateCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCategory.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	category := model.CategoryModel{
		CategoryTitle:       body.Title,
		CategoryDescription: body.Description,
		CategoryImage:       body.Image,
		CategoryLink:        body.Link,
	}

	if err := ctrl.DB.Create(&category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// =============================
// 🔄 Update Category (carry-forward)
// =============================
func (ctrl *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var category model.CategoryModel
	if err := ctrl.DB.First(&category, "category_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
	}

	if body.Title != "" {
		category.CategoryTitle = body.Title
	}
	if body.Description != "" {
		category.CategoryDescription = body.Description
	}
	if body.Image != "" {
		category.CategoryImage = body.Image
	}
	if body.Link != "" {
		category.CategoryLink = body.Link
	}

	if err := ctrl.DB.Save(&category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(category)
}

// =============================
// 🗑️ Delete Category
// =============================
func (ctrl *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var category model.CategoryModel
	if err := ctrl.DB.First(&category, "category_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
	}

	if err := ctrl.DB.Delete(&category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"message": "Category deleted"})
}
