package controller

import (
	"laraigo_backend/internals/features/portal/resources/dto"
	"laraigo_backend/internals/features/portal/resources/model"
	helper "laraigo_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateResource = validator.New()

type ResourceController struct {
	DB *gorm.DB
}

func NewResourceController(db *gorm.DB) *ResourceController {
	return &ResourceController{DB: db}
}

// =============================
// 📄 Get All Resources
// =============================
func (ctrl *ResourceController) GetAllResources(c *fiber.Ctx) error {
	resources := []model.ResourceModel{}
	if err := ctrl.DB.Order("resource_created_at ASC").Find(&resources).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(resources)
}

// =============================
// ➕ Create Resource
// =============================
func (ctrl *ResourceController) CreateResource(c *fiber.Ctx) error {
	var body dto.CreateResourceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateResource.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	resource := model.ResourceModel{
		ResourceTitle:    body.Title,
		ResourceImageURL: body.ImageURL,
		ResourceURL:      body.URL,
	}

	if err := ctrl.DB.Create(&resource).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(resource)
}

// =============================
// 🔄 Update Resource (carry-forward)
// =============================
func (ctrl *ResourceController) UpdateResource(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateResourceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var resource model.ResourceModel
	if err := ctrl.DB.First(&resource, "resource_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Resource not found")
	}

	if body.Title != "" {
		resource.ResourceTitle = body.Title
	}
	if body.ImageURL != "" {
		resource.ResourceImageURL = body.ImageURL
	}
	if body.URL != "" {
		resource.ResourceURL = body.URL
	}

	if err := ctrl.DB.Save(&resource).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(resource)
}

// =============================
// 🗑️ Delete Resource
// =============================
func (ctrl *ResourceController) DeleteResource(c *fiber.Ctx) error {
	id := c.Params("id")

	var resource model.ResourceModel
	if err := ctrl.DB.First(&resource, "resource_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Resource not found")
	}

	if err := ctrl.DB.Delete(&resource).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"message": "Resource deleted"})
}
