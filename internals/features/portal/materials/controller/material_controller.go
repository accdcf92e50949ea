package controller

import (
	"laraigo_backend/internals/features/portal/materials/dto"
	"laraigo_backend/internals/features/portal/materials/model"
	helper "laraigo_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateMaterial = validator.New()

type MaterialController struct {
	DB *gorm.DB
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db}
}

// =============================
// 📄 Get All Materials
// =============================
func (ctrl *MaterialController) GetAllMaterials(c *fiber.Ctx) error {
	materials := []model.MaterialModel{}
	if err := ctrl.DB.Order("material_created_at ASC").Find(&materials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(materials)
}

// =============================
// ➕ Create Material
// =============================
func (ctrl *MaterialController) CreateMaterial(c *fiber.Ctx) error {
	var body dto.CreateMaterialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMaterial.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	material := model.MaterialModel{
		MaterialTitle:    body.Title,
		MaterialType:     body.Type,
		MaterialURL:      body.URL,
		MaterialVideoURL: body.VideoURL,
	}

	if err := ctrl.DB.Create(&material).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(material)
}

// =============================
// 🔄 Update Material (carry-forward)
// =============================
func (ctrl *MaterialController) UpdateMaterial(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateMaterialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMaterial.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var material model.MaterialModel
	if err := ctrl.DB.First(&material, "material_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
	}

	if body.Title != "" {
		material.MaterialTitle = body.Title
	}
	if body.Type != "" {
		material.MaterialType = body.Type
	}
	if body.URL != "" {
		material.MaterialURL = body.URL
	}
	if body.VideoURL != "" {
		material.MaterialVideoURL = body.VideoURL
	}

	if err := ctrl.DB.Save(&material).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(material)
}

// =============================
// 🗑️ Delete Material
// =============================
func (ctrl *MaterialController) DeleteMaterial(c *fiber.Ctx) error {
	id := c.Params("id")

	var material model.MaterialModel
	if err := ctrl.DB.First(&material, "material_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
	}

	if err := ctrl.DB.Delete(&material).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"message": "Material deleted"})
}
