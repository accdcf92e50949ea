package controller

import (
	"laraigo_backend/internals/features/portal/capsules/dto"
	"laraigo_backend/internals/features/portal/capsules/model"
	helper "laraigo_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateCapsule = validator.New()

type CapsuleController struct {
	DB *gorm.DB
}

func NewCapsuleController(db *gorm.DB) *CapsuleController {
	return &CapsuleController{DB: db}
}

// =============================
// 📄 Get All Capsules
// =============================
func (ctrl *CapsuleController) GetAllCapsules(c *fiber.Ctx) error {
	capsules := []model.CapsuleModel{}
	if err := ctrl.DB.Order("capsule_created_at ASC").Find(&capsules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(capsules)
}

// =============================
// ➕ Create Capsule
// =============================
func (ctrl *CapsuleController) CreateCapsule(c *fiber.Ctx) error {
	var body dto.CreateCapsuleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCapsule.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	capsule := model.CapsuleModel{
		CapsuleTitle:       body.Title,
		CapsuleVideoURL:    body.VideoURL,
		CapsuleDownloadURL: body.DownloadURL,
		CapsuleDescription: body.Description,
	}

	if err := ctrl.DB.Create(&capsule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(capsule)
}

// =============================
// 🔄 Update Capsule (carry-forward)
// =============================
func (ctrl *CapsuleController) UpdateCapsule(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateCapsuleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var capsule model.CapsuleModel
	if err := ctrl.DB.First(&capsule, "capsule_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Capsule not found")
	}

	if body.Title != "" {
		capsule.CapsuleTitle = body.Title
	}
	if body.VideoURL != "" {
		capsule.CapsuleVideoURL = body.VideoURL
	}
	if body.DownloadURL != "" {
		capsule.CapsuleDownloadURL = body.DownloadURL
	}
	if body.Description != "" {
		capsule.CapsuleDescription = body.Description
	}

	if err := ctrl.DB.Save(&capsule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(capsule)
}

// =============================
// 🗑️ Delete Capsule
// =============================
func (ctrl *CapsuleController) DeleteCapsule(c *fiber.Ctx) error {
	id := c.Params("id")

	var capsule model.CapsuleModel
	if err := ctrl.DB.First(&capsule, "capsule_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Capsule not found")
	}

	if err := ctrl.DB.Delete(&capsule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"message": "Capsule deleted"})
}
