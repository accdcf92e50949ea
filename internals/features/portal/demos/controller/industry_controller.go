package controller

import (
	"laraigo_backend/internals/features/portal/demos/dto"
	"laraigo_backend/internals/features/portal/demos/model"
	helper "laraigo_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateIndustry = validator.New()

type IndustryController struct {
	DB *gorm.DB
}

func NewIndustryController(db *gorm.DB) *IndustryController {
	return &IndustryController{DB: db}
}

// =============================
// 📄 Get All Industries
// =============================
func (ctrl *IndustryController) GetAllIndustries(c *fiber.Ctx) error {
	industries := []model.IndustryModel{}
	if err := ctrl.DB.Order("industry_created_at ASC").Find(&industries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(industries)
}

// =============================
// ➕ Create Industry
// =============================
func (ctrl *IndustryController) CreateIndustry(c *fiber.Ctx) error {
	var body dto.CreateIndustryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateIndustry.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	industry := model.IndustryModel{IndustryName: body.Name}

	if err := ctrl.DB.Create(&industry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(industry)
}

// =============================
// 🔄 Update Industry (carry-forward)
// =============================
func (ctrl *IndustryController) UpdateIndustry(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateIndustryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var industry model.IndustryModel
	if err := ctrl.DB.First(&industry, "industry_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Industry not found")
	}

	if body.Name != "" {
		industry.IndustryName = body.Name
	}

	if err := ctrl.DB.Save(&industry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(industry)
}

// =============================
// 🗑️ Delete Industry (+ cascade demos)
// =============================
// Two sequential store calls, no transaction: a crash in between leaves
// orphaned demos referencing an absent industry. Documented contract.
func (ctrl *IndustryController) DeleteIndustry(c *fiber.Ctx) error {
	id := c.Params("id")

	var industry model.IndustryModel
	if err := ctrl.DB.First(&industry, "industry_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Industry not found")
	}

	if err := ctrl.DB.Delete(&model.DemoModel{}, "demo_industry_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Delete(&industry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"message": "Industry deleted"})
}
