package controller

import (
	"laraigo_backend/internals/features/portal/demos/dto"
	"laraigo_backend/internals/features/portal/demos/model"
	helper "laraigo_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateDemo = validator.New()

type DemoController struct {
	DB *gorm.DB
}

func NewDemoController(db *gorm.DB) *DemoController {
	return &DemoController{DB: db}
}

// =============================
// 📄 Get All Demos
// =============================
func (ctrl *DemoController) GetAllDemos(c *fiber.Ctx) error {
	demos := []model.DemoModel{}
	if err := ctrl.DB.Order("demo_created_at ASC").Find(&demos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(demos)
}

// =============================
// 📄 Get Demos By Industry
// =============================
// Empty list when nothing matches, never a 404.
func (ctrl *DemoController) GetDemosByIndustry(c *fiber.Ctx) error {
	industryID := c.Params("industryId")

	demos := []model.DemoModel{}
	if err := ctrl.DB.Where("demo_industry_id = ?", industryID).
		Order("demo_created_at ASC").Find(&demos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(demos)
}

// =============================
// ➕ Create Demo
// =============================
func (ctrl *DemoController) CreateDemo(c *fiber.Ctx) error {
	var body dto.CreateDemoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDemo.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	demo := model.DemoModel{
		DemoTitle:       body.Title,
		DemoURL:         body.URL,
		DemoDownloadURL: body.DownloadURL,
		DemoIndustryID:  body.IndustryID,
	}

	if err := ctrl.DB.Create(&demo).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(demo)
}

// =============================
// 🔄 Update Demo (carry-forward)
// =============================
func (ctrl *DemoController) UpdateDemo(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateDemoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var demo model.DemoModel
	if err := ctrl.DB.First(&demo, "demo_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Demo not found")
	}

	if body.Title != "" {
		demo.DemoTitle = body.Title
	}
	if body.URL != "" {
		demo.DemoURL = body.URL
	}
	if body.DownloadURL != "" {
		demo.DemoDownloadURL = body.DownloadURL
	}
	if body.IndustryID != "" {
		demo.DemoIndustryID = body.IndustryID
	}

	if err := ctrl.DB.Save(&demo).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(demo)
}

// =============================
// 🗑️ Delete Demo
// =============================
func (ctrl *DemoController) DeleteDemo(c *fiber.Ctx) error {
	id := c.Params("id")

	var demo model.DemoModel
	if err := ctrl.DB.First(&demo, "demo_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Demo not found")
	}

	if err := ctrl.DB.Delete(&demo).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"message": "Demo deleted"})
}
