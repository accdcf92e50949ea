package route

import (
	"laraigo_backend/internals/features/portal/categories/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CategoryUserRoutes(api fiber.Router, db *gorm.DB) {
	categoryCtrl := controller.NewCategoryController(db)

	category := api.Group("/categories")
	category.Get("/", categoryCtrl.GetAllCategories)
}
