package route

import (
	"laraigo_backend/internals/features/portal/categories/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CategoryAdminRoutes(api fiber.Router, db *gorm.DB) {
	categoryCtrl := controller.NewCategoryController(db)

	category := api.Group("/categories")
	category.Post("/", categoryCtrl.CreateCategory)
	category.Put("/:id", categoryCtrl.UpdateCategory)
	category.Delete("/:id", categoryCtrl.DeleteCategory)
}
