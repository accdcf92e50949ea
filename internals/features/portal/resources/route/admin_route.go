package route

import (
	"laraigo_backend/internals/features/portal/resources/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ResourceAdminRoutes(api fiber.Router, db *gorm.DB) {
	resourceCtrl := controller.NewResourceController(db)

	resource := api.Group("/resources")
	resource.Post("/", resourceCtrl.CreateResource)
	resource.Put("/:id", resourceCtrl.UpdateResource)
	resource.Delete("/:id", resourceCtrl.DeleteResource)
}
