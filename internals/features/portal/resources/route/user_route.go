package route

import (
	"laraigo_backend/internals/features/portal/resources/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ResourceUserRoutes(api fiber.Router, db *gorm.DB) {
	resourceCtrl := controller.NewResourceController(db)

	resource := api.Group("/resources")
	resource.Get("/", resourceCtrl.GetAllResources)
}
