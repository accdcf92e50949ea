package route

import (
	"laraigo_backend/internals/features/portal/materials/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MaterialUserRoutes(api fiber.Router, db *gorm.DB) {
	materialCtrl := controller.NewMaterialController(db)

	material := api.Group("/materials")
	material.Get("/", materialCtrl.GetAllMaterials)
}
