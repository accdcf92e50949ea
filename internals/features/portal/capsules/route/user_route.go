package route

import (
	"laraigo_backend/internals/features/portal/capsules/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CapsuleUserRoutes(api fiber.Router, db *gorm.DB) {
	capsuleCtrl := controller.NewCapsuleController(db)

	capsule := api.Group("/capsules")
	capsule.Get("/", capsuleCtrl.GetAllCapsules) // 📄 full list, insertion order
}
