package route

import (
	"laraigo_backend/internals/features/portal/capsules/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CapsuleAdminRoutes(api fiber.Router, db *gorm.DB) {
	capsuleCtrl := controller.NewCapsuleController(db)

	capsule := api.Group("/capsules")
	capsule.Post("/", capsuleCtrl.CreateCapsule)      // ➕ create
	capsule.Put("/:id", capsuleCtrl.UpdateCapsule)    // 🔄 carry-forward update
	capsule.Delete("/:id", capsuleCtrl.DeleteCapsule) // 🗑️ hard delete
}
