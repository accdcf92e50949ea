package route

import (
	"laraigo_backend/internals/features/portal/demos/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DemoAdminRoutes(api fiber.Router, db *gorm.DB) {
	industryCtrl := controller.NewIndustryController(db)
	demoCtrl := controller.NewDemoController(db)

	industry := api.Group("/industries")
	industry.Post("/", industryCtrl.CreateIndustry)
	industry.Put("/:id", industryCtrl.UpdateIndustry)
	industry.Delete("/:id", industryCtrl.DeleteIndustry) // 🗑️ cascades to demos

	demo := api.Group("/demos")
	demo.Post("/", demoCtrl.CreateDemo)
	demo.Put("/:id", demoCtrl.UpdateDemo)
	demo.Delete("/:id", demoCtrl.DeleteDemo)
}
