package route

import (
	"laraigo_backend/internals/features/portal/demos/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DemoUserRoutes(api fiber.Router, db *gorm.DB) {
	industryCtrl := controller.NewIndustryController(db)
	demoCtrl := controller.NewDemoController(db)

	industry := api.Group("/industries")
	industry.Get("/", industryCtrl.GetAllIndustries)

	demo := api.Group("/demos")
	demo.Get("/", demoCtrl.GetAllDemos)
	demo.Get("/industry/:industryId", demoCtrl.GetDemosByIndustry) // 📄 grouped view
}
