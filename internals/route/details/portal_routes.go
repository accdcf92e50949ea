package details

import (
	capsuleRoute "laraigo_backend/internals/features/portal/capsules/route"
	categoryRoute "laraigo_backend/internals/features/portal/categories/route"
	demoRoute "laraigo_backend/internals/features/portal/demos/route"
	materialRoute "laraigo_backend/internals/features/portal/materials/route"
	resourceRoute "laraigo_backend/internals/features/portal/resources/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PortalUserRoutes(api fiber.Router, db *gorm.DB) {
	capsuleRoute.CapsuleUserRoutes(api, db)
	categoryRoute.CategoryUserRoutes(api, db)
	demoRoute.DemoUserRoutes(api, db)
	materialRoute.MaterialUserRoutes(api, db)
	resourceRoute.ResourceUserRoutes(api, db)
}

func PortalAdminRoutes(api fiber.Router, db *gorm.DB) {
	capsuleRoute.CapsuleAdminRoutes(api, db)
	categoryRoute.CategoryAdminRoutes(api, db)
	demoRoute.DemoAdminRoutes(api, db)
	materialRoute.MaterialAdminRoutes(api, db)
	resourceRoute.ResourceAdminRoutes(api, db)
}
