// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"laraigo_backend/internals/configs"
	authMiddleware "laraigo_backend/internals/middlewares/auth"
	routeDetails "laraigo_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → reads, open to the dashboard
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")

	// ADMIN → writes; bearer-gated only when PORTAL_REQUIRE_AUTH=true
	// (the captured portal exposed CRUD publicly)
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api")
	if configs.RequireAuth {
		log.Println("[INFO] PORTAL_REQUIRE_AUTH enabled → mounting JWT gate on writes")
		admin.Use(onlyMutations(authMiddleware.AuthMiddleware()))
	}

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Portal routes...")
	routeDetails.PortalUserRoutes(public, db)
	routeDetails.PortalAdminRoutes(admin, db)
}

// Paths under /api that stay open even with the JWT gate on.
var skipPaths = map[string]struct{}{
	"/api/login": {},
}

// onlyMutations applies h to POST/PUT/DELETE and lets reads through, so the
// public and admin groups can share the /api prefix.
func onlyMutations(h fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := skipPaths[c.Path()]; ok {
			return c.Next()
		}
		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete:
			return h(c)
		default:
			return c.Next()
		}
	}
}
