package route

import (
	"laraigo_backend/internals/features/users/auth/controller"
	middlewares "laraigo_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controller.NewAuthController()

	app.Post("/api/login", middlewares.LoginRateLimiter(), authCtrl.Login) // 🔑 stricter limiter
}
