package authRoutes

import (
	authController "dojo/controllers/auth"
	"dojo/middleware"
	authValidator "dojo/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration and login routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), authController.Register)
	authGroup.Post("/login", authController.Login)
	authGroup.Get("/me", middleware.JWTMiddleware, middleware.RequireAuth(), authController.Me)
}
