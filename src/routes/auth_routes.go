package routes

import (
	"Tracer-Study-Portal/src/controllers"
	"Tracer-Study-Portal/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนด route สำหรับ auth (login/logout/me)
func authRoutes(app *fiber.App, h *controllers.AuthController) {
	auth := app.Group("/auth")

	auth.Post("/login", h.Login)                       // 🔐 login
	auth.Post("/logout", middleware.AuthJWT, h.Logout) // 🚪 logout
	auth.Get("/me", middleware.AuthJWT, h.Me)
}
