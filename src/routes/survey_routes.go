package routes

import (
	"Tracer-Study-Portal/src/controllers"
	"Tracer-Study-Portal/src/middleware"
	"Tracer-Study-Portal/src/models"

	"github.com/gofiber/fiber/v2"
)

func surveyRoutes(router fiber.Router, h *controllers.SurveyController) {
	surveys := router.Group("/surveys")
	surveys.Get("/", h.List)
	surveys.Post("/", middleware.RequireRole(models.RoleAdmin), h.Create)
	surveys.Get("/:id", h.Get)
	surveys.Delete("/:id", middleware.RequireRole(models.RoleAdmin), h.Delete)
	surveys.Get("/:id/tabs/:tab", controllers.TabRoute)
	surveys.Get("/:id/supervisor-qr", middleware.RequireRole(models.RoleAdmin), h.SupervisorQR)
}
