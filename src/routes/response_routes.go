package routes

import (
	"Tracer-Study-Portal/src/controllers"
	"Tracer-Study-Portal/src/middleware"
	"Tracer-Study-Portal/src/models"

	"github.com/gofiber/fiber/v2"
)

func responseRoutes(router fiber.Router, h *controllers.ResponseController) {
	responses := router.Group("/surveys/:id/responses", middleware.RequireRole(models.RoleAdmin))
	responses.Get("/", h.List)
	responses.Get("/:rid", h.Get)
}

func programStudyRoutes(router fiber.Router, h *controllers.ProgramStudyController) {
	router.Get("/program-studies", h.List)
}
