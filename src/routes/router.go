package routes

import (
	"Tracer-Study-Portal/src/controllers"
	"Tracer-Study-Portal/src/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Handlers รวม controller ทั้งหมดที่ main สร้างไว้
type Handlers struct {
	Auth           *controllers.AuthController
	Surveys        *controllers.SurveyController
	Drafts         *controllers.DraftController
	Responses      *controllers.ResponseController
	ProgramStudies *controllers.ProgramStudyController
}

func InitRoutes(app *fiber.App, h Handlers, guard middleware.MatcherConfig) {
	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})

	authRoutes(app, h.Auth)

	api := app.Group("/api", middleware.AuthJWT)
	surveyRoutes(api, h.Surveys)
	draftRoutes(api, h.Drafts)
	responseRoutes(api, h.Responses)
	programStudyRoutes(api, h.ProgramStudies)

	pageRoutes(app, guard)
}
