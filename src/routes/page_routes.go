package routes

import (
	"Tracer-Study-Portal/src/controllers"
	"Tracer-Study-Portal/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// pageRoutes เส้นทางหน้าเว็บ ผ่าน RouteGuard ก่อนทุกครั้ง
func pageRoutes(app *fiber.App, cfg middleware.MatcherConfig) {
	pages := app.Group("/", middleware.RouteGuard(cfg, middleware.JWTVerifier{}))
	pages.Get("/", controllers.RenderPage)
	pages.Get("/*", controllers.RenderPage)
}
