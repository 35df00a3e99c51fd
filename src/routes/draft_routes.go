package routes

import (
	"Tracer-Study-Portal/src/controllers"
	"Tracer-Study-Portal/src/middleware"
	"Tracer-Study-Portal/src/models"

	"github.com/gofiber/fiber/v2"
)

// draftRoutes เส้นทางของ survey builder (แก้ไขได้เฉพาะ admin)
func draftRoutes(router fiber.Router, h *controllers.DraftController) {
	draft := router.Group("/surveys/:id/draft", middleware.RequireRole(models.RoleAdmin))
	draft.Post("/", h.Open)
	draft.Get("/", h.Get)
	draft.Delete("/", h.Discard)

	draft.Post("/questions", h.AddQuestion)
	draft.Put("/questions/:qid", h.UpdateQuestion)
	draft.Delete("/questions/:qid", h.DeleteQuestion)
	draft.Post("/questions/:qid/duplicate", h.DuplicateQuestion)
	draft.Put("/questions/:qid/type", h.ChangeQuestionType)
	draft.Post("/questions/:qid/options", h.AddOption)
	draft.Delete("/questions/:qid/options/:oid", h.RemoveOption)

	draft.Post("/sections", h.AddSection)
	draft.Put("/sections/order", h.ReorderSections) // ต้องมาก่อน /sections/:sid
	draft.Put("/sections/:sid", h.UpdateSection)
	draft.Delete("/sections/:sid", h.DeleteSection)

	draft.Patch("/fields/:field", h.PatchField)

	draft.Post("/text-blocks", h.AddTextBlock)
	draft.Put("/text-blocks/:bid", h.UpdateTextBlock)
	draft.Delete("/text-blocks/:bid", h.DeleteTextBlock)
}
