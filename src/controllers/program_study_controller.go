package controllers

import (
	"errors"
	"log"

	"Tracer-Study-Portal/src/services/apiclient"
	"Tracer-Study-Portal/src/utils"

	"github.com/gofiber/fiber/v2"
)

// ProgramStudy รายการ program study จาก backend ของมหาวิทยาลัย
type ProgramStudy struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Faculty string `json:"faculty,omitempty"`
}

type ProgramStudyController struct {
	API *apiclient.Client
}

// ListProgramStudies godoc
// @Summary      List program studies from the university backend
// @Tags         program-study
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ProgramStudy
// @Failure      502  {object}  models.ErrorResponse
// @Router       /api/program-studies [get]
func (h *ProgramStudyController) List(c *fiber.Ctx) error {
	client := h.API.WithTokens(apiclient.StorageTokenSource{Storage: apiclient.FiberStorage{Ctx: c}})

	var out []ProgramStudy
	if err := client.Get(c.UserContext(), "/program-studies", &out); err != nil {
		log.Println("❌ [ProgramStudy] backend call failed:", err)
		var statusErr *apiclient.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == fiber.StatusUnauthorized {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Backend rejected the session token")
		}
		return utils.HandleError(c, fiber.StatusBadGateway, "Program study service unavailable")
	}
	if out == nil {
		out = []ProgramStudy{}
	}
	return c.JSON(out)
}
