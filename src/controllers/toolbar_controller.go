package controllers

import (
	"errors"

	"Tracer-Study-Portal/src/services/toolbar"
	"Tracer-Study-Portal/src/utils"

	"github.com/gofiber/fiber/v2"
)

// TabRoute godoc
// @Summary      Resolve a builder toolbar tab to its page
// @Tags         toolbar
// @Produce      json
// @Security     BearerAuth
// @Param        id              path   string  true   "Survey ID"
// @Param        tab             path   string  true   "questions | program-study | responses"
// @Param        programStudyId  query  string  false  "Program study ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/surveys/{id}/tabs/{tab} [get]
func TabRoute(c *fiber.Ctx) error {
	tab, err := toolbar.ParseTab(c.Params("tab"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	route, err := toolbar.Route(tab, c.Params("id"), c.Query("programStudyId"))
	if errors.Is(err, toolbar.ErrMissingProgramStudy) || errors.Is(err, toolbar.ErrMissingSurvey) {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"route": route})
}
