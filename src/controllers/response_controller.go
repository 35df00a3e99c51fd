package controllers

import (
	"errors"

	"Tracer-Study-Portal/src/models"
	"Tracer-Study-Portal/src/services/responses"
	"Tracer-Study-Portal/src/services/surveys"
	"Tracer-Study-Portal/src/utils"

	"github.com/gofiber/fiber/v2"
)

type ResponseController struct {
	Surveys   *surveys.Service
	Responses *responses.Service
}

// ListResponses godoc
// @Summary      List submissions of a survey
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Param        id     path   string  true   "Survey ID"
// @Param        page   query  int     false  "Page"
// @Param        limit  query  int     false  "Limit"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/surveys/{id}/responses [get]
func (h *ResponseController) List(c *fiber.Ctx) error {
	survey, err := h.Surveys.GetSurvey(c.UserContext(), c.Params("id"))
	if err != nil {
		return surveyError(c, err)
	}
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query")
	}
	page, err := h.Responses.List(c.UserContext(), *survey, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(page)
}

// GetResponse godoc
// @Summary      Get one submission laid out against the survey
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Param        rid  path  string  true  "Submission ID"
// @Success      200  {object}  models.SubmissionView
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/surveys/{id}/responses/{rid} [get]
func (h *ResponseController) Get(c *fiber.Ctx) error {
	survey, err := h.Surveys.GetSurvey(c.UserContext(), c.Params("id"))
	if err != nil {
		return surveyError(c, err)
	}
	view, err := h.Responses.Get(c.UserContext(), *survey, c.Params("rid"))
	switch {
	case errors.Is(err, responses.ErrInvalidID):
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, responses.ErrSubmissionNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	case err != nil:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(view)
}
