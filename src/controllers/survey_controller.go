package controllers

import (
	"errors"

	"Tracer-Study-Portal/src/models"
	"Tracer-Study-Portal/src/qrcode"
	"Tracer-Study-Portal/src/services/surveys"
	"Tracer-Study-Portal/src/utils"

	"github.com/gofiber/fiber/v2"
)

type SurveyController struct {
	Surveys   *surveys.Service
	PublicURL string
}

// ListSurveys godoc
// @Summary      List surveys
// @Tags         surveys
// @Produce      json
// @Security     BearerAuth
// @Param        page    query  int     false  "Page"
// @Param        limit   query  int     false  "Limit"
// @Param        search  query  string  false  "Title search"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/surveys [get]
func (h *SurveyController) List(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query")
	}
	page, err := h.Surveys.List(c.UserContext(), params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(page)
}

// CreateSurvey godoc
// @Summary      Create a survey
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.CreateSurveyRequest true "Survey"
// @Success      201  {object}  models.Survey
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/surveys [post]
func (h *SurveyController) Create(c *fiber.Ctx) error {
	var req models.CreateSurveyRequest
	if ok, err := utils.ParseAndValidate(c, &req); !ok {
		return err
	}
	userID, _ := c.Locals("userId").(string)
	survey, err := h.Surveys.Create(c.UserContext(), req, userID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(survey)
}

// GetSurvey godoc
// @Summary      Get a survey by ID
// @Tags         surveys
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Success      200  {object}  models.Survey
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/surveys/{id} [get]
func (h *SurveyController) Get(c *fiber.Ctx) error {
	survey, err := h.Surveys.GetSurvey(c.UserContext(), c.Params("id"))
	if err != nil {
		return surveyError(c, err)
	}
	return c.JSON(survey)
}

// DeleteSurvey godoc
// @Summary      Delete a survey
// @Tags         surveys
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Success      204
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/surveys/{id} [delete]
func (h *SurveyController) Delete(c *fiber.Ctx) error {
	if err := h.Surveys.Delete(c.UserContext(), c.Params("id")); err != nil {
		return surveyError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SupervisorQR godoc
// @Summary      QR code of the public supervisor link of a survey
// @Tags         surveys
// @Produce      png
// @Security     BearerAuth
// @Param        id    path   string  true   "Survey ID"
// @Param        size  query  int     false  "Image size in pixels"
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/surveys/{id}/supervisor-qr [get]
func (h *SurveyController) SupervisorQR(c *fiber.Ctx) error {
	survey, err := h.Surveys.GetSurvey(c.UserContext(), c.Params("id"))
	if err != nil {
		return surveyError(c, err)
	}
	link, err := qrcode.SupervisorLink(h.PublicURL, survey.ID.Hex())
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	png, err := qrcode.GenerateQRCode(link, c.QueryInt("size", qrcode.DefaultSize))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	c.Set("X-Supervisor-Link", link)
	c.Type("png")
	return c.Send(png)
}

func surveyError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, surveys.ErrInvalidID):
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, surveys.ErrSurveyNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}
