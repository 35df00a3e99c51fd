package controllers

import (
	"errors"

	"Tracer-Study-Portal/src/models"
	"Tracer-Study-Portal/src/services/drafts"
	"Tracer-Study-Portal/src/services/surveys"
	"Tracer-Study-Portal/src/utils"

	"github.com/gofiber/fiber/v2"
)

// DraftController exposes the survey builder. Every mutation answers with the
// full draft so the client can re-render from it.
type DraftController struct {
	Drafts *drafts.Service
}

type changeTypeRequest struct {
	Type models.QuestionType `json:"type" validate:"required"`
}

type addOptionRequest struct {
	Label   string `json:"label"`
	IsOther bool   `json:"isOther"`
}

type reorderRequest struct {
	IDs []string `json:"ids" validate:"required"`
}

type fieldRequest struct {
	Value string `json:"value"`
}

type textBlockRequest struct {
	SectionID string `json:"sectionId"`
}

func draftKey(c *fiber.Ctx) drafts.Key {
	sessionID, _ := c.Locals("sessionId").(string)
	return drafts.Key{SessionID: sessionID, SurveyID: c.Params("id")}
}

func draftError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, drafts.ErrDraftNotOpen):
		return utils.HandleError(c, fiber.StatusNotFound, "Draft is not open")
	case errors.Is(err, drafts.ErrInvalidPermutation):
		return utils.HandleError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, drafts.ErrUnknownField), errors.Is(err, models.ErrUnknownQuestionType):
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, surveys.ErrInvalidID), errors.Is(err, surveys.ErrSurveyNotFound):
		return surveyError(c, err)
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}

func (h *DraftController) apply(c *fiber.Ctx, m drafts.Mutation) error {
	d, err := h.Drafts.Apply(c.UserContext(), draftKey(c), m)
	if err != nil {
		return draftError(c, err)
	}
	return c.JSON(d)
}

// OpenDraft godoc
// @Summary      Open the builder draft of a survey
// @Tags         drafts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Success      200  {object}  models.Draft
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/surveys/{id}/draft [post]
func (h *DraftController) Open(c *fiber.Ctx) error {
	d, err := h.Drafts.Open(c.UserContext(), draftKey(c))
	if err != nil {
		return draftError(c, err)
	}
	return c.JSON(d)
}

// GetDraft godoc
// @Summary      Get the open draft
// @Tags         drafts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Success      200  {object}  models.Draft
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/surveys/{id}/draft [get]
func (h *DraftController) Get(c *fiber.Ctx) error {
	d, err := h.Drafts.Get(c.UserContext(), draftKey(c))
	if err != nil {
		return draftError(c, err)
	}
	return c.JSON(d)
}

// DiscardDraft godoc
// @Summary      Discard the open draft
// @Tags         drafts
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Success      204
// @Router       /api/surveys/{id}/draft [delete]
func (h *DraftController) Discard(c *fiber.Ctx) error {
	if err := h.Drafts.Discard(c.UserContext(), draftKey(c)); err != nil {
		return draftError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddQuestion godoc
// @Summary      Append a default multiple choice question
// @Tags         drafts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Success      200  {object}  models.Draft
// @Router       /api/surveys/{id}/draft/questions [post]
func (h *DraftController) AddQuestion(c *fiber.Ctx) error {
	return h.apply(c, func(d models.Draft) (models.Draft, error) {
		return drafts.AddQuestion(d, h.Drafts.IDs()), nil
	})
}

// UpdateQuestion godoc
// @Summary      Replace a question
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Param        qid  path  string  true  "Question ID"
// @Success      200  {object}  models.Draft
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/surveys/{id}/draft/questions/{qid} [put]
func (h *DraftController) UpdateQuestion(c *fiber.Ctx) error {
	var q models.Question
	if err := c.BodyParser(&q); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid question: "+err.Error())
	}
	q.ID = c.Params("qid")
	if err := q.Validate(); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return h.apply(c, func(d models.Draft) (models.Draft, error) {
		return drafts.UpdateQuestion(d, q), nil
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         drafts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Param        qid  path  string  true  "Question ID"
// @Success      200  {object}  models.Draft
// @Router       /api/surveys/{id}/draft/questions/{qid} [delete]
func (h *DraftController) DeleteQuestion(c *fiber.Ctx) error {
	qid := c.Params("qid")
	return h.apply(c, func(d models.Draft) (models.Draft, error) {
		return drafts.DeleteQuestion(d, qid), nil
	})
}

// DuplicateQuestion godoc
// @Summary      Duplicate a question
// @Tags         drafts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Param        qid  path  string  true  "Question ID"
// @Success      200  {object}  models.Draft
// @Router       /api/surveys/{id}/draft/questions/{qid}/duplicate [post]
func (h *DraftController) DuplicateQuestion(c *fiber.Ctx) error {
	qid := c.Params("qid")
	return h.apply(c, func(d models.Draft) (models.Draft, error) {
		return drafts.DuplicateQuestion(d, qid, h.Drafts.IDs()), nil
	})
}

// ChangeQuestionType godoc
// @Summary      Change the variant of a question
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Param        qid  path  string  true  "Question ID"
// @Success      200  {object}  models.Draft
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/surveys/{id}/draft/questions/{qid}/type [put]
func (h *DraftController) ChangeQuestionType(c *fiber.Ctx) error {
	var req changeTypeRequest
	if ok, err := utils.ParseAndValidate(c, &req); !ok {
		return err
	}
	qid := c.Params("qid")
	return h.apply(c, func(d models.Draft) (models.Draft, error) {
		return drafts.ChangeQuestionType(d, qid, req.Type, h.Drafts.IDs())
	})
}

// AddOption godoc
// @Summary      Add an option to a choice question
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Param        qid  path  string  true  "Question ID"
// @Success      200  {object}  models.Draft
// @Router       /api/surveys/{id}/draft/questions/{qid}/options [post]
func (h *DraftController) AddOption(c *fiber.Ctx) error {
	var req addOptionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}
	qid := c.Params("qid")
	return h.apply(c, func(d models.Draft) (models.Draft, error) {
		return drafts.AddOption(d, qid, req.Label, req.IsOther, h.Drafts.IDs()), nil
	})
}

// RemoveOption godoc
// @Summary      Remove an option
// @Tags         drafts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Param        qid  path  string  true  "Question ID"
// @Param        oid  path  string  true  "Option ID"
// @Success      200  {object}  models.Draft
// @Router       /api/surveys/{id}/draft/questions/{qid}/options/{oid} [delete]
func (h *DraftController) RemoveOption(c *fiber.Ctx) error {
	qid, oid := c.Params("qid"), c.Params("oid")
	return h.apply(c, func(d models.Draft) (models.Draft, error) {
		return drafts.RemoveOption(d, qid, oid), nil
	})
}

// AddSection godoc
// @Summary      Append a section
// @Tags         drafts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Success      200  {object}  models.Draft
// @Router       /api/surveys/{id}/draft/sections [post]
func (h *DraftController) AddSection(c *fiber.Ctx) error {
	return h.apply(c, func(d models.Draft) (models.Draft, error) {
		return drafts.AddSection(d, h.Drafts.IDs()), nil
	})
}

// UpdateSection godoc
// @Summary      Update a section title/description
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Param        sid  path  string  true  "Section ID"
// @Param        body body models.Section true "Section"
// @Success      200  {object}  models.Draft
// @Router       /api/surveys/{id}/draft/sections/{sid} [put]
func (h *DraftController) UpdateSection(c *fiber.Ctx) error {
	var s models.Section
	if err := c.BodyParser(&s); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	s.ID = c.Params("sid")
	return h.apply(c, func(d models.Draft) (models.Draft, error) {
		return drafts.UpdateSection(d, s), nil
	})
}

// DeleteSection godoc
// @Summary      Delete a section
// @Tags         drafts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Param        sid  path  string  true  "Section ID"
// @Success      200  {object}  models.Draft
// @Router       /api/surveys/{id}/draft/sections/{sid} [delete]
func (h *DraftController) DeleteSection(c *fiber.Ctx) error {
	sid := c.Params("sid")
	return h.apply(c, func(d models.Draft) (models.Draft, error) {
		return drafts.DeleteSection(d, sid), nil
	})
}

// ReorderSections godoc
// @Summary      Reorder sections
// @Description  ids must be a permutation of the current section ids
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Success      200  {object}  models.Draft
// @Failure      422  {object}  models.ErrorResponse
// @Router       /api/surveys/{id}/draft/sections/order [put]
func (h *DraftController) ReorderSections(c *fiber.Ctx) error {
	var req reorderRequest
	if ok, err := utils.ParseAndValidate(c, &req); !ok {
		return err
	}
	return h.apply(c, func(d models.Draft) (models.Draft, error) {
		return drafts.ReorderSections(d, req.IDs)
	})
}

// PatchField godoc
// @Summary      Commit an inline edit of the survey title or description
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  string  true  "Survey ID"
// @Param        field  path  string  true  "title | description"
// @Success      200  {object}  models.Draft
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/surveys/{id}/draft/fields/{field} [patch]
func (h *DraftController) PatchField(c *fiber.Ctx) error {
	var req fieldRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	field := c.Params("field")
	return h.apply(c, func(d models.Draft) (models.Draft, error) {
		current, err := drafts.FieldValue(d, field)
		if err != nil {
			return d, err
		}
		editor := drafts.NewFieldEditor(current)
		editor.BeginEdit()
		editor.Change(req.Value)
		value, changed := editor.Commit()
		if !changed {
			return d, nil
		}
		return drafts.SetField(d, field, value)
	})
}

// AddTextBlock godoc
// @Summary      Add a text block
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Success      200  {object}  models.Draft
// @Router       /api/surveys/{id}/draft/text-blocks [post]
func (h *DraftController) AddTextBlock(c *fiber.Ctx) error {
	var req textBlockRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}
	return h.apply(c, func(d models.Draft) (models.Draft, error) {
		return drafts.AddTextBlock(d, req.SectionID, h.Drafts.IDs()), nil
	})
}

// UpdateTextBlock godoc
// @Summary      Update a text block
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Param        bid  path  string  true  "Text block ID"
// @Param        body body models.TextBlock true "Text block"
// @Success      200  {object}  models.Draft
// @Router       /api/surveys/{id}/draft/text-blocks/{bid} [put]
func (h *DraftController) UpdateTextBlock(c *fiber.Ctx) error {
	var b models.TextBlock
	if err := c.BodyParser(&b); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	b.ID = c.Params("bid")
	return h.apply(c, func(d models.Draft) (models.Draft, error) {
		return drafts.UpdateTextBlock(d, b), nil
	})
}

// DeleteTextBlock godoc
// @Summary      Delete a text block
// @Tags         drafts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Survey ID"
// @Param        bid  path  string  true  "Text block ID"
// @Success      200  {object}  models.Draft
// @Router       /api/surveys/{id}/draft/text-blocks/{bid} [delete]
func (h *DraftController) DeleteTextBlock(c *fiber.Ctx) error {
	bid := c.Params("bid")
	return h.apply(c, func(d models.Draft) (models.Draft, error) {
		return drafts.DeleteTextBlock(d, bid), nil
	})
}
