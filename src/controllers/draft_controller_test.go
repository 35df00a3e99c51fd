package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Tracer-Study-Portal/src/models"
	"Tracer-Study-Portal/src/services/drafts"
	"Tracer-Study-Portal/src/services/surveys"
	"Tracer-Study-Portal/test"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubLoader struct {
	survey models.Survey
}

func (s stubLoader) GetSurvey(_ context.Context, id string) (*models.Survey, error) {
	if id != s.survey.ID.Hex() {
		return nil, surveys.ErrSurveyNotFound
	}
	cp := s.survey
	return &cp, nil
}

func newDraftApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	d := test.SampleDraft()
	id, err := primitive.ObjectIDFromHex(d.SurveyID)
	require.NoError(t, err)
	loader := stubLoader{survey: models.Survey{
		ID:         id,
		Title:      d.Title,
		Questions:  d.Questions,
		Sections:   d.Sections,
		TextBlocks: d.TextBlocks,
	}}

	h := &DraftController{Drafts: drafts.NewService(drafts.NewMemoryStore(time.Hour), loader, nil, &test.SequenceIDs{Prefix: "new"})}
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("sessionId", "sess-1")
		return c.Next()
	})
	g := app.Group("/surveys/:id/draft")
	g.Post("/", h.Open)
	g.Get("/", h.Get)
	g.Delete("/", h.Discard)
	g.Post("/questions", h.AddQuestion)
	g.Put("/questions/:qid", h.UpdateQuestion)
	g.Delete("/questions/:qid", h.DeleteQuestion)
	g.Post("/questions/:qid/duplicate", h.DuplicateQuestion)
	g.Put("/questions/:qid/type", h.ChangeQuestionType)
	g.Post("/questions/:qid/options", h.AddOption)
	g.Delete("/questions/:qid/options/:oid", h.RemoveOption)
	g.Post("/sections", h.AddSection)
	g.Put("/sections/order", h.ReorderSections)
	g.Put("/sections/:sid", h.UpdateSection)
	g.Delete("/sections/:sid", h.DeleteSection)
	g.Patch("/fields/:field", h.PatchField)
	g.Post("/text-blocks", h.AddTextBlock)
	g.Put("/text-blocks/:bid", h.UpdateTextBlock)
	g.Delete("/text-blocks/:bid", h.DeleteTextBlock)
	return app, d.SurveyID
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decodeDraft(t *testing.T, raw []byte) models.Draft {
	t.Helper()
	var d models.Draft
	require.NoError(t, json.Unmarshal(raw, &d))
	return d
}

func TestDraftControllerLifecycle(t *testing.T) {
	app, id := newDraftApp(t)
	base := "/surveys/" + id + "/draft"

	status, _ := doJSON(t, app, "GET", base, "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, raw := doJSON(t, app, "POST", base, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decodeDraft(t, raw).Questions, 3)

	status, raw = doJSON(t, app, "POST", base+"/questions", "")
	require.Equal(t, fiber.StatusOK, status)
	d := decodeDraft(t, raw)
	require.Len(t, d.Questions, 4)
	added := d.Questions[3]
	assert.Equal(t, "new-1", added.ID)
	assert.Equal(t, models.MultipleChoice, added.Type)
	assert.Equal(t, drafts.DefaultQuestionTitle, added.Title)

	status, raw = doJSON(t, app, "POST", base+"/questions/q-status/duplicate", "")
	require.Equal(t, fiber.StatusOK, status)
	d = decodeDraft(t, raw)
	require.Len(t, d.Questions, 5)
	assert.Equal(t, "Status saat ini (Copy)", d.Questions[1].Title)

	status, raw = doJSON(t, app, "DELETE", base+"/questions/q-company", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decodeDraft(t, raw).Questions, 4)

	status, _ = doJSON(t, app, "DELETE", base, "")
	assert.Equal(t, fiber.StatusNoContent, status)
	status, _ = doJSON(t, app, "GET", base, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDraftControllerOpenUnknownSurvey(t *testing.T) {
	app, _ := newDraftApp(t)
	status, _ := doJSON(t, app, "POST", "/surveys/"+primitive.NewObjectID().Hex()+"/draft", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDraftControllerSections(t *testing.T) {
	app, id := newDraftApp(t)
	base := "/surveys/" + id + "/draft"
	doJSON(t, app, "POST", base, "")

	status, _ := doJSON(t, app, "PUT", base+"/sections/order", `{"ids":["sec-a"]}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	status, raw := doJSON(t, app, "PUT", base+"/sections/order", `{"ids":["sec-b","sec-a"]}`)
	require.Equal(t, fiber.StatusOK, status)
	d := decodeDraft(t, raw)
	assert.Equal(t, "sec-b", d.Sections[0].ID)
	assert.Equal(t, 1, d.Sections[0].Order)
	assert.Equal(t, 2, d.Sections[1].Order)

	status, raw = doJSON(t, app, "PUT", base+"/sections/sec-a", `{"title":"Data Diri","order":9}`)
	require.Equal(t, fiber.StatusOK, status)
	d = decodeDraft(t, raw)
	assert.Equal(t, "Data Diri", d.Sections[1].Title)
	assert.Equal(t, 2, d.Sections[1].Order)

	status, raw = doJSON(t, app, "POST", base+"/sections", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decodeDraft(t, raw).Sections, 3)

	status, raw = doJSON(t, app, "DELETE", base+"/sections/sec-b", "")
	require.Equal(t, fiber.StatusOK, status)
	d = decodeDraft(t, raw)
	assert.Len(t, d.Sections, 2)
	for _, q := range d.Questions {
		assert.Empty(t, q.SectionID)
	}
}

func TestDraftControllerQuestionEdits(t *testing.T) {
	app, id := newDraftApp(t)
	base := "/surveys/" + id + "/draft"
	doJSON(t, app, "POST", base, "")

	status, _ := doJSON(t, app, "PUT", base+"/questions/q-status/type", `{"type":"matrix"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, raw := doJSON(t, app, "PUT", base+"/questions/q-company/type", `{"type":"checkbox"}`)
	require.Equal(t, fiber.StatusOK, status)
	d := decodeDraft(t, raw)
	assert.Equal(t, models.Checkbox, d.Questions[2].Type)
	assert.Len(t, d.Questions[2].Options(), 1)

	status, raw = doJSON(t, app, "POST", base+"/questions/q-company/options", `{"label":"Swasta"}`)
	require.Equal(t, fiber.StatusOK, status)
	opts := decodeDraft(t, raw).Questions[2].Options()
	require.Len(t, opts, 2)
	assert.Equal(t, "Swasta", opts[1].Label)

	status, raw = doJSON(t, app, "DELETE", base+"/questions/q-company/options/"+opts[0].ID, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decodeDraft(t, raw).Questions[2].Options(), 1)

	body := `{"type":"linear_scale","title":"Kepuasan","required":true,"minValue":1,"maxValue":10}`
	status, raw = doJSON(t, app, "PUT", base+"/questions/q-relevance", body)
	require.Equal(t, fiber.StatusOK, status)
	q := decodeDraft(t, raw).Questions[1]
	assert.Equal(t, "Kepuasan", q.Title)
	assert.Equal(t, models.ScaleBody{MinValue: 1, MaxValue: 10}, q.Body)

	status, _ = doJSON(t, app, "PUT", base+"/questions/q-relevance", `{"type":"linear_scale","minValue":5,"maxValue":1}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestDraftControllerPatchField(t *testing.T) {
	app, id := newDraftApp(t)
	base := "/surveys/" + id + "/draft"
	_, raw := doJSON(t, app, "POST", base, "")
	opened := decodeDraft(t, raw)

	// committing the same value is not a change
	status, raw := doJSON(t, app, "PATCH", base+"/fields/title", `{"value":"`+opened.Title+`"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, opened.UpdatedAt.Equal(decodeDraft(t, raw).UpdatedAt))

	status, raw = doJSON(t, app, "PATCH", base+"/fields/description", `{"value":"Angkatan 2021"}`)
	require.Equal(t, fiber.StatusOK, status)
	d := decodeDraft(t, raw)
	assert.Equal(t, "Angkatan 2021", d.Description)
	assert.True(t, d.UpdatedAt.After(opened.UpdatedAt))

	status, _ = doJSON(t, app, "PATCH", base+"/fields/programStudyId", `{"value":"x"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestDraftControllerTextBlocks(t *testing.T) {
	app, id := newDraftApp(t)
	base := "/surveys/" + id + "/draft"
	doJSON(t, app, "POST", base, "")

	status, raw := doJSON(t, app, "POST", base+"/text-blocks", `{"sectionId":"sec-b"}`)
	require.Equal(t, fiber.StatusOK, status)
	d := decodeDraft(t, raw)
	require.Len(t, d.TextBlocks, 2)
	block := d.TextBlocks[1]
	assert.Equal(t, "sec-b", block.SectionID)

	status, raw = doJSON(t, app, "PUT", base+"/text-blocks/"+block.ID, `{"title":"Catatan","sectionId":"sec-b"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Catatan", decodeDraft(t, raw).TextBlocks[1].Title)

	status, raw = doJSON(t, app, "DELETE", base+"/text-blocks/tb-intro", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decodeDraft(t, raw).TextBlocks, 1)
}
