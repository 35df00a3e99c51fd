package drafts

import (
	"testing"
	"time"

	"Tracer-Study-Portal/src/models"
	"Tracer-Study-Portal/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionIDs(d models.Draft) []string {
	ids := make([]string, len(d.Questions))
	for i, q := range d.Questions {
		ids[i] = q.ID
	}
	return ids
}

func TestQuestionOperations(t *testing.T) {
	suite := test.NewSuite(t, "Draft Question Tests")
	defer suite.PrintSummary()

	suite.Run("AddQuestion appends default multiple choice", 50*time.Millisecond, func(t *testing.T) {
		d := test.SampleDraft()
		out := AddQuestion(d, &test.SequenceIDs{Prefix: "new"})

		require.Len(t, out.Questions, 4)
		assert.Len(t, d.Questions, 3, "input draft must not change")

		q := out.Questions[3]
		assert.Equal(t, "new-1", q.ID)
		assert.Equal(t, models.MultipleChoice, q.Type)
		assert.False(t, q.Required)
		assert.Equal(t, []models.Option{{ID: "new-2", Label: DefaultOptionLabel}}, q.Options())
		assert.NoError(t, q.Validate())
	})

	suite.Run("UpdateQuestion replaces by id", 50*time.Millisecond, func(t *testing.T) {
		d := test.SampleDraft()
		updated := d.Questions[2]
		updated.Title = "Nama instansi"
		updated.Required = true

		out := UpdateQuestion(d, updated)
		assert.Equal(t, "Nama instansi", out.Questions[2].Title)
		assert.True(t, out.Questions[2].Required)
		assert.Equal(t, "Nama perusahaan", d.Questions[2].Title)
	})

	suite.Run("UpdateQuestion ignores unknown id", 50*time.Millisecond, func(t *testing.T) {
		d := test.SampleDraft()
		out := UpdateQuestion(d, models.Question{ID: "missing", Type: models.Paragraph, Body: models.TextBody{}})
		assert.Equal(t, d, out)
	})

	suite.Run("DeleteQuestion is idempotent", 50*time.Millisecond, func(t *testing.T) {
		d := test.SampleDraft()
		once := DeleteQuestion(d, "q-relevance")
		twice := DeleteQuestion(once, "q-relevance")

		assert.Equal(t, []string{"q-status", "q-company"}, questionIDs(once))
		assert.Equal(t, once, twice)
		assert.Len(t, d.Questions, 3)
	})

	suite.Run("DuplicateQuestion inserts copy after source", 50*time.Millisecond, func(t *testing.T) {
		d := test.SampleDraft()
		d = DeleteQuestion(d, "q-company") // two questions

		out := DuplicateQuestion(d, "q-status", &test.SequenceIDs{Prefix: "dup"})
		require.Len(t, out.Questions, 3)
		assert.Equal(t, []string{"q-status", "dup-1", "q-relevance"}, questionIDs(out))

		src, dup := out.Questions[0], out.Questions[1]
		assert.NotEqual(t, src.ID, dup.ID)
		assert.Equal(t, "Status saat ini (Copy)", dup.Title)
		assert.Equal(t, src.Type, dup.Type)
		assert.Equal(t, src.Required, dup.Required)
		assert.Equal(t, src.Options(), dup.Options())

		// the copy does not share the option slice with its source
		dup.Options()[0].Label = "changed"
		assert.Equal(t, "Bekerja", out.Questions[0].Options()[0].Label)
	})

	suite.Run("DuplicateQuestion ignores unknown id", 50*time.Millisecond, func(t *testing.T) {
		d := test.SampleDraft()
		assert.Equal(t, d, DuplicateQuestion(d, "missing", &test.SequenceIDs{}))
	})

	suite.Run("ChangeQuestionType converts body", 50*time.Millisecond, func(t *testing.T) {
		d := test.SampleDraft()
		ids := &test.SequenceIDs{Prefix: "chg"}

		out, err := ChangeQuestionType(d, "q-status", models.Checkbox, ids)
		require.NoError(t, err)
		assert.Equal(t, models.Checkbox, out.Questions[0].Type)
		assert.Len(t, out.Questions[0].Options(), 3, "choice to choice keeps options")

		out, err = ChangeQuestionType(out, "q-status", models.LinearScale, ids)
		require.NoError(t, err)
		assert.Equal(t, models.ScaleBody{MinValue: 1, MaxValue: 5}, out.Questions[0].Body)

		out, err = ChangeQuestionType(out, "q-company", models.Dropdown, ids)
		require.NoError(t, err)
		assert.Equal(t, []models.Option{{ID: "chg-1", Label: DefaultOptionLabel}}, out.Questions[2].Options())

		for _, q := range out.Questions {
			assert.NoError(t, q.Validate())
		}

		_, err = ChangeQuestionType(d, "q-status", "matrix", ids)
		assert.ErrorIs(t, err, models.ErrUnknownQuestionType)
	})

	suite.Run("AddOption keeps other option last", 50*time.Millisecond, func(t *testing.T) {
		d := test.SampleDraft()
		out := AddOption(d, "q-status", "", false, &test.SequenceIDs{Prefix: "opt"})

		opts := out.Questions[0].Options()
		require.Len(t, opts, 4)
		assert.Equal(t, "opt-1", opts[2].ID)
		assert.Equal(t, "Option 4", opts[2].Label)
		assert.True(t, opts[3].IsOther)
		assert.Len(t, d.Questions[0].Options(), 3)

		// non choice questions are left alone
		assert.Equal(t, d, AddOption(d, "q-company", "x", false, &test.SequenceIDs{}))
	})

	suite.Run("RemoveOption keeps at least one option", 50*time.Millisecond, func(t *testing.T) {
		d := test.SampleDraft()
		out := RemoveOption(d, "q-status", "o-study")
		assert.Len(t, out.Questions[0].Options(), 2)

		out = RemoveOption(out, "q-status", "o-work")
		out = RemoveOption(out, "q-status", "o-other")
		require.Len(t, out.Questions[0].Options(), 1)
		assert.Equal(t, "o-other", out.Questions[0].Options()[0].ID)
	})
}

func TestSectionOperations(t *testing.T) {
	suite := test.NewSuite(t, "Draft Section Tests")
	defer suite.PrintSummary()

	suite.Run("ReorderSections assigns 1-based order", 50*time.Millisecond, func(t *testing.T) {
		d := AddSection(test.SampleDraft(), &test.SequenceIDs{Prefix: "sec"})
		out, err := ReorderSections(d, []string{"sec-1", "sec-a", "sec-b"})
		require.NoError(t, err)

		orders := map[string]int{}
		for _, s := range out.Sections {
			orders[s.ID] = s.Order
		}
		assert.Equal(t, map[string]int{"sec-1": 1, "sec-a": 2, "sec-b": 3}, orders)
		assert.Equal(t, "sec-1", out.Sections[0].ID)
	})

	suite.Run("ReorderSections rejects non permutations", 50*time.Millisecond, func(t *testing.T) {
		d := test.SampleDraft()
		bad := [][]string{
			{"sec-a"},                   // missing
			{"sec-a", "sec-b", "sec-c"}, // extra
			{"sec-a", "sec-a"},          // duplicate
			{"sec-a", "sec-x"},          // unknown
			nil,
		}
		for _, ids := range bad {
			out, err := ReorderSections(d, ids)
			assert.ErrorIs(t, err, ErrInvalidPermutation, "%v", ids)
			assert.Equal(t, d, out)
		}
	})

	suite.Run("DeleteSection densifies order and detaches items", 50*time.Millisecond, func(t *testing.T) {
		d := AddSection(test.SampleDraft(), &test.SequenceIDs{Prefix: "sec"})
		out := DeleteSection(d, "sec-b")

		require.Len(t, out.Sections, 2)
		assert.Equal(t, 1, out.Sections[0].Order)
		assert.Equal(t, 2, out.Sections[1].Order)
		for _, q := range out.Questions {
			assert.Empty(t, q.SectionID)
		}
		assert.Equal(t, d, DeleteSection(d, "missing"))
	})

	suite.Run("UpdateSection keeps order", 50*time.Millisecond, func(t *testing.T) {
		d := test.SampleDraft()
		out := UpdateSection(d, models.Section{ID: "sec-b", Title: "Karier", Order: 9})
		assert.Equal(t, "Karier", out.Sections[1].Title)
		assert.Equal(t, 2, out.Sections[1].Order)
	})
}

func TestTextBlocksAndFields(t *testing.T) {
	d := test.SampleDraft()

	out := AddTextBlock(d, "sec-b", &test.SequenceIDs{Prefix: "tb"})
	require.Len(t, out.TextBlocks, 2)
	assert.Equal(t, "tb-1", out.TextBlocks[1].ID)

	out = UpdateTextBlock(out, models.TextBlock{ID: "tb-1", Title: "Catatan", SectionID: "sec-b"})
	assert.Equal(t, "Catatan", out.TextBlocks[1].Title)

	out = DeleteTextBlock(out, "tb-intro")
	assert.Len(t, out.TextBlocks, 1)
	assert.Equal(t, out, DeleteTextBlock(out, "tb-intro"))

	title, err := FieldValue(d, FieldTitle)
	require.NoError(t, err)
	assert.Equal(t, "Tracer Study 2025", title)

	out, err = SetField(d, FieldDescription, "Baru")
	require.NoError(t, err)
	assert.Equal(t, "Baru", out.Description)

	_, err = SetField(d, "color", "red")
	assert.ErrorIs(t, err, ErrUnknownField)
	_, err = FieldValue(d, "color")
	assert.ErrorIs(t, err, ErrUnknownField)
}
