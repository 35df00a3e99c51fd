package drafts

import (
	"errors"
	"fmt"

	"Tracer-Study-Portal/src/models"
)

const (
	DefaultQuestionTitle = "Untitled Question"
	DefaultOptionLabel   = "Option 1"
	DefaultSectionTitle  = "Untitled Section"
	CopySuffix           = " (Copy)"
)

var (
	ErrInvalidPermutation = errors.New("section order must be a permutation of the current section ids")
	ErrUnknownField       = errors.New("unknown draft field")
)

// Every operation below is a pure transition: the input draft is never
// modified and an absent target id leaves the result equal to the input.

func cloneDraft(d models.Draft) models.Draft {
	out := d
	out.Questions = make([]models.Question, len(d.Questions))
	for i, q := range d.Questions {
		out.Questions[i] = q.Clone()
	}
	out.Sections = append(make([]models.Section, 0, len(d.Sections)), d.Sections...)
	out.TextBlocks = append(make([]models.TextBlock, 0, len(d.TextBlocks)), d.TextBlocks...)
	return out
}

func questionIndex(d models.Draft, id string) int {
	for i, q := range d.Questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}

// AddQuestion appends a required=false multiple choice question with one option.
func AddQuestion(d models.Draft, ids IDGenerator) models.Draft {
	out := cloneDraft(d)
	out.Questions = append(out.Questions, models.Question{
		ID:    ids.NewID(),
		Type:  models.MultipleChoice,
		Title: DefaultQuestionTitle,
		Body: models.ChoiceBody{Options: []models.Option{
			{ID: ids.NewID(), Label: DefaultOptionLabel},
		}},
	})
	return out
}

// UpdateQuestion replaces the question with the same id.
func UpdateQuestion(d models.Draft, updated models.Question) models.Draft {
	i := questionIndex(d, updated.ID)
	if i < 0 {
		return d
	}
	out := cloneDraft(d)
	out.Questions[i] = updated.Clone()
	return out
}

// DeleteQuestion removes the question with the given id.
func DeleteQuestion(d models.Draft, id string) models.Draft {
	i := questionIndex(d, id)
	if i < 0 {
		return d
	}
	out := cloneDraft(d)
	out.Questions = append(out.Questions[:i], out.Questions[i+1:]...)
	return out
}

// DuplicateQuestion inserts a copy right after the source with a new id and
// the title suffixed by " (Copy)".
func DuplicateQuestion(d models.Draft, id string, ids IDGenerator) models.Draft {
	i := questionIndex(d, id)
	if i < 0 {
		return d
	}
	out := cloneDraft(d)
	dup := out.Questions[i].Clone()
	dup.ID = ids.NewID()
	dup.Title += CopySuffix

	questions := make([]models.Question, 0, len(out.Questions)+1)
	questions = append(questions, out.Questions[:i+1]...)
	questions = append(questions, dup)
	questions = append(questions, out.Questions[i+1:]...)
	out.Questions = questions
	return out
}

// ChangeQuestionType switches a question to another variant, converting its body.
// Choice to choice keeps the options; any other move starts from the default body.
func ChangeQuestionType(d models.Draft, id string, t models.QuestionType, ids IDGenerator) (models.Draft, error) {
	if !t.Valid() {
		return d, fmt.Errorf("%w: %q", models.ErrUnknownQuestionType, t)
	}
	i := questionIndex(d, id)
	if i < 0 {
		return d, nil
	}
	out := cloneDraft(d)
	q := out.Questions[i]
	switch {
	case t.IsChoice() && q.Type.IsChoice():
		// options carry over
	case t.IsChoice():
		q.Body = models.ChoiceBody{Options: []models.Option{{ID: ids.NewID(), Label: DefaultOptionLabel}}}
	default:
		q.Body = models.DefaultBody(t)
	}
	q.Type = t
	out.Questions[i] = q
	return out, nil
}

// AddOption appends an option to a choice question. The other option, when
// present, stays last.
func AddOption(d models.Draft, questionID, label string, isOther bool, ids IDGenerator) models.Draft {
	i := questionIndex(d, questionID)
	if i < 0 {
		return d
	}
	body, ok := d.Questions[i].Body.(models.ChoiceBody)
	if !ok {
		return d
	}
	if label == "" {
		label = fmt.Sprintf("Option %d", len(body.Options)+1)
	}
	opt := models.Option{ID: ids.NewID(), Label: label, IsOther: isOther}

	out := cloneDraft(d)
	opts := out.Questions[i].Options()
	if !isOther && len(opts) > 0 && opts[len(opts)-1].IsOther {
		opts = append(opts[:len(opts)-1], opt, opts[len(opts)-1])
	} else {
		opts = append(opts, opt)
	}
	out.Questions[i].Body = models.ChoiceBody{Options: opts}
	return out
}

// RemoveOption drops an option but never the last remaining one.
func RemoveOption(d models.Draft, questionID, optionID string) models.Draft {
	i := questionIndex(d, questionID)
	if i < 0 {
		return d
	}
	opts := d.Questions[i].Options()
	if len(opts) <= 1 {
		return d
	}
	for j, opt := range opts {
		if opt.ID != optionID {
			continue
		}
		out := cloneDraft(d)
		kept := out.Questions[i].Options()
		kept = append(kept[:j], kept[j+1:]...)
		out.Questions[i].Body = models.ChoiceBody{Options: kept}
		return out
	}
	return d
}

// AddSection appends a section at the end of the display order.
func AddSection(d models.Draft, ids IDGenerator) models.Draft {
	out := cloneDraft(d)
	out.Sections = append(out.Sections, models.Section{
		ID:    ids.NewID(),
		Title: DefaultSectionTitle,
		Order: len(out.Sections) + 1,
	})
	return out
}

// UpdateSection replaces title and description; order changes only through
// ReorderSections.
func UpdateSection(d models.Draft, updated models.Section) models.Draft {
	for i, s := range d.Sections {
		if s.ID != updated.ID {
			continue
		}
		out := cloneDraft(d)
		out.Sections[i].Title = updated.Title
		out.Sections[i].Description = updated.Description
		return out
	}
	return d
}

// DeleteSection removes a section, closes the gap in the order and detaches
// the questions and text blocks that belonged to it.
func DeleteSection(d models.Draft, id string) models.Draft {
	idx := -1
	for i, s := range d.Sections {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return d
	}

	out := cloneDraft(d)
	removed := out.Sections[idx].Order
	out.Sections = append(out.Sections[:idx], out.Sections[idx+1:]...)
	for i := range out.Sections {
		if out.Sections[i].Order > removed {
			out.Sections[i].Order--
		}
	}
	for i := range out.Questions {
		if out.Questions[i].SectionID == id {
			out.Questions[i].SectionID = ""
		}
	}
	for i := range out.TextBlocks {
		if out.TextBlocks[i].SectionID == id {
			out.TextBlocks[i].SectionID = ""
		}
	}
	return out
}

// ReorderSections sets every section's order to its 1-based position in
// orderedIDs. orderedIDs must be a permutation of the current section ids;
// otherwise the draft is returned unchanged with ErrInvalidPermutation.
func ReorderSections(d models.Draft, orderedIDs []string) (models.Draft, error) {
	if len(orderedIDs) != len(d.Sections) {
		return d, ErrInvalidPermutation
	}
	byID := make(map[string]models.Section, len(d.Sections))
	for _, s := range d.Sections {
		byID[s.ID] = s
	}
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if _, ok := byID[id]; !ok || seen[id] {
			return d, ErrInvalidPermutation
		}
		seen[id] = true
	}

	out := cloneDraft(d)
	out.Sections = make([]models.Section, len(orderedIDs))
	for i, id := range orderedIDs {
		s := byID[id]
		s.Order = i + 1
		out.Sections[i] = s
	}
	return out, nil
}

// AddTextBlock appends an empty text block.
func AddTextBlock(d models.Draft, sectionID string, ids IDGenerator) models.Draft {
	out := cloneDraft(d)
	out.TextBlocks = append(out.TextBlocks, models.TextBlock{
		ID:        ids.NewID(),
		SectionID: sectionID,
	})
	return out
}

func UpdateTextBlock(d models.Draft, updated models.TextBlock) models.Draft {
	for i, b := range d.TextBlocks {
		if b.ID == updated.ID {
			out := cloneDraft(d)
			out.TextBlocks[i] = updated
			return out
		}
	}
	return d
}

func DeleteTextBlock(d models.Draft, id string) models.Draft {
	for i, b := range d.TextBlocks {
		if b.ID == id {
			out := cloneDraft(d)
			out.TextBlocks = append(out.TextBlocks[:i], out.TextBlocks[i+1:]...)
			return out
		}
	}
	return d
}

// Field names accepted by SetField.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
)

// FieldValue reads one of the survey-level editable fields.
func FieldValue(d models.Draft, field string) (string, error) {
	switch field {
	case FieldTitle:
		return d.Title, nil
	case FieldDescription:
		return d.Description, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
}

// SetField writes one of the survey-level editable fields.
func SetField(d models.Draft, field, value string) (models.Draft, error) {
	out := cloneDraft(d)
	switch field {
	case FieldTitle:
		out.Title = value
	case FieldDescription:
		out.Description = value
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return out, nil
}
