package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// QuestionType ชนิดของคำถาม (variant tag)
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	Checkbox       QuestionType = "checkbox"
	Dropdown       QuestionType = "dropdown"
	ShortAnswer    QuestionType = "short_answer"
	Paragraph      QuestionType = "paragraph"
	LinearScale    QuestionType = "linear_scale"
	Date           QuestionType = "date"
	Time           QuestionType = "time"
)

// QuestionTypes lists every supported variant in builder menu order.
var QuestionTypes = []QuestionType{
	MultipleChoice, Checkbox, Dropdown, ShortAnswer, Paragraph, LinearScale, Date, Time,
}

var (
	ErrUnknownQuestionType = errors.New("unknown question type")
	ErrBodyMismatch        = errors.New("question body does not match its type")
	ErrNoOptions           = errors.New("choice questions need at least one option")
	ErrDuplicateOption     = errors.New("option ids must be unique within a question")
	ErrInvalidScale        = errors.New("linear scale needs minValue < maxValue")
)

func (t QuestionType) Valid() bool {
	switch t {
	case MultipleChoice, Checkbox, Dropdown, ShortAnswer, Paragraph, LinearScale, Date, Time:
		return true
	}
	return false
}

// IsChoice reports whether answers pick from an option list.
func (t QuestionType) IsChoice() bool {
	return t == MultipleChoice || t == Checkbox || t == Dropdown
}

// Option ตัวเลือกของคำถามแบบเลือกตอบ
type Option struct {
	ID      string `json:"id" bson:"id" example:"opt-1"`
	Label   string `json:"label" bson:"label" example:"Bekerja"`
	IsOther bool   `json:"isOther" bson:"isOther"`
}

// QuestionBody is the variant-specific payload of a Question. The set of
// implementations is closed: ChoiceBody, ScaleBody and TextBody.
type QuestionBody interface {
	questionBody()
}

type ChoiceBody struct {
	Options []Option
}

type ScaleBody struct {
	MinValue int
	MaxValue int
	MinLabel string
	MaxLabel string
}

// TextBody covers short_answer, paragraph, date and time.
type TextBody struct{}

func (ChoiceBody) questionBody() {}
func (ScaleBody) questionBody()  {}
func (TextBody) questionBody()   {}

// Question คำถามในแบบสอบถาม
type Question struct {
	ID          string
	Type        QuestionType
	Title       string
	Description string
	Required    bool
	SectionID   string
	Body        QuestionBody
}

// QuestionVisitor handles each question family. Adding a variant family means
// adding a method here, so every visitor has to be updated.
type QuestionVisitor[R any] interface {
	Choice(q Question, body ChoiceBody) R
	Scale(q Question, body ScaleBody) R
	Text(q Question) R
}

// VisitQuestion dispatches q to the visitor method for its body.
func VisitQuestion[R any](q Question, v QuestionVisitor[R]) R {
	switch body := q.Body.(type) {
	case ChoiceBody:
		return v.Choice(q, body)
	case ScaleBody:
		return v.Scale(q, body)
	default:
		return v.Text(q)
	}
}

// DefaultBody returns the empty payload for a variant.
func DefaultBody(t QuestionType) QuestionBody {
	switch {
	case t.IsChoice():
		return ChoiceBody{}
	case t == LinearScale:
		return ScaleBody{MinValue: 1, MaxValue: 5}
	default:
		return TextBody{}
	}
}

// Options returns the option list of a choice question, nil otherwise.
func (q Question) Options() []Option {
	if body, ok := q.Body.(ChoiceBody); ok {
		return body.Options
	}
	return nil
}

// Clone returns a deep copy so drafts never share option slices.
func (q Question) Clone() Question {
	if body, ok := q.Body.(ChoiceBody); ok {
		opts := make([]Option, len(body.Options))
		copy(opts, body.Options)
		q.Body = ChoiceBody{Options: opts}
	}
	return q
}

// Validate checks the structural invariants of a question.
func (q Question) Validate() error {
	if !q.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownQuestionType, q.Type)
	}
	switch body := q.Body.(type) {
	case ChoiceBody:
		if !q.Type.IsChoice() {
			return ErrBodyMismatch
		}
		if len(body.Options) == 0 {
			return ErrNoOptions
		}
		seen := make(map[string]bool, len(body.Options))
		for _, opt := range body.Options {
			if seen[opt.ID] {
				return fmt.Errorf("%w: %s", ErrDuplicateOption, opt.ID)
			}
			seen[opt.ID] = true
		}
	case ScaleBody:
		if q.Type != LinearScale {
			return ErrBodyMismatch
		}
		if body.MinValue >= body.MaxValue {
			return ErrInvalidScale
		}
	case TextBody:
		if q.Type.IsChoice() || q.Type == LinearScale {
			return ErrBodyMismatch
		}
	default:
		return ErrBodyMismatch
	}
	return nil
}

// questionDoc is the flat wire shape shared by JSON and BSON.
type questionDoc struct {
	ID          string       `json:"id" bson:"id"`
	Type        QuestionType `json:"type" bson:"type"`
	Title       string       `json:"title" bson:"title"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	Required    bool         `json:"required" bson:"required"`
	SectionID   string       `json:"sectionId,omitempty" bson:"sectionId,omitempty"`
	Options     []Option     `json:"options,omitempty" bson:"options,omitempty"`
	MinValue    *int         `json:"minValue,omitempty" bson:"minValue,omitempty"`
	MaxValue    *int         `json:"maxValue,omitempty" bson:"maxValue,omitempty"`
	MinLabel    string       `json:"minLabel,omitempty" bson:"minLabel,omitempty"`
	MaxLabel    string       `json:"maxLabel,omitempty" bson:"maxLabel,omitempty"`
}

type docVisitor struct{}

func (docVisitor) Choice(q Question, body ChoiceBody) questionDoc {
	doc := baseDoc(q)
	doc.Options = body.Options
	if doc.Options == nil {
		doc.Options = []Option{}
	}
	return doc
}

func (docVisitor) Scale(q Question, body ScaleBody) questionDoc {
	doc := baseDoc(q)
	minValue, maxValue := body.MinValue, body.MaxValue
	doc.MinValue = &minValue
	doc.MaxValue = &maxValue
	doc.MinLabel = body.MinLabel
	doc.MaxLabel = body.MaxLabel
	return doc
}

func (docVisitor) Text(q Question) questionDoc {
	return baseDoc(q)
}

func baseDoc(q Question) questionDoc {
	return questionDoc{
		ID:          q.ID,
		Type:        q.Type,
		Title:       q.Title,
		Description: q.Description,
		Required:    q.Required,
		SectionID:   q.SectionID,
	}
}

func (d questionDoc) question() (Question, error) {
	if !d.Type.Valid() {
		return Question{}, fmt.Errorf("%w: %q", ErrUnknownQuestionType, d.Type)
	}
	q := Question{
		ID:          d.ID,
		Type:        d.Type,
		Title:       d.Title,
		Description: d.Description,
		Required:    d.Required,
		SectionID:   d.SectionID,
	}
	switch {
	case d.Type.IsChoice():
		q.Body = ChoiceBody{Options: d.Options}
	case d.Type == LinearScale:
		body := ScaleBody{MinValue: 1, MaxValue: 5, MinLabel: d.MinLabel, MaxLabel: d.MaxLabel}
		if d.MinValue != nil {
			body.MinValue = *d.MinValue
		}
		if d.MaxValue != nil {
			body.MaxValue = *d.MaxValue
		}
		q.Body = body
	default:
		q.Body = TextBody{}
	}
	return q, nil
}

func (q Question) doc() questionDoc {
	if q.Body == nil {
		q.Body = DefaultBody(q.Type)
	}
	return VisitQuestion[questionDoc](q, docVisitor{})
}

func (q Question) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.doc())
}

func (q *Question) UnmarshalJSON(data []byte) error {
	var d questionDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	parsed, err := d.question()
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

func (q Question) MarshalBSON() ([]byte, error) {
	return bson.Marshal(q.doc())
}

func (q *Question) UnmarshalBSON(data []byte) error {
	var d questionDoc
	if err := bson.Unmarshal(data, &d); err != nil {
		return err
	}
	parsed, err := d.question()
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
