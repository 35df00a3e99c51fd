package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission คำตอบของผู้ตอบหนึ่งคน (อ่านอย่างเดียว มาจากระบบรับคำตอบภายนอก)
type Submission struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SurveyID       primitive.ObjectID `bson:"surveyId" json:"surveyId"`
	RespondentID   string             `bson:"respondentId,omitempty" json:"respondentId"`
	RespondentName string             `bson:"respondentName,omitempty" json:"respondentName"`
	Answers        []Answer           `bson:"answers" json:"answers"`
	SubmittedAt    time.Time          `bson:"submittedAt" json:"submittedAt"`
}

// AnswerValue is the recorded value of an answer. Implementations are
// ChoiceAnswer, ScaleAnswer and TextAnswer.
type AnswerValue interface {
	answerValue()
}

type ChoiceAnswer struct {
	OptionIDs []string
	OtherText string
}

type ScaleAnswer struct {
	Value int
}

// TextAnswer also carries date and time answers in their ISO form.
type TextAnswer struct {
	Text string
}

func (ChoiceAnswer) answerValue() {}
func (ScaleAnswer) answerValue()  {}
func (TextAnswer) answerValue()   {}

type Answer struct {
	QuestionID string
	Value      AnswerValue
}

const (
	answerKindChoice = "choice"
	answerKindScale  = "scale"
	answerKindText   = "text"
)

var ErrUnknownAnswerKind = errors.New("unknown answer kind")

type answerDoc struct {
	QuestionID string   `json:"questionId" bson:"questionId"`
	Kind       string   `json:"kind" bson:"kind"`
	OptionIDs  []string `json:"optionIds,omitempty" bson:"optionIds,omitempty"`
	OtherText  string   `json:"otherText,omitempty" bson:"otherText,omitempty"`
	ScaleValue *int     `json:"scaleValue,omitempty" bson:"scaleValue,omitempty"`
	Text       string   `json:"text,omitempty" bson:"text,omitempty"`
}

func (a Answer) doc() answerDoc {
	doc := answerDoc{QuestionID: a.QuestionID}
	switch v := a.Value.(type) {
	case ChoiceAnswer:
		doc.Kind = answerKindChoice
		doc.OptionIDs = v.OptionIDs
		doc.OtherText = v.OtherText
	case ScaleAnswer:
		doc.Kind = answerKindScale
		value := v.Value
		doc.ScaleValue = &value
	case TextAnswer:
		doc.Kind = answerKindText
		doc.Text = v.Text
	}
	return doc
}

func (d answerDoc) answer() (Answer, error) {
	a := Answer{QuestionID: d.QuestionID}
	switch d.Kind {
	case answerKindChoice:
		a.Value = ChoiceAnswer{OptionIDs: d.OptionIDs, OtherText: d.OtherText}
	case answerKindScale:
		value := 0
		if d.ScaleValue != nil {
			value = *d.ScaleValue
		}
		a.Value = ScaleAnswer{Value: value}
	case answerKindText:
		a.Value = TextAnswer{Text: d.Text}
	default:
		return Answer{}, fmt.Errorf("%w: %q", ErrUnknownAnswerKind, d.Kind)
	}
	return a, nil
}

func (a Answer) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.doc())
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var d answerDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	parsed, err := d.answer()
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Answer) MarshalBSON() ([]byte, error) {
	return bson.Marshal(a.doc())
}

func (a *Answer) UnmarshalBSON(data []byte) error {
	var d answerDoc
	if err := bson.Unmarshal(data, &d); err != nil {
		return err
	}
	parsed, err := d.answer()
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ResponseView pairs a question with the answer a respondent gave to it.
// Answer is nil when the question was skipped.
type ResponseView struct {
	Question Question `json:"question"`
	Answer   *Answer  `json:"answer"`
	Display  string   `json:"display"`
}

// SubmissionView is one submission laid out in survey order.
type SubmissionView struct {
	ID             string         `json:"id"`
	RespondentName string         `json:"respondentName"`
	SubmittedAt    time.Time      `json:"submittedAt"`
	Items          []ResponseView `json:"items"`
}
