package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Section กลุ่มของคำถาม เรียงตาม Order (1..N)
type Section struct {
	ID          string `json:"id" bson:"id" example:"sec-1"`
	Title       string `json:"title" bson:"title" example:"Data Pekerjaan"`
	Description string `json:"description" bson:"description"`
	Order       int    `json:"order" bson:"order" example:"1"`
}

// TextBlock is a non-question block of explanatory text.
type TextBlock struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	SectionID   string `json:"sectionId,omitempty" bson:"sectionId,omitempty"`
}

// Survey แบบสอบถาม tracer study ที่บันทึกในฐานข้อมูล
type Survey struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title" example:"Tracer Study 2025"`
	Description    string             `json:"description" bson:"description"`
	ProgramStudyID string             `json:"programStudyId,omitempty" bson:"programStudyId,omitempty" example:"ti"`
	Questions      []Question         `json:"questions" bson:"questions"`
	Sections       []Section          `json:"sections" bson:"sections"`
	TextBlocks     []TextBlock        `json:"textBlocks" bson:"textBlocks"`
	CreatedBy      string             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Draft is the in-memory, unsaved representation of a survey under construction.
type Draft struct {
	SurveyID       string      `json:"surveyId"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	ProgramStudyID string      `json:"programStudyId,omitempty"`
	Questions      []Question  `json:"questions"`
	Sections       []Section   `json:"sections"`
	TextBlocks     []TextBlock `json:"textBlocks"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// DraftFromSurvey seeds a draft from the stored survey.
func DraftFromSurvey(s Survey) Draft {
	d := Draft{
		SurveyID:       s.ID.Hex(),
		Title:          s.Title,
		Description:    s.Description,
		ProgramStudyID: s.ProgramStudyID,
		Questions:      make([]Question, 0, len(s.Questions)),
		Sections:       append([]Section{}, s.Sections...),
		TextBlocks:     append([]TextBlock{}, s.TextBlocks...),
		UpdatedAt:      s.UpdatedAt,
	}
	for _, q := range s.Questions {
		d.Questions = append(d.Questions, q.Clone())
	}
	return d
}

// CreateSurveyRequest body ของการสร้างแบบสอบถามใหม่
type CreateSurveyRequest struct {
	Title          string `json:"title" validate:"required,max=200" example:"Tracer Study 2025"`
	Description    string `json:"description" validate:"max=2000"`
	ProgramStudyID string `json:"programStudyId" example:"ti"`
}
