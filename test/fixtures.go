package test

import (
	"fmt"
	"time"

	"Tracer-Study-Portal/src/models"
)

// SequenceIDs generates "id-1", "id-2", ... for deterministic drafts.
type SequenceIDs struct {
	Prefix string
	n      int
}

func (s *SequenceIDs) NewID() string {
	s.n++
	prefix := s.Prefix
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s-%d", prefix, s.n)
}

// SampleDraft is a small tracer study draft: two sections, a choice question,
// a scale question and a text question.
func SampleDraft() models.Draft {
	return models.Draft{
		SurveyID:       "64b7f0c2a1b2c3d4e5f60718",
		Title:          "Tracer Study 2025",
		Description:    "Survei alumni angkatan 2020",
		ProgramStudyID: "ti",
		Sections: []models.Section{
			{ID: "sec-a", Title: "Identitas", Order: 1},
			{ID: "sec-b", Title: "Pekerjaan", Order: 2},
		},
		Questions: []models.Question{
			{
				ID:        "q-status",
				Type:      models.MultipleChoice,
				Title:     "Status saat ini",
				Required:  true,
				SectionID: "sec-b",
				Body: models.ChoiceBody{Options: []models.Option{
					{ID: "o-work", Label: "Bekerja"},
					{ID: "o-study", Label: "Melanjutkan studi"},
					{ID: "o-other", Label: "Lainnya", IsOther: true},
				}},
			},
			{
				ID:        "q-relevance",
				Type:      models.LinearScale,
				Title:     "Kesesuaian bidang kerja",
				SectionID: "sec-b",
				Body:      models.ScaleBody{MinValue: 1, MaxValue: 5, MinLabel: "Tidak sesuai", MaxLabel: "Sangat sesuai"},
			},
			{
				ID:        "q-company",
				Type:      models.ShortAnswer,
				Title:     "Nama perusahaan",
				SectionID: "sec-b",
				Body:      models.TextBody{},
			},
		},
		TextBlocks: []models.TextBlock{
			{ID: "tb-intro", Title: "Selamat datang", SectionID: "sec-a"},
		},
		UpdatedAt: time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC),
	}
}
