package responses

import (
	"fmt"
	"strings"

	"Tracer-Study-Portal/src/models"
)

// BuildView pairs every question of the survey with the respondent's answer,
// in question order. Answers to questions no longer in the survey are dropped.
func BuildView(survey models.Survey, sub models.Submission) models.SubmissionView {
	answers := make(map[string]models.Answer, len(sub.Answers))
	for _, a := range sub.Answers {
		answers[a.QuestionID] = a
	}

	view := models.SubmissionView{
		ID:             sub.ID.Hex(),
		RespondentName: sub.RespondentName,
		SubmittedAt:    sub.SubmittedAt,
		Items:          make([]models.ResponseView, 0, len(survey.Questions)),
	}
	for _, q := range survey.Questions {
		item := models.ResponseView{Question: q}
		if a, ok := answers[q.ID]; ok {
			answer := a
			item.Answer = &answer
			item.Display = Display(q, a.Value)
		}
		view.Items = append(view.Items, item)
	}
	return view
}

// Display renders an answer as the viewer shows it. A value that does not
// match the question's family renders empty.
func Display(q models.Question, v models.AnswerValue) string {
	return models.VisitQuestion[string](q, displayVisitor{value: v})
}

type displayVisitor struct {
	value models.AnswerValue
}

func (v displayVisitor) Choice(_ models.Question, body models.ChoiceBody) string {
	ans, ok := v.value.(models.ChoiceAnswer)
	if !ok {
		return ""
	}
	byID := make(map[string]models.Option, len(body.Options))
	for _, opt := range body.Options {
		byID[opt.ID] = opt
	}

	parts := make([]string, 0, len(ans.OptionIDs))
	for _, id := range ans.OptionIDs {
		opt, ok := byID[id]
		if !ok {
			continue
		}
		if opt.IsOther && ans.OtherText != "" {
			parts = append(parts, opt.Label+": "+ans.OtherText)
			continue
		}
		parts = append(parts, opt.Label)
	}
	return strings.Join(parts, ", ")
}

func (v displayVisitor) Scale(_ models.Question, body models.ScaleBody) string {
	ans, ok := v.value.(models.ScaleAnswer)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d / %d", ans.Value, body.MaxValue)
}

func (v displayVisitor) Text(models.Question) string {
	ans, ok := v.value.(models.TextAnswer)
	if !ok {
		return ""
	}
	return ans.Text
}
