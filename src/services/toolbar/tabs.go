package toolbar

import (
	"errors"
	"fmt"
	"log"
	"net/url"
)

// Tab is one entry of the survey builder toolbar.
type Tab string

const (
	TabQuestions    Tab = "questions"
	TabProgramStudy Tab = "program-study"
	TabResponses    Tab = "responses"
)

var Tabs = []Tab{TabQuestions, TabProgramStudy, TabResponses}

var (
	ErrUnknownTab          = errors.New("unknown toolbar tab")
	ErrMissingSurvey       = errors.New("survey id is required")
	ErrMissingProgramStudy = errors.New("program-study tab needs both survey and program study ids")
)

func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// Route returns the page a tab navigates to. When the program-study tab is
// missing an id the click is ignored and a warning logged.
func Route(tab Tab, surveyID, programStudyID string) (string, error) {
	switch tab {
	case TabQuestions, TabResponses:
		if surveyID == "" {
			return "", ErrMissingSurvey
		}
	case TabProgramStudy:
		if surveyID == "" || programStudyID == "" {
			log.Printf("⚠️ [Toolbar] program-study tab without ids survey=%q programStudy=%q", surveyID, programStudyID)
			return "", ErrMissingProgramStudy
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}

	base := "/survey/" + url.PathEscape(surveyID)
	switch tab {
	case TabResponses:
		return base + "/responses", nil
	case TabProgramStudy:
		return base + "/program-study/" + url.PathEscape(programStudyID), nil
	default:
		return base, nil
	}
}
