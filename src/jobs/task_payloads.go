package jobs

import (
	"encoding/json"

	"Tracer-Study-Portal/src/models"

	"github.com/hibiken/asynq"
)

const (
	TypeSaveDraft = "draft:save"
	QueueDrafts   = "drafts"
)

type SaveDraftPayload struct {
	Draft models.Draft `json:"draft"`
}

func NewSaveDraftTask(d models.Draft) (*asynq.Task, error) {
	payload, err := json.Marshal(SaveDraftPayload{Draft: d})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSaveDraft, payload, asynq.Queue(QueueDrafts), asynq.MaxRetry(3)), nil
}
