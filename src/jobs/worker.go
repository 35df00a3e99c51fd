package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"Tracer-Study-Portal/src/models"

	"github.com/hibiken/asynq"
)

// DraftSaver persists a draft into the survey collection.
type DraftSaver interface {
	SaveDraft(ctx context.Context, d models.Draft) error
}

// SaveDraftHandler writes queued drafts through the saver.
type SaveDraftHandler struct {
	Saver DraftSaver
}

func (h SaveDraftHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload SaveDraftPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ [SaveDraft] payload decode error:", err)
		// a payload that cannot decode will never succeed
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}

	if err := h.Saver.SaveDraft(ctx, payload.Draft); err != nil {
		log.Println("❌ [SaveDraft] failed to save draft:", payload.Draft.SurveyID, err)
		return err
	}

	log.Println("✅ [SaveDraft] draft saved:", payload.Draft.SurveyID)
	return nil
}

// NewServeMux registers every task handler of the portal.
func NewServeMux(saver DraftSaver) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Handle(TypeSaveDraft, SaveDraftHandler{Saver: saver})
	return mux
}

// NewWorker builds the asynq server consuming the drafts queue.
func NewWorker(redisURI string) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisURI},
		asynq.Config{
			Concurrency: 5,
			Queues:      map[string]int{QueueDrafts: 1},
		},
	)
}
