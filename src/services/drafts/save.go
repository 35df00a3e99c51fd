package drafts

import (
	"context"
	"log"
	"time"

	"Tracer-Study-Portal/src/jobs"
	"Tracer-Study-Portal/src/models"

	"github.com/hibiken/asynq"
)

// SaveHook is called after every mutation that changed a draft. It is
// fire-and-forget: failures are logged, never returned to the editor.
type SaveHook interface {
	AfterMutation(ctx context.Context, d models.Draft)
}

// Enqueuer is the part of *asynq.Client the async hook needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsyncSaveHook queues a draft:save task for the worker.
type AsyncSaveHook struct {
	Client Enqueuer
}

func (h AsyncSaveHook) AfterMutation(ctx context.Context, d models.Draft) {
	task, err := jobs.NewSaveDraftTask(d)
	if err != nil {
		log.Println("❌ [Drafts] cannot build save task:", err)
		return
	}
	if _, err := h.Client.EnqueueContext(ctx, task); err != nil {
		log.Println("❌ [Drafts] enqueue save failed:", d.SurveyID, err)
	}
}

// SyncSaveHook writes the draft directly; used when Redis (and so asynq) is
// not available.
type SyncSaveHook struct {
	Saver   jobs.DraftSaver
	Timeout time.Duration
}

func (h SyncSaveHook) AfterMutation(ctx context.Context, d models.Draft) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := h.Saver.SaveDraft(ctx, d); err != nil {
		log.Println("❌ [Drafts] save failed:", d.SurveyID, err)
	}
}

// NewSaveHook picks the async hook when an asynq client is configured.
func NewSaveHook(client *asynq.Client, saver jobs.DraftSaver) SaveHook {
	if client != nil {
		return AsyncSaveHook{Client: client}
	}
	return SyncSaveHook{Saver: saver}
}
