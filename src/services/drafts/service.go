package drafts

import (
	"context"
	"errors"
	"log"
	"reflect"
	"sync"
	"time"

	"Tracer-Study-Portal/src/models"
)

var ErrDraftNotOpen = errors.New("draft is not open")

// SurveyLoader loads the stored survey a draft is seeded from.
type SurveyLoader interface {
	GetSurvey(ctx context.Context, id string) (*models.Survey, error)
}

// Mutation is one draft transition.
type Mutation func(d models.Draft) (models.Draft, error)

// Service owns the lifecycle of drafts: open, mutate, discard.
type Service struct {
	store  Store
	loader SurveyLoader
	hook   SaveHook
	ids    IDGenerator
	now    func() time.Time

	locks sync.Map // Key -> *sync.Mutex
}

func NewService(store Store, loader SurveyLoader, hook SaveHook, ids IDGenerator) *Service {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Service{store: store, loader: loader, hook: hook, ids: ids, now: time.Now}
}

// IDs returns the generator mutations should use for new entities.
func (s *Service) IDs() IDGenerator { return s.ids }

func (s *Service) lock(key Key) func() {
	m, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Open returns the session's draft of a survey, seeding it from the stored
// survey the first time.
func (s *Service) Open(ctx context.Context, key Key) (models.Draft, error) {
	defer s.lock(key)()

	if d, ok, err := s.store.Get(ctx, key); err != nil || ok {
		return d, err
	}

	survey, err := s.loader.GetSurvey(ctx, key.SurveyID)
	if err != nil {
		return models.Draft{}, err
	}
	d := models.DraftFromSurvey(*survey)
	if err := s.store.Put(ctx, key, d); err != nil {
		return models.Draft{}, err
	}
	log.Printf("[Drafts] opened survey=%s session=%s", key.SurveyID, key.SessionID)
	return d, nil
}

func (s *Service) Get(ctx context.Context, key Key) (models.Draft, error) {
	d, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return models.Draft{}, err
	}
	if !ok {
		return models.Draft{}, ErrDraftNotOpen
	}
	return d, nil
}

// Apply runs a mutation against the open draft. A mutation error leaves the
// stored draft untouched; a mutation that changes nothing skips the save hook.
func (s *Service) Apply(ctx context.Context, key Key, m Mutation) (models.Draft, error) {
	defer s.lock(key)()

	current, err := s.Get(ctx, key)
	if err != nil {
		return models.Draft{}, err
	}

	next, err := m(current)
	if err != nil {
		return current, err
	}
	if reflect.DeepEqual(cloneDraft(current), cloneDraft(next)) {
		return current, nil
	}

	next.UpdatedAt = s.now()
	if err := s.store.Put(ctx, key, next); err != nil {
		return current, err
	}
	if s.hook != nil {
		s.hook.AfterMutation(ctx, next)
	}
	return next, nil
}

func (s *Service) Discard(ctx context.Context, key Key) error {
	defer s.lock(key)()
	return s.store.Discard(ctx, key)
}

// DiscardSession drops every draft of a session (logout).
func (s *Service) DiscardSession(ctx context.Context, sessionID string) error {
	return s.store.DiscardSession(ctx, sessionID)
}
