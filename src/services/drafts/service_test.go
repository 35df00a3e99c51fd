package drafts

import (
	"context"
	"errors"
	"testing"
	"time"

	"Tracer-Study-Portal/src/models"
	"Tracer-Study-Portal/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) GetSurvey(ctx context.Context, id string) (*models.Survey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Survey), args.Error(1)
}

type MockHook struct {
	mock.Mock
}

func (m *MockHook) AfterMutation(ctx context.Context, d models.Draft) {
	m.Called(ctx, d)
}

func sampleSurvey() *models.Survey {
	d := test.SampleDraft()
	id, _ := primitive.ObjectIDFromHex(d.SurveyID)
	return &models.Survey{
		ID:         id,
		Title:      d.Title,
		Questions:  d.Questions,
		Sections:   d.Sections,
		TextBlocks: d.TextBlocks,
	}
}

func newTestService(loader SurveyLoader, hook SaveHook) *Service {
	s := NewService(NewMemoryStore(time.Hour), loader, hook, &test.SequenceIDs{Prefix: "gen"})
	s.now = func() time.Time { return time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestServiceOpenSeedsOnce(t *testing.T) {
	ctx := context.Background()
	survey := sampleSurvey()
	loader := new(MockLoader)
	loader.On("GetSurvey", ctx, survey.ID.Hex()).Return(survey, nil).Once()

	s := newTestService(loader, nil)
	key := Key{SessionID: "sess", SurveyID: survey.ID.Hex()}

	d, err := s.Open(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, survey.ID.Hex(), d.SurveyID)
	assert.Len(t, d.Questions, 3)

	// second open comes from the store
	_, err = s.Open(ctx, key)
	require.NoError(t, err)
	loader.AssertExpectations(t)
}

func TestServiceOpenUnknownSurvey(t *testing.T) {
	ctx := context.Background()
	notFound := errors.New("survey not found")
	loader := new(MockLoader)
	loader.On("GetSurvey", ctx, "nope").Return(nil, notFound)

	s := newTestService(loader, nil)
	_, err := s.Open(ctx, Key{SessionID: "sess", SurveyID: "nope"})
	assert.ErrorIs(t, err, notFound)
}

func TestServiceApply(t *testing.T) {
	ctx := context.Background()
	survey := sampleSurvey()
	loader := new(MockLoader)
	loader.On("GetSurvey", ctx, mock.Anything).Return(survey, nil)
	hook := new(MockHook)
	hook.On("AfterMutation", ctx, mock.AnythingOfType("models.Draft")).Return()

	s := newTestService(loader, hook)
	key := Key{SessionID: "sess", SurveyID: survey.ID.Hex()}

	_, err := s.Apply(ctx, key, func(d models.Draft) (models.Draft, error) { return d, nil })
	assert.ErrorIs(t, err, ErrDraftNotOpen)

	_, err = s.Open(ctx, key)
	require.NoError(t, err)

	d, err := s.Apply(ctx, key, func(d models.Draft) (models.Draft, error) {
		return AddQuestion(d, s.IDs()), nil
	})
	require.NoError(t, err)
	assert.Len(t, d.Questions, 4)
	assert.Equal(t, time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC), d.UpdatedAt)
	hook.AssertNumberOfCalls(t, "AfterMutation", 1)

	// a no-op mutation does not notify
	_, err = s.Apply(ctx, key, func(d models.Draft) (models.Draft, error) {
		return DeleteQuestion(d, "missing"), nil
	})
	require.NoError(t, err)
	hook.AssertNumberOfCalls(t, "AfterMutation", 1)

	// a rejected mutation leaves the stored draft alone
	_, err = s.Apply(ctx, key, func(d models.Draft) (models.Draft, error) {
		return ReorderSections(d, []string{"sec-a"})
	})
	assert.ErrorIs(t, err, ErrInvalidPermutation)

	stored, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Len(t, stored.Questions, 4)
	assert.Equal(t, 1, stored.Sections[0].Order)
	hook.AssertNumberOfCalls(t, "AfterMutation", 1)
}

func TestServiceDiscard(t *testing.T) {
	ctx := context.Background()
	loader := new(MockLoader)
	loader.On("GetSurvey", ctx, mock.Anything).Return(sampleSurvey(), nil)
	s := newTestService(loader, nil)

	key := Key{SessionID: "sess", SurveyID: "s1"}
	_, err := s.Open(ctx, key)
	require.NoError(t, err)

	require.NoError(t, s.Discard(ctx, key))
	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, ErrDraftNotOpen)

	_, err = s.Open(ctx, key)
	require.NoError(t, err)
	require.NoError(t, s.DiscardSession(ctx, "sess"))
	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, ErrDraftNotOpen)
}
