package drafts

import (
	"context"
	"testing"
	"time"

	"Tracer-Study-Portal/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreWithoutRedis(t *testing.T) {
	_, ok := NewStore(nil, time.Hour).(*MemoryStore)
	assert.True(t, ok)
}

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)
	key := Key{SessionID: "sess-1", SurveyID: "survey-1"}

	_, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	d := test.SampleDraft()
	require.NoError(t, s.Put(ctx, key, d))

	got, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, d.Title, got.Title)

	// the stored copy is isolated from the caller's draft
	got.Questions[0].Title = "mutated"
	again, _, _ := s.Get(ctx, key)
	assert.Equal(t, "Status saat ini", again.Questions[0].Title)

	require.NoError(t, s.Discard(ctx, key))
	_, ok, _ = s.Get(ctx, key)
	assert.False(t, ok)
}

func TestMemoryStoreDiscardSession(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)
	a := Key{SessionID: "sess-1", SurveyID: "s1"}
	b := Key{SessionID: "sess-1", SurveyID: "s2"}
	other := Key{SessionID: "sess-2", SurveyID: "s1"}
	for _, k := range []Key{a, b, other} {
		require.NoError(t, s.Put(ctx, k, test.SampleDraft()))
	}

	require.NoError(t, s.DiscardSession(ctx, "sess-1"))

	_, ok, _ := s.Get(ctx, a)
	assert.False(t, ok)
	_, ok, _ = s.Get(ctx, b)
	assert.False(t, ok)
	_, ok, _ = s.Get(ctx, other)
	assert.True(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Minute)
	s.now = func() time.Time { return now }

	key := Key{SessionID: "sess", SurveyID: "s"}
	require.NoError(t, s.Put(ctx, key, test.SampleDraft()))

	// reads slide the expiry forward
	now = now.Add(50 * time.Second)
	_, ok, _ := s.Get(ctx, key)
	assert.True(t, ok)

	now = now.Add(50 * time.Second)
	_, ok, _ = s.Get(ctx, key)
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok, _ = s.Get(ctx, key)
	assert.False(t, ok)
}
