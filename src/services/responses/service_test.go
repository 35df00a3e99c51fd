package responses

import (
	"context"
	"testing"
	"time"

	"Tracer-Study-Portal/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func submissionDoc(t *testing.T, s models.Submission) bson.D {
	raw, err := bson.Marshal(s)
	require.NoError(t, err)
	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func TestResponseService(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "TracerStudyDB.submissions"
	survey := sampleSurvey()
	sub := models.Submission{
		ID:          primitive.NewObjectID(),
		SurveyID:    survey.ID,
		SubmittedAt: time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC),
		Answers: []models.Answer{
			{QuestionID: "q-relevance", Value: models.ScaleAnswer{Value: 5}},
		},
	}

	mt.Run("list", func(mt *mtest.T) {
		svc := NewService(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, submissionDoc(mt.T, sub)),
		)

		page, err := svc.List(context.Background(), survey, models.PaginationParams{})
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), page.Total)
		views, ok := page.Data.([]models.SubmissionView)
		require.True(mt, ok)
		require.Len(mt, views, 1)
		assert.Equal(mt, "5 / 5", views[0].Items[1].Display)
	})

	mt.Run("get", func(mt *mtest.T) {
		svc := NewService(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, submissionDoc(mt.T, sub)))

		view, err := svc.Get(context.Background(), survey, sub.ID.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, sub.ID.Hex(), view.ID)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		svc := NewService(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := svc.Get(context.Background(), survey, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrSubmissionNotFound)
	})

	mt.Run("get invalid id", func(mt *mtest.T) {
		svc := NewService(mt.Coll)
		_, err := svc.Get(context.Background(), survey, "xyz")
		assert.ErrorIs(mt, err, ErrInvalidID)
	})
}
