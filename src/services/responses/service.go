package responses

import (
	"context"
	"errors"

	"Tracer-Study-Portal/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidID          = errors.New("invalid submission id")
)

// Service อ่านคำตอบจาก collection submissions (read-only)
type Service struct {
	col *mongo.Collection
}

func NewService(col *mongo.Collection) *Service {
	return &Service{col: col}
}

// List returns a page of submissions of the survey, newest first, each laid
// out against the survey's current questions.
func (s *Service) List(ctx context.Context, survey models.Survey, params models.PaginationParams) (*models.PaginatedResponse, error) {
	params.Normalize()
	filter := bson.M{"surveyId": survey.ID}

	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "submittedAt", Value: params.GetSortOrder()}})

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []models.Submission
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}

	views := make([]models.SubmissionView, 0, len(subs))
	for _, sub := range subs {
		views = append(views, BuildView(survey, sub))
	}
	return models.NewPaginatedResponse(views, total, params), nil
}

// Get returns one submission of the survey.
func (s *Service) Get(ctx context.Context, survey models.Survey, id string) (*models.SubmissionView, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var sub models.Submission
	err = s.col.FindOne(ctx, bson.M{"_id": oid, "surveyId": survey.ID}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	view := BuildView(survey, sub)
	return &view, nil
}
