package surveys

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"Tracer-Study-Portal/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrSurveyNotFound = errors.New("survey not found")
	ErrInvalidID      = errors.New("invalid survey id")
)

// Service ใช้จัดการ collection surveys
type Service struct {
	col *mongo.Collection
	now func() time.Time
}

func NewService(col *mongo.Collection) *Service {
	return &Service{col: col, now: time.Now}
}

// Create inserts an empty survey with one default section.
func (s *Service) Create(ctx context.Context, req models.CreateSurveyRequest, createdBy string) (*models.Survey, error) {
	now := s.now().UTC()
	survey := &models.Survey{
		ID:             primitive.NewObjectID(),
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		ProgramStudyID: req.ProgramStudyID,
		Questions:      []models.Question{},
		Sections:       []models.Section{{ID: primitive.NewObjectID().Hex(), Title: "Section 1", Order: 1}},
		TextBlocks:     []models.TextBlock{},
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := s.col.InsertOne(ctx, survey); err != nil {
		return nil, fmt.Errorf("insert survey: %w", err)
	}
	log.Printf("[Surveys] created id=%s by=%s", survey.ID.Hex(), createdBy)
	return survey, nil
}

// List returns a page of surveys, optionally filtered by title.
func (s *Service) List(ctx context.Context, params models.PaginationParams) (*models.PaginatedResponse, error) {
	params.Normalize()

	filter := bson.M{}
	if params.Search != "" {
		filter["title"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(params.Search), Options: "i"}}
	}

	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: params.SortBy, Value: params.GetSortOrder()}}).
		SetProjection(bson.M{"questions": 0, "textBlocks": 0})

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	surveys := []models.Survey{}
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, err
	}
	return models.NewPaginatedResponse(surveys, total, params), nil
}

// GetSurvey ดึงแบบสอบถามตาม id (hex)
func (s *Service) GetSurvey(ctx context.Context, id string) (*models.Survey, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var survey models.Survey
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&survey)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSurveyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

// SaveDraft writes the draft's content onto its survey. Saves older than the
// stored updatedAt are ignored so a late retry never overwrites a newer draft.
func (s *Service) SaveDraft(ctx context.Context, d models.Draft) error {
	oid, err := primitive.ObjectIDFromHex(d.SurveyID)
	if err != nil {
		return ErrInvalidID
	}
	for _, q := range d.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %s: %w", q.ID, err)
		}
	}

	filter := bson.M{"_id": oid, "updatedAt": bson.M{"$lte": d.UpdatedAt}}
	update := bson.M{"$set": bson.M{
		"title":          d.Title,
		"description":    d.Description,
		"programStudyId": d.ProgramStudyID,
		"questions":      d.Questions,
		"sections":       d.Sections,
		"textBlocks":     d.TextBlocks,
		"updatedAt":      d.UpdatedAt,
	}}

	res, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	if res.MatchedCount == 0 {
		log.Printf("⚠️ [Surveys] draft save skipped (missing or stale) id=%s", d.SurveyID)
		return nil
	}
	log.Printf("✅ [Surveys] draft saved id=%s questions=%d", d.SurveyID, len(d.Questions))
	return nil
}

// Delete removes a survey.
func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrSurveyNotFound
	}
	return nil
}
