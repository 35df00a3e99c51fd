package seeder

import (
	"context"
	"errors"
	"log"
	"time"

	"Tracer-Study-Portal/src/config"
	"Tracer-Study-Portal/src/models"
	"Tracer-Study-Portal/src/services/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedAdmin สร้างบัญชี admin เริ่มต้น ถ้ายังไม่มี
func SeedAdmin(ctx context.Context, users *mongo.Collection) error {
	email := auth.NormalizeEmail(config.SafeEnv("SEED_ADMIN_EMAIL", "admin@tracer.local"))
	password := config.SafeEnv("SEED_ADMIN_PASSWORD", "admin1234")

	err := users.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		log.Println("[Seeder] admin already exists:", email)
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = users.InsertOne(ctx, models.User{
		ID:       primitive.NewObjectID(),
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
		Name:     "Administrator",
	})
	if err != nil {
		return err
	}
	log.Println("✅ [Seeder] admin created:", email)
	return nil
}

// SampleSurvey is a small tracer study used for local development.
func SampleSurvey(createdBy string) models.Survey {
	now := time.Now().UTC()
	return models.Survey{
		ID:          primitive.NewObjectID(),
		Title:       "Tracer Study Alumni",
		Description: "Kuesioner pelacakan alumni",
		Sections: []models.Section{
			{ID: "sec-identity", Title: "Identitas", Order: 1},
			{ID: "sec-career", Title: "Pekerjaan", Order: 2},
		},
		TextBlocks: []models.TextBlock{
			{ID: "tb-welcome", Title: "Selamat datang", Description: "Terima kasih telah meluangkan waktu.", SectionID: "sec-identity"},
		},
		Questions: []models.Question{
			{ID: "q-name", Type: models.ShortAnswer, Title: "Nama lengkap", Required: true, SectionID: "sec-identity", Body: models.TextBody{}},
			{ID: "q-graduated", Type: models.Date, Title: "Tanggal lulus", SectionID: "sec-identity", Body: models.TextBody{}},
			{
				ID: "q-status", Type: models.MultipleChoice, Title: "Status saat ini", Required: true, SectionID: "sec-career",
				Body: models.ChoiceBody{Options: []models.Option{
					{ID: "opt-work", Label: "Bekerja"},
					{ID: "opt-study", Label: "Melanjutkan studi"},
					{ID: "opt-seek", Label: "Mencari kerja"},
					{ID: "opt-other", Label: "Lainnya", IsOther: true},
				}},
			},
			{
				ID: "q-relevance", Type: models.LinearScale, Title: "Kesesuaian pekerjaan dengan bidang studi", SectionID: "sec-career",
				Body: models.ScaleBody{MinValue: 1, MaxValue: 5, MinLabel: "Tidak sesuai", MaxLabel: "Sangat sesuai"},
			},
			{ID: "q-feedback", Type: models.Paragraph, Title: "Saran untuk program studi", SectionID: "sec-career", Body: models.TextBody{}},
		},
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SeedSampleSurvey inserts SampleSurvey when the collection is empty.
func SeedSampleSurvey(ctx context.Context, surveys *mongo.Collection) error {
	n, err := surveys.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	s := SampleSurvey("seeder")
	if _, err := surveys.InsertOne(ctx, s); err != nil {
		return err
	}
	log.Println("✅ [Seeder] sample survey created:", s.ID.Hex())
	return nil
}
