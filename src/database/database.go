package database

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	SurveyCollection     *mongo.Collection
	UserCollection       *mongo.Collection
	SubmissionCollection *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว แล้วเตรียม collection ที่ใช้
func ConnectMongoDB(mongoURI, dbName string) error {
	if mongoURI == "" {
		return errors.New("MONGO_URI environment variable not set")
	}

	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, connectErr = mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if connectErr != nil {
			log.Println("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		// ตรวจสอบการเชื่อมต่อ
		if connectErr = client.Ping(ctx, readpref.Primary()); connectErr != nil {
			log.Println("❌ MongoDB ping failed:", connectErr)
			return
		}

		db := client.Database(dbName)
		SurveyCollection = db.Collection("surveys")
		UserCollection = db.Collection("users")
		SubmissionCollection = db.Collection("submissions")

		connectErr = ensureIndexes(ctx)
		if connectErr == nil {
			log.Println("✅ MongoDB connected successfully:", dbName)
		}
	})

	return connectErr
}

func ensureIndexes(ctx context.Context) error {
	_, err := UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = SubmissionCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "surveyId", Value: 1}, {Key: "submittedAt", Value: -1}},
	})
	return err
}

// DisconnectMongoDB ปิดการเชื่อมต่อตอน shutdown
func DisconnectMongoDB(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
