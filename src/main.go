package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "Tracer-Study-Portal/docs"
	"Tracer-Study-Portal/src/config"
	"Tracer-Study-Portal/src/controllers"
	"Tracer-Study-Portal/src/database"
	"Tracer-Study-Portal/src/jobs"
	"Tracer-Study-Portal/src/middleware"
	"Tracer-Study-Portal/src/routes"
	"Tracer-Study-Portal/src/seeder"
	"Tracer-Study-Portal/src/services/apiclient"
	"Tracer-Study-Portal/src/services/auth"
	"Tracer-Study-Portal/src/services/drafts"
	"Tracer-Study-Portal/src/services/responses"
	"Tracer-Study-Portal/src/services/surveys"
	"Tracer-Study-Portal/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// @title           Tracer Study Portal API
// @version         1.0
// @description     Survey builder, response viewer and route guard of the alumni tracer study portal.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	utils.SetJWTSecret(cfg.JWTSecret)

	// เชื่อมต่อกับ MongoDB
	if err := database.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB); err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis เป็น optional: ไม่มี Redis = development mode
	if err := database.InitRedis(cfg.RedisURI); err != nil {
		log.Println("⚠️ Redis not available:", err)
	}
	database.InitAsynq()
	defer database.CloseAsynq()

	surveyService := surveys.NewService(database.SurveyCollection)
	draftService := drafts.NewService(
		drafts.NewStore(database.RedisClient, cfg.DraftTTL),
		surveyService,
		drafts.NewSaveHook(database.AsynqClient, surveyService),
		drafts.UUIDGenerator{},
	)

	if os.Getenv("SEED_DATA") == "true" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := seeder.SeedAdmin(ctx, database.UserCollection); err != nil {
			log.Println("❌ seed admin failed:", err)
		}
		if err := seeder.SeedSampleSurvey(ctx, database.SurveyCollection); err != nil {
			log.Println("❌ seed survey failed:", err)
		}
		cancel()
	}

	var worker interface{ Shutdown() }
	if database.RedisClient != nil {
		srv := jobs.NewWorker(database.RedisURI)
		worker = srv
		go func() {
			if err := srv.Run(jobs.NewServeMux(surveyService)); err != nil {
				log.Println("❌ asynq worker stopped:", err)
			}
		}()
		log.Println("✅ Asynq worker started")
	}

	// สร้าง app instance
	app := fiber.New(fiber.Config{AppName: "Tracer Study Portal"})
	app.Use(recover.New())
	app.Use(logger.New())

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: cfg.AllowedOrigins != "*", // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app, routes.Handlers{
		Auth: &controllers.AuthController{
			Auth:          auth.NewService(auth.MongoUsers{Col: database.UserCollection}),
			Drafts:        draftService,
			SecureCookies: cfg.SecureCookies,
		},
		Surveys: &controllers.SurveyController{Surveys: surveyService, PublicURL: cfg.PublicURL},
		Drafts:  &controllers.DraftController{Drafts: draftService},
		Responses: &controllers.ResponseController{
			Surveys:   surveyService,
			Responses: responses.NewService(database.SubmissionCollection),
		},
		ProgramStudies: &controllers.ProgramStudyController{API: apiclient.New(cfg.APIBaseURL)},
	}, middleware.EmbeddedMatcherConfig())

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down...")
		if worker != nil {
			worker.Shutdown()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = app.ShutdownWithContext(ctx)
		_ = database.DisconnectMongoDB(ctx)
	}()

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + cfg.AppURI)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.AppURI)); err != nil {
		log.Fatal(err)
	}
}
