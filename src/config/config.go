package config

import (
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Config ค่าตั้งค่าทั้งหมดที่อ่านจาก environment (.env)
type Config struct {
	AppURI         string
	MongoURI       string
	MongoDB        string
	RedisURI       string
	JWTSecret      string
	AllowedOrigins string
	APIBaseURL     string
	PublicURL      string
	DraftTTL       time.Duration
	SecureCookies  bool
}

var (
	loaded Config
	once   sync.Once
)

// Load reads .env once and returns the process configuration.
func Load() Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Warning: No .env file found")
		}
		loaded = FromEnv()
	})
	return loaded
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() Config {
	return Config{
		AppURI:         SafeEnv("APP_URI", "8888"),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        SafeEnv("MONGO_DB", "TracerStudyDB"),
		RedisURI:       os.Getenv("REDIS_URI"),
		JWTSecret:      SafeEnv("JWT_SECRET", "your_secret_key"),
		AllowedOrigins: SafeEnv("ALLOWED_ORIGINS", "*"),
		APIBaseURL:     strings.TrimRight(os.Getenv("API_BASE_URL"), "/"),
		PublicURL:      SafeEnv("PUBLIC_URL", "http://localhost:3000"),
		DraftTTL:       durationEnv("DRAFT_TTL", 2*time.Hour),
		SecureCookies:  os.Getenv("SECURE_COOKIES") == "true",
	}
}

// SafeEnv returns the environment variable value for key, or fallback if empty.
func SafeEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("⚠️ [Config] invalid %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}
