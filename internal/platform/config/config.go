package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort string

	SessionSecret []byte
	SessionExp    time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBConnStr  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	GeminiAPIKey   string
	GeminiEndpoint string

	FashionSearchURL    string
	PlaceholderImageURL string
	ScrapeTimeoutSecs   int
	SeenImageTTL        time.Duration
	MaxImageAttempts    int
}

// Load reads .env plus the process environment and returns a fully constructed
// Config. Secrets have no defaults: a missing SESSION_SECRET or GEMINI_API_KEY
// is a startup error, never a placeholder value.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		APIPort:       getEnv("API_PORT", "8080"),
		SessionExp:    time.Duration(getEnvAsInt("SESSION_EXPIRATION_HOURS", 72)) * time.Hour,
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "user"),
		DBPassword:    getEnv("DB_PASSWORD", "password"),
		DBName:        getEnv("DB_NAME", "outfit_advisor_db"),
		DBSslMode:     getEnv("DB_SSLMODE", "disable"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		GeminiEndpoint: getEnv("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com/v1/models/gemini-pro:generateText"),

		FashionSearchURL:    getEnv("FASHION_SEARCH_URL", "https://www.fashionwebsite.com/search"),
		PlaceholderImageURL: getEnv("PLACEHOLDER_IMAGE_URL", "https://via.placeholder.com/150"),
		ScrapeTimeoutSecs:   getEnvAsInt("SCRAPE_TIMEOUT_SECONDS", 10),
		SeenImageTTL:        time.Duration(getEnvAsInt("SEEN_IMAGE_TTL_MINUTES", 30)) * time.Minute,
		MaxImageAttempts:    getEnvAsInt("MAX_IMAGE_ATTEMPTS", 3),
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}
	cfg.SessionSecret = []byte(secret)

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}

	cfg.DBConnStr = "host=" + cfg.DBHost +
		" port=" + cfg.DBPort +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" sslmode=" + cfg.DBSslMode

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
