package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBDSN string

	// Auth: "remote" resolves tokens against AuthBaseURL, "jwt" verifies
	// HS256 tokens locally with JWTSecret.
	AuthMode    string
	AuthBaseURL string
	AuthAPIKey  string
	JWTSecret   string

	// AI provider
	AIProvider    string
	OpenAIBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string
	OllamaBaseURL string
	OllamaModel   string

	RedisAddr     string
	RedisPassword string

	// RabbitMQ saved-chat events; disabled when RabbitURL is empty.
	RabbitURL   string
	RabbitQueue string

	CORSOrigins []string
}

func Load() Config {
	// In development a .env file is convenient; in any real deployment the
	// variables come from the environment.
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err == nil {
			log.Printf("[config] loaded .env")
		}
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			"app", "apppass", "127.0.0.1", "3306", "motiondesk",
		)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	authMode := os.Getenv("AUTH_MODE")
	if authMode == "" {
		authMode = "remote"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}

	aiProvider := os.Getenv("AI_PROVIDER")
	if aiProvider == "" {
		aiProvider = "openai"
	}

	openAIModel := os.Getenv("OPENAI_MODEL")
	if openAIModel == "" {
		openAIModel = "gpt-4o-mini"
	}

	ollamaBaseURL := os.Getenv("OLLAMA_BASE_URL")
	if ollamaBaseURL == "" {
		ollamaBaseURL = "http://localhost:11434"
	}
	ollamaModel := os.Getenv("OLLAMA_MODEL")
	if ollamaModel == "" {
		ollamaModel = "llama3:latest"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "127.0.0.1:6379"
	}

	rabbitQueue := os.Getenv("RABBIT_QUEUE")
	if rabbitQueue == "" {
		rabbitQueue = "chat_saved_events"
	}

	origins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins = splitCSV(v)
	}

	return Config{
		Port:  port,
		DBDSN: dsn,

		AuthMode:    authMode,
		AuthBaseURL: os.Getenv("AUTH_BASE_URL"),
		AuthAPIKey:  os.Getenv("AUTH_API_KEY"),
		JWTSecret:   secret,

		AIProvider:    aiProvider,
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   openAIModel,
		OllamaBaseURL: ollamaBaseURL,
		OllamaModel:   ollamaModel,

		RedisAddr:     redisAddr,
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		RabbitURL:   os.Getenv("RABBIT_URL"),
		RabbitQueue: rabbitQueue,

		CORSOrigins: origins,
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
