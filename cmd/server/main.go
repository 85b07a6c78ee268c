package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/motiondesk/server/internal/ai"
	"github.com/motiondesk/server/internal/auth"
	"github.com/motiondesk/server/internal/chat"
	"github.com/motiondesk/server/internal/config"
	"github.com/motiondesk/server/internal/db"
	"github.com/motiondesk/server/internal/events"
	"github.com/motiondesk/server/internal/httpapi"
	"github.com/motiondesk/server/internal/httpapi/handlers"
	"github.com/motiondesk/server/internal/store/redisstore"
)

func main() {
	cfg := config.Load()

	gdb := db.Connect(cfg.DBDSN)
	repo := chat.NewRepo(gdb)

	var provider ai.Provider
	switch cfg.AIProvider {
	case "", "openai":
		provider = ai.NewOpenAIProvider(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	case "ollama":
		provider = ai.NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaModel)
	default:
		log.Fatalf("unsupported AI_PROVIDER=%q", cfg.AIProvider)
	}
	svc := chat.NewService(repo, ai.NewGateway(provider))

	var resolver auth.Resolver
	switch cfg.AuthMode {
	case "", "remote":
		if cfg.AuthBaseURL == "" {
			log.Fatal("AUTH_BASE_URL is required when AUTH_MODE=remote")
		}
		resolver = auth.NewHTTPResolver(cfg.AuthBaseURL, cfg.AuthAPIKey)
	case "jwt":
		resolver = auth.NewJWTResolver(cfg.JWTSecret)
	default:
		log.Fatalf("unsupported AUTH_MODE=%q", cfg.AuthMode)
	}

	settingsStore := redisstore.New(cfg.RedisAddr, cfg.RedisPassword)
	defer settingsStore.Close()

	var pub *events.Publisher
	if cfg.RabbitURL != "" {
		p, err := events.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
		if err != nil {
			log.Fatalf("rabbit dial: %v", err)
		}
		defer p.Close()
		pub = p
	}

	h := handlers.NewHandler(svc, settingsStore, pub)
	router := httpapi.NewRouter(cfg, h, resolver)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("[server] listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("[server] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[server] shutdown: %v", err)
	}
}
