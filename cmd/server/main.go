package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"outfit_advisor/internal/api"
	"outfit_advisor/internal/app/service"
	"outfit_advisor/internal/common/security"
	"outfit_advisor/internal/domain/repository"
	"outfit_advisor/internal/platform/cache"
	"outfit_advisor/internal/platform/config"
	"outfit_advisor/internal/platform/database"
	"outfit_advisor/internal/platform/genai"
	"outfit_advisor/internal/platform/scrape"
)

func main() {
	// 1. Load Configuration (fails fast on missing secrets)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	log.Println("Configuration loaded.")

	// 2. Session tokens
	tokens := security.NewTokenManager(cfg)

	// 3. Database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}
	defer db.Close()
	log.Println("Database connected.")

	// 4. Redis
	rdb, err := cache.Connect(cfg)
	if err != nil {
		log.Fatalf("Redis error: %v", err)
	}
	defer rdb.Close()
	log.Println("Redis connected.")

	// 5. Repositories
	userRepo := repository.NewPgUserRepository(db)

	// 6. External clients
	descriptions := genai.NewClient(cfg.GeminiEndpoint, cfg.GeminiAPIKey)
	images := scrape.NewScraper(cfg.FashionSearchURL, time.Duration(cfg.ScrapeTimeoutSecs)*time.Second)
	servedImages := cache.NewServedImageCache(rdb)

	// 7. Services
	authService := service.NewAuthService(userRepo, tokens)
	recommendationService := service.NewRecommendationService(
		descriptions,
		images,
		servedImages,
		cfg.PlaceholderImageURL,
		cfg.SeenImageTTL,
		cfg.MaxImageAttempts,
	)

	// 8. Router & HTTP Server
	router := api.NewRouter(authService, recommendationService, tokens)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
