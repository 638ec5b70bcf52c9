package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/BeAyanK/TechInfinite-User/internal/catalog"
	"github.com/BeAyanK/TechInfinite-User/internal/docstore"
	"github.com/BeAyanK/TechInfinite-User/internal/httpapi"
	"github.com/BeAyanK/TechInfinite-User/internal/session"
	"github.com/BeAyanK/TechInfinite-User/internal/storage"
)

type Config struct {
	HTTPPort        string
	DocstoreURL     string
	RedisAddr       string
	RedisPassword   string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		DocstoreURL:     getEnv("DOCSTORE_URL", "https://adapthomeadmin-default-rtdb.asia-southeast1.firebasedatabase.app"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// .env is optional; env vars win either way
	_ = godotenv.Load()

	cfg := loadConfig()
	ctx := context.Background()

	// Sidecar: Redis when configured, in-process otherwise
	var sidecar storage.Sidecar
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Redis connection failed: %v", err)
		}
		log.Printf("Connected to Redis at %s", cfg.RedisAddr)
		sidecar = storage.NewRedisSidecar(redisClient)
	} else {
		log.Println("No REDIS_ADDR configured, session mirrors stay in-process")
		sidecar = storage.NewMemorySidecar()
	}

	store := docstore.NewClient(cfg.DocstoreURL, cfg.RequestTimeout)
	catalogService := catalog.NewService(store)
	sessions := session.NewRegistry(sidecar, store)

	router := httpapi.NewRouter(catalogService, sessions, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
