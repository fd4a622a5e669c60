package main

import (
	"context"
	"crypto/tls"
	"encoding/json"
	stdlog "log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/username/finassist/backend/src/assistant"
	"github.com/username/finassist/backend/src/cache"
	"github.com/username/finassist/backend/src/config"
	"github.com/username/finassist/backend/src/database"
	"github.com/username/finassist/backend/src/handlers"
	"github.com/username/finassist/backend/src/logger"
	"github.com/username/finassist/backend/src/security"
	"github.com/username/finassist/backend/src/services"
	"github.com/username/finassist/backend/src/store"
	"golang.org/x/time/rate"
)

func proxyHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Forwarded-Proto") == "https" {
			r.URL.Scheme = "https"
			r.TLS = &tls.ConnectionState{}
		}
		next.ServeHTTP(w, r)
	})
}

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded", "path", r.URL.Path)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowedOrigins := map[string]bool{
			"http://localhost:3000": true,
			"https://finassist.app": true,
		}

		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Requested-With")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)

	logger.L.Info("FinAssist backend server starting...")

	if config.Cfg.JWTSecret == "" || len(config.Cfg.JWTSecret) < 32 {
		logger.L.Error("JWT_SECRET configuration invalid.")
		os.Exit(1)
	}

	logger.L.Info("Initializing database...", "path", config.Cfg.DatabasePath)
	database.InitDB(config.Cfg.DatabasePath)
	database.RunMigrations(config.Cfg.DatabasePath)

	dataStore := store.NewSQLiteStore(database.DB)
	answerCache := cache.NewAnswerCache(config.Cfg.AnswerCacheTTL, config.Cfg.AnswerCacheCleanup)

	authService := security.NewAuthService(config.Cfg.JWTSecret)

	// The generative backend is optional; without it low-confidence
	// questions get a localized apology instead of an LLM answer.
	var llmService services.LLMService
	if svc, err := services.NewGeminiLLMService(context.Background(), config.Cfg.GeminiModel); err != nil {
		logger.L.Warn("Generative fallback unavailable", "error", err)
	} else {
		llmService = svc
	}

	classifier := assistant.NewIntentClassifier(assistant.DefaultRuleSet(), config.Cfg.DefaultLanguage)
	dispatcher := assistant.NewDispatcher(dataStore)
	composer := assistant.NewComposer(config.Cfg.DisplayCurrency)
	fallbackRouter := assistant.NewFallbackRouter(llmService)

	orchestrator := assistant.NewOrchestrator(
		dataStore,
		classifier,
		dispatcher,
		composer,
		fallbackRouter,
		answerCache,
		config.Cfg.FallbackThreshold,
		config.Cfg.DisplayCurrency,
		config.Cfg.Location,
	)

	assistantHandler := handlers.NewAssistantHandler(orchestrator, dataStore)

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(handlers.ContextualLoggerMiddleware)
	r.Use(proxyHeadersMiddleware)
	r.Use(enableCORS)
	r.Use(rateLimitMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "FinAssist Backend is running"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(handlers.AuthMiddleware(authService))

			r.Post("/assistant/query", assistantHandler.HandleQuery)
			r.Get("/assistant/conversation", assistantHandler.HandleGetConversation)
			r.Get("/assistant/history", assistantHandler.HandleGetHistory)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
		}
	})

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		stdlog.Fatalf("Failed to start server: %v", err)
	}
}
