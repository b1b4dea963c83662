// Package server provides the HTTP REST API for breedwise.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/breedwise/breedwise/internal/config"
	"github.com/breedwise/breedwise/internal/db"
	"github.com/breedwise/breedwise/internal/ingestion"
	"github.com/breedwise/breedwise/internal/llm"
	"github.com/breedwise/breedwise/internal/matching"
)

// Server represents the HTTP server
type Server struct {
	httpServer   *http.Server
	db           *db.DB
	matchService *matching.Service
	syncer       *ingestion.Syncer
	jwtService   *JWTService
	authHandler  *AuthHandler
	logger       *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	App         *config.Config
	Logger      *zap.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:     database,
		logger: cfg.Logger,
	}

	// Matching pipeline
	geminiClient, err := llm.NewGeminiClient(context.Background(), llm.DefaultConfig(), cfg.App.Gemini.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	recommender := matching.NewRecommender(geminiClient)
	s.matchService = matching.NewService(recommender, database)

	// Catalog ingestion
	dogAPI := ingestion.NewDogAPIClient(cfg.App.DogAPI.BaseURL, cfg.App.DogAPI.APIKey)
	s.syncer = ingestion.NewSyncer(dogAPI, database, cfg.Logger)

	// Authentication
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(database, passwordConfig, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long timeout for LLM-backed endpoints
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Breed catalog
	mux.HandleFunc("GET /breeds", s.handleListBreeds)
	mux.HandleFunc("GET /breeds/{id}", s.handleGetBreed)
	mux.HandleFunc("POST /breeds/sync", s.handleSyncBreeds)

	// Quiz matching
	mux.HandleFunc("POST /quiz", s.handleSubmitQuiz)
	mux.HandleFunc("GET /quiz/results", s.handleQuizResults)

	// Comparisons
	mux.HandleFunc("POST /comparisons/winners", s.handleComparisonWinners)
	mux.HandleFunc("POST /comparisons", s.requireAuth(s.handleCreateComparison))
	mux.HandleFunc("GET /comparisons", s.requireAuth(s.handleListComparisons))
	mux.HandleFunc("GET /comparisons/{id}", s.handleGetComparison)
	mux.HandleFunc("DELETE /comparisons/{id}", s.requireAuth(s.handleDeleteComparison))

	// Accounts
	mux.HandleFunc("POST /auth/register", s.authHandler.handleRegister)
	mux.HandleFunc("POST /auth/login", s.authHandler.handleLogin)

	return mux
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.db.Close()
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
