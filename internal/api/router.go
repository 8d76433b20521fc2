package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/efuentes/blackjack-go/internal/api/handler"
	"github.com/efuentes/blackjack-go/internal/api/middleware"
	"github.com/efuentes/blackjack-go/internal/services/auth"
	"github.com/efuentes/blackjack-go/internal/services/engine"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	AuthService *auth.Service
	Engine      *engine.Engine
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.AuthService, cfg.Engine)
	gameHandler := handler.NewGameHandler(cfg.Engine)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	playerMatchMiddleware := middleware.PlayerMatch()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player creation and login need no auth
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	// Everything under /players/{id} requires a session for that player
	players := api.PathPrefix("/players/{id}").Subrouter()
	players.Use(authMiddleware)
	players.Use(playerMatchMiddleware)
	players.HandleFunc("", playerHandler.Status).Methods(http.MethodGet)
	players.HandleFunc("/hand", playerHandler.HandDetails).Methods(http.MethodGet)
	players.HandleFunc("/balance", playerHandler.Balance).Methods(http.MethodGet)
	players.HandleFunc("/bet", gameHandler.Bet).Methods(http.MethodPost)
	players.HandleFunc("/start", gameHandler.Start).Methods(http.MethodPost)
	players.HandleFunc("/hit", gameHandler.Hit).Methods(http.MethodPost)
	players.HandleFunc("/stand", gameHandler.Stand).Methods(http.MethodPost)
	players.HandleFunc("/double", gameHandler.Double).Methods(http.MethodPost)
	players.HandleFunc("/split", gameHandler.Split).Methods(http.MethodPost)
	players.HandleFunc("/reset", gameHandler.Reset).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
