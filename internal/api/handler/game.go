package handler

import (
	"encoding/json"
	"net/http"

	"github.com/efuentes/blackjack-go/internal/api/request"
	"github.com/efuentes/blackjack-go/internal/api/response"
	"github.com/efuentes/blackjack-go/internal/services/engine"
)

// GameHandler handles game action endpoints
type GameHandler struct {
	engine *engine.Engine
}

// NewGameHandler creates a new game handler
func NewGameHandler(engine *engine.Engine) *GameHandler {
	return &GameHandler{engine: engine}
}

// Bet handles POST /api/v1/players/{id}/bet
func (h *GameHandler) Bet(w http.ResponseWriter, r *http.Request) {
	var req request.BetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Amount <= 0 {
		WriteError(w, NewInvalidRequestError("amount must be positive"))
		return
	}

	result, err := h.engine.PlaceBet(r.Context(), pathPlayerID(r), req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Start handles POST /api/v1/players/{id}/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.StartGame(r.Context(), pathPlayerID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Hit handles POST /api/v1/players/{id}/hit
func (h *GameHandler) Hit(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.Hit(r.Context(), pathPlayerID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Stand handles POST /api/v1/players/{id}/stand
func (h *GameHandler) Stand(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.Stand(r.Context(), pathPlayerID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Double handles POST /api/v1/players/{id}/double
func (h *GameHandler) Double(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.DoubleDown(r.Context(), pathPlayerID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Split handles POST /api/v1/players/{id}/split
func (h *GameHandler) Split(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Split(r.Context(), pathPlayerID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Reset handles POST /api/v1/players/{id}/reset
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.ResetGame(r.Context(), pathPlayerID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
