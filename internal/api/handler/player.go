package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/efuentes/blackjack-go/internal/api/request"
	"github.com/efuentes/blackjack-go/internal/api/response"
	"github.com/efuentes/blackjack-go/internal/model"
	"github.com/efuentes/blackjack-go/internal/services/auth"
	"github.com/efuentes/blackjack-go/internal/services/engine"
)

// defaultStartingBalance is used when a create request omits the balance
const defaultStartingBalance = 100

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	authService *auth.Service
	engine      *engine.Engine
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(authService *auth.Service, engine *engine.Engine) *PlayerHandler {
	return &PlayerHandler{
		authService: authService,
		engine:      engine,
	}
}

// pathPlayerID pulls the player id out of the route
func pathPlayerID(r *http.Request) model.PlayerID {
	return model.PlayerID(mux.Vars(r)["id"])
}

// Create handles POST /api/v1/players. With a password the account is
// registered; without one a guest player is created.
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Balance < 0 {
		WriteError(w, NewInvalidRequestError("balance must not be negative"))
		return
	}

	balance := req.Balance
	if balance == 0 {
		balance = defaultStartingBalance
	}

	var (
		player  *model.Player
		session *auth.Session
		err     error
	)
	if req.Password != "" {
		player, session, err = h.authService.RegisterPlayer(r.Context(), req.Username, req.Password, balance)
	} else {
		player, session, err = h.authService.CreatePlayer(r.Context(), req.Username, balance)
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.NewAuthResponse(player, session))
}

// Login handles POST /api/v1/players/login
func (h *PlayerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	player, session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.NewAuthResponse(player, session))
}

// Status handles GET /api/v1/players/{id}
func (h *PlayerHandler) Status(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.GameStatus(r.Context(), pathPlayerID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// HandDetails handles GET /api/v1/players/{id}/hand
func (h *PlayerHandler) HandDetails(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.HandDetails(r.Context(), pathPlayerID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Balance handles GET /api/v1/players/{id}/balance
func (h *PlayerHandler) Balance(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.Balance(r.Context(), pathPlayerID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}
