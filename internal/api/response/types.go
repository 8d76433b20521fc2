package response

import (
	"github.com/efuentes/blackjack-go/internal/model"
	"github.com/efuentes/blackjack-go/internal/services/auth"
)

// Player represents a player in API responses
type Player struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Balance  int    `json:"balance"`
	IsGuest  bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:       string(p.ID),
		Username: p.Username,
		Balance:  p.Balance,
		IsGuest:  p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// NewAuthResponse builds an AuthResponse for a player and their session
func NewAuthResponse(p *model.Player, s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(p),
		SessionToken: s.Token,
	}
}
