package request

// CreatePlayerRequest is the request body for creating a player.
// A password makes the account registered; without one the player is a
// guest. Balance defaults to the configured starting balance when zero.
type CreatePlayerRequest struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Balance  int    `json:"balance,omitempty"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// BetRequest is the request body for placing a bet
type BetRequest struct {
	Amount int `json:"amount"`
}
