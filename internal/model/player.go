package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player aggregates a player's balance, staged bet, hands and game
// flags. A player normally holds one hand; a split produces two, played
// in order with independent bets.
type Player struct {
	ID       PlayerID `json:"id"`
	Username string   `json:"username"`
	Balance  int      `json:"balance"`

	// Bet is the staged wager, debited at placement and zeroed by
	// settlement and reset
	Bet int `json:"bet"`

	GameStarted bool `json:"game_started"`
	HasStood    bool `json:"has_stood"`

	Hands      []Hand `json:"hands,omitempty"`
	ActiveHand int    `json:"active_hand"`
	DealerHand Hand   `json:"dealer_hand"`

	IsGuest   bool      `json:"is_guest"`
	CreatedAt time.Time `json:"created_at"`
}

// PlaceBet stages a wager, debiting the balance immediately. Valid only
// before a game starts.
func (p *Player) PlaceBet(amount int) error {
	if p.GameStarted {
		return ErrGameInProgress
	}
	if amount > p.Balance {
		return ErrInsufficientBalance
	}
	p.Balance -= amount
	p.Bet = amount
	return nil
}

// Hand returns the player's active hand, or nil when no game is set up
func (p *Player) Hand() *Hand {
	if p.ActiveHand < 0 || p.ActiveHand >= len(p.Hands) {
		return nil
	}
	return &p.Hands[p.ActiveHand]
}

// AdvanceHand moves play to the next unfinished hand. It reports false
// when every hand has been played out and the dealer's turn begins.
func (p *Player) AdvanceHand() bool {
	for i := p.ActiveHand + 1; i < len(p.Hands); i++ {
		h := &p.Hands[i]
		if !h.Stood && !h.IsBust() {
			p.ActiveHand = i
			return true
		}
	}
	return false
}

// AllHandsBust reports whether every player hand busted, in which case
// the dealer does not draw
func (p *Player) AllHandsBust() bool {
	for i := range p.Hands {
		if !p.Hands[i].IsBust() {
			return false
		}
	}
	return len(p.Hands) > 0
}

// ClearHands discards all hands and the dealer hand
func (p *Player) ClearHands() {
	p.Hands = nil
	p.ActiveHand = 0
	p.DealerHand.Clear()
}

// RegisteredPlayer extends Player with authentication data.
// Stored separately so the password hash never travels with game state.
type RegisteredPlayer struct {
	PlayerID     PlayerID  `json:"player_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
