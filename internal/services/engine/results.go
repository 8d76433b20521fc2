package engine

import "github.com/efuentes/blackjack-go/internal/model"

// Winner identifies who took a settled hand
type Winner string

const (
	WinnerPlayer Winner = "Player"
	WinnerDealer Winner = "Dealer"
	WinnerTie    Winner = "Tie"
)

// CardView is the display form of a dealt card
type CardView struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

func cardViews(cards []model.Card) []CardView {
	views := make([]CardView, len(cards))
	for i, c := range cards {
		views[i] = CardView{Rank: string(c.Rank), Suit: string(c.Suit)}
	}
	return views
}

// BetResult reports a successfully placed bet
type BetResult struct {
	Bet     int `json:"bet"`
	Balance int `json:"balance"`
}

// HandOutcome is the settlement of a single player hand against the
// dealer. A game that was never split settles exactly one of these.
type HandOutcome struct {
	Cards    []CardView `json:"cards"`
	Value    int        `json:"value"`
	Bet      int        `json:"bet"`
	Winner   Winner     `json:"winner"`
	Winnings int        `json:"winnings"`
	Message  string     `json:"message"`
}

// SettlementResult is the full outcome of a finished game: both hands
// revealed, the winner, and the bet accounting.
type SettlementResult struct {
	PlayerValue int        `json:"player_value"`
	DealerValue int        `json:"dealer_value"`
	PlayerHand  []CardView `json:"player_hand"`
	DealerHand  []CardView `json:"dealer_hand"`
	Winner      Winner     `json:"winner"`
	Message     string     `json:"message"`
	BetAmount   int        `json:"bet_amount"`
	Winnings    int        `json:"winnings"`
	NewBalance  int        `json:"player_new_balance"`

	// Hands carries per-hand outcomes when the game was split
	Hands []HandOutcome `json:"hands,omitempty"`
}

// StartResult describes the freshly dealt game. Settlement is non-nil
// when the opening deal was a natural blackjack and the game settled
// immediately.
type StartResult struct {
	PlayerCards   []CardView        `json:"player_cards"`
	HandValue     int               `json:"hand_value"`
	Bet           int               `json:"bet"`
	DealerFaceUp  CardView          `json:"dealer_face_up_card"`
	DealerUpValue int               `json:"dealer_hand_value"`
	Settlement    *SettlementResult `json:"settlement,omitempty"`
}

// HitResult describes the state after dealing one card to the active
// hand. Settlement is non-nil when the hit ended the game.
type HitResult struct {
	PlayerCards  []CardView        `json:"player_cards"`
	PlayerValue  int               `json:"player_value"`
	DealerFaceUp CardView          `json:"dealer_face_up_card"`
	Bet          int               `json:"bet"`
	Status       string            `json:"status"`
	ActiveHand   int               `json:"active_hand"`
	NewBalance   int               `json:"player_new_balance"`
	Settlement   *SettlementResult `json:"settlement,omitempty"`
}

// StandResult is returned from a stand. When a split hand remains to be
// played, HandPending is true and no settlement has happened yet.
type StandResult struct {
	HandPending bool              `json:"hand_pending,omitempty"`
	ActiveHand  int               `json:"active_hand"`
	Settlement  *SettlementResult `json:"settlement,omitempty"`
}

// DoubleDownResult reports the single extra card and, once every hand
// is played out, the settlement.
type DoubleDownResult struct {
	Card        *CardView         `json:"card,omitempty"`
	HandPending bool              `json:"hand_pending,omitempty"`
	ActiveHand  int               `json:"active_hand"`
	Settlement  *SettlementResult `json:"settlement,omitempty"`
}

// StatusResult is the idempotent game status snapshot
type StatusResult struct {
	Balance     int    `json:"player_balance"`
	Status      string `json:"status"`
	PlayerValue int    `json:"player_hand_value,omitempty"`
	DealerValue int    `json:"dealer_hand_value,omitempty"`
}

// HandView is the display form of one player hand in hand details
type HandView struct {
	Cards []CardView `json:"cards"`
	Value int        `json:"value"`
	Bet   int        `json:"bet"`
}

// HandDetailsResult shows the player's cards and whatever dealer cards
// the visibility rule currently allows
type HandDetailsResult struct {
	PlayerCards []CardView `json:"player_cards"`
	HandValue   int        `json:"hand_value"`
	Bet         int        `json:"bet"`

	// Hands is populated when the player has split
	Hands      []HandView `json:"hands,omitempty"`
	ActiveHand int        `json:"active_hand"`

	// Before the player stands only the face-up card is listed; after
	// standing or settlement the full dealer hand is revealed
	DealerRevealed bool       `json:"dealer_revealed"`
	DealerCards    []CardView `json:"dealer_cards"`
	DealerValue    int        `json:"dealer_hand_value"`
}

// BalanceResult reports a player's balance
type BalanceResult struct {
	Balance int `json:"balance"`
}

// Status strings surfaced to callers
const (
	StatusContinue     = "Continue playing."
	StatusBust         = "Bust! Dealer wins."
	StatusHandBusted   = "Hand busted. Next hand in play."
	StatusNotInSession = "Game not in session."
	StatusInProgress   = "Game in progress."
)
