package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case BetResult:
		o.printBetResult(v)
	case StartResult:
		o.printStartResult(v)
	case HitResult:
		o.printHitResult(v)
	case StandResult:
		o.printStandResult(v)
	case DoubleResult:
		o.printDoubleResult(v)
	case StatusResult:
		o.printStatusResult(v)
	case HandResult:
		o.printHandResult(v)
	case BalanceResult:
		o.printBalanceResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Balance  int    `json:"balance"`
	IsGuest  bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// Card response type
type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// HandOutcome response type
type HandOutcome struct {
	Cards    []Card `json:"cards"`
	Value    int    `json:"value"`
	Bet      int    `json:"bet"`
	Winner   string `json:"winner"`
	Winnings int    `json:"winnings"`
	Message  string `json:"message"`
}

// Settlement response type
type Settlement struct {
	PlayerValue int           `json:"player_value"`
	DealerValue int           `json:"dealer_value"`
	PlayerHand  []Card        `json:"player_hand"`
	DealerHand  []Card        `json:"dealer_hand"`
	Winner      string        `json:"winner"`
	Message     string        `json:"message"`
	BetAmount   int           `json:"bet_amount"`
	Winnings    int           `json:"winnings"`
	NewBalance  int           `json:"player_new_balance"`
	Hands       []HandOutcome `json:"hands,omitempty"`
}

// BetResult response type
type BetResult struct {
	Bet     int `json:"bet"`
	Balance int `json:"balance"`
}

// StartResult response type
type StartResult struct {
	PlayerCards  []Card      `json:"player_cards"`
	HandValue    int         `json:"hand_value"`
	Bet          int         `json:"bet"`
	DealerFaceUp Card        `json:"dealer_face_up_card"`
	Settlement   *Settlement `json:"settlement,omitempty"`
}

// HitResult response type
type HitResult struct {
	PlayerCards []Card      `json:"player_cards"`
	PlayerValue int         `json:"player_value"`
	Status      string      `json:"status"`
	ActiveHand  int         `json:"active_hand"`
	Settlement  *Settlement `json:"settlement,omitempty"`
}

// StandResult response type
type StandResult struct {
	HandPending bool        `json:"hand_pending,omitempty"`
	ActiveHand  int         `json:"active_hand"`
	Settlement  *Settlement `json:"settlement,omitempty"`
}

// DoubleResult response type
type DoubleResult struct {
	Card        *Card       `json:"card,omitempty"`
	HandPending bool        `json:"hand_pending,omitempty"`
	ActiveHand  int         `json:"active_hand"`
	Settlement  *Settlement `json:"settlement,omitempty"`
}

// StatusResult response type
type StatusResult struct {
	Balance     int    `json:"player_balance"`
	Status      string `json:"status"`
	PlayerValue int    `json:"player_hand_value,omitempty"`
	DealerValue int    `json:"dealer_hand_value,omitempty"`
}

// HandView response type
type HandView struct {
	Cards []Card `json:"cards"`
	Value int    `json:"value"`
	Bet   int    `json:"bet"`
}

// HandResult response type
type HandResult struct {
	PlayerCards    []Card     `json:"player_cards"`
	HandValue      int        `json:"hand_value"`
	Bet            int        `json:"bet"`
	Hands          []HandView `json:"hands,omitempty"`
	ActiveHand     int        `json:"active_hand"`
	DealerRevealed bool       `json:"dealer_revealed"`
	DealerCards    []Card     `json:"dealer_cards"`
	DealerValue    int        `json:"dealer_hand_value"`
}

// BalanceResult response type
type BalanceResult struct {
	Balance int `json:"balance"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func cardList(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Player: %s (%s)\n", p.Username, p.ID)
	fmt.Printf("Balance: %d\n", p.Balance)
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printBetResult(b BetResult) {
	fmt.Printf("Bet placed: %d\n", b.Bet)
	fmt.Printf("Balance: %d\n", b.Balance)
}

func (o *Output) printStartResult(s StartResult) {
	fmt.Printf("Your hand: %s (%d)\n", cardList(s.PlayerCards), s.HandValue)
	fmt.Printf("Dealer shows: %s\n", s.DealerFaceUp)
	fmt.Printf("Bet: %d\n", s.Bet)
	if s.Settlement != nil {
		fmt.Println()
		o.printSettlement(*s.Settlement)
	}
}

func (o *Output) printHitResult(h HitResult) {
	fmt.Printf("Your hand: %s (%d)\n", cardList(h.PlayerCards), h.PlayerValue)
	fmt.Println(h.Status)
	if h.Settlement != nil {
		fmt.Println()
		o.printSettlement(*h.Settlement)
	}
}

func (o *Output) printStandResult(s StandResult) {
	if s.HandPending {
		fmt.Printf("Hand stood. Now playing hand %d.\n", s.ActiveHand+1)
		return
	}
	if s.Settlement != nil {
		o.printSettlement(*s.Settlement)
	}
}

func (o *Output) printDoubleResult(d DoubleResult) {
	if d.Card != nil {
		fmt.Printf("Drew: %s\n", *d.Card)
	}
	if d.HandPending {
		fmt.Printf("Hand doubled. Now playing hand %d.\n", d.ActiveHand+1)
		return
	}
	if d.Settlement != nil {
		fmt.Println()
		o.printSettlement(*d.Settlement)
	}
}

func (o *Output) printSettlement(s Settlement) {
	if len(s.Hands) > 1 {
		for i, h := range s.Hands {
			fmt.Printf("Hand %d: %s (%d) - %s\n", i+1, cardList(h.Cards), h.Value, h.Message)
		}
	} else {
		fmt.Printf("Your hand: %s (%d)\n", cardList(s.PlayerHand), s.PlayerValue)
	}
	fmt.Printf("Dealer hand: %s (%d)\n", cardList(s.DealerHand), s.DealerValue)
	fmt.Println(s.Message)
	if s.Winnings > 0 {
		fmt.Printf("Winnings: %d\n", s.Winnings)
	}
	fmt.Printf("Balance: %d\n", s.NewBalance)
}

func (o *Output) printStatusResult(s StatusResult) {
	fmt.Println(s.Status)
	if s.PlayerValue > 0 {
		fmt.Printf("Your hand value: %d\n", s.PlayerValue)
	}
	if s.DealerValue > 0 {
		fmt.Printf("Dealer showing: %d\n", s.DealerValue)
	}
	fmt.Printf("Balance: %d\n", s.Balance)
}

func (o *Output) printHandResult(h HandResult) {
	if len(h.Hands) > 1 {
		for i, hand := range h.Hands {
			marker := " "
			if i == h.ActiveHand {
				marker = "*"
			}
			fmt.Printf("%s Hand %d: %s (%d) bet %d\n", marker, i+1, cardList(hand.Cards), hand.Value, hand.Bet)
		}
	} else if len(h.PlayerCards) > 0 {
		fmt.Printf("Your hand: %s (%d)\n", cardList(h.PlayerCards), h.HandValue)
		fmt.Printf("Bet: %d\n", h.Bet)
	} else {
		fmt.Println("No cards dealt.")
	}

	if len(h.DealerCards) > 0 {
		if h.DealerRevealed {
			fmt.Printf("Dealer hand: %s (%d)\n", cardList(h.DealerCards), h.DealerValue)
		} else {
			fmt.Printf("Dealer shows: %s\n", cardList(h.DealerCards))
		}
	}
}

func (o *Output) printBalanceResult(b BalanceResult) {
	fmt.Printf("Balance: %d\n", b.Balance)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
