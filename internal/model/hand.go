package model

// BlackjackTarget is the total a hand may not exceed
const BlackjackTarget = 21

// Hand is an ordered sequence of cards belonging to the player or the
// dealer. Player hands carry their own bet so that split hands settle
// independently; the dealer hand leaves Bet at zero.
type Hand struct {
	Cards []Card `json:"cards"`
	Bet   int    `json:"bet,omitempty"`
	Stood bool   `json:"stood,omitempty"`
}

// AddCard appends a card in deal order
func (h *Hand) AddCard(card Card) {
	h.Cards = append(h.Cards, card)
}

// Clear empties the hand and resets its bet
func (h *Hand) Clear() {
	h.Cards = nil
	h.Bet = 0
	h.Stood = false
}

// Size returns the number of cards in the hand
func (h *Hand) Size() int {
	return len(h.Cards)
}

// TotalValue computes the best legal total. Each ace counts 11 by
// default and is downgraded to 1, one at a time, until the total is at
// most 21 or no aces remain.
func (h *Hand) TotalValue() int {
	total := 0
	aces := 0
	for _, card := range h.Cards {
		total += card.Value
		if card.IsAce() {
			aces++
		}
	}
	for total > BlackjackTarget && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsBust reports whether the hand exceeds 21
func (h *Hand) IsBust() bool {
	return h.TotalValue() > BlackjackTarget
}

// IsBlackjack reports whether the hand is a two-card 21
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.TotalValue() == BlackjackTarget
}

// IsPair reports whether the hand is exactly two cards of equal rank,
// the precondition for a split
func (h *Hand) IsPair() bool {
	return len(h.Cards) == 2 && h.Cards[0].Rank == h.Cards[1].Rank
}
