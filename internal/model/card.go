package model

import "fmt"

// Rank is a card rank: "2" through "10", "J", "Q", "K", "A"
type Rank string

// Suit is a card suit
type Suit string

const (
	Spades   Suit = "Spades"
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
)

// Ranks in ascending order, ace high
var Ranks = []Rank{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Suits in deck generation order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Card is an immutable rank/suit pair with its blackjack value fixed at
// creation. Aces are valued 11 here; the soft/hard adjustment happens in
// Hand.TotalValue.
type Card struct {
	Rank  Rank `json:"rank"`
	Suit  Suit `json:"suit"`
	Value int  `json:"value"`
}

// NewCard creates a card with its value computed from the rank
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit, Value: rankValue(rank)}
}

// rankValue maps a rank to its nominal blackjack value
func rankValue(rank Rank) int {
	switch rank {
	case "A":
		return 11
	case "J", "Q", "K":
		return 10
	default:
		// Numeric ranks carry their face value
		v := 0
		for _, c := range rank {
			v = v*10 + int(c-'0')
		}
		return v
	}
}

// IsAce reports whether the card is an ace
func (c Card) IsAce() bool {
	return c.Rank == "A"
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
