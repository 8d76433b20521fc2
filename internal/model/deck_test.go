package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckHas52DistinctCards(t *testing.T) {
	d := NewDeck()
	require.Equal(t, DeckSize, d.Remaining())

	seen := make(map[Card]bool)
	for _, c := range d.Cards {
		key := Card{Rank: c.Rank, Suit: c.Suit, Value: c.Value}
		assert.False(t, seen[key], "duplicate card %s", c)
		seen[key] = true
	}
}

func TestNewDeckCardValues(t *testing.T) {
	d := NewDeck()
	for _, c := range d.Cards {
		switch c.Rank {
		case "A":
			assert.Equal(t, 11, c.Value)
		case "J", "Q", "K", "10":
			assert.Equal(t, 10, c.Value)
		case "2", "3", "4", "5", "6", "7", "8", "9":
			assert.Equal(t, NewCard(c.Rank, c.Suit).Value, c.Value)
		default:
			t.Fatalf("unexpected rank %q", c.Rank)
		}
	}
}

func TestDealTopRemovesCards(t *testing.T) {
	d := NewDeck()
	top := d.Cards[len(d.Cards)-1]

	card, err := d.DealTop()
	require.NoError(t, err)

	assert.Equal(t, top, card)
	assert.Equal(t, DeckSize-1, d.Remaining())
}

func TestDealTopOnEmptyDeck(t *testing.T) {
	d := &Deck{}
	_, err := d.DealTop()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestDeckExhaustion(t *testing.T) {
	d := NewDeck()
	for i := 0; i < DeckSize; i++ {
		_, err := d.DealTop()
		require.NoError(t, err)
	}
	_, err := d.DealTop()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}
