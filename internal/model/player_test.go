package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceBetDebitsBalance(t *testing.T) {
	p := &Player{Balance: 100}

	require.NoError(t, p.PlaceBet(30))

	assert.Equal(t, 70, p.Balance)
	assert.Equal(t, 30, p.Bet)
}

func TestPlaceBetWholeBalance(t *testing.T) {
	p := &Player{Balance: 100}

	require.NoError(t, p.PlaceBet(100))

	assert.Equal(t, 0, p.Balance)
	assert.Equal(t, 100, p.Bet)
}

func TestPlaceBetOverBalance(t *testing.T) {
	p := &Player{Balance: 100}

	err := p.PlaceBet(101)

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 100, p.Balance)
	assert.Equal(t, 0, p.Bet)
}

func TestPlaceBetDuringGame(t *testing.T) {
	p := &Player{Balance: 100, GameStarted: true}

	err := p.PlaceBet(10)

	assert.ErrorIs(t, err, ErrGameInProgress)
	assert.Equal(t, 100, p.Balance)
}

func TestHandReturnsActiveHand(t *testing.T) {
	p := &Player{}
	assert.Nil(t, p.Hand())

	p.Hands = []Hand{{Bet: 10}, {Bet: 20}}
	p.ActiveHand = 1
	assert.Equal(t, 20, p.Hand().Bet)
}

func TestAdvanceHandSkipsFinishedHands(t *testing.T) {
	p := &Player{
		Hands: []Hand{
			{},
			{Stood: true},
			{Cards: []Card{NewCard("K", Spades), NewCard("Q", Spades), NewCard("5", Spades)}},
			{},
		},
	}

	// Hand 1 is stood and hand 2 is bust, so play moves to hand 3
	assert.True(t, p.AdvanceHand())
	assert.Equal(t, 3, p.ActiveHand)

	assert.False(t, p.AdvanceHand())
}

func TestAllHandsBust(t *testing.T) {
	bust := Hand{Cards: []Card{NewCard("K", Spades), NewCard("Q", Spades), NewCard("5", Spades)}}
	live := Hand{Cards: []Card{NewCard("K", Spades), NewCard("Q", Spades)}}

	assert.False(t, (&Player{}).AllHandsBust())
	assert.False(t, (&Player{Hands: []Hand{bust, live}}).AllHandsBust())
	assert.True(t, (&Player{Hands: []Hand{bust, bust}}).AllHandsBust())
}

func TestClearHands(t *testing.T) {
	p := &Player{
		Hands:      []Hand{{Bet: 10}},
		ActiveHand: 0,
		DealerHand: Hand{Cards: []Card{NewCard("9", Hearts)}},
	}

	p.ClearHands()

	assert.Empty(t, p.Hands)
	assert.Equal(t, 0, p.DealerHand.Size())
}
