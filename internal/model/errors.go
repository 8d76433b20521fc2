package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// State machine errors
	ErrGameInProgress = errors.New("game is in progress")
	ErrGameNotStarted = errors.New("no game in progress")
	ErrNoBetPlaced    = errors.New("no bet has been placed")

	// Bet errors
	ErrInsufficientBalance = errors.New("insufficient balance")

	// Hand errors
	ErrCannotSplit = errors.New("hand cannot be split")

	// Deck errors. ErrEmptyDeck surfacing to a caller means
	// capacity-ensure was bypassed somewhere. ErrDeckNotFound means the
	// player has no deck yet; the engine generates a fresh one.
	ErrEmptyDeck    = errors.New("deck is empty")
	ErrDeckNotFound = errors.New("deck not found")
)
