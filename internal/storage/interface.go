package storage

import (
	"context"

	"github.com/efuentes/blackjack-go/internal/model"
)

// Storage defines the interface for data persistence. The engine's
// contract is read-modify-write per operation; implementations only
// need atomic single-entity updates.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Registered player operations
	SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error
	GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error)
	GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error)

	// Deck operations. Each player owns one deck, keyed by player id;
	// this is the per-session deck registry rather than process-wide
	// shared state.
	SaveDeck(ctx context.Context, playerID model.PlayerID, deck *model.Deck) error
	GetDeck(ctx context.Context, playerID model.PlayerID) (*model.Deck, error)
	DeleteDeck(ctx context.Context, playerID model.PlayerID) error
}
