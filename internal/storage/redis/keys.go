package redis

import (
	"fmt"

	"github.com/efuentes/blackjack-go/internal/model"
)

// Key prefix for all blackjack data
const keyPrefix = "bjack"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// registeredPlayerKey returns the Redis key for a RegisteredPlayer
func registeredPlayerKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:registered_player:%s", keyPrefix, playerID)
}

// usernameIndexKey returns the Redis key for the username -> player_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// deckKey returns the Redis key for a player's deck
func deckKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:deck:%s", keyPrefix, playerID)
}
