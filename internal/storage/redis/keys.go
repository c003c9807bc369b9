package redis

import (
	"fmt"

	"github.com/mcoot/wordtiles-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "wordtiles"

// dictionaryKey returns the Redis key for a named dictionary word set
func dictionaryKey(name string) string {
	return fmt.Sprintf("%s:dictionary:%s", keyPrefix, name)
}

// turnLogKey returns the Redis key for the LIST of turn records of a game
func turnLogKey(gameID model.GameID) string {
	return fmt.Sprintf("%s:turns:%s", keyPrefix, gameID)
}
