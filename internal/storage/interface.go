package storage

import (
	"context"

	"github.com/mcoot/wordtiles-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Dictionary operations, keyed by dictionary name
	GetDictionaryWords(ctx context.Context, name string) ([]string, error)
	SaveDictionaryWords(ctx context.Context, name string, words []string) error

	// Turn log operations
	AppendTurnRecord(ctx context.Context, record *model.TurnRecord) error
	GetTurnRecords(ctx context.Context, gameID model.GameID) ([]*model.TurnRecord, error)
	DeleteTurnRecords(ctx context.Context, gameID model.GameID) error
}
