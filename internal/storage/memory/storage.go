package memory

import (
	"context"
	"sync"

	"github.com/mcoot/wordtiles-go/internal/model"
	"github.com/mcoot/wordtiles-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	dictionaries map[string][]string
	turns        map[model.GameID][]*model.TurnRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		dictionaries: make(map[string][]string),
		turns:        make(map[model.GameID][]*model.TurnRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context, name string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.dictionaries[name]
	if !ok {
		return nil, model.ErrDictionaryNotFound
	}
	result := make([]string, len(words))
	copy(result, words)
	return result, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, name string, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]string, len(words))
	copy(stored, words)
	s.dictionaries[name] = stored
	return nil
}

// Turn log operations

func (s *Storage) AppendTurnRecord(ctx context.Context, record *model.TurnRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *record
	s.turns[record.GameID] = append(s.turns[record.GameID], &stored)
	return nil
}

func (s *Storage) GetTurnRecords(ctx context.Context, gameID model.GameID) ([]*model.TurnRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.turns[gameID]
	result := make([]*model.TurnRecord, len(records))
	for i, r := range records {
		copied := *r
		result[i] = &copied
	}
	return result, nil
}

func (s *Storage) DeleteTurnRecords(ctx context.Context, gameID model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.turns, gameID)
	return nil
}
