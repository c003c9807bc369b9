package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/wordtiles-go/internal/dependencies/clock"
	"github.com/mcoot/wordtiles-go/internal/dependencies/random"
	"github.com/mcoot/wordtiles-go/internal/model"
	"github.com/mcoot/wordtiles-go/internal/services/bag"
	"github.com/mcoot/wordtiles-go/internal/services/board"
	"github.com/mcoot/wordtiles-go/internal/services/placement"
	"github.com/mcoot/wordtiles-go/internal/storage"
)

const (
	// GameIDLength is the length of generated game IDs
	GameIDLength = 8
	// GameIDAlphabet is the characters used in game IDs (avoid confusing chars)
	GameIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	maxIDAttempts = 16
)

// session owns one game's Controller; mu serializes every call into it
type session struct {
	mu         sync.Mutex
	controller *Controller
}

// Manager holds independent games and serializes access to each of them
type Manager struct {
	storage      storage.Storage
	boardService *board.Service
	validator    *placement.Validator
	publisher    Publisher
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger

	mu    sync.RWMutex
	games map[model.GameID]*session
}

// NewManager creates a new game Manager. Games share the validator, which is stateless.
func NewManager(
	storage storage.Storage,
	boardService *board.Service,
	validator *placement.Validator,
	publisher Publisher,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Manager {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Manager{
		storage:      storage,
		boardService: boardService,
		validator:    validator,
		publisher:    publisher,
		clock:        clock,
		random:       random,
		logger:       logger.With(slog.String("component", "game")),
		games:        make(map[model.GameID]*session),
	}
}

// Create starts a new game and returns its initial snapshot
func (m *Manager) Create(ctx context.Context, cfg Config) (*model.GameSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, err := m.newID()
	if err != nil {
		return nil, err
	}

	tiles := bag.New(m.random, m.logger.With(slog.String("game_id", string(id))))
	c, err := NewController(id, cfg, m.boardService, m.validator, tiles, m.publisher, m.clock, m.random, m.logger)
	if err != nil {
		return nil, err
	}
	m.games[id] = &session{controller: c}

	m.logger.Info("game created",
		slog.String("game_id", string(id)),
		slog.Int("board_size", cfg.BoardSize),
		slog.Int("rack_size", cfg.RackSize))

	return c.Snapshot(), nil
}

// newID picks an unused game ID. Callers hold m.mu.
func (m *Manager) newID() (model.GameID, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := model.GameID(m.random.String(GameIDLength, GameIDAlphabet))
		if _, exists := m.games[id]; !exists && id != "" {
			return id, nil
		}
	}
	return "", fmt.Errorf("no free game ID after %d attempts", maxIDAttempts)
}

// Do runs fn with exclusive access to the game's Controller
func (m *Manager) Do(ctx context.Context, id model.GameID, fn func(c *Controller) error) error {
	m.mu.RLock()
	s, ok := m.games[id]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", model.ErrGameNotFound, id)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.controller == nil {
		return fmt.Errorf("%w: %s", model.ErrGameNotFound, id)
	}
	return fn(s.controller)
}

// Get returns a snapshot of the game
func (m *Manager) Get(ctx context.Context, id model.GameID) (*model.GameSnapshot, error) {
	var snap *model.GameSnapshot
	err := m.Do(ctx, id, func(c *Controller) error {
		snap = c.Snapshot()
		return nil
	})
	return snap, err
}

// List returns snapshots of every game, ordered by creation time
func (m *Manager) List(ctx context.Context) ([]*model.GameSnapshot, error) {
	m.mu.RLock()
	ids := make([]model.GameID, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	snaps := make([]*model.GameSnapshot, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			snap, err := m.Get(gctx, id)
			if errors.Is(err, model.ErrGameNotFound) {
				return nil // deleted since the IDs were read
			}
			snaps[i] = snap
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	snaps = slices.DeleteFunc(snaps, func(s *model.GameSnapshot) bool { return s == nil })

	sort.Slice(snaps, func(i, j int) bool {
		if snaps[i].CreatedAt.Equal(snaps[j].CreatedAt) {
			return snaps[i].ID < snaps[j].ID
		}
		return snaps[i].CreatedAt.Before(snaps[j].CreatedAt)
	})
	return snaps, nil
}

// Delete removes the game and its turn log
func (m *Manager) Delete(ctx context.Context, id model.GameID) error {
	m.mu.Lock()
	s, ok := m.games[id]
	delete(m.games, id)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", model.ErrGameNotFound, id)
	}

	// Waits for any in-flight call, then retires the session
	s.mu.Lock()
	s.controller = nil
	s.mu.Unlock()

	if err := m.storage.DeleteTurnRecords(ctx, id); err != nil {
		return err
	}
	m.logger.Info("game deleted", slog.String("game_id", string(id)))
	return nil
}

// PlaceTile places a rack tile on the game's board
func (m *Manager) PlaceTile(ctx context.Context, id model.GameID, pos model.Position, letter rune) (*model.PlacementResult, error) {
	var result *model.PlacementResult
	err := m.Do(ctx, id, func(c *Controller) error {
		var err error
		result, err = c.PlaceTile(pos, letter)
		return err
	})
	return result, err
}

// RemoveTile returns a placed tile to the game's rack
func (m *Manager) RemoveTile(ctx context.Context, id model.GameID, pos model.Position) (*model.PlacementResult, error) {
	var result *model.PlacementResult
	err := m.Do(ctx, id, func(c *Controller) error {
		var err error
		result, err = c.RemoveTile(pos)
		return err
	})
	return result, err
}

// Lock commits the game's turn and appends it to the turn log
func (m *Manager) Lock(ctx context.Context, id model.GameID) (*model.CommitSummary, error) {
	var summary *model.CommitSummary
	err := m.Do(ctx, id, func(c *Controller) error {
		var err error
		summary, err = c.Lock()
		if err != nil {
			return err
		}

		record := &model.TurnRecord{
			GameID:     id,
			Turn:       summary.Turn,
			Words:      summary.Words,
			Positions:  summary.Locked,
			Score:      summary.TurnScore,
			TotalScore: summary.TotalScore,
			LockedAt:   m.clock.Now(),
		}
		if err := m.storage.AppendTurnRecord(ctx, record); err != nil {
			// The turn is already committed in memory; only the log entry is lost
			m.logger.Error("failed to append turn record",
				slog.String("game_id", string(id)),
				slog.Int("turn", summary.Turn),
				slog.String("error", err.Error()))
		}
		return nil
	})
	return summary, err
}

// Recall returns every tile placed this round to the rack
func (m *Manager) Recall(ctx context.Context, id model.GameID) ([]model.Position, error) {
	var recalled []model.Position
	err := m.Do(ctx, id, func(c *Controller) error {
		recalled = c.Recall()
		return nil
	})
	return recalled, err
}

// Shuffle reorders the game's rack
func (m *Manager) Shuffle(ctx context.Context, id model.GameID) ([]rune, error) {
	var rack []rune
	err := m.Do(ctx, id, func(c *Controller) error {
		rack = c.Shuffle()
		return nil
	})
	return rack, err
}

// Regenerate resizes the game's board before play starts
func (m *Manager) Regenerate(ctx context.Context, id model.GameID, size int) (*model.GameSnapshot, error) {
	var snap *model.GameSnapshot
	err := m.Do(ctx, id, func(c *Controller) error {
		if err := c.Regenerate(size); err != nil {
			return err
		}
		snap = c.Snapshot()
		return nil
	})
	return snap, err
}

// Turns returns the game's turn log
func (m *Manager) Turns(ctx context.Context, id model.GameID) ([]*model.TurnRecord, error) {
	m.mu.RLock()
	_, ok := m.games[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrGameNotFound, id)
	}
	return m.storage.GetTurnRecords(ctx, id)
}

// ManagerInterface is the game surface used by the API
type ManagerInterface interface {
	Create(ctx context.Context, cfg Config) (*model.GameSnapshot, error)
	Get(ctx context.Context, id model.GameID) (*model.GameSnapshot, error)
	List(ctx context.Context) ([]*model.GameSnapshot, error)
	Delete(ctx context.Context, id model.GameID) error
	PlaceTile(ctx context.Context, id model.GameID, pos model.Position, letter rune) (*model.PlacementResult, error)
	RemoveTile(ctx context.Context, id model.GameID, pos model.Position) (*model.PlacementResult, error)
	Lock(ctx context.Context, id model.GameID) (*model.CommitSummary, error)
	Recall(ctx context.Context, id model.GameID) ([]model.Position, error)
	Shuffle(ctx context.Context, id model.GameID) ([]rune, error)
	Regenerate(ctx context.Context, id model.GameID, size int) (*model.GameSnapshot, error)
	Turns(ctx context.Context, id model.GameID) ([]*model.TurnRecord, error)
}

var _ ManagerInterface = (*Manager)(nil)
