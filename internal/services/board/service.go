package board

import (
	"fmt"
	"log/slog"
	"unicode"

	"github.com/mcoot/wordtiles-go/internal/model"
)

const (
	DefaultSize = 9
	MinSize     = 3
	MaxSize     = 25
)

// Service performs raw board mutations. It enforces occupancy invariants only;
// placement rules belong to the placement validator.
type Service struct {
	logger *slog.Logger
}

// New creates a new board Service
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger.With(slog.String("component", "board")),
	}
}

// Regenerate builds a fresh n×n board with only the center playable
func (s *Service) Regenerate(n int) (*model.Board, error) {
	if n < MinSize || n > MaxSize {
		return nil, fmt.Errorf("%w: %d (want %d-%d)", model.ErrInvalidBoardSize, n, MinSize, MaxSize)
	}
	b := model.NewBoard(n)
	s.logger.Debug("board regenerated",
		slog.Int("size", n),
		slog.String("center", b.Center.String()))
	return b, nil
}

// SpaceAt returns the space at pos, or ErrOutOfBounds
func (s *Service) SpaceAt(b *model.Board, pos model.Position) (*model.Space, error) {
	space := b.SpaceAt(pos)
	if space == nil {
		return nil, fmt.Errorf("%w: %s", model.ErrOutOfBounds, pos)
	}
	return space, nil
}

// PlaceTile moves tile onto the empty space at pos, releasing its previous container
func (s *Service) PlaceTile(b *model.Board, pos model.Position, tile *model.Tile) error {
	space, err := s.SpaceAt(b, pos)
	if err != nil {
		return err
	}
	if space.HasTile() {
		return fmt.Errorf("%w: %s", model.ErrSpaceOccupied, pos)
	}
	space.Attach(tile)
	return nil
}

// RemoveTile takes the unlocked tile off the space at pos
func (s *Service) RemoveTile(b *model.Board, pos model.Position) (*model.Tile, error) {
	space, err := s.SpaceAt(b, pos)
	if err != nil {
		return nil, err
	}
	if !space.HasTile() {
		return nil, fmt.Errorf("%w: %s", model.ErrSpaceEmpty, pos)
	}
	if space.Locked {
		return nil, fmt.Errorf("%w: %s", model.ErrSpaceLocked, pos)
	}
	return space.Detach(), nil
}

// NormalizeLetter upper-cases letter and checks it is in A-Z
func NormalizeLetter(letter rune) (rune, error) {
	upper := unicode.ToUpper(letter)
	if upper < 'A' || upper > 'Z' {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidLetter, letter)
	}
	return upper, nil
}

// ServiceInterface is the board surface used by the rest of the application
type ServiceInterface interface {
	Regenerate(n int) (*model.Board, error)
	SpaceAt(b *model.Board, pos model.Position) (*model.Space, error)
	PlaceTile(b *model.Board, pos model.Position, tile *model.Tile) error
	RemoveTile(b *model.Board, pos model.Position) (*model.Tile, error)
}

var _ ServiceInterface = (*Service)(nil)
