package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/wordtiles-go/internal/dependencies/clock"
	"github.com/mcoot/wordtiles-go/internal/dependencies/random"
	"github.com/mcoot/wordtiles-go/internal/model"
	"github.com/mcoot/wordtiles-go/internal/services/board"
	"github.com/mcoot/wordtiles-go/internal/services/placement"
)

// TileSource supplies letters when the rack is filled
type TileSource interface {
	Draw(n, vowels int) []rune
	Remaining() int
}

// Publisher receives every event a game emits
type Publisher interface {
	Publish(event model.Event)
}

// NopPublisher discards events
type NopPublisher struct{}

// Publish does nothing
func (NopPublisher) Publish(model.Event) {}

// Config holds per-game settings
type Config struct {
	BoardSize     int
	RackSize      int
	OpeningVowels int // Vowels forced into the first rack
}

// DefaultConfig returns the standard game settings
func DefaultConfig() Config {
	return Config{
		BoardSize:     board.DefaultSize,
		RackSize:      7,
		OpeningVowels: 2,
	}
}

// Controller runs the turn lifecycle of a single game: placements and
// removals are revalidated immediately, Lock commits and Recall reverts.
// It is not safe for concurrent use; Manager serializes access.
type Controller struct {
	id           model.GameID
	cfg          Config
	boardService *board.Service
	validator    *placement.Validator
	tiles        TileSource
	publisher    Publisher
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger

	board      *model.Board
	rack       *model.Rack
	nextTileID model.TileID
	turn       int
	turnScore  int
	totalScore int
	last       *placement.Evaluation

	createdAt time.Time
	updatedAt time.Time
}

// NewController creates a game with an empty board and a full opening rack
func NewController(
	id model.GameID,
	cfg Config,
	boardService *board.Service,
	validator *placement.Validator,
	tiles TileSource,
	publisher Publisher,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) (*Controller, error) {
	if cfg.RackSize <= 0 {
		return nil, fmt.Errorf("%w: rack size %d", model.ErrInvalidRequest, cfg.RackSize)
	}
	b, err := boardService.Regenerate(cfg.BoardSize)
	if err != nil {
		return nil, err
	}
	if publisher == nil {
		publisher = NopPublisher{}
	}

	now := clock.Now()
	c := &Controller{
		id:           id,
		cfg:          cfg,
		boardService: boardService,
		validator:    validator,
		tiles:        tiles,
		publisher:    publisher,
		clock:        clock,
		random:       random,
		logger:       logger.With(slog.String("game_id", string(id))),
		board:        b,
		rack:         model.NewRack(cfg.RackSize),
		turn:         1,
		createdAt:    now,
		updatedAt:    now,
	}
	c.refill(cfg.OpeningVowels)
	c.evaluate(nil)
	return c, nil
}

// ID returns the game's ID
func (c *Controller) ID() model.GameID {
	return c.id
}

// PlaceTile moves a rack tile bearing letter onto the board at pos and revalidates
func (c *Controller) PlaceTile(pos model.Position, letter rune) (*model.PlacementResult, error) {
	letter, err := board.NormalizeLetter(letter)
	if err != nil {
		return nil, err
	}
	space, err := c.boardService.SpaceAt(c.board, pos)
	if err != nil {
		return nil, err
	}
	slot := c.rack.FindLetter(letter)
	if slot == nil {
		return nil, fmt.Errorf("%w: %c", model.ErrTileNotInRack, letter)
	}
	if err := c.boardService.PlaceTile(c.board, pos, slot.Tile); err != nil {
		return nil, err
	}

	result := c.result(pos, letter, c.evaluate(space))
	c.logger.Debug("tile placed",
		slog.String("position", pos.String()),
		slog.String("letter", string(letter)),
		slog.Bool("legal", result.Legal),
		slog.Int("turn_score", result.TurnScore))
	c.emit(model.EventTilePlaced, model.TileEventPayload{Result: *result})
	return result, nil
}

// RemoveTile returns the unlocked tile at pos to the rack and revalidates
func (c *Controller) RemoveTile(pos model.Position) (*model.PlacementResult, error) {
	tile, err := c.boardService.RemoveTile(c.board, pos)
	if err != nil {
		return nil, err
	}
	if err := c.rack.SetTileInEmptySpace(tile); err != nil {
		// Every tile on the board came from the rack, so a slot is free
		panic(fmt.Sprintf("returning tile %d to rack: %v", tile.ID, err))
	}

	result := c.result(pos, 0, c.evaluate(c.board.SpaceAt(pos)))
	c.logger.Debug("tile removed",
		slog.String("position", pos.String()),
		slog.String("letter", string(tile.Letter)),
		slog.Int("turn_score", result.TurnScore))
	c.emit(model.EventTileRemoved, model.TileEventPayload{Result: *result})
	return result, nil
}

// Lock commits the turn. An illegal turn is rejected with an error wrapping
// model.ErrInvalidPlacement and nothing changes.
func (c *Controller) Lock() (*model.CommitSummary, error) {
	e, err := c.validator.Check(c.board)
	if err != nil {
		c.logger.Info("lock rejected",
			slog.Int("turn", c.turn),
			slog.String("reason", err.Error()))
		return nil, err
	}

	locked := make([]model.Position, 0, len(e.Placed))
	for _, s := range e.Placed {
		s.Locked = true
		locked = append(locked, s.Position)
	}

	summary := &model.CommitSummary{
		Turn:      c.turn,
		Words:     e.TurnWords,
		Locked:    locked,
		TurnScore: e.TurnScore,
	}
	c.totalScore += e.TurnScore
	summary.TotalScore = c.totalScore
	c.turn++

	summary.Drawn = c.refill(0)
	c.evaluate(nil)

	c.logger.Info("turn locked",
		slog.Int("turn", summary.Turn),
		slog.Int("tiles", len(locked)),
		slog.Int("turn_score", summary.TurnScore),
		slog.Int("total_score", summary.TotalScore))
	c.emit(model.EventTurnLocked, model.TurnLockedPayload{Summary: *summary})
	return summary, nil
}

// Recall returns every tile placed this round to the rack
func (c *Controller) Recall() []model.Position {
	placed := c.board.PlacedThisRound()
	recalled := make([]model.Position, 0, len(placed))
	for _, s := range placed {
		tile := s.Detach()
		if err := c.rack.SetTileInEmptySpace(tile); err != nil {
			panic(fmt.Sprintf("recalling tile %d: %v", tile.ID, err))
		}
		recalled = append(recalled, s.Position)
	}
	c.evaluate(nil)

	c.logger.Debug("turn recalled", slog.Int("tiles", len(recalled)))
	c.emit(model.EventTurnRecalled, model.TurnRecalledPayload{Recalled: recalled})
	return recalled
}

// Shuffle reorders the tiles currently in the rack
func (c *Controller) Shuffle() []rune {
	var slots []*model.Space
	var tiles []*model.Tile
	for _, s := range c.rack.Slots {
		if s.HasTile() {
			slots = append(slots, s)
			tiles = append(tiles, s.Detach())
		}
	}
	for i := len(tiles) - 1; i > 0; i-- {
		j := c.random.Intn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
	for i, t := range tiles {
		slots[i].Attach(t)
		t.Home = slots[i].Position.Col
	}
	c.touch()

	letters := c.rack.Letters()
	c.emit(model.EventRackShuffled, model.RackShuffledPayload{Rack: letters})
	return letters
}

// Regenerate replaces the board with an empty n×n board. Only allowed before
// any tile has been placed.
func (c *Controller) Regenerate(n int) error {
	if c.board.TileCount() > 0 {
		return fmt.Errorf("%w: board has tiles", model.ErrGameInProgress)
	}
	b, err := c.boardService.Regenerate(n)
	if err != nil {
		return err
	}
	c.board = b
	c.cfg.BoardSize = n
	c.evaluate(nil)

	c.logger.Info("board regenerated", slog.Int("size", n))
	c.emit(model.EventBoardRegenerated, model.BoardRegeneratedPayload{Size: n, Center: b.Center})
	return nil
}

// IsPlayable reports the playable flag of the space at pos
func (c *Controller) IsPlayable(pos model.Position) (bool, error) {
	space, err := c.boardService.SpaceAt(c.board, pos)
	if err != nil {
		return false, err
	}
	return space.Playable, nil
}

// PlayableSpaces returns the playable positions in row-major order
func (c *Controller) PlayableSpaces() []model.Position {
	return c.board.PlayablePositions()
}

// Badge returns the current badge, or nil when no tile carries one
func (c *Controller) Badge() *model.Badge {
	return copyBadge(c.last.Badge)
}

// TurnScore returns the pending score of the open turn
func (c *Controller) TurnScore() int {
	return c.turnScore
}

// TotalScore returns the cumulative score of all locked turns
func (c *Controller) TotalScore() int {
	return c.totalScore
}

// Rack returns the rack letters in slot order
func (c *Controller) Rack() []rune {
	return c.rack.Letters()
}

// Snapshot returns a read-only view of the game
func (c *Controller) Snapshot() *model.GameSnapshot {
	snap := &model.GameSnapshot{
		ID:           c.id,
		BoardSize:    c.board.Size,
		Center:       c.board.Center,
		Turn:         c.turn,
		Playable:     c.board.PlayablePositions(),
		Rack:         c.rack.Letters(),
		Axis:         c.last.Axis,
		Legal:        c.last.Legal,
		Badge:        copyBadge(c.last.Badge),
		TurnScore:    c.turnScore,
		TotalScore:   c.totalScore,
		BagRemaining: c.tiles.Remaining(),
		CreatedAt:    c.createdAt,
		UpdatedAt:    c.updatedAt,
	}
	c.board.Each(func(s *model.Space) {
		if s.HasTile() {
			snap.Tiles = append(snap.Tiles, model.PlacedTile{
				Position: s.Position,
				Letter:   s.Tile.Letter,
				Locked:   s.Locked,
			})
		}
	})
	return snap
}

// refill draws tiles into every empty rack slot
func (c *Controller) refill(vowels int) []rune {
	letters := c.tiles.Draw(c.rack.EmptyCount(), vowels)
	for _, letter := range letters {
		c.nextTileID++
		tile := &model.Tile{ID: c.nextTileID, Letter: letter, Home: -1}
		if err := c.rack.SetTileInEmptySpace(tile); err != nil {
			panic(fmt.Sprintf("filling rack: %v", err))
		}
	}
	return letters
}

// evaluate runs a validation pass and records its outcome
func (c *Controller) evaluate(affected *model.Space) *placement.Evaluation {
	e := c.validator.Evaluate(c.board, affected)
	c.last = e
	c.turnScore = e.TurnScore
	c.touch()
	return e
}

func (c *Controller) touch() {
	c.updatedAt = c.clock.Now()
}

func (c *Controller) result(pos model.Position, letter rune, e *placement.Evaluation) *model.PlacementResult {
	return &model.PlacementResult{
		Position:  pos,
		Letter:    letter,
		Words:     e.Words,
		Valid:     e.Valid,
		Pending:   e.Pending,
		Legal:     e.Legal,
		Axis:      e.Axis,
		TurnScore: e.TurnScore,
		Badge:     copyBadge(e.Badge),
	}
}

func (c *Controller) emit(eventType model.EventType, payload any) {
	c.publisher.Publish(model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		GameID:    c.id,
		Payload:   payload,
	})
}

func copyBadge(b *model.Badge) *model.Badge {
	if b == nil {
		return nil
	}
	copied := *b
	return &copied
}
