package game

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordtiles-go/internal/dependencies/mocks"
	"github.com/mcoot/wordtiles-go/internal/model"
	"github.com/mcoot/wordtiles-go/internal/services/board"
	"github.com/mcoot/wordtiles-go/internal/services/dictionary"
	"github.com/mcoot/wordtiles-go/internal/services/placement"
	"github.com/mcoot/wordtiles-go/internal/services/scoring"
	"github.com/mcoot/wordtiles-go/internal/storage/memory"
	"github.com/mcoot/wordtiles-go/internal/testutil"
)

// scriptedTiles hands out letters in a fixed order
type scriptedTiles struct {
	letters []rune
}

func (t *scriptedTiles) Draw(n, vowels int) []rune {
	if n > len(t.letters) {
		n = len(t.letters)
	}
	drawn := append([]rune(nil), t.letters[:n]...)
	t.letters = t.letters[n:]
	return drawn
}

func (t *scriptedTiles) Remaining() int {
	return len(t.letters)
}

// recordingPublisher keeps every published event
type recordingPublisher struct {
	events []model.Event
}

func (p *recordingPublisher) Publish(event model.Event) {
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []model.EventType {
	types := make([]model.EventType, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}

type ControllerSuite struct {
	suite.Suite
	clock     *mocks.MockClock
	random    *mocks.MockRandom
	publisher *recordingPublisher
	validator *placement.Validator
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	dict := dictionary.New(memory.New(), dictionary.DefaultName, testutil.NopLogger())
	s.Require().NoError(dict.Load([]string{"CAT", "CATS", "AT", "AS", "TA", "SAT"}))

	s.clock = mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.publisher = &recordingPublisher{}
	s.validator = placement.New(dict, scoring.New())
}

// newController creates a game whose bag yields letters in order
func (s *ControllerSuite) newController(letters string) *Controller {
	c, err := NewController(
		"GAME0001",
		DefaultConfig(),
		board.New(testutil.NopLogger()),
		s.validator,
		&scriptedTiles{letters: []rune(letters)},
		s.publisher,
		s.clock,
		s.random,
		testutil.NopLogger(),
	)
	s.Require().NoError(err)
	return c
}

func pos(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}

func (s *ControllerSuite) place(c *Controller, p model.Position, letter rune) *model.PlacementResult {
	result, err := c.PlaceTile(p, letter)
	s.Require().NoError(err)
	return result
}

// New game tests

func (s *ControllerSuite) TestNewGame() {
	c := s.newController("CATSXYZQQ")

	s.Equal("CATSXYZ", string(c.Rack()))
	s.Equal([]model.Position{pos(4, 4)}, c.PlayableSpaces())
	s.Equal(0, c.TurnScore())
	s.Equal(0, c.TotalScore())
	s.Nil(c.Badge())

	snap := c.Snapshot()
	s.Equal(model.GameID("GAME0001"), snap.ID)
	s.Equal(9, snap.BoardSize)
	s.Equal(pos(4, 4), snap.Center)
	s.Equal(1, snap.Turn)
	s.Equal(2, snap.BagRemaining)
	s.Empty(snap.Tiles)
}

func (s *ControllerSuite) TestNewGameRejectsBadConfig() {
	cfg := DefaultConfig()
	cfg.BoardSize = 1
	_, err := NewController("G", cfg, board.New(testutil.NopLogger()), s.validator,
		&scriptedTiles{}, nil, s.clock, s.random, testutil.NopLogger())
	s.ErrorIs(err, model.ErrInvalidBoardSize)

	cfg = DefaultConfig()
	cfg.RackSize = 0
	_, err = NewController("G", cfg, board.New(testutil.NopLogger()), s.validator,
		&scriptedTiles{}, nil, s.clock, s.random, testutil.NopLogger())
	s.ErrorIs(err, model.ErrInvalidRequest)
}

// Scenario tests

func (s *ControllerSuite) TestCatThroughCenterLocks() {
	c := s.newController("CATXYZQSEE")

	s.place(c, pos(4, 3), 'C')
	s.place(c, pos(4, 4), 'A')
	result := s.place(c, pos(4, 5), 't')

	s.True(result.Legal)
	s.True(result.Valid)
	s.Equal(model.AxisAcross, result.Axis)
	s.Equal(5, result.TurnScore)
	s.Equal(5, c.TurnScore())

	summary, err := c.Lock()
	s.Require().NoError(err)

	s.Equal(1, summary.Turn)
	s.Equal(5, summary.TurnScore)
	s.Equal(5, summary.TotalScore)
	s.Equal([]model.Position{pos(4, 3), pos(4, 4), pos(4, 5)}, summary.Locked)
	s.Equal("SEE", string(summary.Drawn))
	s.Require().Len(summary.Words, 1)
	s.Equal("CAT", summary.Words[0].Word)

	s.Equal(5, c.TotalScore())
	s.Equal(0, c.TurnScore())
	s.Equal("SEEXYZQ", string(c.Rack()), "drawn tiles fill the freed slots")
	for _, tile := range c.Snapshot().Tiles {
		s.True(tile.Locked)
	}
	s.Equal(2, c.Snapshot().Turn)
}

func (s *ControllerSuite) TestSecondTurnExtendsWord() {
	c := s.newController("CATXYZQSEE")
	s.place(c, pos(4, 3), 'C')
	s.place(c, pos(4, 4), 'A')
	s.place(c, pos(4, 5), 'T')
	_, err := c.Lock()
	s.Require().NoError(err)

	result := s.place(c, pos(4, 6), 'S')
	s.True(result.Valid)
	s.Equal(6, result.TurnScore)

	summary, err := c.Lock()
	s.Require().NoError(err)
	s.Equal(6, summary.TurnScore)
	s.Equal(11, summary.TotalScore)
	s.Equal("CATS", summary.Words[0].Word)
}

func (s *ControllerSuite) TestSingleTileAwayFromEverything() {
	c := s.newController("CATXYZQ")

	result := s.place(c, pos(2, 2), 'X')

	s.False(result.Legal)
	s.True(result.Pending)
	s.Require().NotNil(result.Badge)
	s.False(result.Badge.Valid)

	_, err := c.Lock()
	s.ErrorIs(err, model.ErrInvalidPlacement)
}

func (s *ControllerSuite) TestAxisConflictMakesTurnIllegal() {
	c := s.newController("CATXYZQ")

	s.place(c, pos(4, 3), 'C')
	result := s.place(c, pos(5, 4), 'A')

	s.False(result.Legal)
	s.Equal([]model.Position{pos(4, 4)}, c.PlayableSpaces(), "only the empty center stays playable")
	_, err := c.Lock()
	s.ErrorIs(err, placement.ErrAxisConflict)
}

func (s *ControllerSuite) TestInvalidTwoLetterWordThenRecall() {
	c := s.newController("ATQXYZEEE")
	s.place(c, pos(4, 4), 'A')
	s.place(c, pos(4, 5), 'T')
	_, err := c.Lock()
	s.Require().NoError(err)
	rackBefore := string(c.Rack())

	result := s.place(c, pos(3, 4), 'Q')
	s.True(result.Legal)
	s.False(result.Valid)

	_, err = c.Lock()
	s.ErrorIs(err, model.ErrInvalidPlacement)
	s.ErrorIs(err, placement.ErrUnknownWord)

	badge := c.Badge()
	s.Require().NotNil(badge)
	s.Equal(pos(3, 4), badge.Position)
	s.False(badge.Valid)

	recalled := c.Recall()
	s.Equal([]model.Position{pos(3, 4)}, recalled)
	s.Equal(rackBefore, string(c.Rack()))
	s.Len(c.Snapshot().Tiles, 2)
	s.Equal(2, c.TotalScore())
	s.Equal(0, c.TurnScore())
}

// Lock tests

func (s *ControllerSuite) TestRejectedLockChangesNothing() {
	c := s.newController("CATXYZQSEE")
	s.place(c, pos(4, 3), 'C')
	s.place(c, pos(4, 5), 'T')

	before := c.Snapshot()
	_, err := c.Lock()
	s.ErrorIs(err, placement.ErrGap)

	if diff := cmp.Diff(before, c.Snapshot()); diff != "" {
		s.Failf("rejected lock mutated the game", "(-before +after):\n%s", diff)
	}

	// Rejecting again is just as inert
	_, err = c.Lock()
	s.ErrorIs(err, model.ErrInvalidPlacement)
	s.Equal(before.Rack, c.Snapshot().Rack)
}

func (s *ControllerSuite) TestLockWithNoTiles() {
	c := s.newController("CATXYZQ")

	_, err := c.Lock()
	s.ErrorIs(err, model.ErrNoTilesPlaced)
	s.ErrorIs(err, model.ErrInvalidPlacement)
}

func (s *ControllerSuite) TestSingleCenterTileLocksWithoutWord() {
	c := s.newController("CATXYZQE")
	s.place(c, pos(4, 4), 'Q')

	summary, err := c.Lock()
	s.Require().NoError(err)
	s.Equal(0, summary.TurnScore)
	s.Empty(summary.Words)
	s.Equal("E", string(summary.Drawn))
}

func (s *ControllerSuite) TestRefillStopsWhenBagIsEmpty() {
	c := s.newController("CATXYZQ")
	s.place(c, pos(4, 3), 'C')
	s.place(c, pos(4, 4), 'A')
	s.place(c, pos(4, 5), 'T')

	summary, err := c.Lock()
	s.Require().NoError(err)
	s.Empty(summary.Drawn)
	s.Equal("XYZQ", string(c.Rack()))
	s.Equal(0, c.Snapshot().BagRemaining)
}

// Recall tests

func (s *ControllerSuite) TestRecallRoundTrip() {
	c := s.newController("CATSAXE")
	start := c.Snapshot()

	s.place(c, pos(4, 3), 'C')
	s.place(c, pos(4, 4), 'A')
	s.place(c, pos(4, 5), 'T')
	_, err := c.RemoveTile(pos(4, 4))
	s.Require().NoError(err)
	s.place(c, pos(3, 3), 'S')
	s.place(c, pos(4, 4), 'A')
	s.clock.Advance(time.Minute)

	c.Recall()

	if diff := cmp.Diff(start, c.Snapshot(), cmpopts.IgnoreFields(model.GameSnapshot{}, "UpdatedAt")); diff != "" {
		s.Failf("recall did not restore the round", "(-start +after):\n%s", diff)
	}
}

func (s *ControllerSuite) TestRecallAfterLockKeepsLockedTiles() {
	c := s.newController("CATXYZQSEE")
	s.place(c, pos(4, 3), 'C')
	s.place(c, pos(4, 4), 'A')
	s.place(c, pos(4, 5), 'T')
	_, err := c.Lock()
	s.Require().NoError(err)
	start := c.Snapshot()

	s.place(c, pos(4, 6), 'S')
	c.Recall()

	s.Equal(start.Tiles, c.Snapshot().Tiles)
	s.Equal(start.Playable, c.Snapshot().Playable)
	s.Equal(start.Rack, c.Snapshot().Rack)
}

func (s *ControllerSuite) TestRecallWithNothingPlaced() {
	c := s.newController("CATXYZQ")
	s.Empty(c.Recall())
	s.Equal("CATXYZQ", string(c.Rack()))
}

// PlaceTile / RemoveTile tests

func (s *ControllerSuite) TestPlaceTileErrorsLeaveStateUntouched() {
	c := s.newController("CATXYZQ")
	s.place(c, pos(4, 4), 'A')
	before := c.Snapshot()

	_, err := c.PlaceTile(pos(9, 0), 'C')
	s.ErrorIs(err, model.ErrOutOfBounds)

	_, err = c.PlaceTile(pos(4, 3), 'E')
	s.ErrorIs(err, model.ErrTileNotInRack)

	_, err = c.PlaceTile(pos(4, 3), '1')
	s.ErrorIs(err, model.ErrInvalidLetter)

	_, err = c.PlaceTile(pos(4, 4), 'C')
	s.ErrorIs(err, model.ErrSpaceOccupied)

	s.Equal(before, c.Snapshot())
}

func (s *ControllerSuite) TestRemoveTileRecomputesScore() {
	c := s.newController("CATXYZQ")
	s.place(c, pos(4, 3), 'C')
	s.place(c, pos(4, 4), 'A')
	s.place(c, pos(4, 5), 'T')

	result, err := c.RemoveTile(pos(4, 5))
	s.Require().NoError(err)

	s.Equal(rune(0), result.Letter)
	s.Equal(4, result.TurnScore, "CA still scores while pending validation")
	s.False(result.Valid)
	s.Equal("TXYZQ", string(c.Rack()))
}

func (s *ControllerSuite) TestRemoveCenterTileReopensCenter() {
	c := s.newController("CATXYZQ")
	s.place(c, pos(4, 3), 'C')
	s.place(c, pos(4, 4), 'A')

	result, err := c.RemoveTile(pos(4, 4))
	s.Require().NoError(err)

	s.False(result.Legal)
	s.Equal([]model.Position{pos(4, 4)}, c.PlayableSpaces())
}

func (s *ControllerSuite) TestRemoveTileErrors() {
	c := s.newController("CATXYZQSEE")
	_, err := c.RemoveTile(pos(4, 4))
	s.ErrorIs(err, model.ErrSpaceEmpty)

	_, err = c.RemoveTile(pos(-1, 4))
	s.ErrorIs(err, model.ErrOutOfBounds)

	s.place(c, pos(4, 4), 'A')
	s.place(c, pos(4, 5), 'T')
	_, err = c.Lock()
	s.Require().NoError(err)

	_, err = c.RemoveTile(pos(4, 4))
	s.ErrorIs(err, model.ErrSpaceLocked)
}

func (s *ControllerSuite) TestIsPlayable() {
	c := s.newController("CATXYZQ")

	playable, err := c.IsPlayable(pos(4, 4))
	s.Require().NoError(err)
	s.True(playable)

	playable, err = c.IsPlayable(pos(0, 0))
	s.Require().NoError(err)
	s.False(playable)

	_, err = c.IsPlayable(pos(0, 10))
	s.ErrorIs(err, model.ErrOutOfBounds)
}

// Shuffle / Regenerate tests

func (s *ControllerSuite) TestShuffle() {
	c := s.newController("ABCDEFG")

	s.Equal("BCDEFGA", string(c.Shuffle()))
	s.Equal("BCDEFGA", string(c.Rack()))
}

func (s *ControllerSuite) TestShuffleKeepsEmptySlots() {
	c := s.newController("ABCDEFG")
	s.place(c, pos(4, 4), 'A')

	s.Equal("CDEFGB", string(c.Shuffle()))
	s.Nil(c.rack.Slots[0].Tile)

	c.Recall()
	s.Equal("ACDEFGB", string(c.Rack()))
}

func (s *ControllerSuite) TestRegenerate() {
	c := s.newController("CATXYZQ")

	s.Require().NoError(c.Regenerate(11))
	s.Equal(11, c.Snapshot().BoardSize)
	s.Equal([]model.Position{pos(5, 5)}, c.PlayableSpaces())

	s.ErrorIs(c.Regenerate(2), model.ErrInvalidBoardSize)

	s.place(c, pos(5, 5), 'C')
	s.ErrorIs(c.Regenerate(9), model.ErrGameInProgress)
}

// Event tests

func (s *ControllerSuite) TestEventsAreEmittedPerOperation() {
	c := s.newController("ABCDEFGHIJ")
	s.place(c, pos(4, 4), 'A')
	_, _ = c.RemoveTile(pos(4, 4))
	s.place(c, pos(4, 4), 'A')
	_, _ = c.Lock()
	s.place(c, pos(4, 5), 'B')
	c.Recall()
	c.Shuffle()

	s.Equal([]model.EventType{
		model.EventTilePlaced,
		model.EventTileRemoved,
		model.EventTilePlaced,
		model.EventTurnLocked,
		model.EventTilePlaced,
		model.EventTurnRecalled,
		model.EventRackShuffled,
	}, s.publisher.types())

	for _, e := range s.publisher.events {
		s.Equal(model.GameID("GAME0001"), e.GameID)
	}
	locked, ok := s.publisher.events[3].Payload.(model.TurnLockedPayload)
	s.Require().True(ok)
	s.Equal(1, locked.Summary.Turn)
}
