package placement

import (
	"fmt"

	"github.com/mcoot/wordtiles-go/internal/model"
)

// Reasons a turn is illegal. All wrap model.ErrInvalidPlacement.
var (
	ErrAxisConflict = fmt.Errorf("%w: tiles are not in a single row or column", model.ErrInvalidPlacement)
	ErrNotConnected = fmt.Errorf("%w: no tile touches a locked tile", model.ErrInvalidPlacement)
	ErrGap          = fmt.Errorf("%w: tiles are not contiguous", model.ErrInvalidPlacement)
	ErrCenterEmpty  = fmt.Errorf("%w: center space is empty", model.ErrInvalidPlacement)
	ErrUnknownWord  = fmt.Errorf("%w: word not in dictionary", model.ErrInvalidPlacement)
)

// TurnAxis returns the axis shared by the placed tiles. Fewer than two tiles
// leave the axis undecided.
func TurnAxis(placed []*model.Space) (model.Axis, error) {
	if len(placed) < 2 {
		return model.AxisUndecided, nil
	}

	first := placed[0].Position
	sameRow, sameCol := true, true
	for _, s := range placed[1:] {
		sameRow = sameRow && s.Position.Row == first.Row
		sameCol = sameCol && s.Position.Col == first.Col
	}

	switch {
	case sameRow:
		return model.AxisAcross, nil
	case sameCol:
		return model.AxisDown, nil
	default:
		return model.AxisUndecided, ErrAxisConflict
	}
}

// checkConnected requires a placed tile next to a locked one, once anything is locked
func checkConnected(b *model.Board, placed []*model.Space) error {
	if len(placed) == 0 || b.LockedCount() == 0 {
		return nil
	}
	for _, s := range placed {
		for _, n := range s.Position.Neighbours() {
			if ns := b.SpaceAt(n); ns != nil && ns.Locked {
				return nil
			}
		}
	}
	return ErrNotConnected
}

// checkContiguous rejects an empty space between the first and last placed tile
func checkContiguous(b *model.Board, placed []*model.Space, axis model.Axis) error {
	if len(placed) < 2 {
		return nil
	}
	// placed is in row-major order, so along either axis the ends are first and last
	first, last := placed[0].Position, placed[len(placed)-1].Position
	for pos := first; pos != last; pos = pos.Step(axis, 1) {
		if !b.IsOccupied(pos) {
			return fmt.Errorf("%w: %s is empty", ErrGap, pos)
		}
	}
	return nil
}

// checkTurn applies the axis, adjacency, contiguity and center rules
func checkTurn(b *model.Board, placed []*model.Space) (model.Axis, error) {
	axis, err := TurnAxis(placed)
	if err != nil {
		return axis, err
	}
	if err := checkConnected(b, placed); err != nil {
		return axis, err
	}
	if err := checkContiguous(b, placed, axis); err != nil {
		return axis, err
	}
	if !b.IsOccupied(b.Center) {
		return axis, ErrCenterEmpty
	}
	return axis, nil
}

// resetPlayable clears every flag, leaving only an empty center playable
func resetPlayable(b *model.Board) {
	b.Each(func(s *model.Space) {
		s.Playable = s.IsCenter && !s.HasTile()
	})
}

// markPlayable flags empty spaces touching an occupied space along axis, or
// along either axis while undecided, restricted to the line of play.
func markPlayable(b *model.Board, placed []*model.Space, axis model.Axis) {
	resetPlayable(b)
	b.Each(func(s *model.Space) {
		if s.HasTile() || !onLine(s.Position, placed, axis) {
			return
		}
		s.Playable = adjacentAlong(b, s.Position, axis)
	})
}

func onLine(pos model.Position, placed []*model.Space, axis model.Axis) bool {
	switch axis {
	case model.AxisAcross:
		return pos.Row == placed[0].Position.Row
	case model.AxisDown:
		return pos.Col == placed[0].Position.Col
	default:
		return true
	}
}

func adjacentAlong(b *model.Board, pos model.Position, axis model.Axis) bool {
	if axis == model.AxisUndecided {
		for _, n := range pos.Neighbours() {
			if b.IsOccupied(n) {
				return true
			}
		}
		return false
	}
	return b.IsOccupied(pos.Step(axis, -1)) || b.IsOccupied(pos.Step(axis, 1))
}
