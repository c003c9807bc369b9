package model

import "fmt"

// Position identifies a space on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Step returns the neighbouring position along the axis. A negative delta walks backward.
func (p Position) Step(axis Axis, delta int) Position {
	if axis == AxisDown {
		return Position{Row: p.Row + delta, Col: p.Col}
	}
	return Position{Row: p.Row, Col: p.Col + delta}
}

// Neighbours returns the four orthogonal neighbours, in-bounds or not
func (p Position) Neighbours() [4]Position {
	return [4]Position{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
	}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Board is an N×N grid of spaces
type Board struct {
	Size   int
	Spaces [][]*Space // Row-major: Spaces[row][col]
	Center Position
}

// CenterOf returns the center position for a board of the given size
func CenterOf(size int) Position {
	c := (size+1)/2 - 1
	return Position{Row: c, Col: c}
}

// NewBoard creates an empty board of the given size. Only the center starts playable.
func NewBoard(size int) *Board {
	center := CenterOf(size)
	spaces := make([][]*Space, size)
	for row := range spaces {
		spaces[row] = make([]*Space, size)
		for col := range spaces[row] {
			pos := Position{Row: row, Col: col}
			spaces[row][col] = &Space{
				Position: pos,
				IsCenter: pos == center,
				Playable: pos == center,
			}
		}
	}
	return &Board{
		Size:   size,
		Spaces: spaces,
		Center: center,
	}
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// SpaceAt returns the space at pos, or nil if out of bounds
func (b *Board) SpaceAt(pos Position) *Space {
	if !b.IsValidPosition(pos) {
		return nil
	}
	return b.Spaces[pos.Row][pos.Col]
}

// CenterSpace returns the board's center space
func (b *Board) CenterSpace() *Space {
	return b.SpaceAt(b.Center)
}

// IsOccupied returns true if pos is on the board and holds a tile
func (b *Board) IsOccupied(pos Position) bool {
	s := b.SpaceAt(pos)
	return s != nil && s.HasTile()
}

// Each calls fn for every space in row-major order
func (b *Board) Each(fn func(s *Space)) {
	for _, row := range b.Spaces {
		for _, s := range row {
			fn(s)
		}
	}
}

// PlacedThisRound returns the occupied, unlocked spaces in row-major order
func (b *Board) PlacedThisRound() []*Space {
	var placed []*Space
	b.Each(func(s *Space) {
		if s.IsPlacedThisRound() {
			placed = append(placed, s)
		}
	})
	return placed
}

// LockedCount returns the number of locked spaces
func (b *Board) LockedCount() int {
	count := 0
	b.Each(func(s *Space) {
		if s.Locked {
			count++
		}
	})
	return count
}

// TileCount returns the number of occupied spaces
func (b *Board) TileCount() int {
	count := 0
	b.Each(func(s *Space) {
		if s.HasTile() {
			count++
		}
	})
	return count
}

// PlayablePositions returns the positions of playable spaces in row-major order
func (b *Board) PlayablePositions() []Position {
	var positions []Position
	b.Each(func(s *Space) {
		if s.Playable {
			positions = append(positions, s.Position)
		}
	})
	return positions
}
