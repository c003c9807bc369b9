package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenterOf(t *testing.T) {
	tests := []struct {
		size int
		want Position
	}{
		{size: 3, want: Position{Row: 1, Col: 1}},
		{size: 4, want: Position{Row: 1, Col: 1}},
		{size: 9, want: Position{Row: 4, Col: 4}},
		{size: 15, want: Position{Row: 7, Col: 7}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CenterOf(tt.size), "size %d", tt.size)
	}
}

func TestNewBoard(t *testing.T) {
	b := NewBoard(5)

	require.Len(t, b.Spaces, 5)
	assert.Equal(t, Position{Row: 2, Col: 2}, b.Center)
	assert.True(t, b.CenterSpace().IsCenter)
	assert.Equal(t, []Position{{Row: 2, Col: 2}}, b.PlayablePositions())
	assert.Zero(t, b.TileCount())
	assert.Nil(t, b.SpaceAt(Position{Row: 5, Col: 0}))
	assert.Nil(t, b.SpaceAt(Position{Row: 0, Col: -1}))
	assert.False(t, b.IsOccupied(Position{Row: -1, Col: -1}))
}

func TestPositionStep(t *testing.T) {
	p := Position{Row: 3, Col: 3}

	assert.Equal(t, Position{Row: 3, Col: 4}, p.Step(AxisAcross, 1))
	assert.Equal(t, Position{Row: 2, Col: 3}, p.Step(AxisDown, -1))
	assert.Equal(t, "(3,3)", p.String())
	assert.Equal(t, AxisDown, AxisAcross.Cross())
	assert.Equal(t, AxisUndecided, AxisUndecided.Cross())
}

func TestAttachMovesTileBetweenContainers(t *testing.T) {
	rack := NewRack(2)
	b := NewBoard(3)
	tile := &Tile{ID: 1, Letter: 'A'}

	rack.Slots[0].Attach(tile)
	assert.False(t, tile.OnBoard())
	assert.Equal(t, []rune{'A'}, rack.Letters())

	space := b.SpaceAt(Position{Row: 1, Col: 1})
	space.Attach(tile)

	assert.True(t, tile.OnBoard())
	assert.Same(t, space, tile.Space)
	assert.False(t, rack.Slots[0].HasTile())
	assert.True(t, space.IsPlacedThisRound())
	assert.Equal(t, []*Space{space}, b.PlacedThisRound())

	assert.Same(t, tile, space.Detach())
	assert.Nil(t, tile.Space)
	assert.Nil(t, space.Detach())
}

func TestLockedSpaceIsNotPlacedThisRound(t *testing.T) {
	b := NewBoard(3)
	space := b.CenterSpace()
	space.Attach(&Tile{Letter: 'A'})
	space.Locked = true

	assert.False(t, space.IsPlacedThisRound())
	assert.Empty(t, b.PlacedThisRound())
	assert.Equal(t, 1, b.LockedCount())
	assert.Equal(t, 'A', space.Letter())
}

func TestRackSetTileInEmptySpace(t *testing.T) {
	rack := NewRack(3)
	a := &Tile{ID: 1, Letter: 'A', Home: 2}
	b := &Tile{ID: 2, Letter: 'B', Home: 2}
	c := &Tile{ID: 3, Letter: 'C', Home: 0}
	d := &Tile{ID: 4, Letter: 'D'}

	// home slot free
	require.NoError(t, rack.SetTileInEmptySpace(a))
	assert.Same(t, a, rack.Slots[2].Tile)

	// home slot taken: first empty slot becomes the new home
	require.NoError(t, rack.SetTileInEmptySpace(b))
	assert.Same(t, b, rack.Slots[0].Tile)
	assert.Equal(t, 0, b.Home)

	require.NoError(t, rack.SetTileInEmptySpace(c))
	assert.Same(t, c, rack.Slots[1].Tile)
	assert.Equal(t, 1, c.Home)

	assert.ErrorIs(t, rack.SetTileInEmptySpace(d), ErrRackFull)
	assert.Equal(t, []rune{'B', 'C', 'A'}, rack.Letters())
	assert.Zero(t, rack.EmptyCount())
}

func TestRackFindLetter(t *testing.T) {
	rack := NewRack(3)
	rack.Slots[1].Attach(&Tile{Letter: 'Q'})

	assert.Same(t, rack.Slots[1], rack.FindLetter('Q'))
	assert.Nil(t, rack.FindLetter('Z'))
	assert.Equal(t, RackRow, rack.Slots[1].Position.Row)
	assert.Equal(t, 2, rack.EmptyCount())
	assert.Len(t, rack.Tiles(), 1)
}
