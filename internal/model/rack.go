package model

// RackRow is the row used for rack slot positions, keeping them off the board
const RackRow = -1

// Rack is the player's row of tile slots
type Rack struct {
	Slots []*Space
}

// NewRack creates an empty rack with the given number of slots
func NewRack(size int) *Rack {
	slots := make([]*Space, size)
	for i := range slots {
		slots[i] = &Space{
			Position:    Position{Row: RackRow, Col: i},
			IsRackSpace: true,
		}
	}
	return &Rack{Slots: slots}
}

// EmptyCount returns the number of empty slots
func (r *Rack) EmptyCount() int {
	count := 0
	for _, s := range r.Slots {
		if !s.HasTile() {
			count++
		}
	}
	return count
}

// SetTileInEmptySpace puts t into its home slot if free, otherwise the first empty slot
func (r *Rack) SetTileInEmptySpace(t *Tile) error {
	if t.Home >= 0 && t.Home < len(r.Slots) && !r.Slots[t.Home].HasTile() {
		r.Slots[t.Home].Attach(t)
		return nil
	}
	for i, s := range r.Slots {
		if !s.HasTile() {
			t.Home = i
			s.Attach(t)
			return nil
		}
	}
	return ErrRackFull
}

// FindLetter returns the first slot holding letter, or nil
func (r *Rack) FindLetter(letter rune) *Space {
	for _, s := range r.Slots {
		if s.Letter() == letter {
			return s
		}
	}
	return nil
}

// Letters returns the rack letters in slot order, skipping empty slots
func (r *Rack) Letters() []rune {
	letters := make([]rune, 0, len(r.Slots))
	for _, s := range r.Slots {
		if s.HasTile() {
			letters = append(letters, s.Tile.Letter)
		}
	}
	return letters
}

// Tiles returns the tiles in slot order, skipping empty slots
func (r *Rack) Tiles() []*Tile {
	tiles := make([]*Tile, 0, len(r.Slots))
	for _, s := range r.Slots {
		if s.HasTile() {
			tiles = append(tiles, s.Tile)
		}
	}
	return tiles
}
