package model

// TileID identifies a tile within a game
type TileID int

// Tile is a single lettered tile. Its point value comes from the letter tables.
type Tile struct {
	ID     TileID
	Letter rune
	Space  *Space // Container the tile currently sits in, nil when unassigned
	Home   int    // Rack slot the tile was last drawn or recalled into
}

// OnBoard returns true if the tile sits on a board space
func (t *Tile) OnBoard() bool {
	return t.Space != nil && !t.Space.IsRackSpace
}

// Space is a board cell or a rack slot holding at most one tile
type Space struct {
	Position    Position
	Tile        *Tile
	Locked      bool // Tile was committed by an earlier turn
	Playable    bool // Derived on every validation pass
	IsCenter    bool
	IsRackSpace bool
}

// HasTile returns true if the space holds a tile
func (s *Space) HasTile() bool {
	return s.Tile != nil
}

// Letter returns the occupying tile's letter, or 0 if empty
func (s *Space) Letter() rune {
	if s.Tile == nil {
		return 0
	}
	return s.Tile.Letter
}

// IsPlacedThisRound returns true for a board space holding an uncommitted tile
func (s *Space) IsPlacedThisRound() bool {
	return s.Tile != nil && !s.Locked && !s.IsRackSpace
}

// Attach moves t into s, releasing it from its previous container
func (s *Space) Attach(t *Tile) {
	if t.Space != nil && t.Space != s {
		t.Space.Tile = nil
	}
	s.Tile = t
	t.Space = s
}

// Detach empties s and returns the tile it held, or nil
func (s *Space) Detach() *Tile {
	t := s.Tile
	if t == nil {
		return nil
	}
	s.Tile = nil
	if t.Space == s {
		t.Space = nil
	}
	return t
}
