package model

import "time"

// GameID uniquely identifies a game
type GameID string

// WordMatch is a candidate word found along one axis
type WordMatch struct {
	Word  string
	Start Position // Root space of the run
	Axis  Axis
	Score int
	Valid bool // Present in the dictionary
}

// Len returns the number of letters in the word
func (w WordMatch) Len() int {
	return len([]rune(w.Word))
}

// Badge marks the tile anchoring the current turn's word
type Badge struct {
	TileID   TileID
	Position Position
	Valid    bool
	Pending  bool // No word formed yet
}

// PlacementResult reports the board state after a placement or removal
type PlacementResult struct {
	Position  Position
	Letter    rune // 0 for removals
	Words     []WordMatch
	Valid     bool // Every word through the anchor is in the dictionary
	Pending   bool // No word of two or more letters formed yet
	Legal     bool // Turn satisfies axis, contiguity, adjacency and center rules
	Axis      Axis
	TurnScore int
	Badge     *Badge
}

// CommitSummary is returned by a successful lock
type CommitSummary struct {
	Turn       int
	Words      []WordMatch
	Locked     []Position
	TurnScore  int
	TotalScore int
	Drawn      []rune
}

// TurnRecord is the persisted log entry for a committed turn
type TurnRecord struct {
	GameID     GameID
	Turn       int
	Words      []WordMatch
	Positions  []Position
	Score      int
	TotalScore int
	LockedAt   time.Time
}

// PlacedTile is a tile on the board in a snapshot
type PlacedTile struct {
	Position Position
	Letter   rune
	Locked   bool
}

// GameSnapshot is a read-only view of a game's state
type GameSnapshot struct {
	ID           GameID
	BoardSize    int
	Center       Position
	Turn         int // 1-indexed number of the open turn
	Tiles        []PlacedTile
	Playable     []Position
	Rack         []rune
	Axis         Axis
	Legal        bool
	Badge        *Badge
	TurnScore    int
	TotalScore   int
	BagRemaining int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
