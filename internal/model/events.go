package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventTilePlaced       EventType = "tile_placed"
	EventTileRemoved      EventType = "tile_removed"
	EventTurnLocked       EventType = "turn_locked"
	EventTurnRecalled     EventType = "turn_recalled"
	EventRackShuffled     EventType = "rack_shuffled"
	EventBoardRegenerated EventType = "board_regenerated"
)

// Event is emitted by a game after every state change
type Event struct {
	Type      EventType
	Timestamp time.Time
	GameID    GameID
	Payload   any // Type-specific data
}

// TileEventPayload contains data for tile placed and removed events
type TileEventPayload struct {
	Result PlacementResult
}

// TurnLockedPayload contains data for turn locked events
type TurnLockedPayload struct {
	Summary CommitSummary
}

// TurnRecalledPayload contains data for turn recalled events
type TurnRecalledPayload struct {
	Recalled []Position
}

// RackShuffledPayload contains data for rack shuffled events
type RackShuffledPayload struct {
	Rack []rune
}

// BoardRegeneratedPayload contains data for board regenerated events
type BoardRegeneratedPayload struct {
	Size   int
	Center Position
}
