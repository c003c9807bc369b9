package response

import (
	"encoding/json"
	"time"

	"github.com/mcoot/wordtiles-go/internal/model"
)

// Position is a board coordinate
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PositionFromModel converts model.Position
func PositionFromModel(p model.Position) Position {
	return Position{Row: p.Row, Col: p.Col}
}

func positionsFromModel(ps []model.Position) []Position {
	out := make([]Position, len(ps))
	for i, p := range ps {
		out[i] = PositionFromModel(p)
	}
	return out
}

func letterString(r rune) string {
	if r == 0 {
		return ""
	}
	return string(r)
}

func lettersFromModel(rs []rune) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

// WordMatch represents a word found on the board
type WordMatch struct {
	Word  string   `json:"word"`
	Start Position `json:"start"`
	Axis  string   `json:"axis"`
	Score int      `json:"score"`
	Valid bool     `json:"valid"`
}

// WordMatchFromModel converts model.WordMatch
func WordMatchFromModel(w model.WordMatch) WordMatch {
	return WordMatch{
		Word:  w.Word,
		Start: PositionFromModel(w.Start),
		Axis:  string(w.Axis),
		Score: w.Score,
		Valid: w.Valid,
	}
}

func wordsFromModel(ws []model.WordMatch) []WordMatch {
	out := make([]WordMatch, len(ws))
	for i, w := range ws {
		out[i] = WordMatchFromModel(w)
	}
	return out
}

// Badge marks the tile anchoring the turn's word
type Badge struct {
	Position Position `json:"position"`
	Valid    bool     `json:"valid"`
	Pending  bool     `json:"pending"`
}

// BadgeFromModel converts model.Badge, keeping nil as nil
func BadgeFromModel(b *model.Badge) *Badge {
	if b == nil {
		return nil
	}
	return &Badge{
		Position: PositionFromModel(b.Position),
		Valid:    b.Valid,
		Pending:  b.Pending,
	}
}

// PlacementResult is the response after placing or removing a tile
type PlacementResult struct {
	Position  Position    `json:"position"`
	Letter    string      `json:"letter,omitempty"`
	Words     []WordMatch `json:"words"`
	Valid     bool        `json:"valid"`
	Pending   bool        `json:"pending"`
	Legal     bool        `json:"legal"`
	Axis      string      `json:"axis"`
	TurnScore int         `json:"turn_score"`
	Badge     *Badge      `json:"badge"`
}

// PlacementResultFromModel converts model.PlacementResult
func PlacementResultFromModel(r *model.PlacementResult) PlacementResult {
	return PlacementResult{
		Position:  PositionFromModel(r.Position),
		Letter:    letterString(r.Letter),
		Words:     wordsFromModel(r.Words),
		Valid:     r.Valid,
		Pending:   r.Pending,
		Legal:     r.Legal,
		Axis:      string(r.Axis),
		TurnScore: r.TurnScore,
		Badge:     BadgeFromModel(r.Badge),
	}
}

// CommitSummary is the response after a successful lock
type CommitSummary struct {
	Turn       int         `json:"turn"`
	Words      []WordMatch `json:"words"`
	Locked     []Position  `json:"locked"`
	TurnScore  int         `json:"turn_score"`
	TotalScore int         `json:"total_score"`
	Drawn      []string    `json:"drawn"`
}

// CommitSummaryFromModel converts model.CommitSummary
func CommitSummaryFromModel(s *model.CommitSummary) CommitSummary {
	return CommitSummary{
		Turn:       s.Turn,
		Words:      wordsFromModel(s.Words),
		Locked:     positionsFromModel(s.Locked),
		TurnScore:  s.TurnScore,
		TotalScore: s.TotalScore,
		Drawn:      lettersFromModel(s.Drawn),
	}
}

// Tile is a tile on the board
type Tile struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
	Locked bool   `json:"locked"`
}

// Game represents a game's state in API responses
type Game struct {
	ID           string     `json:"id"`
	BoardSize    int        `json:"board_size"`
	Center       Position   `json:"center"`
	Turn         int        `json:"turn"`
	Tiles        []Tile     `json:"tiles"`
	Playable     []Position `json:"playable"`
	Rack         []string   `json:"rack"`
	Axis         string     `json:"axis"`
	Legal        bool       `json:"legal"`
	Badge        *Badge     `json:"badge"`
	TurnScore    int        `json:"turn_score"`
	TotalScore   int        `json:"total_score"`
	BagRemaining int        `json:"bag_remaining"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// GameFromModel converts model.GameSnapshot
func GameFromModel(g *model.GameSnapshot) Game {
	tiles := make([]Tile, len(g.Tiles))
	for i, t := range g.Tiles {
		tiles[i] = Tile{
			Row:    t.Position.Row,
			Col:    t.Position.Col,
			Letter: string(t.Letter),
			Locked: t.Locked,
		}
	}
	return Game{
		ID:           string(g.ID),
		BoardSize:    g.BoardSize,
		Center:       PositionFromModel(g.Center),
		Turn:         g.Turn,
		Tiles:        tiles,
		Playable:     positionsFromModel(g.Playable),
		Rack:         lettersFromModel(g.Rack),
		Axis:         string(g.Axis),
		Legal:        g.Legal,
		Badge:        BadgeFromModel(g.Badge),
		TurnScore:    g.TurnScore,
		TotalScore:   g.TotalScore,
		BagRemaining: g.BagRemaining,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

// GameList is the response for listing games
type GameList struct {
	Games []Game `json:"games"`
}

// RecallResponse lists the positions that were emptied
type RecallResponse struct {
	Recalled []Position `json:"recalled"`
}

// RackResponse is the rack after a shuffle
type RackResponse struct {
	Rack []string `json:"rack"`
}

// TurnRecord is one entry of a game's turn log
type TurnRecord struct {
	Turn       int         `json:"turn"`
	Words      []WordMatch `json:"words"`
	Positions  []Position  `json:"positions"`
	Score      int         `json:"score"`
	TotalScore int         `json:"total_score"`
	LockedAt   time.Time   `json:"locked_at"`
}

// TurnsResponse is the response for a game's turn log
type TurnsResponse struct {
	GameID string       `json:"game_id"`
	Turns  []TurnRecord `json:"turns"`
}

// TurnsFromModel converts a turn log
func TurnsFromModel(id model.GameID, records []*model.TurnRecord) TurnsResponse {
	turns := make([]TurnRecord, len(records))
	for i, r := range records {
		turns[i] = TurnRecord{
			Turn:       r.Turn,
			Words:      wordsFromModel(r.Words),
			Positions:  positionsFromModel(r.Positions),
			Score:      r.Score,
			TotalScore: r.TotalScore,
			LockedAt:   r.LockedAt,
		}
	}
	return TurnsResponse{GameID: string(id), Turns: turns}
}

// WordCheck is the response for a dictionary lookup
type WordCheck struct {
	Word  string `json:"word"`
	Valid bool   `json:"valid"`
}

// Dictionary describes the loaded dictionary
type Dictionary struct {
	Name      string `json:"name"`
	WordCount int    `json:"word_count"`
}

// Health is the health check response
type Health struct {
	Status     string `json:"status"`
	Dictionary bool   `json:"dictionary_loaded"`
}

// Event is the data line of an SSE message
type Event struct {
	Type      string    `json:"type"`
	GameID    string    `json:"game_id"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// EventFromModel converts model.Event, translating known payloads
func EventFromModel(e model.Event) Event {
	var payload any
	switch p := e.Payload.(type) {
	case model.TileEventPayload:
		payload = PlacementResultFromModel(&p.Result)
	case model.TurnLockedPayload:
		payload = CommitSummaryFromModel(&p.Summary)
	case model.TurnRecalledPayload:
		payload = RecallResponse{Recalled: positionsFromModel(p.Recalled)}
	case model.RackShuffledPayload:
		payload = RackResponse{Rack: lettersFromModel(p.Rack)}
	case model.BoardRegeneratedPayload:
		payload = struct {
			BoardSize int      `json:"board_size"`
			Center    Position `json:"center"`
		}{p.Size, PositionFromModel(p.Center)}
	default:
		payload = p
	}
	return Event{
		Type:      string(e.Type),
		GameID:    string(e.GameID),
		Timestamp: e.Timestamp,
		Payload:   payload,
	}
}

// EncodeEvent renders an event as JSON for the SSE stream
func EncodeEvent(e model.Event) ([]byte, error) {
	return json.Marshal(EventFromModel(e))
}
