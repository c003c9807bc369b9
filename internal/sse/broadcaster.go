package sse

import (
	"log/slog"

	"github.com/mcoot/wordtiles-go/internal/model"
)

// EncodeFunc renders an event as the data line of an SSE message
type EncodeFunc func(event model.Event) ([]byte, error)

// Broadcaster publishes game events to the game's hub, if anyone is watching
type Broadcaster struct {
	hubManager *HubManager
	encode     EncodeFunc
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, encode EncodeFunc, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		encode:     encode,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Publish sends the event to every client watching its game
func (b *Broadcaster) Publish(event model.Event) {
	hub := b.hubManager.GetHub(event.GameID)
	if hub == nil {
		return
	}

	data, err := b.encode(event)
	if err != nil {
		b.logger.Error("sse failed to encode event",
			slog.String("game_id", string(event.GameID)),
			slog.String("type", string(event.Type)),
			slog.Any("error", err))
		return
	}
	hub.BroadcastEvent(string(event.Type), string(data))
}

// GameDeleted disconnects everyone watching the game
func (b *Broadcaster) GameDeleted(gameID model.GameID) {
	hub := b.hubManager.GetHub(gameID)
	if hub == nil {
		return
	}
	hub.BroadcastEvent("game_deleted", `{"game_id":"`+string(gameID)+`"}`)
	b.hubManager.RemoveHub(gameID)
}
