package handler

import (
	"net/http"

	"github.com/mcoot/wordtiles-go/internal/api/apierr"
	"github.com/mcoot/wordtiles-go/internal/services/game"
	"github.com/mcoot/wordtiles-go/internal/sse"
)

// EventsHandler streams game events over SSE
type EventsHandler struct {
	games      game.ManagerInterface
	hubManager *sse.HubManager
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(games game.ManagerInterface, hubManager *sse.HubManager) *EventsHandler {
	return &EventsHandler{
		games:      games,
		hubManager: hubManager,
	}
}

// Stream handles GET /api/v1/games/{id}/events
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	if _, err := h.games.Get(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}
	sse.ServeSSE(w, r, h.hubManager.GetOrCreateHub(id))
}
