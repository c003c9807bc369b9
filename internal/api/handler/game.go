package handler

import (
	"net/http"

	"github.com/mcoot/wordtiles-go/internal/api/apierr"
	"github.com/mcoot/wordtiles-go/internal/api/request"
	"github.com/mcoot/wordtiles-go/internal/api/response"
	"github.com/mcoot/wordtiles-go/internal/model"
	"github.com/mcoot/wordtiles-go/internal/services/game"
)

// GameDeletedNotifier is told when a game goes away
type GameDeletedNotifier interface {
	GameDeleted(id model.GameID)
}

// GameHandler handles game-related endpoints
type GameHandler struct {
	games    game.ManagerInterface
	defaults game.Config
	notifier GameDeletedNotifier
}

// NewGameHandler creates a new game handler. notifier may be nil.
func NewGameHandler(games game.ManagerInterface, defaults game.Config, notifier GameDeletedNotifier) *GameHandler {
	return &GameHandler{
		games:    games,
		defaults: defaults,
		notifier: notifier,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	cfg := h.defaults
	if req.BoardSize != 0 {
		cfg.BoardSize = req.BoardSize
	}
	if req.RackSize != 0 {
		cfg.RackSize = req.RackSize
	}

	snap, err := h.games.Create(r.Context(), cfg)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.GameFromModel(snap))
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	snaps, err := h.games.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := response.GameList{Games: make([]response.Game, len(snaps))}
	for i, snap := range snaps {
		resp.Games[i] = response.GameFromModel(snap)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.games.Get(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(snap))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	if err := h.games.Delete(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}
	if h.notifier != nil {
		h.notifier.GameDeleted(id)
	}
	response.NoContent(w)
}

// PlaceTile handles POST /api/v1/games/{id}/tiles
func (h *GameHandler) PlaceTile(w http.ResponseWriter, r *http.Request) {
	var req request.PlaceTileRequest
	if err := decodeRequired(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}
	letter, err := parseLetter(req.Letter)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	pos := model.Position{Row: req.Row, Col: req.Col}
	result, err := h.games.PlaceTile(r.Context(), gameID(r), pos, letter)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlacementResultFromModel(result))
}

// RemoveTile handles DELETE /api/v1/games/{id}/tiles/{row}/{col}
func (h *GameHandler) RemoveTile(w http.ResponseWriter, r *http.Request) {
	pos, err := positionVars(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	result, err := h.games.RemoveTile(r.Context(), gameID(r), pos)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlacementResultFromModel(result))
}

// Lock handles POST /api/v1/games/{id}/lock
func (h *GameHandler) Lock(w http.ResponseWriter, r *http.Request) {
	summary, err := h.games.Lock(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.CommitSummaryFromModel(summary))
}

// Recall handles POST /api/v1/games/{id}/recall
func (h *GameHandler) Recall(w http.ResponseWriter, r *http.Request) {
	recalled, err := h.games.Recall(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := response.RecallResponse{Recalled: make([]response.Position, len(recalled))}
	for i, p := range recalled {
		resp.Recalled[i] = response.PositionFromModel(p)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Shuffle handles POST /api/v1/games/{id}/shuffle
func (h *GameHandler) Shuffle(w http.ResponseWriter, r *http.Request) {
	rack, err := h.games.Shuffle(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := response.RackResponse{Rack: make([]string, len(rack))}
	for i, letter := range rack {
		resp.Rack[i] = string(letter)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Regenerate handles POST /api/v1/games/{id}/regenerate
func (h *GameHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	var req request.RegenerateRequest
	if err := decodeRequired(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	snap, err := h.games.Regenerate(r.Context(), gameID(r), req.BoardSize)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(snap))
}

// Turns handles GET /api/v1/games/{id}/turns
func (h *GameHandler) Turns(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	records, err := h.games.Turns(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TurnsFromModel(id, records))
}
