package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles-go/internal/api/apierr"
	"github.com/mcoot/wordtiles-go/internal/api/handler"
	"github.com/mcoot/wordtiles-go/internal/middleware"
	"github.com/mcoot/wordtiles-go/internal/services/dictionary"
	"github.com/mcoot/wordtiles-go/internal/services/game"
	"github.com/mcoot/wordtiles-go/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	GameManager  game.ManagerInterface
	GameDefaults game.Config
	Dictionary   dictionary.ServiceInterface
	HubManager   *sse.HubManager
	Broadcaster  *sse.Broadcaster
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	var notifier handler.GameDeletedNotifier
	if cfg.Broadcaster != nil {
		notifier = cfg.Broadcaster
	}
	gameHandler := handler.NewGameHandler(cfg.GameManager, cfg.GameDefaults, notifier)
	dictionaryHandler := handler.NewDictionaryHandler(cfg.Dictionary)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, internalError))
	api.Use(middleware.Logging(cfg.Logger))
	api.NotFoundHandler = http.HandlerFunc(notFound)

	api.HandleFunc("/health", handler.Health(cfg.Dictionary)).Methods(http.MethodGet)

	api.HandleFunc("/dictionary", dictionaryHandler.Info).Methods(http.MethodGet)
	api.HandleFunc("/dictionary/words/{word}", dictionaryHandler.Check).Methods(http.MethodGet)

	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/tiles", gameHandler.PlaceTile).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/tiles/{row}/{col}", gameHandler.RemoveTile).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/lock", gameHandler.Lock).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/recall", gameHandler.Recall).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/shuffle", gameHandler.Shuffle).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/regenerate", gameHandler.Regenerate).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/turns", gameHandler.Turns).Methods(http.MethodGet)

	if cfg.HubManager != nil {
		eventsHandler := handler.NewEventsHandler(cfg.GameManager, cfg.HubManager)
		api.HandleFunc("/games/{id}/events", eventsHandler.Stream).Methods(http.MethodGet)
	}

	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError())
}

// internalError answers a recovered panic with the JSON 500 envelope
func internalError(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
