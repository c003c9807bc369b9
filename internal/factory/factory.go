package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/mcoot/wordtiles-go/internal/api"
	"github.com/mcoot/wordtiles-go/internal/api/response"
	"github.com/mcoot/wordtiles-go/internal/dependencies/clock"
	"github.com/mcoot/wordtiles-go/internal/dependencies/random"
	"github.com/mcoot/wordtiles-go/internal/services/board"
	"github.com/mcoot/wordtiles-go/internal/services/dictionary"
	"github.com/mcoot/wordtiles-go/internal/services/game"
	"github.com/mcoot/wordtiles-go/internal/services/placement"
	"github.com/mcoot/wordtiles-go/internal/services/scoring"
	"github.com/mcoot/wordtiles-go/internal/sse"
	"github.com/mcoot/wordtiles-go/internal/storage"
	"github.com/mcoot/wordtiles-go/internal/storage/memory"
	redisstorage "github.com/mcoot/wordtiles-go/internal/storage/redis"
	sqlitestorage "github.com/mcoot/wordtiles-go/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Services
	DictionaryService *dictionary.Service
	BoardService      *board.Service
	ScoringService    *scoring.Service
	Validator         *placement.Validator
	GameManager       *game.Manager
	GameConfig        game.Config

	// Event streaming
	HubManager  *sse.HubManager
	Broadcaster *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryName is the storage key of the word list (optional)
	// If empty, dictionary.DefaultName is used
	DictionaryName string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLiteConfig holds database settings (optional; defaults if StorageType is "sqlite")
	SQLiteConfig *sqlitestorage.Config
	// Game holds the settings for new games (optional)
	// If zero value, defaults to game.DefaultConfig()
	Game game.Config
}

// New creates a new application with all dependencies wired.
// The dictionary is left unloaded.
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	gameCfg := cfg.Game
	if gameCfg == (game.Config{}) {
		gameCfg = game.DefaultConfig()
	}

	return newWithDependencies(store, clock.New(), random.New(), cfg.DictionaryName, gameCfg, logger), nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	case StorageTypeSQLite:
		sqliteCfg := sqlitestorage.DefaultConfig()
		if cfg.SQLiteConfig != nil {
			sqliteCfg = *cfg.SQLiteConfig
		}
		return sqlitestorage.New(sqliteCfg)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	dictionaryName string,
	gameCfg game.Config,
	logger *slog.Logger,
) *App {
	dictService := dictionary.New(store, dictionaryName, logger)
	boardService := board.New(logger)
	scoringService := scoring.New()
	validator := placement.New(dictService, scoringService)

	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, response.EncodeEvent, logger)
	gameManager := game.NewManager(store, boardService, validator, broadcaster, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Logger:            logger,
		DictionaryService: dictService,
		BoardService:      boardService,
		ScoringService:    scoringService,
		Validator:         validator,
		GameManager:       gameManager,
		GameConfig:        gameCfg,
		HubManager:        hubManager,
		Broadcaster:       broadcaster,
	}
}

// Router returns the API handler for the app
func (a *App) Router() http.Handler {
	return api.NewRouter(api.RouterConfig{
		Logger:       a.Logger,
		GameManager:  a.GameManager,
		GameDefaults: a.GameConfig,
		Dictionary:   a.DictionaryService,
		HubManager:   a.HubManager,
		Broadcaster:  a.Broadcaster,
	})
}

// Close disconnects event streams and releases the storage backend
func (a *App) Close() error {
	a.HubManager.Close()
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
