package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/mcoot/wordtiles-go/internal/api"
	"github.com/mcoot/wordtiles-go/internal/factory"
	"github.com/mcoot/wordtiles-go/internal/model"
	"github.com/mcoot/wordtiles-go/internal/services/game"
	redisstorage "github.com/mcoot/wordtiles-go/internal/storage/redis"
	sqlitestorage "github.com/mcoot/wordtiles-go/internal/storage/sqlite"
)

func main() {
	// A missing .env is fine; the real environment still applies
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(getEnv("LOG_LEVEL", "info")),
	}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := factoryConfig(logger)
	if err != nil {
		return err
	}

	app, err := factory.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	dictPath := getEnv("DICTIONARY_PATH", "data/words.txt")
	if err := app.DictionaryService.LoadFromFile(context.Background(), dictPath); err != nil {
		if !errors.Is(err, model.ErrDictionaryLoad) {
			return err
		}
		// Every word is rejected until a dictionary is loaded
		logger.Warn("could not load dictionary",
			slog.String("path", dictPath),
			slog.String("error", err.Error()))
	}

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = os.Getenv("HOST")
	if serverConfig.Port, err = getEnvInt("PORT", serverConfig.Port); err != nil {
		return err
	}

	server := api.NewServer(app.Router(), serverConfig, logger)
	server.RegisterOnShutdown(app.HubManager.Close)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func factoryConfig(logger *slog.Logger) (factory.Config, error) {
	cfg := factory.Config{
		DictionaryName: os.Getenv("DICTIONARY_NAME"),
		Logger:         logger,
		StorageType:    os.Getenv("STORAGE_TYPE"),
		Game:           game.DefaultConfig(),
	}

	switch cfg.StorageType {
	case factory.StorageTypeRedis:
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			return cfg, errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	case factory.StorageTypeSQLite:
		sqliteCfg := sqlitestorage.DefaultConfig()
		sqliteCfg.Path = getEnv("SQLITE_PATH", sqliteCfg.Path)
		cfg.SQLiteConfig = &sqliteCfg
	}

	var err error
	if cfg.Game.BoardSize, err = getEnvInt("BOARD_SIZE", cfg.Game.BoardSize); err != nil {
		return cfg, err
	}
	if cfg.Game.RackSize, err = getEnvInt("RACK_SIZE", cfg.Game.RackSize); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New(key + " must be an integer")
	}
	return n, nil
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
