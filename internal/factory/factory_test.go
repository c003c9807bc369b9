package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordtiles-go/internal/model"
	"github.com/mcoot/wordtiles-go/internal/services/game"
	redisstorage "github.com/mcoot/wordtiles-go/internal/storage/redis"
	sqlitestorage "github.com/mcoot/wordtiles-go/internal/storage/sqlite"
)

type FactorySuite struct {
	suite.Suite
	ctx context.Context
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactorySuite))
}

func (s *FactorySuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *FactorySuite) TestNewDefaultsToMemory() {
	app, err := New(Config{})
	s.Require().NoError(err)
	defer app.Close()

	s.Equal(game.DefaultConfig(), app.GameConfig)
	s.Equal("default", app.DictionaryService.Name())
	s.False(app.DictionaryService.IsLoaded())
}

func (s *FactorySuite) TestNewRejectsUnknownStorage() {
	_, err := New(Config{StorageType: "postgres"})
	s.Error(err)
}

func (s *FactorySuite) TestNewRedisRequiresConfig() {
	_, err := New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

func (s *FactorySuite) TestNewRedis() {
	mr := miniredis.RunT(s.T())
	cfg := redisstorage.DefaultConfig()
	cfg.URL = "redis://" + mr.Addr()

	app, err := New(Config{StorageType: StorageTypeRedis, RedisConfig: &cfg, DictionaryName: "test"})
	s.Require().NoError(err)
	defer app.Close()

	s.Require().NoError(app.Storage.SaveDictionaryWords(s.ctx, "test", []string{"CAT"}))
	s.Require().NoError(app.DictionaryService.LoadFromStorage(s.ctx))
	s.True(app.DictionaryService.Contains("cat"))
}

func (s *FactorySuite) TestNewSQLite() {
	cfg := sqlitestorage.DefaultConfig()
	cfg.Path = filepath.Join(s.T().TempDir(), "wordtiles.db")

	app, err := New(Config{StorageType: StorageTypeSQLite, SQLiteConfig: &cfg})
	s.Require().NoError(err)
	defer app.Close()

	records, err := app.Storage.GetTurnRecords(s.ctx, "NONE")
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *FactorySuite) TestCustomGameConfig() {
	app, err := New(Config{Game: game.Config{BoardSize: 15, RackSize: 7, OpeningVowels: 2}})
	s.Require().NoError(err)
	defer app.Close()

	s.Equal(15, app.GameConfig.BoardSize)
}

// A whole game through the wired services
func (s *FactorySuite) TestGameFlow() {
	app := NewTestApp()
	s.Require().NoError(app.LoadTestDictionary())

	// Intn always returns 0, so every draw is the first letter with stock left
	app.MockRandom.QueueString("GAME0001")
	snap, err := app.GameManager.Create(s.ctx, app.GameConfig)
	s.Require().NoError(err)
	s.Equal("AAAAAAA", string(snap.Rack))

	center := snap.Center
	result, err := app.GameManager.PlaceTile(s.ctx, snap.ID, center, 'A')
	s.Require().NoError(err)
	s.True(result.Legal)
	s.True(result.Pending)

	right := model.Position{Row: center.Row, Col: center.Col + 1}
	result, err = app.GameManager.PlaceTile(s.ctx, snap.ID, right, 'A')
	s.Require().NoError(err)
	s.True(result.Valid)
	s.Equal(2, result.TurnScore)

	summary, err := app.GameManager.Lock(s.ctx, snap.ID)
	s.Require().NoError(err)
	s.Equal(2, summary.TotalScore)
	s.Equal("AA", string(summary.Drawn))

	turns, err := app.GameManager.Turns(s.ctx, snap.ID)
	s.Require().NoError(err)
	s.Len(turns, 1)
	s.Equal("AA", turns[0].Words[0].Word)
}
