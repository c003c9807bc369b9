package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordtiles-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.TurnLogTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"APPLE", "BANANA", "CHERRY"}

	err := s.storage.SaveDictionaryWords(s.ctx, "default", words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx, "default")
	s.Require().NoError(err)
	s.ElementsMatch(words, retrieved) // Order may differ (SET)
}

func (s *StorageSuite) TestGetDictionaryWordsNotFound() {
	_, err := s.storage.GetDictionaryWords(s.ctx, "default")
	s.ErrorIs(err, model.ErrDictionaryNotFound)
}

func (s *StorageSuite) TestSaveDictionaryWordsReplacesExisting() {
	_ = s.storage.SaveDictionaryWords(s.ctx, "default", []string{"APPLE", "BANANA"})
	_ = s.storage.SaveDictionaryWords(s.ctx, "default", []string{"CHERRY", "DATE"})

	retrieved, err := s.storage.GetDictionaryWords(s.ctx, "default")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"CHERRY", "DATE"}, retrieved)
}

func (s *StorageSuite) TestDictionariesAreKeyedByName() {
	_ = s.storage.SaveDictionaryWords(s.ctx, "small", []string{"AT"})

	_, err := s.storage.GetDictionaryWords(s.ctx, "large")
	s.ErrorIs(err, model.ErrDictionaryNotFound)
	s.True(s.mini.Exists(dictionaryKey("small")))
}

func (s *StorageSuite) TestDictionaryNoTTL() {
	_ = s.storage.SaveDictionaryWords(s.ctx, "default", []string{"APPLE"})

	ttl := s.mini.TTL(dictionaryKey("default"))
	s.Equal(time.Duration(0), ttl, "Dictionary should not have TTL")
}

// Turn log tests

func (s *StorageSuite) TestAppendAndGetTurnRecords() {
	lockedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	record := &model.TurnRecord{
		GameID:     "game-1",
		Turn:       1,
		Positions:  []model.Position{{Row: 4, Col: 3}, {Row: 4, Col: 4}},
		Words:      []model.WordMatch{{Word: "AT", Start: model.Position{Row: 4, Col: 3}, Axis: model.AxisAcross, Score: 2, Valid: true}},
		Score:      2,
		TotalScore: 2,
		LockedAt:   lockedAt,
	}

	s.Require().NoError(s.storage.AppendTurnRecord(s.ctx, record))
	s.Require().NoError(s.storage.AppendTurnRecord(s.ctx, &model.TurnRecord{GameID: "game-1", Turn: 2}))

	records, err := s.storage.GetTurnRecords(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal("AT", records[0].Words[0].Word)
	s.Equal(model.AxisAcross, records[0].Words[0].Axis)
	s.True(lockedAt.Equal(records[0].LockedAt))
	s.Equal(2, records[1].Turn)
}

func (s *StorageSuite) TestTurnLogHasTTL() {
	_ = s.storage.AppendTurnRecord(s.ctx, &model.TurnRecord{GameID: "game-1", Turn: 1})

	ttl := s.mini.TTL(turnLogKey("game-1"))
	s.Equal(time.Hour, ttl)
}

func (s *StorageSuite) TestGetTurnRecordsEmpty() {
	records, err := s.storage.GetTurnRecords(s.ctx, "missing")
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *StorageSuite) TestDeleteTurnRecords() {
	_ = s.storage.AppendTurnRecord(s.ctx, &model.TurnRecord{GameID: "game-1", Turn: 1})

	s.Require().NoError(s.storage.DeleteTurnRecords(s.ctx, "game-1"))

	s.False(s.mini.Exists(turnLogKey("game-1")))
}
