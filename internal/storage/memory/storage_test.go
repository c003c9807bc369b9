package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordtiles-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"APPLE", "BANANA", "CHERRY"}

	err := s.storage.SaveDictionaryWords(s.ctx, "default", words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx, "default")
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *StorageSuite) TestGetDictionaryWordsNotFound() {
	_, err := s.storage.GetDictionaryWords(s.ctx, "default")
	s.ErrorIs(err, model.ErrDictionaryNotFound)
}

func (s *StorageSuite) TestDictionariesAreKeyedByName() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "small", []string{"AT"}))
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "large", []string{"AT", "CAT"}))

	small, err := s.storage.GetDictionaryWords(s.ctx, "small")
	s.Require().NoError(err)
	s.Equal([]string{"AT"}, small)

	large, err := s.storage.GetDictionaryWords(s.ctx, "large")
	s.Require().NoError(err)
	s.Len(large, 2)
}

func (s *StorageSuite) TestSavedWordsAreCopied() {
	words := []string{"CAT"}
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "default", words))
	words[0] = "DOG"

	retrieved, err := s.storage.GetDictionaryWords(s.ctx, "default")
	s.Require().NoError(err)
	s.Equal([]string{"CAT"}, retrieved)
}

// Turn log tests

func (s *StorageSuite) TestAppendAndGetTurnRecords() {
	now := time.Now()
	first := &model.TurnRecord{GameID: "game-1", Turn: 1, Score: 5, TotalScore: 5, LockedAt: now}
	second := &model.TurnRecord{GameID: "game-1", Turn: 2, Score: 3, TotalScore: 8, LockedAt: now}

	s.Require().NoError(s.storage.AppendTurnRecord(s.ctx, first))
	s.Require().NoError(s.storage.AppendTurnRecord(s.ctx, second))

	records, err := s.storage.GetTurnRecords(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(1, records[0].Turn)
	s.Equal(8, records[1].TotalScore)
}

func (s *StorageSuite) TestGetTurnRecordsEmpty() {
	records, err := s.storage.GetTurnRecords(s.ctx, "missing")
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *StorageSuite) TestDeleteTurnRecords() {
	s.Require().NoError(s.storage.AppendTurnRecord(s.ctx, &model.TurnRecord{GameID: "game-1", Turn: 1}))
	s.Require().NoError(s.storage.AppendTurnRecord(s.ctx, &model.TurnRecord{GameID: "game-2", Turn: 1}))

	s.Require().NoError(s.storage.DeleteTurnRecords(s.ctx, "game-1"))

	records, err := s.storage.GetTurnRecords(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Empty(records)

	records, err = s.storage.GetTurnRecords(s.ctx, "game-2")
	s.Require().NoError(err)
	s.Len(records, 1)
}
