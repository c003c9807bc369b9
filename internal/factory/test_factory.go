package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/wordtiles-go/internal/dependencies/mocks"
	"github.com/mcoot/wordtiles-go/internal/services/game"
	"github.com/mcoot/wordtiles-go/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
// and in-memory storage
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, "", game.DefaultConfig(), logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// TestWords is the dictionary loaded by LoadTestDictionary
var TestWords = []string{
	// 2-letter words
	"aa", "ae", "ai", "at", "as", "be", "do", "go", "he", "if", "in", "is", "it",
	"me", "my", "no", "of", "on", "or", "so", "ta", "to", "up", "us", "we",
	// 3-letter words
	"ace", "act", "ant", "arc", "art", "ate", "bat", "cab", "cat", "eat",
	"sat", "sea", "set", "tab", "tan", "tea", "ten", "the", "tie", "toe",
	// 4-letter words
	"cats", "coat", "east", "eats", "sate", "seat", "tale", "team", "tees",
	// 5-letter words
	"least", "steal", "stale", "table", "tales",
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	return t.DictionaryService.Load(TestWords)
}
