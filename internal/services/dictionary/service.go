package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/mcoot/wordtiles-go/internal/model"
	"github.com/mcoot/wordtiles-go/internal/storage"
)

// DefaultName is the storage key used when no dictionary name is configured
const DefaultName = "default"

// Service answers word membership queries. The trie is built once and then only
// read, so Contains is safe to call from any goroutine without locking.
type Service struct {
	storage storage.Storage
	name    string
	logger  *slog.Logger

	trie atomic.Pointer[Trie]
}

// New creates a new dictionary Service backed by the named word list in storage
func New(storage storage.Storage, name string, logger *slog.Logger) *Service {
	if name == "" {
		name = DefaultName
	}
	return &Service{
		storage: storage,
		name:    name,
		logger:  logger.With(slog.String("component", "dictionary"), slog.String("dictionary", name)),
	}
}

// Load builds the trie from words. It succeeds at most once.
func (s *Service) Load(words []string) error {
	t := NewTrie()
	skipped := 0
	for _, w := range words {
		w = normalize(w)
		if w == "" {
			continue
		}
		if !t.Insert(w) && !t.Contains(w) {
			skipped++
		}
	}

	if !s.trie.CompareAndSwap(nil, t) {
		return model.ErrDictionaryAlreadyLoaded
	}

	s.logger.Info("dictionary loaded",
		slog.Int("words", t.Len()),
		slog.Int("nodes", t.NodeCount()),
		slog.Int("skipped", skipped))
	return nil
}

// LoadFromFile loads a word list (one word per line) and saves it to storage.
// If the file cannot be read the dictionary is loaded empty and the returned
// error wraps model.ErrDictionaryLoad; callers should treat it as a warning.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	words, err := readWordFile(path)
	if err != nil {
		s.logger.Warn("dictionary file unreadable, starting with no valid words",
			slog.String("path", path),
			slog.String("error", err.Error()))
		if loadErr := s.Load(nil); loadErr != nil {
			return loadErr
		}
		return fmt.Errorf("%w: %w", model.ErrDictionaryLoad, err)
	}

	if err := s.Load(words); err != nil {
		return err
	}

	if err := s.storage.SaveDictionaryWords(ctx, s.name, words); err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}
	return nil
}

// LoadFromStorage loads the named word list previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx, s.name)
	if err != nil {
		return err
	}
	return s.Load(words)
}

// Contains reports whether word is in the dictionary. Case is ignored.
func (s *Service) Contains(word string) bool {
	t := s.trie.Load()
	if t == nil {
		return false
	}
	return t.Contains(normalize(word))
}

// IsLoaded returns whether the dictionary has been loaded, even if empty
func (s *Service) IsLoaded() bool {
	return s.trie.Load() != nil
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	t := s.trie.Load()
	if t == nil {
		return 0
	}
	return t.Len()
}

// Name returns the dictionary's storage name
func (s *Service) Name() string {
	return s.name
}

// ReadWords reads one word per line, skipping blank lines
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func readWordFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()
	return ReadWords(file)
}

func normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// ServiceInterface is the dictionary surface used by the rest of the application
type ServiceInterface interface {
	Contains(word string) bool
	IsLoaded() bool
	WordCount() int
	Name() string
	Load(words []string) error
	LoadFromFile(ctx context.Context, path string) error
	LoadFromStorage(ctx context.Context) error
}

var _ ServiceInterface = (*Service)(nil)
