package scoring

import (
	"fmt"

	"github.com/mcoot/wordtiles-go/internal/model"
)

// Service computes word scores from the letter value table
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// LetterValue returns the point value of a single uppercase letter
func (s *Service) LetterValue(letter rune) (int, error) {
	points, ok := letterPoints[letter]
	if !ok {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidLetter, letter)
	}
	return points, nil
}

// Score returns the sum of the letter values of word
func (s *Service) Score(word string) (int, error) {
	total := 0
	for _, letter := range word {
		points, err := s.LetterValue(letter)
		if err != nil {
			return 0, err
		}
		total += points
	}
	return total, nil
}

// MustScore is Score for words assembled from board tiles, whose letters were
// validated on placement. A bad letter here means the tables and the tile
// alphabet disagree, so it panics.
func (s *Service) MustScore(word string) int {
	total, err := s.Score(word)
	if err != nil {
		panic(fmt.Sprintf("scoring %q: %v", word, err))
	}
	return total
}

// ServiceInterface is the scoring surface used by the rest of the application
type ServiceInterface interface {
	LetterValue(letter rune) (int, error)
	Score(word string) (int, error)
	MustScore(word string) int
}

var _ ServiceInterface = (*Service)(nil)
