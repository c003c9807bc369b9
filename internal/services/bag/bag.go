package bag

import (
	"log/slog"

	"github.com/mcoot/wordtiles-go/internal/dependencies/random"
	"github.com/mcoot/wordtiles-go/internal/services/scoring"
)

// Bag is the supply of undrawn tiles. Draws are weighted by the remaining count
// of each letter. Not safe for concurrent use; each game owns its own bag.
type Bag struct {
	counts    map[rune]int
	remaining int
	random    random.Random
	logger    *slog.Logger
}

// New creates a bag holding the full tile supply
func New(random random.Random, logger *slog.Logger) *Bag {
	return NewWithCounts(scoring.SupplyCounts(), random, logger)
}

// NewWithCounts creates a bag with a custom supply. Letters outside the alphabet are ignored.
func NewWithCounts(counts map[rune]int, random random.Random, logger *slog.Logger) *Bag {
	b := &Bag{
		counts: make(map[rune]int, len(scoring.Alphabet)),
		random: random,
		logger: logger,
	}
	for _, letter := range scoring.Alphabet {
		if n := counts[letter]; n > 0 {
			b.counts[letter] = n
			b.remaining += n
		}
	}
	return b
}

// Remaining returns the number of undrawn tiles
func (b *Bag) Remaining() int {
	return b.remaining
}

// Draw removes up to n tiles. The first vowels draws come from vowels while any
// remain. Fewer than n letters are returned once the bag runs out.
func (b *Bag) Draw(n, vowels int) []rune {
	drawn := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		letter, ok := b.drawOne(i < vowels)
		if !ok && i < vowels {
			letter, ok = b.drawOne(false)
		}
		if !ok {
			b.logger.Warn("tile bag exhausted",
				slog.Int("requested", n),
				slog.Int("drawn", len(drawn)))
			break
		}
		drawn = append(drawn, letter)
	}
	return drawn
}

func (b *Bag) drawOne(vowelOnly bool) (rune, bool) {
	total := 0
	for _, letter := range scoring.Alphabet {
		if vowelOnly && !scoring.IsVowel(letter) {
			continue
		}
		total += b.counts[letter]
	}
	if total == 0 {
		return 0, false
	}

	pick := b.random.Intn(total)
	for _, letter := range scoring.Alphabet {
		if vowelOnly && !scoring.IsVowel(letter) {
			continue
		}
		n := b.counts[letter]
		if pick < n {
			b.counts[letter]--
			b.remaining--
			return letter, true
		}
		pick -= n
	}
	return 0, false
}
