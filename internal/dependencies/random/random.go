package random

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"
)

// Random is the source of tile draws, rack shuffles and game IDs.
// Implementations must be safe for concurrent use; every game shares one.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// SystemRandom draws tiles from the runtime's generator and builds game IDs
// from crypto/rand, since an ID is all it takes to play someone's game.
type SystemRandom struct{}

// New creates a new SystemRandom
func New() *SystemRandom {
	return &SystemRandom{}
}

// Intn returns a random int in [0, n), or 0 when n <= 0
func (r *SystemRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return mathrand.IntN(n)
}

// String generates a random string of the given length from the given alphabet
func (r *SystemRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	limit := big.NewInt(int64(len(alphabet)))
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			panic(err)
		}
		result[i] = alphabet[n.Int64()]
	}
	return string(result)
}
