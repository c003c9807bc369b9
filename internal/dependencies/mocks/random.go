package mocks

import (
	"sync"

	"github.com/mcoot/wordtiles-go/internal/dependencies/random"
)

// MockRandom replays queued results. With nothing queued, Intn returns 0 (so
// a bag always deals its first letter) and String returns "".
type MockRandom struct {
	mu      sync.Mutex
	ints    []int
	strings []string
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result reduced into [0, n)
func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.ints) == 0 || n <= 0 {
		return 0
	}
	result := r.ints[0]
	r.ints = r.ints[1:]
	return result % n
}

// String returns the next queued result
func (r *MockRandom) String(length int, alphabet string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.strings) == 0 {
		return ""
	}
	result := r.strings[0]
	r.strings = r.strings[1:]
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ints = append(r.ints, values...)
}

// QueueString adds values to the String result queue, e.g. game IDs
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strings = append(r.strings, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ints = nil
	r.strings = nil
}
