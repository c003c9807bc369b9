package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntnStaysInRange(t *testing.T) {
	r := New()

	assert.Zero(t, r.Intn(0))
	assert.Zero(t, r.Intn(-3))
	assert.Zero(t, r.Intn(1))
	for i := 0; i < 200; i++ {
		n := r.Intn(7)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 7)
	}
}

func TestStringUsesAlphabet(t *testing.T) {
	r := New()

	s := r.String(12, "XYZ")
	assert.Len(t, s, 12)
	assert.Empty(t, strings.Trim(s, "XYZ"))

	assert.Empty(t, r.String(0, "XYZ"))
	assert.Empty(t, r.String(5, ""))
}
