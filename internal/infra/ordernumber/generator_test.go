package ordernumber

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Next(t *testing.T) {
	gen := New()

	seen := make(map[string]struct{}, 1000)
	prev := ""
	for range 1000 {
		n, err := gen.Next()
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(n, "ORD-"))
		assert.Len(t, n, len("ORD-")+26)
		assert.NotContains(t, n[4:], "I")
		assert.NotContains(t, n[4:], "O")

		_, dup := seen[n]
		assert.False(t, dup, "duplicate %s", n)
		seen[n] = struct{}{}

		assert.GreaterOrEqual(t, n, prev)
		prev = n
	}
}

func TestFormat_Deterministic(t *testing.T) {
	assert.Equal(t, "ORD-00000000000000000000000000", Format(uuid.Nil))
	assert.Equal(t, "ORD-ZZZZZZZZZZZZZZZZZZZZZZZZZW", Format(uuid.Max))
}

func TestGenerator_PropagatesError(t *testing.T) {
	gen := &Generator{newID: func() (uuid.UUID, error) { return uuid.Nil, assert.AnError }}

	_, err := gen.Next()
	assert.ErrorIs(t, err, assert.AnError)
}
