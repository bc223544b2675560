package id

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsUniqueAndOrdered(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	src := NewSource(func() time.Time { return fixed })

	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 1000; i++ {
		v := src.New()
		assert.False(t, seen[v], "duplicate id %s", v)
		seen[v] = true
		assert.Greater(t, v, prev)
		prev = v
	}
}

func TestNewEncodesClock(t *testing.T) {
	t.Parallel()

	at := time.Date(2023, 11, 2, 8, 30, 0, 0, time.UTC)
	src := NewSource(func() time.Time { return at })

	parsed, err := ulid.Parse(src.New())
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(at), parsed.Time())
}

func TestPackageNew(t *testing.T) {
	t.Parallel()

	a, b := New(), New()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}
