package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFixedSeedIsReproducible(t *testing.T) {
	a, seed, err := New(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), seed)

	b, _, err := New(42)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestNewZeroDrawsSeed(t *testing.T) {
	rng, seed, err := New(0)
	require.NoError(t, err)
	require.NotNil(t, rng)
	// 0 is a possible draw but one in 2^64.
	assert.NotZero(t, seed)
}
