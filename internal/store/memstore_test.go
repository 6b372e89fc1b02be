package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battleship-engine/internal/board"
	"battleship-engine/internal/engine"
)

func TestWithReusesEnginePerGame(t *testing.T) {
	s := NewMemoryStore(SeededFactory(1, engine.DefaultOptions()))

	var first, second, other engine.Engine
	require.NoError(t, s.With("1", engine.Greedy, func(e engine.Engine) error { first = e; return nil }))
	require.NoError(t, s.With("1", engine.Greedy, func(e engine.Engine) error { second = e; return nil }))
	require.NoError(t, s.With("2", engine.Greedy, func(e engine.Engine) error { other = e; return nil }))

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, s.Len())
}

func TestDeleteDropsAllTypesOfGame(t *testing.T) {
	s := NewMemoryStore(SeededFactory(1, engine.DefaultOptions()))
	noop := func(engine.Engine) error { return nil }
	for _, typ := range engine.Types() {
		require.NoError(t, s.With("7", typ, noop))
	}
	require.NoError(t, s.With("8", engine.Random, noop))

	s.Delete("7")
	assert.Equal(t, 1, s.Len())
}

func TestWithPropagatesErrors(t *testing.T) {
	s := NewMemoryStore(SeededFactory(1, engine.DefaultOptions()))
	err := s.With("1", engine.Type("minimax"), func(engine.Engine) error { return nil })
	assert.ErrorIs(t, err, engine.ErrUnknownType)
	assert.Zero(t, s.Len())

	boom := errors.New("boom")
	err = s.With("1", engine.Random, func(engine.Engine) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestWithIsSafeForConcurrentGames(t *testing.T) {
	s := NewMemoryStore(SeededFactory(0, engine.DefaultOptions()))
	def := board.Definition{Width: 10, Height: 10, AdjacentShipsAllowed: true, Sizes: []int{2, 3, 3, 4, 5}}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(game string) {
			defer wg.Done()
			state := board.NewState(def)
			for j := 0; j < 20; j++ {
				err := s.With(game, engine.Probability, func(e engine.Engine) error {
					p, err := e.Shot(state)
					if err != nil {
						return err
					}
					state.Set(p, board.Miss)
					return nil
				})
				assert.NoError(t, err)
			}
		}([]string{"a", "b"}[i%2])
	}
	wg.Wait()
	assert.Equal(t, 2, s.Len())
}
