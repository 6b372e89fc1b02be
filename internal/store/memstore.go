package store

import (
	"sync"

	"battleship-engine/internal/engine"
	"battleship-engine/internal/random"
)

// Factory builds a fresh engine for one game.
type Factory func(t engine.Type) (engine.Engine, error)

// SeededFactory builds engines around their own generator. A zero seed gives
// every engine a crypto seed; any other seed makes every engine replay the
// same sequence.
func SeededFactory(seed int64, opts engine.Options) Factory {
	return func(t engine.Type) (engine.Engine, error) {
		rng, _, err := random.New(seed)
		if err != nil {
			return nil, err
		}
		return engine.New(t, rng, opts)
	}
}

type key struct {
	gameID string
	typ    engine.Type
}

type entry struct {
	mu  sync.Mutex
	eng engine.Engine
}

// MemoryStore keeps one engine per game and engine type. Engines are not
// reentrant, so each entry is used under its own lock.
type MemoryStore struct {
	mu      sync.RWMutex
	engines map[key]*entry
	factory Factory
}

func NewMemoryStore(factory Factory) *MemoryStore {
	return &MemoryStore{
		engines: map[key]*entry{},
		factory: factory,
	}
}

func (m *MemoryStore) get(gameID string, t engine.Type) (*entry, error) {
	k := key{gameID: gameID, typ: t}

	m.mu.RLock()
	e, ok := m.engines[k]
	m.mu.RUnlock()
	if ok {
		return e, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.engines[k]; ok {
		return e, nil
	}
	eng, err := m.factory(t)
	if err != nil {
		return nil, err
	}
	e = &entry{eng: eng}
	m.engines[k] = e
	return e, nil
}

// With runs fn with the engine of the given type for gameID, creating it on
// first use. Calls for the same game and type are serialised.
func (m *MemoryStore) With(gameID string, t engine.Type, fn func(engine.Engine) error) error {
	e, err := m.get(gameID, t)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.eng)
}

// Delete drops every engine held for gameID.
func (m *MemoryStore) Delete(gameID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.engines {
		if k.gameID == gameID {
			delete(m.engines, k)
		}
	}
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.engines)
}
