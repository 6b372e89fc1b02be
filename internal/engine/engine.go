// Package engine holds the automated players: each one places a fleet and
// picks the next shot from the public board state.
//
// Engines own their random source and are not safe for concurrent use.
// Give each game its own instance.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"battleship-engine/internal/board"
)

var (
	ErrNoMovesLeft            = errors.New("no legal moves available")
	ErrUnsatisfiablePlacement = errors.New("ships cannot be placed on the board")
	ErrUnknownType            = errors.New("unknown engine type")
)

type Engine interface {
	Name() string
	PlaceShips(def board.Definition) ([]board.Ship, error)
	Shot(state *board.State) (board.Pos, error)
}

// Source is the random source an engine draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Weights tune the probability density map.
type Weights struct {
	Free  int `json:"free"`  // contribution of a run over unknown cells
	Bonus int `json:"bonus"` // contribution of a run through unsunk hits
}

type Options struct {
	MaxPlacementAttempts int
	Weights              Weights
}

const DefaultMaxPlacementAttempts = 1000000

func DefaultOptions() Options {
	return Options{
		MaxPlacementAttempts: DefaultMaxPlacementAttempts,
		Weights:              Weights{Free: 1, Bonus: 20},
	}
}

type Type string

const (
	Random      Type = "random"
	Greedy      Type = "greedy"
	Parity      Type = "parity"
	Probability Type = "probability"
)

func Types() []Type { return []Type{Random, Greedy, Parity, Probability} }

var names = map[Type]string{
	Random:      "Random Engine",
	Greedy:      "Greedy Engine",
	Parity:      "Parity Engine",
	Probability: "Probability Density Engine",
}

// Name is the display name of the engine type, empty for unknown types.
func (t Type) Name() string { return names[t] }

func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Types() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// New builds an engine of the given type around rng.
func New(t Type, rng Source, opts Options) (Engine, error) {
	if opts.MaxPlacementAttempts <= 0 {
		opts.MaxPlacementAttempts = DefaultMaxPlacementAttempts
	}
	p := placer{rng: rng, maxAttempts: opts.MaxPlacementAttempts}
	switch t {
	case Random:
		return &RandomEngine{placer: p}, nil
	case Greedy:
		return &GreedyEngine{placer: p}, nil
	case Parity:
		return &ParityEngine{placer: p}, nil
	case Probability:
		w := opts.Weights
		if w.Free == 0 && w.Bonus == 0 {
			w = DefaultOptions().Weights
		}
		return &ProbabilityEngine{placer: p, weights: w}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
}

// pick returns a uniformly chosen candidate.
func pick(rng Source, candidates []board.Pos) (board.Pos, error) {
	if len(candidates) == 0 {
		return board.Pos{}, ErrNoMovesLeft
	}
	return candidates[rng.Intn(len(candidates))], nil
}
