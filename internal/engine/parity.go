package engine

import (
	"slices"

	"battleship-engine/internal/board"
)

// ParityEngine hunts like GreedyEngine but only explores cells on a lattice
// spaced by the smallest ship still afloat.
type ParityEngine struct {
	placer
}

func (e *ParityEngine) Name() string { return Parity.Name() }

func (e *ParityEngine) Shot(state *board.State) (board.Pos, error) {
	if c := hitNeighbours(state); len(c) > 0 {
		return pick(e.rng, c)
	}
	empty := state.Positions(board.Empty)
	if lattice := parityCells(state, empty); len(lattice) > 0 {
		return pick(e.rng, lattice)
	}
	return pick(e.rng, empty)
}

// parityCells keeps the cells whose linear index is a multiple of the
// smallest remaining ship size.
func parityCells(state *board.State, empty []board.Pos) []board.Pos {
	step := smallestShip(state)
	width := state.Width()
	var out []board.Pos
	for _, p := range empty {
		if (p.X*width+p.Y)%step == 0 {
			out = append(out, p)
		}
	}
	return out
}

func smallestShip(state *board.State) int {
	sizes := state.RemainingShips
	if len(sizes) == 0 {
		sizes = state.Definition.Sizes
	}
	if len(sizes) == 0 {
		return 1
	}
	return max(slices.Min(sizes), 1)
}
