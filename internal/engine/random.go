package engine

import "battleship-engine/internal/board"

// RandomEngine shoots at any untried cell.
type RandomEngine struct {
	placer
}

func (e *RandomEngine) Name() string { return Random.Name() }

func (e *RandomEngine) Shot(state *board.State) (board.Pos, error) {
	return pick(e.rng, state.Positions(board.Empty))
}
