package engine

import "battleship-engine/internal/board"

// GreedyEngine finishes wounded ships first: while any Hit cell exists it
// shoots at an untried 4-neighbour of one, otherwise at random.
type GreedyEngine struct {
	placer
}

func (e *GreedyEngine) Name() string { return Greedy.Name() }

func (e *GreedyEngine) Shot(state *board.State) (board.Pos, error) {
	if c := hitNeighbours(state); len(c) > 0 {
		return pick(e.rng, c)
	}
	return pick(e.rng, state.Positions(board.Empty))
}

var neighbourSteps = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// hitNeighbours collects the Empty neighbours of every Hit cell. A cell next
// to two hits appears twice, which doubles its chance to be picked.
func hitNeighbours(state *board.State) []board.Pos {
	var out []board.Pos
	for _, h := range state.Positions(board.Hit) {
		for _, d := range neighbourSteps {
			p := board.Pos{X: h.X + d[0], Y: h.Y + d[1]}
			if state.InBounds(p) && state.At(p) == board.Empty {
				out = append(out, p)
			}
		}
	}
	return out
}
