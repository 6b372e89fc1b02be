package engine

import "battleship-engine/internal/board"

// ProbabilityEngine shoots at the cell covered by the most placements of
// the ships still afloat.
type ProbabilityEngine struct {
	placer
	weights Weights
}

func (e *ProbabilityEngine) Name() string { return Probability.Name() }

func (e *ProbabilityEngine) Shot(state *board.State) (board.Pos, error) {
	density := Density(state, e.weights)

	best := -1
	var candidates []board.Pos
	for _, p := range state.Positions(board.Empty) {
		switch d := density[p.X][p.Y]; {
		case d > best:
			best = d
			candidates = append(candidates[:0], p)
		case d == best:
			candidates = append(candidates, p)
		}
	}
	return pick(e.rng, candidates)
}

type cellKind int

const (
	free cellKind = iota
	bonus
	obstacle
)

func classify(f board.Field) cellKind {
	switch f {
	case board.Empty:
		return free
	case board.Hit:
		return bonus
	default:
		return obstacle
	}
}

// Density counts, for every cell, the placements of each remaining ship
// that cover it. A run crossing an Obstacle is skipped. A run through at
// least one unsunk hit adds w.Bonus to its free cells, any other run adds
// w.Free. Hit cells never accumulate weight since they cannot be shot again.
//
// One hit is enough for the bonus. A run made only of hits has no free cell
// left to receive weight, so requiring every cell to be a hit would turn the
// bonus off entirely.
func Density(state *board.State, w Weights) [][]int {
	h, wd := state.Height(), state.Width()
	kinds := make([][]cellKind, h)
	density := make([][]int, h)
	for x := range kinds {
		kinds[x] = make([]cellKind, wd)
		density[x] = make([]int, wd)
		for y := range kinds[x] {
			kinds[x][y] = classify(state.Board[x][y])
		}
	}

	for _, size := range state.RemainingShips {
		if size < 1 {
			continue
		}
		for x := 0; x < h; x++ {
			for y := 0; y < wd; y++ {
				for _, o := range []board.Orientation{board.Horizontal, board.Vertical} {
					addRun(density, kinds, board.Ship{Head: board.Pos{X: x, Y: y}, Size: size, Orientation: o}, w)
				}
			}
		}
	}
	return density
}

func addRun(density [][]int, kinds [][]cellKind, run board.Ship, w Weights) {
	room := len(kinds[0]) - run.Head.Y
	if run.Orientation == board.Vertical {
		room = len(kinds) - run.Head.X
	}
	if run.Size > room {
		return
	}
	weight := w.Free
	for i := 0; i < run.Size; i++ {
		c := run.Cell(i)
		switch kinds[c.X][c.Y] {
		case obstacle:
			return
		case bonus:
			weight = w.Bonus
		}
	}
	for i := 0; i < run.Size; i++ {
		c := run.Cell(i)
		if kinds[c.X][c.Y] == free {
			density[c.X][c.Y] += weight
		}
	}
}
