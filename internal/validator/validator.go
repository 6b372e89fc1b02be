// Package validator checks whether a fleet layout is legal for a board
// definition. Every function is pure.
package validator

import (
	"errors"
	"fmt"
	"slices"

	"battleship-engine/internal/board"
)

var (
	ErrShipOffBoard     = errors.New("ship does not fit on the board")
	ErrIllegalPlacement = errors.New("ships overlap or touch")
	ErrIncompleteFleet  = errors.New("fleet does not match the required ship sizes")
)

// ShipsOnBoard reports whether every ship lies fully inside the board.
func ShipsOnBoard(def board.Definition, ships []board.Ship) bool {
	for _, s := range ships {
		if s.Size < 1 || s.Head.X < 0 || s.Head.Y < 0 {
			return false
		}
		// Compared by subtraction so a huge size cannot wrap around.
		switch s.Orientation {
		case board.Horizontal:
			if s.Head.X >= def.Height || s.Head.Y >= def.Width || s.Size > def.Width-s.Head.Y {
				return false
			}
		case board.Vertical:
			if s.Head.Y >= def.Width || s.Head.X >= def.Height || s.Size > def.Height-s.Head.X {
				return false
			}
		}
	}
	return true
}

// ShipPlacementLegal walks the ships in order over one occupancy grid and
// fails on the first own cell that is already marked. When adjacency is
// disallowed each ship also marks buffer cells: the cell before its head and
// after its tail along its axis, and the cross-axis neighbours of those and
// of every own cell. Diagonals outside that pattern are not marked.
func ShipPlacementLegal(def board.Definition, ships []board.Ship) bool {
	if !ShipsOnBoard(def, ships) {
		return false
	}
	g := newGrid(def)
	buffered := !def.AdjacentShipsAllowed

	for _, s := range ships {
		if buffered && g.axisStart(s) > 0 {
			g.markBuffer(s, s.Cell(-1))
		}
		for _, c := range s.Cells() {
			if g.marked[c.X][c.Y] {
				return false
			}
			g.marked[c.X][c.Y] = true
			if buffered {
				g.markCross(s.Orientation, c)
			}
		}
		if buffered && g.axisStart(s)+s.Size < g.axisLen(s) {
			g.markBuffer(s, s.Cell(s.Size))
		}
	}
	return true
}

// AllShipsPlaced reports whether the ship sizes equal the required sizes as
// multisets.
func AllShipsPlaced(ships []board.Ship, sizes []int) bool {
	if len(ships) != len(sizes) {
		return false
	}
	got := make([]int, len(ships))
	for i, s := range ships {
		got[i] = s.Size
	}
	want := append([]int(nil), sizes...)
	slices.Sort(got)
	slices.Sort(want)
	return slices.Equal(got, want)
}

// ValidateFleet runs all checks and reports the first failing one.
func ValidateFleet(def board.Definition, ships []board.Ship) error {
	if !AllShipsPlaced(ships, def.Sizes) {
		return fmt.Errorf("%w: want sizes %v", ErrIncompleteFleet, def.Sizes)
	}
	if !ShipsOnBoard(def, ships) {
		return ErrShipOffBoard
	}
	if !ShipPlacementLegal(def, ships) {
		return ErrIllegalPlacement
	}
	return nil
}

type grid struct {
	def    board.Definition
	marked [][]bool
}

func newGrid(def board.Definition) *grid {
	m := make([][]bool, def.Height)
	for x := range m {
		m[x] = make([]bool, def.Width)
	}
	return &grid{def: def, marked: m}
}

func (g *grid) axisStart(s board.Ship) int {
	if s.Orientation == board.Vertical {
		return s.Head.X
	}
	return s.Head.Y
}

func (g *grid) axisLen(s board.Ship) int {
	if s.Orientation == board.Vertical {
		return g.def.Height
	}
	return g.def.Width
}

func (g *grid) markBuffer(s board.Ship, p board.Pos) {
	g.marked[p.X][p.Y] = true
	g.markCross(s.Orientation, p)
}

// markCross marks the two neighbours of p across the ship's axis, clamped to
// the board edge.
func (g *grid) markCross(o board.Orientation, p board.Pos) {
	if o == board.Vertical {
		g.marked[p.X][max(p.Y-1, 0)] = true
		g.marked[p.X][min(p.Y+1, g.def.Width-1)] = true
		return
	}
	g.marked[max(p.X-1, 0)][p.Y] = true
	g.marked[min(p.X+1, g.def.Height-1)][p.Y] = true
}
