// Package resolver adjudicates shots against a hidden fleet and advances the
// public board state.
package resolver

import (
	"slices"

	"battleship-engine/internal/board"
)

type Outcome int

const (
	Illegal Outcome = iota
	Miss
	Hit
	Sunk
)

func (o Outcome) String() string {
	switch o {
	case Miss:
		return "Miss"
	case Hit:
		return "Hit"
	case Sunk:
		return "Sunk"
	default:
		return "Illegal"
	}
}

// Result is the adjudication of one shot. Ship is set for Hit and Sunk.
type Result struct {
	Outcome Outcome    `json:"outcome"`
	Ship    board.Ship `json:"ship"`
}

// HitResult returns the first ship of the fleet covering pos.
func HitResult(fleet []board.Ship, pos board.Pos) (board.Ship, bool) {
	for _, s := range fleet {
		if s.Contains(pos) {
			return s, true
		}
	}
	return board.Ship{}, false
}

// MoveResult classifies a shot at pos. Shots outside the board or at a cell
// that is not Empty are Illegal whatever the fleet holds.
func MoveResult(state *board.State, fleet []board.Ship, pos board.Pos) Result {
	if !state.InBounds(pos) || state.At(pos) != board.Empty {
		return Result{Outcome: Illegal}
	}
	s, ok := HitResult(fleet, pos)
	if !ok {
		return Result{Outcome: Miss}
	}
	for _, c := range s.Cells() {
		if c != pos && (!state.InBounds(c) || state.At(c) != board.Hit) {
			return Result{Outcome: Hit, Ship: s}
		}
	}
	return Result{Outcome: Sunk, Ship: s}
}

// Apply writes the result of a shot at pos into state. A sunk ship turns
// all of its cells Sunk and leaves the remaining-ships multiset.
func Apply(state *board.State, pos board.Pos, r Result) {
	switch r.Outcome {
	case Miss:
		state.Set(pos, board.Miss)
	case Hit:
		state.Set(pos, board.Hit)
	case Sunk:
		for _, c := range r.Ship.Cells() {
			if state.InBounds(c) {
				state.Set(c, board.Sunk)
			}
		}
		if i := slices.Index(state.RemainingShips, r.Ship.Size); i >= 0 {
			state.RemainingShips = slices.Delete(state.RemainingShips, i, i+1)
		}
	}
}

// Shoot adjudicates and applies a shot in one step.
func Shoot(state *board.State, fleet []board.Ship, pos board.Pos) Result {
	r := MoveResult(state, fleet, pos)
	Apply(state, pos, r)
	return r
}

// IsWin reports whether every ship cell of the ruleset has been sunk.
func IsWin(state *board.State) bool {
	return state.Definition.TotalShipCells() == state.Count(board.Sunk)
}
