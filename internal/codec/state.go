// Package codec translates between the wire formats spoken by the game
// services and the in-memory board model.
package codec

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"battleship-engine/internal/board"
)

const rowSeparator = "|"

var ErrMalformedBoard = errors.New("malformed board state")

func decodeField(c rune) board.Field {
	switch c {
	case '?':
		return board.Empty
	case 'x':
		return board.Sunk
	case '.':
		return board.Hit
	default:
		return board.Miss
	}
}

func encodeField(f board.Field) byte {
	switch f {
	case board.Empty:
		return '?'
	case board.Sunk:
		return 'x'
	case board.Hit:
		return '.'
	default:
		return 'o'
	}
}

// DecodeState parses a board string such as "??x|o.?" for def. The row
// count and row length must match the definition. RemainingShips is derived
// from the Sunk cells.
func DecodeState(s string, def board.Definition) (*board.State, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrMalformedBoard)
	}
	rows := strings.Split(s, rowSeparator)
	if len(rows) != def.Height {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrMalformedBoard, len(rows), def.Height)
	}
	state := board.NewState(def)
	for x, row := range rows {
		cells := []rune(row)
		if len(cells) != def.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, x, len(cells), def.Width)
		}
		for y, c := range cells {
			state.Board[x][y] = decodeField(c)
		}
	}
	state.RemainingShips = RemainingShips(state)
	return state, nil
}

func EncodeState(state *board.State) string {
	var sb strings.Builder
	for x, row := range state.Board {
		if x > 0 {
			sb.WriteString(rowSeparator)
		}
		for _, f := range row {
			sb.WriteByte(encodeField(f))
		}
	}
	return sb.String()
}

// RemainingShips removes from the definition sizes the length of every
// maximal straight run of Sunk cells. Two wrecks meeting at the first cell
// of both runs share that cell; it is given to whichever wreck leaves both
// sizes in the multiset. Other touching layouts are ambiguous and the result
// is best-effort there.
func RemainingShips(state *board.State) []int {
	remaining := append([]int(nil), state.Definition.Sizes...)
	for _, p := range state.Positions(board.Sunk) {
		horizontal := sunk(state, board.Pos{X: p.X, Y: p.Y + 1})
		vertical := sunk(state, board.Pos{X: p.X + 1, Y: p.Y})
		startsH := !sunk(state, board.Pos{X: p.X, Y: p.Y - 1})
		startsV := !sunk(state, board.Pos{X: p.X - 1, Y: p.Y})

		h, v := 0, 0
		if horizontal && startsH {
			h = runLength(state, p, 0, 1)
		}
		if vertical && startsV {
			v = runLength(state, p, 1, 0)
		}
		switch {
		case h > 0 && v > 0:
			rest, ok := take(remaining, h, v-1)
			if !ok {
				rest, _ = take(remaining, h-1, v)
			}
			remaining = rest
		case h > 0:
			remaining, _ = take(remaining, h)
		case v > 0:
			remaining, _ = take(remaining, v)
		case !horizontal && !vertical && startsH && startsV:
			remaining, _ = take(remaining, 1)
		}
	}
	return remaining
}

// take removes one occurrence of each size that is present and reports
// whether all of them were.
func take(sizes []int, remove ...int) ([]int, bool) {
	out := append([]int(nil), sizes...)
	all := true
	for _, n := range remove {
		i := slices.Index(out, n)
		if i < 0 {
			all = false
			continue
		}
		out = slices.Delete(out, i, i+1)
	}
	return out, all
}

func sunk(state *board.State, p board.Pos) bool {
	return state.InBounds(p) && state.At(p) == board.Sunk
}

func runLength(state *board.State, p board.Pos, dx, dy int) int {
	n := 0
	for sunk(state, p) {
		n++
		p = board.Pos{X: p.X + dx, Y: p.Y + dy}
	}
	return n
}
