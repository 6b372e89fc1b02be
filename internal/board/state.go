package board

// State is the public board of one player as seen by the attacker.
// Board is indexed Board[x][y] and always sized Height x Width.
type State struct {
	Board          [][]Field  `json:"board"`
	RemainingShips []int      `json:"remainingShips"`
	Definition     Definition `json:"definition"`
}

// NewState returns an all-Empty board with every ship still afloat.
func NewState(def Definition) *State {
	b := make([][]Field, def.Height)
	for x := range b {
		b[x] = make([]Field, def.Width)
	}
	return &State{
		Board:          b,
		RemainingShips: append([]int(nil), def.Sizes...),
		Definition:     def,
	}
}

func (s *State) Height() int { return len(s.Board) }

func (s *State) Width() int {
	if len(s.Board) == 0 {
		return 0
	}
	return len(s.Board[0])
}

func (s *State) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < s.Height() && p.Y >= 0 && p.Y < s.Width()
}

func (s *State) At(p Pos) Field { return s.Board[p.X][p.Y] }

func (s *State) Set(p Pos, f Field) { s.Board[p.X][p.Y] = f }

// Count returns how many cells hold f.
func (s *State) Count(f Field) int {
	n := 0
	for _, row := range s.Board {
		for _, v := range row {
			if v == f {
				n++
			}
		}
	}
	return n
}

// Positions lists the cells holding f in row-major order.
func (s *State) Positions(f Field) []Pos {
	var out []Pos
	for x, row := range s.Board {
		for y, v := range row {
			if v == f {
				out = append(out, Pos{X: x, Y: y})
			}
		}
	}
	return out
}

func (s *State) Clone() *State {
	b := make([][]Field, len(s.Board))
	for x, row := range s.Board {
		b[x] = append([]Field(nil), row...)
	}
	return &State{
		Board:          b,
		RemainingShips: append([]int(nil), s.RemainingShips...),
		Definition:     s.Definition,
	}
}
