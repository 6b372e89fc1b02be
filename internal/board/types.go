package board

import (
	"errors"
	"fmt"
)

type Pos struct {
	X int `json:"x"` // row, 0..Height
	Y int `json:"y"` // column, 0..Width
}

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// Ship occupies Size consecutive cells starting at Head. Horizontal ships
// extend along Y, vertical ships along X.
type Ship struct {
	Head        Pos         `json:"head"`
	Size        int         `json:"size"`
	Orientation Orientation `json:"orientation"`
}

// Cell returns the i-th cell of the ship counted from the head.
func (s Ship) Cell(i int) Pos {
	if s.Orientation == Vertical {
		return Pos{X: s.Head.X + i, Y: s.Head.Y}
	}
	return Pos{X: s.Head.X, Y: s.Head.Y + i}
}

// Cells lists every occupied cell. A ship without a positive size is a
// caller bug, not a game situation.
func (s Ship) Cells() []Pos {
	if s.Size < 1 {
		panic(fmt.Sprintf("board: ship at %v has non-positive size %d", s.Head, s.Size))
	}
	out := make([]Pos, s.Size)
	for i := range out {
		out[i] = s.Cell(i)
	}
	return out
}

func (s Ship) Contains(p Pos) bool {
	for _, c := range s.Cells() {
		if c == p {
			return true
		}
	}
	return false
}

// Definition is one ruleset instance. It is never mutated after creation.
type Definition struct {
	Width                int   `json:"width"`
	Height               int   `json:"height"`
	AdjacentShipsAllowed bool  `json:"adjacentShipsAllowed"`
	Sizes                []int `json:"sizes"`
}

var ErrInvalidDefinition = errors.New("invalid board definition")

func (d Definition) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidDefinition, d.Width, d.Height)
	}
	if len(d.Sizes) == 0 {
		return fmt.Errorf("%w: no ships", ErrInvalidDefinition)
	}
	for _, s := range d.Sizes {
		if s < 1 {
			return fmt.Errorf("%w: ship size %d", ErrInvalidDefinition, s)
		}
	}
	return nil
}

// TotalShipCells is the number of Sunk cells that ends the game.
func (d Definition) TotalShipCells() int {
	total := 0
	for _, s := range d.Sizes {
		total += s
	}
	return total
}

// Field is the attacker-visible state of one cell.
type Field int

const (
	Empty Field = iota
	Hit
	Sunk
	Miss
)

func (f Field) String() string {
	switch f {
	case Hit:
		return "Hit"
	case Sunk:
		return "Sunk"
	case Miss:
		return "Miss"
	default:
		return "Empty"
	}
}
