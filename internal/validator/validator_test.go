package validator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battleship-engine/internal/board"
)

func ship(x, y, size int, o board.Orientation) board.Ship {
	return board.Ship{Head: board.Pos{X: x, Y: y}, Size: size, Orientation: o}
}

const (
	h = board.Horizontal
	v = board.Vertical
)

func TestShipPlacementLegal(t *testing.T) {
	open := board.Definition{Width: 4, Height: 4, AdjacentShipsAllowed: true}
	strict := board.Definition{Width: 4, Height: 4, AdjacentShipsAllowed: false}

	tests := []struct {
		name  string
		def   board.Definition
		ships []board.Ship
		want  bool
	}{
		{"intersecting ends", open, []board.Ship{ship(1, 1, 2, h), ship(0, 2, 2, v)}, false},
		{"intersecting ships", open, []board.Ship{ship(1, 1, 3, h), ship(0, 2, 3, v)}, false},
		{"duplicated ships", open, []board.Ship{ship(1, 1, 2, h), ship(1, 1, 2, h)}, false},
		{"parallel touching allowed", open, []board.Ship{ship(1, 1, 2, h), ship(2, 1, 2, h)}, true},
		{"correct placement", open, []board.Ship{ship(1, 1, 2, h), ship(2, 2, 2, h)}, true},
		{"end touching side", strict, []board.Ship{ship(1, 1, 2, h), ship(1, 3, 2, v)}, false},
		{"side touching", strict, []board.Ship{ship(0, 0, 2, h), ship(1, 1, 2, v)}, false},
		{"corner", strict, []board.Ship{ship(0, 0, 2, h), ship(1, 2, 2, v)}, false},
		{"parallel touching", strict, []board.Ship{ship(1, 1, 2, h), ship(2, 1, 2, h)}, false},
		{"ends touching", strict, []board.Ship{ship(0, 0, 2, h), ship(0, 2, 2, h)}, false},
		{"ends touching allowed", open, []board.Ship{ship(0, 0, 2, h), ship(0, 2, 2, h)}, true},
		{"separated", strict, []board.Ship{ship(0, 0, 2, h), ship(3, 0, 2, h)}, true},
		{"off board", open, []board.Ship{ship(3, 3, 2, h)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShipPlacementLegal(tt.def, tt.ships))
		})
	}
}

func TestShipPlacementLegalBufferOrder(t *testing.T) {
	def := board.Definition{Width: 6, Height: 6}

	// diagonal to the first ship's tail
	assert.False(t, ShipPlacementLegal(def, []board.Ship{ship(0, 0, 2, h), ship(1, 2, 1, h)}))
	// one free column between the ships
	assert.True(t, ShipPlacementLegal(def, []board.Ship{ship(0, 0, 2, h), ship(1, 3, 1, h)}))
}

func TestShipPlacementLegalNonSquareBoard(t *testing.T) {
	def := board.Definition{Width: 7, Height: 3}
	ships := []board.Ship{ship(0, 5, 2, h), ship(2, 0, 3, h)}
	require.NotPanics(t, func() { ShipPlacementLegal(def, ships) })
	assert.True(t, ShipPlacementLegal(def, ships))

	tall := board.Definition{Width: 2, Height: 6}
	assert.True(t, ShipPlacementLegal(tall, []board.Ship{ship(0, 1, 2, v), ship(4, 1, 2, v)}))
	assert.False(t, ShipPlacementLegal(tall, []board.Ship{ship(0, 1, 2, v), ship(2, 0, 2, v)}))
}

func TestShipsOnBoard(t *testing.T) {
	tests := []struct {
		name  string
		def   board.Definition
		ships []board.Ship
		want  bool
	}{
		{"inside", board.Definition{Width: 5, Height: 5}, []board.Ship{ship(1, 1, 2, h), ship(0, 2, 2, v)}, true},
		{"partially outside", board.Definition{Width: 4, Height: 4}, []board.Ship{ship(3, 2, 3, h)}, false},
		{"completely outside", board.Definition{Width: 3, Height: 3}, []board.Ship{ship(3, 1, 2, v)}, false},
		{"cross axis outside", board.Definition{Width: 3, Height: 3}, []board.Ship{ship(5, 0, 2, h)}, false},
		{"negative head", board.Definition{Width: 3, Height: 3}, []board.Ship{ship(-1, 0, 2, v)}, false},
		{"last cell on edge", board.Definition{Width: 3, Height: 3}, []board.Ship{ship(0, 0, 3, h), ship(0, 2, 3, v)}, true},
		{"huge horizontal size", board.Definition{Width: 10, Height: 10}, []board.Ship{ship(0, 2, math.MaxInt, h)}, false},
		{"huge vertical size", board.Definition{Width: 10, Height: 10}, []board.Ship{ship(2, 0, math.MaxInt, v)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShipsOnBoard(tt.def, tt.ships))
		})
	}
}

func TestAllShipsPlaced(t *testing.T) {
	ships := []board.Ship{ship(1, 1, 2, h), ship(0, 2, 2, v)}
	assert.True(t, AllShipsPlaced(ships, []int{2, 2}))
	assert.False(t, AllShipsPlaced(ships, []int{2, 3}))

	three := []board.Ship{ship(1, 1, 2, h), ship(0, 2, 3, v), ship(2, 2, 3, v)}
	assert.False(t, AllShipsPlaced(three, []int{2, 2, 3}))
	assert.True(t, AllShipsPlaced(three, []int{3, 2, 3}))
}

func TestValidateFleet(t *testing.T) {
	def := board.Definition{Width: 4, Height: 4, Sizes: []int{2, 2}}

	require.NoError(t, ValidateFleet(def, []board.Ship{ship(0, 0, 2, h), ship(3, 0, 2, h)}))
	assert.ErrorIs(t, ValidateFleet(def, []board.Ship{ship(0, 0, 2, h)}), ErrIncompleteFleet)
	assert.ErrorIs(t, ValidateFleet(def, []board.Ship{ship(0, 0, 2, h), ship(3, 3, 2, h)}), ErrShipOffBoard)
	assert.ErrorIs(t, ValidateFleet(def, []board.Ship{ship(0, 0, 2, h), ship(1, 0, 2, h)}), ErrIllegalPlacement)
}
