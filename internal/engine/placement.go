package engine

import (
	"fmt"

	"battleship-engine/internal/board"
	"battleship-engine/internal/validator"
)

// placer draws whole fleets at random until one is legal. Every engine
// places ships this way.
type placer struct {
	rng         Source
	maxAttempts int
}

func (p placer) PlaceShips(def board.Definition) ([]board.Ship, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	ships := make([]board.Ship, len(def.Sizes))
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		for i, size := range def.Sizes {
			ships[i] = board.Ship{
				Head:        board.Pos{X: p.rng.Intn(def.Height), Y: p.rng.Intn(def.Width)},
				Size:        size,
				Orientation: board.Orientation(p.rng.Intn(2)),
			}
		}
		if validator.ShipsOnBoard(def, ships) && validator.ShipPlacementLegal(def, ships) {
			return ships, nil
		}
	}
	return nil, fmt.Errorf("%w: %d attempts on %dx%d with sizes %v",
		ErrUnsatisfiablePlacement, p.maxAttempts, def.Width, def.Height, def.Sizes)
}
