package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"battleship-engine/internal/board"
)

var ErrMalformedShips = errors.New("malformed ship list")

// ShipMsg is the wire shape of a ship shared with the game services.
type ShipMsg struct {
	HeadX       int    `json:"headX"`
	HeadY       int    `json:"headY"`
	Size        int    `json:"size"`
	Orientation string `json:"orientation"`
}

func parseOrientation(s string) (board.Orientation, error) {
	switch s {
	case "Horizontal", "horizontal", "HORIZONTAL":
		return board.Horizontal, nil
	case "Vertical", "vertical", "VERTICAL":
		return board.Vertical, nil
	}
	return 0, fmt.Errorf("%w: orientation %q", ErrMalformedShips, s)
}

// ToShips converts wire ships into board ships. Sizes below one are
// rejected here so the core never sees them.
func ToShips(msgs []ShipMsg) ([]board.Ship, error) {
	ships := make([]board.Ship, 0, len(msgs))
	for i, m := range msgs {
		o, err := parseOrientation(m.Orientation)
		if err != nil {
			return nil, err
		}
		if m.Size < 1 {
			return nil, fmt.Errorf("%w: ship %d has size %d", ErrMalformedShips, i, m.Size)
		}
		ships = append(ships, board.Ship{
			Head:        board.Pos{X: m.HeadX, Y: m.HeadY},
			Size:        m.Size,
			Orientation: o,
		})
	}
	return ships, nil
}

// FitShips rejects ships longer than the longest side of def. Such sizes
// can only come from a corrupt message.
func FitShips(def board.Definition, ships []board.Ship) error {
	longest := max(def.Width, def.Height)
	for i, s := range ships {
		if s.Size > longest {
			return fmt.Errorf("%w: ship %d has size %d on a %dx%d board", ErrMalformedShips, i, s.Size, def.Width, def.Height)
		}
	}
	return nil
}

func FromShips(ships []board.Ship) []ShipMsg {
	out := make([]ShipMsg, len(ships))
	for i, s := range ships {
		out[i] = ShipMsg{
			HeadX:       s.Head.X,
			HeadY:       s.Head.Y,
			Size:        s.Size,
			Orientation: s.Orientation.String(),
		}
	}
	return out
}

// DecodeShips parses the JSON-encoded ship list carried as a string field
// in move requests.
func DecodeShips(raw string) ([]board.Ship, error) {
	var msgs []ShipMsg
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedShips, err)
	}
	return ToShips(msgs)
}

func EncodeShips(ships []board.Ship) (string, error) {
	b, err := json.Marshal(FromShips(ships))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
