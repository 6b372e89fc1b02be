package codec

import (
	"errors"
	"fmt"
	"strings"

	"battleship-engine/internal/board"
)

var ErrUnknownRuleset = errors.New("unknown ruleset")

type Ruleset string

const (
	Classic Ruleset = "Classic"
	Polish  Ruleset = "Polish"
)

var rulesets = map[Ruleset]board.Definition{
	Classic: {Width: 10, Height: 10, AdjacentShipsAllowed: true, Sizes: []int{2, 3, 3, 4, 5}},
	Polish:  {Width: 10, Height: 10, AdjacentShipsAllowed: false, Sizes: []int{1, 1, 1, 1, 2, 2, 2, 3, 3, 4}},
}

// ParseRuleset accepts "Classic", "CLASSIC", "classic" and so on.
func ParseRuleset(s string) (Ruleset, error) {
	for r := range rulesets {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRuleset, s)
}

// Definition returns a fresh copy so callers never share the sizes slice.
func Definition(r Ruleset) (board.Definition, error) {
	def, ok := rulesets[r]
	if !ok {
		return board.Definition{}, fmt.Errorf("%w: %q", ErrUnknownRuleset, r)
	}
	def.Sizes = append([]int(nil), def.Sizes...)
	return def, nil
}

// LookupDefinition parses a ruleset tag and returns its definition.
func LookupDefinition(tag string) (board.Definition, error) {
	r, err := ParseRuleset(tag)
	if err != nil {
		return board.Definition{}, err
	}
	return Definition(r)
}
