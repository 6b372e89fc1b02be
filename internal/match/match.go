// Package match drives one game between a hidden fleet and an attacking
// engine. It is the in-process equivalent of the message flow between the
// game service and the engine: place, then shoot and adjudicate until won.
package match

import (
	"errors"
	"fmt"

	"battleship-engine/internal/board"
	"battleship-engine/internal/engine"
	"battleship-engine/internal/resolver"
	"battleship-engine/internal/validator"
)

var (
	ErrFinished    = errors.New("match already finished")
	ErrShotLimit   = errors.New("shot limit reached without a win")
	ErrIllegalShot = errors.New("engine chose an illegal shot")
)

type Turn struct {
	Shot   board.Pos       `json:"shot"`
	Result resolver.Result `json:"result"`
}

type Match struct {
	Definition board.Definition `json:"definition"`
	Fleet      []board.Ship     `json:"-"`
	State      *board.State     `json:"state"`
	History    []Turn           `json:"history"`
	Finished   bool             `json:"finished"`

	attacker engine.Engine
}

// New places the defender's fleet, checks it and sets up an empty board.
func New(def board.Definition, defender, attacker engine.Engine) (*Match, error) {
	fleet, err := defender.PlaceShips(def)
	if err != nil {
		return nil, fmt.Errorf("place fleet with %s: %w", defender.Name(), err)
	}
	return WithFleet(def, fleet, attacker)
}

// WithFleet starts a match against a known fleet.
func WithFleet(def board.Definition, fleet []board.Ship, attacker engine.Engine) (*Match, error) {
	if err := validator.ValidateFleet(def, fleet); err != nil {
		return nil, fmt.Errorf("validate fleet: %w", err)
	}
	return &Match{
		Definition: def,
		Fleet:      fleet,
		State:      board.NewState(def),
		attacker:   attacker,
	}, nil
}

func (m *Match) Shots() int { return len(m.History) }

// Step asks the attacker for one shot and applies it.
func (m *Match) Step() (Turn, error) {
	if m.Finished {
		return Turn{}, ErrFinished
	}
	pos, err := m.attacker.Shot(m.State)
	if err != nil {
		return Turn{}, fmt.Errorf("%s shot: %w", m.attacker.Name(), err)
	}
	r := resolver.Shoot(m.State, m.Fleet, pos)
	if r.Outcome == resolver.Illegal {
		return Turn{}, fmt.Errorf("%w: %v", ErrIllegalShot, pos)
	}
	t := Turn{Shot: pos, Result: r}
	m.History = append(m.History, t)
	m.Finished = resolver.IsWin(m.State)
	return t, nil
}

// Run steps until the fleet is sunk or maxShots shots were fired. A
// non-positive maxShots means the board area.
func (m *Match) Run(maxShots int) error {
	if maxShots <= 0 {
		maxShots = m.Definition.Width * m.Definition.Height
	}
	for !m.Finished {
		if m.Shots() >= maxShots {
			return fmt.Errorf("%w: %d shots", ErrShotLimit, m.Shots())
		}
		if _, err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}
