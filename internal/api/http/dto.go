package http

import "battleship-engine/internal/codec"

// PlacementRequest asks an engine to lay out a fleet for /placement.
type PlacementRequest struct {
	GameID  int64  `json:"gameId"`
	Ruleset string `json:"ruleset" binding:"required"`
	Engine  string `json:"engine"`
}

type PlacementResponse struct {
	GameID int64           `json:"gameId"`
	Ships  []codec.ShipMsg `json:"ships"`
	Engine string          `json:"engine"`
}

// ValidatePlacementRequest represents the payload for /placement/validate.
type ValidatePlacementRequest struct {
	GameID  int64           `json:"gameId"`
	Ruleset string          `json:"ruleset" binding:"required"`
	Ships   []codec.ShipMsg `json:"ships"`
}

type ValidatePlacementResponse struct {
	GameID int64  `json:"gameId"`
	Legal  bool   `json:"legal"`
	Error  string `json:"error,omitempty"`
}

// AIMoveRequest asks an engine for its next shot. RemainingShips overrides
// the sizes derived from the sunk cells of GameState when present.
type AIMoveRequest struct {
	GameID         int64  `json:"gameId"`
	Ruleset        string `json:"ruleset" binding:"required"`
	Engine         string `json:"engine"`
	GameState      string `json:"gameState" binding:"required"`
	RemainingShips []int  `json:"remainingShips"`
}

type AIMoveResponse struct {
	GameID int64  `json:"gameId"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Engine string `json:"engine"`
}

// MoveRequest carries one shot to adjudicate. Targets is the defender's
// fleet as a JSON-encoded ship list.
type MoveRequest struct {
	GameID    int64  `json:"gameId"`
	Ruleset   string `json:"ruleset" binding:"required"`
	GameState string `json:"gameState" binding:"required"`
	Targets   string `json:"targets" binding:"required"`
	Row       int    `json:"row"`
	Column    int    `json:"column"`
}

// MoveEvent is the adjudication published on validation.move.
type MoveEvent struct {
	GameID    int64  `json:"gameId"`
	Row       int    `json:"row"`
	Column    int    `json:"column"`
	Legal     bool   `json:"legal"`
	Finished  bool   `json:"finished"`
	Result    string `json:"result"`
	NewState  string `json:"newState"`
	Malformed bool   `json:"malformed,omitempty"`
}
