package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"battleship-engine/internal/board"
	"battleship-engine/internal/codec"
	"battleship-engine/internal/config"
	"battleship-engine/internal/engine"
	"battleship-engine/internal/resolver"
	"battleship-engine/internal/store"
	"battleship-engine/internal/validator"
)

// errMalformed marks request bodies that could not be bound.
var errMalformed = errors.New("malformed request")

func errMalformedf(err error) error { return fmt.Errorf("%w: %v", errMalformed, err) }

// service runs the engine operations behind both the HTTP routes and the
// websocket actions.
type service struct {
	engines *store.MemoryStore
	cfg     config.Config
}

func gameKey(id int64) string { return strconv.FormatInt(id, 10) }

func (s *service) engineType(name string) (engine.Type, error) {
	if name == "" {
		return s.cfg.DefaultEngine, nil
	}
	return engine.ParseType(name)
}

func (s *service) placement(req PlacementRequest) (PlacementResponse, error) {
	def, err := codec.LookupDefinition(req.Ruleset)
	if err != nil {
		return PlacementResponse{}, err
	}
	t, err := s.engineType(req.Engine)
	if err != nil {
		return PlacementResponse{}, err
	}
	resp := PlacementResponse{GameID: req.GameID}
	err = s.engines.With(gameKey(req.GameID), t, func(e engine.Engine) error {
		ships, err := e.PlaceShips(def)
		if err != nil {
			return err
		}
		resp.Ships = codec.FromShips(ships)
		resp.Engine = e.Name()
		return nil
	})
	return resp, err
}

func (s *service) validatePlacement(req ValidatePlacementRequest) (ValidatePlacementResponse, error) {
	def, err := codec.LookupDefinition(req.Ruleset)
	if err != nil {
		return ValidatePlacementResponse{}, err
	}
	ships, err := codec.ToShips(req.Ships)
	if err != nil {
		return ValidatePlacementResponse{}, err
	}
	resp := ValidatePlacementResponse{GameID: req.GameID, Legal: true}
	if err := validator.ValidateFleet(def, ships); err != nil {
		resp.Legal = false
		resp.Error = err.Error()
	}
	return resp, nil
}

func (s *service) aiMove(req AIMoveRequest) (AIMoveResponse, error) {
	def, err := codec.LookupDefinition(req.Ruleset)
	if err != nil {
		return AIMoveResponse{}, err
	}
	t, err := s.engineType(req.Engine)
	if err != nil {
		return AIMoveResponse{}, err
	}
	state, err := codec.DecodeState(req.GameState, def)
	if err != nil {
		return AIMoveResponse{}, err
	}
	if req.RemainingShips != nil {
		longest := max(def.Width, def.Height)
		for _, size := range req.RemainingShips {
			if size < 1 || size > longest {
				return AIMoveResponse{}, fmt.Errorf("%w: remaining ship size %d", errMalformed, size)
			}
		}
		state.RemainingShips = append([]int(nil), req.RemainingShips...)
	}
	resp := AIMoveResponse{GameID: req.GameID}
	err = s.engines.With(gameKey(req.GameID), t, func(e engine.Engine) error {
		pos, err := e.Shot(state)
		if err != nil {
			return err
		}
		resp.Row, resp.Column = pos.X, pos.Y
		resp.Engine = e.Name()
		return nil
	})
	return resp, err
}

// move adjudicates one shot. An illegal shot leaves the state unchanged and
// is reported with legal=false. A finished game releases its engines.
func (s *service) move(req MoveRequest) (MoveEvent, error) {
	def, err := codec.LookupDefinition(req.Ruleset)
	if err != nil {
		return MoveEvent{}, err
	}
	state, err := codec.DecodeState(req.GameState, def)
	if err != nil {
		return MoveEvent{}, err
	}
	fleet, err := codec.DecodeShips(req.Targets)
	if err != nil {
		return MoveEvent{}, err
	}
	if err := codec.FitShips(def, fleet); err != nil {
		return MoveEvent{}, err
	}
	if !validator.ShipsOnBoard(def, fleet) {
		return MoveEvent{}, fmt.Errorf("%w: targets", validator.ErrShipOffBoard)
	}

	r := resolver.Shoot(state, fleet, board.Pos{X: req.Row, Y: req.Column})
	ev := MoveEvent{
		GameID:   req.GameID,
		Row:      req.Row,
		Column:   req.Column,
		Legal:    r.Outcome != resolver.Illegal,
		Finished: resolver.IsWin(state),
		Result:   wireResult(r.Outcome),
		NewState: codec.EncodeState(state),
	}
	if ev.Finished {
		s.engines.Delete(gameKey(req.GameID))
	}
	return ev, nil
}

// wireResult names the outcome for the game service, which only knows Miss,
// Hit and Sunk. An illegal shot travels as Miss with legal=false.
func wireResult(o resolver.Outcome) string {
	if o == resolver.Illegal {
		return resolver.Miss.String()
	}
	return o.String()
}

// status maps an operation error to its HTTP status.
func status(err error) int {
	switch {
	case errors.Is(err, errMalformed),
		errors.Is(err, codec.ErrMalformedBoard),
		errors.Is(err, codec.ErrMalformedShips),
		errors.Is(err, codec.ErrUnknownRuleset),
		errors.Is(err, engine.ErrUnknownType),
		errors.Is(err, validator.ErrShipOffBoard),
		errors.Is(err, board.ErrInvalidDefinition):
		return http.StatusBadRequest
	case errors.Is(err, engine.ErrUnsatisfiablePlacement):
		return http.StatusUnprocessableEntity
	case errors.Is(err, engine.ErrNoMovesLeft):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, gameID int64, err error) {
	code := status(err)
	body := gin.H{"gameId": gameID, "error": err.Error()}
	if code == http.StatusBadRequest {
		body["malformed"] = true
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(code, body)
}
