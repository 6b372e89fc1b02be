package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Broadcaster publishes engine events to the subscribers of a game.
type Broadcaster interface {
	Broadcast(gameID string, action string, data any)
}

// @Summary Place a fleet
// @Description Let an engine lay out a legal fleet for the ruleset
// @Tags Placement
// @Accept json
// @Produce json
// @Param request body PlacementRequest true "Game, ruleset and engine"
// @Success 200 {object} PlacementResponse
// @Failure 422 {object} map[string]interface{}
// @Router /placement [post]
func PlacementHandler(svc *service, pub Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlacementRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, req.GameID, errMalformedf(err))
			return
		}
		resp, err := svc.placement(req)
		if err != nil {
			abortWithError(c, req.GameID, err)
			return
		}
		log.Info().Int64("game_id", req.GameID).Str("engine", resp.Engine).Msg("fleet placed")
		pub.Broadcast(gameKey(req.GameID), "placement", resp)
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary Validate a fleet
// @Description Check a fleet against the ruleset's board, sizes and adjacency rule
// @Tags Placement
// @Accept json
// @Produce json
// @Param request body ValidatePlacementRequest true "Fleet"
// @Success 200 {object} ValidatePlacementResponse
// @Router /placement/validate [post]
func ValidatePlacementHandler(svc *service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ValidatePlacementRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, req.GameID, errMalformedf(err))
			return
		}
		resp, err := svc.validatePlacement(req)
		if err != nil {
			abortWithError(c, req.GameID, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary Next engine shot
// @Description Ask an engine for the next cell to shoot at
// @Tags Game
// @Accept json
// @Produce json
// @Param request body AIMoveRequest true "Board state"
// @Success 200 {object} AIMoveResponse
// @Failure 409 {object} map[string]interface{}
// @Router /ai/move [post]
func AIMoveHandler(svc *service, pub Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AIMoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, req.GameID, errMalformedf(err))
			return
		}
		resp, err := svc.aiMove(req)
		if err != nil {
			abortWithError(c, req.GameID, err)
			return
		}
		log.Debug().Int64("game_id", req.GameID).Str("engine", resp.Engine).
			Int("row", resp.Row).Int("column", resp.Column).Msg("engine shot")
		pub.Broadcast(gameKey(req.GameID), "ai.move", resp)
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary Adjudicate a shot
// @Description Resolve a shot against the defender's fleet and return the new board
// @Tags Game
// @Accept json
// @Produce json
// @Param request body MoveRequest true "Shot"
// @Success 200 {object} MoveEvent
// @Failure 400 {object} map[string]interface{}
// @Router /move [post]
func MoveHandler(svc *service, pub Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, req.GameID, errMalformedf(err))
			return
		}
		ev, err := svc.move(req)
		if err != nil {
			abortWithError(c, req.GameID, err)
			return
		}
		log.Info().Int64("game_id", req.GameID).Str("outcome", ev.Result).
			Bool("finished", ev.Finished).Msg("shot adjudicated")
		pub.Broadcast(gameKey(req.GameID), "validation.move", ev)
		c.JSON(http.StatusOK, ev)
	}
}
