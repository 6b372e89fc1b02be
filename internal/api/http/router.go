package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"

	"battleship-engine/internal/api/ws"
	"battleship-engine/internal/config"
	"battleship-engine/internal/logging"
	"battleship-engine/internal/store"
)

func NewRouter(engines *store.MemoryStore, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestLogger(log.Logger))

	svc := &service{engines: engines, cfg: cfg}
	registerActions(hub, svc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// WebSocket for engine events per game
	r.GET("/ws", hub.HandleWS)

	// --- PLACEMENT ENDPOINTS ---
	r.POST("/placement", PlacementHandler(svc, hub))
	r.POST("/placement/validate", ValidatePlacementHandler(svc))

	// --- GAME ENDPOINTS ---
	r.POST("/ai/move", AIMoveHandler(svc, hub))
	r.POST("/move", MoveHandler(svc, hub))

	// --- CONFIG ENDPOINTS ---
	ch := NewConfigHandler(cfg)
	r.GET("/engines", ch.GetEnginesHandler)
	r.GET("/config/weights", ch.GetWeightsHandler)

	return r
}

// registerActions lets websocket subscribers drive the same operations as the
// HTTP routes. The game id comes from the subscription.
func registerActions(hub *ws.Hub, svc *service) {
	hub.Handle("placement", wsAction(func(id int64, req *PlacementRequest) (any, error) {
		req.GameID = id
		return svc.placement(*req)
	}))
	hub.Handle("ai.move", wsAction(func(id int64, req *AIMoveRequest) (any, error) {
		req.GameID = id
		return svc.aiMove(*req)
	}))
	hub.Handle("validation.move", wsAction(func(id int64, req *MoveRequest) (any, error) {
		req.GameID = id
		return svc.move(*req)
	}))
}

func wsAction[T any](fn func(id int64, req *T) (any, error)) ws.Handler {
	return func(gameID string, data json.RawMessage) (any, error) {
		id, err := strconv.ParseInt(gameID, 10, 64)
		if err != nil {
			return nil, errMalformedf(err)
		}
		req := new(T)
		if err := json.Unmarshal(data, req); err != nil {
			return nil, errMalformedf(err)
		}
		if err := binding.Validator.ValidateStruct(req); err != nil {
			return nil, errMalformedf(err)
		}
		return fn(id, req)
	}
}
