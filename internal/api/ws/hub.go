// Package ws publishes engine events to websocket subscribers, one channel
// per game id.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Event is the envelope of every published message.
type Event struct {
	ID     string `json:"id"`
	Action string `json:"action"`
	Data   any    `json:"data"`
}

// Request is a message sent by a subscriber.
type Request struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// Handler serves one client action for a game. Its result is broadcast to
// the game under the same action name.
type Handler func(gameID string, data json.RawMessage) (any, error)

type Hub struct {
	mu       sync.Mutex
	games    map[string]map[*websocket.Conn]struct{}
	handlers map[string]Handler
}

func NewHub() *Hub {
	return &Hub{
		games:    make(map[string]map[*websocket.Conn]struct{}),
		handlers: make(map[string]Handler),
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handle registers h for client messages carrying action.
func (h *Hub) Handle(action string, fn Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[action] = fn
}

func (h *Hub) HandleWS(c *gin.Context) {
	gameID := c.Query("game_id")
	if gameID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing game_id", "malformed": true})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("game_id", gameID).Msg("websocket upgrade")
		return
	}
	log.Debug().Str("game_id", gameID).Msg("subscriber joined")

	h.subscribe(gameID, conn)
	defer h.unsubscribe(gameID, conn)

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug().Err(err).Str("game_id", gameID).Msg("read websocket message")
			}
			return
		}
		h.dispatch(gameID, conn, req)
	}
}

func (h *Hub) dispatch(gameID string, conn *websocket.Conn, req Request) {
	h.mu.Lock()
	fn, ok := h.handlers[req.Action]
	h.mu.Unlock()
	if !ok {
		log.Warn().Str("game_id", gameID).Str("action", req.Action).Msg("unknown action")
		h.reply(conn, "error", gin.H{"error": "unknown action " + req.Action})
		return
	}
	data, err := fn(gameID, req.Data)
	if err != nil {
		log.Warn().Err(err).Str("game_id", gameID).Str("action", req.Action).Msg("action failed")
		h.reply(conn, "error", gin.H{"action": req.Action, "error": err.Error()})
		return
	}
	h.Broadcast(gameID, req.Action, data)
}

func (h *Hub) subscribe(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.games[gameID]; !ok {
		h.games[gameID] = make(map[*websocket.Conn]struct{})
	}
	h.games[gameID][conn] = struct{}{}
}

func (h *Hub) unsubscribe(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.games[gameID], conn)
	if len(h.games[gameID]) == 0 {
		delete(h.games, gameID)
	}
	_ = conn.Close()
}

func (h *Hub) reply(conn *websocket.Conn, action string, data any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := conn.WriteJSON(Event{ID: uuid.NewString(), Action: action, Data: data}); err != nil {
		log.Debug().Err(err).Msg("write websocket reply")
	}
}

// Subscribers reports how many connections follow gameID.
func (h *Hub) Subscribers(gameID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.games[gameID])
}

// Broadcast sends one event to every subscriber of gameID. Connections that
// fail to take the write are dropped.
func (h *Hub) Broadcast(gameID string, action string, data any) {
	if h == nil {
		return
	}
	ev := Event{ID: uuid.NewString(), Action: action, Data: data}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.games[gameID] {
		if err := conn.WriteJSON(ev); err != nil {
			log.Warn().Err(err).Str("game_id", gameID).Str("action", action).Msg("send event")
			_ = conn.Close()
			delete(h.games[gameID], conn)
		}
	}
}
