package ws

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, h *Hub) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", h.HandleWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, h *Hub, gameID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?game_id=" + gameID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.Eventually(t, func() bool { return h.Subscribers(gameID) > 0 }, time.Second, 5*time.Millisecond)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestBroadcastReachesOnlyThatGame(t *testing.T) {
	h := NewHub()
	srv := newServer(t, h)
	a := dial(t, srv, h, "1")
	b := dial(t, srv, h, "2")

	h.Broadcast("1", "placement", map[string]int{"gameId": 1})
	h.Broadcast("2", "ai.move", map[string]int{"row": 3})

	ev := readEvent(t, a)
	assert.Equal(t, "placement", ev.Action)
	assert.Len(t, ev.ID, 36)
	assert.Equal(t, map[string]any{"gameId": float64(1)}, ev.Data)

	ev = readEvent(t, b)
	assert.Equal(t, "ai.move", ev.Action)
}

func TestClientActions(t *testing.T) {
	h := NewHub()
	h.Handle("echo", func(gameID string, data json.RawMessage) (any, error) {
		return map[string]string{"game": gameID, "data": string(data)}, nil
	})
	h.Handle("fail", func(string, json.RawMessage) (any, error) {
		return nil, errors.New("nope")
	})
	srv := newServer(t, h)
	conn := dial(t, srv, h, "9")

	require.NoError(t, conn.WriteJSON(map[string]any{"action": "echo", "data": 5}))
	ev := readEvent(t, conn)
	assert.Equal(t, "echo", ev.Action)
	assert.Equal(t, map[string]any{"game": "9", "data": "5"}, ev.Data)

	require.NoError(t, conn.WriteJSON(map[string]any{"action": "fail"}))
	ev = readEvent(t, conn)
	assert.Equal(t, "error", ev.Action)
	assert.Equal(t, map[string]any{"action": "fail", "error": "nope"}, ev.Data)

	require.NoError(t, conn.WriteJSON(map[string]any{"action": "dance"}))
	ev = readEvent(t, conn)
	assert.Equal(t, "error", ev.Action)
}

func TestMissingGameID(t *testing.T) {
	h := NewHub()
	srv := newServer(t, h)
	resp, err := http.Get(srv.URL + "/ws")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnsubscribeOnClose(t *testing.T) {
	h := NewHub()
	srv := newServer(t, h)
	conn := dial(t, srv, h, "4")
	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return h.Subscribers("4") == 0 }, time.Second, 5*time.Millisecond)
}

func TestNilHubBroadcast(t *testing.T) {
	var h *Hub
	assert.NotPanics(t, func() { h.Broadcast("1", "placement", nil) })
}
