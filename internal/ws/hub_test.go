package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"capstore/internal/structs"
	"capstore/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		sessionID := r.URL.Query().Get("session")
		client := NewClient(sessionID, conn, hub, 8)
		hub.Register(sessionID, client)
		client.Run()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, session string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?session=" + session
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestBroadcastReachesOnlyTheSession(t *testing.T) {
	hub := NewHub(Params{Logger: logger.NewNop()})
	srv := serve(t, hub)

	mine := dial(t, srv, "s-1")
	other := dial(t, srv, "s-2")
	require.Eventually(t, func() bool { return hub.Connected("s-1") == 1 && hub.Connected("s-2") == 1 },
		time.Second, 10*time.Millisecond)

	hub.BroadcastToSession(context.Background(), "s-1", structs.Event{
		Type:    structs.EventBadgeRefresh,
		Payload: structs.Badge{Count: 2},
	})

	_ = mine.SetReadDeadline(time.Now().Add(time.Second))
	var evt struct {
		Type    string `json:"type"`
		Payload struct {
			Count int `json:"count"`
		} `json:"payload"`
	}
	require.NoError(t, mine.ReadJSON(&evt))
	assert.Equal(t, "badge.refresh", evt.Type)
	assert.Equal(t, 2, evt.Payload.Count)

	_ = other.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err := other.ReadMessage()
	assert.Error(t, err)
}

func TestDropDisconnects(t *testing.T) {
	hub := NewHub(Params{Logger: logger.NewNop()})
	srv := serve(t, hub)

	conn := dial(t, srv, "s-1")
	require.Eventually(t, func() bool { return hub.Connected("s-1") == 1 }, time.Second, 10*time.Millisecond)

	hub.Drop("s-1")

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
	assert.Zero(t, hub.Connected("s-1"))
}

func TestSendRawAfterCloseIsSafe(t *testing.T) {
	c := &Client{send: make(chan []byte, 1)}
	assert.True(t, c.SendRaw([]byte("a")))
	assert.False(t, c.SendRaw([]byte("b")), "buffer full")

	c.closeSend()
	assert.NotPanics(t, func() { assert.False(t, c.SendRaw([]byte("c"))) })
}
