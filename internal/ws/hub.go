package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"capstore/internal/structs"
	"capstore/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(NewHub)
)

type Params struct {
	fx.In
	Logger logger.Logger
}

// Hub fans session events out to every socket the session's page opened.
type Hub struct {
	logger  logger.Logger
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{} // session id -> set(client)
}

func NewHub(p Params) *Hub {
	return &Hub{
		logger:  p.Logger,
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(sessionID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[sessionID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[sessionID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) Unregister(sessionID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[sessionID]
	if !ok {
		return
	}
	if _, ok = set[c]; !ok {
		return
	}
	delete(set, c)
	c.closeSend()
	if len(set) == 0 {
		delete(h.clients, sessionID)
	}
}

// Drop disconnects every socket of a session.
func (h *Hub) Drop(sessionID string) {
	h.mu.Lock()
	set := h.clients[sessionID]
	delete(h.clients, sessionID)
	h.mu.Unlock()

	for c := range set {
		c.closeSend()
	}
}

func (h *Hub) Connected(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

func (h *Hub) BroadcastToSession(ctx context.Context, sessionID string, evt structs.Event) {
	if evt.TS.IsZero() {
		evt.TS = time.Now().UTC()
	}

	b, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error(ctx, "err on json.Marshal event", zap.String("type", string(evt.Type)), zap.Error(err))
		return
	}

	h.mu.RLock()
	set := h.clients[sessionID]
	clients := make([]*Client, 0, len(set))
	for c := range set {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if !c.SendRaw(b) {
			h.logger.Warn(ctx, "ws client too slow, dropping", zap.String("type", string(evt.Type)))
			h.Unregister(sessionID, c)
		}
	}
}
