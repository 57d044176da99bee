package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// WSClient is one open dashboard session. All writes go through
// WriteMessage; gorilla/websocket forbids concurrent writers and both the
// broadcast path and the keep-alive pinger write to the same connection.
type WSClient struct {
	ClinicID uint
	Conn     *websocket.Conn

	writeMu sync.Mutex
}

func (c *WSClient) WriteMessage(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// RealtimeHub fans events out to every dashboard session of a clinic, so
// two open calendars see each other's reschedules without polling.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.ClinicID] == nil {
		h.clients[c.ClinicID] = make(map[*WSClient]struct{})
	}
	h.clients[c.ClinicID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.ClinicID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.ClinicID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) BroadcastEvent(clinicID uint, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[clinicID] {
		_ = c.WriteMessage(websocket.TextMessage, msg)
	}
}
