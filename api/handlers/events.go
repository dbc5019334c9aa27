package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event is pushed to connected reviewers whenever a report changes
type Event struct {
	Kind     string    `json:"kind"`
	ReportID string    `json:"reportId"`
	Action   string    `json:"action"`
	Court    string    `json:"court,omitempty"`
	At       time.Time `json:"at"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// EventHub fans report events out to connected websocket clients
type EventHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// NewEventHub creates an empty hub
func NewEventHub() *EventHub {
	return &EventHub{conns: map[*websocket.Conn]bool{}}
}

// ServeWS upgrades the request and keeps the connection registered until
// the client goes away
func (h *EventHub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorw("websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()

	// drain reads so we notice the close
	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.conns, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Publish sends the event to every connected client. Safe on a nil hub.
func (h *EventHub) Publish(event Event) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(event); err != nil {
			delete(h.conns, conn)
			conn.Close()
		}
	}
}
