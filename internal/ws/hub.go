package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"Bricklix/entity"
)

// Event represents a WebSocket event pushed to widget clients.
type Event struct {
	Type      string      `json:"type"` // "message_appended", "message_resolved", "busy"
	SessionID string      `json:"session_id"`
	Data      interface{} `json:"data"`
}

// Hub maintains the set of connected widget clients grouped by session and
// delivers transcript events to the tabs watching that session.
type Hub struct {
	sessions   map[string]map[*Client]bool
	deliver    chan *Event
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	log        *slog.Logger
}

// NewHub creates a new Hub instance.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		sessions:   make(map[string]map[*Client]bool),
		deliver:    make(chan *Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// Run starts the hub's event loop. Should be called in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			clients, ok := h.sessions[client.sessionID]
			if !ok {
				clients = make(map[*Client]bool)
				h.sessions[client.sessionID] = clients
			}
			clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.sessions[client.sessionID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
				}
				if len(clients) == 0 {
					delete(h.sessions, client.sessionID)
				}
			}
			h.mu.Unlock()

		case event := <-h.deliver:
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			h.mu.Lock()
			for client := range h.sessions[event.SessionID] {
				select {
				case client.send <- data:
				default:
					close(client.send)
					delete(h.sessions[event.SessionID], client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// MessageAppended pushes a freshly appended transcript message.
func (h *Hub) MessageAppended(sessionID string, msg entity.Message) {
	h.deliver <- &Event{Type: "message_appended", SessionID: sessionID, Data: msg}
}

// MessageResolved pushes the resolved content of a pending placeholder.
func (h *Hub) MessageResolved(sessionID string, msg entity.Message) {
	h.deliver <- &Event{Type: "message_resolved", SessionID: sessionID, Data: msg}
}

// BusyChanged pushes the session's busy indicator state.
func (h *Hub) BusyChanged(sessionID string, busy bool) {
	h.deliver <- &Event{
		Type:      "busy",
		SessionID: sessionID,
		Data:      map[string]bool{"busy": busy},
	}
}
