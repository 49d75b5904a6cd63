// Package chatws delivers rendered chat cards over websockets. Connected
// clients (the host UI) receive every card the roll service produces.
package chatws

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/roll-api/internal/host"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// wsMessage is the wire shape of a broadcast card
type wsMessage struct {
	Type        string   `json:"type"`
	SpeakerID   string   `json:"speaker_id"`
	SpeakerName string   `json:"speaker_name"`
	Content     string   `json:"content"`
	HasDice     bool     `json:"has_dice"`
	Whisper     []string `json:"whisper,omitempty"`
	Sound       string   `json:"sound,omitempty"`
}

// client is one connected websocket. The connection allows a single
// writer at a time, so every write goes through writeJSON.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *client) writeJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(v)
}

// Hub tracks connected clients and broadcasts chat messages to them.
// It implements host.ChatTransport.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

// ServeWS upgrades an HTTP request and registers the connection
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	cl := &client{conn: conn}
	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()

	// Drain reads so close frames are processed; drop the client on error
	go func() {
		defer h.drop(cl)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) drop(cl *client) {
	h.mu.Lock()
	delete(h.clients, cl)
	h.mu.Unlock()
	_ = cl.conn.Close()
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// CreateMessage broadcasts the chat payload to every connected client.
// Fire and forget: per-client write failures drop that client only.
func (h *Hub) CreateMessage(_ context.Context, msg *host.ChatMessage) error {
	payload := &wsMessage{
		Type:        "chat_card",
		SpeakerID:   msg.SpeakerID,
		SpeakerName: msg.SpeakerName,
		Content:     msg.Content,
		HasDice:     msg.HasDice,
		Whisper:     msg.Whisper,
		Sound:       msg.Sound,
	}

	h.mu.Lock()
	conns := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		if err := c.writeJSON(payload); err != nil {
			slog.Warn("dropping chat client after write failure", "error", err)
			h.drop(c)
		}
	}
	return nil
}

var _ host.ChatTransport = (*Hub)(nil)
