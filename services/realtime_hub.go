package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	pingInterval = 25 * time.Second
	writeWait    = 10 * time.Second
	sendBuffer   = 16
)

// WSClient owns one websocket connection. All writes to the connection,
// pings included, happen on the client's write loop; everyone else hands
// payloads to the send channel.
type WSClient struct {
	UserID uint
	conn   *websocket.Conn
	send   chan []byte
}

func NewWSClient(userID uint, conn *websocket.Conn) *WSClient {
	return &WSClient{
		UserID: userID,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
	}
}

// writeLoop is the connection's only writer. It drains the send channel and
// emits keepalive pings until the channel closes or a write fails.
func (c *WSClient) writeLoop() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteControl(websocket.CloseMessage, nil, time.Now().Add(writeWait))
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ReadUntilClosed blocks consuming client frames (none are expected) and
// returns when the peer goes away.
func (c *WSClient) ReadUntilClosed() {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// RealtimeHub fans out admin-message events to a user's connected sockets.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()

	go c.writeLoop()
}

// Unregister is idempotent; the send channel closes only on the first call,
// which in turn ends the write loop and closes the connection.
func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		if _, ok := set[c]; ok {
			delete(set, c)
			if len(set) == 0 {
				delete(h.clients, c.UserID)
			}
			close(c.send)
		}
	}
	h.mu.Unlock()
}

// Connections reports how many sockets a user currently has open.
func (h *RealtimeHub) Connections(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Broadcast queues the payload for every socket the user has open. Clients
// whose buffers are full are skipped; the keepalive path will reap them if
// they are truly gone.
func (h *RealtimeHub) Broadcast(userID uint, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		select {
		case c.send <- msg:
		default:
		}
	}
}
