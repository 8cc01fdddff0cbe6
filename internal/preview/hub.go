package preview

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans body updates out to connected browsers.
type Hub struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	wmu      sync.Mutex
	upgrader websocket.Upgrader
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // preview only
			},
		},
	}
}

// HandleWebSocket upgrades the connection, sends greeting when it is not nil
// and keeps the client registered until it disconnects.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, req *http.Request, greeting func() string) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	if greeting != nil {
		if err := h.write(conn, greeting()); err != nil {
			h.drop(conn)
			return
		}
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.drop(conn)
}

// Broadcast sends body to every client. Clients that fail are dropped.
func (h *Hub) Broadcast(body string) {
	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if err := h.write(client, body); err != nil {
			h.drop(client)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
}

// write serializes writes; a connection supports one writer at a time.
func (h *Hub) write(conn *websocket.Conn, body string) error {
	h.wmu.Lock()
	defer h.wmu.Unlock()
	return conn.WriteMessage(websocket.TextMessage, []byte(body))
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}
