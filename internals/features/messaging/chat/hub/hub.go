// file: internals/features/messaging/chat/hub/hub.go
package hub

import (
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// Client: satu koneksi websocket milik satu user. User boleh buka
// beberapa tab, jadi satu user bisa punya banyak client.
type Client struct {
	UserID uuid.UUID
	Room   string
	Conn   *websocket.Conn
	Send   chan []byte
}

type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
	byUser  map[uuid.UUID]map[*Client]bool

	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan []byte
}

var GlobalHub = NewHub()

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		byUser:     make(map[uuid.UUID]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan []byte, 64),
	}
}

// Run dipanggil sekali dari main sebagai goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.Register:
			h.mu.Lock()
			h.clients[c] = true
			if h.byUser[c.UserID] == nil {
				h.byUser[c.UserID] = make(map[*Client]bool)
			}
			h.byUser[c.UserID][c] = true
			h.mu.Unlock()
			log.Printf("[INFO] chat: client connected user=%s (total=%d)", c.UserID, h.ClientCount())

		case c := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				if set := h.byUser[c.UserID]; set != nil {
					delete(set, c)
					if len(set) == 0 {
						delete(h.byUser, c.UserID)
					}
				}
				close(c.Send)
			}
			h.mu.Unlock()
			log.Printf("[INFO] chat: client disconnected user=%s (total=%d)", c.UserID, h.ClientCount())

		case msg := <-h.Broadcast:
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.Send <- msg:
				default:
					// buffer penuh, koneksi lambat — jangan blok hub
				}
			}
			h.mu.RUnlock()
		}
	}
}

// BroadcastRoom kirim ke semua client di room tertentu.
func (h *Hub) BroadcastRoom(room string, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if c.Room != room {
			continue
		}
		select {
		case c.Send <- msg:
		default:
		}
	}
}

// PushToUser kirim ke semua koneksi milik satu user (notifikasi realtime).
func (h *Hub) PushToUser(userID uuid.UUID, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.byUser[userID] {
		select {
		case c.Send <- msg:
		default:
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
