package websocket

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UnicastMessage struct {
	UserID  uuid.UUID
	Message []byte
}

// Hub tracks the connected builder sessions and routes messages to them. All
// client bookkeeping happens on the Run goroutine; the exported senders only
// touch channels.
type Hub struct {
	clients map[*Client]bool

	broadcast  chan []byte
	unicast    chan UnicastMessage
	register   chan *Client
	unregister chan *Client

	stop     chan struct{}
	stopOnce sync.Once

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte),
		unicast:    make(chan UnicastMessage),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stop:       make(chan struct{}),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Debug("websocket client registered",
				zap.String("user_id", client.userID.String()),
				zap.Int("clients", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Debug("websocket client unregistered",
					zap.String("user_id", client.userID.String()),
					zap.Int("clients", len(h.clients)))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				h.deliver(client, message)
			}

		case msg := <-h.unicast:
			for client := range h.clients {
				if client.userID == msg.UserID {
					h.deliver(client, msg.Message)
				}
			}

		case <-h.stop:
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		}
	}
}

// deliver drops clients whose send buffer is full rather than blocking the
// hub loop behind a slow reader.
func (h *Hub) deliver(client *Client, message []byte) {
	select {
	case client.send <- message:
	default:
		close(client.send)
		delete(h.clients, client)
		h.logger.Warn("dropped slow websocket client",
			zap.String("user_id", client.userID.String()))
	}
}

// Register attaches a client to the hub. It reports false when the hub has
// already stopped, in which case the caller owns the connection's cleanup.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.stop:
		return false
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.stop:
	}
}

func (h *Hub) BroadcastMessage(message []byte) {
	select {
	case h.broadcast <- message:
	case <-h.stop:
	}
}

func (h *Hub) SendToUser(userID uuid.UUID, message []byte) {
	select {
	case h.unicast <- UnicastMessage{UserID: userID, Message: message}:
	case <-h.stop:
	}
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
}
