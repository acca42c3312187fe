package service

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	EventAnnouncementCreated = "announcement_created"
	EventTaskCreated         = "task_created"
	EventTaskStatusChanged   = "task_status_changed"
	EventTaskDeleted         = "task_deleted"
)

// Notifier publishes portal events to whoever is listening. Services only
// depend on this narrow interface so tests can drop in a no-op.
type Notifier interface {
	Broadcast(event string, payload interface{})
}

// NopNotifier discards every event.
type NopNotifier struct{}

func (NopNotifier) Broadcast(string, interface{}) {}

type notification struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
	SentAt  int64       `json:"sent_at"`
}

// NotificationHub fans portal events out to connected websocket clients.
// Slow or dead clients are dropped rather than blocking the broadcast.
type NotificationHub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]chan notification
	upgrader websocket.Upgrader
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		clients: make(map[*websocket.Conn]chan notification),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (h *NotificationHub) Broadcast(event string, payload interface{}) {
	msg := notification{Event: event, Payload: payload, SentAt: time.Now().Unix()}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, ch := range h.clients {
		select {
		case ch <- msg:
		default:
			delete(h.clients, conn)
			close(ch)
		}
	}
}

// HandleConnection upgrades the request and streams events until the client
// goes away.
func (h *NotificationHub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(4 * 1024)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	ch := make(chan notification, 16)
	h.mu.Lock()
	h.clients[conn] = ch
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		if _, ok := h.clients[conn]; ok {
			delete(h.clients, conn)
			close(ch)
		}
		h.mu.Unlock()
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				return
			}
			conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		}
	}()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(msg); err != nil {
				log.Println("Write error:", err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
