package realtime

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Client is one open change-feed connection
type Client interface {
	Send(message []byte) bool
	Close()
}

// Event types published after writes
const (
	TaskCreated = "task_created"
	TaskUpdated = "task_updated"
	TaskDeleted = "task_deleted"
	ItemCreated = "item_created"
	ItemUpdated = "item_updated"
	ItemDeleted = "item_deleted"
)

// Event tells open windows which record changed so they can reload it
type Event struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	TaskID  uint   `json:"taskId"`
	ItemID  uint   `json:"itemId,omitempty"`
	Version int    `json:"version"`
}

// NewEvent builds an event with a fresh id
func NewEvent(eventType string, taskID, itemID uint) Event {
	return Event{
		ID:      uuid.NewString(),
		Type:    eventType,
		TaskID:  taskID,
		ItemID:  itemID,
		Version: 1,
	}
}

// Hub tracks open clients per user and fans events out to them
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[Client]struct{}
}

// NewHub creates an empty Hub
func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[Client]struct{})}
}

var hubInstance *Hub
var once sync.Once

// GetHub returns the process-wide hub
func GetHub() *Hub {
	once.Do(func() {
		hubInstance = NewHub()
	})
	return hubInstance
}

// Register adds a client under a user ID
func (h *Hub) Register(userID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[userID]; !ok {
		h.clients[userID] = make(map[Client]struct{})
	}
	h.clients[userID][client] = struct{}{}
}

// Unregister removes a client and drops the user entry once empty
func (h *Hub) Unregister(userID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.clients[userID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.clients, userID)
		}
	}
}

// Count returns how many clients a user has open
func (h *Hub) Count(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Broadcast sends a raw message to all clients of a user.
// Failed sends are left for the connection handler to clean up.
func (h *Hub) Broadcast(userID string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		c.Send(message)
	}
}

// Publish encodes evt and broadcasts it to the user's clients
func (h *Hub) Publish(userID string, evt Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		log.Printf("encode realtime event %s: %v", evt.Type, err)
		return
	}
	h.Broadcast(userID, data)
}
