package hub

import (
	"encoding/json"
	"sync"
)

// Event is a message pushed to live review subscribers.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client is one open stream. The SSE handler reads from it until it is closed.
type Client chan []byte

// Hub fans review events out to the streams watching each game.
type Hub struct {
	games map[string]map[Client]bool
	mu    sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		games: make(map[string]map[Client]bool),
	}
}

// Subscribe adds a client to a game's stream.
func (h *Hub) Subscribe(gameID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.games[gameID]; !ok {
		h.games[gameID] = make(map[Client]bool)
	}
	h.games[gameID][client] = true
}

// Unsubscribe removes a client and closes its channel.
func (h *Hub) Unsubscribe(gameID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.games[gameID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client)
			if len(clients) == 0 {
				delete(h.games, gameID)
			}
		}
	}
}

// Close disconnects every client watching a game.
func (h *Hub) Close(gameID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.games[gameID] {
		close(client)
	}
	delete(h.games, gameID)
}

// Subscribers returns the number of clients watching a game.
func (h *Hub) Subscribers(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.games[gameID])
}

// Broadcast sends an event to every client of a game and returns how many
// received it. Clients whose buffer is full are skipped.
func (h *Hub) Broadcast(gameID string, event Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.games[gameID]
	if !ok {
		return 0
	}
	messageBytes, err := json.Marshal(event)
	if err != nil {
		return 0
	}

	sent := 0
	for client := range clients {
		// Non-blocking so a slow client cannot stall the others.
		select {
		case client <- messageBytes:
			sent++
		default:
		}
	}
	return sent
}
