package push

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/constants"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/logging"
)

// writeWait bounds every outbound write so a dead peer cannot block the
// caller.
const writeWait = 5 * time.Second

// Conn is the subset of *websocket.Conn the hub needs.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

var _ Conn = (*websocket.Conn)(nil)

// Hub owns the live match-found notification channels, one per hero id.
// Delivery is best effort: a failed write tears the channel down and the
// hero falls back to polling.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string]*subscriber
}

type subscriber struct {
	conn Conn
	mu   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[string]*subscriber)}
}

// Subscribe associates a connection with a hero id. A previous connection
// for the same hero is closed first.
func (h *Hub) Subscribe(heroID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.subscribers[heroID]; ok {
		existing.conn.Close()
	}
	h.subscribers[heroID] = &subscriber{conn: conn}
}

// Unsubscribe tears down the hero's channel if it still belongs to conn.
// The conn check keeps the closed-out reader of a replaced connection from
// tearing down its successor.
func (h *Hub) Unsubscribe(heroID string, conn Conn) {
	h.mu.Lock()
	sub, ok := h.subscribers[heroID]
	if ok && sub.conn == conn {
		delete(h.subscribers, heroID)
	} else {
		ok = false
	}
	h.mu.Unlock()
	if ok {
		sub.conn.Close()
	}
}

type matchFoundEvent struct {
	Type  string      `json:"type"`
	Match *game.Match `json:"match"`
}

// MatchFound pushes a match-found event to the hero, if subscribed.
func (h *Hub) MatchFound(heroID string, m *game.Match) {
	h.mu.Lock()
	sub, ok := h.subscribers[heroID]
	h.mu.Unlock()
	if !ok {
		return
	}

	data, err := json.Marshal(matchFoundEvent{Type: "match_found", Match: m})
	if err != nil {
		logging.Error("failed to encode match event", err, logging.Fields{constants.LogFieldHeroID: heroID})
		return
	}

	sub.mu.Lock()
	sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
	err = sub.conn.WriteMessage(websocket.TextMessage, data)
	sub.mu.Unlock()
	if err != nil {
		logging.Warn("dropping dead match subscriber", logging.Fields{constants.LogFieldHeroID: heroID})
		h.Unsubscribe(heroID, sub.conn)
	}
}
