package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/constants"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/logging"
)

type enqueueRequest struct {
	HeroID   string `json:"hero_id"`
	HeroName string `json:"hero_name"`
}

// Enqueue registers a hero for matchmaking. The response carries an
// immediate pairing when an opponent was already waiting.
func (h *DuelHandler) Enqueue(c *gin.Context) {
	var req enqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.HeroID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrHeroIDRequired})
		return
	}
	m, matched, err := h.queue.Enqueue(req.HeroID, req.HeroName)
	if err != nil {
		// The waiter stays queued; the caller can retry or poll.
		logging.Error("failed to create match on pairing", err, logging.Fields{constants.LogFieldHeroID: req.HeroID})
		c.JSON(http.StatusOK, gin.H{"matched": false, "match": nil})
		return
	}
	out, _ := MarshalIntoSnakeTimestamps(m)
	c.JSON(http.StatusOK, gin.H{"matched": matched, "match": out})
}

// PollQueue is the manual fallback for heroes not using the push channel.
func (h *DuelHandler) PollQueue(c *gin.Context) {
	heroID := c.Query("hero_id")
	if heroID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrHeroIDRequired})
		return
	}
	m := h.queue.Poll(heroID)
	if m == nil {
		c.JSON(http.StatusOK, gin.H{"match": nil})
		return
	}
	out, _ := MarshalIntoSnakeTimestamps(m)
	c.JSON(http.StatusOK, gin.H{"match": out})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser client is served from a different origin in development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SubscribeQueue upgrades to a WebSocket and delivers match-found events
// for the hero until the connection closes.
func (h *DuelHandler) SubscribeQueue(c *gin.Context) {
	heroID := c.Query("hero_id")
	if heroID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrHeroIDRequired})
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", err, logging.Fields{constants.LogFieldHeroID: heroID})
		return
	}
	h.hub.Subscribe(heroID, conn)

	// A pairing may have landed between the enqueue call and this
	// subscription; deliver it immediately.
	if m := h.queue.Poll(heroID); m != nil {
		h.hub.MatchFound(heroID, m)
	}

	go func() {
		defer h.hub.Unsubscribe(heroID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
