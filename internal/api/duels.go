package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/constants"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/engine"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/service"
)

// StartDuel registers a new duel attempt and opens a combat session.
func (h *DuelHandler) StartDuel(c *gin.Context) {
	var req service.StartDuelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.HeroID == "" && req.Hero == nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrHeroIDRequired})
		return
	}
	s, err := h.duels.StartDuel(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHeroNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrHeroNotFound})
		case errors.Is(err, service.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateDuel})
		}
		return
	}
	c.JSON(http.StatusCreated, s.View())
}

// GetDuel returns the current session snapshot.
func (h *DuelHandler) GetDuel(c *gin.Context) {
	s, ok := h.registry.Get(c.Param("duelID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrDuelNotFound})
		return
	}
	c.JSON(http.StatusOK, s.View())
}

type duelActionRequest struct {
	Action   string `json:"action"`
	SkillKey string `json:"skill_key"`
}

// DuelAction applies one player action to an active session.
func (h *DuelHandler) DuelAction(c *gin.Context) {
	s, ok := h.registry.Get(c.Param("duelID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrDuelNotFound})
		return
	}
	var req duelActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	action := engine.ActionKind(req.Action)
	switch action {
	case engine.ActionPhysical, engine.ActionMagic, engine.ActionSpecial:
	default:
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	res, err := s.SubmitAction(action, req.SkillKey)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionEnded):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrDuelAlreadyOver})
		default:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrDuelNotAwaitingAction})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"turn": res, "duel": s.View()})
}

// SubmitResult persists a terminal outcome reported by a client-simulated
// duel. Persistence failures are reported in the body, never as an HTTP
// error: the local combat outcome stands either way.
func (h *DuelHandler) SubmitResult(c *gin.Context) {
	var rec service.DuelRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if rec.HeroID == "" && rec.HeroName == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrHeroIDRequired})
		return
	}
	receipt := h.results.SubmitDuelResult(rec)
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyResult: receipt})
}

// ResolveDuel runs a server-authoritative resolution in one round trip.
func (h *DuelHandler) ResolveDuel(c *gin.Context) {
	var req service.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.HeroID == "" && req.Hero == nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrHeroIDRequired})
		return
	}
	out, receipt, err := h.duels.ResolveServerSide(req, h.results)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHeroNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrHeroNotFound})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateDuel})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyResult: out, "submission": receipt})
}

// History returns a hero's most recent duel outcomes, newest first.
func (h *DuelHandler) History(c *gin.Context) {
	heroID := c.Query("hero_id")
	if heroID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrHeroIDRequired})
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	events, err := h.results.History(heroID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchHistory})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(events)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchHistory})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": out})
}

// Weekly returns the wins/total aggregate over the trailing seven days.
func (h *DuelHandler) Weekly(c *gin.Context) {
	entries, err := h.results.Weekly()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchWeekly})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
