package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/constants"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
)

// ListMatches returns matches involving the given hero, newest first.
func (h *DuelHandler) ListMatches(c *gin.Context) {
	heroID := c.Query("hero_id")
	if heroID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrHeroIDRequired})
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 || limit > constants.MaxHistoryPage {
		limit = constants.DefaultHistoryPage
	}
	matches, err := h.repo.GetMatchesByHero(heroID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(matches)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": out})
}

// StartMatch transitions a match from pending to started.
func (h *DuelHandler) StartMatch(c *gin.Context) {
	m, err := h.repo.GetMatchByMatchID(c.Param("matchID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}
	if err := m.Start(time.Now()); err != nil {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrInvalidTransition})
		return
	}
	if err := h.repo.UpdateMatch(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInvalidTransition})
		return
	}
	out, _ := MarshalIntoSnakeTimestamps(m)
	c.JSON(http.StatusOK, gin.H{"match": out})
}

type completeMatchRequest struct {
	WinnerID   string `json:"winner_id"`
	WinnerName string `json:"winner_name"`
	XP         int    `json:"xp"`
	Gold       int    `json:"gold"`
}

// CompleteMatch transitions a started match to its terminal state with the
// winner and reward totals.
func (h *DuelHandler) CompleteMatch(c *gin.Context) {
	m, err := h.repo.GetMatchByMatchID(c.Param("matchID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}
	var req completeMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if err := m.Complete(req.WinnerID, req.WinnerName, req.XP, req.Gold, time.Now()); err != nil {
		if errors.Is(err, game.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrInvalidTransition})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInvalidTransition})
		return
	}
	if err := h.repo.UpdateMatch(m); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInvalidTransition})
		return
	}
	out, _ := MarshalIntoSnakeTimestamps(m)
	c.JSON(http.StatusOK, gin.H{"match": out})
}
