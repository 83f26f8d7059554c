package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/constants"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/rating"
)

// GetRating returns the hero's current Elo rating and display tier. Missing
// records and read failures degrade to the default rating of 1000.
func (h *DuelHandler) GetRating(c *gin.Context) {
	heroID := c.Param("heroID")
	if heroID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrHeroIDRequired})
		return
	}
	r := h.ratings.RatingFor(heroID)
	c.JSON(http.StatusOK, gin.H{"rating": r, "tier": rating.Tier(r)})
}

type leaderboardEntry struct {
	HeroID string `json:"hero_id"`
	Rating int    `json:"rating"`
	Tier   string `json:"tier"`
}

// Leaderboard returns the top-N ratings.
func (h *DuelHandler) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 || limit > constants.MaxLeaderboardSize {
		limit = constants.DefaultLeaderboardSize
	}
	recs, err := h.ratings.Leaderboard(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRatings})
		return
	}
	entries := make([]leaderboardEntry, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, leaderboardEntry{
			HeroID: rec.HeroID,
			Rating: rec.Rating,
			Tier:   rating.Tier(rec.Rating),
		})
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
