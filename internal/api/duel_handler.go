package api

import (
	"github.com/dilmax12/HeroForgeNew-sub004/internal/matchmaking"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/push"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/rating"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/service"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/storage"
)

// DuelHandler groups all duel-related HTTP handlers.
type DuelHandler struct {
	repo     storage.Repository
	duels    *service.DuelService
	registry *service.Registry
	results  *service.ResultService
	ratings  *rating.Service
	queue    *matchmaking.Queue
	hub      *push.Hub
}

// NewDuelHandler wires the handler with its collaborating services.
func NewDuelHandler(
	repo storage.Repository,
	duels *service.DuelService,
	registry *service.Registry,
	results *service.ResultService,
	ratings *rating.Service,
	queue *matchmaking.Queue,
	hub *push.Hub,
) *DuelHandler {
	return &DuelHandler{
		repo:     repo,
		duels:    duels,
		registry: registry,
		results:  results,
		ratings:  ratings,
		queue:    queue,
		hub:      hub,
	}
}
