package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/api"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/config"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/constants"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/logging"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/matchmaking"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/push"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/rating"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/service"
)

func main() {
	// Local development settings come from a .env file when present.
	_ = godotenv.Load()

	cfg, err := config.LoadEnv()
	if err != nil {
		logging.Fatal("Invalid environment configuration", err, nil)
	}
	content := loadContentOrExit(cfg.ContentPath)
	repo := createRepositoryOrExit(cfg.DBPath)

	hub := push.NewHub()
	queue := matchmaking.NewQueue(repo, hub)
	ratings := rating.NewService(repo)
	results := service.NewResultService(repo, ratings)
	registry := service.NewRegistry(results, cfg.TurnSeconds, cfg.SessionTTL)
	registry.StartSweeper(cfg.SweepInterval)
	duels := service.NewDuelService(repo, content, registry)

	handler := api.NewDuelHandler(repo, duels, registry, results, ratings, queue, hub)

	router := gin.Default()
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteHealth, api.Health)
		apiRoutes.GET(constants.RouteVersion, api.Version)

		apiRoutes.POST(constants.RouteDuels, handler.StartDuel)
		apiRoutes.GET(constants.RouteDuelByID, handler.GetDuel)
		apiRoutes.POST(constants.RouteDuelAction, handler.DuelAction)
		apiRoutes.POST(constants.RouteDuelSubmit, handler.SubmitResult)
		apiRoutes.POST(constants.RouteDuelResolve, handler.ResolveDuel)
		apiRoutes.GET(constants.RouteDuelHistory, handler.History)
		apiRoutes.GET(constants.RouteDuelWeekly, handler.Weekly)

		apiRoutes.POST(constants.RouteQueue, handler.Enqueue)
		apiRoutes.GET(constants.RouteQueuePoll, handler.PollQueue)
		apiRoutes.GET(constants.RouteQueueSubscribe, handler.SubscribeQueue)

		apiRoutes.GET(constants.RouteMatches, handler.ListMatches)
		apiRoutes.POST(constants.RouteMatchStart, handler.StartMatch)
		apiRoutes.POST(constants.RouteMatchComplete, handler.CompleteMatch)

		apiRoutes.GET(constants.RouteRatingByHero, handler.GetRating)
		apiRoutes.GET(constants.RouteLeaderboard, handler.Leaderboard)
	}

	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: cfg.Address})
	if err := router.Run(cfg.Address); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
