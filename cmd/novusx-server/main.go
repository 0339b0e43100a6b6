package main

import (
	"os"

	"github.com/novusx/novusx-server/internal/api"
	"github.com/novusx/novusx-server/internal/constants"
	"github.com/novusx/novusx-server/internal/logging"
	"github.com/novusx/novusx-server/internal/version"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func main() {
	cfg := loadConfigOrDefaults(os.Getenv(constants.EnvConfigPath))

	// Allow the DB path to be configured via NOVUSX_DB. Default to a
	// `data/` directory inside the backend module for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/novusx.db"
	}
	repo := createRepositoryOrExit(dbPath)

	// Each server instance claims timed-out matches under its own worker
	// id, so several instances can share one database.
	workerID := uuid.NewString()
	startTimeoutScanner(repo, cfg.ScanInterval, workerID)

	handler := api.NewMatchHandler(repo, cfg.ActionTimeout, cfg.PublicMatchTTL)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RoutePublicMatches, handler.ListPublicMatches)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
		apiRoutes.POST(constants.RoutePlayers, handler.RegisterPlayer)

		// Endpoints that require a registered player identity
		protected := apiRoutes.Group("")
		protected.Use(api.IdentityRequired())

		protected.GET(constants.RoutePlayerStats, handler.GetPlayerStats)
		protected.POST(constants.RoutePlayerStats, handler.UpdatePlayerProfile)
		protected.POST(constants.RouteMatches, handler.CreateMatch)
		protected.POST(constants.RouteMatchesJoin, handler.JoinMatch)
		protected.GET(constants.RouteMatchByCode, handler.GetMatch)
		protected.POST(constants.RouteMatchAction, handler.SubmitAction)
		protected.POST(constants.RouteMatchLeave, handler.LeaveMatch)
		protected.POST(constants.RouteMatchRematch, handler.Rematch)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr:   addr,
		constants.LogFieldWorker: workerID,
		"version":                version.Version,
	})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
