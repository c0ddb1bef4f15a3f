package main

import (
	"log"

	"cinema-chain/cmd"
	"cinema-chain/internal/data/repository"
	"cinema-chain/internal/queue"
	"cinema-chain/internal/wire"
	"cinema-chain/pkg/cache"
	"cinema-chain/pkg/database"
	"cinema-chain/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Optional infrastructure: the app serves without redis or the broker,
	// availability reads just skip the cache and events are dropped.
	redisClient := cache.NewRedisClient(config.Redis, logger)
	availability := cache.NewAvailabilityCache(redisClient, config.Redis.AvailabilityTTL, logger)
	publisher := queue.NewPublisher(config.Queue.URL, logger)

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, config, availability, publisher, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
