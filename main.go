package main

import (
	"FoodShare-Backend/cmd/config"
	migration "FoodShare-Backend/cmd/database/migrate"
	"FoodShare-Backend/cmd/database/seed"
	"FoodShare-Backend/internal/utils"
	"FoodShare-Backend/pkg/logger"
	"context"
	"log"
	"os"

	"github.com/robfig/cron/v3"
)

func main() {
	utils.LoadConfig()
	logger.Init("foodshare-backend", utils.GetConfig("APP_ENV") != "production")

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	sweeper := config.NewSweeper(db)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "seed":
			if err := seed.Seed(db); err != nil {
				log.Fatalf("failed to seed database: %v", err)
			}
		case "sweep":
			if _, err := sweeper.Run(context.Background()); err != nil {
				log.Fatalf("expiration sweep failed: %v", err)
			}
		default:
			log.Fatalf("unknown command %q", os.Args[1])
		}
		return
	}

	// Daily expiration sweep. Default runs at midnight; override via
	// SWEEP_SCHEDULE in config.yaml.
	schedule := utils.GetConfig("SWEEP_SCHEDULE")
	if schedule == "" {
		schedule = "0 0 * * *"
	}
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if _, err := sweeper.Run(context.Background()); err != nil {
			logger.Logger.Error().Err(err).Msg("expiration sweep failed")
		}
	}); err != nil {
		log.Fatalf("failed to schedule expiration sweep: %v", err)
	}
	c.Start()
	defer c.Stop()

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
