// @title Pathwise Backend API
// @version 1.0
// @description Backend for the Pathwise AI learning platform: generated roadmaps, quizzes, study resources, translations and per-user progress tracking.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"pathwise_backend/internal/app"
	"pathwise_backend/internal/config"
	"pathwise_backend/pkg/configwatcher"
	"pathwise_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", application.OnConfigReload)

	application.Run()
}
