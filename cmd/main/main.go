package main

import (
	"context"
	"fmt"

	"catalog/sitegen/internal/config"
	"catalog/sitegen/internal/container"

	log "github.com/sirupsen/logrus"
)

func main() {
	// Load configuration using viper
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := setupLogging(cfg.Log); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	log.Debug("Configuration loaded successfully")

	ctx := context.Background()

	// Initialize container with all dependencies
	app, err := container.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer app.Close()

	report, err := app.Run(ctx)
	if err != nil {
		app.Close()
		log.Fatalf("Site generation failed: %v", err)
	}

	log.Debugf("Run %s finished: %d products, %d categories, %d pages",
		report.RunID, report.Products, len(report.Categories), report.Pages)

	fmt.Println("Site generated successfully!")
}
