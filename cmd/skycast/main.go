package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"skycast/internal/cli"
	"skycast/internal/config"
	"skycast/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Logs go to stderr and only when WEATHER_DEBUG is set, so command
	// output stays clean for piping.
	logger := zap.NewNop()
	if cfg.Debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	}
	defer logger.Sync()

	client := weather.NewClient(cfg.APIKey, logger)
	os.Exit(cli.Run(context.Background(), os.Args[1:], cfg, client, os.Stdout))
}
