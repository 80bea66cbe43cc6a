package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"anonbot/internal/app"
	"anonbot/internal/config"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatalf("app exited with error: %v", err)
	}
}
