package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/you-humble/fleet-maintenance/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		log.Fatalf("failed to init app: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Printf("app stopped with error: %v", err)
	}
}
