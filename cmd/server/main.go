// Command server runs the dual-inventory HTTP API.
//
// Configuration is read from CONFIG_PATH (or ./config.yaml) and overridden by
// environment variables. Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/languidpie/smit-homework-v2/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
