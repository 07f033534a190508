package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iliyamo/comments-service/internal/config"
	"github.com/iliyamo/comments-service/internal/queue"
)

func main() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("events-consumer: writing to %s", cfg.EventsLogDir)
	if err := queue.StartNotFoundConsumer(ctx, cfg.AMQPURL, cfg.EventsLogDir); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
