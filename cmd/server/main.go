package main // Entry point package

import (
	"context"
	"log" // Logging library

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/comments-service/internal/app"
	"github.com/iliyamo/comments-service/internal/config" // Internal config loader
	"github.com/iliyamo/comments-service/internal/handler"
	queue_publisher "github.com/iliyamo/comments-service/internal/service"
)

func main() {
	cfg := config.Load() // Load environment config

	var pub handler.EventPublisher
	if cfg.EventsEnabled {
		pub = queue_publisher.New(cfg.AMQPURL)
		log.Printf("lookup-miss events enabled")
	}

	// Rate limiting is opt-in and degrades to pass-through when Redis is unavailable.
	rlCfg := config.LoadRateLimitConfig()
	var rdb *redis.Client
	if rlCfg.Enabled {
		client, err := config.NewRedisClient(context.Background(), config.LoadRedisConfig())
		if err != nil {
			log.Printf("rate limiting disabled: %v", err)
		} else {
			defer client.Close()
			rdb = client
		}
	}

	e := app.NewServer(cfg, rlCfg, rdb, pub)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := app.Run(e, addr, cfg.ShutdownTimeout); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
