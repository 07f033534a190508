package main

import (
	"log"

	"github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/comments-service/internal/app"
	"github.com/iliyamo/comments-service/internal/config"
	"github.com/iliyamo/comments-service/internal/router"
)

func main() {
	cfg := config.LoadGatewayConfig()
	e := app.NewEcho(cfg.LogLevel)
	e.Use(middleware.CORS())
	if err := router.RegisterGateway(e, cfg.Upstreams); err != nil {
		log.Fatalf("gateway: %v", err)
	}

	addr := ":" + cfg.Port
	log.Printf("gateway listening on %s (env=%s)", addr, cfg.Env)
	log.Printf("Proxying to:")
	for _, up := range cfg.Upstreams {
		log.Printf("  %s: %s", up.Name, up.Target)
	}

	if err := app.Run(e, addr, cfg.ShutdownTimeout); err != nil {
		log.Fatal(err)
	}
}
