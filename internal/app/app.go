// Package app assembles the Echo instances for the service binaries so
// that the wiring in main stays small and can be exercised by tests.
package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	glog "github.com/labstack/gommon/log"
)

// NewEcho returns an Echo instance with the middleware every binary
// shares: panic recovery, request logging and the configured log level.
func NewEcho(logLevel string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(ParseLogLevel(logLevel))
	// /comments/ and /comments serve the same route.
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} ${remote_ip} ${method} ${uri} ${status} ${latency_human}\n",
	}))
	return e
}

// ParseLogLevel maps LOG_LEVEL values onto gommon levels.  Unknown values
// fall back to INFO.
func ParseLogLevel(s string) glog.Lvl {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return glog.DEBUG
	case "warn", "warning":
		return glog.WARN
	case "error":
		return glog.ERROR
	case "off":
		return glog.OFF
	default:
		return glog.INFO
	}
}

// Run starts e on addr and blocks until SIGINT/SIGTERM, then drains
// in-flight requests for at most grace.
func Run(e *echo.Echo, addr string, grace time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("shutting down (grace=%s)", grace)
	sctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	return e.Shutdown(sctx)
}
