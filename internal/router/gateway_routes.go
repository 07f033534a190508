package router

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/comments-service/internal/config"
	"github.com/iliyamo/comments-service/internal/handler"
)

// RegisterGateway wires the API gateway: its own health check plus one
// reverse proxy per upstream.  The upstream's public prefix is stripped
// before forwarding, so /api/comments/comments/2 reaches the comments
// service as /comments/2.  An unreachable upstream answers 503.
func RegisterGateway(e *echo.Echo, upstreams []config.Upstream) error {
	e.GET("/health", handler.HealthFor("gateway"))

	for _, up := range upstreams {
		target, err := url.Parse(up.Target)
		if err != nil {
			return err
		}
		name := up.Name
		prefix := strings.TrimSuffix(up.Prefix, "/")
		proxy := middleware.ProxyWithConfig(middleware.ProxyConfig{
			Balancer: middleware.NewRoundRobinBalancer([]*middleware.ProxyTarget{{Name: name, URL: target}}),
			Rewrite: map[string]string{
				prefix:        "/",
				prefix + "/*": "/$1",
			},
			ErrorHandler: func(c echo.Context, err error) error {
				c.Logger().Errorf("Proxy error to %s service: %v", strings.ToLower(name), err)
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": name + " service unavailable"})
			},
		})
		e.Group(prefix, proxy)
	}
	return nil
}
