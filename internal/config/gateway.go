package config

import "time"

// Upstream is one service the gateway forwards to.
type Upstream struct {
	Name   string // display name used in error bodies and logs, e.g. "Comments"
	Prefix string // public path prefix stripped before forwarding, e.g. "/api/comments"
	Target string // base URL of the service
}

// GatewayConfig configures cmd/gateway.
type GatewayConfig struct {
	Env             string
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration
	Upstreams       []Upstream
}

// LoadGatewayConfig reads the gateway settings.  Upstream defaults match
// the ports each service listens on in local development.
func LoadGatewayConfig() GatewayConfig {
	LoadDotEnv()
	return GatewayConfig{
		Env:             envStr("APP_ENV", "dev"),
		Port:            envStr("GATEWAY_PORT", "4000"),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		ShutdownTimeout: envDur("SHUTDOWN_TIMEOUT", 10*time.Second),
		Upstreams: []Upstream{
			{Name: "Users", Prefix: "/api/users", Target: envStr("USERS_URL", "http://localhost:4001")},
			{Name: "Posts", Prefix: "/api/posts", Target: envStr("POSTS_URL", "http://localhost:4002")},
			{Name: "Comments", Prefix: "/api/comments", Target: envStr("COMMENTS_URL", "http://localhost:8000")},
		},
	}
}
