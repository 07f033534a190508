package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/comments-service/internal/config"
)

func TestGatewayHealth(t *testing.T) {
	e := echo.New()
	require.NoError(t, RegisterGateway(e, nil))

	rec := get(t, e, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"gateway"}`, rec.Body.String())
}

func TestGatewayStripsPrefix(t *testing.T) {
	seen := make(chan string, 1)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":2}`))
	}))
	defer upstream.Close()

	e := echo.New()
	require.NoError(t, RegisterGateway(e, []config.Upstream{
		{Name: "Comments", Prefix: "/api/comments", Target: upstream.URL},
	}))

	rec := get(t, e, "/api/comments/comments/2")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/comments/2", <-seen)
	assert.JSONEq(t, `{"id":2}`, rec.Body.String())
}

func TestGatewayUpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	target := upstream.URL
	upstream.Close()

	e := echo.New()
	require.NoError(t, RegisterGateway(e, []config.Upstream{
		{Name: "Comments", Prefix: "/api/comments", Target: target},
	}))

	rec := get(t, e, "/api/comments/comments")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"Comments service unavailable"}`, rec.Body.String())
}

func TestGatewayRejectsBadTarget(t *testing.T) {
	e := echo.New()
	err := RegisterGateway(e, []config.Upstream{{Name: "Posts", Prefix: "/api/posts", Target: "://bad"}})
	assert.Error(t, err)
}
