package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health is a simple health‑check endpoint used by load balancers and the
// API gateway to verify that the comments service is running.
var Health = HealthFor("comments")

// HealthFor returns a health handler reporting the given service name.
func HealthFor(service string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "service": service})
	}
}
