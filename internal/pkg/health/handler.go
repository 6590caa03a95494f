package health

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

// Status is the health check response body
type Status struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	UptimeSec int64  `json:"uptime_seconds"`
}

// RegisterHealthEndpoints registers liveness and readiness endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	handler := func(c echo.Context) error {
		return c.JSON(http.StatusOK, Status{
			Status:    "ok",
			Service:   serviceName,
			UptimeSec: int64(time.Since(startTime).Seconds()),
		})
	}

	e.GET("/health", handler)
	e.GET("/health/ready", handler)
}
