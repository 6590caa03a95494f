package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/logger"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	"github.com/labstack/echo/v4"
)

const apiKeyHeader = "X-API-Key"

// APIKeyMiddleware guards internal service-to-service routes
type APIKeyMiddleware struct {
	cfg models.APIKeyConfig
}

// NewAPIKeyMiddleware creates a new API key middleware
func NewAPIKeyMiddleware(cfg models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{cfg: cfg}
}

// ValidateAPIKey accepts requests carrying any of the given keys
func (m *APIKeyMiddleware) ValidateAPIKey(keys ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := c.Request().Header.Get(apiKeyHeader)
			if provided == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "API key is required")
			}

			for _, key := range keys {
				if key != "" && subtle.ConstantTimeCompare([]byte(provided), []byte(key)) == 1 {
					return next(c)
				}
			}

			logger.Warn("rejected internal request with invalid API key",
				logger.String("path", c.Request().URL.Path))
			return echo.NewHTTPError(http.StatusForbidden, "Invalid API key")
		}
	}
}

// SchedulerKey returns the configured scheduler key
func (m *APIKeyMiddleware) SchedulerKey() string { return m.cfg.SchedulerKey }

// AdminKey returns the configured admin key
func (m *APIKeyMiddleware) AdminKey() string { return m.cfg.AdminKey }
