package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryMiddleware converts handler panics into 500 responses
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered",
						logger.Any("panic", r),
						logger.String("path", c.Request().URL.Path),
						logger.String("stack", string(debug.Stack())))
					err = echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("internal error: %v", r))
				}
			}()
			return next(c)
		}
	}
}
