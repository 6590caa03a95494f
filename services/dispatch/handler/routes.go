package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/middleware"
	"github.com/halarumdigital/traki-dispatch/services/dispatch"
	httpHandler "github.com/halarumdigital/traki-dispatch/services/dispatch/handler/http"
)

// Handler combines all handlers for the dispatch service
type Handler struct {
	dispatchHTTP *httpHandler.DispatchHandler
}

// NewHandler creates a new combined handler
func NewHandler(dispatchUC dispatch.DispatchUC) *Handler {
	return &Handler{
		dispatchHTTP: httpHandler.NewDispatchHandler(dispatchUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMiddleware *middleware.APIKeyMiddleware) {
	requests := e.Group("/requests")
	requests.POST("", h.dispatchHTTP.CreateRequest)
	requests.GET("/:id", h.dispatchHTTP.GetRequest)
	requests.POST("/:id/respond", h.dispatchHTTP.Respond)
	requests.POST("/:id/status", h.dispatchHTTP.UpdateStatus)
	requests.POST("/:id/cancel", h.dispatchHTTP.Cancel)

	drivers := e.Group("/drivers")
	drivers.GET("/:id/offers", h.dispatchHTTP.ListOffers)
	drivers.GET("/:id/active", h.dispatchHTTP.GetActive)

	// Internal routes for service-to-service communication (API key required)
	scheduler := e.Group("/internal/requests",
		apiKeyMiddleware.ValidateAPIKey(apiKeyMiddleware.SchedulerKey(), apiKeyMiddleware.AdminKey()))
	scheduler.POST("/:id/dispatch", h.dispatchHTTP.TriggerDispatch)

	admin := e.Group("/internal/settings", apiKeyMiddleware.ValidateAPIKey(apiKeyMiddleware.AdminKey()))
	admin.GET("", h.dispatchHTTP.GetSettings)
	admin.PUT("", h.dispatchHTTP.UpdateSettings)
}
