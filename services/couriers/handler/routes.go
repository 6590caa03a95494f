package handler

import (
	"github.com/labstack/echo/v4"

	natspkg "github.com/halarumdigital/traki-dispatch/internal/pkg/nats"
	ws "github.com/halarumdigital/traki-dispatch/internal/pkg/websocket"
	"github.com/halarumdigital/traki-dispatch/services/couriers"
	httpHandler "github.com/halarumdigital/traki-dispatch/services/couriers/handler/http"
	natsHandler "github.com/halarumdigital/traki-dispatch/services/couriers/handler/nats"
)

// Handler combines all handlers for the courier service
type Handler struct {
	courierHTTP *httpHandler.CourierHandler
	courierWS   *WSHandler
	forwarder   *natsHandler.EventForwarder
}

// NewHandler creates a new combined handler
func NewHandler(
	courierUC couriers.CourierUC,
	natsClient *natspkg.Client,
	wsManager *ws.Manager,
) *Handler {
	return &Handler{
		courierHTTP: httpHandler.NewCourierHandler(courierUC),
		courierWS:   NewWSHandler(wsManager, courierUC),
		forwarder:   natsHandler.NewEventForwarder(natsClient, wsManager),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	drivers := e.Group("/drivers")
	drivers.POST("/:id/availability", h.courierHTTP.SetAvailability)
	drivers.POST("/:id/heartbeat", h.courierHTTP.Heartbeat)
	drivers.POST("/:id/push-token", h.courierHTTP.RegisterPushToken)

	e.GET("/couriers/:id", h.courierHTTP.GetCourier)
	e.GET("/ws/drivers", h.courierWS.HandleConnection)
}

// InitNATSConsumers initializes the dispatch event forwarder
func (h *Handler) InitNATSConsumers() error {
	return h.forwarder.InitNATSConsumers()
}

// Stop stops the NATS consumers
func (h *Handler) Stop() {
	h.forwarder.Stop()
}
