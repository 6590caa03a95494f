package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/constants"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/logger"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	ws "github.com/halarumdigital/traki-dispatch/internal/pkg/websocket"
	"github.com/halarumdigital/traki-dispatch/services/couriers"
)

// WSHandler serves driver websocket connections. Inbound heartbeat and
// availability frames update presence; outbound dispatch events arrive via
// the NATS forwarder.
type WSHandler struct {
	manager   *ws.Manager
	courierUC couriers.CourierUC
}

// NewWSHandler creates a new websocket handler
func NewWSHandler(manager *ws.Manager, courierUC couriers.CourierUC) *WSHandler {
	return &WSHandler{
		manager:   manager,
		courierUC: courierUC,
	}
}

// heartbeatFrame is the inbound heartbeat payload
type heartbeatFrame struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// availabilityFrame is the inbound availability toggle payload
type availabilityFrame struct {
	Available bool `json:"available"`
}

// HandleConnection handles GET /ws/drivers
func (h *WSHandler) HandleConnection(c echo.Context) error {
	return h.manager.HandleConnection(c, h.onMessage)
}

func (h *WSHandler) onMessage(driverID string, msg models.WSMessage) {
	id, err := uuid.Parse(driverID)
	if err != nil {
		logger.Warn("websocket frame from malformed driver id", logger.String("driver_id", driverID))
		return
	}
	ctx := context.Background()

	switch msg.Event {
	case constants.EventHeartbeat:
		var frame heartbeatFrame
		if err := json.Unmarshal(msg.Data, &frame); err != nil {
			h.sendError(driverID, "invalid heartbeat payload")
			return
		}
		var loc *models.Location
		if frame.Latitude != nil && frame.Longitude != nil {
			loc = &models.Location{
				Latitude:  *frame.Latitude,
				Longitude: *frame.Longitude,
				Timestamp: time.Now(),
			}
		}
		if err := h.courierUC.Heartbeat(ctx, id, loc); err != nil {
			logger.Warn("websocket heartbeat failed",
				logger.String("driver_id", driverID),
				logger.Err(err))
			h.sendError(driverID, "heartbeat failed")
		}

	case constants.EventAvailability:
		var frame availabilityFrame
		if err := json.Unmarshal(msg.Data, &frame); err != nil {
			h.sendError(driverID, "invalid availability payload")
			return
		}
		if err := h.courierUC.SetAvailability(ctx, id, frame.Available); err != nil {
			logger.Warn("websocket availability toggle failed",
				logger.String("driver_id", driverID),
				logger.Err(err))
			h.sendError(driverID, "availability update failed")
		}

	default:
		h.sendError(driverID, "unknown event: "+msg.Event)
	}
}

func (h *WSHandler) sendError(driverID, message string) {
	h.manager.SendToDriver(driverID, constants.EventError, echo.Map{"error": message})
}
