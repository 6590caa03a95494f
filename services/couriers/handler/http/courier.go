package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	"github.com/halarumdigital/traki-dispatch/internal/utils"
	"github.com/halarumdigital/traki-dispatch/services/couriers"
	couriererrors "github.com/halarumdigital/traki-dispatch/services/couriers/errors"
)

// CourierHandler handles HTTP requests for courier presence operations
type CourierHandler struct {
	courierUC couriers.CourierUC
}

// NewCourierHandler creates a new courier HTTP handler
func NewCourierHandler(courierUC couriers.CourierUC) *CourierHandler {
	return &CourierHandler{
		courierUC: courierUC,
	}
}

// AvailabilityRequestBody is the request structure for an availability toggle
type AvailabilityRequestBody struct {
	Available bool `json:"available"`
}

// HeartbeatRequestBody is the request structure for a heartbeat, with an
// optional position payload
type HeartbeatRequestBody struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// PushTokenRequestBody is the request structure for push token registration
type PushTokenRequestBody struct {
	Token string `json:"token"`
}

// GetCourier handles GET /couriers/:id
func (h *CourierHandler) GetCourier(c echo.Context) error {
	courierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "courier id must be a valid UUID")
	}

	courier, err := h.courierUC.GetCourier(c.Request().Context(), courierID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", courier)
}

// SetAvailability handles POST /drivers/:id/availability
func (h *CourierHandler) SetAvailability(c echo.Context) error {
	courierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "driver id must be a valid UUID")
	}

	var body AvailabilityRequestBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.courierUC.SetAvailability(c.Request().Context(), courierID, body.Available); err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", echo.Map{
		"available": body.Available,
	})
}

// Heartbeat handles POST /drivers/:id/heartbeat
func (h *CourierHandler) Heartbeat(c echo.Context) error {
	courierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "driver id must be a valid UUID")
	}

	var body HeartbeatRequestBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	var loc *models.Location
	if body.Latitude != nil && body.Longitude != nil {
		loc = &models.Location{
			Latitude:  *body.Latitude,
			Longitude: *body.Longitude,
			Timestamp: time.Now(),
		}
	}

	if err := h.courierUC.Heartbeat(c.Request().Context(), courierID, loc); err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Heartbeat recorded", nil)
}

// RegisterPushToken handles POST /drivers/:id/push-token
func (h *CourierHandler) RegisterPushToken(c echo.Context) error {
	courierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "driver id must be a valid UUID")
	}

	var body PushTokenRequestBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if body.Token == "" {
		return utils.BadRequestResponse(c, "token is required")
	}

	if err := h.courierUC.RegisterPushToken(c.Request().Context(), courierID, body.Token); err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Push token registered", nil)
}

func (h *CourierHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, couriererrors.ErrCourierNotFound):
		return utils.NotFoundResponse(c, "Courier not found")
	case errors.Is(err, couriererrors.ErrCourierOnDelivery):
		return utils.ConflictResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
