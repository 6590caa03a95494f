package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	"github.com/halarumdigital/traki-dispatch/internal/utils"
	"github.com/halarumdigital/traki-dispatch/services/dispatch"
	dispatcherrors "github.com/halarumdigital/traki-dispatch/services/dispatch/errors"
)

// DispatchHandler handles HTTP requests for dispatch operations
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
	}
}

// StopRequest is one destination in a create request
type StopRequest struct {
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	ContactName  string  `json:"contact_name"`
	ContactPhone string  `json:"contact_phone"`
}

// CreateRequestBody is the request structure for creating a delivery request
type CreateRequestBody struct {
	CompanyID       string        `json:"company_id"`
	VehicleType     string        `json:"vehicle_type"`
	NeedsReturn     bool          `json:"needs_return"`
	PickupAddress   string        `json:"pickup_address"`
	PickupLatitude  float64       `json:"pickup_latitude"`
	PickupLongitude float64       `json:"pickup_longitude"`
	PickupContact   string        `json:"pickup_contact"`
	DriverPayout    int           `json:"driver_payout"`
	Currency        string        `json:"currency"`
	ScheduledAt     *time.Time    `json:"scheduled_at,omitempty"`
	Stops           []StopRequest `json:"stops"`
}

// RespondRequestBody is the request structure for a driver's offer response
type RespondRequestBody struct {
	DriverID string `json:"driver_id"`
	Response string `json:"response"` // "accept" or "reject"
}

// StatusRequestBody is the request structure for a lifecycle transition
type StatusRequestBody struct {
	DriverID   string `json:"driver_id"`
	Transition string `json:"transition"`
}

// CancelRequestBody is the request structure for cancelling a request
type CancelRequestBody struct {
	CancelledBy string `json:"cancelled_by"`
	Reason      string `json:"reason"`
}

// CreateRequest handles POST /requests
func (h *DispatchHandler) CreateRequest(c echo.Context) error {
	var body CreateRequestBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	companyID, err := uuid.Parse(body.CompanyID)
	if err != nil {
		return utils.BadRequestResponse(c, "company_id must be a valid UUID")
	}
	if body.PickupAddress == "" {
		return utils.BadRequestResponse(c, "pickup_address is required")
	}
	if body.VehicleType == "" {
		return utils.BadRequestResponse(c, "vehicle_type is required")
	}
	if len(body.Stops) == 0 {
		return utils.BadRequestResponse(c, "at least one stop is required")
	}

	req := &models.DeliveryRequest{
		CompanyID:       companyID,
		VehicleType:     body.VehicleType,
		NeedsReturn:     body.NeedsReturn,
		PickupAddress:   body.PickupAddress,
		PickupLatitude:  body.PickupLatitude,
		PickupLongitude: body.PickupLongitude,
		PickupContact:   body.PickupContact,
		DriverPayout:    body.DriverPayout,
		Currency:        body.Currency,
		ScheduledAt:     body.ScheduledAt,
		Status:          models.RequestStatusPending,
	}
	for i, s := range body.Stops {
		req.Stops = append(req.Stops, models.Stop{
			Rank:         i + 1,
			Address:      s.Address,
			Latitude:     s.Latitude,
			Longitude:    s.Longitude,
			ContactName:  s.ContactName,
			ContactPhone: s.ContactPhone,
			Status:       models.StopStatusPending,
		})
	}

	created, err := h.dispatchUC.CreateAndDispatch(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, dispatcherrors.ErrNoDriversAvailable) {
			// the request was persisted; the auto-cancel monitor owns it now
			return utils.SuccessResponse(c, http.StatusCreated, "Request created, no drivers available yet", created)
		}
		if created == nil {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to dispatch request: "+err.Error())
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Request created", created)
}

// GetRequest handles GET /requests/:id
func (h *DispatchHandler) GetRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "request id must be a valid UUID")
	}

	// reuse the internal dispatch snapshot through the usecase surface
	req, err := h.dispatchUC.GetRequestByID(c.Request().Context(), requestID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", req)
}

// Respond handles POST /requests/:id/respond
func (h *DispatchHandler) Respond(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "request id must be a valid UUID")
	}

	var body RespondRequestBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	driverID, err := uuid.Parse(body.DriverID)
	if err != nil {
		return utils.BadRequestResponse(c, "driver_id must be a valid UUID")
	}

	switch body.Response {
	case "accept":
		req, err := h.dispatchUC.Accept(c.Request().Context(), requestID, driverID)
		if err != nil {
			return h.mapError(c, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "Request accepted", req)
	case "reject":
		if err := h.dispatchUC.Reject(c.Request().Context(), requestID, driverID); err != nil {
			return h.mapError(c, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "Offer rejected", nil)
	default:
		return utils.BadRequestResponse(c, "response must be either accept or reject")
	}
}

// UpdateStatus handles POST /requests/:id/status
func (h *DispatchHandler) UpdateStatus(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "request id must be a valid UUID")
	}

	var body StatusRequestBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	driverID, err := uuid.Parse(body.DriverID)
	if err != nil {
		return utils.BadRequestResponse(c, "driver_id must be a valid UUID")
	}
	if body.Transition == "" {
		return utils.BadRequestResponse(c, "transition is required")
	}

	result, err := h.dispatchUC.Advance(c.Request().Context(), requestID, driverID, models.Transition(body.Transition))
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Status updated", result)
}

// Cancel handles POST /requests/:id/cancel
func (h *DispatchHandler) Cancel(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "request id must be a valid UUID")
	}

	var body CancelRequestBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if body.CancelledBy == "" {
		body.CancelledBy = "company"
	}

	if err := h.dispatchUC.Cancel(c.Request().Context(), requestID, body.CancelledBy, body.Reason); err != nil {
		if errors.Is(err, dispatcherrors.ErrAlreadyTerminal) {
			return utils.ConflictResponse(c, "Request already completed or cancelled")
		}
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request cancelled", nil)
}

// ListOffers handles GET /drivers/:id/offers
func (h *DispatchHandler) ListOffers(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "driver id must be a valid UUID")
	}

	offers, err := h.dispatchUC.ListPendingOffers(c.Request().Context(), driverID)
	if err != nil {
		return h.mapError(c, err)
	}
	if offers == nil {
		offers = []models.DriverOffer{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "", offers)
}

// GetActive handles GET /drivers/:id/active
func (h *DispatchHandler) GetActive(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "driver id must be a valid UUID")
	}

	req, err := h.dispatchUC.GetActiveRequest(c.Request().Context(), driverID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", req)
}

// TriggerDispatch handles POST /internal/requests/:id/dispatch, called by the
// external scheduler when a future-dated request comes due
func (h *DispatchHandler) TriggerDispatch(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "request id must be a valid UUID")
	}

	count, err := h.dispatchUC.Dispatch(c.Request().Context(), requestID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Dispatch cycle started", echo.Map{
		"offers_created": count,
	})
}

// GetSettings handles GET /internal/settings
func (h *DispatchHandler) GetSettings(c echo.Context) error {
	settings, err := h.dispatchUC.GetSettings(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to load settings: "+err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "", settings)
}

// UpdateSettings handles PUT /internal/settings
func (h *DispatchHandler) UpdateSettings(c echo.Context) error {
	var settings models.DispatchSettings
	if err := c.Bind(&settings); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.dispatchUC.UpdateSettings(c.Request().Context(), settings); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Settings updated", settings)
}

// mapError translates dispatch errors into HTTP responses
func (h *DispatchHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, dispatcherrors.ErrRequestNotFound),
		errors.Is(err, dispatcherrors.ErrOfferNotFound),
		errors.Is(err, dispatcherrors.ErrCourierNotFound),
		errors.Is(err, dispatcherrors.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, dispatcherrors.ErrAlreadyClaimed):
		return utils.ConflictResponse(c, "Offer taken by another driver")
	case errors.Is(err, dispatcherrors.ErrAlreadyResponded):
		return utils.ConflictResponse(c, "Offer already responded to")
	case errors.Is(err, dispatcherrors.ErrOfferExpired):
		return utils.ErrorResponseHandler(c, http.StatusGone, "Offer expired")
	case errors.Is(err, dispatcherrors.ErrDriverBusy):
		return utils.ConflictResponse(c, "Driver already has an active delivery")
	case errors.Is(err, dispatcherrors.ErrInvalidTransition):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, dispatcherrors.ErrAlreadyTerminal):
		return utils.ConflictResponse(c, "Request already completed or cancelled")
	case errors.Is(err, dispatcherrors.ErrNoDriversAvailable):
		return utils.ConflictResponse(c, "No drivers available")
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
