package dispatch

import (
	"context"

	"github.com/google/uuid"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
)

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

// TransitionResult is what a lifecycle transition hands back to the caller
type TransitionResult struct {
	Status   models.RequestStatus `json:"status"`
	NextStop *models.Stop         `json:"next_stop,omitempty"`
	// Applied is false when the call was an idempotent repeat
	Applied bool `json:"applied"`
}

// DispatchUC is the dispatch engine surface: candidate selection, offer
// fan-out, claim resolution, the delivery lifecycle and the auto-cancel sweep.
type DispatchUC interface {
	// CreateAndDispatch persists the request and, unless it is scheduled for
	// later, runs the fan-out cycle. ErrNoDriversAvailable means the request
	// was persisted but no dispatch cycle began.
	CreateAndDispatch(ctx context.Context, req *models.DeliveryRequest) (*models.DeliveryRequest, error)
	// Dispatch runs candidate selection and offer fan-out for an existing
	// request; the external scheduler calls this for future-dated requests.
	Dispatch(ctx context.Context, requestID uuid.UUID) (int, error)

	Accept(ctx context.Context, requestID, driverID uuid.UUID) (*models.DeliveryRequest, error)
	Reject(ctx context.Context, requestID, driverID uuid.UUID) error

	Advance(ctx context.Context, requestID, driverID uuid.UUID, transition models.Transition) (*TransitionResult, error)
	Cancel(ctx context.Context, requestID uuid.UUID, cancelledBy, reason string) error

	ListPendingOffers(ctx context.Context, driverID uuid.UUID) ([]models.DriverOffer, error)
	GetActiveRequest(ctx context.Context, driverID uuid.UUID) (*models.DeliveryRequest, error)
	GetRequestByID(ctx context.Context, requestID uuid.UUID) (*models.DeliveryRequest, error)

	GetSettings(ctx context.Context) (models.DispatchSettings, error)
	UpdateSettings(ctx context.Context, settings models.DispatchSettings) error

	// AutoCancelSweep cancels every unclaimed request older than the
	// configured age. Per-row failures are logged and skipped; the sweep
	// reports how many requests it cancelled.
	AutoCancelSweep(ctx context.Context) (int, error)
}
