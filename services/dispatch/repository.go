package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// RequestRepo provides access to delivery requests and their stops. The hot
// fields (driver_id, lifecycle status) are only ever mutated through the
// narrow conditional updates below, never through a generic update path.
type RequestRepo interface {
	CreateRequest(ctx context.Context, req *models.DeliveryRequest) error
	GetRequest(ctx context.Context, id uuid.UUID) (*models.DeliveryRequest, error)
	GetActiveByDriver(ctx context.Context, driverID uuid.UUID) (*models.DeliveryRequest, error)

	// DriverHasUnpickedActive reports whether the driver owns another
	// non-terminal request whose pickup has not happened yet.
	DriverHasUnpickedActive(ctx context.Context, driverID uuid.UUID, excludeRequest uuid.UUID) (bool, error)
	// BusyDrivers returns the subset of candidates currently holding a
	// non-terminal, not-yet-picked-up request.
	BusyDrivers(ctx context.Context, candidates []uuid.UUID) (map[uuid.UUID]struct{}, error)

	// MarkNotifying flips a pending request to notifying once fan-out begins
	MarkNotifying(ctx context.Context, requestID uuid.UUID) error

	// Claim commits the accept as one atomic transaction: the conditional
	// driver_id-is-null update on the request, the offer flip to accepted,
	// every sibling notified offer flipped to expired, and the courier's
	// on_delivery flag. The same conditional write also re-asserts the
	// busy-driver exclusion. Returns the losing drivers whose offers
	// expired. Fails with ErrDriverBusy when the driver already holds an
	// unpicked request, ErrAlreadyClaimed when the precondition is gone and
	// ErrAlreadyResponded when this driver's offer was not notified anymore.
	Claim(ctx context.Context, requestID, driverID uuid.UUID, now time.Time) ([]uuid.UUID, error)

	// Lifecycle transitions. Each is a single conditional update returning
	// false when the precondition row did not match (already applied or out
	// of order); the caller classifies.
	MarkArrivedPickup(ctx context.Context, requestID, driverID uuid.UUID, now time.Time) (bool, error)
	MarkPickedUp(ctx context.Context, requestID, driverID uuid.UUID, now time.Time) (bool, error)
	// CompleteNextStop completes the first stop by ascending rank whose
	// status is pending or arrived. Returns the completed stop and the next
	// remaining stop (nil when that was the last one).
	CompleteNextStop(ctx context.Context, requestID uuid.UUID, now time.Time) (completed *models.Stop, next *models.Stop, err error)
	// MarkAwaitingReturn moves a picked-up request with a return leg to
	// delivered_awaiting_return, setting delivered_at.
	MarkAwaitingReturn(ctx context.Context, requestID, driverID uuid.UUID, now time.Time) (bool, error)
	StartReturn(ctx context.Context, requestID, driverID uuid.UUID, now time.Time) (bool, error)
	// CompleteDelivery terminates the request: sets delivered_at (when not
	// already set), returned_at for return legs, completed_at/is_completed,
	// frees the courier and bumps its delivery counter, all in one
	// transaction keyed on the current status, so a repeat call is a no-op.
	CompleteDelivery(ctx context.Context, requestID, driverID uuid.UUID, now time.Time, withReturn bool) (bool, error)

	// CancelRequest conditionally cancels a non-terminal request
	CancelRequest(ctx context.Context, requestID uuid.UUID, reason, cancelledBy string, now time.Time) (bool, error)
	// CancelUnclaimed cancels a request only while driver_id is still null,
	// so a concurrent claim makes the monitor's cancel a no-op
	CancelUnclaimed(ctx context.Context, requestID uuid.UUID, reason, cancelledBy string, now time.Time) (bool, error)
	// ListUnclaimedOlderThan returns unclaimed, non-terminal requests whose
	// dispatch age (scheduled time when set, else creation) exceeds maxAge.
	ListUnclaimedOlderThan(ctx context.Context, maxAge time.Duration, now time.Time) ([]models.DeliveryRequest, error)
}

// OfferRepo provides access to driver offers. Rows are created only by offer
// fan-out and mutated only by the claim resolver and the lazy expiry check;
// they are never deleted.
type OfferRepo interface {
	// CreateOffer inserts one offer row; returns false without error when
	// the (request, driver) pair already holds one (fan-out idempotency).
	CreateOffer(ctx context.Context, offer *models.DriverOffer) (bool, error)
	GetOffer(ctx context.Context, requestID, driverID uuid.UUID) (*models.DriverOffer, error)
	// MarkExpired lazily expires a notified offer whose window has passed
	MarkExpired(ctx context.Context, offerID uuid.UUID, now time.Time) error
	// MarkRejected flips a notified offer to rejected; false when the offer
	// was no longer notified.
	MarkRejected(ctx context.Context, requestID, driverID uuid.UUID, now time.Time) (bool, error)
	// CancelNotified marks every notified offer of a request cancelled and
	// returns the affected driver ids.
	CancelNotified(ctx context.Context, requestID uuid.UUID, now time.Time) ([]uuid.UUID, error)
	// ListPendingByDriver returns a driver's notified, unexpired offers
	ListPendingByDriver(ctx context.Context, driverID uuid.UUID, now time.Time) ([]models.DriverOffer, error)
}

// CourierRepo is the slice of the courier store the dispatch engine needs:
// candidate lookup for the geo matcher and profile reads for push tokens.
type CourierRepo interface {
	GetCourier(ctx context.Context, id uuid.UUID) (*models.Courier, error)
	GetCouriers(ctx context.Context, ids []uuid.UUID) ([]models.Courier, error)
	// FindNearbyAvailable returns available, push-reachable couriers of the
	// requested vehicle category within radiusKm of the origin whose position
	// is younger than staleness, ordered by ascending distance with ties
	// broken by courier id.
	FindNearbyAvailable(ctx context.Context, origin models.Location, radiusKm float64, vehicleType string, staleness time.Duration, now time.Time) ([]models.CourierPosition, error)
}

// SettingsRepo reads and writes the hot-reloadable dispatch settings
type SettingsRepo interface {
	Get(ctx context.Context) (models.DispatchSettings, error)
	Update(ctx context.Context, settings models.DispatchSettings) error
}
