package couriers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// SettingsReader exposes the hot-reloadable dispatch settings the liveness
// monitor reads its staleness window from
type SettingsReader interface {
	Get(ctx context.Context) (models.DispatchSettings, error)
}

// CourierRepo owns courier profiles in Postgres and the availability pool in
// Redis. A courier is in the geo pool exactly while available; flipping
// availability off always removes the pool entry.
type CourierRepo interface {
	GetCourier(ctx context.Context, id uuid.UUID) (*models.Courier, error)
	GetCouriers(ctx context.Context, ids []uuid.UUID) ([]models.Courier, error)

	// SetAvailability flips the courier's availability flag and keeps the geo
	// pool membership in sync. Returns false when the flag already had the
	// requested value.
	SetAvailability(ctx context.Context, id uuid.UUID, available bool, now time.Time) (bool, error)
	// UpdatePosition refreshes the courier's geo pool entry and position hash
	UpdatePosition(ctx context.Context, id uuid.UUID, loc models.Location) error
	// Heartbeat bumps last_seen_at; the position is optional
	Heartbeat(ctx context.Context, id uuid.UUID, loc *models.Location, now time.Time) error
	// RegisterPushToken stores the courier's push endpoint
	RegisterPushToken(ctx context.Context, id uuid.UUID, token string) error

	// ListStaleAvailable returns available couriers whose last heartbeat is
	// older than the staleness window. Couriers on an active delivery are
	// excluded; the lifecycle owns them.
	ListStaleAvailable(ctx context.Context, staleness time.Duration, now time.Time) ([]models.Courier, error)

	// FindNearbyAvailable serves the dispatch matcher: available couriers of
	// the vehicle category within radiusKm, fresh positions only, ascending
	// distance with ties broken by courier id.
	FindNearbyAvailable(ctx context.Context, origin models.Location, radiusKm float64, vehicleType string, staleness time.Duration, now time.Time) ([]models.CourierPosition, error)
}
