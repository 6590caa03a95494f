package couriers

import (
	"context"

	"github.com/google/uuid"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
)

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

// CourierUC is the courier presence surface: availability toggles, heartbeats,
// position updates and the liveness sweep.
type CourierUC interface {
	GetCourier(ctx context.Context, id uuid.UUID) (*models.Courier, error)

	// SetAvailability flips the courier's availability. Turning availability
	// off never touches an in-progress delivery.
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	// Heartbeat records proof of life, optionally with a fresh position
	Heartbeat(ctx context.Context, id uuid.UUID, loc *models.Location) error
	// UpdatePosition refreshes the courier's pool position without counting
	// as a full heartbeat payload
	UpdatePosition(ctx context.Context, id uuid.UUID, loc models.Location) error
	RegisterPushToken(ctx context.Context, id uuid.UUID, token string) error

	// LivenessSweep flips every silent available courier offline and reports
	// how many it flipped.
	LivenessSweep(ctx context.Context) (int, error)
}
