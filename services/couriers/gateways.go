package couriers

import (
	"context"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
)

//go:generate mockgen -source=gateways.go -destination=mocks/mock_gateway.go -package=mocks

// CourierGW publishes courier presence events
type CourierGW interface {
	PublishCourierStatus(ctx context.Context, ev models.CourierStatusEvent) error
}
