package dispatch

import (
	"context"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
)

//go:generate mockgen -source=gateways.go -destination=mocks/mock_gateway.go -package=mocks

// DispatchGW publishes dispatch events and hands push notifications to the
// push collaborator. Push delivery is best-effort: the engine logs transport
// failures and keeps going.
type DispatchGW interface {
	SendPush(ctx context.Context, msg models.PushMessage) error
	PublishOfferNotified(ctx context.Context, ev models.OfferNotifiedEvent) error
	PublishOfferTaken(ctx context.Context, ev models.OfferTakenEvent) error
	PublishRequestCancelled(ctx context.Context, ev models.RequestCancelledEvent) error
	PublishRequestStatus(ctx context.Context, ev models.RequestStatusEvent) error
	PublishStopCompleted(ctx context.Context, ev models.StopCompletedEvent) error
}
