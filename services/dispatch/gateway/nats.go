package gateway

import (
	"context"
	"fmt"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/constants"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	natspkg "github.com/halarumdigital/traki-dispatch/internal/pkg/nats"
)

// DispatchGW publishes dispatch events over NATS. Push notifications go to
// the push collaborator's subject; everything else is the broadcast channel
// the websocket layer and downstream consumers subscribe to.
type DispatchGW struct {
	producer *natspkg.Producer
}

// NewDispatchGW creates a new dispatch gateway
func NewDispatchGW(client *natspkg.Client) *DispatchGW {
	return &DispatchGW{producer: natspkg.NewProducer(client)}
}

// SendPush hands one push notification to the push collaborator
func (g *DispatchGW) SendPush(ctx context.Context, msg models.PushMessage) error {
	if err := g.producer.Publish(constants.SubjectPushSend, msg); err != nil {
		return fmt.Errorf("failed to publish push message: %w", err)
	}
	return nil
}

// PublishOfferNotified mirrors one courier's offer onto the realtime channel
func (g *DispatchGW) PublishOfferNotified(ctx context.Context, ev models.OfferNotifiedEvent) error {
	return g.producer.Publish(constants.SubjectOfferNotified, ev)
}

// PublishOfferTaken announces the claim winner to every connected client
func (g *DispatchGW) PublishOfferTaken(ctx context.Context, ev models.OfferTakenEvent) error {
	return g.producer.Publish(constants.SubjectOfferTaken, ev)
}

// PublishRequestCancelled announces a cancellation
func (g *DispatchGW) PublishRequestCancelled(ctx context.Context, ev models.RequestCancelledEvent) error {
	return g.producer.Publish(constants.SubjectRequestCancelled, ev)
}

// PublishRequestStatus announces a lifecycle transition
func (g *DispatchGW) PublishRequestStatus(ctx context.Context, ev models.RequestStatusEvent) error {
	return g.producer.Publish(constants.SubjectRequestStatus, ev)
}

// PublishStopCompleted announces one completed stop of a multi-stop request
func (g *DispatchGW) PublishStopCompleted(ctx context.Context, ev models.StopCompletedEvent) error {
	return g.producer.Publish(constants.SubjectStopCompleted, ev)
}
