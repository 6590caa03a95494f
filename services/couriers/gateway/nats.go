package gateway

import (
	"context"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/constants"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	natspkg "github.com/halarumdigital/traki-dispatch/internal/pkg/nats"
)

// CourierGW publishes courier presence events over NATS
type CourierGW struct {
	producer *natspkg.Producer
}

// NewCourierGW creates a new courier gateway
func NewCourierGW(client *natspkg.Client) *CourierGW {
	return &CourierGW{producer: natspkg.NewProducer(client)}
}

// PublishCourierStatus announces an availability flip, including ones forced
// by the liveness monitor
func (g *CourierGW) PublishCourierStatus(ctx context.Context, ev models.CourierStatusEvent) error {
	return g.producer.Publish(constants.SubjectCourierStatus, ev)
}
