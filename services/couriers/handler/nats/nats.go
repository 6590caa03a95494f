package nats

import (
	"encoding/json"
	"fmt"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/constants"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/logger"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	natspkg "github.com/halarumdigital/traki-dispatch/internal/pkg/nats"
	ws "github.com/halarumdigital/traki-dispatch/internal/pkg/websocket"
)

// EventForwarder subscribes to dispatch events and mirrors them onto the
// driver websocket channel. Offers and cancellations are targeted at the
// affected driver; taken events are broadcast so every client drops the
// request from its local list.
type EventForwarder struct {
	natsClient *natspkg.Client
	manager    *ws.Manager
	consumers  []*natspkg.Consumer
}

// NewEventForwarder creates a new event forwarder
func NewEventForwarder(client *natspkg.Client, manager *ws.Manager) *EventForwarder {
	return &EventForwarder{
		natsClient: client,
		manager:    manager,
		consumers:  make([]*natspkg.Consumer, 0),
	}
}

// InitNATSConsumers initializes all NATS consumers for the forwarder. No
// queue group: every instance must see every event to serve its own
// connected sockets.
func (f *EventForwarder) InitNATSConsumers() error {
	subjects := map[string]natspkg.MessageHandler{
		constants.SubjectOfferNotified:    f.handleOfferNotified,
		constants.SubjectOfferTaken:       f.handleOfferTaken,
		constants.SubjectRequestCancelled: f.handleRequestCancelled,
		constants.SubjectRequestStatus:    f.handleRequestStatus,
		constants.SubjectStopCompleted:    f.handleStopCompleted,
	}

	for subject, handler := range subjects {
		consumer, err := natspkg.NewConsumer(f.natsClient, subject, "", handler)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		f.consumers = append(f.consumers, consumer)
	}
	return nil
}

// Stop unsubscribes every consumer
func (f *EventForwarder) Stop() {
	for _, consumer := range f.consumers {
		if err := consumer.Stop(); err != nil {
			logger.Warn("failed to unsubscribe forwarder", logger.Err(err))
		}
	}
}

func (f *EventForwarder) handleOfferNotified(data []byte) error {
	var ev models.OfferNotifiedEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return fmt.Errorf("failed to unmarshal offer event: %w", err)
	}
	f.manager.SendToDriver(ev.DriverID.String(), constants.EventOffer, ev.Notification)
	return nil
}

func (f *EventForwarder) handleOfferTaken(data []byte) error {
	var ev models.OfferTakenEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return fmt.Errorf("failed to unmarshal taken event: %w", err)
	}
	f.manager.Broadcast(constants.EventOfferTaken, ev)
	return nil
}

func (f *EventForwarder) handleRequestCancelled(data []byte) error {
	var ev models.RequestCancelledEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return fmt.Errorf("failed to unmarshal cancellation event: %w", err)
	}
	if ev.DriverID != nil {
		f.manager.SendToDriver(ev.DriverID.String(), constants.EventRequestCancelled, ev)
		return nil
	}
	f.manager.Broadcast(constants.EventRequestCancelled, ev)
	return nil
}

func (f *EventForwarder) handleRequestStatus(data []byte) error {
	var ev models.RequestStatusEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return fmt.Errorf("failed to unmarshal status event: %w", err)
	}
	f.manager.SendToDriver(ev.DriverID.String(), constants.EventRequestStatus, ev)
	return nil
}

func (f *EventForwarder) handleStopCompleted(data []byte) error {
	var ev models.StopCompletedEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return fmt.Errorf("failed to unmarshal stop event: %w", err)
	}
	f.manager.SendToDriver(ev.DriverID.String(), constants.EventStopCompleted, ev)
	return nil
}
