package models

import (
	"time"

	"github.com/google/uuid"
)

// Events published over the broadcast channel (NATS). The websocket layer
// forwards the request-scoped ones to connected driver clients.

// OfferNotifiedEvent carries one courier's offer so the realtime channel can
// mirror the push notification to a connected client
type OfferNotifiedEvent struct {
	DriverID     uuid.UUID         `json:"driver_id"`
	Notification OfferNotification `json:"notification"`
}

// OfferTakenEvent is broadcast to every connected driver client, not only the
// offer holders, so a stale locally cached list drops the request too.
type OfferTakenEvent struct {
	RequestID uuid.UUID `json:"request_id"`
	DriverID  uuid.UUID `json:"driver_id"`
	TakenAt   time.Time `json:"taken_at"`
}

// RequestCancelledEvent is broadcast when a request reaches cancelled
type RequestCancelledEvent struct {
	RequestID   uuid.UUID  `json:"request_id"`
	DriverID    *uuid.UUID `json:"driver_id,omitempty"`
	Reason      string     `json:"reason"`
	CancelledBy string     `json:"cancelled_by"`
	CancelledAt time.Time  `json:"cancelled_at"`
}

// RequestStatusEvent is published on every lifecycle transition
type RequestStatusEvent struct {
	RequestID uuid.UUID     `json:"request_id"`
	DriverID  uuid.UUID     `json:"driver_id"`
	Status    RequestStatus `json:"status"`
	ChangedAt time.Time     `json:"changed_at"`
}

// StopCompletedEvent is published when one stop of a multi-stop request is done
type StopCompletedEvent struct {
	RequestID     uuid.UUID `json:"request_id"`
	DriverID      uuid.UUID `json:"driver_id"`
	CompletedRank int       `json:"completed_rank"`
	NextStop      *Stop     `json:"next_stop,omitempty"`
	CompletedAt   time.Time `json:"completed_at"`
}

// CourierStatusEvent is published when a courier's availability flips,
// including flips forced by the liveness monitor.
type CourierStatusEvent struct {
	CourierID uuid.UUID `json:"courier_id"`
	Available bool      `json:"available"`
	Cause     string    `json:"cause"` // "toggle" or "liveness_timeout"
	ChangedAt time.Time `json:"changed_at"`
}
