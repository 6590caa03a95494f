package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the status of a delivery request
type RequestStatus string

const (
	RequestStatusPending        RequestStatus = "pending"
	RequestStatusNotifying      RequestStatus = "notifying"
	RequestStatusAccepted       RequestStatus = "accepted"
	RequestStatusArrivedPickup  RequestStatus = "arrived_pickup"
	RequestStatusPickedUp       RequestStatus = "picked_up"
	RequestStatusAwaitingReturn RequestStatus = "delivered_awaiting_return"
	RequestStatusReturnStarted  RequestStatus = "return_started"
	RequestStatusCompleted      RequestStatus = "completed"
	RequestStatusCancelled      RequestStatus = "cancelled"
)

// Transition names accepted by the lifecycle endpoint
type Transition string

const (
	TransitionArrivedPickup Transition = "arrived_pickup"
	TransitionPickedUp      Transition = "picked_up"
	TransitionDelivered     Transition = "delivered"
	TransitionReturnStarted Transition = "return_started"
	TransitionReturned      Transition = "returned"
)

// StopStatus represents the status of a single delivery stop
type StopStatus string

const (
	StopStatusPending   StopStatus = "pending"
	StopStatusArrived   StopStatus = "arrived"
	StopStatusCompleted StopStatus = "completed"
)

// Stop is one destination within a delivery request. Stops are ranked 1..N and
// completed in ascending rank order, each with its own contact metadata.
type Stop struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	RequestID    uuid.UUID  `json:"request_id" db:"request_id"`
	Rank         int        `json:"rank" db:"rank"`
	Address      string     `json:"address" db:"address"`
	Latitude     float64    `json:"latitude" db:"latitude"`
	Longitude    float64    `json:"longitude" db:"longitude"`
	ContactName  string     `json:"contact_name" db:"contact_name"`
	ContactPhone string     `json:"contact_phone" db:"contact_phone"`
	Status       StopStatus `json:"status" db:"status"`
	ArrivedAt    *time.Time `json:"arrived_at,omitempty" db:"arrived_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// DeliveryRequest represents a point-to-point delivery request. DriverID stays
// nil until the claim commits and is immutable afterwards. Exactly one of
// IsCompleted/IsCancelled may ever become true; either makes the row terminal.
type DeliveryRequest struct {
	ID          uuid.UUID  `json:"request_id" db:"id"`
	CompanyID   uuid.UUID  `json:"company_id" db:"company_id"`
	DriverID    *uuid.UUID `json:"driver_id,omitempty" db:"driver_id"`
	VehicleType string     `json:"vehicle_type" db:"vehicle_type"`
	NeedsReturn bool       `json:"needs_return" db:"needs_return"`

	PickupAddress   string  `json:"pickup_address" db:"pickup_address"`
	PickupLatitude  float64 `json:"pickup_latitude" db:"pickup_latitude"`
	PickupLongitude float64 `json:"pickup_longitude" db:"pickup_longitude"`
	PickupContact   string  `json:"pickup_contact" db:"pickup_contact"`

	// Monetary terms are supplied by the pricing collaborator and are opaque
	// to the dispatch engine.
	DriverPayout int    `json:"driver_payout" db:"driver_payout"`
	Currency     string `json:"currency" db:"currency"`

	Status       RequestStatus `json:"status" db:"status"`
	CancelReason string        `json:"cancel_reason,omitempty" db:"cancel_reason"`
	CancelledBy  string        `json:"cancelled_by,omitempty" db:"cancelled_by"`
	IsCompleted  bool          `json:"is_completed" db:"is_completed"`
	IsCancelled  bool          `json:"is_cancelled" db:"is_cancelled"`

	ScheduledAt     *time.Time `json:"scheduled_at,omitempty" db:"scheduled_at"`
	AcceptedAt      *time.Time `json:"accepted_at,omitempty" db:"accepted_at"`
	ArrivedAt       *time.Time `json:"arrived_at,omitempty" db:"arrived_at"`
	TripStartedAt   *time.Time `json:"trip_started_at,omitempty" db:"trip_started_at"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty" db:"delivered_at"`
	ReturnStartedAt *time.Time `json:"return_started_at,omitempty" db:"return_started_at"`
	ReturnedAt      *time.Time `json:"returned_at,omitempty" db:"returned_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`

	Stops []Stop `json:"stops,omitempty"`
}

// IsTerminal reports whether the request can no longer be mutated
func (r *DeliveryRequest) IsTerminal() bool {
	return r.IsCompleted || r.IsCancelled
}

// IsScheduled reports whether fan-out is deferred to an external scheduler
func (r *DeliveryRequest) IsScheduled(now time.Time) bool {
	return r.ScheduledAt != nil && r.ScheduledAt.After(now)
}

// NextStop returns the first stop by ascending rank that is not yet completed,
// or nil when every stop is done. The engine always advances this stop,
// regardless of insertion or address order.
func (r *DeliveryRequest) NextStop() *Stop {
	var next *Stop
	for i := range r.Stops {
		s := &r.Stops[i]
		if s.Status == StopStatusCompleted {
			continue
		}
		if next == nil || s.Rank < next.Rank {
			next = s
		}
	}
	return next
}
