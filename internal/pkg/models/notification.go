package models

import (
	"time"

	"github.com/google/uuid"
)

// Push notification payloads. Each notification kind is a closed, versioned
// struct with explicit typed fields; the push collaborator receives these
// as the structured payload next to title and body.

// PushMessage is the envelope handed to the push-notification collaborator.
// Delivery is fire-and-forget: transport failures are logged, never returned
// as dispatch failures.
type PushMessage struct {
	Token   string      `json:"token"`
	Title   string      `json:"title"`
	Body    string      `json:"body"`
	Payload interface{} `json:"payload"`
}

// OfferNotification tells one courier a request is up for grabs
type OfferNotification struct {
	Version       int       `json:"version"`
	RequestID     uuid.UUID `json:"request_id"`
	PickupAddress string    `json:"pickup_address"`
	StopCount     int       `json:"stop_count"`
	NeedsReturn   bool      `json:"needs_return"`
	VehicleType   string    `json:"vehicle_type"`
	DriverPayout  int       `json:"driver_payout"`
	Currency      string    `json:"currency"`
	DistanceKm    float64   `json:"distance_km"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// TakenNotification tells a losing courier the request went to someone else
type TakenNotification struct {
	Version   int       `json:"version"`
	RequestID uuid.UUID `json:"request_id"`
}

// CancelledNotification tells an assigned or notified courier the request was
// cancelled
type CancelledNotification struct {
	Version   int       `json:"version"`
	RequestID uuid.UUID `json:"request_id"`
	Reason    string    `json:"reason"`
}
