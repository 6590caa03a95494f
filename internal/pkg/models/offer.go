package models

import (
	"time"

	"github.com/google/uuid"
)

// OfferStatus represents the status of a driver offer
type OfferStatus string

const (
	OfferStatusNotified  OfferStatus = "notified"
	OfferStatusAccepted  OfferStatus = "accepted"
	OfferStatusRejected  OfferStatus = "rejected"
	OfferStatusExpired   OfferStatus = "expired"
	OfferStatusCancelled OfferStatus = "cancelled"
)

// DriverOffer is a single driver's time-boxed opportunity to claim one
// delivery request. At most one offer exists per (request, driver) pair and at
// most one offer per request ever reaches accepted. Rows are never deleted;
// they are the audit trail of the dispatch cycle.
type DriverOffer struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	RequestID   uuid.UUID   `json:"request_id" db:"request_id"`
	DriverID    uuid.UUID   `json:"driver_id" db:"driver_id"`
	Status      OfferStatus `json:"status" db:"status"`
	ExpiresAt   time.Time   `json:"expires_at" db:"expires_at"`
	RespondedAt *time.Time  `json:"responded_at,omitempty" db:"responded_at"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}

// IsExpired reports whether the offer's acceptance window has passed. Expiry
// is enforced lazily at accept time; there is no active offer reaper.
func (o *DriverOffer) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
