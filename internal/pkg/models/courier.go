package models

import (
	"time"

	"github.com/google/uuid"
)

// Courier represents a driver as seen by the dispatch engine. The profile
// fields are owned by the driver-profile collaborator; Available and
// OnDelivery are mutated exclusively by the engine's claim/lifecycle
// transitions, the courier's own toggle and the liveness monitor.
type Courier struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	FullName            string     `json:"fullname" db:"fullname"`
	VehicleType         string     `json:"vehicle_type" db:"vehicle_type"`
	VehiclePlate        string     `json:"vehicle_plate" db:"vehicle_plate"`
	PushToken           string     `json:"push_token,omitempty" db:"push_token"`
	Available           bool       `json:"available" db:"available"`
	OnDelivery          bool       `json:"on_delivery" db:"on_delivery"`
	CompletedDeliveries int        `json:"completed_deliveries" db:"completed_deliveries"`
	LastSeenAt          *time.Time `json:"last_seen_at,omitempty" db:"last_seen_at"`
	Location            *Location  `json:"location,omitempty"`
}

// Reachable reports whether the courier has a push endpoint registered
func (c *Courier) Reachable() bool {
	return c.PushToken != ""
}
