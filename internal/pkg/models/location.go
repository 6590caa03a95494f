package models

import "time"

// Location represents a geographical location with latitude and longitude
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Address   string    `json:"address,omitempty" db:"address"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// CourierPosition is a courier's last known position as kept in the geo pool
type CourierPosition struct {
	CourierID string   `json:"courier_id"`
	Location  Location `json:"location"`
	Distance  float64  `json:"distance_km"`
}
