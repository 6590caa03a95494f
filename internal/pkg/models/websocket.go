package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v4"
)

// WebSocketClient represents a connected driver client
type WebSocketClient struct {
	DriverID string
	Role     string
}

// WebSocketClaims represents the JWT claims for websocket authentication
type WebSocketClaims struct {
	DriverID string `json:"driver_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// WSMessage is the framing for every websocket message in either direction
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// NewWSMessage builds a WSMessage from an event name and payload
func NewWSMessage(event string, data interface{}) (WSMessage, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return WSMessage{}, err
	}
	return WSMessage{Event: event, Data: raw}, nil
}
