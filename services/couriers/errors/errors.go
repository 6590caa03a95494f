// Package errors defines the courier service error taxonomy
package errors

import "errors"

var (
	// ErrCourierNotFound indicates the courier does not exist
	ErrCourierNotFound = errors.New("courier not found")
	// ErrCourierOnDelivery indicates the operation conflicts with an
	// in-progress delivery
	ErrCourierOnDelivery = errors.New("courier is on an active delivery")
)
