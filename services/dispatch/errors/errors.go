package errors

import "errors"

// Caller-visible dispatch errors. Every one of these is a recoverable
// condition the driver or company client is expected to react to; only the
// loss of the datastore connection is fatal, and that is never wrapped here.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrRequestNotFound    = errors.New("delivery request not found")
	ErrOfferNotFound      = errors.New("offer not found for this driver")
	ErrCourierNotFound    = errors.New("courier not found")
	ErrAlreadyClaimed     = errors.New("request already taken by another driver")
	ErrAlreadyResponded   = errors.New("offer has already been responded to")
	ErrOfferExpired       = errors.New("offer has expired")
	ErrDriverBusy         = errors.New("driver already has an undelivered active request")
	ErrInvalidTransition  = errors.New("invalid lifecycle transition")
	ErrNoDriversAvailable = errors.New("no available drivers found")
	ErrAlreadyTerminal    = errors.New("request is already completed or cancelled")
)
