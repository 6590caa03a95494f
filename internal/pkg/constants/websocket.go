package constants

// WebSocket event names (server -> driver client)
const (
	EventOffer            = "offer"
	EventOfferTaken       = "offer_taken"
	EventRequestCancelled = "request_cancelled"
	EventRequestStatus    = "request_status"
	EventStopCompleted    = "stop_completed"
	EventError            = "error"
)

// WebSocket event names (driver client -> server)
const (
	EventHeartbeat    = "heartbeat"
	EventAvailability = "availability"
)
