package constants

// NATS Subjects
const (
	// Push collaborator
	SubjectPushSend = "push.send"

	// Dispatch events
	SubjectOfferNotified    = "dispatch.offer.notified"
	SubjectOfferTaken       = "dispatch.offer.taken"
	SubjectRequestCancelled = "dispatch.request.cancelled"
	SubjectRequestStatus    = "dispatch.request.status"
	SubjectStopCompleted    = "dispatch.stop.completed"

	// Courier events
	SubjectCourierStatus   = "courier.status"
	SubjectCourierLocation = "courier.location"
)

// Queue groups for load-balanced consumers
const (
	QueueGroupDispatch = "dispatch-service"
)
