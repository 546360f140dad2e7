package shared

// Asynq task types
const (
	TypeBookingConfirmationEmail = "booking:confirmation_email"
	TypeCompletePastBookings     = "booking:complete_past"
)

// Asynq queue names
const (
	QueueBooking = "booking"
	QueueDefault = "default"
)
