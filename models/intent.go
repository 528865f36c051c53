package models

// Intent names recognized by the rule-based intent resolver.
const (
	IntentCreateAppointment = "CREATE_APPOINTMENT"
	IntentCreateReservation = "CREATE_RESERVATION"
	IntentModifyBooking     = "MODIFY_BOOKING"
	IntentCancelBooking     = "CANCEL_BOOKING"
	IntentConfirmBooking    = "CONFIRM_BOOKING"
	IntentCommitBooking     = "COMMIT_BOOKING"
	IntentBookingInquiry    = "BOOKING_INQUIRY"
	IntentAvailability      = "AVAILABILITY"
	IntentPayment           = "PAYMENT"
	IntentPaymentStatus     = "PAYMENT_STATUS"
	IntentQuote             = "QUOTE"
	IntentDetails           = "DETAILS"
	IntentDiscovery         = "DISCOVERY"
	IntentRecommendation    = "RECOMMENDATION"
	IntentRejectOrChange    = "REJECT_OR_CHANGE"
	IntentContextualUpdate  = "CONTEXTUAL_UPDATE"
	IntentUnknown           = "UNKNOWN"
)

// IntentResult is the outcome of intent resolution for one turn.
type IntentResult struct {
	Name        string  `json:"name"`
	Confidence  float64 `json:"confidence"`
	BookingMode string  `json:"bookingMode,omitempty"`
	MatchedOn   string  `json:"matchedOn,omitempty"` // signal that fired, for tracing
}

// IsBookingIntent reports whether the intent starts a booking task.
func (r IntentResult) IsBookingIntent() bool {
	return r.Name == IntentCreateAppointment || r.Name == IntentCreateReservation
}
