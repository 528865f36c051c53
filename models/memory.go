package models

import "time"

// Booking continuity states held in memory between turns.
const (
	BookingStatePartial  = "PARTIAL"
	BookingStateResolved = "RESOLVED"
)

// MemoryState is the per-user continuity record persisted between turns.
type MemoryState struct {
	Intent        string           `json:"intent,omitempty"`
	BookingMode   string           `json:"bookingMode,omitempty"`
	BookingState  string           `json:"bookingState,omitempty"`
	Booking       *ResolvedBooking `json:"booking,omitempty"`
	Clarification *Clarification   `json:"clarification,omitempty"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// HasActiveBooking reports whether the remembered state represents a booking
// task still in flight: a booking intent with either a pending clarification
// or a partial/resolved booking.
func (s *MemoryState) HasActiveBooking() bool {
	if s == nil {
		return false
	}
	if s.Intent != IntentCreateAppointment && s.Intent != IntentCreateReservation {
		return false
	}
	return s.Clarification != nil ||
		s.BookingState == BookingStatePartial ||
		s.BookingState == BookingStateResolved
}
