package memory

import (
	"bookwise/models"
)

// MergeBookingState folds the remembered booking into the current turn's
// booking. Pure function: neither input is mutated.
//
// Merge rules:
//   - Services are sticky: the current turn wins when it names any, the
//     remembered ones survive otherwise.
//   - A fully resolved current turn replaces the remembered datetime
//     wholesale.
//   - Otherwise a remembered date stays pinned: a follow-up turn refines
//     the time, it does not move the agreed day. The current turn's date is
//     promoted only when memory has none.
//   - A time-only turn rebuilds the datetime range around the new time; an
//     exact time overrides a remembered window.
//   - Duration: current wins, remembered as fallback.
//   - Clarification: the current turn's clarification replaces the
//     remembered one, which otherwise stays pending.
//
// The returned bool reports whether anything from memory was applied.
func MergeBookingState(state *models.MemoryState, current *models.ResolvedBooking, clarification *models.Clarification) (*models.ResolvedBooking, *models.Clarification, bool) {
	if current == nil {
		current = &models.ResolvedBooking{DateMode: models.DateModeNone, TimeMode: models.TimeModeNone}
	}
	merged := *current
	applied := false

	var remembered *models.ResolvedBooking
	if state != nil {
		remembered = state.Booking
	}

	if remembered != nil {
		if len(merged.Services) == 0 && len(remembered.Services) > 0 {
			merged.Services = remembered.Services
			applied = true
		}

		if !current.FullyResolved() {
			if remembered.HasResolvedDate() {
				merged.DateMode = remembered.DateMode
				merged.DateRefs = remembered.DateRefs
				merged.DateRange = remembered.DateRange
				applied = true
			}
			if !current.HasResolvedTime() && remembered.HasResolvedTime() {
				merged.TimeMode = remembered.TimeMode
				merged.TimeRefs = remembered.TimeRefs
				merged.TimeRange = remembered.TimeRange
				merged.TimeConstraint = remembered.TimeConstraint
				merged.WindowRefs = remembered.WindowRefs
				applied = true
			}
			rebuildDatetimeRange(&merged)
		}

		if merged.Duration == nil && remembered.Duration != nil {
			merged.Duration = remembered.Duration
			applied = true
		}
		if merged.BookingMode == "" {
			merged.BookingMode = remembered.BookingMode
		}
	}

	out := clarification
	if out == nil && state != nil && state.Clarification != nil {
		out = state.Clarification
		applied = true
	}

	return &merged, out, applied
}

// rebuildDatetimeRange reassembles the datetime range after slots from two
// turns were combined. Only runs when a bound date exists; a time alone
// never invents a date.
func rebuildDatetimeRange(booking *models.ResolvedBooking) {
	if booking.DateRange == nil {
		booking.DatetimeRange = nil
		return
	}
	if booking.TimeRange == nil {
		booking.DatetimeRange = &models.DatetimeRange{
			Start: booking.DateRange.StartDate + "T00:00:00",
			End:   booking.DateRange.EndDate + "T23:59:59",
		}
		return
	}
	booking.DatetimeRange = &models.DatetimeRange{
		Start: booking.DateRange.StartDate + "T" + booking.TimeRange.StartTime + ":00",
		End:   booking.DateRange.EndDate + "T" + booking.TimeRange.EndTime + ":00",
	}
}

// MemorySummary is the externally visible slice of remembered state, for
// inspection endpoints.
type MemorySummary struct {
	Intent        string                  `json:"intent,omitempty"`
	BookingState  string                  `json:"bookingState,omitempty"`
	Booking       *models.ResolvedBooking `json:"booking,omitempty"`
	Clarification *models.Clarification   `json:"clarification,omitempty"`
}

// Summarize extracts the response-facing view of a memory state.
func Summarize(state *models.MemoryState) *MemorySummary {
	if state == nil {
		return nil
	}
	return &MemorySummary{
		Intent:        state.Intent,
		BookingState:  state.BookingState,
		Booking:       state.Booking,
		Clarification: state.Clarification,
	}
}
