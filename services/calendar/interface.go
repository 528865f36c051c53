// Package calendar binds booking semantics to concrete ISO-8601 ranges. The
// clock and timezone are always injected; nothing here reads the wall clock.
package calendar

import (
	"time"

	"bookwise/models"
)

// CalendarBinder binds semantic date and time references to the calendar.
type CalendarBinder interface {
	// Bind fills the booking's DateRange, TimeRange and DatetimeRange in
	// place and returns the clarification that should accompany the turn:
	// the one passed in, enriched with bound dates, or a new one when
	// binding itself failed validation.
	Bind(booking *models.ResolvedBooking, clarification *models.Clarification, intent string, now time.Time, loc *time.Location) *models.Clarification
}

// DefaultCalendarBinder is the production binder.
type DefaultCalendarBinder struct{}

// NewDefaultCalendarBinder returns the production calendar binder.
func NewDefaultCalendarBinder() *DefaultCalendarBinder {
	return &DefaultCalendarBinder{}
}
