package config

import (
	"strings"

	"bookwise/models"
)

// Static temporal vocabulary shared by the semantic resolver and the
// calendar binder. These are language tables, not tunables, so they live in
// code rather than in the viper config.

// RelativeDayOffsets maps relative day phrases to day offsets from "now".
var RelativeDayOffsets = map[string]int{
	"today":                  0,
	"tonight":                0,
	"tomorrow":               1,
	"day after tomorrow":     2,
	"the day after tomorrow": 2,
}

// Weekdays maps lowercase weekday names to time.Weekday ordinals
// (Sunday == 0).
var Weekdays = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}

// Months maps lowercase month names and abbreviations to month numbers.
var Months = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may":  5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

// DateWordCorrections maps common misspellings and day abbreviations to
// their canonical word. Keys and values are single lowercase tokens; month
// abbreviations resolve through Months directly and are not listed here.
var DateWordCorrections = map[string]string{
	"tomorow":   "tomorrow",
	"tommorow":  "tomorrow",
	"tommorrow": "tomorrow",
	"tonite":    "tonight",
	"mon":       "monday",
	"moneday":   "monday",
	"munday":    "monday",
	"tue":       "tuesday",
	"tues":      "tuesday",
	"tusday":    "tuesday",
	"teusday":   "tuesday",
	"wed":       "wednesday",
	"wensday":   "wednesday",
	"wednsday":  "wednesday",
	"wedensday": "wednesday",
	"thu":       "thursday",
	"thur":      "thursday",
	"thurs":     "thursday",
	"thrusday":  "thursday",
	"thursady":  "thursday",
	"fri":       "friday",
	"firday":    "friday",
	"fridy":     "friday",
	"sat":       "saturday",
	"saterday":  "saturday",
	"satuday":   "saturday",
	"sun":       "sunday",
	"sundy":     "sunday",
	"janurary":  "january",
	"febuary":   "february",
	"febraury":  "february",
	"septmber":  "september",
	"novembre":  "november",
	"decemeber": "december",
}

// NormalizeDateText lowercases a date phrase and rewrites misspelled or
// abbreviated words to their canonical form.
func NormalizeDateText(ref string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(ref)))
	for i, f := range fields {
		if canonical, ok := DateWordCorrections[f]; ok {
			fields[i] = canonical
		}
	}
	return strings.Join(fields, " ")
}

// TimeWindows maps day-part window names to clock ranges.
var TimeWindows = map[string]models.TimeRange{
	"morning":   {StartTime: "08:00", EndTime: "12:00"},
	"afternoon": {StartTime: "12:00", EndTime: "17:00"},
	"evening":   {StartTime: "17:00", EndTime: "21:00"},
	"tonight":   {StartTime: "18:00", EndTime: "23:00"},
	"night":     {StartTime: "18:00", EndTime: "23:00"},
}

// NamedTimes maps named clock times to 24h values.
var NamedTimes = map[string]string{
	"noon":     "12:00",
	"midday":   "12:00",
	"midnight": "00:00",
}

// FuzzyTimeMarkers flag approximate times ("5ish", "around 5").
var FuzzyTimeMarkers = []string{"ish", "around", "about", "roughly", "approximately"}

// ConstraintMarkers introduce deadline-style time constraints.
var ConstraintMarkers = []string{"by", "before", "after"}

// RangeMarkers join the two ends of a date or time range.
var RangeMarkers = []string{"to", "until", "till", "through", "thru", "-", "and"}

// VagueDatePhrases cannot be bound to a single day without asking.
var VagueDatePhrases = []string{
	"sometime", "whenever", "soon", "later", "eventually",
	"one of these days", "in a while", "at some point",
}

// ContextDependentPhrases need conversational context to pin a date.
var ContextDependentPhrases = []string{
	"same day", "that day", "the same time", "then", "as before", "like last time",
}

// ResetPhrases abandon the active booking task.
var ResetPhrases = []string{
	"cancel that", "start over", "new booking", "forget that",
	"never mind", "ignore that", "clear that", "reset",
}

// BookingVerbs indicate an explicit booking request rather than a bare
// slot-value follow-up.
var BookingVerbs = []string{
	"book", "schedule", "reserve", "appointment", "appoint", "arrange",
}

// IntentTemporalShapes maps intents to the temporal shape they must satisfy
// before a booking can resolve. Intents absent from the map have no shape
// requirement.
var IntentTemporalShapes = map[string]string{
	models.IntentCreateAppointment: models.TemporalShapeDatetimeRange,
	models.IntentCreateReservation: models.TemporalShapeDateRange,
}

// BindingIntents are the intents for which the calendar binder produces
// concrete ranges. Anything else passes through unbound.
var BindingIntents = map[string]bool{
	models.IntentAvailability:      true,
	models.IntentCreateAppointment: true,
	models.IntentCreateReservation: true,
	models.IntentModifyBooking:     true,
	models.IntentBookingInquiry:    true,
}
