package semantics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookwise/models"
)

func haircut() []models.ServiceRef {
	return []models.ServiceRef{{Text: "haircut", Canonical: "haircut", AnnotationType: "FAMILY"}}
}

func TestResolveFullySpecifiedTurnNeverClarifies(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services: haircut(),
		Dates:    []string{"tomorrow"},
		Times:    []string{"4 pm"},
		Sentence: "book a haircut tomorrow at 4 pm",
	}, models.BookingModeService)

	require.False(t, res.NeedsClarification())
	assert.Equal(t, models.DateModeSingleDay, res.Booking.DateMode)
	assert.Equal(t, models.TimeModeExact, res.Booking.TimeMode)
	assert.Equal(t, []string{"4:00 pm"}, res.Booking.TimeRefs)
}

func TestResolveFullySpecifiedExceptionBeatsWindow(t *testing.T) {
	// One service, one date, one exact non-bare time: a co-occurring window
	// must not trigger a clarification.
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services:    haircut(),
		Dates:       []string{"tomorrow"},
		Times:       []string{"4:30 pm"},
		TimeWindows: []string{"afternoon"},
		Sentence:    "haircut tomorrow afternoon at 4.30 pm",
	}, models.BookingModeService)

	assert.False(t, res.NeedsClarification())
}

func TestResolveBareHourWithoutWindowIsAmbiguous(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services: haircut(),
		Dates:    []string{"tomorrow"},
		Times:    []string{"5"},
		Sentence: "haircut tomorrow at 5",
	}, models.BookingModeService)

	require.True(t, res.NeedsClarification())
	assert.Equal(t, models.ReasonAmbiguousTimeNoWindow, res.Clarification.Reason)
	assert.Equal(t, "5", res.Clarification.Data["time"])
}

func TestResolveFuzzyHourWithWindowBecomesRange(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services:    haircut(),
		Dates:       []string{"tomorrow"},
		Times:       []string{"5ish"},
		TimeWindows: []string{"evening"},
		Sentence:    "haircut tomorrow evening around 5ish",
	}, models.BookingModeService)

	require.False(t, res.NeedsClarification())
	assert.Equal(t, models.TimeModeRange, res.Booking.TimeMode)
	// Still unbiased here; the binder shifts it into the window.
	assert.Equal(t, []string{"05:00", "06:00"}, res.Booking.TimeRefs)
}

func TestResolveHourRangeWithoutMeridiemRecordsIssue(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services: haircut(),
		Dates:    []string{"tomorrow"},
		Times:    []string{"7 and 9"},
		Sentence: "haircut tomorrow between 7 and 9",
	}, models.BookingModeService)

	require.True(t, res.NeedsClarification())
	assert.Equal(t, models.ReasonAmbiguousTimeNoWindow, res.Clarification.Reason)
	require.Len(t, res.Booking.TimeIssues, 1)
	issue := res.Booking.TimeIssues[0]
	assert.Equal(t, "ambiguous_meridiem", issue.Kind)
	assert.Equal(t, "missing_am_pm", issue.Reason)
	assert.Equal(t, 7, issue.StartHour)
	assert.Equal(t, 9, issue.EndHour)
	assert.Equal(t, []string{"am", "pm"}, issue.Candidates)
	assert.Equal(t, models.TimeModeNone, res.Booking.TimeMode)
}

func TestResolveConstraintWithoutDateAsksForDate(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services: haircut(),
		Times:    []string{"4 pm"},
		Sentence: "I need a haircut done by 4 pm",
	}, models.BookingModeService)

	require.True(t, res.NeedsClarification())
	assert.Equal(t, models.ReasonMissingDateForTimeConstraint, res.Clarification.Reason)
	require.NotNil(t, res.Booking.TimeConstraint)
	assert.Equal(t, "window", res.Booking.TimeConstraint.Mode)
	assert.Equal(t, "16:00", res.Booking.TimeConstraint.End)
	assert.Equal(t, "by 4 pm", res.Booking.TimeConstraint.Label)
}

func TestResolveConstraintWithDateAsksForStartTime(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services: haircut(),
		Dates:    []string{"tomorrow"},
		Times:    []string{"4 pm"},
		Sentence: "haircut tomorrow, must be done before 4 pm",
	}, models.BookingModeService)

	require.True(t, res.NeedsClarification())
	assert.Equal(t, models.ReasonMissingTime, res.Clarification.Reason)
	assert.Equal(t, "haircut", res.Clarification.Data["service"])
	assert.Equal(t, "tomorrow", res.Clarification.Data["date"])
}

func TestResolveVagueDate(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services: haircut(),
		Dates:    []string{"sometime soon"},
		Sentence: "haircut sometime soon",
	}, models.BookingModeService)

	require.True(t, res.NeedsClarification())
	assert.Equal(t, models.ReasonVagueDateReference, res.Clarification.Reason)
}

func TestResolvePluralWeekday(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services: haircut(),
		Dates:    []string{"mondays"},
		Sentence: "haircut on mondays",
	}, models.BookingModeService)

	require.True(t, res.NeedsClarification())
	assert.Equal(t, models.ReasonAmbiguousPluralWeekday, res.Clarification.Reason)
}

func TestResolveBareWeekdayIsContextDependent(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services: haircut(),
		Dates:    []string{"friday"},
		Sentence: "haircut friday",
	}, models.BookingModeService)

	require.True(t, res.NeedsClarification())
	assert.Equal(t, models.ReasonContextDependentDate, res.Clarification.Reason)
}

func TestResolveLocaleAmbiguousNumericDate(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services:      haircut(),
		DatesAbsolute: []string{"07/12"},
		Sentence:      "haircut on 07/12",
	}, models.BookingModeService)

	require.True(t, res.NeedsClarification())
	assert.Equal(t, models.ReasonLocaleAmbiguousDate, res.Clarification.Reason)
	assert.Equal(t, "07/12", res.Clarification.Data["date_text"])
}

func TestResolveUnambiguousNumericDatePasses(t *testing.T) {
	// 29 cannot be a month, so "29/10" reads only one way.
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services:      haircut(),
		DatesAbsolute: []string{"29/10"},
		Times:         []string{"4 pm"},
		Sentence:      "haircut on 29/10 at 4 pm",
	}, models.BookingModeService)

	assert.False(t, res.NeedsClarification())
}

func TestResolveWeekdayRangeWithoutAnchor(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services:     []models.ServiceRef{{Text: "room", Canonical: "room"}},
		Dates:        []string{"monday", "thursday"},
		RangeMarkers: []string{"to"},
		Sentence:     "book a room monday to thursday",
	}, models.BookingModeReservation)

	require.True(t, res.NeedsClarification())
	assert.Equal(t, models.ReasonMissingDateRange, res.Clarification.Reason)
}

func TestResolveMultipleDatesWithoutMarker(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services:      haircut(),
		DatesAbsolute: []string{"oct 29", "nov 3"},
		Sentence:      "haircut oct 29 nov 3",
	}, models.BookingModeService)

	require.True(t, res.NeedsClarification())
	assert.Equal(t, models.ReasonAmbiguousDateMultiple, res.Clarification.Reason)
	assert.True(t, res.Booking.AmbiguousDates)
}

func TestResolveConflictingStructureFlag(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services:             haircut(),
		Dates:                []string{"next tomorrow"},
		ConflictingStructure: true,
		Sentence:             "haircut next tomorrow",
	}, models.BookingModeService)

	require.True(t, res.NeedsClarification())
	assert.Equal(t, models.ReasonConflictingSignals, res.Clarification.Reason)
}

func TestResolveReservationShorthandCompletesRange(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services:      []models.ServiceRef{{Text: "deluxe room", Canonical: "room"}},
		DatesAbsolute: []string{"oct 29th", "2nd"},
		RangeMarkers:  []string{"to"},
		Sentence:      "book the deluxe room from oct 29th to the 2nd",
	}, models.BookingModeReservation)

	require.False(t, res.NeedsClarification())
	assert.Equal(t, models.DateModeRange, res.Booking.DateMode)
	require.Len(t, res.Booking.DateRefs, 2)
	assert.Equal(t, "oct 29th", res.Booking.DateRefs[0])
	assert.Equal(t, "nov 2", res.Booking.DateRefs[1])
}

func TestResolveReservationSingleDateAsksForEnd(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services:      []models.ServiceRef{{Text: "room", Canonical: "room"}},
		DatesAbsolute: []string{"oct 29"},
		Sentence:      "book a room for oct 29",
	}, models.BookingModeReservation)

	require.True(t, res.NeedsClarification())
	assert.Equal(t, models.ReasonMissingDate, res.Clarification.Reason)
	assert.Equal(t, []string{"end_date"}, res.Clarification.Data["missing_slots"])
}

func TestResolveWindowOnly(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services:    haircut(),
		Dates:       []string{"tomorrow"},
		TimeWindows: []string{"morning"},
		Sentence:    "haircut tomorrow morning",
	}, models.BookingModeService)

	require.False(t, res.NeedsClarification())
	assert.Equal(t, models.TimeModeWindow, res.Booking.TimeMode)
	assert.Equal(t, []string{"morning"}, res.Booking.TimeRefs)
	require.NotNil(t, res.Booking.TimeConstraint)
	assert.Equal(t, "fuzzy", res.Booking.TimeConstraint.Mode)
}

func TestResolveAtHourSentenceFallback(t *testing.T) {
	// No extracted time entity, but the sentence still says "at 6".
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services: haircut(),
		Dates:    []string{"tomorrow"},
		Sentence: "haircut tomorrow at 6",
	}, models.BookingModeService)

	assert.Equal(t, models.TimeModeExact, res.Booking.TimeMode)
	assert.Equal(t, []string{"6:00"}, res.Booking.TimeRefs)
}

func TestResolveMultipleTimesWithoutMarkerClarifies(t *testing.T) {
	// "3pm" and "5pm" with nothing joining them is not a range; only one
	// slot can be booked, so the turn must ask.
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services: haircut(),
		Dates:    []string{"tomorrow"},
		Times:    []string{"3pm", "5pm"},
		Sentence: "haircut tomorrow 3pm 5pm",
	}, models.BookingModeService)

	require.True(t, res.NeedsClarification())
	assert.Equal(t, models.ReasonAmbiguousTimeNoWindow, res.Clarification.Reason)
	assert.Equal(t, "3pm", res.Clarification.Data["time"])
	assert.True(t, res.Booking.AmbiguousTimes)
}

func TestResolveMisspelledDateNormalizes(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services: haircut(),
		Dates:    []string{"tommorow"},
		Times:    []string{"4:30 pm"},
		Sentence: "haircut tommorow at 4.30 pm",
	}, models.BookingModeService)

	require.False(t, res.NeedsClarification())
	assert.Equal(t, models.DateModeSingleDay, res.Booking.DateMode)
	assert.Equal(t, []string{"tomorrow"}, res.Booking.DateRefs)
}

func TestResolveAbbreviatedWeekdayNormalizes(t *testing.T) {
	r := NewDefaultSemanticResolver()
	res := r.Resolve(&models.Entities{
		Services: haircut(),
		Dates:    []string{"next fri"},
		Times:    []string{"4:30 pm"},
		Sentence: "haircut next fri at 4.30 pm",
	}, models.BookingModeService)

	require.False(t, res.NeedsClarification())
	assert.Equal(t, []string{"next friday"}, res.Booking.DateRefs)
}
