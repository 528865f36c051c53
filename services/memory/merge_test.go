package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookwise/models"
)

func rememberedState() *models.MemoryState {
	return &models.MemoryState{
		Intent:       models.IntentCreateAppointment,
		BookingMode:  models.BookingModeService,
		BookingState: models.BookingStatePartial,
		Booking: &models.ResolvedBooking{
			Services:  []models.ServiceRef{{Text: "haircut", Canonical: "haircut"}},
			DateMode:  models.DateModeSingleDay,
			DateRefs:  []string{"tomorrow"},
			TimeMode:  models.TimeModeNone,
			DateRange: &models.DateRange{StartDate: "2026-10-22", EndDate: "2026-10-22"},
		},
	}
}

func TestMergeTimeOnlyTurnKeepsRememberedDate(t *testing.T) {
	current := &models.ResolvedBooking{
		DateMode:  models.DateModeNone,
		TimeMode:  models.TimeModeExact,
		TimeRefs:  []string{"5:00 pm"},
		TimeRange: &models.TimeRange{StartTime: "17:00", EndTime: "17:00"},
	}

	merged, _, applied := MergeBookingState(rememberedState(), current, nil)

	assert.True(t, applied)
	assert.Equal(t, []string{"tomorrow"}, merged.DateRefs)
	require.NotNil(t, merged.DateRange)
	// The remembered range stays pinned to the day "tomorrow" meant when it
	// was said, not to the current turn's clock.
	assert.Equal(t, "2026-10-22", merged.DateRange.StartDate)
	require.NotNil(t, merged.DatetimeRange)
	assert.Equal(t, "2026-10-22T17:00:00", merged.DatetimeRange.Start)
}

func TestMergeServicesAreSticky(t *testing.T) {
	current := &models.ResolvedBooking{
		DateMode: models.DateModeNone,
		TimeMode: models.TimeModeExact,
		TimeRefs: []string{"5:00 pm"},
	}
	merged, _, applied := MergeBookingState(rememberedState(), current, nil)

	assert.True(t, applied)
	require.Len(t, merged.Services, 1)
	assert.Equal(t, "haircut", merged.Services[0].Text)
}

func TestMergeCurrentServicesWin(t *testing.T) {
	current := &models.ResolvedBooking{
		Services: []models.ServiceRef{{Text: "massage", Canonical: "massage"}},
		DateMode: models.DateModeNone,
		TimeMode: models.TimeModeNone,
	}
	merged, _, _ := MergeBookingState(rememberedState(), current, nil)

	assert.Equal(t, "massage", merged.Services[0].Text)
}

func TestMergeFullyResolvedCurrentReplacesWholesale(t *testing.T) {
	current := &models.ResolvedBooking{
		Services:  []models.ServiceRef{{Text: "haircut"}},
		DateMode:  models.DateModeSingleDay,
		DateRefs:  []string{"friday"},
		TimeMode:  models.TimeModeExact,
		TimeRefs:  []string{"3:00 pm"},
		DateRange: &models.DateRange{StartDate: "2026-10-23", EndDate: "2026-10-23"},
		TimeRange: &models.TimeRange{StartTime: "15:00", EndTime: "15:00"},
	}
	merged, _, _ := MergeBookingState(rememberedState(), current, nil)

	assert.Equal(t, "2026-10-23", merged.DateRange.StartDate)
	assert.Equal(t, "15:00", merged.TimeRange.StartTime)
}

func TestMergeRememberedClarificationStaysPending(t *testing.T) {
	state := rememberedState()
	state.Clarification = models.NewClarification(models.ReasonMissingTime, map[string]any{"service": "haircut"})

	current := &models.ResolvedBooking{DateMode: models.DateModeNone, TimeMode: models.TimeModeNone}
	_, clar, applied := MergeBookingState(state, current, nil)

	assert.True(t, applied)
	require.NotNil(t, clar)
	assert.Equal(t, models.ReasonMissingTime, clar.Reason)
}

func TestMergeCurrentClarificationWins(t *testing.T) {
	state := rememberedState()
	state.Clarification = models.NewClarification(models.ReasonMissingTime, map[string]any{"service": "haircut"})

	current := &models.ResolvedBooking{DateMode: models.DateModeNone, TimeMode: models.TimeModeNone}
	fresh := models.NewClarification(models.ReasonAmbiguousTimeNoWindow, map[string]any{"time": "5"})
	_, clar, _ := MergeBookingState(state, current, fresh)

	assert.Equal(t, models.ReasonAmbiguousTimeNoWindow, clar.Reason)
}

func TestMergeWithNilStateIsIdentity(t *testing.T) {
	current := &models.ResolvedBooking{
		DateMode: models.DateModeSingleDay,
		DateRefs: []string{"tomorrow"},
		TimeMode: models.TimeModeNone,
	}
	merged, clar, applied := MergeBookingState(nil, current, nil)

	assert.False(t, applied)
	assert.Nil(t, clar)
	assert.Equal(t, current.DateRefs, merged.DateRefs)
}

func TestMergeDurationFallback(t *testing.T) {
	state := rememberedState()
	state.Booking.Duration = &models.Duration{Minutes: 60, Raw: "an hour"}

	current := &models.ResolvedBooking{DateMode: models.DateModeNone, TimeMode: models.TimeModeNone}
	merged, _, _ := MergeBookingState(state, current, nil)

	require.NotNil(t, merged.Duration)
	assert.Equal(t, 60, merged.Duration.Minutes)
}

func TestMergePriorDateStaysPinnedOverCurrentDate(t *testing.T) {
	// A date-only follow-up must not move a day that is already agreed; only
	// a fully resolved turn replaces the remembered datetime.
	state := rememberedState()
	state.Booking.DateRefs = []string{"december 17"}
	state.Booking.DateRange = &models.DateRange{StartDate: "2025-12-17", EndDate: "2025-12-17"}

	current := &models.ResolvedBooking{
		DateMode:  models.DateModeSingleDay,
		DateRefs:  []string{"december 19"},
		TimeMode:  models.TimeModeNone,
		DateRange: &models.DateRange{StartDate: "2025-12-19", EndDate: "2025-12-19"},
	}

	merged, _, applied := MergeBookingState(state, current, nil)

	assert.True(t, applied)
	assert.Equal(t, []string{"december 17"}, merged.DateRefs)
	require.NotNil(t, merged.DateRange)
	assert.Equal(t, "2025-12-17", merged.DateRange.StartDate)
	assert.Equal(t, "2025-12-17", merged.DateRange.EndDate)
}
