package calendar

import (
	"time"

	"go.uber.org/zap"

	"bookwise/config"
	"bookwise/models"
	"bookwise/utils"
)

// Bind resolves the booking's semantic date and time references against an
// injected clock and timezone. Intents outside the binding set pass through
// untouched. When a semantic clarification is already pending, the date is
// still bound so the question can name it, but no new binding decisions are
// made.
func (b *DefaultCalendarBinder) Bind(booking *models.ResolvedBooking, clarification *models.Clarification, intent string, now time.Time, loc *time.Location) *models.Clarification {
	if booking == nil {
		return clarification
	}
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)

	if !config.BindingIntents[intent] {
		return clarification
	}

	dateClar := bindDates(booking, now)

	if clarification != nil {
		if booking.DateRange != nil {
			clarification.Data["date"] = booking.DateRange.StartDate
		}
		return clarification
	}
	if dateClar != nil {
		return dateClar
	}

	if timeClar := bindTimes(booking); timeClar != nil {
		return timeClar
	}

	if rangeClar := assembleDatetimeRange(booking); rangeClar != nil {
		return rangeClar
	}

	utils.GetLogger().Debug("calendar binding complete",
		zap.String("intent", intent),
		zap.Any("dateRange", booking.DateRange),
		zap.Any("datetimeRange", booking.DatetimeRange),
	)
	return nil
}

// bindDates fills booking.DateRange from the semantic date refs.
func bindDates(booking *models.ResolvedBooking, now time.Time) *models.Clarification {
	switch booking.DateMode {
	case models.DateModeNone, models.DateModeFlexible:
		return nil

	case models.DateModeSingleDay:
		if len(booking.DateRefs) == 0 {
			return nil
		}
		ref := booking.DateRefs[0]
		if period, ok := bindPeriodRef(ref, now); ok {
			booking.DateRange = period
			return nil
		}
		day, ok := bindDateRef(ref, now)
		if !ok {
			return bindingConflict("invalid_date_format", map[string]any{"date": ref})
		}
		iso := day.Format(isoDate)
		booking.DateRange = &models.DateRange{StartDate: iso, EndDate: iso}
		return nil

	case models.DateModeRange:
		if len(booking.DateRefs) == 0 {
			return nil
		}
		if len(booking.DateRefs) == 1 {
			if period, ok := bindPeriodRef(booking.DateRefs[0], now); ok {
				booking.DateRange = period
				return nil
			}
			return bindingConflict("invalid_date_format", map[string]any{"date": booking.DateRefs[0]})
		}
		start, okS := bindDateRef(booking.DateRefs[0], now)
		end, okE := bindDateRef(booking.DateRefs[1], now)
		if !okS || !okE {
			return bindingConflict("invalid_date_format", map[string]any{"dates": booking.DateRefs})
		}
		if end.Before(start) {
			return bindingConflict("end_before_start", map[string]any{
				"start": start.Format(isoDate),
				"end":   end.Format(isoDate),
			})
		}
		booking.DateRange = &models.DateRange{
			StartDate: start.Format(isoDate),
			EndDate:   end.Format(isoDate),
		}
		return nil
	}
	return nil
}

// bindTimes fills booking.TimeRange from the semantic time refs.
func bindTimes(booking *models.ResolvedBooking) *models.Clarification {
	window := firstWindow(booking)

	switch booking.TimeMode {
	case models.TimeModeExact:
		if len(booking.TimeRefs) == 0 {
			return nil
		}
		clock, ok := bindClock(booking.TimeRefs[0], window)
		if !ok {
			if bareHourPattern.MatchString(booking.TimeRefs[0]) {
				// Already flagged upstream; stays unbound.
				return nil
			}
			return bindingConflict("invalid_time_format", map[string]any{"time": booking.TimeRefs[0]})
		}
		booking.TimeRange = &models.TimeRange{StartTime: clock, EndTime: clock}

	case models.TimeModeRange:
		if len(booking.TimeRefs) < 2 {
			return nil
		}
		start, okS := bindClock(booking.TimeRefs[0], window)
		end, okE := bindClock(booking.TimeRefs[1], window)
		if !okS || !okE {
			return bindingConflict("invalid_time_format", map[string]any{"times": booking.TimeRefs})
		}
		if end < start {
			return bindingConflict("time_range_spans_midnight", map[string]any{
				"start": start,
				"end":   end,
			})
		}
		booking.TimeRange = &models.TimeRange{StartTime: start, EndTime: end}

	case models.TimeModeWindow:
		if len(booking.TimeRefs) > 0 {
			if w, ok := config.TimeWindows[booking.TimeRefs[0]]; ok {
				booking.TimeRange = &models.TimeRange{StartTime: w.StartTime, EndTime: w.EndTime}
			}
		}
	}
	return nil
}

// assembleDatetimeRange combines the bound date and time into a datetime
// range and applies the duration. A date alone covers the whole day; a time
// alone never invents a date.
func assembleDatetimeRange(booking *models.ResolvedBooking) *models.Clarification {
	if booking.DateRange == nil {
		return nil
	}

	if booking.Duration != nil && booking.Duration.Raw != "" && booking.Duration.Minutes == 0 {
		if minutes, ok := parseDurationMinutes(booking.Duration.Raw); ok {
			booking.Duration.Minutes = minutes
		}
	}

	if booking.TimeRange == nil {
		booking.DatetimeRange = &models.DatetimeRange{
			Start: booking.DateRange.StartDate + "T00:00:00",
			End:   booking.DateRange.EndDate + "T23:59:59",
		}
		return nil
	}

	start := booking.DateRange.StartDate + "T" + booking.TimeRange.StartTime + ":00"
	end := booking.DateRange.EndDate + "T" + booking.TimeRange.EndTime + ":00"

	multiDay := booking.DateRange.StartDate != booking.DateRange.EndDate

	if booking.Duration != nil && booking.Duration.Minutes > 0 {
		if multiDay {
			return bindingConflict("duration_on_multi_day_range", map[string]any{
				"duration": booking.Duration.Raw,
				"dates":    booking.DateRange,
			})
		}
		if start == end {
			startAt, err := time.Parse("2006-01-02T15:04:05", start)
			if err != nil {
				return bindingConflict("invalid_datetime_format", map[string]any{"datetime": start})
			}
			end = startAt.Add(time.Duration(booking.Duration.Minutes) * time.Minute).Format("2006-01-02T15:04:05")
		}
	}

	if end < start {
		return bindingConflict("end_before_start", map[string]any{
			"start": start,
			"end":   end,
		})
	}

	booking.DatetimeRange = &models.DatetimeRange{Start: start, End: end}
	return nil
}

func bindingConflict(errorType string, data map[string]any) *models.Clarification {
	data["error_type"] = errorType
	return models.NewClarification(models.ReasonConflictingSignals, data)
}
