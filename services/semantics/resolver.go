package semantics

import (
	"go.uber.org/zap"

	"bookwise/models"
	"bookwise/utils"
)

// Resolve converts one turn's entities into booking semantics plus an
// optional clarification. No calendar binding happens here: "tomorrow" stays
// "tomorrow".
func (r *DefaultSemanticResolver) Resolve(entities *models.Entities, bookingMode string) Result {
	if entities == nil {
		entities = &models.Entities{}
	}
	if bookingMode == "" {
		bookingMode = models.BookingModeService
	}

	// Deadline phrases are boundaries, not start times, so they are carved
	// out before the regular time rules run.
	constraint := detectTimeConstraint(entities)
	times := filterConstraintTimes(entities.Times, constraint)

	timeRes := resolveTimeSemantics(entities, times)
	if constraint == nil {
		constraint = inferTimeConstraint(timeRes.mode, timeRes.refs, entities.TimeWindows)
	}

	dateRes := resolveDateSemantics(entities, bookingMode, entities.RelativeModifiers)

	booking := &models.ResolvedBooking{
		Services:       entities.Services,
		DateMode:       dateRes.mode,
		DateRefs:       dateRes.refs,
		TimeMode:       timeRes.mode,
		TimeRefs:       timeRes.refs,
		WindowRefs:     lowerAll(entities.TimeWindows),
		TimeConstraint: constraint,
		TimeIssues:     timeRes.issues,
		BookingMode:    bookingMode,
		AmbiguousDates: dateRes.ambiguous,
		AmbiguousTimes: timeRes.ambiguous,
	}
	if len(entities.Durations) > 0 {
		booking.Duration = &models.Duration{Raw: entities.Durations[0]}
	}

	clarification := checkAmbiguity(entities, booking, dateRes, timeRes)
	if clarification == nil {
		clarification = checkCompleteness(entities, booking, bookingMode)
	}

	if clarification != nil {
		utils.GetLogger().Debug("semantic resolution needs clarification",
			zap.String("reason", clarification.Reason),
			zap.String("dateMode", booking.DateMode),
			zap.String("timeMode", booking.TimeMode),
		)
	}

	return Result{Booking: booking, Clarification: clarification}
}

// checkCompleteness flags turns whose shape cannot carry the request:
// deadline with no date, deadline with no start time, reservations missing
// either end of the stay.
func checkCompleteness(entities *models.Entities, booking *models.ResolvedBooking, bookingMode string) *models.Clarification {
	explicitConstraint := booking.TimeConstraint != nil && booking.TimeConstraint.Label != "" &&
		booking.TimeMode == models.TimeModeNone

	if explicitConstraint {
		if booking.DateMode == models.DateModeNone {
			return models.NewClarification(models.ReasonMissingDateForTimeConstraint, map[string]any{
				"constraint": booking.TimeConstraint.Label,
			})
		}
		data := map[string]any{"service": firstServiceText(entities)}
		if len(booking.DateRefs) > 0 {
			data["date"] = booking.DateRefs[0]
		}
		return models.NewClarification(models.ReasonMissingTime, data)
	}

	if bookingMode == models.BookingModeReservation && booking.DateMode != models.DateModeNone {
		hasStart := len(booking.DateRefs) >= 1 || booking.DateMode == models.DateModeRange
		hasEnd := len(booking.DateRefs) >= 2 || booking.DateMode == models.DateModeRange
		if !hasStart {
			return models.NewClarification(models.ReasonMissingDate, map[string]any{
				"missing_slots": []string{"start_date"},
				"service":       firstServiceText(entities),
			})
		}
		if !hasEnd {
			return models.NewClarification(models.ReasonMissingDate, map[string]any{
				"missing_slots": []string{"end_date"},
				"service":       firstServiceText(entities),
			})
		}
	}

	return nil
}

func firstServiceText(entities *models.Entities) string {
	if len(entities.Services) > 0 {
		return entities.Services[0].Text
	}
	return "appointment"
}
