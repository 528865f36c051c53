// Package decision is the policy layer: a pure function from booking
// semantics to RESOLVED or NEEDS_CLARIFICATION. It operates only on semantic
// roles, never on raw text or regex patterns.
package decision

import (
	"strings"

	"bookwise/config"
	"bookwise/models"
)

// Policy configures which time shapes may resolve without asking.
type Policy struct {
	AllowTimeWindows        bool
	AllowConstraintOnlyTime bool
}

// DefaultPolicy allows both windows and constraint-only times.
func DefaultPolicy() Policy {
	return Policy{AllowTimeWindows: true, AllowConstraintOnlyTime: true}
}

// Decide determines the booking status for one turn.
func Decide(booking *models.ResolvedBooking, entities *models.Entities, policy Policy, intentName string, tenantCtx *models.TenantContext) (models.DecisionResult, *models.DecisionTrace) {
	if booking == nil {
		booking = &models.ResolvedBooking{DateMode: models.DateModeNone, TimeMode: models.TimeModeNone}
	}

	bookingMode := booking.BookingMode
	if bookingMode == "" && tenantCtx != nil {
		bookingMode = tenantCtx.BookingMode
	}
	if bookingMode == "" {
		bookingMode = models.BookingModeService
	}

	isModify := intentName == models.IntentModifyBooking
	isCancel := intentName == models.IntentCancelBooking

	var serviceTrace *models.ServiceResolutionTrace

	switch {
	case isModify || isCancel:
		// Modify and cancel key off a booking reference, not a service.
		if result, trace, done := decideBookingReference(booking, entities, bookingMode, isModify); done {
			return result, trace
		}
		serviceTrace = &models.ServiceResolutionTrace{Strategy: "skipped_modify_cancel"}

	case len(booking.Services) == 0:
		return needsClarification(models.ReasonMissingService, booking, &models.DecisionTrace{
			MissingSlots:      []string{"service"},
			RuleEnforced:      "service_required",
			ServiceResolution: &models.ServiceResolutionTrace{Strategy: "no_services", ClarificationReason: models.ReasonMissingService},
		})

	default:
		tenantID, reason, trace := ResolveTenantServiceID(booking.Services, tenantCtx, bookingMode)
		serviceTrace = trace
		if tenantID == "" {
			trace.ClarificationReason = reason
			return needsClarification(reason, booking, &models.DecisionTrace{
				MissingSlots:      []string{"service"},
				RuleEnforced:      "tenant_authoritative_service_resolution",
				ServiceResolution: trace,
			})
		}
	}

	expectedShape := config.IntentTemporalShapes[intentName]

	// Temporal shape is validated before any RESOLVED verdict. Modify only
	// needs change deltas, which decideBookingReference already checked.
	if !isModify {
		if reason := validateTemporalShape(intentName, booking); reason != "" {
			decisionReason := reason
			if expectedShape == models.TemporalShapeDatetimeRange {
				decisionReason = "temporal_shape_not_satisfied"
			}
			result := models.DecisionResult{
				Status:        models.StatusNeedsClarification,
				Reason:        decisionReason,
				EffectiveTime: effectiveTime(booking),
			}
			trace := &models.DecisionTrace{
				State:                 result.Status,
				Reason:                result.Reason,
				ExpectedTemporalShape: expectedShape,
				ActualTemporalShape:   actualShape(booking, expectedShape),
				MissingSlots:          missingSlotsForReason(reason),
				RuleEnforced:          "temporal_shape_validation",
				ServiceResolution:     serviceTrace,
			}
			return result, trace
		}
	}

	// System invariant: a booking with a resolved date and a resolved time
	// is RESOLVED, whatever else is going on.
	if hasResolvedDate(booking, bookingMode) && booking.HasResolvedTime() {
		return resolved(booking, expectedShape, "invariant_date_time_resolved", serviceTrace)
	}

	// Policy checks. These are preference gates, not completeness checks.
	if booking.TimeMode == models.TimeModeWindow && !policy.AllowTimeWindows {
		return needsClarification(models.ReasonPolicyTimeWindow, booking, &models.DecisionTrace{
			ExpectedTemporalShape: expectedShape,
			RuleEnforced:          "time_window_policy",
			ServiceResolution:     serviceTrace,
		})
	}

	if booking.TimeConstraint != nil && booking.TimeConstraint.Mode == "fuzzy" && bookingMode != models.BookingModeReservation {
		return needsClarification(models.ReasonMissingTimeFuzzy, booking, &models.DecisionTrace{
			ExpectedTemporalShape: expectedShape,
			MissingSlots:          []string{"time"},
			RuleEnforced:          "fuzzy_time_policy",
			ServiceResolution:     serviceTrace,
		})
	}

	if booking.TimeConstraint != nil && booking.TimeMode == models.TimeModeNone && !policy.AllowConstraintOnlyTime {
		return needsClarification(models.ReasonPolicyConstraintOnlyTime, booking, &models.DecisionTrace{
			ExpectedTemporalShape: expectedShape,
			RuleEnforced:          "constraint_only_time_policy",
			ServiceResolution:     serviceTrace,
		})
	}

	return resolved(booking, expectedShape, "", serviceTrace)
}

// decideBookingReference handles the MODIFY/CANCEL gate. done reports
// whether a verdict was reached.
func decideBookingReference(booking *models.ResolvedBooking, entities *models.Entities, bookingMode string, isModify bool) (models.DecisionResult, *models.DecisionTrace, bool) {
	bookingID := ""
	if entities != nil {
		bookingID = entities.BookingID
	}

	hasDate := booking.HasResolvedDate()
	hasTime := booking.HasResolvedTime()

	if bookingID == "" {
		missing := []string{"booking_id"}
		if isModify {
			switch bookingMode {
			case models.BookingModeService:
				if hasTime && !hasDate {
					missing = append(missing, "date")
				} else if hasDate && !hasTime {
					missing = append(missing, "time")
				} else if !hasDate && !hasTime {
					missing = append(missing, "date", "time")
				}
			case models.BookingModeReservation:
				if !hasReservationRange(booking) {
					missing = append(missing, "start_date", "end_date")
				}
			}
		}
		result, trace := needsClarification(models.ReasonMissingBookingReference, booking, &models.DecisionTrace{
			MissingSlots:      missing,
			RuleEnforced:      "booking_id_required",
			ServiceResolution: &models.ServiceResolutionTrace{Strategy: "booking_id_required"},
		})
		return result, trace, true
	}

	if !isModify {
		return models.DecisionResult{}, nil, false
	}

	// A reservation delta of a single date is not a usable change: the stay
	// needs both ends.
	if bookingMode == models.BookingModeReservation && isSingleDateDelta(booking) {
		result, trace := needsClarification(models.ReasonMissingDate, booking, &models.DecisionTrace{
			MissingSlots:      []string{"end_date"},
			RuleEnforced:      "single_date_reservation",
			ServiceResolution: &models.ServiceResolutionTrace{Strategy: "single_date_reservation"},
		})
		return result, trace, true
	}

	hasDelta := hasDate || hasTime || len(booking.Services) > 0 || booking.Duration != nil
	if !hasDelta {
		result, trace := needsClarification(models.ReasonMissingContext, booking, &models.DecisionTrace{
			MissingSlots:      modifyMissingSlots(booking, entities, bookingMode),
			RuleEnforced:      "no_change_delta",
			ServiceResolution: &models.ServiceResolutionTrace{Strategy: "no_change_delta"},
		})
		return result, trace, true
	}

	return models.DecisionResult{}, nil, false
}

// modifyMissingSlots picks the slots to ask for when a modify request has a
// reference but no delta. Specific booking modes get specific slots; truly
// generic wording ("reschedule my booking") gets a generic ask.
func modifyMissingSlots(booking *models.ResolvedBooking, entities *models.Entities, bookingMode string) []string {
	hasTemporal := booking.HasResolvedDate() || booking.HasResolvedTime()
	generic := false
	if entities != nil && entities.Sentence != "" {
		sentence := strings.ToLower(entities.Sentence)
		generic = strings.Contains(sentence, "reschedule") &&
			(strings.Contains(sentence, "my booking") || strings.Contains(sentence, "my reservation"))
	}

	switch {
	case bookingMode == models.BookingModeReservation:
		return []string{"start_date", "end_date"}
	case bookingMode == models.BookingModeService && generic && !hasTemporal:
		return []string{"change"}
	case bookingMode == models.BookingModeService:
		return []string{"date", "time"}
	default:
		return []string{"change"}
	}
}

// validateTemporalShape checks the intent's temporal requirements. Empty
// string means the shape is complete.
func validateTemporalShape(intentName string, booking *models.ResolvedBooking) string {
	shape, required := config.IntentTemporalShapes[intentName]
	if !required {
		return ""
	}

	switch shape {
	case models.TemporalShapeDatetimeRange:
		hasTime := false
		if tc := booking.TimeConstraint; tc != nil {
			hasTime = tc.Mode == "exact" || tc.Mode == "window" || tc.Mode == "fuzzy"
		} else if booking.TimeMode != models.TimeModeNone && len(booking.TimeRefs) > 0 {
			hasTime = true
		}
		if !hasTime {
			return models.ReasonMissingTime
		}
		hasDate := booking.DateMode != models.DateModeNone &&
			booking.DateMode != models.DateModeFlexible &&
			len(booking.DateRefs) > 0
		if !hasDate {
			return models.ReasonMissingDate
		}

	case models.TemporalShapeDateRange:
		hasStart := len(booking.DateRefs) >= 1 || booking.DateMode == models.DateModeRange
		hasEnd := len(booking.DateRefs) >= 2 || booking.DateMode == models.DateModeRange
		if !hasStart {
			return models.ReasonMissingStartDate
		}
		if !hasEnd {
			return models.ReasonMissingEndDate
		}
	}
	return ""
}

// hasResolvedDate applies the reservation tightening: a stay needs both an
// explicit start and an explicit end.
func hasResolvedDate(booking *models.ResolvedBooking, bookingMode string) bool {
	if bookingMode != models.BookingModeReservation {
		return booking.HasResolvedDate()
	}
	hasStart := (booking.DateRange != nil && booking.DateRange.StartDate != "") || len(booking.DateRefs) >= 1
	hasEnd := (booking.DateRange != nil && booking.DateRange.EndDate != "") || len(booking.DateRefs) >= 2
	return hasStart && hasEnd
}

// isSingleDateDelta reports one lone date, including a range collapsed to a
// single day from one ref.
func isSingleDateDelta(booking *models.ResolvedBooking) bool {
	if len(booking.DateRefs) == 1 && booking.DateRange == nil {
		return true
	}
	if booking.DateRange != nil && booking.DateRange.StartDate == booking.DateRange.EndDate && len(booking.DateRefs) <= 1 {
		return true
	}
	return false
}

// effectiveTime reports which time source binds, if any.
func effectiveTime(booking *models.ResolvedBooking) *models.EffectiveTime {
	if booking.TimeConstraint != nil {
		// Constraints name exact boundaries ("by 4pm").
		return &models.EffectiveTime{Mode: "exact", Source: "constraint"}
	}
	if len(booking.TimeRefs) == 0 {
		return nil
	}
	switch booking.TimeMode {
	case models.TimeModeExact, models.TimeModeRange:
		return &models.EffectiveTime{Mode: "exact", Source: "primary"}
	case models.TimeModeWindow:
		return &models.EffectiveTime{Mode: "window", Source: "window"}
	}
	return nil
}

func actualShape(booking *models.ResolvedBooking, expectedShape string) string {
	hasDate := len(booking.DateRefs) > 0 && booking.DateMode != models.DateModeNone
	hasTime := len(booking.TimeRefs) > 0 && booking.TimeMode != models.TimeModeNone
	switch {
	case hasDate && hasTime:
		if expectedShape == models.TemporalShapeDateRange {
			return models.TemporalShapeDateRange
		}
		return models.TemporalShapeDatetimeRange
	case hasDate:
		return "date_only"
	case hasTime:
		return "time_only"
	}
	return "none"
}

func hasReservationRange(booking *models.ResolvedBooking) bool {
	if booking.DateRange != nil && booking.DateRange.StartDate != "" && booking.DateRange.EndDate != "" {
		return true
	}
	return len(booking.DateRefs) >= 2 || booking.DateMode == models.DateModeRange
}

func missingSlotsForReason(reason string) []string {
	switch reason {
	case models.ReasonMissingTime:
		return []string{"time"}
	case models.ReasonMissingDate:
		return []string{"date"}
	case models.ReasonMissingStartDate:
		return []string{"start_date"}
	case models.ReasonMissingEndDate:
		return []string{"end_date"}
	}
	return nil
}

func needsClarification(reason string, booking *models.ResolvedBooking, trace *models.DecisionTrace) (models.DecisionResult, *models.DecisionTrace) {
	result := models.DecisionResult{
		Status:        models.StatusNeedsClarification,
		Reason:        reason,
		EffectiveTime: effectiveTime(booking),
	}
	trace.State = result.Status
	trace.Reason = reason
	return result, trace
}

func resolved(booking *models.ResolvedBooking, expectedShape, rule string, serviceTrace *models.ServiceResolutionTrace) (models.DecisionResult, *models.DecisionTrace) {
	result := models.DecisionResult{
		Status:        models.StatusResolved,
		EffectiveTime: effectiveTime(booking),
	}
	trace := &models.DecisionTrace{
		State:                 result.Status,
		ExpectedTemporalShape: expectedShape,
		ActualTemporalShape:   expectedShape,
		MissingSlots:          []string{},
		TemporalShapeOK:       true,
		RuleEnforced:          rule,
		ServiceResolution:     serviceTrace,
	}
	return result, trace
}
