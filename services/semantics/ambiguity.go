package semantics

import (
	"strings"

	"bookwise/models"
)

// checkAmbiguity runs the ordered ambiguity rules over the resolved booking.
// Returns nil when the turn is unambiguous. The order matters: structural
// conflicts outrank vagueness, vagueness outranks time trouble.
func checkAmbiguity(entities *models.Entities, booking *models.ResolvedBooking, dates dateResolution, times timeResolution) *models.Clarification {
	// A fully specified simple turn never clarifies: one service, one date,
	// one exact time that is not a bare hour.
	if isFullySpecifiedSimpleTurn(entities, booking) {
		return nil
	}

	modifiers := entities.RelativeModifiers

	// Modifier stacked on a relative day ("next tomorrow") contradicts itself.
	if len(dates.refs) > 0 && len(modifiers) > 0 && isRelativeDay(dates.refs[0]) {
		return models.NewClarification(models.ReasonConflictingSignals, map[string]any{
			"modifier": strings.ToLower(modifiers[0]),
			"date":     dates.refs[0],
		})
	}

	// A range between bare weekdays has no anchor week.
	if len(dates.refs) >= 2 && isWeekday(dates.refs[0]) && isWeekday(dates.refs[1]) {
		return models.NewClarification(models.ReasonMissingDateRange, map[string]any{
			"start": dates.refs[0],
			"end":   dates.refs[1],
		})
	}

	for _, ref := range dates.refs {
		if isVagueDate(ref) {
			return models.NewClarification(models.ReasonVagueDateReference, map[string]any{"date_text": ref})
		}
	}
	for _, ref := range dates.refs {
		if isPluralWeekday(ref) {
			return models.NewClarification(models.ReasonAmbiguousPluralWeekday, map[string]any{"date_text": ref})
		}
	}
	for _, ref := range dates.refs {
		if isContextDependentDate(ref) {
			return models.NewClarification(models.ReasonContextDependentDate, map[string]any{"date_text": ref})
		}
	}
	if len(dates.refs) == 1 && isBareWeekday(dates.refs[0], modifiers) {
		return models.NewClarification(models.ReasonContextDependentDate, map[string]any{"date_text": dates.refs[0]})
	}
	for _, ref := range dates.refs {
		if isLocaleAmbiguousDate(ref) {
			return models.NewClarification(models.ReasonLocaleAmbiguousDate, map[string]any{"date_text": ref})
		}
	}

	if entities.ConflictingStructure {
		return models.NewClarification(models.ReasonConflictingSignals, map[string]any{
			"sentence": entities.Sentence,
		})
	}

	if dates.ambiguous {
		return models.NewClarification(models.ReasonAmbiguousDateMultiple, map[string]any{
			"dates": dates.refs,
		})
	}

	// An hour range with no meridiem ("between 7 and 9") carries a recorded
	// issue with both candidate readings.
	for _, issue := range booking.TimeIssues {
		if issue.Kind == "ambiguous_meridiem" {
			return models.NewClarification(models.ReasonAmbiguousTimeNoWindow, map[string]any{
				"time":       issue.StartHour,
				"raw":        issue.Raw,
				"start_hour": issue.StartHour,
				"end_hour":   issue.EndHour,
				"candidates": issue.Candidates,
			})
		}
	}

	// Several candidate times with no range marker joining them: only one
	// slot can be booked, so ask instead of picking the first.
	if times.ambiguous && len(times.refs) > 0 {
		return models.NewClarification(models.ReasonAmbiguousTimeNoWindow, map[string]any{
			"time": times.refs[0],
		})
	}

	// Fuzzy or bare hours with no window context: the meridiem is anyone's
	// guess.
	if len(entities.TimeWindows) == 0 {
		for _, t := range entities.Times {
			if isFuzzyHour(t) || (isBareHour(t) && !hasMeridiem(t)) {
				return models.NewClarification(models.ReasonAmbiguousTimeNoWindow, map[string]any{
					"time": strings.TrimSpace(stripFuzzyMarkers(t)),
				})
			}
		}
	}

	return nil
}

// isFullySpecifiedSimpleTurn is the ambiguity exception: exactly one service,
// one date and one exact, non-bare time.
func isFullySpecifiedSimpleTurn(entities *models.Entities, booking *models.ResolvedBooking) bool {
	if len(entities.Services) != 1 {
		return false
	}
	if len(booking.DateRefs) != 1 || booking.DateMode != models.DateModeSingleDay {
		return false
	}
	if booking.TimeMode != models.TimeModeExact || len(entities.Times) != 1 {
		return false
	}
	raw := entities.Times[0]
	return hasMeridiem(raw) && !isFuzzyHour(raw)
}
