package semantics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"bookwise/config"
	"bookwise/models"
)

var (
	numericDatePattern = regexp.MustCompile(`^(\d{1,2})[/.](\d{1,2})(?:[/.](\d{2,4}))?$`)
	bareDayPattern     = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?$`)
	monthDayPattern    = regexp.MustCompile(`^([a-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?$`)
	dayMonthPattern    = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?([a-z]+)$`)
)

var fineGrainedModifiers = []string{"early", "mid", "end"}

// dateResolution is the intermediate outcome of date semantics.
type dateResolution struct {
	mode      string
	refs      []string
	ambiguous bool
}

// resolveDateSemantics decides what the user's date phrases mean. Absolute
// dates outrank relative ones; two dates only form a range when a range
// marker joins them.
func resolveDateSemantics(entities *models.Entities, bookingMode string, modifiers []string) dateResolution {
	refs := entities.DatesAbsolute
	if len(refs) == 0 {
		refs = entities.Dates
	}
	normalized := make([]string, 0, len(refs))
	for _, ref := range refs {
		normalized = append(normalized, config.NormalizeDateText(ref))
	}
	refs = normalized

	if bookingMode == models.BookingModeReservation {
		refs = completeShorthandRange(refs)
	}

	switch {
	case len(refs) == 0:
		return dateResolution{mode: models.DateModeNone}
	case len(refs) == 1:
		ref := refs[0]
		if isPeriodReference(ref) {
			if hasFineGrainedModifier(ref, modifiers) {
				return dateResolution{mode: models.DateModeRange, refs: refs}
			}
			// "next week" or "this month" with nothing narrower cannot be
			// bound to days without asking.
			return dateResolution{mode: models.DateModeFlexible, refs: refs}
		}
		return dateResolution{mode: models.DateModeSingleDay, refs: refs}
	default:
		if len(entities.RangeMarkers) > 0 {
			return dateResolution{mode: models.DateModeRange, refs: refs[:2]}
		}
		return dateResolution{mode: models.DateModeRange, refs: refs[:2], ambiguous: true}
	}
}

// isPeriodReference reports whether the phrase names a period rather than a
// day: weeks, weekends, months.
func isPeriodReference(ref string) bool {
	return strings.Contains(ref, "week") || strings.Contains(ref, "month")
}

func hasFineGrainedModifier(ref string, modifiers []string) bool {
	for _, m := range fineGrainedModifiers {
		if strings.Contains(ref, m) {
			return true
		}
		for _, mod := range modifiers {
			if strings.Contains(strings.ToLower(mod), m) {
				return true
			}
		}
	}
	return false
}

// completeShorthandRange expands reservation shorthand like
// ["oct 29th", "2nd"] to ["oct 29th", "nov 2nd"]: a bare end day smaller
// than the start day rolls into the next month.
func completeShorthandRange(refs []string) []string {
	if len(refs) != 2 {
		return refs
	}
	startMonth, startDay, ok := parseMonthDay(refs[0])
	if !ok {
		return refs
	}
	m := bareDayPattern.FindStringSubmatch(strings.TrimSpace(refs[1]))
	if m == nil {
		return refs
	}
	endDay, err := strconv.Atoi(m[1])
	if err != nil {
		return refs
	}

	endMonth := startMonth
	if endDay < startDay {
		endMonth = startMonth%12 + 1
	}
	completed := fmt.Sprintf("%s %d", monthName(endMonth), endDay)
	return []string{refs[0], completed}
}

// parseMonthDay reads "oct 29th" or "29th oct" style phrases.
func parseMonthDay(ref string) (month, day int, ok bool) {
	text := strings.ToLower(strings.TrimSpace(ref))
	if m := monthDayPattern.FindStringSubmatch(text); m != nil {
		if mon, found := config.Months[m[1]]; found {
			if d, err := strconv.Atoi(m[2]); err == nil {
				return mon, d, true
			}
		}
	}
	if m := dayMonthPattern.FindStringSubmatch(text); m != nil {
		if mon, found := config.Months[m[2]]; found {
			if d, err := strconv.Atoi(m[1]); err == nil {
				return mon, d, true
			}
		}
	}
	return 0, 0, false
}

func monthName(month int) string {
	names := []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}
	if month < 1 || month > 12 {
		return ""
	}
	return names[month-1]
}

// isLocaleAmbiguousDate reports numeric dates where day and month cannot be
// told apart, e.g. "07/12".
func isLocaleAmbiguousDate(ref string) bool {
	m := numericDatePattern.FindStringSubmatch(strings.TrimSpace(ref))
	if m == nil {
		return false
	}
	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	// Equal parts read the same either way round.
	return first >= 1 && first <= 12 && second >= 1 && second <= 12 && first != second
}

// isWeekday reports whether the phrase is exactly a weekday name.
func isWeekday(ref string) bool {
	_, ok := config.Weekdays[strings.ToLower(strings.TrimSpace(ref))]
	return ok
}

// isPluralWeekday catches "mondays", "fridays": a recurrence, not a date.
func isPluralWeekday(ref string) bool {
	text := strings.ToLower(strings.TrimSpace(ref))
	return strings.HasSuffix(text, "s") && isWeekday(strings.TrimSuffix(text, "s"))
}

// isBareWeekday is a weekday with no anchoring modifier ("friday" alone, as
// opposed to "next friday").
func isBareWeekday(ref string, modifiers []string) bool {
	return isWeekday(ref) && len(modifiers) == 0
}

// isVagueDate catches phrases that name no period at all ("sometime soon").
func isVagueDate(ref string) bool {
	return containsAny(ref, config.VagueDatePhrases)
}

// isContextDependentDate catches phrases that only make sense against
// earlier conversation ("same day", "then").
func isContextDependentDate(ref string) bool {
	return containsAny(ref, config.ContextDependentPhrases)
}

// isRelativeDay reports pure relative day phrases ("today", "tomorrow").
func isRelativeDay(ref string) bool {
	_, ok := config.RelativeDayOffsets[strings.ToLower(strings.TrimSpace(ref))]
	return ok
}
