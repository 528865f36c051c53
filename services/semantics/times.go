package semantics

import (
	"fmt"
	"regexp"
	"strings"

	"bookwise/config"
	"bookwise/models"
)

var atHourPattern = regexp.MustCompile(`(?i)(?:^|[^a-z])at\s+(\d{1,2})\b`)

// timeResolution is the intermediate outcome of time semantics.
type timeResolution struct {
	mode      string
	refs      []string
	issues    []models.TimeIssue
	ambiguous bool
}

// resolveTimeSemantics decides what the user's time phrases mean without
// touching the calendar. Precedence: exact beats window, ranges need two
// endpoints, windows survive alone.
func resolveTimeSemantics(entities *models.Entities, times []string) timeResolution {
	windows := entities.TimeWindows

	// Ambiguous meridiem ranges: "between 7 and 9" with no am/pm marker on
	// either end cannot be resolved, only asked about.
	for _, t := range times {
		if start, end, ok := parseHourRange(t); ok && !hasMeridiem(t) {
			return timeResolution{
				mode: models.TimeModeNone,
				issues: []models.TimeIssue{{
					Kind:       "ambiguous_meridiem",
					Raw:        t,
					StartHour:  start,
					EndHour:    end,
					Reason:     "missing_am_pm",
					Candidates: []string{"am", "pm"},
				}},
			}
		}
	}

	// Fuzzy hours: with a window they collapse to a one-hour range anchored
	// at the hour; without one they stay unresolved for the ambiguity check.
	for _, t := range times {
		if !isFuzzyHour(t) {
			continue
		}
		stripped := stripFuzzyMarkers(t)
		if clock, ok := convertTo24h(stripped); ok && len(windows) > 0 {
			return timeResolution{
				mode: models.TimeModeRange,
				refs: []string{clock, addHour(clock)},
			}
		}
		return timeResolution{mode: models.TimeModeExact, refs: []string{stripped}, ambiguous: true}
	}

	hasRangeMarker := len(entities.RangeMarkers) > 0

	switch {
	case len(times) >= 2 && hasRangeMarker:
		return timeResolution{mode: models.TimeModeRange, refs: normalizeAll(times[:2])}
	case len(times) == 1:
		return timeResolution{mode: models.TimeModeExact, refs: normalizeAll(times[:1])}
	case len(times) >= 2:
		// Multiple times, no explicit range: take the first but flag it.
		return timeResolution{mode: models.TimeModeExact, refs: normalizeAll(times[:1]), ambiguous: true}
	case len(windows) > 0:
		return timeResolution{mode: models.TimeModeWindow, refs: lowerAll(windows)}
	}

	// Hour-only fallback: "at 4" with no extracted time entity. Deadline
	// markers (by/before/after) are constraints, not start times.
	if m := atHourPattern.FindStringSubmatch(entities.Sentence); m != nil {
		if !constraintPattern.MatchString(entities.Sentence) {
			return timeResolution{mode: models.TimeModeExact, refs: []string{m[1] + ":00"}}
		}
	}

	return timeResolution{mode: models.TimeModeNone}
}

// normalizeAll cleans spacing quirks but deliberately keeps meridiem
// presence intact: the binder needs to know whether "4:30" ever said am or
// pm before it can apply window bias.
func normalizeAll(times []string) []string {
	out := make([]string, 0, len(times))
	for _, t := range times {
		out = append(out, normalizeTimeText(t))
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}

// addHour advances an "HH:MM" value by one hour, clamping at end of day.
func addHour(clock string) string {
	var hour, minute int
	if _, err := fmt.Sscanf(clock, "%d:%d", &hour, &minute); err != nil {
		return clock
	}
	if hour >= 23 {
		return "23:59"
	}
	return fmt.Sprintf("%02d:%02d", hour+1, minute)
}

// windowRange looks up the clock range for a named day-part window.
func windowRange(name string) (models.TimeRange, bool) {
	window, ok := config.TimeWindows[strings.ToLower(strings.TrimSpace(name))]
	return window, ok
}
