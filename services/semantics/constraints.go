package semantics

import (
	"regexp"
	"strings"

	"bookwise/models"
)

var constraintPattern = regexp.MustCompile(`(?i)\b(by|before|after)\s+(\d{1,2}(?:[:.]\d{2})?\s*(?:am|pm)?|noon|midday|midnight)\b`)

// detectTimeConstraint finds deadline-style phrases ("by 4pm", "before noon",
// "after 10am") in the turn. Constraint times are boundaries, not start
// times, so callers must exclude them from regular time resolution.
func detectTimeConstraint(entities *models.Entities) *models.TimeConstraint {
	if entities == nil || entities.Sentence == "" {
		return nil
	}
	m := constraintPattern.FindStringSubmatch(entities.Sentence)
	if m == nil {
		return nil
	}
	kind := strings.ToLower(m[1])
	clock, ok := convertTo24h(m[2])
	if !ok {
		return nil
	}

	label := strings.ToLower(m[0])
	switch kind {
	case "by", "before":
		return &models.TimeConstraint{Mode: "window", End: clock, Label: label}
	case "after":
		return &models.TimeConstraint{Mode: "window", Start: clock, Label: label}
	}
	return nil
}

// filterConstraintTimes drops time entities consumed by the constraint so
// "call me before 5pm" does not also resolve 5pm as a start time.
func filterConstraintTimes(times []string, constraint *models.TimeConstraint) []string {
	if constraint == nil {
		return times
	}
	boundary := constraint.End
	if boundary == "" {
		boundary = constraint.Start
	}
	var out []string
	for _, t := range times {
		if clock, ok := convertTo24h(t); ok && clock == boundary {
			continue
		}
		out = append(out, t)
	}
	return out
}

// inferTimeConstraint derives a constraint from an already-resolved time when
// the turn carried no explicit deadline phrase. Exact times become exact
// constraints, ranges become windows, and window names stay fuzzy labels.
func inferTimeConstraint(timeMode string, timeRefs []string, windows []string) *models.TimeConstraint {
	switch timeMode {
	case models.TimeModeExact:
		if len(timeRefs) > 0 {
			if clock, ok := convertTo24h(timeRefs[0]); ok {
				return &models.TimeConstraint{Mode: "exact", Start: clock, End: clock}
			}
		}
	case models.TimeModeRange:
		if len(timeRefs) >= 2 {
			start, okS := convertTo24h(timeRefs[0])
			end, okE := convertTo24h(timeRefs[1])
			if okS && okE {
				return &models.TimeConstraint{Mode: "window", Start: start, End: end}
			}
		}
	case models.TimeModeWindow:
		if len(windows) > 0 {
			return &models.TimeConstraint{Mode: "fuzzy", Label: strings.ToLower(windows[0])}
		}
	}
	return nil
}
