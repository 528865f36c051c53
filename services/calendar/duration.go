package calendar

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	combinedDurationPattern = regexp.MustCompile(`(\d+)\s*(?:hours?|hrs?|h)\s+and\s+(\d+)\s*(?:minutes?|mins?|m)`)
	hourDurationPattern     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:hours?|hrs?|h)\b`)
	minuteDurationPattern   = regexp.MustCompile(`(\d+)\s*(?:minutes?|mins?|m)\b`)
)

// parseDurationMinutes reads a duration phrase into minutes. Covers numeric
// forms ("2 hours", "45 min", "1 hour and 30 minutes") and the two spoken
// forms that actually show up ("one hour", "half hour").
func parseDurationMinutes(raw string) (int, bool) {
	text := strings.ToLower(strings.TrimSpace(raw))

	switch {
	case strings.Contains(text, "half an hour"), strings.Contains(text, "half hour"):
		return 30, true
	case strings.Contains(text, "an hour"), strings.Contains(text, "one hour"):
		return 60, true
	}

	if m := combinedDurationPattern.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return hours*60 + minutes, true
	}
	if m := hourDurationPattern.FindStringSubmatch(text); m != nil {
		hours, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return int(hours * 60), true
	}
	if m := minuteDurationPattern.FindStringSubmatch(text); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		return minutes, true
	}
	return 0, false
}
