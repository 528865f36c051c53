package semantics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"bookwise/config"
)

var (
	meridiemPattern  = regexp.MustCompile(`(?i)\b(am|pm)\b|\d(am|pm)\b`)
	clockPattern     = regexp.MustCompile(`^(\d{1,2})(?:[:.](\d{2}))?\s*(am|pm)?$`)
	bareHourPattern  = regexp.MustCompile(`^\d{1,2}$`)
	hourRangePattern = regexp.MustCompile(`^(\d{1,2})\s*(?:to|-|and)\s*(\d{1,2})$`)
)

// normalizeTimeText collapses spacing quirks from extraction, e.g.
// "5 . 30 pm" -> "5:30 pm" and "4 pm" -> "4:00 pm".
func normalizeTimeText(raw string) string {
	text := strings.ToLower(strings.TrimSpace(raw))
	text = strings.ReplaceAll(text, " . ", ":")
	text = strings.ReplaceAll(text, ".", ":")
	// "4 pm" -> "4:00 pm"
	if m := regexp.MustCompile(`^(\d{1,2})\s+(am|pm)$`).FindStringSubmatch(text); m != nil {
		text = m[1] + ":00 " + m[2]
	}
	return text
}

// hasMeridiem reports whether the time text carries an explicit am/pm marker
// or is already unambiguous 24-hour notation (hour >= 13).
func hasMeridiem(raw string) bool {
	text := strings.ToLower(raw)
	if meridiemPattern.MatchString(text) {
		return true
	}
	if m := clockPattern.FindStringSubmatch(normalizeTimeText(raw)); m != nil {
		if hour, err := strconv.Atoi(m[1]); err == nil && hour >= 13 {
			return true
		}
	}
	return false
}

// isBareHour reports whether the text is nothing but a one- or two-digit
// hour: no separator, no meridiem.
func isBareHour(raw string) bool {
	return bareHourPattern.MatchString(strings.TrimSpace(raw))
}

// isFuzzyHour reports approximate phrasing: "5ish", "around 5", "about 3pm".
func isFuzzyHour(raw string) bool {
	text := strings.ToLower(raw)
	if strings.HasSuffix(strings.TrimSpace(text), "ish") {
		return true
	}
	for _, marker := range config.FuzzyTimeMarkers {
		if marker == "ish" {
			continue
		}
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// stripFuzzyMarkers removes approximation words so the underlying time can
// still be parsed.
func stripFuzzyMarkers(raw string) string {
	text := strings.ToLower(strings.TrimSpace(raw))
	text = strings.TrimSuffix(text, "ish")
	for _, marker := range config.FuzzyTimeMarkers {
		text = strings.ReplaceAll(text, marker+" ", "")
	}
	return strings.TrimSpace(text)
}

// convertTo24h converts a time phrase to "HH:MM". Named times resolve first.
// Returns false when the text is not a parseable clock time.
func convertTo24h(raw string) (string, bool) {
	text := normalizeTimeText(raw)
	if named, ok := config.NamedTimes[text]; ok {
		return named, true
	}

	m := clockPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	minute := 0
	if m[2] != "" {
		if minute, err = strconv.Atoi(m[2]); err != nil {
			return "", false
		}
	}
	switch m[3] {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

// parseHourRange parses composite single-token ranges like "2 to 5" or
// "7-9" into their two hour components.
func parseHourRange(raw string) (start, end int, ok bool) {
	m := hourRangePattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(raw)))
	if m == nil {
		return 0, 0, false
	}
	start, err1 := strconv.Atoi(m[1])
	end, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return start, end, true
}

func containsAny(text string, needles []string) bool {
	lower := strings.ToLower(text)
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}
