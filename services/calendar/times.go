package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"bookwise/config"
	"bookwise/models"
)

var (
	clockPattern    = regexp.MustCompile(`^(\d{1,2})(?:[:.](\d{2}))?\s*(am|pm)?$`)
	bareHourPattern = regexp.MustCompile(`^\d{1,2}$`)
)

// bindClock resolves one time phrase to "HH:MM", using a day-part window to
// settle the meridiem when the phrase itself omits it.
//
// Rules, in order:
//   - explicit am/pm, named time, or 24h hour >= 13: literal.
//   - no meridiem with a window: the literal hour if it falls inside the
//     window, the +12h reading if that one falls inside instead, else the
//     window start.
//   - bare hour with no window: unresolvable, the caller must ask.
//   - otherwise: literal reading.
func bindClock(ref string, windowName string) (string, bool) {
	text := strings.ToLower(strings.TrimSpace(ref))
	if named, ok := config.NamedTimes[text]; ok {
		return named, true
	}

	m := clockPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if hour > 23 || minute > 59 {
		return "", false
	}

	switch m[3] {
	case "pm":
		if hour != 12 {
			hour += 12
		}
		return clockString(hour, minute), true
	case "am":
		if hour == 12 {
			hour = 0
		}
		return clockString(hour, minute), true
	}

	if hour >= 13 {
		// Unambiguous 24-hour notation.
		return clockString(hour, minute), true
	}

	if window, ok := config.TimeWindows[windowName]; ok {
		lo, hi := windowHours(window)
		switch {
		case hour >= lo && hour < hi:
			return clockString(hour, minute), true
		case hour+12 >= lo && hour+12 < hi:
			return clockString(hour+12, minute), true
		default:
			return window.StartTime, true
		}
	}

	if bareHourPattern.MatchString(text) {
		// "at 5" with no window and no am/pm: no defensible reading.
		return "", false
	}
	return clockString(hour, minute), true
}

func clockString(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func windowHours(w models.TimeRange) (lo, hi int) {
	lo, _ = strconv.Atoi(strings.SplitN(w.StartTime, ":", 2)[0])
	hi, _ = strconv.Atoi(strings.SplitN(w.EndTime, ":", 2)[0])
	return lo, hi
}

// firstWindow returns the first known window name from the booking, if any.
func firstWindow(booking *models.ResolvedBooking) string {
	for _, name := range booking.WindowRefs {
		if _, ok := config.TimeWindows[name]; ok {
			return name
		}
	}
	return ""
}
