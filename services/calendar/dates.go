package calendar

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"bookwise/config"
	"bookwise/models"
)

const isoDate = "2006-01-02"

var (
	numericDatePattern = regexp.MustCompile(`^(\d{1,2})[/.](\d{1,2})(?:[/.](\d{2,4}))?$`)
	dayMonthPattern    = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?([a-z]+)(?:\s+(\d{4}))?$`)
	monthDayPattern    = regexp.MustCompile(`^([a-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?$`)
)

// bindDateRef resolves one date phrase to a calendar day relative to now.
func bindDateRef(ref string, now time.Time) (time.Time, bool) {
	text := config.NormalizeDateText(ref)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if offset, ok := config.RelativeDayOffsets[text]; ok {
		return today.AddDate(0, 0, offset), true
	}

	// "this friday" lands within the current week, "next friday" one week
	// beyond it.
	next := strings.HasPrefix(text, "next ")
	trimmed := strings.TrimPrefix(strings.TrimPrefix(text, "next "), "this ")
	if target, ok := config.Weekdays[trimmed]; ok {
		ahead := (target - int(today.Weekday()) + 7) % 7
		if next {
			ahead += 7
		}
		return today.AddDate(0, 0, ahead), true
	}

	if d, ok := parseAbsoluteDate(text, now); ok {
		return d, true
	}
	return time.Time{}, false
}

// parseAbsoluteDate handles "29 oct", "oct 29 2026" and "29/10/26" forms.
// With no year given, the date lands this year unless it has already passed,
// in which case it rolls to next year.
func parseAbsoluteDate(text string, now time.Time) (time.Time, bool) {
	if m := dayMonthPattern.FindStringSubmatch(text); m != nil {
		if month, ok := config.Months[m[2]]; ok {
			return assembleDate(atoi(m[1]), month, atoi(m[3]), now)
		}
	}
	if m := monthDayPattern.FindStringSubmatch(text); m != nil {
		if month, ok := config.Months[m[1]]; ok {
			return assembleDate(atoi(m[2]), month, atoi(m[3]), now)
		}
	}
	if m := numericDatePattern.FindStringSubmatch(text); m != nil {
		// Day-first reading; locale-ambiguous cases were already flagged
		// upstream.
		return assembleDate(atoi(m[1]), atoi(m[2]), atoi(m[3]), now)
	}
	return time.Time{}, false
}

func assembleDate(day, month, year int, now time.Time) (time.Time, bool) {
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return time.Time{}, false
	}
	inferred := year == 0
	if inferred {
		year = now.Year()
	} else if year < 100 {
		year += 2000
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	if d.Day() != day {
		// Day overflowed the month, e.g. "31 feb".
		return time.Time{}, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if inferred && d.Before(today) {
		d = d.AddDate(1, 0, 0)
	}
	return d, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// bindPeriodRef binds period phrases ("weekend", "early next week",
// "end of the month") to a date range.
func bindPeriodRef(ref string, now time.Time) (*models.DateRange, bool) {
	text := strings.ToLower(strings.TrimSpace(ref))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if strings.Contains(text, "weekend") {
		// Upcoming Saturday through Sunday; "next weekend" skips one.
		ahead := (6 - int(today.Weekday()) + 7) % 7
		if strings.Contains(text, "next") {
			ahead += 7
		}
		sat := today.AddDate(0, 0, ahead)
		return &models.DateRange{
			StartDate: sat.Format(isoDate),
			EndDate:   sat.AddDate(0, 0, 1).Format(isoDate),
		}, true
	}

	if strings.Contains(text, "week") {
		start := mondayOf(today)
		if strings.Contains(text, "next") {
			start = start.AddDate(0, 0, 7)
		}
		lo, hi := 0, 6
		switch {
		case strings.Contains(text, "early"):
			hi = 2
		case strings.Contains(text, "mid"):
			lo, hi = 2, 4
		case strings.Contains(text, "end"):
			lo = 4
		}
		return &models.DateRange{
			StartDate: start.AddDate(0, 0, lo).Format(isoDate),
			EndDate:   start.AddDate(0, 0, hi).Format(isoDate),
		}, true
	}

	if strings.Contains(text, "month") {
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		if strings.Contains(text, "next") {
			first = first.AddDate(0, 1, 0)
		}
		last := first.AddDate(0, 1, -1)
		start, end := first, last
		switch {
		case strings.Contains(text, "early"):
			end = first.AddDate(0, 0, 9)
		case strings.Contains(text, "mid"):
			start = first.AddDate(0, 0, 10)
			end = first.AddDate(0, 0, 19)
		case strings.Contains(text, "end"):
			start = first.AddDate(0, 0, 20)
		}
		return &models.DateRange{
			StartDate: start.Format(isoDate),
			EndDate:   end.Format(isoDate),
		}, true
	}

	return nil, false
}

func mondayOf(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
