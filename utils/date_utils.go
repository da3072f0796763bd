package utils

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the day-month-year format used everywhere in the ledger:
// table names, in-row date cells and trend labels.
const DateLayout = "02-01-2006"

// ExpandYear expands a two-digit year with a fixed pivot: values up to 50
// map to the 2000s, values above 50 to the 1900s. Four-digit years pass
// through unchanged. The single pivot is used by both the table locator and
// the extraction date normalizer so the two paths cannot disagree.
func ExpandYear(y int) int {
	if y >= 100 {
		return y
	}
	if y <= 50 {
		return 2000 + y
	}
	return 1900 + y
}

// ParseDayMonthYear parses a "DD-MM-YYYY" (or "DD-MM-YY", or slash-separated)
// date string. Returns the zero time and false when the text does not parse
// or names an impossible calendar date such as 32-01-2025.
func ParseDayMonthYear(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "/", "-")
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, false
	}
	year = ExpandYear(year)
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. 31-04 becomes 01-05); reject those.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a date back into the ledger's day-month-year text form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
