package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// CoerceFloat parses a free-text cell value into a float64. Everything that
// is not a digit, sign or decimal point is stripped first (currency symbols,
// commas, stray OCR characters). Unparseable or empty input coerces to 0.
func CoerceFloat(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// CoerceNumber coerces an untyped JSON value (string, float64, int or nil)
// into a float64 using the same rules as CoerceFloat.
func CoerceNumber(v interface{}) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		return CoerceFloat(n)
	default:
		return CoerceFloat(fmt.Sprint(v))
	}
}

// FormatFloat renders a numeric cell value without a trailing ".0" for
// whole numbers, matching how operators type them.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CellAt returns the trimmed cell at index i, or "" when the row is too
// short or the index is negative (column not present in this layout).
func CellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
