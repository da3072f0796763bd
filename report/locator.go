// Package report re-derives every analytical view from the raw period
// tables: it locates the per-date tables, projects their rows into typed
// records, folds them into per-customer and per-bucket aggregates and
// classifies the results. Nothing here is persisted; each query rebuilds its
// maps from scratch.
package report

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"app/models"
	"app/utils"
)

// PeriodTable is one discovered per-date transaction table.
type PeriodTable struct {
	Name  string
	Date  time.Time
	Shift string // "" when the table covers the whole day
}

// Period table names look like "02-06-2025" or "02-06-25 Morning". Anything
// else in the spreadsheet (master ledger, follow-ups, scratch tabs) simply
// does not match.
var periodTableName = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{2}|\d{4})(?:\s+([A-Za-z]+))?$`)

// LocateTables filters a table-name list down to valid period tables.
// Names with impossible calendar dates (day 32, month 13) are treated as
// non-matching, not as errors. The result is sorted by date, then shift
// (Morning before Evening), then name, so callers merging rows from several
// tables see a deterministic first-seen order.
func LocateTables(names []string) []PeriodTable {
	var out []PeriodTable
	for _, name := range names {
		m := periodTableName.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		shift := ""
		if m[4] != "" {
			shift = normalizeShift(m[4])
			if shift == "" {
				continue
			}
		}
		date, ok := utils.ParseDayMonthYear(m[1] + "-" + m[2] + "-" + m[3])
		if !ok {
			continue
		}
		out = append(out, PeriodTable{Name: name, Date: date, Shift: shift})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if out[i].Shift != out[j].Shift {
			return shiftOrder(out[i].Shift) < shiftOrder(out[j].Shift)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TablesForDate returns the period tables covering one calendar date, in
// shift order.
func TablesForDate(names []string, date time.Time) []PeriodTable {
	var out []PeriodTable
	for _, t := range LocateTables(names) {
		if sameDay(t.Date, date) {
			out = append(out, t)
		}
	}
	return out
}

// TableNameFor builds the canonical table name for a date and shift.
func TableNameFor(date time.Time, shift string) string {
	name := utils.FormatDate(date)
	if shift != "" {
		name += " " + shift
	}
	return name
}

func normalizeShift(s string) string {
	switch {
	case strings.EqualFold(s, models.ShiftMorning):
		return models.ShiftMorning
	case strings.EqualFold(s, models.ShiftEvening):
		return models.ShiftEvening
	}
	return ""
}

func shiftOrder(s string) int {
	switch s {
	case "":
		return 0
	case models.ShiftMorning:
		return 1
	default:
		return 2
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
