package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"app/models"
	"app/store"
)

func rec(name string, date time.Time, shift string, amount float64) models.TransactionRecord {
	r, _ := ProjectRow([]string{name, "", "0", "0", "0", "0", ""}, date, shift, DailyLayout)
	r.SaleAmount = amount
	return r
}

func day(d, m, y int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestCustomerTotalsSumPreserved(t *testing.T) {
	records := []models.TransactionRecord{
		rec("Om Sharma", day(1, 6, 2025), models.ShiftMorning, 100),
		rec("Om  Sharma   Shop", day(1, 6, 2025), models.ShiftEvening, 50),
		rec("Gupta Store", day(2, 6, 2025), "", 75),
		rec("Verma Dairy", day(3, 6, 2025), "", 25),
	}
	set := CustomerTotals(records)

	var total float64
	for _, agg := range set.ByKey {
		total += agg.TotalSale
	}
	assert.Equal(t, 250.0, total)
	// Spelling variants joined under one key.
	assert.Len(t, set.Order, 3)
	assert.Equal(t, 150.0, set.ByKey["omsharma"].TotalSale)
}

func TestCustomerTotalsVisitPerRow(t *testing.T) {
	// Two shifts on the same day are two visits in the all-time view.
	records := []models.TransactionRecord{
		rec("Om Sharma", day(1, 6, 2025), models.ShiftMorning, 100),
		rec("Om Sharma", day(1, 6, 2025), models.ShiftEvening, 50),
	}
	agg := CustomerTotals(records).ByKey["omsharma"]
	assert.Equal(t, 2, agg.VisitCount)
	// But only one distinct purchase date.
	assert.Equal(t, []string{"01-06-2025"}, agg.Dates)
	assert.Equal(t, "01-06-2025", agg.FirstPurchase)
	assert.Equal(t, "01-06-2025", agg.LastPurchase)
}

func TestDayTotalsMergesShifts(t *testing.T) {
	records := []models.TransactionRecord{
		rec("Om Sharma", day(1, 6, 2025), models.ShiftMorning, 100),
		rec("Om Sharma", day(1, 6, 2025), models.ShiftEvening, 50),
	}
	set := DayTotals(records)
	assert.Len(t, set.Order, 1)
	assert.Equal(t, 150.0, set.ByKey["omsharma"].TotalSale)
}

func TestCustomerTotalsDatesSortedChronologically(t *testing.T) {
	// Day-month-year text sorts wrong as strings; the fold must sort by
	// calendar value.
	records := []models.TransactionRecord{
		rec("Om Sharma", day(2, 6, 2025), "", 10),
		rec("Om Sharma", day(10, 1, 2025), "", 10),
		rec("Om Sharma", day(30, 12, 2024), "", 10),
	}
	agg := CustomerTotals(records).ByKey["omsharma"]
	assert.Equal(t, []string{"30-12-2024", "10-01-2025", "02-06-2025"}, agg.Dates)
	assert.Equal(t, "30-12-2024", agg.FirstPurchase)
	assert.Equal(t, "02-06-2025", agg.LastPurchase)
}

func TestCustomerTotalsSingleRecord(t *testing.T) {
	agg := CustomerTotals([]models.TransactionRecord{
		rec("Gupta Store", day(2, 6, 2025), "", 75),
	}).ByKey["gupta"]
	assert.Equal(t, 1, agg.VisitCount)
	assert.Equal(t, agg.FirstPurchase, agg.LastPurchase)
}

func TestCustomerTotalsFirstValuesWin(t *testing.T) {
	a := rec("OM SHARMA", day(1, 6, 2025), "", 10)
	b := rec("Om Sharma Shop", day(2, 6, 2025), "", 10)
	b.Address = "Main Road"
	c := rec("om sharma", day(3, 6, 2025), "", 10)
	c.Address = "Other Road"

	agg := CustomerTotals([]models.TransactionRecord{a, b, c}).ByKey["omsharma"]
	// Representative spelling is the first raw name seen.
	assert.Equal(t, "OM SHARMA", agg.ShopName)
	// First non-empty address wins; later values do not overwrite.
	assert.Equal(t, "Main Road", agg.Address)
}

func TestMonthlyTrendEmptyWindow(t *testing.T) {
	now := day(15, 6, 2025)
	points := MonthlyTrend(nil, now, 6)
	assert.Len(t, points, 6)
	assert.Equal(t, "01-2025", points[0].PeriodLabel)
	assert.Equal(t, "06-2025", points[5].PeriodLabel)
	for _, p := range points {
		assert.Zero(t, p.Total)
		assert.Zero(t, p.Count)
	}
}

func TestDailyTrendEmptyWindow(t *testing.T) {
	points := DailyTrend(nil, day(30, 6, 2025), 30)
	assert.Len(t, points, 30)
	assert.Equal(t, "01-06-2025", points[0].PeriodLabel)
	assert.Equal(t, "30-06-2025", points[29].PeriodLabel)
	for _, p := range points {
		assert.Zero(t, p.Total)
		assert.Zero(t, p.Count)
	}
}

func TestTrendsIgnoreRecordsOutsideWindow(t *testing.T) {
	now := day(15, 6, 2025)
	records := []models.TransactionRecord{
		rec("A", day(1, 6, 2025), "", 100),
		rec("B", day(1, 6, 2020), "", 999), // far outside the window
	}
	points := MonthlyTrend(records, now, 6)
	var total float64
	for _, p := range points {
		total += p.Total
	}
	assert.Equal(t, 100.0, total)

	daily := DailyTrend(records, now, 30)
	total = 0
	for _, p := range daily {
		total += p.Total
	}
	assert.Equal(t, 100.0, total)
}

func seedStore() *store.Memory {
	m := store.NewMemory()
	m.Seed("01-06-2025 Morning", [][]string{
		{"Om Sharma", "Main Road", "10", "5", "0", "0", "100", "0", "0", "Ravi", "Cash"},
	})
	m.Seed("01-06-2025 Evening", [][]string{
		{"OM SHARMA SHOP", "", "10", "3", "0", "0", "50", "0", "0", "Ravi", ""},
	})
	m.Seed("02-06-2025", [][]string{
		{"Gupta Store", "", "10", "2", "0", "0", "20", "0", "0", "", "paid"},
		{"", "row without shop name", "10", "2", "0", "0", "999", "0", "0", "", ""},
	})
	m.Seed("Customers", [][]string{{"not", "a", "period", "table"}})
	return m
}

func TestEngineFetchAllRecords(t *testing.T) {
	engine := NewEngine(seedStore())
	records := engine.FetchAllRecords(context.Background())
	// 3 valid rows; the nameless row is dropped and "Customers" is not a
	// period table.
	assert.Len(t, records, 3)

	set := CustomerTotals(records)
	assert.Equal(t, 150.0, set.ByKey["omsharma"].TotalSale)
	assert.Equal(t, 2, set.ByKey["omsharma"].VisitCount)
}

func TestEngineFetchDayRecords(t *testing.T) {
	engine := NewEngine(seedStore())
	records := engine.FetchDayRecords(context.Background(), day(1, 6, 2025))
	assert.Len(t, records, 2)
	merged := DayTotals(records)
	assert.Equal(t, 150.0, merged.ByKey["omsharma"].TotalSale)

	// A date with no tables yields no records and no error.
	assert.Empty(t, engine.FetchDayRecords(context.Background(), day(9, 9, 2025)))
}

func TestEngineFallsBackToMasterLedger(t *testing.T) {
	// No period tables at all: the all-records scan reads the master ledger
	// instead, using its in-row dates.
	m := store.NewMemory()
	m.Seed("Customers", [][]string{
		{"Om Sharma", "Main Road", "01-06-2025", "10", "5", "0", "0", "100", "0", "0", "Ravi", "Cash"},
		{"Gupta Store", "", "02-06-2025", "10", "2", "0", "0", "20", "0", "0", "", "paid"},
		{"Verma Dairy", "", "not a date", "10", "1", "0", "0", "10", "0", "0", "", ""},
	})
	engine := NewEngine(m)
	records := engine.FetchAllRecords(context.Background())
	assert.Len(t, records, 3)

	set := CustomerTotals(records)
	assert.Equal(t, 100.0, set.ByKey["omsharma"].TotalSale)
	assert.Equal(t, "01-06-2025", set.ByKey["omsharma"].FirstPurchase)
	// The unparsable date row still sums but carries no purchase date.
	assert.Equal(t, 10.0, set.ByKey["verma"].TotalSale)
	assert.Empty(t, set.ByKey["verma"].Dates)
}

func TestEngineFallbackSkippedWhenPeriodTablesExist(t *testing.T) {
	// Period rows and ledger rows duplicate each other; only the period
	// tables are read once any exist.
	engine := NewEngine(seedStore())
	set := CustomerTotals(engine.FetchAllRecords(context.Background()))
	assert.Equal(t, 150.0, set.ByKey["omsharma"].TotalSale)
}

// flakyStore fails reads for one table; the engine must skip it and keep
// the rest.
type flakyStore struct {
	*store.Memory
	failTable string
}

func (f *flakyStore) ReadRows(ctx context.Context, table string) ([][]string, error) {
	if table == f.failTable {
		return nil, errors.New("upstream fetch failure")
	}
	return f.Memory.ReadRows(ctx, table)
}

func TestEngineSkipsFailingTable(t *testing.T) {
	engine := NewEngine(&flakyStore{Memory: seedStore(), failTable: "01-06-2025 Evening"})
	records := engine.FetchAllRecords(context.Background())
	assert.Len(t, records, 2)
	set := CustomerTotals(records)
	assert.Equal(t, 100.0, set.ByKey["omsharma"].TotalSale)
}

// listFailStore cannot even produce the table list.
type listFailStore struct{ *store.Memory }

func (l *listFailStore) ListTables(ctx context.Context) ([]string, error) {
	return nil, errors.New("store unavailable")
}

func TestEngineListFailureDegradesToEmpty(t *testing.T) {
	engine := NewEngine(&listFailStore{Memory: seedStore()})
	assert.Empty(t, engine.FetchAllRecords(context.Background()))
}
