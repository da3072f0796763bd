package report

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"app/models"
	"app/store"
	"app/utils"
)

// MasterTableName is the long-lived ledger table that accumulates every
// transaction with an in-row date.
const MasterTableName = "Customers"

// CustomerSet is the result of one aggregation pass: a lookup by canonical
// key plus the first-seen key order, which downstream rankings use as the
// stable tie-break.
type CustomerSet struct {
	Order []string
	ByKey map[string]*models.CustomerAggregate
}

// Customers returns the aggregates in first-seen order.
func (s *CustomerSet) Customers() []*models.CustomerAggregate {
	out := make([]*models.CustomerAggregate, 0, len(s.Order))
	for _, key := range s.Order {
		out = append(out, s.ByKey[key])
	}
	return out
}

// CustomerTotals folds records into all-time per-customer aggregates. Every
// row counts as one visit, so two shifts on the same day are two visits; the
// distinct-dates set, not the visit count, captures unique days. First and
// last purchase dates are set after the pass by sorting the date set
// chronologically (the stored format is day-month-year text, so string order
// would be wrong).
func CustomerTotals(records []models.TransactionRecord) *CustomerSet {
	set := &CustomerSet{ByKey: make(map[string]*models.CustomerAggregate)}
	dates := make(map[string]map[time.Time]struct{})

	for _, r := range records {
		agg, ok := set.ByKey[r.Key]
		if !ok {
			agg = &models.CustomerAggregate{Key: r.Key, ShopName: r.ShopName}
			set.ByKey[r.Key] = agg
			set.Order = append(set.Order, r.Key)
			dates[r.Key] = make(map[time.Time]struct{})
		}
		if agg.Address == "" && r.Address != "" {
			agg.Address = r.Address
		}
		agg.VisitCount++
		agg.TotalSale += r.SaleAmount
		agg.TotalSampleQty += r.SampleQty
		agg.TotalSampleAmount += r.SampleAmount
		agg.TotalReturnQty += r.ReturnQty
		agg.TotalReturnAmount += r.ReturnAmount
		if !r.Date.IsZero() {
			dates[r.Key][r.Date] = struct{}{}
		}
	}

	for key, agg := range set.ByKey {
		ds := make([]time.Time, 0, len(dates[key]))
		for d := range dates[key] {
			ds = append(ds, d)
		}
		sort.Slice(ds, func(i, j int) bool { return ds[i].Before(ds[j]) })
		agg.Dates = make([]string, len(ds))
		for i, d := range ds {
			agg.Dates[i] = utils.FormatDate(d)
		}
		if len(ds) > 0 {
			agg.FirstPurchase = utils.FormatDate(ds[0])
			agg.LastPurchase = utils.FormatDate(ds[len(ds)-1])
		}
	}
	return set
}

// DayTotals folds one day's records with shift-merged semantics: rows for
// the same canonical key across the morning and evening tables sum into a
// single entry. This is a separate pass from CustomerTotals, not a reshaping
// of its output.
func DayTotals(records []models.TransactionRecord) *CustomerSet {
	set := &CustomerSet{ByKey: make(map[string]*models.CustomerAggregate)}
	for _, r := range records {
		agg, ok := set.ByKey[r.Key]
		if !ok {
			agg = &models.CustomerAggregate{Key: r.Key, ShopName: r.ShopName}
			if !r.Date.IsZero() {
				agg.FirstPurchase = utils.FormatDate(r.Date)
				agg.LastPurchase = agg.FirstPurchase
				agg.Dates = []string{agg.FirstPurchase}
			}
			set.ByKey[r.Key] = agg
			set.Order = append(set.Order, r.Key)
		}
		if agg.Address == "" && r.Address != "" {
			agg.Address = r.Address
		}
		agg.VisitCount++
		agg.TotalSale += r.SaleAmount
		agg.TotalSampleQty += r.SampleQty
		agg.TotalSampleAmount += r.SampleAmount
		agg.TotalReturnQty += r.ReturnQty
		agg.TotalReturnAmount += r.ReturnAmount
	}
	return set
}

// MonthlyTrend buckets sale amounts by calendar month for the trailing
// window ending at now. All buckets are pre-seeded with zeros before any
// record is folded, so empty months still appear; records outside the
// window are ignored.
func MonthlyTrend(records []models.TransactionRecord, now time.Time, months int) []models.TrendPoint {
	points := make([]models.TrendPoint, months)
	index := make(map[string]int, months)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	for i := 0; i < months; i++ {
		label := first.AddDate(0, i, 0).Format("01-2006")
		points[i] = models.TrendPoint{PeriodLabel: label}
		index[label] = i
	}
	for _, r := range records {
		if r.Date.IsZero() {
			continue
		}
		if i, ok := index[r.Date.Format("01-2006")]; ok {
			points[i].Total += r.SaleAmount
			points[i].Count++
		}
	}
	return points
}

// DailyTrend buckets sale amounts by calendar date for the trailing window
// of days ending at now.
func DailyTrend(records []models.TransactionRecord, now time.Time, days int) []models.TrendPoint {
	points := make([]models.TrendPoint, days)
	index := make(map[string]int, days)
	first := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		label := utils.FormatDate(first.AddDate(0, 0, i))
		points[i] = models.TrendPoint{PeriodLabel: label}
		index[label] = i
	}
	for _, r := range records {
		if r.Date.IsZero() {
			continue
		}
		if i, ok := index[utils.FormatDate(r.Date)]; ok {
			points[i].Total += r.SaleAmount
			points[i].Count++
		}
	}
	return points
}

// Engine scans the tabular store and produces projected records for the
// aggregation passes above. Analytics are best effort: a table that fails
// to read contributes nothing and is logged, never fatal.
type Engine struct {
	Store store.TableStore
}

// NewEngine wraps a TableStore.
func NewEngine(s store.TableStore) *Engine {
	return &Engine{Store: s}
}

// FetchAllRecords discovers every period table and projects all their rows.
// Tables are read concurrently (the fold is commutative, so fetch order does
// not matter) and merged in locator order afterwards, which keeps first-seen
// ordering deterministic. A failed table list yields an empty result.
//
// When no period table exists at all, the master ledger is read instead:
// the ledger mirrors every saved bill with an in-row date, so a store whose
// per-date tables were pruned still aggregates. The two sources are never
// combined, since the ledger duplicates the period rows.
func (e *Engine) FetchAllRecords(ctx context.Context) []models.TransactionRecord {
	names, err := e.Store.ListTables(ctx)
	if err != nil {
		log.Printf("Error listing tables: %v", err)
		return nil
	}
	if located := LocateTables(names); len(located) > 0 {
		return e.fetchTables(ctx, located)
	}
	return e.fetchMaster(ctx)
}

// fetchMaster projects the master ledger. Rows whose date cell does not
// parse keep the zero time and stay out of date-bucketed views.
func (e *Engine) fetchMaster(ctx context.Context) []models.TransactionRecord {
	rows, err := e.Store.ReadRows(ctx, MasterTableName)
	if err != nil {
		log.Printf("Error reading table %q, skipping: %v", MasterTableName, err)
		return nil
	}
	return ProjectRows(rows, time.Time{}, "", MasterLayout)
}

// FetchDayRecords projects the rows of every shift table for one date.
// A date with no tables yields an empty slice, not an error.
func (e *Engine) FetchDayRecords(ctx context.Context, date time.Time) []models.TransactionRecord {
	names, err := e.Store.ListTables(ctx)
	if err != nil {
		log.Printf("Error listing tables: %v", err)
		return nil
	}
	return e.fetchTables(ctx, TablesForDate(names, date))
}

func (e *Engine) fetchTables(ctx context.Context, tables []PeriodTable) []models.TransactionRecord {
	perTable := make([][]models.TransactionRecord, len(tables))
	var wg sync.WaitGroup
	for i, t := range tables {
		wg.Add(1)
		go func(i int, t PeriodTable) {
			defer wg.Done()
			rows, err := e.Store.ReadRows(ctx, t.Name)
			if err != nil {
				// One bad table must not abort the whole aggregation.
				log.Printf("Error reading table %q, skipping: %v", t.Name, err)
				return
			}
			perTable[i] = ProjectRows(rows, t.Date, t.Shift, DailyLayout)
		}(i, t)
	}
	wg.Wait()

	var out []models.TransactionRecord
	for _, recs := range perTable {
		out = append(out, recs...)
	}
	return out
}
