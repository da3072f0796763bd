package report

import (
	"sort"
	"strings"
	"time"

	"app/models"
	"app/utils"
)

// SegmentByVisitCount partitions customers by all-time visit count: exactly
// one visit is "new", the repeat population splits into exactly-two,
// exactly-three and an open-ended four-plus bucket.
func SegmentByVisitCount(set *CustomerSet) models.VisitSegments {
	seg := models.VisitSegments{
		New:          []*models.CustomerAggregate{},
		ExactlyTwo:   []*models.CustomerAggregate{},
		ExactlyThree: []*models.CustomerAggregate{},
		FourOrMore:   []*models.CustomerAggregate{},
	}
	for _, agg := range set.Customers() {
		switch {
		case agg.VisitCount == 1:
			seg.New = append(seg.New, agg)
		case agg.VisitCount == 2:
			seg.ExactlyTwo = append(seg.ExactlyTwo, agg)
		case agg.VisitCount == 3:
			seg.ExactlyThree = append(seg.ExactlyThree, agg)
		case agg.VisitCount >= 4:
			seg.FourOrMore = append(seg.FourOrMore, agg)
		}
	}
	return seg
}

// TopByTotal ranks customers by total sale amount, descending. The sort is
// stable over first-seen order, so ties keep their original position.
func TopByTotal(set *CustomerSet, n int) []*models.CustomerAggregate {
	ranked := set.Customers()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSale > ranked[j].TotalSale
	})
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// NewOnDate returns the customers whose global first purchase happened on
// the given date. The returned aggregates carry that day's shift-merged
// values, not the all-time totals, so the caller supplies both the all-time
// set and that day's records.
func NewOnDate(allTime *CustomerSet, dayRecords []models.TransactionRecord, date time.Time) []*models.CustomerAggregate {
	day := DayTotals(dayRecords)
	label := utils.FormatDate(date)
	out := []*models.CustomerAggregate{}
	for _, agg := range day.Customers() {
		global, ok := allTime.ByKey[agg.Key]
		if ok && global.FirstPurchase == label {
			out = append(out, agg)
		}
	}
	return out
}

// GroupByDeliveryPerson groups one period scan's records by delivery person.
// Groups sort alphabetically with the Unassigned sentinel forced last;
// shops inside a group merge by canonical key and sort by shop name.
func GroupByDeliveryPerson(records []models.TransactionRecord) []models.DeliveryGroup {
	type shopAcc struct {
		name   string
		qty    float64
		amount float64
	}
	byPerson := make(map[string]map[string]*shopAcc)
	for _, r := range records {
		shops, ok := byPerson[r.DeliveryPerson]
		if !ok {
			shops = make(map[string]*shopAcc)
			byPerson[r.DeliveryPerson] = shops
		}
		acc, ok := shops[r.Key]
		if !ok {
			acc = &shopAcc{name: r.ShopName}
			shops[r.Key] = acc
		}
		acc.qty += r.SaleQty
		acc.amount += r.SaleAmount
	}

	groups := make([]models.DeliveryGroup, 0, len(byPerson))
	for person, shops := range byPerson {
		g := models.DeliveryGroup{Person: person}
		for _, acc := range shops {
			g.Shops = append(g.Shops, models.DeliveryShop{
				ShopName:   acc.name,
				SaleQty:    acc.qty,
				SaleAmount: acc.amount,
			})
			g.TotalSale += acc.amount
		}
		sort.Slice(g.Shops, func(i, j int) bool { return g.Shops[i].ShopName < g.Shops[j].ShopName })
		g.ShopCount = len(g.Shops)
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		iu := groups[i].Person == models.UnassignedDeliveryPerson
		ju := groups[j].Person == models.UnassignedDeliveryPerson
		if iu != ju {
			return ju
		}
		return groups[i].Person < groups[j].Person
	})
	return groups
}

// ReconcileDeliveryTotals accumulates per-delivery-person running totals
// across the full history of records: order count, total sale amount and
// the cash-collected subset. Grouping is case-insensitive but the
// first-seen casing is kept for display. Sorted by order count, descending.
func ReconcileDeliveryTotals(records []models.TransactionRecord) []models.ReconciliationTotals {
	byPerson := make(map[string]*models.ReconciliationTotals)
	var order []string
	for _, r := range records {
		key := strings.ToLower(r.DeliveryPerson)
		tot, ok := byPerson[key]
		if !ok {
			tot = &models.ReconciliationTotals{Person: r.DeliveryPerson}
			byPerson[key] = tot
			order = append(order, key)
		}
		tot.Orders++
		tot.TotalSale += r.SaleAmount
		if r.CashCollected() {
			tot.CashCollected += r.SaleAmount
		}
	}

	out := make([]models.ReconciliationTotals, 0, len(order))
	for _, key := range order {
		out = append(out, *byPerson[key])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Orders > out[j].Orders })
	return out
}
