package models

// CustomerAggregate is the derived, per-customer rollup keyed by canonical
// shop key. It is rebuilt in full on every query from the raw period tables
// and never persisted.
type CustomerAggregate struct {
	Key               string   `json:"key"`
	ShopName          string   `json:"shopName"` // first raw spelling seen
	Address           string   `json:"address"`  // first non-empty value seen
	VisitCount        int      `json:"visitCount"`
	TotalSale         float64  `json:"totalSale"`
	TotalSampleQty    float64  `json:"totalSampleQty"`
	TotalSampleAmount float64  `json:"totalSampleAmount"`
	TotalReturnQty    float64  `json:"totalReturnQty"`
	TotalReturnAmount float64  `json:"totalReturnAmount"`
	Dates             []string `json:"dates"` // distinct purchase dates, chronological
	FirstPurchase     string   `json:"firstPurchase"`
	LastPurchase      string   `json:"lastPurchase"`
}

// TrendPoint is one time bucket of a daily or monthly trend series. Buckets
// for empty periods are emitted with zero values so the series always covers
// the full trailing window.
type TrendPoint struct {
	PeriodLabel string  `json:"periodLabel"`
	Total       float64 `json:"total"`
	Count       int     `json:"count"`
}

// VisitSegments partitions customers by all-time visit count. A customer is
// "new" with exactly one visit and "repeat" otherwise; the repeat population
// is split further with an open-ended 4+ bucket.
type VisitSegments struct {
	New          []*CustomerAggregate `json:"new"`
	ExactlyTwo   []*CustomerAggregate `json:"exactlyTwo"`
	ExactlyThree []*CustomerAggregate `json:"exactlyThree"`
	FourOrMore   []*CustomerAggregate `json:"fourOrMore"`
}

// DeliveryShop is one shop inside a delivery person's group for a single
// day's scan.
type DeliveryShop struct {
	ShopName   string  `json:"shopName"`
	SaleQty    float64 `json:"saleQty"`
	SaleAmount float64 `json:"saleAmount"`
}

// DeliveryGroup holds the shops one delivery person served in a day.
type DeliveryGroup struct {
	Person    string         `json:"person"`
	Shops     []DeliveryShop `json:"shops"`
	ShopCount int            `json:"shopCount"`
	TotalSale float64        `json:"totalSale"`
}

// ReconciliationTotals are running per-delivery-person sums across the full
// history of period tables.
type ReconciliationTotals struct {
	Person        string  `json:"person"` // first-seen casing
	Orders        int     `json:"orders"`
	TotalSale     float64 `json:"totalSale"`
	CashCollected float64 `json:"cashCollected"`
}

// DashboardSummary is the response of GET /dashboard/summary.
type DashboardSummary struct {
	TotalCustomers  int                  `json:"totalCustomers"`
	NewCustomers    int                  `json:"newCustomers"`
	RepeatCustomers int                  `json:"repeatCustomers"`
	TotalSales      float64              `json:"totalSales"`
	TopCustomers    []*CustomerAggregate `json:"topCustomers"`
	MonthlyTrend    []TrendPoint         `json:"monthlyTrend"`
	DailyTrend      []TrendPoint         `json:"dailyTrend"`
}
