package report

import (
	"time"

	"app/canon"
	"app/models"
	"app/utils"
)

// Layout maps record fields to column positions for one table family.
// Positions are configuration, not inference: the store enforces no schema,
// so the reader has to know where each field lives. -1 marks a column the
// family does not carry.
type Layout struct {
	ShopName       int
	Address        int
	Date           int // -1 for period tables, whose date comes from the table name
	PacketPrice    int
	SaleQty        int
	SampleQty      int
	ReturnQty      int
	SaleAmount     int
	SampleAmount   int
	ReturnAmount   int
	DeliveryPerson int
	PaymentStatus  int
}

// DailyLayout is the column order of the per-date period tables.
var DailyLayout = Layout{
	ShopName:       0,
	Address:        1,
	PacketPrice:    2,
	SaleQty:        3,
	SampleQty:      4,
	ReturnQty:      5,
	SaleAmount:     6,
	SampleAmount:   7,
	ReturnAmount:   8,
	DeliveryPerson: 9,
	PaymentStatus:  10,
	Date:           -1,
}

// MasterLayout is the column order of the long-lived master ledger table,
// which carries the transaction date in-row.
var MasterLayout = Layout{
	ShopName:       0,
	Address:        1,
	Date:           2,
	PacketPrice:    3,
	SaleQty:        4,
	SampleQty:      5,
	ReturnQty:      6,
	SaleAmount:     7,
	SampleAmount:   8,
	ReturnAmount:   9,
	DeliveryPerson: 10,
	PaymentStatus:  11,
}

// DailyHeader is the header row written when a period table is created.
var DailyHeader = []string{
	"Shop Name", "Address", "Packet Price", "Sale", "Sample", "Return",
	"Sale Amount", "Sample Amount", "Return Amount", "Delivery Person", "Payment Status",
}

// MasterHeader is the header row of the master ledger table.
var MasterHeader = []string{
	"Shop Name", "Address", "Date", "Packet Price", "Sale", "Sample", "Return",
	"Sale Amount", "Sample Amount", "Return Amount", "Delivery Person", "Payment Status",
}

// ProjectRow turns one raw row into a typed TransactionRecord. Rows with an
// empty shop name are dropped (second return false): that is a data-quality
// filter, not an error. Numeric cells are zero-coerced, string cells
// trimmed, a blank delivery person becomes the Unassigned sentinel. For
// layouts with an in-row date column the date cell overrides the date
// argument; a row whose date cell does not parse keeps the argument (the
// zero time for master reads, which excludes it from date-bucketed views).
func ProjectRow(row []string, date time.Time, shift string, layout Layout) (models.TransactionRecord, bool) {
	name := utils.CellAt(row, layout.ShopName)
	if name == "" {
		return models.TransactionRecord{}, false
	}

	if layout.Date >= 0 {
		if d, ok := utils.ParseDayMonthYear(utils.CellAt(row, layout.Date)); ok {
			date = d
		}
	}

	person := utils.CellAt(row, layout.DeliveryPerson)
	if person == "" {
		person = models.UnassignedDeliveryPerson
	}

	return models.TransactionRecord{
		Key:            canon.Key(name),
		ShopName:       name,
		Address:        utils.CellAt(row, layout.Address),
		Date:           date,
		Shift:          shift,
		PacketPrice:    utils.CoerceFloat(utils.CellAt(row, layout.PacketPrice)),
		SaleQty:        utils.CoerceFloat(utils.CellAt(row, layout.SaleQty)),
		SampleQty:      utils.CoerceFloat(utils.CellAt(row, layout.SampleQty)),
		ReturnQty:      utils.CoerceFloat(utils.CellAt(row, layout.ReturnQty)),
		SaleAmount:     utils.CoerceFloat(utils.CellAt(row, layout.SaleAmount)),
		SampleAmount:   utils.CoerceFloat(utils.CellAt(row, layout.SampleAmount)),
		ReturnAmount:   utils.CoerceFloat(utils.CellAt(row, layout.ReturnAmount)),
		DeliveryPerson: person,
		PaymentStatus:  utils.CellAt(row, layout.PaymentStatus),
	}, true
}

// ProjectRows projects a whole table's rows, silently dropping the ones
// without a shop name.
func ProjectRows(rows [][]string, date time.Time, shift string, layout Layout) []models.TransactionRecord {
	out := make([]models.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		if rec, ok := ProjectRow(row, date, shift, layout); ok {
			out = append(out, rec)
		}
	}
	return out
}

// RecordToRow renders a record back into the period-table column order, the
// inverse of ProjectRow for the daily family. Used by the bill-save flow.
func RecordToRow(r models.TransactionRecord) []string {
	return []string{
		r.ShopName,
		r.Address,
		utils.FormatFloat(r.PacketPrice),
		utils.FormatFloat(r.SaleQty),
		utils.FormatFloat(r.SampleQty),
		utils.FormatFloat(r.ReturnQty),
		utils.FormatFloat(r.SaleAmount),
		utils.FormatFloat(r.SampleAmount),
		utils.FormatFloat(r.ReturnAmount),
		r.DeliveryPerson,
		r.PaymentStatus,
	}
}

// RecordToMasterRow renders a record into the master-ledger column order.
func RecordToMasterRow(r models.TransactionRecord) []string {
	return []string{
		r.ShopName,
		r.Address,
		utils.FormatDate(r.Date),
		utils.FormatFloat(r.PacketPrice),
		utils.FormatFloat(r.SaleQty),
		utils.FormatFloat(r.SampleQty),
		utils.FormatFloat(r.ReturnQty),
		utils.FormatFloat(r.SaleAmount),
		utils.FormatFloat(r.SampleAmount),
		utils.FormatFloat(r.ReturnAmount),
		r.DeliveryPerson,
		r.PaymentStatus,
	}
}
