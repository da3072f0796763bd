// Package extraction turns a photographed delivery bill into structured row
// data: a multimodal model reads the image, and a sanitizer checks the
// result against the one arithmetic invariant a bill carries.
package extraction

import (
	"log"

	"app/models"
	"app/utils"
)

// SanitizeItem coerces an extracted line item's numeric fields and verifies
// them against expected = packetPrice x sale. A well-formed item has exactly
// one real amount: either cashAmount or balanceAmount equals expected (the
// other being zero), or the two sum to it. Values are never rewritten — when
// neither reading works out the item is passed through unchanged with the
// Suspect flag set, and the operator decides. Unparseable fields coerce to
// 0, which makes expected 0 and trivially consistent with any zero field.
func SanitizeItem(raw models.RawBillItem) models.BillItem {
	item := models.BillItem{
		ShopName:      raw.ShopName,
		Address:       raw.Address,
		PacketPrice:   utils.CoerceNumber(raw.PacketPrice),
		Sale:          utils.CoerceNumber(raw.Sale),
		Samp:          utils.CoerceNumber(raw.Samp),
		Rep:           utils.CoerceNumber(raw.Rep),
		CashAmount:    utils.CoerceNumber(raw.CashAmount),
		BalanceAmount: utils.CoerceNumber(raw.BalanceAmount),
		DelPerson:     raw.DelPerson,
	}

	expected := item.PacketPrice * item.Sale
	switch {
	case item.CashAmount == expected:
	case item.BalanceAmount == expected:
	case item.CashAmount+item.BalanceAmount == expected:
	default:
		log.Printf("Extraction amounts for %q do not match price*qty (expected %v, cash %v, balance %v)",
			item.ShopName, expected, item.CashAmount, item.BalanceAmount)
		item.Suspect = true
	}
	return item
}

// SanitizeBill sanitizes every item of an extraction and normalizes its
// header date into the ledger's day-month-year form. An unparseable date is
// left as extracted for the operator to fix.
func SanitizeBill(raw models.RawBillExtraction) models.BillExtraction {
	out := models.BillExtraction{
		Date:      raw.Date,
		Shift:     raw.Shift,
		DelPerson: raw.DelPerson,
		Items:     make([]models.BillItem, 0, len(raw.Items)),
	}
	if d, ok := utils.ParseDayMonthYear(raw.Date); ok {
		out.Date = utils.FormatDate(d)
	}
	for _, item := range raw.Items {
		if item.DelPerson == "" {
			item.DelPerson = raw.DelPerson
		}
		out.Items = append(out.Items, SanitizeItem(item))
	}
	return out
}
