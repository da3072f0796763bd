package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"app/models"
)

var testDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestProjectRowDaily(t *testing.T) {
	row := []string{"Om Sharma Shop", "Main Road", "10", "5", "1", "0", "50", "10", "0", "Ravi", "Cash"}
	rec, ok := ProjectRow(row, testDate, models.ShiftMorning, DailyLayout)
	if !ok {
		t.Fatalf("expected row to project")
	}
	assert.Equal(t, "omsharma", rec.Key)
	assert.Equal(t, "Om Sharma Shop", rec.ShopName)
	assert.Equal(t, "Main Road", rec.Address)
	assert.Equal(t, testDate, rec.Date)
	assert.Equal(t, models.ShiftMorning, rec.Shift)
	assert.Equal(t, 10.0, rec.PacketPrice)
	assert.Equal(t, 5.0, rec.SaleQty)
	assert.Equal(t, 50.0, rec.SaleAmount)
	assert.Equal(t, "Ravi", rec.DeliveryPerson)
	assert.True(t, rec.CashCollected())
}

func TestProjectRowDropsEmptyShopName(t *testing.T) {
	_, ok := ProjectRow([]string{"", "addr", "10"}, testDate, "", DailyLayout)
	assert.False(t, ok)
	_, ok = ProjectRow([]string{"   "}, testDate, "", DailyLayout)
	assert.False(t, ok)
	_, ok = ProjectRow(nil, testDate, "", DailyLayout)
	assert.False(t, ok)
}

func TestProjectRowDefaults(t *testing.T) {
	// Short row: only a shop name. Everything else zero-coerces.
	rec, ok := ProjectRow([]string{"Gupta Store"}, testDate, "", DailyLayout)
	if !ok {
		t.Fatalf("expected row to project")
	}
	assert.Equal(t, 0.0, rec.SaleAmount)
	assert.Equal(t, 0.0, rec.SaleQty)
	assert.Equal(t, models.UnassignedDeliveryPerson, rec.DeliveryPerson)
	assert.False(t, rec.CashCollected())
}

func TestProjectRowCoercesJunkNumbers(t *testing.T) {
	row := []string{"Shop A", "", "₹10", "n/a", "", "", "1,250", "", "", "", "PAID"}
	rec, _ := ProjectRow(row, testDate, "", DailyLayout)
	assert.Equal(t, 10.0, rec.PacketPrice)
	assert.Equal(t, 0.0, rec.SaleQty)
	assert.Equal(t, 1250.0, rec.SaleAmount)
	assert.True(t, rec.CashCollected())
}

func TestProjectRowMasterLayoutReadsDateCell(t *testing.T) {
	row := []string{"Shop A", "addr", "05-06-2025", "10", "5", "0", "0", "50", "0", "0", "Ravi", ""}
	rec, ok := ProjectRow(row, time.Time{}, "", MasterLayout)
	if !ok {
		t.Fatalf("expected row to project")
	}
	assert.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), rec.Date)
}

func TestProjectRowMasterLayoutBadDateKeepsFallback(t *testing.T) {
	row := []string{"Shop A", "addr", "not-a-date", "10"}
	rec, _ := ProjectRow(row, time.Time{}, "", MasterLayout)
	assert.True(t, rec.Date.IsZero())
}

func TestRecordToRowRoundTrip(t *testing.T) {
	row := []string{"Om Sharma", "Main Road", "10", "5", "1", "0", "50", "10", "0", "Ravi", "Cash"}
	rec, _ := ProjectRow(row, testDate, models.ShiftMorning, DailyLayout)
	back, ok := ProjectRow(RecordToRow(rec), testDate, models.ShiftMorning, DailyLayout)
	if !ok {
		t.Fatalf("expected round-tripped row to project")
	}
	assert.Equal(t, rec, back)
}
