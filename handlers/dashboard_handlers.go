package handlers

import (
	"context"
	"time"

	"app/models"
	"app/report"
	"app/store"

	"github.com/gofiber/fiber/v2"
)

// Trailing windows for the dashboard trend series.
const (
	monthlyTrendWindow = 6
	dailyTrendWindow   = 30
)

// HandleGetDashboardSummary rebuilds the full dashboard from the raw period
// tables: customer counts, new/repeat split, top customers and both trend
// series. The scan is best effort; with no data yet every figure is zero.
// GET /api/v1/dashboard/summary
func HandleGetDashboardSummary(c *fiber.Ctx) error {
	engine := report.NewEngine(store.Get())
	records := engine.FetchAllRecords(context.Background())

	customers := report.CustomerTotals(records)
	now := time.Now().UTC()

	summary := models.DashboardSummary{
		TotalCustomers: len(customers.Order),
		TopCustomers:   report.TopByTotal(customers, 5),
		MonthlyTrend:   report.MonthlyTrend(records, now, monthlyTrendWindow),
		DailyTrend:     report.DailyTrend(records, now, dailyTrendWindow),
	}
	for _, agg := range customers.ByKey {
		summary.TotalSales += agg.TotalSale
		if agg.VisitCount == 1 {
			summary.NewCustomers++
		} else {
			summary.RepeatCustomers++
		}
	}

	return c.JSON(fiber.Map{"status": "success", "data": summary})
}

// HandleGetMonthlyTrend returns the trailing six-month sales series.
// GET /api/v1/dashboard/trends/monthly
func HandleGetMonthlyTrend(c *fiber.Ctx) error {
	engine := report.NewEngine(store.Get())
	records := engine.FetchAllRecords(context.Background())
	return c.JSON(fiber.Map{"status": "success", "data": report.MonthlyTrend(records, time.Now().UTC(), monthlyTrendWindow)})
}

// HandleGetDailyTrend returns the trailing thirty-day sales series.
// GET /api/v1/dashboard/trends/daily
func HandleGetDailyTrend(c *fiber.Ctx) error {
	engine := report.NewEngine(store.Get())
	records := engine.FetchAllRecords(context.Background())
	return c.JSON(fiber.Map{"status": "success", "data": report.DailyTrend(records, time.Now().UTC(), dailyTrendWindow)})
}
