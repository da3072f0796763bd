package handlers

import (
	"context"

	"app/report"
	"app/store"
	"app/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleGetDayView returns one day's customer view with shifts merged: a
// shop served both morning and evening appears once with summed values.
// GET /api/v1/delivery/day?date=DD-MM-YYYY
func HandleGetDayView(c *fiber.Ctx) error {
	date, ok := utils.ParseDayMonthYear(c.Query("date"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid or missing date (expected DD-MM-YYYY)"})
	}

	engine := report.NewEngine(store.Get())
	records := engine.FetchDayRecords(context.Background(), date)
	day := report.DayTotals(records)
	return c.JSON(fiber.Map{"status": "success", "data": day.Customers()})
}

// HandleGetDeliveryGroups groups one day's records by delivery person, with
// the Unassigned group always last.
// GET /api/v1/delivery/groups?date=DD-MM-YYYY
func HandleGetDeliveryGroups(c *fiber.Ctx) error {
	date, ok := utils.ParseDayMonthYear(c.Query("date"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid or missing date (expected DD-MM-YYYY)"})
	}

	engine := report.NewEngine(store.Get())
	records := engine.FetchDayRecords(context.Background(), date)
	return c.JSON(fiber.Map{"status": "success", "data": report.GroupByDeliveryPerson(records)})
}

// HandleGetReconciliation returns running per-delivery-person totals across
// the full history of period tables.
// GET /api/v1/delivery/reconciliation
func HandleGetReconciliation(c *fiber.Ctx) error {
	engine := report.NewEngine(store.Get())
	records := engine.FetchAllRecords(context.Background())
	return c.JSON(fiber.Map{"status": "success", "data": report.ReconcileDeliveryTotals(records)})
}
