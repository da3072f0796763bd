package handlers

import (
	"context"
	"strconv"

	"app/canon"
	"app/report"
	"app/store"
	"app/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleListCustomers returns every customer aggregate, rebuilt from the raw
// tables, in first-seen order.
// GET /api/v1/customers
func HandleListCustomers(c *fiber.Ctx) error {
	engine := report.NewEngine(store.Get())
	records := engine.FetchAllRecords(context.Background())
	customers := report.CustomerTotals(records)
	return c.JSON(fiber.Map{"status": "success", "data": customers.Customers()})
}

// HandleGetCustomerByKey returns one customer's all-time aggregate. The key
// parameter is canonicalized, so a raw shop name works too.
// GET /api/v1/customers/:key
func HandleGetCustomerByKey(c *fiber.Ctx) error {
	key := canon.Key(c.Params("key"))
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Missing customer key"})
	}

	engine := report.NewEngine(store.Get())
	records := engine.FetchAllRecords(context.Background())
	customers := report.CustomerTotals(records)

	agg, ok := customers.ByKey[key]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Customer not found"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": agg})
}

// HandleGetCustomerSegments splits customers into new/repeat visit-count
// segments.
// GET /api/v1/customers/segments
func HandleGetCustomerSegments(c *fiber.Ctx) error {
	engine := report.NewEngine(store.Get())
	records := engine.FetchAllRecords(context.Background())
	customers := report.CustomerTotals(records)
	return c.JSON(fiber.Map{"status": "success", "data": report.SegmentByVisitCount(customers)})
}

// HandleGetTopCustomers ranks customers by lifetime sale amount.
// GET /api/v1/customers/top?n=10
func HandleGetTopCustomers(c *fiber.Ctx) error {
	n, err := strconv.Atoi(c.Query("n", "10"))
	if err != nil || n <= 0 {
		n = 10
	}
	engine := report.NewEngine(store.Get())
	records := engine.FetchAllRecords(context.Background())
	customers := report.CustomerTotals(records)
	return c.JSON(fiber.Map{"status": "success", "data": report.TopByTotal(customers, n)})
}

// HandleGetNewCustomersOnDate lists the customers whose first-ever purchase
// happened on the given date, valued with that day's figures.
// GET /api/v1/customers/new?date=DD-MM-YYYY
func HandleGetNewCustomersOnDate(c *fiber.Ctx) error {
	date, ok := utils.ParseDayMonthYear(c.Query("date"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid or missing date (expected DD-MM-YYYY)"})
	}

	engine := report.NewEngine(store.Get())
	ctx := context.Background()
	allRecords := engine.FetchAllRecords(ctx)
	dayRecords := engine.FetchDayRecords(ctx, date)

	allTime := report.CustomerTotals(allRecords)
	return c.JSON(fiber.Map{"status": "success", "data": report.NewOnDate(allTime, dayRecords, date)})
}
