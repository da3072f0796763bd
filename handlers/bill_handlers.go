package handlers

import (
	"context"
	"encoding/base64"
	"log"
	"strings"

	"app/extraction"
	"app/models"
	"app/report"
	"app/store"
	"app/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleExtractBill runs OCR extraction on an uploaded bill image and
// returns the sanitized structured result for the operator to review.
// POST /api/v1/bills/extract
func HandleExtractBill(c *fiber.Ctx) error {
	var body struct {
		ImageData string `json:"image_data"` // base64 with prefix e.g. "data:image/png;base64,"
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	parts := strings.Split(body.ImageData, ";base64,")
	if len(parts) != 2 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid image data format"})
	}
	mimeTypeParts := strings.Split(strings.TrimPrefix(parts[0], "data:"), "/")
	if len(mimeTypeParts) != 2 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid image mime type"})
	}
	imageFormat := mimeTypeParts[1]

	imageData, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Failed to decode image data"})
	}

	bill, err := extraction.ExtractBill(context.Background(), imageData, imageFormat)
	if err != nil {
		log.Printf("Error extracting bill: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to extract bill"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": bill})
}

// HandleSaveBill appends a reviewed bill's items to the period table for its
// date and shift, and mirrors them into the master ledger. Create-only: rows
// are immutable once written.
// POST /api/v1/bills
func HandleSaveBill(c *fiber.Ctx) error {
	var bill models.BillExtraction
	if err := c.BodyParser(&bill); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}

	date, ok := utils.ParseDayMonthYear(bill.Date)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid bill date (expected DD-MM-YYYY)"})
	}
	shift := bill.Shift
	if shift != models.ShiftMorning && shift != models.ShiftEvening {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid shift (expected Morning or Evening)"})
	}
	if len(bill.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Bill has no items"})
	}

	var rows, masterRows [][]string
	saved := 0
	for _, item := range bill.Items {
		if strings.TrimSpace(item.ShopName) == "" {
			continue
		}
		person := item.DelPerson
		if person == "" {
			person = bill.DelPerson
		}
		if person == "" {
			person = models.UnassignedDeliveryPerson
		}
		status := ""
		if item.CashAmount > 0 {
			status = "Cash"
		}
		rec := models.TransactionRecord{
			ShopName:       item.ShopName,
			Address:        item.Address,
			Date:           date,
			Shift:          shift,
			PacketPrice:    item.PacketPrice,
			SaleQty:        item.Sale,
			SampleQty:      item.Samp,
			ReturnQty:      item.Rep,
			SaleAmount:     item.CashAmount + item.BalanceAmount,
			DeliveryPerson: person,
			PaymentStatus:  status,
		}
		rows = append(rows, report.RecordToRow(rec))
		masterRows = append(masterRows, report.RecordToMasterRow(rec))
		saved++
	}
	if saved == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Bill has no items with a shop name"})
	}

	db := store.Get()
	ctx := context.Background()
	table := report.TableNameFor(date, shift)

	if err := db.EnsureTable(ctx, table, report.DailyHeader); err != nil {
		log.Printf("Error ensuring period table %q: %v", table, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save bill"})
	}
	if err := db.AppendRows(ctx, table, rows); err != nil {
		log.Printf("Error appending to period table %q: %v", table, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save bill"})
	}

	// The master ledger mirror is best effort; the period table is the
	// source the aggregation engine reads.
	if err := db.EnsureTable(ctx, report.MasterTableName, report.MasterHeader); err != nil {
		log.Printf("Error ensuring master table: %v", err)
	} else if err := db.AppendRows(ctx, report.MasterTableName, masterRows); err != nil {
		log.Printf("Error appending to master table: %v", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": fiber.Map{"table": table, "saved": saved}})
}
