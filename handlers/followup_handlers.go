package handlers

import (
	"context"
	"log"
	"time"

	"app/canon"
	"app/models"
	"app/store"
	"app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// FollowUpTableName is the table holding follow-up-call rows.
const FollowUpTableName = "FollowUps"

var followUpHeader = []string{"ID", "Shop Name", "Key", "Phone", "Note", "Due Date", "Status", "Created At"}

func followUpFromRow(row []string) models.FollowUp {
	return models.FollowUp{
		ID:        utils.CellAt(row, 0),
		ShopName:  utils.CellAt(row, 1),
		Key:       utils.CellAt(row, 2),
		Phone:     utils.CellAt(row, 3),
		Note:      utils.CellAt(row, 4),
		DueDate:   utils.CellAt(row, 5),
		Status:    utils.CellAt(row, 6),
		CreatedAt: utils.CellAt(row, 7),
	}
}

func followUpToRow(f models.FollowUp) []string {
	return []string{f.ID, f.ShopName, f.Key, f.Phone, f.Note, f.DueDate, f.Status, f.CreatedAt}
}

// HandleListFollowUps lists all follow-up rows.
// GET /api/v1/followups
func HandleListFollowUps(c *fiber.Ctx) error {
	rows, err := store.Get().ReadRows(context.Background(), FollowUpTableName)
	if err != nil {
		log.Printf("Error reading follow-ups: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to list follow-ups"})
	}
	followUps := make([]models.FollowUp, 0, len(rows))
	for _, row := range rows {
		if f := followUpFromRow(row); f.ID != "" {
			followUps = append(followUps, f)
		}
	}
	return c.JSON(fiber.Map{"status": "success", "data": followUps})
}

// HandleCreateFollowUp appends a new follow-up row.
// POST /api/v1/followups
func HandleCreateFollowUp(c *fiber.Ctx) error {
	var f models.FollowUp
	if err := c.BodyParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if f.ShopName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Missing shop name"})
	}

	f.ID = uuid.New().String()
	f.Key = canon.Key(f.ShopName)
	if f.Status == "" {
		f.Status = "pending"
	}
	f.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	db := store.Get()
	ctx := context.Background()
	if err := db.EnsureTable(ctx, FollowUpTableName, followUpHeader); err != nil {
		log.Printf("Error ensuring follow-up table: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create follow-up"})
	}
	if err := db.AppendRows(ctx, FollowUpTableName, [][]string{followUpToRow(f)}); err != nil {
		log.Printf("Error appending follow-up: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create follow-up"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": f})
}

// HandleUpdateFollowUp updates an existing follow-up row by ID. Only status,
// note and due date are mutable.
// PUT /api/v1/followups/:id
func HandleUpdateFollowUp(c *fiber.Ctx) error {
	id := c.Params("id")

	var patch struct {
		Status  string `json:"status"`
		Note    string `json:"note"`
		DueDate string `json:"dueDate"`
	}
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}

	db := store.Get()
	ctx := context.Background()
	rows, err := db.ReadRows(ctx, FollowUpTableName)
	if err != nil {
		log.Printf("Error reading follow-ups: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update follow-up"})
	}

	for i, row := range rows {
		f := followUpFromRow(row)
		if f.ID != id {
			continue
		}
		if patch.Status != "" {
			f.Status = patch.Status
		}
		if patch.Note != "" {
			f.Note = patch.Note
		}
		if patch.DueDate != "" {
			f.DueDate = patch.DueDate
		}
		if err := db.UpdateRow(ctx, FollowUpTableName, i, followUpToRow(f)); err != nil {
			log.Printf("Error updating follow-up %s: %v", id, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update follow-up"})
		}
		return c.JSON(fiber.Map{"status": "success", "data": f})
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Follow-up not found"})
}
