package models

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Shift labels partitioning a single delivery day.
const (
	ShiftMorning = "Morning"
	ShiftEvening = "Evening"
)

// UnassignedDeliveryPerson is the sentinel used when the delivery-person
// cell is blank.
const UnassignedDeliveryPerson = "Unassigned"

// TransactionRecord is one projected row of one period table. Rows are
// immutable once written to the store; this struct is the typed read-side
// view of them.
type TransactionRecord struct {
	Key            string    `json:"key"`
	ShopName       string    `json:"shopName"`
	Address        string    `json:"address"`
	Date           time.Time `json:"date"`
	Shift          string    `json:"shift"`
	PacketPrice    float64   `json:"packetPrice"`
	SaleQty        float64   `json:"saleQty"`
	SampleQty      float64   `json:"sampleQty"`
	ReturnQty      float64   `json:"returnQty"`
	SaleAmount     float64   `json:"saleAmount"`
	SampleAmount   float64   `json:"sampleAmount"`
	ReturnAmount   float64   `json:"returnAmount"`
	DeliveryPerson string    `json:"deliveryPerson"`
	PaymentStatus  string    `json:"paymentStatus"`
}

// CashCollected reports whether the row's payment status marks the sale
// amount as collected. The status cell is free text; comparison is
// case-insensitive against the two spellings operators actually use.
func (r TransactionRecord) CashCollected() bool {
	s := strings.ToLower(strings.TrimSpace(r.PaymentStatus))
	return s == "cash" || s == "paid"
}

// JwtClaims are the claims embedded in operator tokens.
type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FollowUp is one follow-up-call row in the FollowUps table.
type FollowUp struct {
	ID        string `json:"id"`
	ShopName  string `json:"shopName"`
	Key       string `json:"key"`
	Phone     string `json:"phone"`
	Note      string `json:"note"`
	DueDate   string `json:"dueDate"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}
