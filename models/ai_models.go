package models

// RawBillExtraction is the structured object returned by the OCR/LLM
// collaborator. Numeric fields carry no guaranteed type: the model may emit
// strings, numbers or omit them entirely, so they are decoded untyped and
// coerced by the sanitizer.
type RawBillExtraction struct {
	Date      string        `json:"date"`
	Shift     string        `json:"shift"`
	DelPerson string        `json:"delPerson"`
	Items     []RawBillItem `json:"items"`
}

// RawBillItem is one extracted line item before sanitization.
type RawBillItem struct {
	ShopName      string      `json:"shopName"`
	Address       string      `json:"address"`
	PacketPrice   interface{} `json:"packetPrice"`
	Sale          interface{} `json:"sale"`
	Samp          interface{} `json:"samp"`
	Rep           interface{} `json:"rep"`
	CashAmount    interface{} `json:"cashAmount"`
	BalanceAmount interface{} `json:"balanceAmount"`
	DelPerson     string      `json:"delPerson"`
}

// BillItem is a sanitized line item with all numeric fields coerced.
// Suspect marks items where neither reported amount matched
// packetPrice x sale; values are passed through unchanged in that case.
type BillItem struct {
	ShopName      string  `json:"shopName"`
	Address       string  `json:"address"`
	PacketPrice   float64 `json:"packetPrice"`
	Sale          float64 `json:"sale"`
	Samp          float64 `json:"samp"`
	Rep           float64 `json:"rep"`
	CashAmount    float64 `json:"cashAmount"`
	BalanceAmount float64 `json:"balanceAmount"`
	DelPerson     string  `json:"delPerson"`
	Suspect       bool    `json:"suspect,omitempty"`
}

// BillExtraction is the sanitized extraction returned to the operator for
// review before saving.
type BillExtraction struct {
	Date      string     `json:"date"`
	Shift     string     `json:"shift"`
	DelPerson string     `json:"delPerson"`
	Items     []BillItem `json:"items"`
}
