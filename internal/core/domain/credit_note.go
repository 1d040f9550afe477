package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditNote reverses part or all of a previously issued invoice.
type CreditNote struct {
	CreditNoteID     string          `json:"creditNoteID"` // Primary Key (UUID)
	CreditNoteNumber string          `json:"creditNoteNumber"`
	CreditNoteDate   time.Time       `json:"creditNoteDate"`
	InvoiceID        string          `json:"invoiceID"`
	InvoiceNumber    string          `json:"invoiceNumber"`
	CustomerID       string          `json:"customerID"`
	CustomerName     string          `json:"customerName"`
	Reason           string          `json:"reason"`
	Items            []LineItem      `json:"items"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	TotalDiscount    decimal.Decimal `json:"totalDiscount"`
	TaxableAmount    decimal.Decimal `json:"taxableAmount"`
	IsInterstate     bool            `json:"isInterstate"`
	CGSTAmount       decimal.Decimal `json:"cgstAmount"`
	SGSTAmount       decimal.Decimal `json:"sgstAmount"`
	IGSTAmount       decimal.Decimal `json:"igstAmount"`
	TotalGST         decimal.Decimal `json:"totalGST"`
	CreditAmount     decimal.Decimal `json:"creditAmount"`
	StockRestored    bool            `json:"stockRestored"`
	AuditFields
}
