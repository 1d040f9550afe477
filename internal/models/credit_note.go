package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditNote maps to the credit_notes table.
type CreditNote struct {
	CreditNoteID     string          `db:"credit_note_id"`
	CreditNoteNumber string          `db:"credit_note_number"`
	CreditNoteDate   time.Time       `db:"credit_note_date"`
	InvoiceID        string          `db:"invoice_id"`
	InvoiceNumber    string          `db:"invoice_number"`
	CustomerID       string          `db:"customer_id"`
	CustomerName     string          `db:"customer_name"`
	Reason           string          `db:"reason"`
	Items            []LineItem      `db:"items"` // jsonb
	Subtotal         decimal.Decimal `db:"subtotal"`
	TotalDiscount    decimal.Decimal `db:"total_discount"`
	TaxableAmount    decimal.Decimal `db:"taxable_amount"`
	IsInterstate     bool            `db:"is_interstate"`
	CGSTAmount       decimal.Decimal `db:"cgst_amount"`
	SGSTAmount       decimal.Decimal `db:"sgst_amount"`
	IGSTAmount       decimal.Decimal `db:"igst_amount"`
	TotalGST         decimal.Decimal `db:"total_gst"`
	CreditAmount     decimal.Decimal `db:"credit_amount"`
	StockRestored    bool            `db:"stock_restored"`
	AuditFields
}
