package dto

import "time"

// CreateCreditNoteRequest defines the data required to create a credit note
// against an existing invoice. Totals are computed server-side.
type CreateCreditNoteRequest struct {
	InvoiceID      string            `json:"invoiceID" binding:"required"`
	InvoiceNumber  string            `json:"invoiceNumber" binding:"required"`
	CustomerID     string            `json:"customerID" binding:"required"`
	CustomerName   string            `json:"customerName" binding:"required"`
	Reason         string            `json:"reason"`
	CreditNoteDate *time.Time        `json:"creditNoteDate"`
	Items          []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}
