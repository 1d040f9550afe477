package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentAllocation is stored inside the allocations jsonb column.
type PaymentAllocation struct {
	InvoiceID       string          `json:"invoiceID"`
	InvoiceNumber   string          `json:"invoiceNumber"`
	InvoiceType     string          `json:"invoiceType"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
}

// Payment maps to the payments table.
type Payment struct {
	PaymentID         string              `db:"payment_id"`
	PaymentNumber     string              `db:"payment_number"`
	PaymentDate       time.Time           `db:"payment_date"`
	PaymentType       string              `db:"payment_type"`
	PartnerID         string              `db:"partner_id"`
	PartnerName       string              `db:"partner_name"`
	PartnerType       string              `db:"partner_type"`
	PaymentMethod     string              `db:"payment_method"`
	PaymentAmount     decimal.Decimal     `db:"payment_amount"`
	BankReference     string              `db:"bank_reference"`
	ChequeNumber      string              `db:"cheque_number"`
	UPITransactionID  string              `db:"upi_transaction_id"`
	Allocations       []PaymentAllocation `db:"allocations"` // jsonb
	UnallocatedAmount decimal.Decimal     `db:"unallocated_amount"`
	Memo              string              `db:"memo"`
	Status            string              `db:"status"`
	AuditFields
}
