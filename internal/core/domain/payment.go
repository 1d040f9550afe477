package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentDirection distinguishes money received from customers from money
// paid out to suppliers. Only received payments feed the customer ledger.
type PaymentDirection string

const (
	PaymentReceive PaymentDirection = "receive"
	PaymentPay     PaymentDirection = "pay"
)

// PaymentAllocation links part of a payment to a specific invoice.
type PaymentAllocation struct {
	InvoiceID       string          `json:"invoiceID"`
	InvoiceNumber   string          `json:"invoiceNumber"`
	InvoiceType     string          `json:"invoiceType"` // sales_invoice, purchase_invoice
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
}

// Payment is a single money movement, possibly allocated across invoices.
type Payment struct {
	PaymentID         string              `json:"paymentID"` // Primary Key (UUID)
	PaymentNumber     string              `json:"paymentNumber"`
	PaymentDate       time.Time           `json:"paymentDate"`
	PaymentType       PaymentDirection    `json:"paymentType"`
	PartnerID         string              `json:"partnerID"`
	PartnerName       string              `json:"partnerName"`
	PartnerType       string              `json:"partnerType"` // customer, supplier
	PaymentMethod     string              `json:"paymentMethod"`
	PaymentAmount     decimal.Decimal     `json:"paymentAmount"`
	BankReference     string              `json:"bankReference"`
	ChequeNumber      string              `json:"chequeNumber"`
	UPITransactionID  string              `json:"upiTransactionID"`
	Allocations       []PaymentAllocation `json:"allocations"`
	UnallocatedAmount decimal.Decimal     `json:"unallocatedAmount"`
	Memo              string              `json:"memo"`
	Status            string              `json:"status"` // draft, posted, reconciled
	AuditFields
}
