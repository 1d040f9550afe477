package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
)

// PaymentAllocationRequest allocates part of a payment to an invoice.
type PaymentAllocationRequest struct {
	InvoiceID       string          `json:"invoiceID" binding:"required"`
	InvoiceNumber   string          `json:"invoiceNumber"`
	InvoiceType     string          `json:"invoiceType" binding:"required,oneof=sales_invoice purchase_invoice"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount" binding:"required"`
}

// CreatePaymentRequest defines the data required to record a payment.
type CreatePaymentRequest struct {
	PaymentType      domain.PaymentDirection    `json:"paymentType" binding:"required,oneof=receive pay"`
	PartnerID        string                     `json:"partnerID" binding:"required"`
	PartnerName      string                     `json:"partnerName" binding:"required"`
	PartnerType      string                     `json:"partnerType" binding:"required,oneof=customer supplier"`
	PaymentMethod    string                     `json:"paymentMethod" binding:"required"`
	PaymentAmount    decimal.Decimal            `json:"paymentAmount" binding:"required"`
	PaymentDate      *time.Time                 `json:"paymentDate"`
	BankReference    string                     `json:"bankReference"`
	ChequeNumber     string                     `json:"chequeNumber"`
	UPITransactionID string                     `json:"upiTransactionID"`
	Allocations      []PaymentAllocationRequest `json:"allocations" binding:"dive"`
	Memo             string                     `json:"memo"`
	Status           string                     `json:"status"`
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	PaymentType string `form:"paymentType" binding:"omitempty,oneof=receive pay"`
	PartnerID   string `form:"partnerID"`
	StartDate   string `form:"startDate"` // YYYY-MM-DD
	EndDate     string `form:"endDate"`   // YYYY-MM-DD
}
