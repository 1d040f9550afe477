package dto

import "github.com/shopspring/decimal"

// AgeBucket is one slice of the overdue aging breakdown.
type AgeBucket struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// RecoveryStats aggregates the outstanding position across all
// non-cancelled invoices for the recovery dashboard.
type RecoveryStats struct {
	TotalOutstanding     decimal.Decimal      `json:"totalOutstanding"`
	OverdueCount         int                  `json:"overdueCount"`
	OverdueAmount        decimal.Decimal      `json:"overdueAmount"`
	PartiallyPaidCount   int                  `json:"partiallyPaidCount"`
	PartiallyPaidAmount  decimal.Decimal      `json:"partiallyPaidAmount"`
	CriticalOverdueCount int                  `json:"criticalOverdueCount"` // >30 days
	CriticalOverdueAmt   decimal.Decimal      `json:"criticalOverdueAmount"`
	ByAge                map[string]AgeBucket `json:"byAge"` // 0-7, 8-15, 16-30, 31-60, 60+
}

// SendReminderRequest triggers a WhatsApp payment reminder for an invoice.
type SendReminderRequest struct {
	InvoiceID   string `json:"invoiceID" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}
