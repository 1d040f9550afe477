package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
)

// CreateJournalEntryRequest defines the data required to post a manual
// journal entry against a customer. Amount is signed: negative values are
// classified as credits depending on the entry type.
type CreateJournalEntryRequest struct {
	EntryType       domain.JournalEntryType `json:"entryType" binding:"required,oneof=opening_balance freight discount other"`
	CustomerID      string                  `json:"customerID" binding:"required"`
	CustomerName    string                  `json:"customerName" binding:"required"`
	Description     string                  `json:"description" binding:"required"`
	Amount          decimal.Decimal         `json:"amount" binding:"required"`
	EntryDate       *time.Time              `json:"entryDate"`
	ReferenceType   string                  `json:"referenceType"`
	ReferenceID     string                  `json:"referenceID"`
	ReferenceNumber string                  `json:"referenceNumber"`
	Status          string                  `json:"status"`
}
