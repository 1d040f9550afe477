package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDayBookEntryRequest defines the data for inserting or updating a
// day book entry. Balance is never accepted from the client: it is always
// recomputed over the whole book after the mutation.
type CreateDayBookEntryRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Purpose     string          `json:"purpose"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}
