package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayBookEntry is one manually entered line in the day book. Balance is
// never authoritative at write time: every mutation triggers a full
// recompute as the prefix sum of (credit - debit) over all entries in
// date order.
type DayBookEntry struct {
	EntryID     string          `json:"entryID"` // Primary Key (UUID)
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Purpose     string          `json:"purpose"`
	Debit       decimal.Decimal `json:"debit"`  // money out
	Credit      decimal.Decimal `json:"credit"` // money in
	Balance     decimal.Decimal `json:"balance"`
	AuditFields
}
