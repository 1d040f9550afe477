package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayBookEntry maps to the daybook_entries table.
type DayBookEntry struct {
	EntryID     string          `db:"entry_id"`
	Date        time.Time       `db:"entry_date"`
	Description string          `db:"description"`
	Purpose     string          `db:"purpose"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Balance     decimal.Decimal `db:"balance"`
	AuditFields
}
