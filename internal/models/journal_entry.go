package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry maps to the journal_entries table.
type JournalEntry struct {
	EntryID         string          `db:"entry_id"`
	EntryNumber     string          `db:"entry_number"`
	EntryDate       time.Time       `db:"entry_date"`
	EntryType       string          `db:"entry_type"`
	CustomerID      string          `db:"customer_id"`
	CustomerName    string          `db:"customer_name"`
	Description     string          `db:"description"`
	Amount          decimal.Decimal `db:"amount"`
	ReferenceType   string          `db:"reference_type"`
	ReferenceID     string          `db:"reference_id"`
	ReferenceNumber string          `db:"reference_number"`
	Status          string          `db:"status"`
	AuditFields
}
