package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntryType drives the polarity rules for manual adjustments.
type JournalEntryType string

const (
	EntryOpeningBalance JournalEntryType = "opening_balance"
	EntryFreight        JournalEntryType = "freight"
	EntryDiscount       JournalEntryType = "discount"
	EntryOther          JournalEntryType = "other"
)

// JournalEntry is a manually posted ledger adjustment against a customer.
// Amount is signed: polarity depends on both EntryType and the sign.
type JournalEntry struct {
	EntryID         string           `json:"entryID"` // Primary Key (UUID)
	EntryNumber     string           `json:"entryNumber"`
	EntryDate       time.Time        `json:"entryDate"`
	EntryType       JournalEntryType `json:"entryType"`
	CustomerID      string           `json:"customerID"`
	CustomerName    string           `json:"customerName"`
	Description     string           `json:"description"`
	Amount          decimal.Decimal  `json:"amount"`
	ReferenceType   string           `json:"referenceType"` // invoice, sales_order, delivery_challan
	ReferenceID     string           `json:"referenceID"`
	ReferenceNumber string           `json:"referenceNumber"`
	Status          string           `json:"status"` // draft, posted
	AuditFields
}
