package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind tags the source collection a ledger entry came from.
type TransactionKind string

const (
	KindInvoice      TransactionKind = "invoice"
	KindCreditNote   TransactionKind = "credit_note"
	KindPayment      TransactionKind = "payment"
	KindJournalEntry TransactionKind = "journal_entry"
)

// LedgerRow is one line of the merged, balanced customer ledger. Rows are
// transient: they are derived fresh per request and never persisted.
//
// ShowHeader marks the first row of an exploded multi-item document; only
// that row carries the date and reference in rendered output. Balance still
// accumulates on every row regardless.
type LedgerRow struct {
	Date       time.Time       `json:"date"`
	Kind       TransactionKind `json:"kind"`
	Label      string          `json:"label"`
	Reference  string          `json:"reference"`
	Item       *LineItem       `json:"item,omitempty"`
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
	Balance    decimal.Decimal `json:"balance"` // running balance after this row
	ShowHeader bool            `json:"showHeader"`
}

// LedgerSummary aggregates a customer's position. NetBalance is computed
// independently of the row walk and must reconcile with the final running
// balance; a divergence is a computation inconsistency, not a second truth.
type LedgerSummary struct {
	TotalInvoiced  decimal.Decimal `json:"totalInvoiced"`
	TotalCredited  decimal.Decimal `json:"totalCredited"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	JournalDebits  decimal.Decimal `json:"journalDebits"`
	JournalCredits decimal.Decimal `json:"journalCredits"`
	NetBalance     decimal.Decimal `json:"netBalance"`
}

// CustomerLedger is the read model exposed by the ledger service.
type CustomerLedger struct {
	Customer       *Customer       `json:"customer"`
	Summary        LedgerSummary   `json:"summary"`
	Rows           []LedgerRow     `json:"rows"`
	Invoices       []Invoice       `json:"invoices"`
	CreditNotes    []CreditNote    `json:"creditNotes"`
	Payments       []Payment       `json:"payments"`
	JournalEntries []JournalEntry  `json:"journalEntries"`
	Reconciled     bool            `json:"reconciled"`
	FinalBalance   decimal.Decimal `json:"finalBalance"`
}
