package dto

import (
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
)

// CustomerLedgerResponse is the JSON shape of the customer ledger read
// model. The rows carry the authoritative running balance; the raw source
// collections are included for clients that render their own views.
type CustomerLedgerResponse struct {
	Customer       *CustomerResponse     `json:"customer"`
	Summary        domain.LedgerSummary  `json:"summary"`
	Rows           []domain.LedgerRow    `json:"rows"`
	Invoices       []domain.Invoice      `json:"invoices"`
	CreditNotes    []domain.CreditNote   `json:"creditNotes"`
	Payments       []domain.Payment      `json:"payments"`
	JournalEntries []domain.JournalEntry `json:"journalEntries"`
	Reconciled     bool                  `json:"reconciled"`
}

// ToCustomerLedgerResponse converts the domain read model to its DTO.
func ToCustomerLedgerResponse(ledger *domain.CustomerLedger) CustomerLedgerResponse {
	resp := CustomerLedgerResponse{
		Summary:        ledger.Summary,
		Rows:           ledger.Rows,
		Invoices:       ledger.Invoices,
		CreditNotes:    ledger.CreditNotes,
		Payments:       ledger.Payments,
		JournalEntries: ledger.JournalEntries,
		Reconciled:     ledger.Reconciled,
	}
	if ledger.Customer != nil {
		c := ToCustomerResponse(ledger.Customer)
		resp.Customer = &c
	}
	return resp
}
