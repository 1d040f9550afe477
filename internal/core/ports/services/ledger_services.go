package services

import (
	"context"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
)

// LedgerSvcFacade exposes the customer ledger read model. This is the sole
// public contract of the ledger core: the JSON endpoint and every export
// renderer consume the same CustomerLedger, so computed values can never
// diverge between formats.
type LedgerSvcFacade interface {
	// GetCustomerLedger merges the customer's invoices, credit notes,
	// received payments and journal entries into one chronologically
	// balanced row sequence plus an independently computed summary.
	// A customer with no transactions yields an empty ledger with a zero
	// summary, not an error; customer existence is the caller's concern.
	GetCustomerLedger(ctx context.Context, customerID string) (*domain.CustomerLedger, error)
}
