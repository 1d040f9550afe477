package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/apperrors"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	portsrepo "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/repositories"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils/accounting"
)

var errComputationInconsistency = errors.New("ledger summary and running balance disagree")

// ledgerService assembles the customer ledger read model. The ledger is
// derived fresh on every call from the four source collections; nothing
// about it is persisted.
type ledgerService struct {
	BaseService
	customerRepo     portsrepo.CustomerRepositoryFacade
	invoiceRepo      portsrepo.InvoiceRepositoryFacade
	creditNoteRepo   portsrepo.CreditNoteRepositoryFacade
	paymentRepo      portsrepo.PaymentRepositoryFacade
	journalEntryRepo portsrepo.JournalEntryRepositoryFacade
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	customerRepo portsrepo.CustomerRepositoryFacade,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	creditNoteRepo portsrepo.CreditNoteRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	journalEntryRepo portsrepo.JournalEntryRepositoryFacade,
) *ledgerService {
	return &ledgerService{
		customerRepo:     customerRepo,
		invoiceRepo:      invoiceRepo,
		creditNoteRepo:   creditNoteRepo,
		paymentRepo:      paymentRepo,
		journalEntryRepo: journalEntryRepo,
	}
}

// GetCustomerLedger merges the customer's invoices, credit notes, received
// payments and journal entries into one chronologically balanced row
// sequence, then cross-checks the final running balance against the
// independently computed summary. A mismatch is logged and surfaced via
// the Reconciled flag; the row walk stays authoritative for display.
func (s *ledgerService) GetCustomerLedger(ctx context.Context, customerID string) (*domain.CustomerLedger, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to load customer for ledger", slog.String("customer_id", customerID))
			return nil, err
		}
		// The ledger is still well-defined for an unknown customer; it is
		// simply empty.
		customer = nil
	}

	invoices, err := s.invoiceRepo.FindInvoicesByCustomer(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "failed to load invoices for ledger", slog.String("customer_id", customerID))
		return nil, err
	}
	creditNotes, err := s.creditNoteRepo.FindCreditNotesByCustomer(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "failed to load credit notes for ledger", slog.String("customer_id", customerID))
		return nil, err
	}
	payments, err := s.paymentRepo.FindReceivedPaymentsByCustomer(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "failed to load payments for ledger", slog.String("customer_id", customerID))
		return nil, err
	}
	journalEntries, err := s.journalEntryRepo.FindEntriesByCustomer(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "failed to load journal entries for ledger", slog.String("customer_id", customerID))
		return nil, err
	}

	// Surface stored totals that disagree with their item sums. The item
	// sum remains authoritative for the balance walk either way.
	for _, inv := range invoices {
		if diff, diverged := accounting.ItemSumDivergence(inv.Items, inv.GrandTotal); diverged {
			s.LogWarn(ctx, "invoice grand total diverges from item sum",
				slog.String("invoice_number", inv.InvoiceNumber),
				slog.String("difference", diff.String()))
		}
	}

	entries := accounting.Merge(invoices, creditNotes, payments, journalEntries)
	rows, finalBalance := accounting.BuildRows(entries)
	summary := accounting.Summarize(invoices, creditNotes, payments, journalEntries)

	reconciled := summary.NetBalance.Equal(finalBalance)
	if !reconciled {
		s.LogError(ctx, errComputationInconsistency, "ledger summary does not reconcile with running balance",
			slog.String("customer_id", customerID),
			slog.String("net_balance", summary.NetBalance.String()),
			slog.String("final_balance", finalBalance.String()))
	}

	return &domain.CustomerLedger{
		Customer:       customer,
		Summary:        summary,
		Rows:           rows,
		Invoices:       invoices,
		CreditNotes:    creditNotes,
		Payments:       payments,
		JournalEntries: journalEntries,
		Reconciled:     reconciled,
		FinalBalance:   finalBalance,
	}, nil
}
