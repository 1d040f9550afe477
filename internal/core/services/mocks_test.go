package services_test

import (
	"context"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/apperrors"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	portsrepo "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/repositories"
)

// Hand-rolled repository fakes with per-call overrides. Methods without an
// override return empty results, so each test only wires what it exercises.

type mockCustomerRepo struct {
	FindCustomerByIDFn func(ctx context.Context, customerID string) (*domain.Customer, error)
	SaveCustomerFn     func(ctx context.Context, customer domain.Customer) error
	ListCustomersFn    func(ctx context.Context) ([]domain.Customer, error)
}

func (m *mockCustomerRepo) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	if m.FindCustomerByIDFn != nil {
		return m.FindCustomerByIDFn(ctx, customerID)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockCustomerRepo) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	if m.ListCustomersFn != nil {
		return m.ListCustomersFn(ctx)
	}
	return nil, nil
}

func (m *mockCustomerRepo) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	if m.SaveCustomerFn != nil {
		return m.SaveCustomerFn(ctx, customer)
	}
	return nil
}

func (m *mockCustomerRepo) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	return nil
}

func (m *mockCustomerRepo) DeleteCustomer(ctx context.Context, customerID string) error {
	return nil
}

var _ portsrepo.CustomerRepositoryFacade = (*mockCustomerRepo)(nil)

type mockInvoiceRepo struct {
	FindInvoiceByIDFn        func(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	FindInvoicesByCustomerFn func(ctx context.Context, customerID string) ([]domain.Invoice, error)
	ListInvoicesFn           func(ctx context.Context, limit int, nextToken *string) ([]domain.Invoice, *string, error)
	CountByNumberPrefixFn    func(ctx context.Context, prefix string) (int, error)
	SaveInvoiceFn            func(ctx context.Context, invoice domain.Invoice) error
	UpdatePaymentStatusFn    func(ctx context.Context, invoiceID string, status domain.PaymentStatus, updatedBy string) error
}

func (m *mockInvoiceRepo) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	if m.FindInvoiceByIDFn != nil {
		return m.FindInvoiceByIDFn(ctx, invoiceID)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockInvoiceRepo) FindInvoicesByCustomer(ctx context.Context, customerID string) ([]domain.Invoice, error) {
	if m.FindInvoicesByCustomerFn != nil {
		return m.FindInvoicesByCustomerFn(ctx, customerID)
	}
	return nil, nil
}

func (m *mockInvoiceRepo) ListInvoices(ctx context.Context, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	if m.ListInvoicesFn != nil {
		return m.ListInvoicesFn(ctx, limit, nextToken)
	}
	return nil, nil, nil
}

func (m *mockInvoiceRepo) CountByNumberPrefix(ctx context.Context, prefix string) (int, error) {
	if m.CountByNumberPrefixFn != nil {
		return m.CountByNumberPrefixFn(ctx, prefix)
	}
	return 0, nil
}

func (m *mockInvoiceRepo) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	if m.SaveInvoiceFn != nil {
		return m.SaveInvoiceFn(ctx, invoice)
	}
	return nil
}

func (m *mockInvoiceRepo) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string) error {
	return nil
}

func (m *mockInvoiceRepo) UpdatePaymentStatus(ctx context.Context, invoiceID string, status domain.PaymentStatus, updatedBy string) error {
	if m.UpdatePaymentStatusFn != nil {
		return m.UpdatePaymentStatusFn(ctx, invoiceID, status, updatedBy)
	}
	return nil
}

func (m *mockInvoiceRepo) DeleteInvoice(ctx context.Context, invoiceID string) error {
	return nil
}

var _ portsrepo.InvoiceRepositoryFacade = (*mockInvoiceRepo)(nil)

type mockCreditNoteRepo struct {
	FindCreditNotesByCustomerFn func(ctx context.Context, customerID string) ([]domain.CreditNote, error)
	SaveCreditNoteFn            func(ctx context.Context, creditNote domain.CreditNote) error
	CountByNumberPrefixFn       func(ctx context.Context, prefix string) (int, error)
}

func (m *mockCreditNoteRepo) FindCreditNoteByID(ctx context.Context, creditNoteID string) (*domain.CreditNote, error) {
	return nil, apperrors.ErrNotFound
}

func (m *mockCreditNoteRepo) FindCreditNotesByCustomer(ctx context.Context, customerID string) ([]domain.CreditNote, error) {
	if m.FindCreditNotesByCustomerFn != nil {
		return m.FindCreditNotesByCustomerFn(ctx, customerID)
	}
	return nil, nil
}

func (m *mockCreditNoteRepo) ListCreditNotes(ctx context.Context) ([]domain.CreditNote, error) {
	return nil, nil
}

func (m *mockCreditNoteRepo) CountByNumberPrefix(ctx context.Context, prefix string) (int, error) {
	if m.CountByNumberPrefixFn != nil {
		return m.CountByNumberPrefixFn(ctx, prefix)
	}
	return 0, nil
}

func (m *mockCreditNoteRepo) SaveCreditNote(ctx context.Context, creditNote domain.CreditNote) error {
	if m.SaveCreditNoteFn != nil {
		return m.SaveCreditNoteFn(ctx, creditNote)
	}
	return nil
}

func (m *mockCreditNoteRepo) DeleteCreditNote(ctx context.Context, creditNoteID string) error {
	return nil
}

var _ portsrepo.CreditNoteRepositoryFacade = (*mockCreditNoteRepo)(nil)

type mockPaymentRepo struct {
	FindReceivedPaymentsByCustomerFn func(ctx context.Context, customerID string) ([]domain.Payment, error)
	SavePaymentFn                    func(ctx context.Context, payment domain.Payment) error
	CountByNumberPrefixFn            func(ctx context.Context, prefix string) (int, error)
}

func (m *mockPaymentRepo) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return nil, apperrors.ErrNotFound
}

func (m *mockPaymentRepo) FindReceivedPaymentsByCustomer(ctx context.Context, customerID string) ([]domain.Payment, error) {
	if m.FindReceivedPaymentsByCustomerFn != nil {
		return m.FindReceivedPaymentsByCustomerFn(ctx, customerID)
	}
	return nil, nil
}

func (m *mockPaymentRepo) ListPayments(ctx context.Context, filter portsrepo.PaymentListFilter) ([]domain.Payment, error) {
	return nil, nil
}

func (m *mockPaymentRepo) CountByNumberPrefix(ctx context.Context, prefix string) (int, error) {
	if m.CountByNumberPrefixFn != nil {
		return m.CountByNumberPrefixFn(ctx, prefix)
	}
	return 0, nil
}

func (m *mockPaymentRepo) SavePayment(ctx context.Context, payment domain.Payment) error {
	if m.SavePaymentFn != nil {
		return m.SavePaymentFn(ctx, payment)
	}
	return nil
}

var _ portsrepo.PaymentRepositoryFacade = (*mockPaymentRepo)(nil)

type mockJournalEntryRepo struct {
	FindEntriesByCustomerFn func(ctx context.Context, customerID string) ([]domain.JournalEntry, error)
	SaveEntryFn             func(ctx context.Context, entry domain.JournalEntry) error
}

func (m *mockJournalEntryRepo) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return nil, apperrors.ErrNotFound
}

func (m *mockJournalEntryRepo) FindEntriesByCustomer(ctx context.Context, customerID string) ([]domain.JournalEntry, error) {
	if m.FindEntriesByCustomerFn != nil {
		return m.FindEntriesByCustomerFn(ctx, customerID)
	}
	return nil, nil
}

func (m *mockJournalEntryRepo) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	return nil, nil
}

func (m *mockJournalEntryRepo) CountByNumberPrefix(ctx context.Context, prefix string) (int, error) {
	return 0, nil
}

func (m *mockJournalEntryRepo) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	if m.SaveEntryFn != nil {
		return m.SaveEntryFn(ctx, entry)
	}
	return nil
}

func (m *mockJournalEntryRepo) DeleteEntry(ctx context.Context, entryID string) error {
	return nil
}

var _ portsrepo.JournalEntryRepositoryFacade = (*mockJournalEntryRepo)(nil)
