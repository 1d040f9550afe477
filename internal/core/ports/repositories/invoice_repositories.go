package repositories

import (
	"context"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
)

// InvoiceReader defines read operations for sales invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoicesByCustomer retrieves all invoices for a customer sorted
	// ascending by invoice date. An unknown customer yields an empty slice.
	FindInvoicesByCustomer(ctx context.Context, customerID string) ([]domain.Invoice, error)

	// ListInvoices retrieves a paginated list of invoices, newest first,
	// using token-based pagination.
	ListInvoices(ctx context.Context, limit int, nextToken *string) ([]domain.Invoice, *string, error)

	// CountByNumberPrefix counts invoices whose number starts with the given
	// prefix. Used for daily document number sequencing.
	CountByNumberPrefix(ctx context.Context, prefix string) (int, error)
}

// InvoiceWriter defines write operations for sales invoice data
type InvoiceWriter interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string) error
	UpdatePaymentStatus(ctx context.Context, invoiceID string, status domain.PaymentStatus, updatedBy string) error
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
