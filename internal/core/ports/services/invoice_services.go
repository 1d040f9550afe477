package services

import (
	"context"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
)

// InvoiceSvcFacade defines operations for managing sales invoices
type InvoiceSvcFacade interface {
	// CreateInvoice generates the invoice number, computes all document
	// totals from the line items and persists the invoice.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)

	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)
	UpdatePaymentStatus(ctx context.Context, invoiceID string, status domain.PaymentStatus, updaterUserID string) error
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updaterUserID string) error
	DeleteInvoice(ctx context.Context, invoiceID string) error
}
