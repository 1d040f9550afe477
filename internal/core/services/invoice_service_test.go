package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/apperrors"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/services"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
)

func invoiceReq(gst string) dto.CreateInvoiceRequest {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	return dto.CreateInvoiceRequest{
		CustomerID:   "cust-1",
		CustomerName: "Sri Traders",
		CustomerGST:  gst,
		InvoiceDate:  &date,
		Items: []dto.LineItemRequest{{
			ProductName: "Widget",
			Quantity:    decimal.NewFromInt(10),
			Price:       decimal.NewFromInt(100),
			GSTRate:     decimal.NewFromInt(18),
		}},
	}
}

func TestCreateInvoice_ComputesTotalsAndNumber(t *testing.T) {
	var saved domain.Invoice
	repo := &mockInvoiceRepo{
		CountByNumberPrefixFn: func(ctx context.Context, prefix string) (int, error) {
			assert.Equal(t, "INV-20240315-", prefix)
			return 0, nil
		},
		SaveInvoiceFn: func(ctx context.Context, inv domain.Invoice) error {
			saved = inv
			return nil
		},
	}
	svc := services.NewInvoiceService(repo)

	// Telangana GSTIN: intrastate, GST split CGST/SGST
	invoice, err := svc.CreateInvoice(context.Background(), invoiceReq("36ABCDE1234F1Z5"), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "INV-20240315-0001", invoice.InvoiceNumber)
	assert.False(t, invoice.IsInterstate)
	assert.True(t, invoice.Subtotal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, invoice.CGSTAmount.Equal(decimal.NewFromInt(90)))
	assert.True(t, invoice.SGSTAmount.Equal(decimal.NewFromInt(90)))
	assert.True(t, invoice.IGSTAmount.IsZero())
	assert.True(t, invoice.GrandTotal.Equal(decimal.NewFromInt(1180)))
	assert.Equal(t, domain.InvoiceConfirmed, invoice.InvoiceStatus)
	assert.Equal(t, domain.PaymentUnpaid, invoice.PaymentStatus)
	assert.Equal(t, saved.InvoiceID, invoice.InvoiceID)
}

func TestCreateInvoice_InterstateUsesIGST(t *testing.T) {
	svc := services.NewInvoiceService(&mockInvoiceRepo{})

	// Maharashtra GSTIN: state code 27
	invoice, err := svc.CreateInvoice(context.Background(), invoiceReq("27ABCDE1234F1Z5"), "user-1")
	require.NoError(t, err)

	assert.True(t, invoice.IsInterstate)
	assert.True(t, invoice.IGSTAmount.Equal(decimal.NewFromInt(180)))
	assert.True(t, invoice.CGSTAmount.IsZero())
	assert.True(t, invoice.SGSTAmount.IsZero())
}

func TestCreateInvoice_NoGSTINDefaultsToIntrastate(t *testing.T) {
	svc := services.NewInvoiceService(&mockInvoiceRepo{})

	invoice, err := svc.CreateInvoice(context.Background(), invoiceReq(""), "user-1")
	require.NoError(t, err)
	assert.False(t, invoice.IsInterstate)
}

func TestCreateInvoice_RequiresItems(t *testing.T) {
	svc := services.NewInvoiceService(&mockInvoiceRepo{})

	req := invoiceReq("")
	req.Items = nil
	_, err := svc.CreateInvoice(context.Background(), req, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateInvoice_SequencesWithinDay(t *testing.T) {
	repo := &mockInvoiceRepo{
		CountByNumberPrefixFn: func(ctx context.Context, prefix string) (int, error) {
			return 41, nil
		},
	}
	svc := services.NewInvoiceService(repo)

	invoice, err := svc.CreateInvoice(context.Background(), invoiceReq(""), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "INV-20240315-0042", invoice.InvoiceNumber)
}

func TestListInvoices_ClampsLimit(t *testing.T) {
	var gotLimit int
	repo := &mockInvoiceRepo{
		ListInvoicesFn: func(ctx context.Context, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
			gotLimit = limit
			return nil, nil, nil
		},
	}
	svc := services.NewInvoiceService(repo)

	_, err := svc.ListInvoices(context.Background(), dto.ListInvoicesParams{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 20, gotLimit)

	_, err = svc.ListInvoices(context.Background(), dto.ListInvoicesParams{Limit: -1})
	require.NoError(t, err)
	assert.Equal(t, 20, gotLimit)
}
