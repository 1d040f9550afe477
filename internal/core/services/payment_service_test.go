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

func paymentReq(amount string, allocations ...dto.PaymentAllocationRequest) dto.CreatePaymentRequest {
	date := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	return dto.CreatePaymentRequest{
		PaymentType:   domain.PaymentReceive,
		PartnerID:     "cust-1",
		PartnerName:   "Sri Traders",
		PartnerType:   "customer",
		PaymentMethod: "upi",
		PaymentAmount: decimal.RequireFromString(amount),
		PaymentDate:   &date,
		Allocations:   allocations,
	}
}

func TestCreatePayment_RejectsOverAllocation(t *testing.T) {
	svc := services.NewPaymentService(&mockPaymentRepo{}, &mockInvoiceRepo{})

	_, err := svc.CreatePayment(context.Background(), paymentReq("100",
		dto.PaymentAllocationRequest{InvoiceID: "inv-1", InvoiceType: "sales_invoice", AllocatedAmount: decimal.RequireFromString("150")},
	), "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreatePayment_RejectsNonPositiveAmount(t *testing.T) {
	svc := services.NewPaymentService(&mockPaymentRepo{}, &mockInvoiceRepo{})

	_, err := svc.CreatePayment(context.Background(), paymentReq("0"), "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreatePayment_ComputesUnallocatedAndNumber(t *testing.T) {
	var saved domain.Payment
	paymentRepo := &mockPaymentRepo{
		CountByNumberPrefixFn: func(ctx context.Context, prefix string) (int, error) {
			assert.Equal(t, "PAY-R-20240401-", prefix)
			return 2, nil
		},
		SavePaymentFn: func(ctx context.Context, p domain.Payment) error {
			saved = p
			return nil
		},
	}
	svc := services.NewPaymentService(paymentRepo, &mockInvoiceRepo{})

	payment, err := svc.CreatePayment(context.Background(), paymentReq("1000",
		dto.PaymentAllocationRequest{InvoiceID: "inv-1", InvoiceType: "sales_invoice", AllocatedAmount: decimal.RequireFromString("600")},
	), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "PAY-R-20240401-0003", payment.PaymentNumber)
	assert.True(t, payment.UnallocatedAmount.Equal(decimal.RequireFromString("400")))
	assert.Equal(t, "posted", payment.Status)
	assert.Equal(t, saved.PaymentID, payment.PaymentID)
}

func TestCreatePayment_RefreshesInvoicePaymentStatus(t *testing.T) {
	grandTotal := decimal.RequireFromString("1000")
	invoice := &domain.Invoice{
		InvoiceID:     "inv-1",
		CustomerID:    "cust-1",
		GrandTotal:    grandTotal,
		PaymentStatus: domain.PaymentUnpaid,
	}

	recorded := []domain.Payment{}
	paymentRepo := &mockPaymentRepo{
		SavePaymentFn: func(ctx context.Context, p domain.Payment) error {
			recorded = append(recorded, p)
			return nil
		},
		FindReceivedPaymentsByCustomerFn: func(ctx context.Context, id string) ([]domain.Payment, error) {
			return recorded, nil
		},
	}

	var updatedStatus domain.PaymentStatus
	invoiceRepo := &mockInvoiceRepo{
		FindInvoiceByIDFn: func(ctx context.Context, id string) (*domain.Invoice, error) {
			return invoice, nil
		},
		UpdatePaymentStatusFn: func(ctx context.Context, id string, status domain.PaymentStatus, by string) error {
			updatedStatus = status
			invoice.PaymentStatus = status
			return nil
		},
	}
	svc := services.NewPaymentService(paymentRepo, invoiceRepo)

	// Partial allocation first
	_, err := svc.CreatePayment(context.Background(), paymentReq("400",
		dto.PaymentAllocationRequest{InvoiceID: "inv-1", InvoiceType: "sales_invoice", AllocatedAmount: decimal.RequireFromString("400")},
	), "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPartial, updatedStatus)

	// Second payment settles the remainder
	_, err = svc.CreatePayment(context.Background(), paymentReq("600",
		dto.PaymentAllocationRequest{InvoiceID: "inv-1", InvoiceType: "sales_invoice", AllocatedAmount: decimal.RequireFromString("600")},
	), "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, updatedStatus)
}

func TestCreatePayment_PurchaseAllocationsSkipStatusRefresh(t *testing.T) {
	invoiceRepo := &mockInvoiceRepo{
		FindInvoiceByIDFn: func(ctx context.Context, id string) (*domain.Invoice, error) {
			t.Fatal("purchase invoice allocations must not touch the sales invoice repo")
			return nil, nil
		},
	}
	svc := services.NewPaymentService(&mockPaymentRepo{}, invoiceRepo)

	_, err := svc.CreatePayment(context.Background(), dto.CreatePaymentRequest{
		PaymentType:   domain.PaymentPay,
		PartnerID:     "supp-1",
		PartnerName:   "Mills Ltd",
		PartnerType:   "supplier",
		PaymentMethod: "bank",
		PaymentAmount: decimal.RequireFromString("500"),
		Allocations: []dto.PaymentAllocationRequest{
			{InvoiceID: "pinv-1", InvoiceType: "purchase_invoice", AllocatedAmount: decimal.RequireFromString("500")},
		},
	}, "user-1")
	require.NoError(t, err)
}

func TestListPayments_RejectsBadDates(t *testing.T) {
	svc := services.NewPaymentService(&mockPaymentRepo{}, &mockInvoiceRepo{})

	_, err := svc.ListPayments(context.Background(), dto.ListPaymentsParams{StartDate: "01-04-2024"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
