package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/services"
)

func ledgerDay(n int) time.Time {
	return time.Date(2024, 1, n, 0, 0, 0, 0, time.UTC)
}

func TestGetCustomerLedger_MergesAndReconciles(t *testing.T) {
	customer := &domain.Customer{CustomerID: "cust-1", Name: "Sri Traders"}

	invoice := domain.Invoice{
		InvoiceID:     "inv-1",
		InvoiceNumber: "INV-20240102-0001",
		InvoiceDate:   ledgerDay(2),
		CustomerID:    "cust-1",
		Items: []domain.LineItem{{
			ProductName: "Widget",
			Quantity:    decimal.NewFromInt(10),
			Price:       decimal.NewFromInt(100),
			GSTRate:     decimal.NewFromInt(18),
		}},
		GrandTotal: decimal.NewFromFloat(1180),
	}
	payment := domain.Payment{
		PaymentID:     "pay-1",
		PaymentNumber: "PAY-R-20240105-0001",
		PaymentDate:   ledgerDay(5),
		PaymentType:   domain.PaymentReceive,
		PartnerID:     "cust-1",
		PaymentAmount: decimal.NewFromInt(500),
	}

	svc := services.NewLedgerService(
		&mockCustomerRepo{FindCustomerByIDFn: func(ctx context.Context, id string) (*domain.Customer, error) {
			return customer, nil
		}},
		&mockInvoiceRepo{FindInvoicesByCustomerFn: func(ctx context.Context, id string) ([]domain.Invoice, error) {
			return []domain.Invoice{invoice}, nil
		}},
		&mockCreditNoteRepo{},
		&mockPaymentRepo{FindReceivedPaymentsByCustomerFn: func(ctx context.Context, id string) ([]domain.Payment, error) {
			return []domain.Payment{payment}, nil
		}},
		&mockJournalEntryRepo{},
	)

	ledger, err := svc.GetCustomerLedger(context.Background(), "cust-1")
	require.NoError(t, err)
	require.NotNil(t, ledger)

	assert.Equal(t, customer, ledger.Customer)
	require.Len(t, ledger.Rows, 2)

	// Invoice item row debits 1180, payment row credits 500
	assert.True(t, ledger.Rows[0].Debit.Equal(decimal.NewFromInt(1180)))
	assert.True(t, ledger.Rows[1].Credit.Equal(decimal.NewFromInt(500)))
	assert.True(t, ledger.FinalBalance.Equal(decimal.NewFromInt(680)))

	assert.True(t, ledger.Summary.TotalInvoiced.Equal(decimal.NewFromInt(1180)))
	assert.True(t, ledger.Summary.TotalPaid.Equal(decimal.NewFromInt(500)))
	assert.True(t, ledger.Summary.NetBalance.Equal(decimal.NewFromInt(680)))
	assert.True(t, ledger.Reconciled)
}

func TestGetCustomerLedger_UnknownCustomerYieldsEmptyLedger(t *testing.T) {
	svc := services.NewLedgerService(
		&mockCustomerRepo{}, // FindCustomerByID defaults to ErrNotFound
		&mockInvoiceRepo{},
		&mockCreditNoteRepo{},
		&mockPaymentRepo{},
		&mockJournalEntryRepo{},
	)

	ledger, err := svc.GetCustomerLedger(context.Background(), "nobody")
	require.NoError(t, err)
	require.NotNil(t, ledger)

	assert.Nil(t, ledger.Customer)
	assert.Empty(t, ledger.Rows)
	assert.True(t, ledger.Summary.NetBalance.IsZero())
	assert.True(t, ledger.FinalBalance.IsZero())
	assert.True(t, ledger.Reconciled)
}

func TestGetCustomerLedger_JournalEntryPolarity(t *testing.T) {
	// Freight journal entries credit the customer even with a positive amount
	freight := domain.JournalEntry{
		EntryID:    "je-1",
		EntryDate:  ledgerDay(3),
		EntryType:  domain.EntryFreight,
		CustomerID: "cust-1",
		Amount:     decimal.NewFromInt(200),
	}
	opening := domain.JournalEntry{
		EntryID:    "je-2",
		EntryDate:  ledgerDay(1),
		EntryType:  domain.EntryOpeningBalance,
		CustomerID: "cust-1",
		Amount:     decimal.NewFromInt(1000),
	}

	svc := services.NewLedgerService(
		&mockCustomerRepo{FindCustomerByIDFn: func(ctx context.Context, id string) (*domain.Customer, error) {
			return &domain.Customer{CustomerID: "cust-1"}, nil
		}},
		&mockInvoiceRepo{},
		&mockCreditNoteRepo{},
		&mockPaymentRepo{},
		&mockJournalEntryRepo{FindEntriesByCustomerFn: func(ctx context.Context, id string) ([]domain.JournalEntry, error) {
			return []domain.JournalEntry{freight, opening}, nil
		}},
	)

	ledger, err := svc.GetCustomerLedger(context.Background(), "cust-1")
	require.NoError(t, err)
	require.Len(t, ledger.Rows, 2)

	// Date order: opening balance (day 1) debits, freight (day 3) credits
	assert.True(t, ledger.Rows[0].Debit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, ledger.Rows[1].Credit.Equal(decimal.NewFromInt(200)))
	assert.True(t, ledger.FinalBalance.Equal(decimal.NewFromInt(800)))
	assert.True(t, ledger.Reconciled)
}

func TestGetCustomerLedger_RepoErrorPropagates(t *testing.T) {
	svc := services.NewLedgerService(
		&mockCustomerRepo{FindCustomerByIDFn: func(ctx context.Context, id string) (*domain.Customer, error) {
			return &domain.Customer{CustomerID: "cust-1"}, nil
		}},
		&mockInvoiceRepo{FindInvoicesByCustomerFn: func(ctx context.Context, id string) ([]domain.Invoice, error) {
			return nil, assert.AnError
		}},
		&mockCreditNoteRepo{},
		&mockPaymentRepo{},
		&mockJournalEntryRepo{},
	)

	ledger, err := svc.GetCustomerLedger(context.Background(), "cust-1")
	assert.Nil(t, ledger)
	assert.ErrorIs(t, err, assert.AnError)
}
