package accounting_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils/accounting"
)

func day(n int) time.Time {
	return time.Date(2024, time.January, n, 0, 0, 0, 0, time.UTC)
}

func TestBuildRows_InvoiceThenPayment(t *testing.T) {
	invoices := []domain.Invoice{{
		InvoiceNumber: "INV-20240101-0001",
		InvoiceDate:   day(1),
		GrandTotal:    d("1000"),
	}}
	payments := []domain.Payment{{
		PaymentNumber: "PAY-R-20240110-0001",
		PaymentDate:   day(10),
		PaymentAmount: d("400"),
	}}

	entries := accounting.Merge(invoices, nil, payments, nil)
	rows, final := accounting.BuildRows(entries)

	require.Len(t, rows, 2)
	assert.True(t, rows[0].Balance.Equal(d("1000")))
	assert.True(t, rows[1].Balance.Equal(d("600")))
	assert.True(t, final.Equal(d("600")))

	summary := accounting.Summarize(invoices, nil, payments, nil)
	assert.True(t, summary.TotalInvoiced.Equal(d("1000")))
	assert.True(t, summary.TotalPaid.Equal(d("400")))
	assert.True(t, summary.NetBalance.Equal(d("600")))
	assert.True(t, summary.NetBalance.Equal(final), "summary must reconcile with the row walk")
}

func TestBuildRows_ItemExplosion(t *testing.T) {
	invoices := []domain.Invoice{{
		InvoiceNumber: "INV-20240101-0002",
		InvoiceDate:   day(1),
		Items: []domain.LineItem{
			{ProductName: "Widget", Quantity: d("2"), Price: d("100"), DiscountPercent: d("0"), GSTRate: d("18")},
			{ProductName: "Gadget", Quantity: d("1"), Price: d("50"), DiscountPercent: d("10"), GSTRate: d("18")},
		},
		// Stored total computed differently upstream; item sums stay authoritative.
		GrandTotal: d("289.1"),
	}}

	rows, final := accounting.BuildRows(accounting.Merge(invoices, nil, nil, nil))

	require.Len(t, rows, 2)
	// Item 1: lineTotal=200, tax=36, final=236.
	assert.True(t, rows[0].Balance.Equal(d("236")), "got %s", rows[0].Balance)
	// Item 2: lineTotal=50, discount=5, taxable=45, tax=8.1, final=53.1.
	assert.True(t, rows[1].Balance.Equal(d("289.1")), "got %s", rows[1].Balance)
	assert.True(t, final.Equal(d("289.1")))

	assert.True(t, rows[0].ShowHeader, "first item row carries the header")
	assert.False(t, rows[1].ShowHeader, "subsequent item rows suppress it")
	require.NotNil(t, rows[0].Item)
	assert.Equal(t, "Widget", rows[0].Item.ProductName)
	assert.Equal(t, "Gadget", rows[1].Item.ProductName)
}

func TestBuildRows_ItemSumAuthoritativeOverStoredTotal(t *testing.T) {
	inv := domain.Invoice{
		InvoiceNumber: "INV-20240101-0003",
		InvoiceDate:   day(1),
		Items: []domain.LineItem{
			{Quantity: d("1"), Price: d("100"), GSTRate: d("18")},
		},
		GrandTotal: d("999"), // diverges from the item sum on purpose
	}

	rows, final := accounting.BuildRows(accounting.Merge([]domain.Invoice{inv}, nil, nil, nil))
	require.Len(t, rows, 1)
	assert.True(t, final.Equal(d("118")), "balance follows the item sum, got %s", final)

	diff, diverged := accounting.ItemSumDivergence(inv.Items, inv.GrandTotal)
	assert.True(t, diverged)
	assert.True(t, diff.Equal(d("881")))
}

func TestBuildRows_NegativeOpeningBalance(t *testing.T) {
	journalEntries := []domain.JournalEntry{{
		EntryNumber: "JE-20240101-0001",
		EntryDate:   day(1),
		EntryType:   domain.EntryOpeningBalance,
		Amount:      d("-500"), // customer pre-paid
	}}

	rows, final := accounting.BuildRows(accounting.Merge(nil, nil, nil, journalEntries))
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Credit.Equal(d("500")))
	assert.True(t, rows[0].Debit.IsZero())
	assert.True(t, final.Equal(d("-500")))
	assert.Equal(t, "Opening Bal", rows[0].Label)

	summary := accounting.Summarize(nil, nil, nil, journalEntries)
	assert.True(t, summary.JournalCredits.Equal(d("500")), "pre-payment lands in journalCredits")
	assert.True(t, summary.JournalDebits.IsZero())
	assert.True(t, summary.NetBalance.Equal(d("-500")))
}

func TestBuildRows_MissingDatesSortFirst(t *testing.T) {
	invoices := []domain.Invoice{
		{InvoiceNumber: "INV-B", InvoiceDate: day(5), GrandTotal: d("10")},
		{InvoiceNumber: "INV-A", GrandTotal: d("20")}, // no date recorded
	}
	payments := []domain.Payment{
		{PaymentNumber: "PAY-1", PaymentDate: day(2), PaymentAmount: d("5")},
	}

	rows, _ := accounting.BuildRows(accounting.Merge(invoices, nil, payments, nil))

	require.Len(t, rows, 3)
	assert.Equal(t, "INV-A", rows[0].Reference, "undated entry comes first")
	assert.Equal(t, "PAY-1", rows[1].Reference)
	assert.Equal(t, "INV-B", rows[2].Reference)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].Date.Before(rows[i-1].Date), "rows must be non-decreasing in date")
	}
}

func TestBuildRows_StableOrderForEqualDates(t *testing.T) {
	invoices := []domain.Invoice{
		{InvoiceNumber: "INV-1", InvoiceDate: day(3), GrandTotal: d("10")},
		{InvoiceNumber: "INV-2", InvoiceDate: day(3), GrandTotal: d("20")},
	}

	rows, _ := accounting.BuildRows(accounting.Merge(invoices, nil, nil, nil))
	require.Len(t, rows, 2)
	assert.Equal(t, "INV-1", rows[0].Reference)
	assert.Equal(t, "INV-2", rows[1].Reference)
}

// Reconciliation property: when no invoice is cancelled and every stored
// grand total matches its item sum, the independent summary formula must
// equal the running balance after the last row.
func TestReconciliationInvariant_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	entryTypes := []domain.JournalEntryType{
		domain.EntryOpeningBalance, domain.EntryFreight, domain.EntryDiscount, domain.EntryOther,
	}

	amount := func() decimal.Decimal {
		return decimal.NewFromInt(int64(rng.Intn(100000))).Div(d("100"))
	}

	for run := 0; run < 50; run++ {
		var invoices []domain.Invoice
		var creditNotes []domain.CreditNote
		var payments []domain.Payment
		var journalEntries []domain.JournalEntry

		for i := 0; i < rng.Intn(6); i++ {
			inv := domain.Invoice{InvoiceDate: day(1 + rng.Intn(28))}
			for j := 0; j < rng.Intn(4); j++ {
				inv.Items = append(inv.Items, domain.LineItem{
					Quantity:        decimal.NewFromInt(int64(1 + rng.Intn(10))),
					Price:           amount(),
					DiscountPercent: decimal.NewFromInt(int64(rng.Intn(30))),
					GSTRate:         decimal.NewFromInt(int64(rng.Intn(29))),
				})
			}
			if len(inv.Items) > 0 {
				// Keep the stored total consistent so the invariant holds.
				total := decimal.Zero
				for _, item := range inv.Items {
					total = total.Add(item.FinalAmount())
				}
				inv.GrandTotal = total
			} else {
				inv.GrandTotal = amount()
			}
			invoices = append(invoices, inv)
		}
		for i := 0; i < rng.Intn(4); i++ {
			creditNotes = append(creditNotes, domain.CreditNote{
				CreditNoteDate: day(1 + rng.Intn(28)),
				CreditAmount:   amount(),
			})
		}
		for i := 0; i < rng.Intn(4); i++ {
			payments = append(payments, domain.Payment{
				PaymentDate:   day(1 + rng.Intn(28)),
				PaymentAmount: amount(),
			})
		}
		for i := 0; i < rng.Intn(5); i++ {
			signed := amount()
			if rng.Intn(2) == 0 {
				signed = signed.Neg()
			}
			journalEntries = append(journalEntries, domain.JournalEntry{
				EntryDate: day(1 + rng.Intn(28)),
				EntryType: entryTypes[rng.Intn(len(entryTypes))],
				Amount:    signed,
			})
		}

		_, final := accounting.BuildRows(accounting.Merge(invoices, creditNotes, payments, journalEntries))
		summary := accounting.Summarize(invoices, creditNotes, payments, journalEntries)
		require.True(t, summary.NetBalance.Equal(final),
			"run %d: netBalance %s != final running balance %s", run, summary.NetBalance, final)
	}
}

func TestBuildRows_EmptyLedger(t *testing.T) {
	rows, final := accounting.BuildRows(nil)
	assert.Empty(t, rows)
	assert.True(t, final.IsZero())

	summary := accounting.Summarize(nil, nil, nil, nil)
	assert.True(t, summary.NetBalance.IsZero())
	assert.True(t, summary.TotalInvoiced.IsZero())
}
