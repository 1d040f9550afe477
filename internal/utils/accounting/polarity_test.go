package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils/accounting"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name       string
		kind       domain.TransactionKind
		entryType  domain.JournalEntryType
		amount     decimal.Decimal
		wantDebit  decimal.Decimal
		wantCredit decimal.Decimal
	}{
		{
			name:      "invoice is always a debit",
			kind:      domain.KindInvoice,
			amount:    d("1000"),
			wantDebit: d("1000"), wantCredit: decimal.Zero,
		},
		{
			name:      "credit note is always a credit",
			kind:      domain.KindCreditNote,
			amount:    d("250.50"),
			wantDebit: decimal.Zero, wantCredit: d("250.50"),
		},
		{
			name:      "payment is always a credit",
			kind:      domain.KindPayment,
			amount:    d("400"),
			wantDebit: decimal.Zero, wantCredit: d("400"),
		},
		{
			name:      "positive opening balance is a debit",
			kind:      domain.KindJournalEntry,
			entryType: domain.EntryOpeningBalance,
			amount:    d("750"),
			wantDebit: d("750"), wantCredit: decimal.Zero,
		},
		{
			name:      "negative opening balance is a credit of the magnitude",
			kind:      domain.KindJournalEntry,
			entryType: domain.EntryOpeningBalance,
			amount:    d("-500"),
			wantDebit: decimal.Zero, wantCredit: d("500"),
		},
		{
			name:      "freight is a credit regardless of sign",
			kind:      domain.KindJournalEntry,
			entryType: domain.EntryFreight,
			amount:    d("120"),
			wantDebit: decimal.Zero, wantCredit: d("120"),
		},
		{
			name:      "negative freight is still a credit",
			kind:      domain.KindJournalEntry,
			entryType: domain.EntryFreight,
			amount:    d("-120"),
			wantDebit: decimal.Zero, wantCredit: d("120"),
		},
		{
			name:      "discount is a credit",
			kind:      domain.KindJournalEntry,
			entryType: domain.EntryDiscount,
			amount:    d("75"),
			wantDebit: decimal.Zero, wantCredit: d("75"),
		},
		{
			name:      "positive other charge is a debit",
			kind:      domain.KindJournalEntry,
			entryType: domain.EntryOther,
			amount:    d("60"),
			wantDebit: d("60"), wantCredit: decimal.Zero,
		},
		{
			name:      "negative other charge is a credit",
			kind:      domain.KindJournalEntry,
			entryType: domain.EntryOther,
			amount:    d("-60"),
			wantDebit: decimal.Zero, wantCredit: d("60"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			eff := accounting.Classify(tc.kind, tc.entryType, tc.amount)
			assert.True(t, tc.wantDebit.Equal(eff.Debit), "debit: want %s got %s", tc.wantDebit, eff.Debit)
			assert.True(t, tc.wantCredit.Equal(eff.Credit), "credit: want %s got %s", tc.wantCredit, eff.Credit)
			assert.True(t, tc.wantDebit.Sub(tc.wantCredit).Equal(eff.Delta()))
		})
	}
}
