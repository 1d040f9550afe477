package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
)

// Effect is the classified impact of a single amount on a customer's
// running balance. Exactly one of Debit/Credit is non-zero (both zero for
// a zero amount). The balance delta is Debit - Credit.
type Effect struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// Delta returns the signed change this effect applies to the running balance.
func (e Effect) Delta() decimal.Decimal {
	return e.Debit.Sub(e.Credit)
}

func debit(amount decimal.Decimal) Effect {
	return Effect{Debit: amount, Credit: decimal.Zero}
}

func credit(amount decimal.Decimal) Effect {
	return Effect{Debit: decimal.Zero, Credit: amount}
}

// Classify maps one transaction amount to its debit/credit attribution.
//
// Invoices always increase the balance; credit notes and payments always
// decrease it. Journal entries carry a signed amount and their polarity
// depends on both the entry type and the sign:
//
//	opening_balance, amount >= 0  -> debit amount
//	opening_balance, amount < 0   -> credit |amount|
//	freight                       -> credit |amount|
//	discount                      -> credit |amount|
//	other, amount >= 0            -> debit |amount|
//	other, amount < 0             -> credit |amount|
//
// The "other with negative amount" case is credited: the historical exports
// disagreed with each other here and the credit treatment is the one the
// summary formula always used. This function is the single place the rule
// lives; renderers never re-derive polarity.
func Classify(kind domain.TransactionKind, entryType domain.JournalEntryType, amount decimal.Decimal) Effect {
	switch kind {
	case domain.KindInvoice:
		return debit(amount.Abs())
	case domain.KindCreditNote, domain.KindPayment:
		return credit(amount.Abs())
	case domain.KindJournalEntry:
		switch entryType {
		case domain.EntryFreight, domain.EntryDiscount:
			return credit(amount.Abs())
		default:
			// opening_balance and other share the sign rule.
			if amount.IsNegative() {
				return credit(amount.Abs())
			}
			return debit(amount.Abs())
		}
	}
	return Effect{Debit: decimal.Zero, Credit: decimal.Zero}
}
