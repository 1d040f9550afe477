package accounting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
)

// Entry is one balance-affecting document flattened out of its source
// collection, ready for the chronological merge. Entries with a zero Date
// sort before everything else (missing dates are treated as the minimum
// timestamp, not an error).
type Entry struct {
	Kind      domain.TransactionKind
	Date      time.Time
	Label     string
	Reference string
	Items     []domain.LineItem
	Gross     decimal.Decimal
	EntryType domain.JournalEntryType
	Amount    decimal.Decimal // signed, journal entries only
}

func journalLabel(entryType domain.JournalEntryType) string {
	switch entryType {
	case domain.EntryOpeningBalance:
		return "Opening Bal"
	case domain.EntryFreight:
		return "Freight"
	case domain.EntryDiscount:
		return "Discount"
	default:
		return "Other"
	}
}

// EntryFromInvoice flattens an invoice for the merge. Cancelled invoices
// still walk through the ledger; only the summary excludes them.
func EntryFromInvoice(inv domain.Invoice) Entry {
	return Entry{
		Kind:      domain.KindInvoice,
		Date:      inv.InvoiceDate,
		Label:     "Invoice",
		Reference: inv.InvoiceNumber,
		Items:     inv.Items,
		Gross:     inv.GrandTotal,
	}
}

// EntryFromCreditNote flattens a credit note for the merge.
func EntryFromCreditNote(cn domain.CreditNote) Entry {
	return Entry{
		Kind:      domain.KindCreditNote,
		Date:      cn.CreditNoteDate,
		Label:     "Credit Note",
		Reference: cn.CreditNoteNumber,
		Items:     cn.Items,
		Gross:     cn.CreditAmount,
	}
}

// EntryFromPayment flattens a received payment for the merge.
func EntryFromPayment(p domain.Payment) Entry {
	return Entry{
		Kind:      domain.KindPayment,
		Date:      p.PaymentDate,
		Label:     "Payment",
		Reference: p.PaymentNumber,
		Gross:     p.PaymentAmount,
	}
}

// EntryFromJournalEntry flattens a journal entry for the merge.
func EntryFromJournalEntry(je domain.JournalEntry) Entry {
	return Entry{
		Kind:      domain.KindJournalEntry,
		Date:      je.EntryDate,
		Label:     journalLabel(je.EntryType),
		Reference: je.EntryNumber,
		EntryType: je.EntryType,
		Amount:    je.Amount,
	}
}

// Merge flattens the four per-customer source collections into one entry
// sequence. Order within a collection is preserved; BuildRows does the
// chronological sort.
func Merge(invoices []domain.Invoice, creditNotes []domain.CreditNote, payments []domain.Payment, journalEntries []domain.JournalEntry) []Entry {
	entries := make([]Entry, 0, len(invoices)+len(creditNotes)+len(payments)+len(journalEntries))
	for _, inv := range invoices {
		entries = append(entries, EntryFromInvoice(inv))
	}
	for _, cn := range creditNotes {
		entries = append(entries, EntryFromCreditNote(cn))
	}
	for _, p := range payments {
		entries = append(entries, EntryFromPayment(p))
	}
	for _, je := range journalEntries {
		entries = append(entries, EntryFromJournalEntry(je))
	}
	return entries
}

// BuildRows stable-sorts the entries chronologically and walks them once,
// producing one row per document, or one row per line item when a document
// carries items. Each row captures the running balance after its own
// contribution. The returned balance equals the Balance of the last row
// (zero when there are no rows).
//
// Item-level amounts use LineItem.FinalAmount, never the stored document
// total: the item sum is authoritative for balance attribution.
func BuildRows(entries []Entry) ([]domain.LedgerRow, decimal.Decimal) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	// Zero time sorts first, which is exactly the missing-date policy.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	rows := make([]domain.LedgerRow, 0, len(sorted))
	balance := decimal.Zero

	for _, entry := range sorted {
		if len(entry.Items) > 0 && (entry.Kind == domain.KindInvoice || entry.Kind == domain.KindCreditNote) {
			for i := range entry.Items {
				item := entry.Items[i]
				eff := Classify(entry.Kind, "", item.FinalAmount())
				balance = balance.Add(eff.Delta())
				rows = append(rows, domain.LedgerRow{
					Date:       entry.Date,
					Kind:       entry.Kind,
					Label:      entry.Label,
					Reference:  entry.Reference,
					Item:       &item,
					Debit:      eff.Debit,
					Credit:     eff.Credit,
					Balance:    balance,
					ShowHeader: i == 0,
				})
			}
			continue
		}

		amount := entry.Gross
		if entry.Kind == domain.KindJournalEntry {
			amount = entry.Amount
		}
		eff := Classify(entry.Kind, entry.EntryType, amount)
		balance = balance.Add(eff.Delta())
		rows = append(rows, domain.LedgerRow{
			Date:       entry.Date,
			Kind:       entry.Kind,
			Label:      entry.Label,
			Reference:  entry.Reference,
			Debit:      eff.Debit,
			Credit:     eff.Credit,
			Balance:    balance,
			ShowHeader: true,
		})
	}
	return rows, balance
}

// Summarize computes the customer position with the independent formula:
//
//	netBalance = totalInvoiced + journalDebits
//	           - totalCredited - journalCredits - totalPaid
//
// totalInvoiced sums stored grand totals of non-cancelled invoices, so it
// can legitimately diverge from the row walk when invoices are cancelled or
// a stored grand total disagrees with its item sum. Callers cross-check the
// two results and treat a mismatch as a computation inconsistency.
func Summarize(invoices []domain.Invoice, creditNotes []domain.CreditNote, payments []domain.Payment, journalEntries []domain.JournalEntry) domain.LedgerSummary {
	s := domain.LedgerSummary{
		TotalInvoiced:  decimal.Zero,
		TotalCredited:  decimal.Zero,
		TotalPaid:      decimal.Zero,
		JournalDebits:  decimal.Zero,
		JournalCredits: decimal.Zero,
	}
	for _, inv := range invoices {
		if inv.InvoiceStatus == domain.InvoiceCancelled {
			continue
		}
		s.TotalInvoiced = s.TotalInvoiced.Add(inv.GrandTotal)
	}
	for _, cn := range creditNotes {
		s.TotalCredited = s.TotalCredited.Add(cn.CreditAmount)
	}
	for _, p := range payments {
		s.TotalPaid = s.TotalPaid.Add(p.PaymentAmount)
	}
	for _, je := range journalEntries {
		eff := Classify(domain.KindJournalEntry, je.EntryType, je.Amount)
		s.JournalDebits = s.JournalDebits.Add(eff.Debit)
		s.JournalCredits = s.JournalCredits.Add(eff.Credit)
	}
	s.NetBalance = s.TotalInvoiced.Add(s.JournalDebits).
		Sub(s.TotalCredited).Sub(s.JournalCredits).Sub(s.TotalPaid)
	return s
}

// ItemSumDivergence reports whether a document's stored gross total differs
// from the sum of its item final amounts. The item sum stays authoritative
// for balance purposes; a divergence is a data-quality signal for callers
// to log, not something to correct silently.
func ItemSumDivergence(items []domain.LineItem, storedTotal decimal.Decimal) (decimal.Decimal, bool) {
	if len(items) == 0 {
		return decimal.Zero, false
	}
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.FinalAmount())
	}
	diff := storedTotal.Sub(sum)
	return diff, !diff.IsZero()
}
