package mapping

import (
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/models"
)

// ToModelCreditNote converts a domain.CreditNote to its model form.
func ToModelCreditNote(d domain.CreditNote) models.CreditNote {
	return models.CreditNote{
		CreditNoteID:     d.CreditNoteID,
		CreditNoteNumber: d.CreditNoteNumber,
		CreditNoteDate:   d.CreditNoteDate,
		InvoiceID:        d.InvoiceID,
		InvoiceNumber:    d.InvoiceNumber,
		CustomerID:       d.CustomerID,
		CustomerName:     d.CustomerName,
		Reason:           d.Reason,
		Items:            ToModelLineItems(d.Items),
		Subtotal:         d.Subtotal,
		TotalDiscount:    d.TotalDiscount,
		TaxableAmount:    d.TaxableAmount,
		IsInterstate:     d.IsInterstate,
		CGSTAmount:       d.CGSTAmount,
		SGSTAmount:       d.SGSTAmount,
		IGSTAmount:       d.IGSTAmount,
		TotalGST:         d.TotalGST,
		CreditAmount:     d.CreditAmount,
		StockRestored:    d.StockRestored,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCreditNote converts a models.CreditNote to its domain form.
func ToDomainCreditNote(m models.CreditNote) domain.CreditNote {
	return domain.CreditNote{
		CreditNoteID:     m.CreditNoteID,
		CreditNoteNumber: m.CreditNoteNumber,
		CreditNoteDate:   m.CreditNoteDate,
		InvoiceID:        m.InvoiceID,
		InvoiceNumber:    m.InvoiceNumber,
		CustomerID:       m.CustomerID,
		CustomerName:     m.CustomerName,
		Reason:           m.Reason,
		Items:            ToDomainLineItems(m.Items),
		Subtotal:         m.Subtotal,
		TotalDiscount:    m.TotalDiscount,
		TaxableAmount:    m.TaxableAmount,
		IsInterstate:     m.IsInterstate,
		CGSTAmount:       m.CGSTAmount,
		SGSTAmount:       m.SGSTAmount,
		IGSTAmount:       m.IGSTAmount,
		TotalGST:         m.TotalGST,
		CreditAmount:     m.CreditAmount,
		StockRestored:    m.StockRestored,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCreditNoteSlice converts model credit notes to domain credit notes.
func ToDomainCreditNoteSlice(ms []models.CreditNote) []domain.CreditNote {
	ds := make([]domain.CreditNote, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCreditNote(m)
	}
	return ds
}
