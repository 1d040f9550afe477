package mapping

import (
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/models"
)

// ToModelPayment converts a domain.Payment to its model form.
func ToModelPayment(d domain.Payment) models.Payment {
	allocations := make([]models.PaymentAllocation, len(d.Allocations))
	for i, a := range d.Allocations {
		allocations[i] = models.PaymentAllocation{
			InvoiceID:       a.InvoiceID,
			InvoiceNumber:   a.InvoiceNumber,
			InvoiceType:     a.InvoiceType,
			AllocatedAmount: a.AllocatedAmount,
		}
	}
	return models.Payment{
		PaymentID:         d.PaymentID,
		PaymentNumber:     d.PaymentNumber,
		PaymentDate:       d.PaymentDate,
		PaymentType:       string(d.PaymentType),
		PartnerID:         d.PartnerID,
		PartnerName:       d.PartnerName,
		PartnerType:       d.PartnerType,
		PaymentMethod:     d.PaymentMethod,
		PaymentAmount:     d.PaymentAmount,
		BankReference:     d.BankReference,
		ChequeNumber:      d.ChequeNumber,
		UPITransactionID:  d.UPITransactionID,
		Allocations:       allocations,
		UnallocatedAmount: d.UnallocatedAmount,
		Memo:              d.Memo,
		Status:            d.Status,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a models.Payment to its domain form.
func ToDomainPayment(m models.Payment) domain.Payment {
	allocations := make([]domain.PaymentAllocation, len(m.Allocations))
	for i, a := range m.Allocations {
		allocations[i] = domain.PaymentAllocation{
			InvoiceID:       a.InvoiceID,
			InvoiceNumber:   a.InvoiceNumber,
			InvoiceType:     a.InvoiceType,
			AllocatedAmount: a.AllocatedAmount,
		}
	}
	return domain.Payment{
		PaymentID:         m.PaymentID,
		PaymentNumber:     m.PaymentNumber,
		PaymentDate:       m.PaymentDate,
		PaymentType:       domain.PaymentDirection(m.PaymentType),
		PartnerID:         m.PartnerID,
		PartnerName:       m.PartnerName,
		PartnerType:       m.PartnerType,
		PaymentMethod:     m.PaymentMethod,
		PaymentAmount:     m.PaymentAmount,
		BankReference:     m.BankReference,
		ChequeNumber:      m.ChequeNumber,
		UPITransactionID:  m.UPITransactionID,
		Allocations:       allocations,
		UnallocatedAmount: m.UnallocatedAmount,
		Memo:              m.Memo,
		Status:            m.Status,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts model payments to domain payments.
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
