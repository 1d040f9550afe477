package mapping

import (
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/models"
)

// ToModelLineItems converts domain line items to their jsonb model form.
func ToModelLineItems(ds []domain.LineItem) []models.LineItem {
	ms := make([]models.LineItem, len(ds))
	for i, d := range ds {
		ms[i] = models.LineItem{
			ProductID:       d.ProductID,
			ProductName:     d.ProductName,
			HSNCode:         d.HSNCode,
			Quantity:        d.Quantity,
			Unit:            d.Unit,
			Price:           d.Price,
			DiscountPercent: d.DiscountPercent,
			GSTRate:         d.GSTRate,
		}
	}
	return ms
}

// ToDomainLineItems converts model line items to the domain form.
func ToDomainLineItems(ms []models.LineItem) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = domain.LineItem{
			ProductID:       m.ProductID,
			ProductName:     m.ProductName,
			HSNCode:         m.HSNCode,
			Quantity:        m.Quantity,
			Unit:            m.Unit,
			Price:           m.Price,
			DiscountPercent: m.DiscountPercent,
			GSTRate:         m.GSTRate,
		}
	}
	return ds
}

// ToModelInvoice converts a domain.Invoice to its model form.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:             d.InvoiceID,
		InvoiceNumber:         d.InvoiceNumber,
		InvoiceDate:           d.InvoiceDate,
		InvoiceStatus:         string(d.InvoiceStatus),
		CustomerID:            d.CustomerID,
		CustomerName:          d.CustomerName,
		CustomerAddress:       d.CustomerAddress,
		CustomerPhone:         d.CustomerPhone,
		CustomerGST:           d.CustomerGST,
		BuyerOrderNo:          d.BuyerOrderNo,
		VehicleNo:             d.VehicleNo,
		PaymentTerms:          d.PaymentTerms,
		Items:                 ToModelLineItems(d.Items),
		Subtotal:              d.Subtotal,
		TotalDiscount:         d.TotalDiscount,
		OverallDiscountType:   string(d.OverallDiscountType),
		OverallDiscountValue:  d.OverallDiscountValue,
		OverallDiscountAmount: d.OverallDiscountAmount,
		TaxableAmount:         d.TaxableAmount,
		IsInterstate:          d.IsInterstate,
		CGSTAmount:            d.CGSTAmount,
		SGSTAmount:            d.SGSTAmount,
		IGSTAmount:            d.IGSTAmount,
		TotalGST:              d.TotalGST,
		GrandTotal:            d.GrandTotal,
		PaymentStatus:         string(d.PaymentStatus),
		StockUpdated:          d.StockUpdated,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a models.Invoice to its domain form.
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:             m.InvoiceID,
		InvoiceNumber:         m.InvoiceNumber,
		InvoiceDate:           m.InvoiceDate,
		InvoiceStatus:         domain.InvoiceStatus(m.InvoiceStatus),
		CustomerID:            m.CustomerID,
		CustomerName:          m.CustomerName,
		CustomerAddress:       m.CustomerAddress,
		CustomerPhone:         m.CustomerPhone,
		CustomerGST:           m.CustomerGST,
		BuyerOrderNo:          m.BuyerOrderNo,
		VehicleNo:             m.VehicleNo,
		PaymentTerms:          m.PaymentTerms,
		Items:                 ToDomainLineItems(m.Items),
		Subtotal:              m.Subtotal,
		TotalDiscount:         m.TotalDiscount,
		OverallDiscountType:   domain.DiscountType(m.OverallDiscountType),
		OverallDiscountValue:  m.OverallDiscountValue,
		OverallDiscountAmount: m.OverallDiscountAmount,
		TaxableAmount:         m.TaxableAmount,
		IsInterstate:          m.IsInterstate,
		CGSTAmount:            m.CGSTAmount,
		SGSTAmount:            m.SGSTAmount,
		IGSTAmount:            m.IGSTAmount,
		TotalGST:              m.TotalGST,
		GrandTotal:            m.GrandTotal,
		PaymentStatus:         domain.PaymentStatus(m.PaymentStatus),
		StockUpdated:          m.StockUpdated,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoiceSlice converts model invoices to domain invoices.
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}
