package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
)

// LineItemRequest is one product line on an invoice or credit note request.
// Rates are deliberately not cross-validated against each other; the stored
// line is permissive and the derived amounts follow from whatever was sent.
type LineItemRequest struct {
	ProductID       string          `json:"productID"`
	ProductName     string          `json:"productName" binding:"required"`
	HSNCode         string          `json:"hsnCode"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	Unit            string          `json:"unit"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	GSTRate         decimal.Decimal `json:"gstRate"`
}

// ToLineItem converts a request line to its domain form.
func (r LineItemRequest) ToLineItem() domain.LineItem {
	return domain.LineItem{
		ProductID:       r.ProductID,
		ProductName:     r.ProductName,
		HSNCode:         r.HSNCode,
		Quantity:        r.Quantity,
		Unit:            r.Unit,
		Price:           r.Price,
		DiscountPercent: r.DiscountPercent,
		GSTRate:         r.GSTRate,
	}
}

// ToLineItems converts request lines to domain line items.
func ToLineItems(reqs []LineItemRequest) []domain.LineItem {
	items := make([]domain.LineItem, len(reqs))
	for i, r := range reqs {
		items[i] = r.ToLineItem()
	}
	return items
}

// CreateInvoiceRequest defines the data required to create a sales invoice.
// All totals are computed server-side from the items.
type CreateInvoiceRequest struct {
	CustomerID           string              `json:"customerID" binding:"required"`
	CustomerName         string              `json:"customerName" binding:"required"`
	CustomerAddress      string              `json:"customerAddress"`
	CustomerPhone        string              `json:"customerPhone"`
	CustomerGST          string              `json:"customerGST"`
	BuyerOrderNo         string              `json:"buyerOrderNo"`
	VehicleNo            string              `json:"vehicleNo"`
	PaymentTerms         string              `json:"paymentTerms"`
	InvoiceDate          *time.Time          `json:"invoiceDate"`
	InvoiceStatus        string              `json:"invoiceStatus"`
	Items                []LineItemRequest   `json:"items" binding:"required,min=1,dive"`
	OverallDiscountType  domain.DiscountType `json:"overallDiscountType"`
	OverallDiscountValue decimal.Decimal     `json:"overallDiscountValue"`
	PaymentStatus        string              `json:"paymentStatus"`
}

// UpdatePaymentStatusRequest updates an invoice's payment status.
type UpdatePaymentStatusRequest struct {
	PaymentStatus domain.PaymentStatus `json:"paymentStatus" binding:"required,oneof=unpaid partial paid"`
}

// UpdateInvoiceStatusRequest updates an invoice's fulfilment status.
type UpdateInvoiceStatusRequest struct {
	InvoiceStatus domain.InvoiceStatus `json:"invoiceStatus" binding:"required,oneof=draft confirmed dispatched delivered cancelled"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListInvoicesResponse wraps a page of invoices with the pagination token.
type ListInvoicesResponse struct {
	Invoices  []domain.Invoice `json:"invoices"`
	NextToken *string          `json:"nextToken,omitempty"`
}
