package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks the fulfilment state of a sales invoice.
type InvoiceStatus string

const (
	InvoiceDraft      InvoiceStatus = "draft"
	InvoiceConfirmed  InvoiceStatus = "confirmed"
	InvoiceDispatched InvoiceStatus = "dispatched"
	InvoiceDelivered  InvoiceStatus = "delivered"
	InvoiceCancelled  InvoiceStatus = "cancelled"
)

// PaymentStatus tracks how much of an invoice has been settled.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// DiscountType selects how an overall document discount is expressed.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountAmount     DiscountType = "amount"
)

// LineItem is one product line on an invoice or credit note.
//
// The derived amounts are intentionally permissive: discount and GST rates
// are taken as stored, so an inconsistent combination can yield a negative
// final amount. The ledger engine consumes whatever the line computes.
type LineItem struct {
	ProductID       string          `json:"productID"`
	ProductName     string          `json:"productName"`
	HSNCode         string          `json:"hsnCode"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent decimal.Decimal `json:"discountPercent"` // 0-100
	GSTRate         decimal.Decimal `json:"gstRate"`         // 0-100
}

// LineTotal returns quantity * price before any discount.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Quantity.Mul(li.Price)
}

// DiscountAmount returns the item-level discount on the line total.
func (li LineItem) DiscountAmount() decimal.Decimal {
	return li.LineTotal().Mul(li.DiscountPercent).Div(decimal.NewFromInt(100))
}

// TaxableAmount returns the line total net of the item discount.
func (li LineItem) TaxableAmount() decimal.Decimal {
	return li.LineTotal().Sub(li.DiscountAmount())
}

// TaxAmount returns the GST charged on the taxable amount.
func (li LineItem) TaxAmount() decimal.Decimal {
	return li.TaxableAmount().Mul(li.GSTRate).Div(decimal.NewFromInt(100))
}

// FinalAmount returns taxable amount plus tax. This is the authoritative
// per-item value for ledger balance attribution.
func (li LineItem) FinalAmount() decimal.Decimal {
	return li.TaxableAmount().Add(li.TaxAmount())
}

// Invoice is a sales invoice issued to a customer.
type Invoice struct {
	InvoiceID             string          `json:"invoiceID"` // Primary Key (UUID)
	InvoiceNumber         string          `json:"invoiceNumber"`
	InvoiceDate           time.Time       `json:"invoiceDate"`
	InvoiceStatus         InvoiceStatus   `json:"invoiceStatus"`
	CustomerID            string          `json:"customerID"`
	CustomerName          string          `json:"customerName"`
	CustomerAddress       string          `json:"customerAddress"`
	CustomerPhone         string          `json:"customerPhone"`
	CustomerGST           string          `json:"customerGST"`
	BuyerOrderNo          string          `json:"buyerOrderNo"`
	VehicleNo             string          `json:"vehicleNo"`
	PaymentTerms          string          `json:"paymentTerms"`
	Items                 []LineItem      `json:"items"`
	Subtotal              decimal.Decimal `json:"subtotal"`
	TotalDiscount         decimal.Decimal `json:"totalDiscount"`
	OverallDiscountType   DiscountType    `json:"overallDiscountType"`
	OverallDiscountValue  decimal.Decimal `json:"overallDiscountValue"`
	OverallDiscountAmount decimal.Decimal `json:"overallDiscountAmount"`
	TaxableAmount         decimal.Decimal `json:"taxableAmount"`
	IsInterstate          bool            `json:"isInterstate"`
	CGSTAmount            decimal.Decimal `json:"cgstAmount"`
	SGSTAmount            decimal.Decimal `json:"sgstAmount"`
	IGSTAmount            decimal.Decimal `json:"igstAmount"`
	TotalGST              decimal.Decimal `json:"totalGST"`
	GrandTotal            decimal.Decimal `json:"grandTotal"`
	PaymentStatus         PaymentStatus   `json:"paymentStatus"`
	StockUpdated          bool            `json:"stockUpdated"`
	AuditFields
}
