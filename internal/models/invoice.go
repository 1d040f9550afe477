package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is stored inside the items jsonb column of invoices and
// credit notes; it never gets its own table.
type LineItem struct {
	ProductID       string          `json:"productID"`
	ProductName     string          `json:"productName"`
	HSNCode         string          `json:"hsnCode"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	GSTRate         decimal.Decimal `json:"gstRate"`
}

// Invoice maps to the invoices table.
type Invoice struct {
	InvoiceID             string          `db:"invoice_id"`
	InvoiceNumber         string          `db:"invoice_number"`
	InvoiceDate           time.Time       `db:"invoice_date"`
	InvoiceStatus         string          `db:"invoice_status"`
	CustomerID            string          `db:"customer_id"`
	CustomerName          string          `db:"customer_name"`
	CustomerAddress       string          `db:"customer_address"`
	CustomerPhone         string          `db:"customer_phone"`
	CustomerGST           string          `db:"customer_gst"`
	BuyerOrderNo          string          `db:"buyer_order_no"`
	VehicleNo             string          `db:"vehicle_no"`
	PaymentTerms          string          `db:"payment_terms"`
	Items                 []LineItem      `db:"items"` // jsonb
	Subtotal              decimal.Decimal `db:"subtotal"`
	TotalDiscount         decimal.Decimal `db:"total_discount"`
	OverallDiscountType   string          `db:"overall_discount_type"`
	OverallDiscountValue  decimal.Decimal `db:"overall_discount_value"`
	OverallDiscountAmount decimal.Decimal `db:"overall_discount_amount"`
	TaxableAmount         decimal.Decimal `db:"taxable_amount"`
	IsInterstate          bool            `db:"is_interstate"`
	CGSTAmount            decimal.Decimal `db:"cgst_amount"`
	SGSTAmount            decimal.Decimal `db:"sgst_amount"`
	IGSTAmount            decimal.Decimal `db:"igst_amount"`
	TotalGST              decimal.Decimal `db:"total_gst"`
	GrandTotal            decimal.Decimal `db:"grand_total"`
	PaymentStatus         string          `db:"payment_status"`
	StockUpdated          bool            `db:"stock_updated"`
	AuditFields
}
