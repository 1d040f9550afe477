package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
)

var hundred = decimal.NewFromInt(100)

// DocumentTotals is the full set of derived amounts for an invoice or
// credit note. GST is computed per item so mixed-rate documents tax each
// line at its own rate; the overall discount is apportioned across items
// in proportion to their taxable amounts before tax is applied.
type DocumentTotals struct {
	Subtotal              decimal.Decimal
	TotalItemDiscount     decimal.Decimal
	OverallDiscountAmount decimal.Decimal
	TaxableAmount         decimal.Decimal
	CGSTAmount            decimal.Decimal
	SGSTAmount            decimal.Decimal
	IGSTAmount            decimal.Decimal
	TotalGST              decimal.Decimal
	GrandTotal            decimal.Decimal
}

// ComputeDocumentTotals derives all document amounts from the line items.
// Interstate supplies charge IGST; intrastate supplies split the same GST
// equally between CGST and SGST.
func ComputeDocumentTotals(items []domain.LineItem, discountType domain.DiscountType, discountValue decimal.Decimal, isInterstate bool) DocumentTotals {
	t := DocumentTotals{
		Subtotal:              decimal.Zero,
		TotalItemDiscount:     decimal.Zero,
		OverallDiscountAmount: decimal.Zero,
		TaxableAmount:         decimal.Zero,
		CGSTAmount:            decimal.Zero,
		SGSTAmount:            decimal.Zero,
		IGSTAmount:            decimal.Zero,
		TotalGST:              decimal.Zero,
		GrandTotal:            decimal.Zero,
	}

	afterItemDiscount := decimal.Zero
	for _, item := range items {
		t.Subtotal = t.Subtotal.Add(item.LineTotal())
		t.TotalItemDiscount = t.TotalItemDiscount.Add(item.DiscountAmount())
		afterItemDiscount = afterItemDiscount.Add(item.TaxableAmount())
	}

	switch discountType {
	case domain.DiscountPercentage:
		t.OverallDiscountAmount = afterItemDiscount.Mul(discountValue).Div(hundred)
	case domain.DiscountAmount:
		t.OverallDiscountAmount = discountValue
	}

	t.TaxableAmount = afterItemDiscount.Sub(t.OverallDiscountAmount)

	// Tax each item on its taxable amount minus its proportional share of
	// the overall discount.
	for _, item := range items {
		itemTaxable := item.TaxableAmount()
		if afterItemDiscount.IsPositive() && t.OverallDiscountAmount.Sign() != 0 {
			share := t.OverallDiscountAmount.Mul(itemTaxable).Div(afterItemDiscount)
			itemTaxable = itemTaxable.Sub(share)
		}
		t.TotalGST = t.TotalGST.Add(itemTaxable.Mul(item.GSTRate).Div(hundred))
	}

	if isInterstate {
		t.IGSTAmount = t.TotalGST
	} else {
		half := t.TotalGST.Div(decimal.NewFromInt(2))
		t.CGSTAmount = half
		t.SGSTAmount = half
	}

	t.GrandTotal = t.TaxableAmount.Add(t.TotalGST)
	return t
}
