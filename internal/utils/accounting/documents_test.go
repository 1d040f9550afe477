package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils/accounting"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func item(qty, price, discountPct, gstRate string) domain.LineItem {
	return domain.LineItem{
		ProductName:     "Test Product",
		Quantity:        dec(qty),
		Price:           dec(price),
		DiscountPercent: dec(discountPct),
		GSTRate:         dec(gstRate),
	}
}

func TestComputeDocumentTotals_Intrastate(t *testing.T) {
	// 10 * 100 = 1000, 10% item discount = 900 taxable, 18% GST = 162
	items := []domain.LineItem{item("10", "100", "10", "18")}

	totals := accounting.ComputeDocumentTotals(items, "", decimal.Zero, false)

	assert.True(t, totals.Subtotal.Equal(dec("1000")), "subtotal: %s", totals.Subtotal)
	assert.True(t, totals.TotalItemDiscount.Equal(dec("100")))
	assert.True(t, totals.TaxableAmount.Equal(dec("900")))
	assert.True(t, totals.TotalGST.Equal(dec("162")))
	// Intrastate splits GST equally between CGST and SGST
	assert.True(t, totals.CGSTAmount.Equal(dec("81")))
	assert.True(t, totals.SGSTAmount.Equal(dec("81")))
	assert.True(t, totals.IGSTAmount.IsZero())
	assert.True(t, totals.GrandTotal.Equal(dec("1062")))
}

func TestComputeDocumentTotals_Interstate(t *testing.T) {
	items := []domain.LineItem{item("10", "100", "0", "18")}

	totals := accounting.ComputeDocumentTotals(items, "", decimal.Zero, true)

	assert.True(t, totals.IGSTAmount.Equal(dec("180")))
	assert.True(t, totals.CGSTAmount.IsZero())
	assert.True(t, totals.SGSTAmount.IsZero())
	assert.True(t, totals.GrandTotal.Equal(dec("1180")))
}

func TestComputeDocumentTotals_OverallPercentageDiscount(t *testing.T) {
	// 1000 taxable, 10% overall discount -> 900 taxable, GST on 900
	items := []domain.LineItem{item("10", "100", "0", "18")}

	totals := accounting.ComputeDocumentTotals(items, domain.DiscountPercentage, dec("10"), false)

	assert.True(t, totals.OverallDiscountAmount.Equal(dec("100")))
	assert.True(t, totals.TaxableAmount.Equal(dec("900")))
	assert.True(t, totals.TotalGST.Equal(dec("162")))
	assert.True(t, totals.GrandTotal.Equal(dec("1062")))
}

func TestComputeDocumentTotals_OverallAmountDiscountApportioned(t *testing.T) {
	// Two lines with different GST rates; a flat 100 discount must be
	// shared in proportion to each line's taxable amount before tax.
	items := []domain.LineItem{
		item("1", "600", "0", "5"),  // taxable 600
		item("1", "400", "0", "18"), // taxable 400
	}

	totals := accounting.ComputeDocumentTotals(items, domain.DiscountAmount, dec("100"), false)

	require.True(t, totals.OverallDiscountAmount.Equal(dec("100")))
	assert.True(t, totals.TaxableAmount.Equal(dec("900")))
	// Line 1 share: 60 -> taxed 540 @ 5% = 27
	// Line 2 share: 40 -> taxed 360 @ 18% = 64.8
	assert.True(t, totals.TotalGST.Equal(dec("91.8")), "total GST: %s", totals.TotalGST)
	assert.True(t, totals.GrandTotal.Equal(dec("991.8")))
}

func TestComputeDocumentTotals_Empty(t *testing.T) {
	totals := accounting.ComputeDocumentTotals(nil, "", decimal.Zero, false)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}
