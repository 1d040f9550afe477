package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils"
)

// ledgerPDFColumns is the item-wise statement layout: every item line of a
// multi-item document gets its own row, with the date and reference shown
// only on the document's first row.
var ledgerPDFColumns = []struct {
	title string
	width float64
}{
	{"Date", 22},
	{"Particulars", 68},
	{"Ref No", 32},
	{"Qty", 14},
	{"Rate", 18},
	{"Debit", 24},
	{"Credit", 24},
	{"Balance", 28},
}

// LedgerPDF renders the item-wise ledger statement.
func LedgerPDF(ledger *domain.CustomerLedger) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	title := "Customer Ledger"
	if ledger.Customer != nil {
		title = "Ledger - " + ledger.Customer.Name
	}
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")

	if ledger.Customer != nil && ledger.Customer.Address != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, ledger.Customer.Address, "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)

	// Header row
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range ledgerPDFColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range ledger.Rows {
		date := ""
		reference := ""
		if row.ShowHeader {
			if !row.Date.IsZero() {
				date = row.Date.Format(dateLayout)
			}
			reference = row.Reference
		}

		particulars := row.Label
		qty := ""
		rate := ""
		if row.Item != nil {
			particulars = row.Item.ProductName
			qty = row.Item.Quantity.String()
			rate = row.Item.Price.String()
		}

		cells := []struct {
			text  string
			align string
		}{
			{date, "L"},
			{particulars, "L"},
			{reference, "L"},
			{qty, "R"},
			{rate, "R"},
			{utils.FormatINR(row.Debit), "R"},
			{utils.FormatINR(row.Credit), "R"},
			{utils.FormatINR(row.Balance), "R"},
		}
		for i, cell := range cells {
			pdf.CellFormat(ledgerPDFColumns[i].width, 6, cell.text, "1", 0, cell.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	// Summary block
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 9)
	s := ledger.Summary
	summary := [][2]string{
		{"Total Invoiced", utils.FormatINR(s.TotalInvoiced)},
		{"Total Credited", utils.FormatINR(s.TotalCredited)},
		{"Total Paid", utils.FormatINR(s.TotalPaid)},
		{"Journal Debits", utils.FormatINR(s.JournalDebits)},
		{"Journal Credits", utils.FormatINR(s.JournalCredits)},
		{"Net Balance", utils.FormatINR(s.NetBalance)},
	}
	for _, line := range summary {
		pdf.CellFormat(60, 6, line[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, line[1], "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render ledger PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// DayBookPDF renders the day book with running balances.
func DayBookPDF(entries []domain.DayBookEntry) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Day Book", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	cols := []struct {
		title string
		width float64
	}{
		{"Date", 24},
		{"Description", 60},
		{"Purpose", 30},
		{"Debit", 25},
		{"Credit", 25},
		{"Balance", 26},
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range cols {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, entry := range entries {
		cells := []struct {
			text  string
			align string
		}{
			{entry.Date.Format(dateLayout), "L"},
			{entry.Description, "L"},
			{entry.Purpose, "L"},
			{utils.FormatINR(entry.Debit), "R"},
			{utils.FormatINR(entry.Credit), "R"},
			{utils.FormatINR(entry.Balance), "R"},
		}
		for i, cell := range cells {
			pdf.CellFormat(cols[i].width, 6, cell.text, "1", 0, cell.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render day book PDF: %w", err)
	}
	return buf.Bytes(), nil
}
