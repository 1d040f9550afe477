// Package export renders the ledger and day book read models to Excel and
// PDF. Renderers only format what the services computed; they never
// re-derive debits, credits or balances.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils"
)

const dateLayout = "02-01-2006"

// LedgerExcel renders the ledger as one flat sheet, one row per ledger row
// (items exploded). Every row carries its running balance.
func LedgerExcel(ledger *domain.CustomerLedger) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Ledger"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Type", "Particulars", "Reference", "Item", "Qty", "Rate", "Debit", "Credit", "Balance"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write ledger header: %w", err)
		}
	}

	rowNum := 2
	for _, row := range ledger.Rows {
		date := ""
		reference := ""
		if row.ShowHeader {
			if !row.Date.IsZero() {
				date = row.Date.Format(dateLayout)
			}
			reference = row.Reference
		}

		values := []interface{}{date, string(row.Kind), row.Label, reference}
		if row.Item != nil {
			values = append(values, row.Item.ProductName, row.Item.Quantity.String(), row.Item.Price.String())
		} else {
			values = append(values, "", "", "")
		}
		values = append(values,
			utils.FormatINR(row.Debit),
			utils.FormatINR(row.Credit),
			utils.FormatINR(row.Balance),
		)

		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write ledger row: %w", err)
			}
		}
		rowNum++
	}

	writeLedgerSummary(f, sheet, ledger, rowNum+1)
	return f, nil
}

// LedgerExcelGrouped renders the ledger grouped by source document: a
// document header row followed by its item rows, matching the statement
// layout customers receive.
func LedgerExcelGrouped(ledger *domain.CustomerLedger) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Statement"
	f.SetSheetName("Sheet1", sheet)

	if ledger.Customer != nil {
		f.SetCellValue(sheet, "A1", ledger.Customer.Name)
		f.SetCellValue(sheet, "A2", ledger.Customer.Address)
	}

	headers := []string{"Date", "Particulars", "Reference", "Debit", "Credit", "Balance"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write statement header: %w", err)
		}
	}

	rowNum := 5
	for _, row := range ledger.Rows {
		if row.ShowHeader {
			date := ""
			if !row.Date.IsZero() {
				date = row.Date.Format(dateLayout)
			}
			f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), date)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), row.Label)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), row.Reference)
		}

		particulars := ""
		if row.Item != nil {
			particulars = fmt.Sprintf("  %s (%s x %s)", row.Item.ProductName, row.Item.Quantity.String(), row.Item.Price.String())
			if !row.ShowHeader {
				f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), particulars)
			} else {
				rowNum++
				f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), particulars)
			}
		}

		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), utils.FormatINR(row.Debit))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), utils.FormatINR(row.Credit))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), utils.FormatINR(row.Balance))
		rowNum++
	}

	writeLedgerSummary(f, sheet, ledger, rowNum+1)
	return f, nil
}

func writeLedgerSummary(f *excelize.File, sheet string, ledger *domain.CustomerLedger, startRow int) {
	s := ledger.Summary
	lines := [][2]string{
		{"Total Invoiced", utils.FormatINR(s.TotalInvoiced)},
		{"Total Credited", utils.FormatINR(s.TotalCredited)},
		{"Total Paid", utils.FormatINR(s.TotalPaid)},
		{"Journal Debits", utils.FormatINR(s.JournalDebits)},
		{"Journal Credits", utils.FormatINR(s.JournalCredits)},
		{"Net Balance", utils.FormatINR(s.NetBalance)},
	}
	for i, line := range lines {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", startRow+i), line[0])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", startRow+i), line[1])
	}
}

// DayBookExcel renders all day book entries with their running balances.
func DayBookExcel(entries []domain.DayBookEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "DayBook"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Description", "Purpose", "Debit", "Credit", "Balance"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write day book header: %w", err)
		}
	}

	for i, entry := range entries {
		rowNum := i + 2
		values := []interface{}{
			entry.Date.Format(dateLayout),
			entry.Description,
			entry.Purpose,
			utils.FormatINR(entry.Debit),
			utils.FormatINR(entry.Credit),
			utils.FormatINR(entry.Balance),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, rowNum)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write day book row: %w", err)
			}
		}
	}
	return f, nil
}
