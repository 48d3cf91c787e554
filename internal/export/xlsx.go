// Package export builds the downloadable workbook snapshot of the dashboard.
package export

import (
	"fmt"

	"finanzas/internal/core"

	"github.com/xuri/excelize/v2"
)

// Workbook renders the budget and transaction data into an XLSX file with one
// sheet per source sheet. The caller owns closing the returned file.
func Workbook(budget []core.BudgetRow, txs []core.Transaction) (*excelize.File, error) {
	f := excelize.NewFile()

	f.SetSheetName("Sheet1", "Budget")
	if _, err := f.NewSheet("Transactions"); err != nil {
		f.Close()
		return nil, fmt.Errorf("create transactions sheet: %w", err)
	}

	if err := writeBudgetSheet(f, budget); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeTransactionsSheet(f, txs); err != nil {
		f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeBudgetSheet(f *excelize.File, budget []core.BudgetRow) error {
	const sheet = "Budget"

	headers := []string{"Category", "Budgeted", "Spent", "Available", "Status"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("write budget header: %w", err)
		}
	}

	for i, row := range budget {
		available := core.CalculateAvailable(row.Budgeted, row.Spent)
		status := core.StatusFor(available)
		values := []interface{}{
			row.Category,
			row.Budgeted,
			row.Spent,
			core.FormatCurrency(available),
			status.Label(),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write budget row %d: %w", i+2, err)
			}
		}
	}

	return styleSheet(f, sheet, len(headers))
}

func writeTransactionsSheet(f *excelize.File, txs []core.Transaction) error {
	const sheet = "Transactions"

	headers := []string{"Date", "Category", "Description", "Amount"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("write transactions header: %w", err)
		}
	}

	for i, tx := range txs {
		values := []interface{}{tx.Date, tx.Category, tx.Description, tx.Amount}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write transaction row %d: %w", i+2, err)
			}
		}
	}

	return styleSheet(f, sheet, len(headers))
}

func styleSheet(f *excelize.File, sheet string, cols int) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2E86C1"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(cols, 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	for i := 0; i < cols; i++ {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, 18); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}
	return nil
}
