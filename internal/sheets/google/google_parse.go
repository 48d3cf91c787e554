package google

import (
	"fmt"
	"strings"

	"finanzas/internal/core"
)

// cellString renders one cell of a values matrix as a trimmed string. The
// Sheets API returns cells as any (string or float64 depending on formatting).
func cellString(row []interface{}, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[idx]))
}

// parseBudgetRows converts a values matrix (header already excluded) into
// budget rows, preserving sheet order. Budgeted and Spent stay strings; the
// calculator owns their interpretation.
func parseBudgetRows(values [][]interface{}) []core.BudgetRow {
	var out []core.BudgetRow
	for _, row := range values {
		r := core.BudgetRow{
			Category: cellString(row, 0),
			Budgeted: cellString(row, 1),
			Spent:    cellString(row, 2),
		}
		if r.Category == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}

// parseTransactionRows converts a values matrix into transactions, insertion
// order preserved. Amount parsing is best effort: an unparsable cell leaves
// the amount at zero rather than dropping the row from the history.
func parseTransactionRows(values [][]interface{}) []core.Transaction {
	var out []core.Transaction
	for _, row := range values {
		tx := core.Transaction{
			Date:        cellString(row, 0),
			Category:    cellString(row, 1),
			Description: cellString(row, 2),
		}
		if amt, err := core.ParseAmount(cellString(row, 3)); err == nil {
			tx.Amount = amt
		}
		if tx.Date == "" && tx.Category == "" && tx.Description == "" {
			continue
		}
		out = append(out, tx)
	}
	return out
}
