package sheets

import (
	"context"

	"finanzas/internal/core"
)

// Ports for outbound adapters. Every call is a fresh remote round trip; the
// gateway keeps no state between them.
type (
	BudgetReader interface {
		// ReadBudget returns the whole budget sheet in row order, header
		// excluded. No pagination; small sheets by assumption.
		ReadBudget(ctx context.Context) ([]core.BudgetRow, error)
	}

	TransactionReader interface {
		// ReadTransactions returns the transaction log in insertion order.
		ReadTransactions(ctx context.Context) ([]core.Transaction, error)
	}

	// ExpenseUpdater overwrites the spent cell of the first row whose
	// category matches exactly (case-sensitive). Returns false and performs
	// no write when no row matches.
	ExpenseUpdater interface {
		UpdateExpense(ctx context.Context, category string, amount float64) (bool, error)
	}

	// TransactionAppender appends exactly one row to the transaction sheet.
	// No field validation, no duplicate detection.
	TransactionAppender interface {
		AppendTransaction(ctx context.Context, tx core.Transaction) error
	}

	CategoryLister interface {
		// ListCategories returns the category column in budget-sheet order.
		ListCategories(ctx context.Context) ([]string, error)
	}
)
