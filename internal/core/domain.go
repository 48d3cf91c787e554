package core

import (
	"errors"
	"strings"
)

type (
	// BudgetRow mirrors one row of the budget sheet. Budgeted and Spent keep
	// the currency strings exactly as stored in the sheet; arithmetic on them
	// happens in the calculator.
	BudgetRow struct {
		Category string
		Budgeted string
		Spent    string
	}

	// Transaction is one append-only entry of the transactions sheet.
	Transaction struct {
		Date        string
		Category    string
		Description string
		Amount      float64
	}
)

var (
	ErrEmptyCategory    = errors.New("empty category")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrDescriptionLimit = errors.New("description too long (max 200 characters)")
)

// Validate checks a transaction as entered through the UI. The gateways
// themselves append whatever they are given; validation belongs to the edge.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if len(t.Description) > 200 {
		return ErrDescriptionLimit
	}
	return nil
}
