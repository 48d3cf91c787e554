// Package memory is the in-process gateway used for local development and as
// the test double for the HTTP layer.
package memory

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"finanzas/internal/core"
	ports "finanzas/internal/sheets"
)

type Store struct {
	mu     sync.Mutex
	budget []core.BudgetRow
	txs    []core.Transaction
}

var (
	_ ports.BudgetReader        = (*Store)(nil)
	_ ports.TransactionReader   = (*Store)(nil)
	_ ports.ExpenseUpdater      = (*Store)(nil)
	_ ports.TransactionAppender = (*Store)(nil)
	_ ports.CategoryLister      = (*Store)(nil)
)

func New(budget []core.BudgetRow) *Store {
	return &Store{budget: budget}
}

// NewFromFiles seeds the budget from <base>/seed_budget.txt, one row per line
// as "Category;Budgeted;Spent". Falls back to a small default budget when the
// file is missing or empty.
func NewFromFiles(base string) *Store {
	rows := readBudgetLines(filepath.Join(base, "seed_budget.txt"))
	if len(rows) == 0 {
		rows = []core.BudgetRow{
			{Category: "Housing", Budgeted: "$1,500.00", Spent: "$0.00"},
			{Category: "Food", Budgeted: "$600.00", Spent: "$0.00"},
			{Category: "Transport", Budgeted: "$200.00", Spent: "$0.00"},
			{Category: "Leisure", Budgeted: "$150.00", Spent: "$0.00"},
		}
	}
	return New(rows)
}

func (s *Store) ReadBudget(_ context.Context) ([]core.BudgetRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.BudgetRow(nil), s.budget...), nil
}

func (s *Store) ReadTransactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.txs...), nil
}

// UpdateExpense overwrites the spent value of the first exact category match.
func (s *Store) UpdateExpense(_ context.Context, category string, amount float64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.budget {
		if s.budget[i].Category == category {
			s.budget[i].Spent = core.FormatCurrency(amount)
			return true, nil
		}
	}
	return false, nil
}

// AppendTransaction stores the transaction in insertion order.
func (s *Store) AppendTransaction(_ context.Context, tx core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, tx)
	return nil
}

func (s *Store) ListCategories(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.budget))
	for _, r := range s.budget {
		out = append(out, r.Category)
	}
	return out, nil
}

func readBudgetLines(path string) []core.BudgetRow {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	var out []core.BudgetRow
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, ";", 3)
		row := core.BudgetRow{Category: strings.TrimSpace(parts[0])}
		if row.Category == "" {
			continue
		}
		if len(parts) > 1 {
			row.Budgeted = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			row.Spent = strings.TrimSpace(parts[2])
		}
		out = append(out, row)
	}
	return out
}
