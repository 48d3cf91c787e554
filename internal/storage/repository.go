// Package storage is the SQLite offline buffer: the dashboard keeps working
// against a local mirror while the sync worker drains appended transactions
// to the spreadsheet.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"finanzas/internal/core"
	ports "finanzas/internal/sheets"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

var (
	_ ports.BudgetReader        = (*SQLiteRepository)(nil)
	_ ports.TransactionReader   = (*SQLiteRepository)(nil)
	_ ports.ExpenseUpdater      = (*SQLiteRepository)(nil)
	_ ports.TransactionAppender = (*SQLiteRepository)(nil)
	_ ports.CategoryLister      = (*SQLiteRepository)(nil)
)

// PendingTransaction is the minimal row handed to the sync queue. CreatedAt
// stays the raw SQLite text timestamp; the worker only logs it.
type PendingTransaction struct {
	ID        int64
	CreatedAt string
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ReadBudget implements sheets.BudgetReader, preserving the seeded order.
func (r *SQLiteRepository) ReadBudget(ctx context.Context) ([]core.BudgetRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, budgeted, spent FROM budget ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query budget: %w", err)
	}
	defer rows.Close()

	var out []core.BudgetRow
	for rows.Next() {
		var b core.BudgetRow
		if err := rows.Scan(&b.Category, &b.Budgeted, &b.Spent); err != nil {
			return nil, fmt.Errorf("scan budget row: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ReadTransactions implements sheets.TransactionReader in insertion order.
func (r *SQLiteRepository) ReadTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, category, description, amount FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var tx core.Transaction
		if err := rows.Scan(&tx.Date, &tx.Category, &tx.Description, &tx.Amount); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}

// UpdateExpense implements sheets.ExpenseUpdater. Categories are unique in
// the local mirror, so the single-row UPDATE matches the sheet's
// first-match-wins contract.
func (r *SQLiteRepository) UpdateExpense(ctx context.Context, category string, amount float64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE budget SET spent = ? WHERE category = ?`,
		core.FormatCurrency(amount), category)
	if err != nil {
		return false, fmt.Errorf("update spent: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return false, nil
	}
	slog.InfoContext(ctx, "Spent updated in SQLite", "category", category, "amount", amount)
	return true, nil
}

// AppendTransaction implements sheets.TransactionAppender. The row starts
// unsynced; CreateTransaction exposes the id for callers that publish it.
func (r *SQLiteRepository) AppendTransaction(ctx context.Context, tx core.Transaction) error {
	_, err := r.CreateTransaction(ctx, tx)
	return err
}

// CreateTransaction inserts one pending transaction and returns its id.
func (r *SQLiteRepository) CreateTransaction(ctx context.Context, tx core.Transaction) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (date, category, description, amount) VALUES (?, ?, ?, ?)`,
		tx.Date, tx.Category, tx.Description, tx.Amount)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", id, "category", tx.Category, "amount", tx.Amount)
	return id, nil
}

// ListCategories implements sheets.CategoryLister.
func (r *SQLiteRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category FROM budget ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetTransaction retrieves one transaction by id for sync.
func (r *SQLiteRepository) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	var tx core.Transaction
	err := r.db.QueryRowContext(ctx,
		`SELECT date, category, description, amount FROM transactions WHERE id = ?`, id).
		Scan(&tx.Date, &tx.Category, &tx.Description, &tx.Amount)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction %d: %w", id, err)
	}
	return tx, nil
}

// GetPendingTransactions returns unsynced transactions, oldest first.
func (r *SQLiteRepository) GetPendingTransactions(ctx context.Context, limit int) ([]PendingTransaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at FROM transactions WHERE synced = 0 ORDER BY id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query pending transactions: %w", err)
	}
	defer rows.Close()

	var out []PendingTransaction
	for rows.Next() {
		var p PendingTransaction
		if err := rows.Scan(&p.ID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pending transaction: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// MarkSynced marks a transaction as successfully written to the sheet.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET synced = 1, sync_error = 0 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("mark synced: %w", err)
	}
	slog.InfoContext(ctx, "Transaction marked as synced", "id", id)
	return nil
}

// MarkSyncError flags a transaction whose sheet append failed.
func (r *SQLiteRepository) MarkSyncError(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET sync_error = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("mark sync error: %w", err)
	}
	slog.WarnContext(ctx, "Transaction marked with sync error", "id", id)
	return nil
}
