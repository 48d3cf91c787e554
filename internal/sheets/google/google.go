// Package google implements the spreadsheet gateway on the Google Sheets API.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"finanzas/internal/core"
	ports "finanzas/internal/sheets"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

type Client struct {
	svc               *gsheet.Service
	spreadsheetID     string
	budgetSheet       string
	transactionsSheet string
}

// Ensure interface conformance
var (
	_ ports.BudgetReader        = (*Client)(nil)
	_ ports.TransactionReader   = (*Client)(nil)
	_ ports.ExpenseUpdater      = (*Client)(nil)
	_ ports.TransactionAppender = (*Client)(nil)
	_ ports.CategoryLister      = (*Client)(nil)
)

// NewFromEnv creates a Sheets client from environment variables.
// Required: SPREADSHEET_ID plus service-account credentials
// (GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE or
// GOOGLE_APPLICATION_CREDENTIALS).
// Optional sheet names: BUDGET_SHEET_NAME (default "Budget"),
// TRANSACTIONS_SHEET_NAME (default "Transactions").
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing SPREADSHEET_ID")
	}

	budget := strings.TrimSpace(os.Getenv("BUDGET_SHEET_NAME"))
	if budget == "" {
		budget = "Budget"
	}
	transactions := strings.TrimSpace(os.Getenv("TRANSACTIONS_SHEET_NAME"))
	if transactions == "" {
		transactions = "Transactions"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:               svc,
		spreadsheetID:     spreadsheetID,
		budgetSheet:       budget,
		transactionsSheet: transactions,
	}, nil
}

// newSheetsService initializes a Sheets Service using Service Account
// credentials from GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE
// or GOOGLE_APPLICATION_CREDENTIALS.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// ReadBudget loads the whole budget sheet, header excluded.
func (c *Client) ReadBudget(ctx context.Context) ([]core.BudgetRow, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}
	rng := fmt.Sprintf("%s!A2:C", c.budgetSheet)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	return parseBudgetRows(resp.Values), nil
}

// ReadTransactions loads the transaction log in sheet order.
func (c *Client) ReadTransactions(ctx context.Context) ([]core.Transaction, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}
	rng := fmt.Sprintf("%s!A2:D", c.transactionsSheet)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	return parseTransactionRows(resp.Values), nil
}

// UpdateExpense overwrites the spent cell (column C) of the first row whose
// category column equals category. The match is exact and case-sensitive;
// a miss is reported as (false, nil) with no write issued.
func (c *Client) UpdateExpense(ctx context.Context, category string, amount float64) (bool, error) {
	if c.svc == nil {
		return false, errors.New("sheets service not initialized")
	}
	rng := fmt.Sprintf("%s!A:A", c.budgetSheet)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("read %s: %w", rng, err)
	}

	// Row 1 is the header; first match wins.
	rowIndex := -1
	for i := 1; i < len(resp.Values); i++ {
		if cellString(resp.Values[i], 0) == category {
			rowIndex = i + 1 // sheet rows are 1-based
			break
		}
	}
	if rowIndex == -1 {
		slog.InfoContext(ctx, "Category not found in budget sheet", "category", category)
		return false, nil
	}

	cell := fmt.Sprintf("%s!C%d", c.budgetSheet, rowIndex)
	vr := &gsheet.ValueRange{Values: [][]any{{amount}}}
	_, err = c.svc.Spreadsheets.Values.Update(c.spreadsheetID, cell, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("update %s: %w", cell, err)
	}
	slog.InfoContext(ctx, "Spent cell updated", "category", category, "row", rowIndex, "amount", amount)
	return true, nil
}

// AppendTransaction appends one row to the transactions sheet.
func (c *Client) AppendTransaction(ctx context.Context, tx core.Transaction) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}
	rng := fmt.Sprintf("%s!A:D", c.transactionsSheet)
	vr := &gsheet.ValueRange{Values: [][]any{{tx.Date, tx.Category, tx.Description, tx.Amount}}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to %s: %w", rng, err)
	}
	slog.InfoContext(ctx, "Transaction appended", "category", tx.Category, "amount", tx.Amount)
	return nil
}

// ListCategories returns the category column in sheet order.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}
	rng := fmt.Sprintf("%s!A2:A", c.budgetSheet)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	var out []string
	for _, row := range resp.Values {
		v := cellString(row, 0)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}
