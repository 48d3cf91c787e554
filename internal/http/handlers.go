package http

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"finanzas/internal/core"
	"finanzas/internal/export"
)

type (
	budgetRowView struct {
		Category    string
		Budgeted    string
		Spent       string
		Available   string
		Negative    bool
		StatusIcon  string
		StatusLabel string
	}

	summaryView struct {
		Budgeted  string
		Spent     string
		Available string
		Negative  bool
	}

	overviewView struct {
		Rows         []budgetRowView
		Summary      summaryView
		Transactions []core.Transaction
	}
)

// buildOverview re-reads both sheets and derives the per-category view. No
// caching: the sheet is the single source of truth and sheets are small.
func (s *Server) buildOverview(ctx context.Context) (overviewView, error) {
	rows, err := s.budget.ReadBudget(ctx)
	if err != nil {
		return overviewView{}, fmt.Errorf("read budget: %w", err)
	}

	var ov overviewView
	for _, r := range rows {
		available := core.CalculateAvailable(r.Budgeted, r.Spent)
		status := core.StatusFor(available)
		ov.Rows = append(ov.Rows, budgetRowView{
			Category:    r.Category,
			Budgeted:    r.Budgeted,
			Spent:       r.Spent,
			Available:   core.FormatCurrency(available),
			Negative:    available < 0,
			StatusIcon:  status.Icon(),
			StatusLabel: status.Label(),
		})
	}

	sum := core.Summarize(rows)
	ov.Summary = summaryView{
		Budgeted:  core.FormatCurrency(sum.TotalBudgeted),
		Spent:     core.FormatCurrency(sum.TotalSpent),
		Available: core.FormatCurrency(sum.TotalAvailable),
		Negative:  sum.TotalAvailable < 0,
	}

	txs, err := s.txs.ReadTransactions(ctx)
	if err != nil {
		return overviewView{}, fmt.Errorf("read transactions: %w", err)
	}
	ov.Transactions = txs

	return ov, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	cats, err := s.categories.ListCategories(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Category list error", "error", err)
	}
	ov, err := s.buildOverview(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Overview error", "error", err)
	}

	data := struct {
		Today      string
		Categories []string
		Overview   overviewView
	}{
		Today:      time.Now().Format("2006-01-02"),
		Categories: cats,
		Overview:   ov,
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleBudgetOverview renders the budget table partial.
func (s *Server) handleBudgetOverview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	ov, err := s.buildOverview(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Budget overview error", "error", err)
		_, _ = w.Write([]byte(`<section id="budget-overview" class="budget-overview"><div class="placeholder">Error loading budget</div></section>`))
		return
	}
	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="budget-overview" class="budget-overview"><div class="placeholder">Total available: ` + template.HTMLEscapeString(ov.Summary.Available) + `</div></section>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "budget_overview.html", ov); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "budget_overview.html")
		_, _ = w.Write([]byte(`<section id="budget-overview" class="budget-overview"><div class="placeholder">Error rendering budget</div></section>`))
	}
}

// handleUpdateExpense overwrites the spent amount of one category.
func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid request format</div>`))
		return
	}

	category := sanitizeInput(r.Form.Get("category"))
	amountStr := sanitizeInput(r.Form.Get("amount"))

	amount, err := core.ParseAmount(amountStr)
	if err != nil || amount < 0 {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid amount</div>`))
		return
	}
	if category == "" {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Choose a category</div>`))
		return
	}

	found, err := s.updater.UpdateExpense(r.Context(), category, amount)
	if err != nil {
		slog.ErrorContext(r.Context(), "Update expense error", "error", err, "category", category)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Error saving the expense</div>`))
		return
	}
	if !found {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`<div class="error">Category not found: ` + template.HTMLEscapeString(category) + `</div>`))
		return
	}

	w.Header().Set("HX-Trigger", "budget:updated")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">Spent updated for ` +
		template.HTMLEscapeString(category) + `: ` +
		template.HTMLEscapeString(core.FormatCurrency(amount)) + `</div>`))
}

// handleAddTransaction appends one entry to the transaction log.
func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid request format</div>`))
		return
	}

	date := sanitizeInput(r.Form.Get("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	category := sanitizeInput(r.Form.Get("category"))
	description := sanitizeInput(r.Form.Get("description"))
	amountStr := sanitizeInput(r.Form.Get("amount"))

	amount, err := core.ParseAmount(amountStr)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid amount</div>`))
		return
	}

	tx := core.Transaction{
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      amount,
	}
	if err := tx.Validate(); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid data: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	if err := s.appender.AppendTransaction(r.Context(), tx); err != nil {
		slog.ErrorContext(r.Context(), "Transaction append error", "error", err, "category", tx.Category, "amount", tx.Amount)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Error saving the transaction</div>`))
		return
	}

	w.Header().Set("HX-Trigger", "budget:updated")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">Transaction recorded: ` +
		template.HTMLEscapeString(tx.Description) + `, ` +
		template.HTMLEscapeString(core.FormatCurrency(tx.Amount)) + ` (` +
		template.HTMLEscapeString(tx.Category) + `)</div>`))
}

// handleExport streams the current dashboard state as an XLSX download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.budget.ReadBudget(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Export budget read error", "error", err)
		http.Error(w, "error reading budget", http.StatusInternalServerError)
		return
	}
	txs, err := s.txs.ReadTransactions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Export transactions read error", "error", err)
		http.Error(w, "error reading transactions", http.StatusInternalServerError)
		return
	}

	f, err := export.Workbook(rows, txs)
	if err != nil {
		slog.ErrorContext(r.Context(), "Export workbook error", "error", err)
		http.Error(w, "error building workbook", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	filename := "finanzas-" + time.Now().Format("2006-01-02") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(w); err != nil {
		slog.ErrorContext(r.Context(), "Export write error", "error", err)
	}
}
