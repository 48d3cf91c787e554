package export

import (
	"testing"

	"finanzas/internal/core"
)

func TestWorkbook(t *testing.T) {
	budget := []core.BudgetRow{
		{Category: "Food", Budgeted: "$500.00", Spent: "$120.00"},
		{Category: "Rent", Budgeted: "$1,000.00", Spent: "$1,200.00"},
	}
	txs := []core.Transaction{
		{Date: "2026-08-29", Category: "Food", Description: "lunch", Amount: 12.5},
	}

	f, err := Workbook(budget, txs)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Budget" || sheets[1] != "Transactions" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	got, err := f.GetCellValue("Budget", "A2")
	if err != nil || got != "Food" {
		t.Errorf("Budget!A2 = %q, err=%v", got, err)
	}
	if got, _ := f.GetCellValue("Budget", "D2"); got != "$380.00" {
		t.Errorf("available column: %q", got)
	}
	if got, _ := f.GetCellValue("Budget", "E3"); got != "Over budget" {
		t.Errorf("status column: %q", got)
	}
	if got, _ := f.GetCellValue("Transactions", "C2"); got != "lunch" {
		t.Errorf("Transactions!C2 = %q", got)
	}
}

func TestWorkbookEmpty(t *testing.T) {
	f, err := Workbook(nil, nil)
	if err != nil {
		t.Fatalf("build empty workbook: %v", err)
	}
	defer f.Close()
	if got, _ := f.GetCellValue("Budget", "A1"); got != "Category" {
		t.Errorf("header row: %q", got)
	}
}
