package google

import "testing"

func TestParseBudgetRows(t *testing.T) {
	values := [][]interface{}{
		{"Food", "$500.00", "$120.00"},
		{"Rent", 1000.0, 950.0}, // numeric cells come back as float64
		{"", "$10.00", "$0.00"}, // blank category rows are skipped
		{"Fun", "$200.00"},      // missing spent cell
	}
	rows := parseBudgetRows(values)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].Category != "Food" || rows[0].Budgeted != "$500.00" || rows[0].Spent != "$120.00" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Budgeted != "1000" {
		t.Errorf("numeric budgeted cell: got %q", rows[1].Budgeted)
	}
	if rows[2].Category != "Fun" || rows[2].Spent != "" {
		t.Errorf("short row: %+v", rows[2])
	}
}

func TestParseBudgetRowsKeepsSheetOrder(t *testing.T) {
	values := [][]interface{}{
		{"Zeta", "1", "0"},
		{"Alpha", "1", "0"},
		{"Mid", "1", "0"},
	}
	rows := parseBudgetRows(values)
	want := []string{"Zeta", "Alpha", "Mid"}
	for i, w := range want {
		if rows[i].Category != w {
			t.Fatalf("row %d: got %q, want %q", i, rows[i].Category, w)
		}
	}
}

func TestParseTransactionRows(t *testing.T) {
	values := [][]interface{}{
		{"2026-08-01", "Food", "groceries", "$45.90"},
		{"2026-08-02", "Rent", "august rent", 950.0},
		{"2026-08-03", "Fun", "cinema", "n/a"}, // bad amount kept at zero
		{"", "", "", ""},                       // fully empty row dropped
	}
	txs := parseTransactionRows(values)
	if len(txs) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txs))
	}
	if txs[0].Amount != 45.90 {
		t.Errorf("amount: got %v", txs[0].Amount)
	}
	if txs[1].Amount != 950 {
		t.Errorf("numeric amount: got %v", txs[1].Amount)
	}
	if txs[2].Amount != 0 {
		t.Errorf("unparsable amount should stay zero, got %v", txs[2].Amount)
	}
}
