package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8081" {
		t.Errorf("default port: %q", cfg.Port)
	}
	if cfg.DataBackend != "memory" {
		t.Errorf("default backend: %q", cfg.DataBackend)
	}
	if cfg.BudgetSheetName != "Budget" || cfg.TransactionsSheetName != "Transactions" {
		t.Errorf("default sheet names: %q / %q", cfg.BudgetSheetName, cfg.TransactionsSheetName)
	}
	if cfg.SyncInterval != 30*time.Second {
		t.Errorf("default sync interval: %v", cfg.SyncInterval)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("BUDGET_SHEET_NAME", "Presupuesto")
	t.Setenv("SYNC_INTERVAL", "2m")
	t.Setenv("SYNC_BATCH_SIZE", "25")

	cfg := Load()
	if cfg.Port != "9000" || cfg.DataBackend != "sqlite" {
		t.Errorf("env override: %+v", cfg)
	}
	if cfg.BudgetSheetName != "Presupuesto" {
		t.Errorf("sheet name override: %q", cfg.BudgetSheetName)
	}
	if cfg.SyncInterval != 2*time.Minute || cfg.SyncBatchSize != 25 {
		t.Errorf("worker config: interval=%v batch=%d", cfg.SyncInterval, cfg.SyncBatchSize)
	}
}

func TestValidateAccumulatesErrors(t *testing.T) {
	cfg := Load()
	cfg.Port = "nope"
	cfg.DataBackend = "postgres"
	cfg.SyncBatchSize = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"invalid port", "invalid data backend", "invalid sync batch size"} {
		if !strings.Contains(msg, want) {
			t.Errorf("missing %q in %q", want, msg)
		}
	}
}

func TestValidateSheetsRequiresCredentials(t *testing.T) {
	cfg := Load()
	cfg.DataBackend = "sheets"
	cfg.SpreadsheetID = ""
	cfg.ServiceAccountFile = ""
	cfg.ServiceAccountJSON = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for sheets backend without credentials")
	}
	if !strings.Contains(err.Error(), "SPREADSHEET_ID") {
		t.Errorf("expected spreadsheet id error, got %v", err)
	}
}

func TestValidateOK(t *testing.T) {
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}
