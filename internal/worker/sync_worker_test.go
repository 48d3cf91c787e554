package worker

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"finanzas/internal/amqp"
	"finanzas/internal/core"
	"finanzas/internal/sheets/memory"
	"finanzas/internal/storage"
)

func newWorker(t *testing.T) (*SyncWorker, *storage.SQLiteRepository, *memory.Store) {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "worker.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	sheet := memory.New(nil)
	return NewSyncWorker(repo, sheet, 10), repo, sheet
}

func TestHandleSyncMessage(t *testing.T) {
	w, repo, sheet := newWorker(t)
	ctx := context.Background()

	id, err := repo.CreateTransaction(ctx, core.Transaction{
		Date: "2026-08-29", Category: "Food", Description: "lunch", Amount: 12.5,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := w.HandleSyncMessage(ctx, amqp.NewTransactionSyncMessage(id)); err != nil {
		t.Fatalf("handle: %v", err)
	}

	txs, _ := sheet.ReadTransactions(ctx)
	if len(txs) != 1 || txs[0].Description != "lunch" {
		t.Fatalf("transaction not pushed to sheet: %+v", txs)
	}
	pending, _ := repo.GetPendingTransactions(ctx, 10)
	if len(pending) != 0 {
		t.Errorf("transaction still pending after sync: %+v", pending)
	}
}

func TestHandleSyncMessageUnknownID(t *testing.T) {
	w, _, sheet := newWorker(t)
	err := w.HandleSyncMessage(context.Background(), amqp.NewTransactionSyncMessage(999))
	if err == nil {
		t.Fatal("expected error for unknown transaction id")
	}
	txs, _ := sheet.ReadTransactions(context.Background())
	if len(txs) != 0 {
		t.Errorf("nothing should have been appended: %+v", txs)
	}
}

func TestProcessPendingDrainsBacklog(t *testing.T) {
	w, repo, sheet := newWorker(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := repo.CreateTransaction(ctx, core.Transaction{
			Date: "2026-08-29", Category: "Food", Amount: float64(i + 1),
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	if err := w.ProcessPending(ctx); err != nil {
		t.Fatalf("process pending: %v", err)
	}

	txs, _ := sheet.ReadTransactions(ctx)
	if len(txs) != 3 {
		t.Fatalf("expected 3 synced transactions, got %d", len(txs))
	}
	pending, _ := repo.GetPendingTransactions(ctx, 10)
	if len(pending) != 0 {
		t.Errorf("backlog not drained: %+v", pending)
	}
}

type failingAppender struct{}

func (failingAppender) AppendTransaction(context.Context, core.Transaction) error {
	return errors.New("sheet unavailable")
}

func TestSyncFailureMarksErrorAndKeepsPending(t *testing.T) {
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "worker.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	defer repo.Close()
	w := NewSyncWorker(repo, failingAppender{}, 10)
	ctx := context.Background()

	id, _ := repo.CreateTransaction(ctx, core.Transaction{Date: "2026-08-29", Category: "Food", Amount: 1})
	if err := w.HandleSyncMessage(ctx, amqp.NewTransactionSyncMessage(id)); err == nil {
		t.Fatal("expected append failure to surface")
	}

	pending, _ := repo.GetPendingTransactions(ctx, 10)
	if len(pending) != 1 {
		t.Errorf("failed transaction must stay pending: %+v", pending)
	}
}

func TestStartupSyncCheckEmpty(t *testing.T) {
	w, _, _ := newWorker(t)
	if err := w.StartupSyncCheck(context.Background()); err != nil {
		t.Fatalf("startup check on empty db: %v", err)
	}
}
