package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bratus/pavadzimes/internal/domain"
)

func tempLedger(t *testing.T) *Ledger {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "history.json"))
}

func entry(id, client, total string) domain.HistoryEntry {
	return domain.HistoryEntry{
		DocumentID: id,
		IssueDate:  "09.01.2026",
		ClientName: client,
		Kind:       domain.KindInvoice,
		Total:      total,
		CreatedAt:  time.Now(),
	}
}

func TestLedgerEmpty(t *testing.T) {
	l := tempLedger(t)

	entries, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty ledger, got %d entries", len(entries))
	}
	if n := l.NextNumber(); n != DefaultStartNumber {
		t.Errorf("NextNumber on empty ledger = %d, want %d", n, DefaultStartNumber)
	}
}

func TestLedgerUpsertReplaces(t *testing.T) {
	l := tempLedger(t)

	if err := l.Upsert(entry("BR 0049", "First klients", "100,00")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := l.Upsert(entry("BR 0049", "Second klients", "200,00")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	entries, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after upsert of same ID, got %d", len(entries))
	}
	if entries[0].ClientName != "Second klients" || entries[0].Total != "200,00" {
		t.Errorf("upsert kept stale fields: %+v", entries[0])
	}
}

func TestLedgerNextNumber(t *testing.T) {
	l := tempLedger(t)

	for _, id := range []string{"BR 0049", "BR 0051", "BR 0050"} {
		if err := l.Upsert(entry(id, "k", "1,00")); err != nil {
			t.Fatalf("Upsert(%s): %v", id, err)
		}
	}

	if n := l.NextNumber(); n != 52 {
		t.Errorf("NextNumber = %d, want 52", n)
	}
}

func TestLedgerMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	l := New(path)
	entries, err := l.Load()
	if err != nil {
		t.Fatalf("Load on malformed file must not error, got %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("malformed file should read as empty, got %d entries", len(entries))
	}
	if n := l.NextNumber(); n != DefaultStartNumber {
		t.Errorf("NextNumber = %d, want %d", n, DefaultStartNumber)
	}

	// The next write recovers the file.
	if err := l.Upsert(entry("BR 0049", "k", "1,00")); err != nil {
		t.Fatalf("Upsert after malformed load: %v", err)
	}
	entries, _ = l.Load()
	if len(entries) != 1 {
		t.Fatalf("expected recovered ledger with 1 entry, got %d", len(entries))
	}
}

func TestLedgerClear(t *testing.T) {
	l := tempLedger(t)
	if err := l.Upsert(entry("BR 0049", "k", "1,00")); err != nil {
		t.Fatal(err)
	}
	if err := l.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	entries, _ := l.Load()
	if len(entries) != 0 {
		t.Fatalf("expected cleared ledger, got %d entries", len(entries))
	}
}
