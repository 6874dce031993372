package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bratus/pavadzimes/internal/calc"
	"github.com/bratus/pavadzimes/internal/config"
	"github.com/bratus/pavadzimes/internal/domain"
	"github.com/bratus/pavadzimes/internal/history"
)

type mockUploader struct {
	enabled bool
	err     error
	calls   []string
}

func (m *mockUploader) Enabled() bool { return m.enabled }
func (m *mockUploader) Upload(_ context.Context, name string, _ []byte) error {
	m.calls = append(m.calls, name)
	return m.err
}

func testService(t *testing.T, up *mockUploader) (DocumentService, *config.Config) {
	t.Helper()

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Document.OutputDir = filepath.Join(dir, "documents")
	cfg.Document.HistoryPath = filepath.Join(dir, "history.json")
	cfg.Document.LogoPath = filepath.Join(dir, "no-logo.png")
	cfg.Document.FontDir = filepath.Join(dir, "no-fonts")

	return NewDocumentService(cfg, history.New(cfg.Document.HistoryPath), up), cfg
}

func testInput(kind domain.DocumentKind) GenerateInput {
	return GenerateInput{
		Kind:   kind,
		Client: domain.Client{Name: "SIA Klients", Address: "Rīga", RegNo: "40003000001", VATNo: "LV40003000001"},
		Items: []domain.LineItem{
			{Description: "Būvdarbi", Unit: "gab.", Quantity: "2", UnitPrice: "1500"},
		},
		IssueDate: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildRecordDefaults(t *testing.T) {
	svc, _ := testService(t, &mockUploader{})

	rec, err := svc.BuildRecord(testInput(domain.KindInvoice))
	if err != nil {
		t.Fatalf("BuildRecord: %v", err)
	}

	if rec.DocumentID != "BR 0049" {
		t.Errorf("DocumentID = %q, want BR 0049 on fresh ledger", rec.DocumentID)
	}
	if got := rec.DueDate.Format(domain.DateLayout); got != "23.01.2026" {
		t.Errorf("DueDate = %s, want issue + 14 days", got)
	}
	if rec.Signatory != "SIA Bratus valdes loceklis Adrians Stankevičs" {
		t.Errorf("Signatory = %q", rec.Signatory)
	}
	if rec.Totals.TotalDisplay != "3 630,00" {
		t.Errorf("TotalDisplay = %q", rec.Totals.TotalDisplay)
	}
	if rec.Advance != nil {
		t.Error("plain invoice must not carry an advance payment")
	}
}

func TestBuildRecordNoItems(t *testing.T) {
	svc, _ := testService(t, &mockUploader{})

	input := testInput(domain.KindInvoice)
	input.Items = nil
	if _, err := svc.BuildRecord(input); !errors.Is(err, ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
}

func TestBuildRecordExplicitNumber(t *testing.T) {
	svc, _ := testService(t, &mockUploader{})

	input := testInput(domain.KindDeliveryNote)
	input.Number = 77
	rec, err := svc.BuildRecord(input)
	if err != nil {
		t.Fatal(err)
	}
	if rec.DocumentID != "BR 0077" {
		t.Errorf("DocumentID = %q, want BR 0077", rec.DocumentID)
	}
}

func TestGenerateWritesBothFormatsAndHistory(t *testing.T) {
	up := &mockUploader{}
	svc, _ := testService(t, up)

	res, err := svc.Generate(context.Background(), testInput(domain.KindInvoice))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, fr := range []FormatResult{res.PDF, res.DOCX} {
		if fr.Err != nil {
			t.Fatalf("format failed: %v", fr.Err)
		}
		if _, err := os.Stat(fr.Path); err != nil {
			t.Errorf("output file missing: %v", err)
		}
	}

	entries, err := svc.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("history entries = %d, want 1", len(entries))
	}
	if entries[0].DocumentID != res.Record.DocumentID {
		t.Errorf("history ID = %q, record ID = %q", entries[0].DocumentID, res.Record.DocumentID)
	}

	if len(up.calls) != 0 {
		t.Errorf("disabled uploader was called: %v", up.calls)
	}
}

func TestGenerateNumberingAdvances(t *testing.T) {
	svc, _ := testService(t, &mockUploader{})
	ctx := context.Background()

	first, err := svc.Generate(ctx, testInput(domain.KindInvoice))
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Generate(ctx, testInput(domain.KindInvoice))
	if err != nil {
		t.Fatal(err)
	}

	if first.Record.DocumentID != "BR 0049" || second.Record.DocumentID != "BR 0050" {
		t.Errorf("IDs = %q then %q, want BR 0049 then BR 0050",
			first.Record.DocumentID, second.Record.DocumentID)
	}
}

func TestGenerateSameNumberUpserts(t *testing.T) {
	svc, _ := testService(t, &mockUploader{})
	ctx := context.Background()

	input := testInput(domain.KindInvoice)
	input.Number = 49
	if _, err := svc.Generate(ctx, input); err != nil {
		t.Fatal(err)
	}

	input.Client.Name = "SIA Cits klients"
	if _, err := svc.Generate(ctx, input); err != nil {
		t.Fatal(err)
	}

	entries, _ := svc.History()
	if len(entries) != 1 {
		t.Fatalf("regeneration duplicated history: %d entries", len(entries))
	}
	if entries[0].ClientName != "SIA Cits klients" {
		t.Errorf("history kept stale client %q", entries[0].ClientName)
	}
}

func TestGenerateUploadFailureIsNonFatal(t *testing.T) {
	up := &mockUploader{enabled: true, err: errors.New("network down")}
	svc, _ := testService(t, up)

	res, err := svc.Generate(context.Background(), testInput(domain.KindInvoice))
	if err != nil {
		t.Fatalf("Generate with failing uploader: %v", err)
	}
	if res.PDF.Err != nil || res.DOCX.Err != nil {
		t.Fatal("local formats must survive upload failure")
	}
	if len(up.calls) != 2 {
		t.Errorf("uploader calls = %d, want 2", len(up.calls))
	}

	entries, _ := svc.History()
	if len(entries) != 1 {
		t.Errorf("history entries = %d, want 1 despite upload failure", len(entries))
	}
}

func TestGenerateAdvanceInvoice(t *testing.T) {
	svc, _ := testService(t, &mockUploader{})

	input := testInput(domain.KindAdvanceInvoice)
	input.AdvanceMode = calc.AdvancePercent
	input.AdvanceValue = decimal.NewFromInt(50)

	res, err := svc.Generate(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}
	if res.Record.Advance == nil {
		t.Fatal("advance invoice record has no advance")
	}
	if got := res.Record.Advance.AmountDisplay; got != "1 815,00" {
		t.Errorf("AmountDisplay = %q, want the grouped amount", got)
	}
}
