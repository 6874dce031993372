package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/bratus/pavadzimes/internal/calc"
	"github.com/bratus/pavadzimes/internal/config"
	"github.com/bratus/pavadzimes/internal/domain"
	"github.com/bratus/pavadzimes/internal/history"
	"github.com/bratus/pavadzimes/internal/logger"
	"github.com/bratus/pavadzimes/internal/remote"
	"github.com/bratus/pavadzimes/internal/render"
)

var ErrNoItems = errors.New("document has no line items")

// GenerateInput is everything the user supplies for one document run.
type GenerateInput struct {
	Kind   domain.DocumentKind
	Client domain.Client
	Items  []domain.LineItem

	// Number overrides sequential numbering when > 0.
	Number int

	// IssueDate defaults to today; DueDate to IssueDate + configured days.
	IssueDate time.Time
	DueDate   time.Time

	// Advance entry, meaningful only for advance invoices.
	AdvanceMode  calc.AdvanceMode
	AdvanceValue decimal.Decimal

	// SignerName defaults to the first configured signer.
	SignerName string
}

// FormatResult reports one output format of a generation run.
type FormatResult struct {
	Path string
	Err  error
}

// GenerateResult reports where a generation run landed. The two formats
// fail independently; Record is always populated.
type GenerateResult struct {
	Record *domain.InvoiceRecord
	PDF    FormatResult
	DOCX   FormatResult
}

// DocumentService builds, renders and records documents
type DocumentService interface {
	// BuildRecord assembles the full record without touching disk
	BuildRecord(input GenerateInput) (*domain.InvoiceRecord, error)

	// Generate renders both formats, writes them out, records history
	// and mirrors remotely when configured
	Generate(ctx context.Context, input GenerateInput) (*GenerateResult, error)

	// History returns all recorded entries, oldest first
	History() ([]domain.HistoryEntry, error)

	// ClearHistory drops the ledger
	ClearHistory() error
}

type documentService struct {
	cfg      *config.Config
	ledger   *history.Ledger
	uploader remote.Uploader
	log      zerolog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(cfg *config.Config, ledger *history.Ledger, uploader remote.Uploader) DocumentService {
	return &documentService{
		cfg:      cfg,
		ledger:   ledger,
		uploader: uploader,
		log:      logger.WithComponent("document"),
	}
}

// BuildRecord is pure assembly: numbering, dates, pricing and wording.
// It never writes anything, which is what makes previews cheap.
func (s *documentService) BuildRecord(input GenerateInput) (*domain.InvoiceRecord, error) {
	if len(input.Items) == 0 {
		return nil, ErrNoItems
	}

	number := input.Number
	if number <= 0 {
		number = s.ledger.NextNumber()
	}

	issue := input.IssueDate
	if issue.IsZero() {
		issue = time.Now()
	}
	due := input.DueDate
	if due.IsZero() {
		due = issue.AddDate(0, 0, s.cfg.Document.DueDays)
	}

	signer := input.SignerName
	if signer == "" && len(s.cfg.Company.Signers) > 0 {
		signer = s.cfg.Company.Signers[0]
	}
	signatory := fmt.Sprintf("%s %s %s", s.cfg.Company.LegalName, s.cfg.Company.SignerTitle, signer)

	result := calc.Calculate(input.Items, input.Kind, calc.AdvanceInput{
		Mode:  input.AdvanceMode,
		Value: input.AdvanceValue,
	})

	return &domain.InvoiceRecord{
		Kind:          input.Kind,
		DocumentID:    domain.FormatDocumentID(s.cfg.Document.NumberPrefix, number),
		IssueDate:     issue,
		DueDate:       due,
		Client:        input.Client,
		Items:         result.Items,
		Totals:        result.Totals,
		Advance:       result.Advance,
		AmountInWords: result.AmountInWords,
		Signatory:     signatory,
	}, nil
}

// Generate runs the full pipeline. The formats render independently so a
// font or image problem in one never costs the other; history is written
// as soon as at least one format lands on disk.
func (s *documentService) Generate(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	rec, err := s.BuildRecord(input)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.cfg.Document.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	issuer := render.Issuer{
		LegalName:    s.cfg.Company.LegalName,
		AddressLine1: s.cfg.Company.AddressLine1,
		AddressLine2: s.cfg.Company.AddressLine2,
		RegNo:        s.cfg.Company.RegNo,
		VATNo:        s.cfg.Company.VATNo,
		Phone:        s.cfg.Company.Phone,
		BankName:     s.cfg.Bank.Name,
		BankSWIFT:    s.cfg.Bank.SWIFT,
		BankIBAN:     s.cfg.Bank.IBAN,
	}
	assets := render.Assets{
		LogoPath: s.cfg.Document.LogoPath,
		FontDir:  s.cfg.Document.FontDir,
	}

	res := &GenerateResult{Record: rec}
	res.PDF = s.writeFormat(ctx, rec, ".pdf", func() ([]byte, error) {
		return render.PDF(rec, issuer, assets)
	})
	res.DOCX = s.writeFormat(ctx, rec, ".docx", func() ([]byte, error) {
		return render.DOCX(rec, issuer, assets)
	})

	if res.PDF.Err != nil && res.DOCX.Err != nil {
		return res, fmt.Errorf("all formats failed: pdf: %v; docx: %v", res.PDF.Err, res.DOCX.Err)
	}

	if err := s.ledger.Upsert(domain.NewHistoryEntry(rec, time.Now())); err != nil {
		s.log.Error().Err(err).Str("document_id", rec.DocumentID).Msg("history write failed")
	}

	return res, nil
}

// writeFormat renders one format, writes it locally and mirrors it
// remotely. Upload failure is logged, never surfaced.
func (s *documentService) writeFormat(ctx context.Context, rec *domain.InvoiceRecord, ext string, renderFn func() ([]byte, error)) FormatResult {
	data, err := renderFn()
	if err != nil {
		s.log.Error().Err(err).Str("format", ext).Str("document_id", rec.DocumentID).Msg("render failed")
		return FormatResult{Err: err}
	}

	path := filepath.Join(s.cfg.Document.OutputDir, rec.FileName(ext))
	if err := os.WriteFile(path, data, 0644); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("write failed")
		return FormatResult{Err: err}
	}

	if s.uploader.Enabled() {
		if err := s.uploader.Upload(ctx, rec.FileName(ext), data); err != nil {
			s.log.Warn().Err(err).Str("path", path).Msg("remote upload failed, file kept locally")
		}
	}

	s.log.Info().Str("path", path).Str("document_id", rec.DocumentID).Msg("document written")
	return FormatResult{Path: path}
}

func (s *documentService) History() ([]domain.HistoryEntry, error) {
	return s.ledger.Load()
}

func (s *documentService) ClearHistory() error {
	return s.ledger.Clear()
}
