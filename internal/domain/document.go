package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind selects the document variant. It is chosen once per
// generation; an existing record never transitions between kinds.
type DocumentKind string

const (
	KindDeliveryNote   DocumentKind = "delivery_note"
	KindInvoice        DocumentKind = "invoice"
	KindAdvanceInvoice DocumentKind = "advance_invoice"
)

// Label returns the Latvian document title printed on the document itself.
func (k DocumentKind) Label() string {
	switch k {
	case KindDeliveryNote:
		return "Pavadzīme"
	case KindAdvanceInvoice:
		return "Avansa rēķins"
	default:
		return "Rēķins"
	}
}

// PreparedLabel returns the "prepared by" signature line for the kind.
func (k DocumentKind) PreparedLabel(signatory string) string {
	switch k {
	case KindDeliveryNote:
		return "Pavadzīmi sagatavoja: " + signatory
	case KindAdvanceInvoice:
		return "Avansa rēķinu sagatavoja: " + signatory
	default:
		return "Rēķinu sagatavoja: " + signatory
	}
}

// ReceivedLabel returns the "received by" signature line for the kind.
func (k DocumentKind) ReceivedLabel() string {
	switch k {
	case KindDeliveryNote:
		return "Pavadzīmi saņēma:"
	case KindAdvanceInvoice:
		return "Avansa rēķinu saņēma:"
	default:
		return "Rēķinu saņēma:"
	}
}

// WordsPrefix returns the lead-in for the amount-in-words sentence.
func (k DocumentKind) WordsPrefix() string {
	if k == KindAdvanceInvoice {
		return "Summa vārdiem (avanss): "
	}
	return "Summa vārdiem: "
}

// ParseKind accepts the internal identifier or the Latvian label.
func ParseKind(s string) (DocumentKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "delivery_note", "delivery-note", "pavadzīme", "pavadzime":
		return KindDeliveryNote, nil
	case "invoice", "rēķins", "rekins":
		return KindInvoice, nil
	case "advance_invoice", "advance-invoice", "advance", "avansa rēķins", "avansa rekins":
		return KindAdvanceInvoice, nil
	}
	return "", fmt.Errorf("unknown document kind %q", s)
}

// LineItem is one raw user-entered row. Quantity and unit price stay
// free-form here; coercion to numbers happens in the calculator and a
// malformed value contributes zero instead of failing the row.
type LineItem struct {
	Description string `yaml:"description"`
	Unit        string `yaml:"unit"`
	Quantity    string `yaml:"quantity"`
	UnitPrice   string `yaml:"unit_price"`
}

// PricedLineItem is a line item after pricing. Raw decimals are kept for
// re-aggregation; display strings are what the renderers print.
type PricedLineItem struct {
	Description string
	Unit        string

	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal

	QuantityDisplay  string
	UnitPriceDisplay string
	LineTotalDisplay string
}

// InvoiceTotals carries the aggregate figures computed from raw decimals.
type InvoiceTotals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal

	SubtotalDisplay string
	TaxDisplay      string
	TotalDisplay    string
}

// AdvancePayment is present only on advance invoices. Amount is always
// within [0, Total]; Percent within [0, 100].
type AdvancePayment struct {
	Amount  decimal.Decimal
	Percent decimal.Decimal

	AmountDisplay string
}

// PercentDisplay renders the percent rounded to a whole number, e.g. "50%".
func (a AdvancePayment) PercentDisplay() string {
	return a.Percent.Round(0).String() + "%"
}

// Client holds the counterparty identity fields.
type Client struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	RegNo   string `yaml:"reg_no"`
	VATNo   string `yaml:"vat_no"`
}

// InvoiceRecord is the canonical document model. Both renderers and the
// history ledger read from it; nothing downstream recomputes money.
type InvoiceRecord struct {
	Kind       DocumentKind
	DocumentID string
	IssueDate  time.Time
	DueDate    time.Time

	Client Client
	Items  []PricedLineItem
	Totals InvoiceTotals

	// Advance is nil unless Kind == KindAdvanceInvoice.
	Advance *AdvancePayment

	AmountInWords string
	Signatory     string
}

// FormatDocumentID builds the printed document identifier, e.g. "BR 0049".
func FormatDocumentID(prefix string, number int) string {
	return fmt.Sprintf("%s %04d", prefix, number)
}

// FileName derives the download name for one output format, replacing
// spaces so the kind label and the identifier survive as one token each.
func (r *InvoiceRecord) FileName(ext string) string {
	kind := strings.ReplaceAll(r.Kind.Label(), " ", "_")
	id := strings.ReplaceAll(r.DocumentID, " ", "_")
	return kind + "_" + id + ext
}

// DateLayout is the dd.mm.yyyy form used on the printed documents.
const DateLayout = "02.01.2006"
