// Package calc turns raw line items into priced rows and aggregate
// figures. It is a pure transform over current input state and is safe to
// re-run on every edit.
package calc

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bratus/pavadzimes/internal/domain"
	"github.com/bratus/pavadzimes/internal/money"
)

// TaxRate is the fixed Latvian VAT rate applied to every document.
var TaxRate = decimal.RequireFromString("0.21")

var hundred = decimal.NewFromInt(100)

// AdvanceMode selects which advance figure the user entered directly.
type AdvanceMode int

const (
	// AdvanceNone applies to delivery notes and standard invoices.
	AdvanceNone AdvanceMode = iota
	// AdvanceAmount: the user typed an absolute figure, clamped to [0, total].
	AdvanceAmount
	// AdvancePercent: the user typed a percentage, clamped to [0, 100].
	AdvancePercent
)

// AdvanceInput carries the advance entry for advance invoices.
type AdvanceInput struct {
	Mode  AdvanceMode
	Value decimal.Decimal
}

// Result is the calculator output consumed by the record builder.
type Result struct {
	Items  []domain.PricedLineItem
	Totals domain.InvoiceTotals

	// Advance is nil unless the document kind is an advance invoice.
	Advance *domain.AdvancePayment

	// AmountInWords spells the payable amount: the advance for advance
	// invoices, the grand total otherwise.
	AmountInWords string
}

// Calculate prices each row, aggregates totals and derives the advance
// payment. Unparseable quantities and prices contribute zero; a malformed
// row never aborts the calculation.
func Calculate(items []domain.LineItem, kind domain.DocumentKind, adv AdvanceInput) Result {
	priced := make([]domain.PricedLineItem, 0, len(items))
	subtotal := decimal.Zero

	for _, it := range items {
		qty := Coerce(it.Quantity)
		price := Coerce(it.UnitPrice)
		lineTotal := qty.Mul(price)
		subtotal = subtotal.Add(lineTotal)

		priced = append(priced, domain.PricedLineItem{
			Description:      it.Description,
			Unit:             it.Unit,
			Quantity:         qty,
			UnitPrice:        price,
			LineTotal:        lineTotal,
			QuantityDisplay:  qty.String(),
			UnitPriceDisplay: money.FormatEUR(price),
			LineTotalDisplay: money.FormatEUR(lineTotal),
		})
	}

	tax := subtotal.Mul(TaxRate)
	total := subtotal.Add(tax)

	res := Result{
		Items: priced,
		Totals: domain.InvoiceTotals{
			Subtotal:        subtotal,
			Tax:             tax,
			Total:           total,
			SubtotalDisplay: money.FormatEUR(subtotal),
			TaxDisplay:      money.FormatEUR(tax),
			TotalDisplay:    money.FormatEUR(total),
		},
	}

	wordsTarget := total
	if kind == domain.KindAdvanceInvoice {
		a := deriveAdvance(total, adv)
		res.Advance = &a
		wordsTarget = a.Amount
	}
	res.AmountInWords = money.AmountInWords(wordsTarget)

	return res
}

// deriveAdvance fills the counterpart figure from the one the user entered.
func deriveAdvance(total decimal.Decimal, adv AdvanceInput) domain.AdvancePayment {
	var amount, percent decimal.Decimal

	switch adv.Mode {
	case AdvancePercent:
		percent = clamp(adv.Value, decimal.Zero, hundred)
		amount = total.Mul(percent).Div(hundred)
	default:
		// Amount mode; an unset advance defaults to the full total.
		amount = adv.Value
		if adv.Mode == AdvanceNone {
			amount = total
		}
		amount = clamp(amount, decimal.Zero, total)
		if total.IsZero() {
			percent = decimal.Zero
		} else {
			percent = amount.Div(total).Mul(hundred)
		}
	}

	return domain.AdvancePayment{
		Amount:        amount,
		Percent:       percent,
		AmountDisplay: money.FormatEUR(amount),
	}
}

// Coerce parses a free-form numeric entry. Both comma and dot decimal
// separators are accepted; grouping spaces are ignored. Anything that
// still fails to parse becomes zero.
func Coerce(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}
