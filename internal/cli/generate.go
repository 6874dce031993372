package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bratus/pavadzimes/internal/calc"
	"github.com/bratus/pavadzimes/internal/domain"
	"github.com/bratus/pavadzimes/internal/service"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a document",
	Long: `Generate a delivery note, invoice or advance invoice as PDF and DOCX.

Line items are passed as repeated --item flags with pipe-separated fields:

  pavadzimes generate --kind invoice \
    --client-name "SIA Klients" --client-reg 40003000001 \
    --item "Būvdarbi|gab.|2|1500" --item "Piegāde|kompl.|1|350,50"

Malformed quantities or prices count as zero rather than failing the run.`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("kind", "invoice", "document kind: delivery_note, invoice or advance_invoice")
	f.Int("number", 0, "document number (default: next from history)")
	f.String("date", "", "issue date as dd.mm.yyyy (default: today)")
	f.String("due", "", "due date as dd.mm.yyyy (default: issue date + configured days)")

	f.String("client-name", "", "client name")
	f.String("client-address", "", "client address")
	f.String("client-reg", "", "client registration number")
	f.String("client-vat", "", "client VAT number (default: LV + registration number)")

	f.StringArray("item", nil, "line item as description|unit|quantity|price (repeatable)")

	f.String("advance-amount", "", "advance as an absolute amount (advance invoices)")
	f.String("advance-percent", "", "advance as a percentage (advance invoices)")

	f.String("signer", "", "signer name (default: first configured signer)")

	_ = generateCmd.MarkFlagRequired("client-name")
	_ = generateCmd.MarkFlagRequired("item")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()

	kindStr, _ := f.GetString("kind")
	kind, err := domain.ParseKind(kindStr)
	if err != nil {
		return err
	}

	rawItems, _ := f.GetStringArray("item")
	items, err := parseItemFlags(rawItems)
	if err != nil {
		return err
	}

	input := service.GenerateInput{
		Kind:  kind,
		Items: items,
	}
	input.Number, _ = f.GetInt("number")
	input.SignerName, _ = f.GetString("signer")

	input.Client.Name, _ = f.GetString("client-name")
	input.Client.Address, _ = f.GetString("client-address")
	input.Client.RegNo, _ = f.GetString("client-reg")
	input.Client.VATNo, _ = f.GetString("client-vat")
	if input.Client.VATNo == "" && input.Client.RegNo != "" {
		input.Client.VATNo = "LV" + input.Client.RegNo
	}

	if input.IssueDate, err = parseDateFlag(f, "date"); err != nil {
		return err
	}
	if input.DueDate, err = parseDateFlag(f, "due"); err != nil {
		return err
	}

	if input.AdvanceMode, input.AdvanceValue, err = parseAdvanceFlags(f, kind); err != nil {
		return err
	}

	res, err := appInstance.DocumentService.Generate(context.Background(), input)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s — %s\n", res.Record.Kind.Label(), res.Record.DocumentID, res.Record.Client.Name)
	printFormat("PDF", res.PDF)
	printFormat("DOCX", res.DOCX)
	fmt.Printf("Kopā: € %s\n", res.Record.Totals.TotalDisplay)
	if res.Record.Advance != nil {
		fmt.Printf("Avanss (%s): € %s\n", res.Record.Advance.PercentDisplay(), res.Record.Advance.AmountDisplay)
	}
	return nil
}

func printFormat(label string, fr service.FormatResult) {
	if fr.Err != nil {
		fmt.Printf("  %s: FAILED (%v)\n", label, fr.Err)
		return
	}
	fmt.Printf("  %s: %s\n", label, fr.Path)
}

// parseItemFlags splits each --item flag into its four fields. Fewer
// fields than four is a usage error; the numeric fields themselves stay
// free-form for the lenient calculator.
func parseItemFlags(raw []string) ([]domain.LineItem, error) {
	items := make([]domain.LineItem, 0, len(raw))
	for _, r := range raw {
		parts := strings.Split(r, "|")
		if len(parts) != 4 {
			return nil, fmt.Errorf("item %q: want description|unit|quantity|price", r)
		}
		items = append(items, domain.LineItem{
			Description: strings.TrimSpace(parts[0]),
			Unit:        strings.TrimSpace(parts[1]),
			Quantity:    strings.TrimSpace(parts[2]),
			UnitPrice:   strings.TrimSpace(parts[3]),
		})
	}
	return items, nil
}

func parseDateFlag(f *pflag.FlagSet, name string) (time.Time, error) {
	s, _ := f.GetString(name)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: want dd.mm.yyyy, got %q", name, s)
	}
	return t, nil
}

func parseAdvanceFlags(f *pflag.FlagSet, kind domain.DocumentKind) (calc.AdvanceMode, decimal.Decimal, error) {
	amountStr, _ := f.GetString("advance-amount")
	percentStr, _ := f.GetString("advance-percent")

	if amountStr != "" && percentStr != "" {
		return calc.AdvanceNone, decimal.Zero, fmt.Errorf("--advance-amount and --advance-percent are mutually exclusive")
	}
	if (amountStr != "" || percentStr != "") && kind != domain.KindAdvanceInvoice {
		return calc.AdvanceNone, decimal.Zero, fmt.Errorf("advance flags apply only to advance invoices")
	}

	switch {
	case percentStr != "":
		return calc.AdvancePercent, calc.Coerce(percentStr), nil
	case amountStr != "":
		return calc.AdvanceAmount, calc.Coerce(amountStr), nil
	}
	return calc.AdvanceNone, decimal.Zero, nil
}
