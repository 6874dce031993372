package render

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"

	"github.com/bratus/pavadzimes/internal/domain"
)

// full content width in twips; the items table splits it evenly, close
// enough to the PDF proportions for the same data
const docxTableWidth = 9600

// DOCX renders the record as a Word document byte stream. The block
// order and wording match the PDF renderer exactly; the header,
// supplier/bank and signature blocks are two-column tables so the
// right-hand side (document info, bank details, signature lines) keeps
// its own column as in the PDF.
func DOCX(rec *domain.InvoiceRecord, issuer Issuer, assets Assets) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	docxHeader(w, rec, assets)
	docxClientBlock(w, rec.Client)
	docxIssuerBlock(w, issuer)
	docxItemsTable(w, rec.Items)
	docxTotalsBlock(w, rec)
	docxWordsLine(w, rec)
	docxSignatureBlock(w, rec)

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}
	return buf.Bytes(), nil
}

// docxHeader is a two-column table: logo on the left, document title and
// dates right-aligned on the right.
func docxHeader(w *docx.Docx, rec *domain.InvoiceRecord, assets Assets) {
	table := w.AddTable(1, 2, docxTableWidth, nil)
	left := table.TableRows[0].TableCells[0]
	right := table.TableRows[0].TableCells[1]

	logo := left.AddParagraph()
	if assets.HasLogo() {
		if _, err := logo.AddInlineDrawingFrom(assets.LogoPath); err != nil {
			logo.AddText("LOGO").Size("20").Bold()
		}
	} else {
		logo.AddText("LOGO").Size("20").Bold()
	}

	title := right.AddParagraph().Justification("right")
	title.AddText(fmt.Sprintf("%s Nr. %s", rec.Kind.Label(), rec.DocumentID)).Size("24").Bold()

	issued := right.AddParagraph().Justification("right")
	issued.AddText("Datums: " + rec.IssueDate.Format(domain.DateLayout)).Size("20")

	due := right.AddParagraph().Justification("right")
	due.AddText("Apmaksāt līdz: " + rec.DueDate.Format(domain.DateLayout)).Size("20")

	w.AddParagraph() // spacer
}

func docxClientBlock(w *docx.Docx, c domain.Client) {
	w.AddParagraph().AddText("KLIENTS").Size("20").Bold()
	w.AddParagraph().AddText(c.Name).Size("20").Bold()
	w.AddParagraph().AddText("Adrese: " + c.Address).Size("20")
	w.AddParagraph().AddText("Reģ. Nr.: " + c.RegNo).Size("20")
	w.AddParagraph().AddText("PVN Nr.: " + c.VATNo).Size("20")
	w.AddParagraph()
}

// docxIssuerBlock is a two-column table: supplier identity on the left,
// bank details on the right, as on the PDF.
func docxIssuerBlock(w *docx.Docx, is Issuer) {
	table := w.AddTable(1, 2, docxTableWidth, nil)
	left := table.TableRows[0].TableCells[0]
	right := table.TableRows[0].TableCells[1]

	left.AddParagraph().AddText("PIEGĀDĀTĀJS").Size("20").Bold()
	left.AddParagraph().AddText(is.LegalName).Size("20").Bold()
	left.AddParagraph().AddText("Adrese: " + is.AddressLine1).Size("20")
	left.AddParagraph().AddText(is.AddressLine2).Size("20")
	left.AddParagraph().AddText("Reģ. Nr.: " + is.RegNo).Size("20")
	left.AddParagraph().AddText("PVN Nr.: " + is.VATNo).Size("20")
	left.AddParagraph().AddText("Tālrunis: " + is.Phone).Size("20")

	right.AddParagraph().AddText(is.BankName).Size("20").Bold()
	right.AddParagraph().AddText("SWIFT/BIC: " + is.BankSWIFT).Size("20")
	right.AddParagraph().AddText("Bankas konta numurs: " + is.BankIBAN).Size("20")

	w.AddParagraph()
}

func docxItemsTable(w *docx.Docx, items []domain.PricedLineItem) {
	table := w.AddTable(len(items)+1, 5, docxTableWidth, nil)

	header := table.TableRows[0]
	for i, h := range itemColHeaders {
		cell := header.TableCells[i]
		cell.Shade("clear", "auto", "CDBF96")
		p := cell.AddParagraph().Justification("center")
		p.AddText(h).Size("18").Bold().Color("FFFFFF")
	}

	for r, it := range items {
		row := table.TableRows[r+1]
		cells := [5]struct {
			text  string
			align string
		}{
			{it.Description, "left"},
			{it.Unit, "center"},
			{it.QuantityDisplay, "center"},
			{it.UnitPriceDisplay, "right"},
			{it.LineTotalDisplay, "right"},
		}
		for i, c := range cells {
			p := row.TableCells[i].AddParagraph().Justification(c.align)
			p.AddText(c.text).Size("20")
		}
	}

	w.AddParagraph()
}

func docxTotalsBlock(w *docx.Docx, rec *domain.InvoiceRecord) {
	rows := []struct {
		label string
		value string
		last  bool
	}{
		{"KOPĀ (bez PVN)", rec.Totals.SubtotalDisplay, false},
		{"PVN (21%)", rec.Totals.TaxDisplay, false},
		{"Kopējā pasūtījuma summa", rec.Totals.TotalDisplay, true},
	}

	for _, row := range rows {
		p := w.AddParagraph().Justification("right")
		t := p.AddText(fmt.Sprintf("%s    € %s", row.label, row.value)).Size("20")
		if row.last && rec.Kind != domain.KindAdvanceInvoice {
			t.Bold()
		}
	}

	if rec.Kind == domain.KindAdvanceInvoice && rec.Advance != nil {
		p := w.AddParagraph().Justification("right")
		p.AddText(fmt.Sprintf("APMAKSĀJAMAIS AVANSS (%s apmērā):    € %s",
			rec.Advance.PercentDisplay(), rec.Advance.AmountDisplay)).Size("22").Bold()
	}

	w.AddParagraph()
}

func docxWordsLine(w *docx.Docx, rec *domain.InvoiceRecord) {
	p := w.AddParagraph()
	p.AddText(rec.Kind.WordsPrefix() + rec.AmountInWords).Size("20").Italic()
	w.AddParagraph()
}

// docxSignatureBlock is a two-column table: the per-kind label on the
// left, the signature line right-aligned in its own column.
func docxSignatureBlock(w *docx.Docx, rec *domain.InvoiceRecord) {
	w.AddParagraph().AddText("Papildus informācija:").Size("20").Bold()
	w.AddParagraph()

	labels := []string{
		rec.Kind.PreparedLabel(rec.Signatory),
		rec.Kind.ReceivedLabel(),
	}
	table := w.AddTable(len(labels), 2, docxTableWidth, nil)
	for i, label := range labels {
		row := table.TableRows[i]
		row.TableCells[0].AddParagraph().AddText(label).Size("20").Italic()
		p := row.TableCells[1].AddParagraph().Justification("right")
		p.AddText("__________________________").Size("20")
	}
}
