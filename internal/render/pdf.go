package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/bratus/pavadzimes/internal/domain"
)

const (
	pageMargin   = 20.0
	contentWidth = 170.0 // A4 width minus both margins
	lineHeight   = 5.5
)

// items table column widths in mm, summing to contentWidth
var itemColWidths = [5]float64{55, 25, 30, 30, 30}

var itemColHeaders = [5]string{"NOSAUKUMS", "Mērvienība", "DAUDZUMS", "CENA (EUR)", "KOPĀ (EUR)"}

// header row accent #CDBF96
var accentR, accentG, accentB = 205, 191, 150

// Issuer is the static supplier/bank block printed on every document.
type Issuer struct {
	LegalName    string
	AddressLine1 string
	AddressLine2 string
	RegNo        string
	VATNo        string
	Phone        string
	BankName     string
	BankSWIFT    string
	BankIBAN     string
}

// pdfDoc bundles the fpdf handle with the resolved font family and the
// text mapping needed when the built-in fallback family is active.
type pdfDoc struct {
	pdf    *fpdf.Fpdf
	family string
	tr     func(string) string
}

// PDF renders the record as a paginated PDF byte stream. Deterministic
// for a given record; a missing logo never fails the render.
func PDF(rec *domain.InvoiceRecord, issuer Issuer, assets Assets) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	d := &pdfDoc{pdf: pdf, family: "Helvetica", tr: pdf.UnicodeTranslatorFromDescriptor("")}
	if regular, bold, italic, ok := assets.serifFonts(); ok {
		pdf.AddUTF8Font("DejaVuSerif", "", regular)
		pdf.AddUTF8Font("DejaVuSerif", "B", bold)
		pdf.AddUTF8Font("DejaVuSerif", "I", italic)
		d.family = "DejaVuSerif"
		d.tr = func(s string) string { return s }
	}

	pdf.AddPage()

	d.header(rec, assets)
	d.clientBlock(rec.Client)
	d.issuerBlock(issuer)
	d.itemsTable(rec.Items)
	d.totalsBlock(rec)
	d.wordsLine(rec)
	d.signatureBlock(rec)

	if pdf.Err() {
		return nil, fmt.Errorf("render pdf: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *pdfDoc) header(rec *domain.InvoiceRecord, assets Assets) {
	pdf := d.pdf

	if assets.HasLogo() {
		pdf.ImageOptions(assets.LogoPath, pageMargin, pageMargin, 40, 0, false,
			fpdf.ImageOptions{ReadDpi: true}, 0, "")
	} else {
		pdf.SetFont(d.family, "B", 10)
		pdf.SetXY(pageMargin, pageMargin)
		pdf.CellFormat(40, 6, d.tr("LOGO"), "", 0, "L", false, 0, "")
	}

	pdf.SetXY(110, pageMargin)
	pdf.SetFont(d.family, "B", 12)
	pdf.CellFormat(80, 7, d.tr(fmt.Sprintf("%s Nr. %s", rec.Kind.Label(), rec.DocumentID)),
		"", 1, "R", false, 0, "")

	pdf.SetFont(d.family, "", 10)
	pdf.SetX(110)
	pdf.CellFormat(80, 5, d.tr("Datums: "+rec.IssueDate.Format(domain.DateLayout)),
		"", 1, "R", false, 0, "")
	pdf.SetX(110)
	pdf.CellFormat(80, 5, d.tr("Apmaksāt līdz: "+rec.DueDate.Format(domain.DateLayout)),
		"", 1, "R", false, 0, "")

	pdf.SetY(55)
}

func (d *pdfDoc) clientBlock(c domain.Client) {
	pdf := d.pdf

	pdf.SetFont(d.family, "B", 10)
	pdf.CellFormat(contentWidth, lineHeight, d.tr("KLIENTS"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.CellFormat(contentWidth, lineHeight, d.tr(c.Name), "", 1, "L", false, 0, "")
	pdf.SetFont(d.family, "", 10)
	pdf.CellFormat(contentWidth, lineHeight, d.tr("Adrese: "+c.Address), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentWidth, lineHeight, d.tr("Reģ. Nr.: "+c.RegNo), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentWidth, lineHeight, d.tr("PVN Nr.: "+c.VATNo), "", 1, "L", false, 0, "")
	pdf.Ln(8)
}

func (d *pdfDoc) issuerBlock(is Issuer) {
	pdf := d.pdf
	top := pdf.GetY()

	left := []struct {
		text string
		bold bool
	}{
		{"PIEGĀDĀTĀJS", true},
		{is.LegalName, true},
		{"Adrese: " + is.AddressLine1, false},
		{is.AddressLine2, false},
		{"Reģ. Nr.: " + is.RegNo, false},
		{"PVN Nr.: " + is.VATNo, false},
		{"Tālrunis: " + is.Phone, false},
	}
	y := top
	for _, line := range left {
		style := ""
		if line.bold {
			style = "B"
		}
		pdf.SetFont(d.family, style, 10)
		pdf.SetXY(pageMargin, y)
		pdf.CellFormat(85, lineHeight, d.tr(line.text), "", 0, "L", false, 0, "")
		y += lineHeight
	}
	leftBottom := y

	right := []struct {
		text string
		bold bool
	}{
		{is.BankName, true},
		{"SWIFT/BIC: " + is.BankSWIFT, false},
		{"Bankas konta numurs: " + is.BankIBAN, false},
	}
	y = top + lineHeight // aligned under the PIEGĀDĀTĀJS heading
	for _, line := range right {
		style := ""
		if line.bold {
			style = "B"
		}
		pdf.SetFont(d.family, style, 10)
		pdf.SetXY(105, y)
		pdf.CellFormat(85, lineHeight, d.tr(line.text), "", 0, "L", false, 0, "")
		y += lineHeight
	}

	pdf.SetXY(pageMargin, leftBottom+8)
}

func (d *pdfDoc) itemsTable(items []domain.PricedLineItem) {
	pdf := d.pdf

	pdf.SetFillColor(accentR, accentG, accentB)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(d.family, "B", 9)
	for i, h := range itemColHeaders {
		ln := 0
		if i == len(itemColHeaders)-1 {
			ln = 1
		}
		pdf.CellFormat(itemColWidths[i], 8, d.tr(h), "1", ln, "C", true, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(d.family, "", 10)

	for _, it := range items {
		cells := [5]struct {
			text  string
			align string
		}{
			{it.Description, "L"},
			{it.Unit, "C"},
			{it.QuantityDisplay, "C"},
			{it.UnitPriceDisplay, "R"},
			{it.LineTotalDisplay, "R"},
		}

		// Row height follows the wrapped description.
		lines := pdf.SplitText(d.tr(it.Description), itemColWidths[0]-4)
		rowH := float64(len(lines))*5 + 3
		if rowH < 8 {
			rowH = 8
		}

		y := pdf.GetY()
		if y+rowH > 270 {
			pdf.AddPage()
			y = pdf.GetY()
		}

		x := pageMargin
		for i, c := range cells {
			pdf.Rect(x, y, itemColWidths[i], rowH, "D")
			pdf.SetXY(x+1, y+1.5)
			pdf.MultiCell(itemColWidths[i]-2, 5, d.tr(c.text), "", c.align, false)
			x += itemColWidths[i]
		}
		pdf.SetXY(pageMargin, y+rowH)
	}

	pdf.Ln(8)
}

func (d *pdfDoc) totalsBlock(rec *domain.InvoiceRecord) {
	pdf := d.pdf

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
		style := ""
		// The grand total is emphasised unless the payable figure is the
		// advance below it.
		if row.last && rec.Kind != domain.KindAdvanceInvoice {
			style = "B"
		}
		pdf.SetFont(d.family, style, 10)
		pdf.CellFormat(90, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, d.tr(row.label), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, d.tr("€ "+row.value), "", 1, "R", false, 0, "")
	}

	if rec.Kind == domain.KindAdvanceInvoice && rec.Advance != nil {
		pdf.Ln(4)
		pdf.SetFont(d.family, "B", 11)
		label := fmt.Sprintf("APMAKSĀJAMAIS AVANSS (%s apmērā):", rec.Advance.PercentDisplay())
		pdf.CellFormat(60, 7, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(80, 7, d.tr(label), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, d.tr("€ "+rec.Advance.AmountDisplay), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
}

func (d *pdfDoc) wordsLine(rec *domain.InvoiceRecord) {
	pdf := d.pdf
	pdf.SetFont(d.family, "I", 10)
	pdf.MultiCell(contentWidth, lineHeight, d.tr(rec.Kind.WordsPrefix()+rec.AmountInWords),
		"", "L", false)
	pdf.Ln(8)
}

func (d *pdfDoc) signatureBlock(rec *domain.InvoiceRecord) {
	pdf := d.pdf

	pdf.SetFont(d.family, "B", 10)
	pdf.CellFormat(contentWidth, lineHeight, d.tr("Papildus informācija:"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	rows := []string{
		rec.Kind.PreparedLabel(rec.Signatory),
		rec.Kind.ReceivedLabel(),
	}
	pdf.SetFont(d.family, "I", 10)
	for _, label := range rows {
		pdf.CellFormat(100, 6, d.tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(70, 6, "__________________________", "", 1, "R", false, 0, "")
		pdf.Ln(6)
	}
}
