package render

import (
	"bytes"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/rezonia/invoice-studio/internal/model"
	"github.com/rezonia/invoice-studio/internal/money"
)

// A4 geometry in millimeters.
const (
	pageWidth    = 210.0
	pageMargin   = 15.0
	contentWidth = pageWidth - 2*pageMargin

	colQty    = 20.0
	colRate   = 30.0
	colAmount = 40.0
	colDesc   = contentWidth - colQty - colRate - colAmount
)

// Embedded metadata uses a fixed timestamp so rendering the same input
// twice yields byte-identical output.
var fixedCreationDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// doc wraps one gofpdf page under construction with the resolved style
// and a cp1252 translator for currency symbols.
type doc struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
	in  Input
}

func newDoc(in Input) *doc {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(in.Title, true)
	pdf.SetCreationDate(fixedCreationDate)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	return &doc{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		in:  in,
	}
}

func (d *doc) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *doc) font(styleStr string, size float64) {
	d.pdf.SetFont(d.in.Style.PDFFont, styleStr, size)
}

func (d *doc) accentText() {
	d.pdf.SetTextColor(d.in.Style.AccentR, d.in.Style.AccentG, d.in.Style.AccentB)
}

func (d *doc) accentFill() {
	d.pdf.SetFillColor(d.in.Style.AccentR, d.in.Style.AccentG, d.in.Style.AccentB)
}

func (d *doc) accentDraw() {
	d.pdf.SetDrawColor(d.in.Style.AccentR, d.in.Style.AccentG, d.in.Style.AccentB)
}

// grayText sets a uniform gray text level (0 black, 255 white).
func (d *doc) grayText(v int) {
	d.pdf.SetTextColor(v, v, v)
}

func (d *doc) cell(w, h float64, txt, align string) {
	d.pdf.CellFormat(w, h, d.tr(txt), "", 0, align, false, 0, "")
}

func (d *doc) fillCell(w, h float64, txt, align string) {
	d.pdf.CellFormat(w, h, d.tr(txt), "", 0, align, true, 0, "")
}

func (d *doc) ln(h float64) {
	d.pdf.Ln(h)
}

// logoOrName draws the sender logo when the referenced image file is
// readable, otherwise the sender name as styled text. Rendering stays
// total: a broken logo reference silently degrades to text.
func (d *doc) logoOrName(logoHeight, nameSize float64, reversed bool) {
	sender := d.in.Invoice.Sender
	if sender.Logo != "" {
		if _, err := os.Stat(sender.Logo); err == nil {
			x, y := d.pdf.GetXY()
			d.pdf.ImageOptions(sender.Logo, x, y, 0, logoHeight, false,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
			d.pdf.SetY(y + logoHeight)
			return
		}
	}

	name := sender.Name
	if name == "" {
		name = "Company"
	}
	d.font("B", nameSize)
	if reversed {
		d.pdf.SetTextColor(255, 255, 255)
	} else {
		d.accentText()
	}
	d.cell(0, logoHeight, name, "L")
	d.ln(logoHeight)
}

// contactLines prints the non-empty lines of a party contact block.
func (d *doc) contactLines(size, lineH float64, lines ...string) {
	d.font("", size)
	for _, line := range lines {
		if line == "" {
			continue
		}
		d.pdf.MultiCell(0, lineH, d.tr(line), "", "L", false)
	}
}

// partyBlock draws a labeled contact block in a fixed column and
// returns the y position below it so side-by-side columns can align.
func (d *doc) partyBlock(x, y, w float64, label string, p model.Party, accentLabel bool) float64 {
	d.pdf.SetXY(x, y)
	d.font("B", 8)
	if accentLabel {
		d.accentText()
	} else {
		d.grayText(156)
	}
	d.cell(w, 5, strings.ToUpper(label), "L")
	y += 7

	if p.Name != "" {
		d.pdf.SetXY(x, y)
		d.font("B", 10.5)
		d.grayText(17)
		d.cell(w, 5, p.Name, "L")
		y += 6
	}

	d.font("", 9)
	d.grayText(107)
	for _, line := range contactList(p) {
		d.pdf.SetXY(x, y)
		d.cell(w, 4.5, line, "L")
		y += 4.8
	}
	return y
}

// contactList flattens a party's address, email and phone into the
// non-empty display lines, address first.
func contactList(p model.Party) []string {
	var lines []string
	for _, l := range strings.Split(p.Address, "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	if p.Email != "" {
		lines = append(lines, p.Email)
	}
	if p.Phone != "" {
		lines = append(lines, p.Phone)
	}
	return lines
}

// tableStyle controls how a variant draws the line-item table.
type tableStyle struct {
	headerFill  bool // accent background with reversed header text
	headerRules bool // rules above and below the header row
	zebra       bool
	rowH        float64
	descLabel   string
}

// itemsTable draws the ordered line items with the four standard
// columns. Amounts come from the shared formatting rule.
func (d *doc) itemsTable(ts tableStyle) {
	if ts.rowH == 0 {
		ts.rowH = 8
	}
	if ts.descLabel == "" {
		ts.descLabel = "Description"
	}
	currency := d.in.Invoice.Details.Currency

	if ts.headerRules {
		d.pdf.SetDrawColor(17, 24, 39)
		d.pdf.SetLineWidth(0.4)
		d.pdf.Line(pageMargin, d.pdf.GetY(), pageWidth-pageMargin, d.pdf.GetY())
	}

	d.font("B", 9)
	if ts.headerFill {
		d.accentFill()
		d.pdf.SetTextColor(255, 255, 255)
		d.fillCell(colDesc, ts.rowH, ts.descLabel, "L")
		d.fillCell(colQty, ts.rowH, "Qty", "C")
		d.fillCell(colRate, ts.rowH, "Rate", "R")
		d.fillCell(colAmount, ts.rowH, "Amount", "R")
	} else {
		d.pdf.SetTextColor(55, 65, 81)
		d.cell(colDesc, ts.rowH, ts.descLabel, "L")
		d.cell(colQty, ts.rowH, "Qty", "C")
		d.cell(colRate, ts.rowH, "Rate", "R")
		d.cell(colAmount, ts.rowH, "Amount", "R")
	}
	d.ln(ts.rowH)

	if ts.headerRules {
		d.pdf.Line(pageMargin, d.pdf.GetY(), pageWidth-pageMargin, d.pdf.GetY())
	}

	for i, item := range d.in.Invoice.LineItems {
		fill := ts.zebra && i%2 == 0
		if fill {
			d.pdf.SetFillColor(249, 250, 251)
		}

		d.font("", 10)
		d.grayText(55)
		drawCell := d.cell
		if fill {
			drawCell = d.fillCell
		}
		drawCell(colDesc, ts.rowH, item.Description, "L")
		drawCell(colQty, ts.rowH, item.Quantity.String(), "C")
		drawCell(colRate, ts.rowH, money.FormatCurrency(item.Rate, currency), "R")
		d.font("B", 10)
		d.grayText(17)
		drawCell(colAmount, ts.rowH, money.FormatCurrency(item.Amount(), currency), "R")
		d.ln(ts.rowH)

		if !ts.zebra {
			d.pdf.SetDrawColor(229, 231, 235)
			d.pdf.SetLineWidth(0.2)
			d.pdf.Line(pageMargin, d.pdf.GetY(), pageWidth-pageMargin, d.pdf.GetY())
		}
	}
}

// totalsStyle controls how a variant draws the aggregate block.
type totalsStyle struct {
	width       float64
	fillTotal   bool // accent band behind the total row
	accentTotal bool // accent-colored total amount
	totalLabel  string
	totalSize   float64
}

// totalsBlock draws subtotal, tax and total right-aligned, using the
// precomputed totals from the render input.
func (d *doc) totalsBlock(ts totalsStyle) {
	if ts.width == 0 {
		ts.width = 80
	}
	if ts.totalLabel == "" {
		ts.totalLabel = "Total"
	}
	if ts.totalSize == 0 {
		ts.totalSize = 12
	}
	currency := d.in.Invoice.Details.Currency
	x := pageWidth - pageMargin - ts.width
	labelW := ts.width * 0.45
	valueW := ts.width - labelW

	row := func(label, value string) {
		d.pdf.SetX(x)
		d.font("", 10)
		d.grayText(75)
		d.cell(labelW, 7, label, "L")
		d.font("B", 10)
		d.grayText(17)
		d.cell(valueW, 7, value, "R")
		d.ln(7)
		d.pdf.SetDrawColor(229, 231, 235)
		d.pdf.SetLineWidth(0.2)
		d.pdf.Line(x, d.pdf.GetY(), x+ts.width, d.pdf.GetY())
	}

	row("Subtotal", money.FormatCurrency(d.in.Totals.Subtotal, currency))
	row("Tax", money.FormatCurrency(d.in.Totals.TaxAmount, currency))

	d.pdf.SetX(x)
	total := money.FormatCurrency(d.in.Totals.Total, currency)
	if ts.fillTotal {
		d.accentFill()
		d.pdf.SetTextColor(255, 255, 255)
		d.font("B", ts.totalSize)
		d.fillCell(labelW, 10, " "+ts.totalLabel, "L")
		d.fillCell(valueW, 10, total+" ", "R")
	} else {
		d.font("B", ts.totalSize)
		d.grayText(17)
		d.cell(labelW, 10, ts.totalLabel, "L")
		if ts.accentTotal {
			d.accentText()
		}
		d.cell(valueW, 10, total, "R")
	}
	d.ln(12)
}

// footerBlock renders the footer text centered under a rule of the
// given color. Absent when the footer is empty: no rule, no empty
// container.
func (d *doc) footerBlock(ruleR, ruleG, ruleB int) {
	footer := d.in.Invoice.Footer
	if footer == "" {
		return
	}

	d.ln(6)
	d.pdf.SetDrawColor(ruleR, ruleG, ruleB)
	d.pdf.SetLineWidth(0.3)
	d.pdf.Line(pageMargin, d.pdf.GetY(), pageWidth-pageMargin, d.pdf.GetY())
	d.ln(6)

	d.font("", 8.5)
	d.grayText(107)
	d.pdf.MultiCell(contentWidth, 4.5, d.tr(footer), "", "C", false)
}

// detailsLines returns the metadata lines shown near the header: date
// always, due date only when present.
func detailsLines(details model.InvoiceDetails) []string {
	lines := []string{"Date: " + details.Date}
	if details.DueDate != "" {
		lines = append(lines, "Due: "+details.DueDate)
	}
	return lines
}
