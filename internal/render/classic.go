package render

import (
	"github.com/rezonia/invoice-studio/internal/model"
)

// classicRenderer uses the accent for structure: a heavy rule under the
// header, a filled table header row and a filled TOTAL band.
type classicRenderer struct{}

func (r *classicRenderer) Name() model.TemplateName { return model.TemplateClassic }

func (r *classicRenderer) Render(in Input) ([]byte, error) {
	d := newDoc(in)
	details := in.Invoice.Details

	// Header: identity and contact left, accent INVOICE right
	headerTop := d.pdf.GetY()
	d.logoOrName(12, 16, false)
	d.contactLines(8.5, 4.2, in.Invoice.Sender.Email, in.Invoice.Sender.Phone)
	leftBottom := d.pdf.GetY()

	d.pdf.SetXY(pageWidth/2, headerTop)
	d.font("B", 26)
	d.accentText()
	d.cell(contentWidth/2, 11, "INVOICE", "R")
	d.pdf.SetXY(pageWidth/2, headerTop+12)
	d.font("", 9.5)
	d.grayText(107)
	d.cell(contentWidth/2, 5, "#"+details.Number, "R")

	if leftBottom < headerTop+18 {
		leftBottom = headerTop + 18
	}
	d.pdf.SetY(leftBottom + 4)

	d.accentDraw()
	d.pdf.SetLineWidth(0.8)
	d.pdf.Line(pageMargin, d.pdf.GetY(), pageWidth-pageMargin, d.pdf.GetY())
	d.ln(8)

	// Bill To left, invoice details right
	top := d.pdf.GetY()
	billBottom := d.partyBlock(pageMargin, top, 85, "Bill To", in.Invoice.Receiver, true)

	y := top
	d.pdf.SetXY(pageMargin+95, y)
	d.font("B", 8)
	d.accentText()
	d.cell(contentWidth-95, 5, "INVOICE DETAILS", "L")
	y += 7
	for _, line := range detailsLines(details) {
		d.pdf.SetXY(pageMargin+95, y)
		d.font("", 9)
		d.grayText(55)
		d.cell(contentWidth-95, 4.5, line, "L")
		y += 4.8
	}
	if billBottom > y {
		y = billBottom
	}
	d.pdf.SetY(y)
	d.ln(8)

	d.itemsTable(tableStyle{headerFill: true, zebra: true})
	d.ln(8)

	d.totalsBlock(totalsStyle{fillTotal: true, totalLabel: "TOTAL", totalSize: 11})
	d.footerBlock(in.Style.AccentR, in.Style.AccentG, in.Style.AccentB)

	return d.output()
}
