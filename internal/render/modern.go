package render

import (
	"github.com/rezonia/invoice-studio/internal/model"
)

// modernRenderer frames the page with accent bars top and bottom and
// keeps the body light: thin dark rules, right-aligned totals with an
// accent-colored grand total.
type modernRenderer struct{}

func (r *modernRenderer) Name() model.TemplateName { return model.TemplateModern }

func (r *modernRenderer) Render(in Input) ([]byte, error) {
	d := newDoc(in)
	details := in.Invoice.Details

	// Accent bars on every page edge
	d.accentFill()
	d.pdf.Rect(0, 0, pageWidth, 5, "F")
	d.pdf.SetFooterFunc(func() {
		d.accentFill()
		_, h := d.pdf.GetPageSize()
		d.pdf.Rect(0, h-5, pageWidth, 5, "F")
	})

	// Header: identity left, invoice meta right
	headerTop := pageMargin + 5
	d.pdf.SetY(headerTop)
	d.logoOrName(14, 22, false)
	leftBottom := d.pdf.GetY()

	y := headerTop
	d.pdf.SetXY(pageWidth/2, y)
	d.font("", 26)
	d.grayText(17)
	d.cell(contentWidth/2, 11, "INVOICE", "R")
	y += 12
	d.pdf.SetXY(pageWidth/2, y)
	d.font("", 10)
	d.grayText(107)
	d.cell(contentWidth/2, 5, "#"+details.Number, "R")
	y += 6
	for _, line := range detailsLines(details) {
		d.pdf.SetXY(pageWidth/2, y)
		d.font("", 8.5)
		d.grayText(156)
		d.cell(contentWidth/2, 4.5, line, "R")
		y += 5
	}
	if y < leftBottom {
		y = leftBottom
	}

	d.pdf.SetY(y + 4)
	d.pdf.SetDrawColor(17, 24, 39)
	d.pdf.SetLineWidth(0.4)
	d.pdf.Line(pageMargin, d.pdf.GetY(), pageWidth-pageMargin, d.pdf.GetY())
	d.ln(8)

	// Addresses, two columns
	top := d.pdf.GetY()
	fromBottom := d.partyBlock(pageMargin, top, 85, "From", in.Invoice.Sender, false)
	billBottom := d.partyBlock(pageMargin+95, top, contentWidth-95, "Bill To", in.Invoice.Receiver, false)
	if fromBottom > billBottom {
		d.pdf.SetY(fromBottom)
	} else {
		d.pdf.SetY(billBottom)
	}
	d.ln(10)

	d.itemsTable(tableStyle{headerRules: true})
	d.ln(8)

	d.totalsBlock(totalsStyle{accentTotal: true})
	d.footerBlock(17, 24, 39)

	return d.output()
}
