package render

import (
	"github.com/rezonia/invoice-studio/internal/model"
)

// minimalRenderer keeps ornament to a minimum: small caps labels,
// hairline rules and one large, light accent total.
type minimalRenderer struct{}

func (r *minimalRenderer) Name() model.TemplateName { return model.TemplateMinimal }

func (r *minimalRenderer) Render(in Input) ([]byte, error) {
	d := newDoc(in)
	details := in.Invoice.Details

	// Identity left, sender contact right
	headerTop := d.pdf.GetY()
	d.logoOrName(12, 18, false)
	leftBottom := d.pdf.GetY()

	y := headerTop
	d.font("", 8)
	d.grayText(156)
	for _, line := range []string{in.Invoice.Sender.Email, in.Invoice.Sender.Phone} {
		if line == "" {
			continue
		}
		d.pdf.SetXY(pageWidth/2, y)
		d.cell(contentWidth/2, 4, line, "R")
		y += 4.5
	}
	if leftBottom > y {
		y = leftBottom
	}
	d.pdf.SetY(y + 6)

	// Title row over an accent hairline
	rowTop := d.pdf.GetY()
	d.font("", 20)
	d.grayText(17)
	d.cell(contentWidth/2, 9, "Invoice", "L")

	meta := []string{"#" + details.Number, details.Date}
	if details.DueDate != "" {
		meta = append(meta, "Due: "+details.DueDate)
	}
	my := rowTop
	for i, line := range meta {
		d.pdf.SetXY(pageWidth/2, my)
		if i == 0 {
			d.font("", 9.5)
			d.grayText(55)
		} else {
			d.font("", 8)
			d.grayText(107)
		}
		d.cell(contentWidth/2, 4.2, line, "R")
		my += 4.6
	}
	if my < rowTop+10 {
		my = rowTop + 10
	}
	d.pdf.SetY(my + 2)
	d.accentDraw()
	d.pdf.SetLineWidth(0.3)
	d.pdf.Line(pageMargin, d.pdf.GetY(), pageWidth-pageMargin, d.pdf.GetY())
	d.ln(10)

	// Address columns
	top := d.pdf.GetY()
	fromBottom := d.partyBlock(pageMargin, top, 85, "From", in.Invoice.Sender, false)
	toBottom := d.partyBlock(pageMargin+95, top, contentWidth-95, "To", in.Invoice.Receiver, false)
	if fromBottom > toBottom {
		toBottom = fromBottom
	}
	d.pdf.SetY(toBottom)
	d.ln(10)

	d.itemsTable(tableStyle{rowH: 7.5})
	d.ln(8)

	d.totalsBlock(totalsStyle{width: 72, accentTotal: true, totalLabel: "TOTAL", totalSize: 16})
	d.footerBlock(243, 244, 246)

	return d.output()
}
