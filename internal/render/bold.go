package render

import (
	"github.com/rezonia/invoice-studio/internal/model"
)

// boldRenderer opens with a full-width accent banner carrying reversed
// identity text, then zebra-striped items and oversized totals.
type boldRenderer struct{}

func (r *boldRenderer) Name() model.TemplateName { return model.TemplateBold }

func (r *boldRenderer) Render(in Input) ([]byte, error) {
	d := newDoc(in)
	details := in.Invoice.Details

	// Banner header across the full page width
	bannerH := 52.0
	d.accentFill()
	d.pdf.Rect(0, 0, pageWidth, bannerH, "F")

	d.pdf.SetY(12)
	d.logoOrName(16, 24, true)
	d.pdf.SetTextColor(255, 255, 255)
	d.contactLines(9, 4.5, in.Invoice.Sender.Address, joinNonEmpty(in.Invoice.Sender.Email, in.Invoice.Sender.Phone))

	d.pdf.SetXY(pageWidth/2, 14)
	d.font("B", 26)
	d.pdf.SetTextColor(255, 255, 255)
	d.cell(contentWidth/2, 11, "INVOICE", "R")
	d.pdf.SetXY(pageWidth/2, 26)
	d.font("B", 15)
	d.cell(contentWidth/2, 7, "#"+details.Number, "R")

	d.pdf.SetY(bannerH + 10)

	// Issue dates left, billed-to right
	top := d.pdf.GetY()
	y := top
	d.pdf.SetXY(pageMargin, y)
	d.font("B", 8)
	d.grayText(107)
	d.cell(85, 5, "DATE ISSUED", "L")
	y += 6
	d.pdf.SetXY(pageMargin, y)
	d.font("B", 12)
	d.grayText(17)
	d.cell(85, 6, details.Date, "L")
	y += 9
	if details.DueDate != "" {
		d.pdf.SetXY(pageMargin, y)
		d.font("B", 8)
		d.grayText(107)
		d.cell(85, 5, "PAYMENT DUE", "L")
		y += 6
		d.pdf.SetXY(pageMargin, y)
		d.font("B", 12)
		d.accentText()
		d.cell(85, 6, details.DueDate, "L")
		y += 9
	}

	billBottom := d.partyBlock(pageMargin+95, top, contentWidth-95, "Billed To", in.Invoice.Receiver, true)
	if billBottom > y {
		y = billBottom
	}
	d.pdf.SetY(y)
	d.ln(8)

	d.itemsTable(tableStyle{headerFill: true, zebra: true, rowH: 9, descLabel: "Item Description"})
	d.ln(8)

	d.totalsBlock(totalsStyle{width: 95, accentTotal: true, totalLabel: "TOTAL", totalSize: 15})
	d.footerBlock(229, 231, 235)

	return d.output()
}

// joinNonEmpty joins the non-empty parts with a separator dot.
func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " • "
		}
		out += p
	}
	return out
}
