package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/jms-catering/api/internal/catalog"
	"github.com/jms-catering/api/internal/enum"
	"github.com/jms-catering/api/internal/order"
)

// DocType distinguishes the two printable documents. A bill is a quote plus
// the bill number and completion details.
type DocType string

const (
	DocTypeQuote DocType = "Quote"
	DocTypeBill  DocType = "Bill"
)

// DocTypeFor returns the document an order is eligible for: a bill once the
// order is completed, a quote before that.
func DocTypeFor(o order.Order) DocType {
	if o.Status == enum.OrderStatusCompleted {
		return DocTypeBill
	}
	return DocTypeQuote
}

// BusinessInfo is the static letterhead content.
type BusinessInfo struct {
	Name    string
	Owner   string
	Phone   string
	Email   string
	Address string
}

// DefaultBusinessInfo is the letterhead used when none is configured.
func DefaultBusinessInfo() BusinessInfo {
	return BusinessInfo{
		Name:    "JMS CATERING",
		Owner:   "Prop: S.Jayaraman",
		Phone:   "Cell: 9884053358",
		Email:   "jmscatering@gmail.com",
		Address: "29, P.G.Avenue, Kattuapakkam, Chennai 56",
	}
}

// PDFRenderer draws composed, paginated content onto an A4 PDF with the
// business letterhead, page furniture and watermark.
type PDFRenderer struct {
	biz  BusinessInfo
	logo Asset
}

func NewPDFRenderer(biz BusinessInfo, logo Asset) *PDFRenderer {
	return &PDFRenderer{biz: biz, logo: logo}
}

// Generate composes, paginates and renders the given order's document in one
// call, using the default page geometry.
func (r *PDFRenderer) Generate(o order.Order, presets catalog.PresetIndex, dt DocType) ([]byte, error) {
	blocks := Compose(o, presets)
	pages := Paginate(blocks, DefaultGeometry())
	return r.Render(o, pages, dt)
}

// Render draws the paginated instructions. Furniture and the watermark are
// repeated on every page; the letterhead appears on page one only and the
// footer on the last page.
func (r *PDFRenderer) Render(o order.Order, pages []Page, dt DocType) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, page := range pages {
		pdf.AddPage()
		r.drawFurniture(pdf)
		if i == 0 {
			r.drawHeader(pdf, o, dt)
		}
		for _, ins := range page.Instructions {
			drawBlock(pdf, ins)
		}
	}

	r.drawFooter(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// drawFurniture draws the double border and the diagonal watermark.
func (r *PDFRenderer) drawFurniture(pdf *gofpdf.Fpdf) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1)
	pdf.Rect(5, 5, 200, 287, "D")
	pdf.SetLineWidth(0.5)
	pdf.Rect(7, 7, 196, 283, "D")

	pdf.SetFont("Times", "I", 120)
	pdf.SetTextColor(235, 235, 235)
	pdf.TransformBegin()
	pdf.TransformRotate(45, 105, 180)
	w := pdf.GetStringWidth("JMS")
	pdf.Text(105-w/2, 180, "JMS")
	pdf.TransformEnd()
	pdf.SetTextColor(0, 0, 0)
}

// drawHeader draws the page-one letterhead: logo (or the business name in
// red when the logo is unavailable), contact block on the right, document
// title, event subtitle and customer details.
func (r *PDFRenderer) drawHeader(pdf *gofpdf.Fpdf, o order.Order, dt DocType) {
	if r.logo.Loaded && r.logo.Width > 0 && r.logo.Height > 0 {
		w, h := fitWithin(float64(r.logo.Width), float64(r.logo.Height), 50, 25)
		opt := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("logo", opt, bytes.NewReader(r.logo.Data))
		pdf.ImageOptions("logo", 15, 10, w, h, false, opt, 0, "")
	} else {
		pdf.SetFont("Helvetica", "B", 20)
		pdf.SetTextColor(200, 30, 30)
		pdf.Text(15, 20, r.biz.Name)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.SetFont("Helvetica", "", 10)
	textRight(pdf, 195, 14, r.biz.Owner)
	textRight(pdf, 195, 19, r.biz.Phone)
	textRight(pdf, 195, 24, r.biz.Email)

	pdf.SetFont("Times", "B", 22)
	pdf.SetTextColor(102, 51, 153)
	textCenter(pdf, 105, 45, "Menu")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "B", 18)
	subtitle := fmt.Sprintf("(%s) - %s", o.EventDate.Format("02/01/06"), enum.MealTypeLabel(o.MealType))
	textCenter(pdf, 105, 55, subtitle)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(15, 65, fmt.Sprintf("Name: %s  Ph: %s", o.CustomerName, o.CustomerPhone))
	when := o.EventDate.Format("02/01/2006")
	if o.EventTime != "" {
		when += " " + o.EventTime
	}
	pdf.Text(15, 72, fmt.Sprintf("Venue: %s  Date: %s", o.Address, when))

	if dt == DocTypeBill && o.BillNumber != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Text(15, 79, "Bill No: "+o.BillNumber)
	}
}

func (r *PDFRenderer) drawFooter(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(80, 80, 80)
	textCenter(pdf, 105, 275, r.biz.Address)
	pdf.SetTextColor(0, 0, 0)
}

// Horizontal anchors per indent level, in millimeters.
const (
	headingX = 15
	itemX    = 20
	subItemX = 27
	rightX   = 195
)

func drawBlock(pdf *gofpdf.Fpdf, ins Instruction) {
	b := ins.Block
	switch b.Kind {
	case BlockHeading:
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(0, 128, 0)
		pdf.Text(headingX, ins.Y, b.Text)
		pdf.SetTextColor(0, 0, 0)
		if b.Detail != "" {
			pdf.SetFont("Helvetica", "", 11)
			pdf.Text(headingX+pdf.GetStringWidth(b.Text)+4, ins.Y, b.Detail)
		}
		if b.Count > 0 {
			pdf.SetFont("Helvetica", "B", 12)
			textRight(pdf, rightX, ins.Y, fmt.Sprintf("%d nos", b.Count))
		}

	case BlockSubHeading:
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Text(itemX, ins.Y, b.Text)

	case BlockLineItem:
		pdf.SetFont("Helvetica", "", 11)
		x := float64(itemX)
		if b.Indent > 1 {
			x = subItemX
		}
		pdf.Text(x, ins.Y, b.Text)

	case BlockCostLine:
		pdf.SetFont("Helvetica", "", 11)
		label := b.Label
		if b.Quantity > 1 {
			label = fmt.Sprintf("%s (%d x Rs.%s)", b.Label, b.Quantity, formatAmount(b.UnitAmount))
		}
		pdf.Text(itemX, ins.Y, label)
		textRight(pdf, rightX, ins.Y, "Rs. "+formatAmount(b.LineTotal))

	case BlockTotalLine:
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(229, 57, 53)
		textRight(pdf, rightX, ins.Y, fmt.Sprintf("Total Cost: Rs. %s /-", formatAmount(b.Amount)))
		pdf.SetTextColor(0, 0, 0)
	}
}

func textRight(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}

func textCenter(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s)/2, y, s)
}

// fitWithin scales (w, h) to fit inside (maxW, maxH) preserving aspect ratio.
func fitWithin(w, h, maxW, maxH float64) (float64, float64) {
	scale := maxW / w
	if s := maxH / h; s < scale {
		scale = s
	}
	if scale > 1 {
		scale = 1
	}
	return w * scale, h * scale
}

// formatAmount renders a monetary amount with thousands separators and no
// fractional digits.
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// FileName returns the download name for an order's document, for example
// "Anand_14-02-2026_Quote.pdf".
func FileName(o order.Order, dt DocType) string {
	name := strings.ReplaceAll(strings.TrimSpace(o.CustomerName), " ", "_")
	if name == "" {
		name = "Order"
	}
	return fmt.Sprintf("%s_%s_%s.pdf", name, o.EventDate.Format("02-01-2006"), dt)
}
