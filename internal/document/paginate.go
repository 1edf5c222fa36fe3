package document

// Geometry describes the printable region of a page in millimeters. The
// defaults mirror the business's A4 quote layout, where page one starts
// below the letterhead and later pages start just under the top frame.
type Geometry struct {
	Width  float64
	Height float64

	FirstTop float64 // content start on page one, below the header
	Top      float64 // content start on subsequent pages

	ItemLimit    float64 // past this, item-level blocks open a new page
	SubItemLimit float64 // past this, nested sub-item lines open a new page
	ChargesLimit float64 // past this, the charges section opens a new page
	TotalMinY    float64 // the total line is never drawn above this
	TotalLimit   float64 // past this, the total line opens a fresh page
}

// DefaultGeometry returns the A4 layout used for quotes and bills.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:        210,
		Height:       297,
		FirstTop:     85,
		Top:          20,
		ItemLimit:    270,
		SubItemLimit: 275,
		ChargesLimit: 250,
		TotalMinY:    240,
		TotalLimit:   240,
	}
}

// Vertical advances per block kind, in millimeters.
const (
	headingAdvance    = 10
	inlineAdvance     = 15 // heading with inline detail (welcome drinks)
	subHeadingAdvance = 7
	itemAdvance       = 7
	subItemAdvance    = 6
	costLineAdvance   = 7
	groupGap          = 10
	subListGap        = 5
)

// Instruction positions one block on a page. X placement is derived from the
// block's kind and indent by the renderer; pagination only decides Y.
type Instruction struct {
	Block Block
	Y     float64
}

// Page holds the positioned instructions of one rendered page. Furniture
// (border, watermark) is implicit: the renderer redraws it on every page.
type Page struct {
	Number       int
	Instructions []Instruction
}

// Cursor is the pagination accumulator: the current page index and the
// vertical position on it. It is passed and returned by value so each
// placement step is independently testable.
type Cursor struct {
	Page int
	Y    float64
}

// Paginate lays out composed blocks onto pages. Before each block it checks
// the remaining space at that block's level; on overflow it closes the page
// and resets the cursor to the top of a new one. The check applies uniformly
// to items and to the nested lines under a sub-heading, so a list is never
// torn without a page break, and no single line is ever split. The total
// line is placed last with its own space check.
func Paginate(blocks []Block, g Geometry) []Page {
	pages := []Page{{Number: 1}}
	cur := Cursor{Page: 0, Y: g.FirstTop}

	for i, b := range blocks {
		if i > 0 && isSubItem(blocks[i-1]) && !isSubItem(b) {
			cur.Y += subListGap
		}

		switch b.Kind {
		case BlockTotalLine:
			if cur.Y >= g.TotalLimit {
				pages, cur = breakPage(pages, g)
				cur.Y = g.TotalMinY
			} else if cur.Y+groupGap > g.TotalMinY {
				cur.Y += groupGap
			} else {
				cur.Y = g.TotalMinY
			}
			pages = place(pages, cur, b)

		default:
			// Groups are separated by a gap; the first heading after the
			// welcome-drinks line (or at the top of the document) gets none.
			if b.Kind == BlockHeading && i > 0 && blocks[i-1].Kind == BlockLineItem {
				cur.Y += groupGap
			}
			limit := limitFor(b, g)
			// The charges heading breaks earlier than plain items so it is
			// never stranded at the bottom of a page above its cost lines.
			if b.Kind == BlockHeading && i+1 < len(blocks) && blocks[i+1].Kind == BlockCostLine {
				limit = g.ChargesLimit
			}
			if cur.Y > limit {
				pages, cur = breakPage(pages, g)
			}
			pages = place(pages, cur, b)
			cur.Y += advanceFor(b)
		}
	}
	return pages
}

func isSubItem(b Block) bool {
	return b.Kind == BlockLineItem && b.Indent > 1
}

func limitFor(b Block, g Geometry) float64 {
	if isSubItem(b) {
		return g.SubItemLimit
	}
	return g.ItemLimit
}

func advanceFor(b Block) float64 {
	switch b.Kind {
	case BlockHeading:
		if b.Detail != "" {
			return inlineAdvance
		}
		return headingAdvance
	case BlockSubHeading:
		return subHeadingAdvance
	case BlockLineItem:
		if b.Indent > 1 {
			return subItemAdvance
		}
		return itemAdvance
	case BlockCostLine:
		return costLineAdvance
	}
	return itemAdvance
}

func place(pages []Page, cur Cursor, b Block) []Page {
	p := pages[cur.Page]
	p.Instructions = append(p.Instructions, Instruction{Block: b, Y: cur.Y})
	pages[cur.Page] = p
	return pages
}

func breakPage(pages []Page, g Geometry) ([]Page, Cursor) {
	pages = append(pages, Page{Number: len(pages) + 1})
	return pages, Cursor{Page: len(pages) - 1, Y: g.Top}
}
