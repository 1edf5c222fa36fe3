package document

import (
	"testing"

	"github.com/shopspring/decimal"
)

func heading(text string) Block { return Block{Kind: BlockHeading, Text: text} }
func item(text string) Block    { return Block{Kind: BlockLineItem, Text: text, Indent: 1} }
func subItem(text string) Block { return Block{Kind: BlockLineItem, Text: text, Indent: 2} }
func totalLine() Block          { return Block{Kind: BlockTotalLine, Amount: decimal.NewFromInt(1000)} }
func costLine(label string) Block {
	return Block{Kind: BlockCostLine, Label: label, Quantity: 1, UnitAmount: decimal.NewFromInt(500), LineTotal: decimal.NewFromInt(500)}
}
func repeat(b Block, n int) []Block {
	out := make([]Block, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func TestPaginate_SinglePageStartsBelowHeader(t *testing.T) {
	blocks := []Block{heading("Veg Lunch"), item("1.  Idli"), item("2.  Pongal"), totalLine()}
	pages := Paginate(blocks, DefaultGeometry())

	if len(pages) != 1 {
		t.Fatalf("pages: got %d, want 1", len(pages))
	}
	ins := pages[0].Instructions
	if ins[0].Y != 85 {
		t.Fatalf("first block Y: got %v, want 85", ins[0].Y)
	}
	if ins[1].Y != 95 || ins[2].Y != 102 {
		t.Fatalf("item positions: got %v, %v, want 95, 102", ins[1].Y, ins[2].Y)
	}
	// A short document pins the total to the bottom region.
	if last := ins[len(ins)-1]; last.Block.Kind != BlockTotalLine || last.Y != 240 {
		t.Fatalf("total: got %+v, want Y 240", last)
	}
}

func TestPaginate_OverflowOpensNewPage(t *testing.T) {
	blocks := append([]Block{heading("Dinner")}, repeat(item("x"), 30)...)
	blocks = append(blocks, totalLine())
	pages := Paginate(blocks, DefaultGeometry())

	if len(pages) != 2 {
		t.Fatalf("pages: got %d, want 2", len(pages))
	}
	// 26 items fit below the heading before the 270 limit.
	if n := len(pages[0].Instructions); n != 27 {
		t.Fatalf("page 1 blocks: got %d, want heading plus 26 items", n)
	}
	if y := pages[1].Instructions[0].Y; y != 20 {
		t.Fatalf("page 2 resumes at Y %v, want 20", y)
	}
	for i, ins := range pages[1].Instructions {
		if ins.Block.Kind == BlockLineItem && ins.Y != 20+float64(i)*7 {
			t.Fatalf("page 2 item %d at Y %v", i, ins.Y)
		}
	}
}

func TestPaginate_SubItemsBreakAtTheirOwnLimit(t *testing.T) {
	blocks := []Block{heading("Veg Lunch"), {Kind: BlockSubHeading, Text: "Wedding Feast"}}
	blocks = append(blocks, repeat(subItem("x"), 35)...)
	blocks = append(blocks, totalLine())
	pages := Paginate(blocks, DefaultGeometry())

	if len(pages) < 2 {
		t.Fatalf("expected a page break, got %d page(s)", len(pages))
	}
	for _, p := range pages {
		for _, ins := range p.Instructions {
			if isSubItem(ins.Block) && ins.Y > 275 {
				t.Fatalf("sub-item past limit at Y %v", ins.Y)
			}
		}
	}
	if y := pages[1].Instructions[0].Y; y != 20 {
		t.Fatalf("continuation page starts at %v, want 20", y)
	}
}

func TestPaginate_TotalNeverCollidesWithItems(t *testing.T) {
	// 23 items leave the cursor at 256, inside the total's exclusion zone.
	blocks := append([]Block{heading("Dinner")}, repeat(item("x"), 23)...)
	blocks = append(blocks, totalLine())
	pages := Paginate(blocks, DefaultGeometry())

	if len(pages) != 2 {
		t.Fatalf("pages: got %d, want the total pushed to page 2", len(pages))
	}
	p2 := pages[1].Instructions
	if len(p2) != 1 || p2[0].Block.Kind != BlockTotalLine || p2[0].Y != 240 {
		t.Fatalf("page 2: got %+v, want only the total at Y 240", p2)
	}
}

func TestPaginate_TotalFollowsNearbyContent(t *testing.T) {
	// 20 items leave the cursor at 235; the total lands just below them.
	blocks := append([]Block{heading("Dinner")}, repeat(item("x"), 20)...)
	blocks = append(blocks, totalLine())
	pages := Paginate(blocks, DefaultGeometry())

	if len(pages) != 1 {
		t.Fatalf("pages: got %d, want 1", len(pages))
	}
	last := pages[0].Instructions[len(pages[0].Instructions)-1]
	if last.Block.Kind != BlockTotalLine || last.Y != 245 {
		t.Fatalf("total: got Y %v, want 245", last.Y)
	}
}

func TestPaginate_ChargesHeadingStaysWithItsLines(t *testing.T) {
	// 23 items leave the heading at 266, past the charges threshold of 250
	// though still inside the generic item limit. The whole section moves.
	blocks := append([]Block{heading("Dinner")}, repeat(item("x"), 23)...)
	blocks = append(blocks, heading("Additional Charges"), costLine("Transportation"), costLine("Service Staff"), totalLine())
	pages := Paginate(blocks, DefaultGeometry())

	if len(pages) != 2 {
		t.Fatalf("pages: got %d, want 2", len(pages))
	}
	p2 := pages[1].Instructions
	if p2[0].Block.Text != "Additional Charges" || p2[0].Y != 20 {
		t.Fatalf("page 2 opens with %+v, want the charges heading at Y 20", p2[0])
	}
	if p2[1].Block.Kind != BlockCostLine || p2[1].Y != 30 {
		t.Fatalf("first cost line: got %+v, want Y 30", p2[1])
	}
	if p2[2].Block.Kind != BlockCostLine || p2[2].Y != 37 {
		t.Fatalf("second cost line: got %+v, want Y 37", p2[2])
	}
}

func TestPaginate_ShortChargesSectionStaysOnPage(t *testing.T) {
	blocks := append([]Block{heading("Dinner")}, repeat(item("x"), 5)...)
	blocks = append(blocks, heading("Additional Charges"), costLine("Transportation"), totalLine())
	pages := Paginate(blocks, DefaultGeometry())

	if len(pages) != 1 {
		t.Fatalf("pages: got %d, want 1", len(pages))
	}
	ins := pages[0].Instructions
	// 85 +10 heading +5×7 items, then the group gap.
	if ins[6].Block.Text != "Additional Charges" || ins[6].Y != 140 {
		t.Fatalf("charges heading: got %+v, want Y 140", ins[6])
	}
}

func TestPaginate_GapBetweenGroups(t *testing.T) {
	blocks := []Block{
		heading("Non Veg Lunch"),
		{Kind: BlockSubHeading, Text: "Feast"},
		subItem("1. Sambar"),
		subItem("2. Rasam"),
		heading("Veg"),
		item("1.  Curd Rice"),
		totalLine(),
	}
	pages := Paginate(blocks, DefaultGeometry())
	ins := pages[0].Instructions

	// 85 +10 heading +7 sub-heading +6+6 sub-items, then the sub-list gap
	// and the group gap before the next heading.
	if ins[4].Block.Text != "Veg" {
		t.Fatalf("block 4: got %+v", ins[4].Block)
	}
	if ins[4].Y != 129 {
		t.Fatalf("second group heading Y: got %v, want 129", ins[4].Y)
	}
}
