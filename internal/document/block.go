package document

import "github.com/shopspring/decimal"

// BlockKind discriminates the renderer-agnostic content units produced by
// composition.
type BlockKind string

const (
	// BlockHeading is a group heading ("Non Veg Lunch", "Additional
	// Charges"). Count, when > 0, is printed as "{n} nos" on the right.
	// Detail, when set, is inline continuation text drawn next to the
	// heading (used by the "Welcome Drinks" line).
	BlockHeading BlockKind = "HEADING"

	// BlockSubHeading is a preset package name printed bold above its
	// resolved contents, optionally annotated with a rate.
	BlockSubHeading BlockKind = "SUB_HEADING"

	// BlockLineItem is one numbered menu line. Indent 1 is an item under a
	// group heading; indent 2 is a fixed item or chosen option under a
	// sub-heading.
	BlockLineItem BlockKind = "LINE_ITEM"

	// BlockCostLine is one additional charge with its line total.
	BlockCostLine BlockKind = "COST_LINE"

	// BlockTotalLine is the final overall cost.
	BlockTotalLine BlockKind = "TOTAL_LINE"
)

// Block is one unit of composed document content. Which fields are
// meaningful depends on Kind.
type Block struct {
	Kind BlockKind

	Text   string
	Detail string
	Count  int32
	Indent int

	Label      string
	Quantity   int32
	UnitAmount decimal.Decimal
	LineTotal  decimal.Decimal

	Amount decimal.Decimal
}
