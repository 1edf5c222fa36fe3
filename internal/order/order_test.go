package order

import (
	"testing"

	"github.com/jms-catering/api/internal/enum"
	"github.com/shopspring/decimal"
)

func TestLineTotal(t *testing.T) {
	c := AdditionalCost{Amount: decimal.NewFromInt(500), Quantity: 4}
	if !c.LineTotal().Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("line total: got %s, want 2000", c.LineTotal())
	}

	// A missing quantity counts as one unit.
	c = AdditionalCost{Amount: decimal.NewFromInt(500)}
	if !c.LineTotal().Equal(decimal.NewFromInt(500)) {
		t.Fatalf("line total without quantity: got %s, want 500", c.LineTotal())
	}
}

func TestDisplayLabel(t *testing.T) {
	cases := []struct {
		name string
		cost AdditionalCost
		want string
	}{
		{
			name: "typed cost uses the type label",
			cost: AdditionalCost{Type: enum.CostTypeTransportation},
			want: "Transportation",
		},
		{
			name: "other with description prints the description",
			cost: AdditionalCost{Type: enum.CostTypeOther, Label: "Generator", Description: "Diesel generator, 8 hours"},
			want: "Diesel generator, 8 hours",
		},
		{
			name: "other without description falls back to the type label",
			cost: AdditionalCost{Type: enum.CostTypeOther, Label: "Generator"},
			want: "Other",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cost.DisplayLabel(); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
