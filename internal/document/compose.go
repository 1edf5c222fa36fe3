package document

import (
	"fmt"
	"strings"

	"github.com/jms-catering/api/internal/catalog"
	"github.com/jms-catering/api/internal/enum"
	"github.com/jms-catering/api/internal/order"
)

// Compose turns an order into the ordered block sequence of its printable
// quote/bill. It is a pure function over its inputs: composing the same
// (order, presets) pair twice yields identical sequences. Bill numbering and
// timestamps are taken from the order as-is, never from a clock.
//
// Layout order: welcome drinks, then Non-Veg / Veg / Other item groups under
// meal-type headings, then additional charges, then the total.
func Compose(o order.Order, presets catalog.PresetIndex) []Block {
	var blocks []Block

	beverages, nonVeg, veg, other := partitionItems(o.Items)

	if len(beverages) > 0 {
		names := make([]string, len(beverages))
		for i, it := range beverages {
			names[i] = it.Name
		}
		blocks = append(blocks, Block{
			Kind:   BlockHeading,
			Text:   "Welcome Drinks",
			Detail: strings.Join(names, " or "),
		})
	}

	meal := enum.MealTypeLabel(o.MealType)

	// The aggregate guest count is printed on whichever group comes first;
	// the data model carries one count, never a per-group split.
	countFor := func(first bool) int32 {
		if first {
			return o.GuestCount
		}
		return 0
	}

	if len(nonVeg) > 0 {
		blocks = appendItemGroup(blocks, "Non Veg "+meal, nonVeg, countFor(true), o, presets)
	}
	if len(veg) > 0 {
		title := "Veg " + meal
		if len(nonVeg) > 0 {
			title = "Veg"
		}
		blocks = appendItemGroup(blocks, title, veg, countFor(len(nonVeg) == 0), o, presets)
	}
	if len(other) > 0 {
		blocks = appendItemGroup(blocks, meal, other, countFor(len(nonVeg) == 0 && len(veg) == 0), o, presets)
	}

	if len(o.AdditionalCosts) > 0 {
		blocks = append(blocks, Block{Kind: BlockHeading, Text: "Additional Charges"})
		for _, c := range o.AdditionalCosts {
			qty := c.Quantity
			if qty < 1 {
				qty = 1
			}
			blocks = append(blocks, Block{
				Kind:       BlockCostLine,
				Label:      c.DisplayLabel(),
				Quantity:   qty,
				UnitAmount: c.Amount,
				LineTotal:  c.LineTotal(),
			})
		}
	}

	blocks = append(blocks, Block{Kind: BlockTotalLine, Amount: o.TotalEstimatedCost})
	return blocks
}

// partitionItems splits items into the four disjoint print groups. Beverages
// take precedence; the rest is a total match over the dietary axis, with
// anything outside {Veg, NonVeg} (preset packages, legacy rows) falling
// through to Other.
func partitionItems(items []order.OrderItem) (beverages, nonVeg, veg, other []order.OrderItem) {
	for _, it := range items {
		if it.FoodCategory == enum.FoodCategoryBeverages || it.Dietary == enum.FoodCategoryBeverages {
			beverages = append(beverages, it)
			continue
		}
		switch it.Dietary {
		case enum.DietaryNonVeg:
			nonVeg = append(nonVeg, it)
		case enum.DietaryVeg:
			veg = append(veg, it)
		default:
			other = append(other, it)
		}
	}
	return beverages, nonVeg, veg, other
}

// appendItemGroup emits a group heading followed by its items. An item whose
// name matches a preset with fixed items, or that carries selected options,
// becomes a sub-heading with its resolved contents numbered beneath it;
// anything else is a flat numbered line.
func appendItemGroup(blocks []Block, title string, items []order.OrderItem, count int32, o order.Order, presets catalog.PresetIndex) []Block {
	blocks = append(blocks, Block{Kind: BlockHeading, Text: title, Count: count})

	for i, it := range items {
		preset, found := presets[it.Name]
		if (found && len(preset.FixedItems) > 0) || len(it.SelectedOptions) > 0 {
			blocks = append(blocks, Block{
				Kind: BlockSubHeading,
				Text: strings.TrimSpace(it.Name + " " + rateAnnotation(o, it)),
			})
			n := 1
			if found {
				for _, fixed := range preset.FixedItems {
					blocks = append(blocks, Block{
						Kind:   BlockLineItem,
						Text:   fmt.Sprintf("%d. %s", n, fixed),
						Indent: 2,
					})
					n++
				}
			}
			for _, opt := range it.SelectedOptions {
				blocks = append(blocks, Block{
					Kind:   BlockLineItem,
					Text:   fmt.Sprintf("%d. %s", n, opt.Choice),
					Indent: 2,
				})
				n++
			}
			continue
		}

		blocks = append(blocks, Block{
			Kind:   BlockLineItem,
			Text:   fmt.Sprintf("%d.  %s", i+1, it.Name),
			Indent: 1,
		})
	}
	return blocks
}

// rateAnnotation returns the price note on a preset sub-heading: the order's
// per-head rate when one has been quoted, else the item's own price.
func rateAnnotation(o order.Order, it order.OrderItem) string {
	if o.PerHeadAmount.IsPositive() {
		return fmt.Sprintf("(Rate: Rs.%s)", o.PerHeadAmount.StringFixed(0))
	}
	if it.Price.IsPositive() {
		return fmt.Sprintf("(Rs.%s)", it.Price.StringFixed(0))
	}
	return ""
}
