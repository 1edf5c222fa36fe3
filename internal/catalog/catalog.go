package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Errors returned by catalog stores.
var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrPresetNotFound   = errors.New("preset menu not found")
)

// MenuItem is immutable reference data for a single à-la-carte dish.
type MenuItem struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Dietary      string          `json:"dietary"`       // enum.Dietary*
	FoodCategory string          `json:"food_category"` // enum.FoodCategory*
}

// OptionGroup is a labeled choice set on a preset menu. The customer picks
// exactly one choice per group.
type OptionGroup struct {
	Label   string   `json:"label"`
	Choices []string `json:"choices"`
}

// PresetMenu is a named package with always-included fixed items and one or
// more option groups. Fixed items and option groups keep their defined order;
// document composition depends on it.
type PresetMenu struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	PricePerHead decimal.Decimal `json:"price_per_head"`
	MealCategory string          `json:"meal_category"` // enum.MealType*
	FixedItems   []string        `json:"fixed_items"`
	OptionGroups []OptionGroup   `json:"option_groups"`
}

// Store is the persistence interface for catalog reference data.
// Satisfied by repository.CatalogStore and repository.MemoryCatalog.
type Store interface {
	ListMenuItems(ctx context.Context) ([]MenuItem, error)
	GetMenuItem(ctx context.Context, id uuid.UUID) (MenuItem, error)
	CreateMenuItem(ctx context.Context, item MenuItem) (MenuItem, error)
	DeleteMenuItem(ctx context.Context, id uuid.UUID) error

	ListPresetMenus(ctx context.Context) ([]PresetMenu, error)
	GetPresetMenu(ctx context.Context, id uuid.UUID) (PresetMenu, error)
	FindPresetByName(ctx context.Context, name string) (PresetMenu, error)
	CreatePresetMenu(ctx context.Context, preset PresetMenu) (PresetMenu, error)
	DeletePresetMenu(ctx context.Context, id uuid.UUID) error
}

// PresetIndex is a read-only name → preset lookup snapshot. Document
// composition takes one of these instead of a Store so composing stays a
// pure function over already-loaded data.
type PresetIndex map[string]PresetMenu

// IndexByName builds a PresetIndex keyed on exact preset name.
func IndexByName(presets []PresetMenu) PresetIndex {
	idx := make(PresetIndex, len(presets))
	for _, p := range presets {
		idx[p.Name] = p
	}
	return idx
}
