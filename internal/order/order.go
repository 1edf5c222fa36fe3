package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jms-catering/api/internal/enum"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned by repositories when no order matches the id.
var ErrNotFound = errors.New("order not found")

// AdditionalCost is an itemized charge on a quote (transport, staff, ...).
// Owned by exactly one order; editable only while the order is not completed.
type AdditionalCost struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"` // enum.CostType*
	Label       string          `json:"label,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int32           `json:"quantity"`
	Description string          `json:"description,omitempty"`
}

// LineTotal returns amount × quantity, treating a missing quantity as 1.
func (c AdditionalCost) LineTotal() decimal.Decimal {
	qty := c.Quantity
	if qty < 1 {
		qty = 1
	}
	return c.Amount.Mul(decimal.NewFromInt32(qty))
}

// DisplayLabel returns the label printed on documents: the free-form
// description when the type is OTHER and a description exists, else the
// type's printable name. The custom label identifies the cost in lists
// and is not printed on documents.
func (c AdditionalCost) DisplayLabel() string {
	if c.Type == enum.CostTypeOther && c.Description != "" {
		return c.Description
	}
	return enum.CostTypeLabel(c.Type)
}

// SelectedOption is one resolved choice on a preset order item. Kept as an
// ordered slice rather than a map so composed documents are deterministic.
type SelectedOption struct {
	Label  string `json:"label"`
	Choice string `json:"choice"`
}

// OrderItem is a snapshot of a menu item (or preset package) at submission
// time. The base selection is fixed once the order is created.
type OrderItem struct {
	MenuItemID      uuid.UUID        `json:"menu_item_id"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	Price           decimal.Decimal  `json:"price"`
	Dietary         string           `json:"dietary,omitempty"`
	FoodCategory    string           `json:"food_category,omitempty"`
	Quantity        int32            `json:"quantity"`
	IsPreset        bool             `json:"is_preset,omitempty"`
	SelectedOptions []SelectedOption `json:"selected_options,omitempty"`
}

// Order is the aggregate root for one catering engagement.
type Order struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerPhone string
	EventDate     time.Time
	EventTime     string
	Address       string
	MealType      string // enum.MealType*
	Items         []OrderItem
	Status        string // enum.OrderStatus*
	CreatedAt     time.Time

	// Quote estimation fields. TotalEstimatedCost is always recomputed in
	// the same update that changes PerHeadAmount, GuestCount or
	// AdditionalCosts.
	PerHeadAmount      decimal.Decimal
	GuestCount         int32
	AdditionalCosts    []AdditionalCost
	TotalEstimatedCost decimal.Decimal

	// Completion fields, set exactly once at the transition to COMPLETED.
	CompletedAt   *time.Time
	BillNumber    string
	PaymentStatus string // enum.PaymentStatus*, empty until completed
}

// Repository is the persistence collaborator for orders. Last-write-wins
// storage; the engine does not depend on transactions.
type Repository interface {
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id uuid.UUID) (Order, error)
	Create(ctx context.Context, o Order) (Order, error)
	Update(ctx context.Context, o Order) (Order, error)
	Count(ctx context.Context) (int64, error)
}
