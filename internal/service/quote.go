package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jms-catering/api/internal/enum"
	"github.com/jms-catering/api/internal/order"
	"github.com/shopspring/decimal"
)

// Errors returned by the quote service.
var (
	ErrInvalidEstimateInput = errors.New("estimate inputs must be non-negative")
	ErrInvalidCost          = errors.New("cost amount must be > 0")
	ErrMissingLabel         = errors.New("custom cost type requires a label")
	ErrInvalidCostType      = errors.New("invalid cost type")
	ErrOrderLocked          = errors.New("order is completed and locked")
	ErrCostNotFound         = errors.New("additional cost not found")
)

// Estimate computes the total quote for an order:
//
//	perHead × guests + Σ(cost.amount × cost.quantity)
//
// A missing cost quantity counts as 1. Negative inputs are rejected; the
// result carries the currency's natural precision, no extra rounding.
func Estimate(perHead decimal.Decimal, guests int32, costs []order.AdditionalCost) (decimal.Decimal, error) {
	if perHead.IsNegative() || guests < 0 {
		return decimal.Zero, ErrInvalidEstimateInput
	}
	total := perHead.Mul(decimal.NewFromInt32(guests))
	for i, c := range costs {
		if c.Amount.IsNegative() {
			return decimal.Zero, fmt.Errorf("costs[%d]: %w", i, ErrInvalidEstimateInput)
		}
		total = total.Add(c.LineTotal())
	}
	return total, nil
}

// QuoteStore defines the repository methods needed for quote edits.
// Satisfied by order.Repository implementations.
type QuoteStore interface {
	Get(ctx context.Context, id uuid.UUID) (order.Order, error)
	Update(ctx context.Context, o order.Order) (order.Order, error)
}

// QuoteService attaches cost estimates to orders. Every mutation recomputes
// TotalEstimatedCost in the same update, so the stored total is never stale
// relative to its inputs.
type QuoteService struct {
	store QuoteStore
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(store QuoteStore) *QuoteService {
	return &QuoteService{store: store}
}

// AdditionalCostInput is the unvalidated input for one additional cost.
type AdditionalCostInput struct {
	Type        string
	Label       string
	Amount      decimal.Decimal
	Quantity    int32
	Description string
}

// admitCost validates one additional cost input and returns the admitted
// cost with an assigned id.
func admitCost(in AdditionalCostInput) (order.AdditionalCost, error) {
	if !enum.IsValidCostType(in.Type) {
		return order.AdditionalCost{}, ErrInvalidCostType
	}
	if !in.Amount.IsPositive() {
		return order.AdditionalCost{}, ErrInvalidCost
	}
	if in.Type == enum.CostTypeOther && in.Label == "" {
		return order.AdditionalCost{}, ErrMissingLabel
	}
	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}
	return order.AdditionalCost{
		ID:          uuid.New(),
		Type:        in.Type,
		Label:       in.Label,
		Amount:      in.Amount,
		Quantity:    qty,
		Description: in.Description,
	}, nil
}

// ApplyQuote replaces an order's quote fields (per-head amount, guest count,
// additional costs) and the derived total in one atomic update. The order's
// status is untouched. Rejected inputs leave the stored order unchanged.
func (s *QuoteService) ApplyQuote(ctx context.Context, id uuid.UUID, perHead decimal.Decimal, guests int32, costs []AdditionalCostInput) (order.Order, error) {
	o, err := s.store.Get(ctx, id)
	if err != nil {
		return order.Order{}, err
	}
	if o.Status == enum.OrderStatusCompleted {
		return order.Order{}, ErrOrderLocked
	}

	admitted := make([]order.AdditionalCost, 0, len(costs))
	for i, in := range costs {
		c, err := admitCost(in)
		if err != nil {
			return order.Order{}, fmt.Errorf("costs[%d]: %w", i, err)
		}
		admitted = append(admitted, c)
	}

	total, err := Estimate(perHead, guests, admitted)
	if err != nil {
		return order.Order{}, err
	}

	o.PerHeadAmount = perHead
	o.GuestCount = guests
	o.AdditionalCosts = admitted
	o.TotalEstimatedCost = total
	return s.store.Update(ctx, o)
}

// AddCost admits one additional cost onto an order and recomputes the total.
func (s *QuoteService) AddCost(ctx context.Context, id uuid.UUID, in AdditionalCostInput) (order.Order, error) {
	o, err := s.store.Get(ctx, id)
	if err != nil {
		return order.Order{}, err
	}
	if o.Status == enum.OrderStatusCompleted {
		return order.Order{}, ErrOrderLocked
	}
	c, err := admitCost(in)
	if err != nil {
		return order.Order{}, err
	}

	costs := append(append([]order.AdditionalCost(nil), o.AdditionalCosts...), c)
	total, err := Estimate(o.PerHeadAmount, o.GuestCount, costs)
	if err != nil {
		return order.Order{}, err
	}

	o.AdditionalCosts = costs
	o.TotalEstimatedCost = total
	return s.store.Update(ctx, o)
}

// RemoveCost deletes one additional cost by id and recomputes the total.
// Removal after completion is rejected with ErrOrderLocked.
func (s *QuoteService) RemoveCost(ctx context.Context, id, costID uuid.UUID) (order.Order, error) {
	o, err := s.store.Get(ctx, id)
	if err != nil {
		return order.Order{}, err
	}
	if o.Status == enum.OrderStatusCompleted {
		return order.Order{}, ErrOrderLocked
	}

	costs := make([]order.AdditionalCost, 0, len(o.AdditionalCosts))
	found := false
	for _, c := range o.AdditionalCosts {
		if c.ID == costID {
			found = true
			continue
		}
		costs = append(costs, c)
	}
	if !found {
		return order.Order{}, ErrCostNotFound
	}

	total, err := Estimate(o.PerHeadAmount, o.GuestCount, costs)
	if err != nil {
		return order.Order{}, err
	}

	o.AdditionalCosts = costs
	o.TotalEstimatedCost = total
	return s.store.Update(ctx, o)
}
