package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jms-catering/api/internal/enum"
	"github.com/jms-catering/api/internal/order"
)

// Errors returned by the lifecycle service.
var (
	ErrInvalidTransition    = errors.New("transition not permitted from current status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrNotCompleted         = errors.New("payment status requires a completed order")
)

const billNumberPrefix = "JMS"

// BillSequence yields the next bill sequence number. The default
// implementation derives it from the stored order count, matching the
// business's historical numbering; deployments needing collision-free
// numbers can swap in a dedicated counter.
type BillSequence interface {
	Next(ctx context.Context) (int64, error)
}

// CountBillSequence derives the next bill number from the total order count.
type CountBillSequence struct {
	Store interface {
		Count(ctx context.Context) (int64, error)
	}
}

// Next returns count + 1.
func (s CountBillSequence) Next(ctx context.Context) (int64, error) {
	n, err := s.Store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n + 1, nil
}

// LifecycleStore defines the repository methods needed for transitions.
type LifecycleStore interface {
	Get(ctx context.Context, id uuid.UUID) (order.Order, error)
	Update(ctx context.Context, o order.Order) (order.Order, error)
}

// LifecycleService drives the order state machine:
//
//	PENDING → CONFIRMED → COMPLETED
//
// Status only moves forward. A rejected transition leaves the order
// unchanged.
type LifecycleService struct {
	store LifecycleStore
	seq   BillSequence
	now   func() time.Time
}

// NewLifecycleService creates a new LifecycleService.
func NewLifecycleService(store LifecycleStore, seq BillSequence) *LifecycleService {
	return &LifecycleService{store: store, seq: seq, now: time.Now}
}

// Accept moves a PENDING order to CONFIRMED. No other field changes.
func (s *LifecycleService) Accept(ctx context.Context, id uuid.UUID) (order.Order, error) {
	o, err := s.store.Get(ctx, id)
	if err != nil {
		return order.Order{}, err
	}
	if o.Status != enum.OrderStatusPending {
		return order.Order{}, fmt.Errorf("accept from %s: %w", o.Status, ErrInvalidTransition)
	}
	o.Status = enum.OrderStatusConfirmed
	return s.store.Update(ctx, o)
}

// Complete moves a CONFIRMED order to COMPLETED, stamping the completion
// time, assigning the bill number and defaulting the payment status.
// Bill numbers look like JMS-20260828-42.
func (s *LifecycleService) Complete(ctx context.Context, id uuid.UUID) (order.Order, error) {
	o, err := s.store.Get(ctx, id)
	if err != nil {
		return order.Order{}, err
	}
	if o.Status != enum.OrderStatusConfirmed {
		return order.Order{}, fmt.Errorf("complete from %s: %w", o.Status, ErrInvalidTransition)
	}

	n, err := s.seq.Next(ctx)
	if err != nil {
		return order.Order{}, err
	}

	now := s.now()
	o.Status = enum.OrderStatusCompleted
	o.CompletedAt = &now
	o.BillNumber = fmt.Sprintf("%s-%s-%d", billNumberPrefix, now.Format("20060102"), n)
	if o.PaymentStatus == "" {
		o.PaymentStatus = enum.PaymentStatusPending
	}
	return s.store.Update(ctx, o)
}

// SetPaymentStatus records a payment status on a completed order.
func (s *LifecycleService) SetPaymentStatus(ctx context.Context, id uuid.UUID, status string) (order.Order, error) {
	if !enum.IsValidPaymentStatus(status) {
		return order.Order{}, ErrInvalidPaymentStatus
	}
	o, err := s.store.Get(ctx, id)
	if err != nil {
		return order.Order{}, err
	}
	if o.Status != enum.OrderStatusCompleted {
		return order.Order{}, ErrNotCompleted
	}
	o.PaymentStatus = status
	return s.store.Update(ctx, o)
}
