package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jms-catering/api/internal/catalog"
	"github.com/jms-catering/api/internal/enum"
	"github.com/jms-catering/api/internal/order"
	"github.com/shopspring/decimal"
)

// Errors returned by the intake service.
var (
	ErrEmptyItems          = errors.New("items are required")
	ErrInvalidMealType     = errors.New("invalid meal_type")
	ErrInvalidGuestCount   = errors.New("guest_count must be > 0")
	ErrMissingCustomer     = errors.New("customer name and phone are required")
	ErrInvalidEventDate    = errors.New("invalid event_date")
	ErrPastEventDate       = errors.New("event date cannot be in the past")
	ErrMissingOptionChoice = errors.New("a choice is required for every option group")
	ErrUnknownOptionGroup  = errors.New("option group not defined on preset")
	ErrInvalidOptionChoice = errors.New("choice is not offered by the option group")
)

// IntakeStore defines the repository methods needed to place orders.
type IntakeStore interface {
	Create(ctx context.Context, o order.Order) (order.Order, error)
}

// IntakeService turns customer quote requests into PENDING orders.
// Item selections are snapshotted from the catalog at submission time;
// afterwards the base selection is fixed.
type IntakeService struct {
	store   IntakeStore
	catalog catalog.Store
	now     func() time.Time
}

// NewIntakeService creates a new IntakeService.
func NewIntakeService(store IntakeStore, cat catalog.Store) *IntakeService {
	return &IntakeService{store: store, catalog: cat, now: time.Now}
}

// PlaceOrderRequest carries the fields shared by both intake paths.
type PlaceOrderRequest struct {
	CustomerName  string
	CustomerPhone string
	EventDate     string // "2006-01-02"
	EventTime     string
	Address       string
	MealType      string
	GuestCount    int32
}

// validateCommon checks the shared intake fields and parses the event date.
func (s *IntakeService) validateCommon(req PlaceOrderRequest) (time.Time, error) {
	if req.CustomerName == "" || req.CustomerPhone == "" {
		return time.Time{}, ErrMissingCustomer
	}
	if !enum.IsValidMealType(req.MealType) {
		return time.Time{}, ErrInvalidMealType
	}
	if req.GuestCount <= 0 {
		return time.Time{}, ErrInvalidGuestCount
	}
	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", req.EventDate, ErrInvalidEventDate)
	}
	today := s.now().Truncate(24 * time.Hour)
	if eventDate.Before(today) {
		return time.Time{}, ErrPastEventDate
	}
	return eventDate, nil
}

// PlaceAlaCarteOrder creates a PENDING order from individually selected menu
// items. The total starts at zero; an operator estimates it later.
func (s *IntakeService) PlaceAlaCarteOrder(ctx context.Context, req PlaceOrderRequest, menuItemIDs []uuid.UUID) (order.Order, error) {
	eventDate, err := s.validateCommon(req)
	if err != nil {
		return order.Order{}, err
	}
	if len(menuItemIDs) == 0 {
		return order.Order{}, ErrEmptyItems
	}

	items := make([]order.OrderItem, 0, len(menuItemIDs))
	for i, id := range menuItemIDs {
		mi, err := s.catalog.GetMenuItem(ctx, id)
		if err != nil {
			return order.Order{}, fmt.Errorf("items[%d]: %w", i, err)
		}
		items = append(items, order.OrderItem{
			MenuItemID:   mi.ID,
			Name:         mi.Name,
			Description:  mi.Description,
			Price:        mi.Price,
			Dietary:      mi.Dietary,
			FoodCategory: mi.FoodCategory,
			Quantity:     1,
		})
	}

	return s.store.Create(ctx, order.Order{
		ID:                 uuid.New(),
		CustomerName:       req.CustomerName,
		CustomerPhone:      req.CustomerPhone,
		EventDate:          eventDate,
		EventTime:          req.EventTime,
		Address:            req.Address,
		MealType:           req.MealType,
		Items:              items,
		Status:             enum.OrderStatusPending,
		GuestCount:         req.GuestCount,
		TotalEstimatedCost: decimal.Zero,
		CreatedAt:          s.now(),
	})
}

// PlacePresetOrder creates a PENDING order from a preset package, with
// exactly one chosen option per option group. The total is pre-computed as
// pricePerHead × guestCount.
func (s *IntakeService) PlacePresetOrder(ctx context.Context, req PlaceOrderRequest, presetID uuid.UUID, choices map[string]string) (order.Order, error) {
	eventDate, err := s.validateCommon(req)
	if err != nil {
		return order.Order{}, err
	}

	preset, err := s.catalog.GetPresetMenu(ctx, presetID)
	if err != nil {
		return order.Order{}, err
	}

	// One selection per option group, in the preset's declared group order.
	selected := make([]order.SelectedOption, 0, len(preset.OptionGroups))
	for _, group := range preset.OptionGroups {
		choice, ok := choices[group.Label]
		if !ok || choice == "" {
			return order.Order{}, fmt.Errorf("%s: %w", group.Label, ErrMissingOptionChoice)
		}
		if !contains(group.Choices, choice) {
			return order.Order{}, fmt.Errorf("%s: %q: %w", group.Label, choice, ErrInvalidOptionChoice)
		}
		selected = append(selected, order.SelectedOption{Label: group.Label, Choice: choice})
	}
	for label := range choices {
		if !hasGroup(preset.OptionGroups, label) {
			return order.Order{}, fmt.Errorf("%s: %w", label, ErrUnknownOptionGroup)
		}
	}

	item := order.OrderItem{
		MenuItemID:      preset.ID,
		Name:            preset.Name,
		Description:     "Preset Package",
		Price:           decimal.Zero,
		Quantity:        req.GuestCount,
		IsPreset:        true,
		SelectedOptions: selected,
	}

	return s.store.Create(ctx, order.Order{
		ID:                 uuid.New(),
		CustomerName:       req.CustomerName,
		CustomerPhone:      req.CustomerPhone,
		EventDate:          eventDate,
		EventTime:          req.EventTime,
		Address:            req.Address,
		MealType:           req.MealType,
		Items:              []order.OrderItem{item},
		Status:             enum.OrderStatusPending,
		GuestCount:         req.GuestCount,
		TotalEstimatedCost: preset.PricePerHead.Mul(decimal.NewFromInt32(req.GuestCount)),
		CreatedAt:          s.now(),
	})
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func hasGroup(groups []catalog.OptionGroup, label string) bool {
	for _, g := range groups {
		if g.Label == label {
			return true
		}
	}
	return false
}
