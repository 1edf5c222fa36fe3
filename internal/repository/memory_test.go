package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jms-catering/api/internal/catalog"
	"github.com/jms-catering/api/internal/enum"
	"github.com/jms-catering/api/internal/order"
)

func TestMemoryOrders_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryOrders()

	o := order.Order{
		ID:           uuid.New(),
		CustomerName: "Anand",
		EventDate:    time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		MealType:     enum.MealTypeLunch,
		Status:       enum.OrderStatusPending,
		CreatedAt:    time.Now(),
	}

	if _, err := repo.Create(ctx, o); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, o.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CustomerName != "Anand" {
		t.Fatalf("customer name: got %q", got.CustomerName)
	}

	got.Status = enum.OrderStatusConfirmed
	if _, err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, _ := repo.Get(ctx, o.ID)
	if again.Status != enum.OrderStatusConfirmed {
		t.Fatalf("status after update: got %s", again.Status)
	}

	n, err := repo.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("count: got %d, %v", n, err)
	}
}

func TestMemoryOrders_GetMissing(t *testing.T) {
	repo := NewMemoryOrders()
	_, err := repo.Get(context.Background(), uuid.New())
	if !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestMemoryOrders_UpdateMissing(t *testing.T) {
	repo := NewMemoryOrders()
	_, err := repo.Update(context.Background(), order.Order{ID: uuid.New()})
	if !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestMemoryOrders_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryOrders()
	base := time.Now()

	older := order.Order{ID: uuid.New(), CustomerName: "first", CreatedAt: base.Add(-time.Hour)}
	newer := order.Order{ID: uuid.New(), CustomerName: "second", CreatedAt: base}
	repo.Create(ctx, older)
	repo.Create(ctx, newer)

	orders, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 2 || orders[0].CustomerName != "second" {
		t.Fatalf("want newest first, got %+v", orders)
	}
}

func TestMemoryCatalog_MenuItems(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCatalog()

	item := catalog.MenuItem{
		ID:           uuid.New(),
		Name:         "Gulab Jamun",
		Price:        decimal.NewFromInt(50),
		Dietary:      enum.DietaryVeg,
		FoodCategory: enum.FoodCategorySweet,
	}
	if _, err := store.CreateMenuItem(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.GetMenuItem(ctx, item.ID)
	if err != nil || got.Name != "Gulab Jamun" {
		t.Fatalf("get: %+v, %v", got, err)
	}

	if err := store.DeleteMenuItem(ctx, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.DeleteMenuItem(ctx, item.ID); !errors.Is(err, catalog.ErrMenuItemNotFound) {
		t.Fatalf("second delete: want ErrMenuItemNotFound, got %v", err)
	}
}

func TestMemoryCatalog_FindPresetByName(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCatalog()

	p := catalog.PresetMenu{
		ID:           uuid.New(),
		Name:         "Wedding Feast",
		PricePerHead: decimal.NewFromInt(350),
		MealCategory: enum.MealTypeLunch,
	}
	store.CreatePresetMenu(ctx, p)

	got, err := store.FindPresetByName(ctx, "Wedding Feast")
	if err != nil || got.ID != p.ID {
		t.Fatalf("find by name: %+v, %v", got, err)
	}

	_, err = store.FindPresetByName(ctx, "Birthday Feast")
	if !errors.Is(err, catalog.ErrPresetNotFound) {
		t.Fatalf("missing preset: want ErrPresetNotFound, got %v", err)
	}
}
