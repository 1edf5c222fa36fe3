package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jms-catering/api/internal/catalog"
	"github.com/jms-catering/api/internal/order"
)

// MemoryOrders is an in-memory order.Repository used by tests and local
// development. Same last-write-wins semantics as the PostgreSQL store.
type MemoryOrders struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]order.Order
}

func NewMemoryOrders() *MemoryOrders {
	return &MemoryOrders{orders: make(map[uuid.UUID]order.Order)}
}

func (m *MemoryOrders) List(ctx context.Context) ([]order.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]order.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (m *MemoryOrders) Get(ctx context.Context, id uuid.UUID) (order.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.orders[id]
	if !ok {
		return order.Order{}, order.ErrNotFound
	}
	return o, nil
}

func (m *MemoryOrders) Create(ctx context.Context, o order.Order) (order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.orders[o.ID] = o
	return o, nil
}

func (m *MemoryOrders) Update(ctx context.Context, o order.Order) (order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[o.ID]; !ok {
		return order.Order{}, order.ErrNotFound
	}
	m.orders[o.ID] = o
	return o, nil
}

func (m *MemoryOrders) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.orders)), nil
}

// MemoryCatalog is an in-memory catalog.Store.
type MemoryCatalog struct {
	mu      sync.RWMutex
	items   map[uuid.UUID]catalog.MenuItem
	presets map[uuid.UUID]catalog.PresetMenu
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		items:   make(map[uuid.UUID]catalog.MenuItem),
		presets: make(map[uuid.UUID]catalog.PresetMenu),
	}
}

func (m *MemoryCatalog) ListMenuItems(ctx context.Context) ([]catalog.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]catalog.MenuItem, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryCatalog) GetMenuItem(ctx context.Context, id uuid.UUID) (catalog.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[id]
	if !ok {
		return catalog.MenuItem{}, catalog.ErrMenuItemNotFound
	}
	return item, nil
}

func (m *MemoryCatalog) CreateMenuItem(ctx context.Context, item catalog.MenuItem) (catalog.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[item.ID] = item
	return item, nil
}

func (m *MemoryCatalog) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return catalog.ErrMenuItemNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *MemoryCatalog) ListPresetMenus(ctx context.Context) ([]catalog.PresetMenu, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]catalog.PresetMenu, 0, len(m.presets))
	for _, p := range m.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryCatalog) GetPresetMenu(ctx context.Context, id uuid.UUID) (catalog.PresetMenu, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.presets[id]
	if !ok {
		return catalog.PresetMenu{}, catalog.ErrPresetNotFound
	}
	return p, nil
}

func (m *MemoryCatalog) FindPresetByName(ctx context.Context, name string) (catalog.PresetMenu, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.presets {
		if p.Name == name {
			return p, nil
		}
	}
	return catalog.PresetMenu{}, catalog.ErrPresetNotFound
}

func (m *MemoryCatalog) CreatePresetMenu(ctx context.Context, p catalog.PresetMenu) (catalog.PresetMenu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.presets[p.ID] = p
	return p, nil
}

func (m *MemoryCatalog) DeletePresetMenu(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.presets[id]; !ok {
		return catalog.ErrPresetNotFound
	}
	delete(m.presets, id)
	return nil
}
