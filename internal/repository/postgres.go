package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jms-catering/api/internal/catalog"
	"github.com/jms-catering/api/internal/order"
)

// OrderStore is the PostgreSQL implementation of order.Repository. Items and
// additional costs travel as JSONB documents on the order row; the aggregate
// is always read and written whole.
type OrderStore struct {
	pool *pgxpool.Pool
}

func NewOrderStore(pool *pgxpool.Pool) *OrderStore {
	return &OrderStore{pool: pool}
}

const orderColumns = `
	id, customer_name, customer_phone, event_date, event_time, address,
	meal_type, items, status, created_at, per_head_amount, guest_count,
	additional_costs, total_estimated_cost, completed_at, bill_number,
	payment_status`

func (s *OrderStore) List(ctx context.Context) ([]order.Order, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *OrderStore) Get(ctx context.Context, id uuid.UUID) (order.Order, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return order.Order{}, order.ErrNotFound
	}
	if err != nil {
		return order.Order{}, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (s *OrderStore) Create(ctx context.Context, o order.Order) (order.Order, error) {
	items, costs, err := marshalOrderDocs(o)
	if err != nil {
		return order.Order{}, err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO orders (
			id, customer_name, customer_phone, event_date, event_time, address,
			meal_type, items, status, created_at, per_head_amount, guest_count,
			additional_costs, total_estimated_cost, completed_at, bill_number,
			payment_status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
		o.ID, o.CustomerName, o.CustomerPhone, o.EventDate, o.EventTime, o.Address,
		o.MealType, items, o.Status, o.CreatedAt, decimalToNumeric(o.PerHeadAmount),
		o.GuestCount, costs, decimalToNumeric(o.TotalEstimatedCost), o.CompletedAt,
		o.BillNumber, o.PaymentStatus,
	)
	if err != nil {
		return order.Order{}, fmt.Errorf("create order: %w", err)
	}
	return o, nil
}

func (s *OrderStore) Update(ctx context.Context, o order.Order) (order.Order, error) {
	items, costs, err := marshalOrderDocs(o)
	if err != nil {
		return order.Order{}, err
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE orders SET
			customer_name = $2, customer_phone = $3, event_date = $4,
			event_time = $5, address = $6, meal_type = $7, items = $8,
			status = $9, per_head_amount = $10, guest_count = $11,
			additional_costs = $12, total_estimated_cost = $13,
			completed_at = $14, bill_number = $15, payment_status = $16
		WHERE id = $1`,
		o.ID, o.CustomerName, o.CustomerPhone, o.EventDate, o.EventTime,
		o.Address, o.MealType, items, o.Status, decimalToNumeric(o.PerHeadAmount),
		o.GuestCount, costs, decimalToNumeric(o.TotalEstimatedCost), o.CompletedAt,
		o.BillNumber, o.PaymentStatus,
	)
	if err != nil {
		return order.Order{}, fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.Order{}, order.ErrNotFound
	}
	return o, nil
}

func (s *OrderStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func marshalOrderDocs(o order.Order) (items, costs []byte, err error) {
	items, err = json.Marshal(o.Items)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal items: %w", err)
	}
	costs, err = json.Marshal(o.AdditionalCosts)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal additional costs: %w", err)
	}
	return items, costs, nil
}

func scanOrder(row pgx.Row) (order.Order, error) {
	var (
		o            order.Order
		items, costs []byte
		perHead      pgtype.Numeric
		total        pgtype.Numeric
	)
	err := row.Scan(
		&o.ID, &o.CustomerName, &o.CustomerPhone, &o.EventDate, &o.EventTime,
		&o.Address, &o.MealType, &items, &o.Status, &o.CreatedAt, &perHead,
		&o.GuestCount, &costs, &total, &o.CompletedAt, &o.BillNumber,
		&o.PaymentStatus,
	)
	if err != nil {
		return order.Order{}, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return order.Order{}, fmt.Errorf("unmarshal items: %w", err)
	}
	if err := json.Unmarshal(costs, &o.AdditionalCosts); err != nil {
		return order.Order{}, fmt.Errorf("unmarshal additional costs: %w", err)
	}
	o.PerHeadAmount = numericToDecimal(perHead)
	o.TotalEstimatedCost = numericToDecimal(total)
	return o, nil
}

// CatalogStore is the PostgreSQL implementation of catalog.Store.
type CatalogStore struct {
	pool *pgxpool.Pool
}

func NewCatalogStore(pool *pgxpool.Pool) *CatalogStore {
	return &CatalogStore{pool: pool}
}

func (s *CatalogStore) ListMenuItems(ctx context.Context) ([]catalog.MenuItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, description, price, dietary, food_category
		FROM menu_items ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var items []catalog.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *CatalogStore) GetMenuItem(ctx context.Context, id uuid.UUID) (catalog.MenuItem, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, name, description, price, dietary, food_category
		FROM menu_items WHERE id = $1`, id)
	item, err := scanMenuItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.MenuItem{}, catalog.ErrMenuItemNotFound
	}
	if err != nil {
		return catalog.MenuItem{}, fmt.Errorf("get menu item: %w", err)
	}
	return item, nil
}

func (s *CatalogStore) CreateMenuItem(ctx context.Context, item catalog.MenuItem) (catalog.MenuItem, error) {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO menu_items (id, name, description, price, dietary, food_category)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		item.ID, item.Name, item.Description, decimalToNumeric(item.Price),
		item.Dietary, item.FoodCategory,
	)
	if err != nil {
		return catalog.MenuItem{}, fmt.Errorf("create menu item: %w", err)
	}
	return item, nil
}

func (s *CatalogStore) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrMenuItemNotFound
	}
	return nil
}

func (s *CatalogStore) ListPresetMenus(ctx context.Context) ([]catalog.PresetMenu, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, description, price_per_head, meal_category, fixed_items, option_groups
		FROM preset_menus ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list preset menus: %w", err)
	}
	defer rows.Close()

	var presets []catalog.PresetMenu
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan preset menu: %w", err)
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

func (s *CatalogStore) GetPresetMenu(ctx context.Context, id uuid.UUID) (catalog.PresetMenu, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, name, description, price_per_head, meal_category, fixed_items, option_groups
		FROM preset_menus WHERE id = $1`, id)
	return presetOrNotFound(scanPreset(row))
}

func (s *CatalogStore) FindPresetByName(ctx context.Context, name string) (catalog.PresetMenu, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, name, description, price_per_head, meal_category, fixed_items, option_groups
		FROM preset_menus WHERE name = $1`, name)
	return presetOrNotFound(scanPreset(row))
}

func (s *CatalogStore) CreatePresetMenu(ctx context.Context, p catalog.PresetMenu) (catalog.PresetMenu, error) {
	fixed, err := json.Marshal(p.FixedItems)
	if err != nil {
		return catalog.PresetMenu{}, fmt.Errorf("marshal fixed items: %w", err)
	}
	groups, err := json.Marshal(p.OptionGroups)
	if err != nil {
		return catalog.PresetMenu{}, fmt.Errorf("marshal option groups: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO preset_menus (id, name, description, price_per_head, meal_category, fixed_items, option_groups)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.Name, p.Description, decimalToNumeric(p.PricePerHead),
		p.MealCategory, fixed, groups,
	)
	if err != nil {
		return catalog.PresetMenu{}, fmt.Errorf("create preset menu: %w", err)
	}
	return p, nil
}

func (s *CatalogStore) DeletePresetMenu(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM preset_menus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete preset menu: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrPresetNotFound
	}
	return nil
}

func scanMenuItem(row pgx.Row) (catalog.MenuItem, error) {
	var (
		item  catalog.MenuItem
		price pgtype.Numeric
	)
	err := row.Scan(&item.ID, &item.Name, &item.Description, &price, &item.Dietary, &item.FoodCategory)
	if err != nil {
		return catalog.MenuItem{}, err
	}
	item.Price = numericToDecimal(price)
	return item, nil
}

func scanPreset(row pgx.Row) (catalog.PresetMenu, error) {
	var (
		p             catalog.PresetMenu
		perHead       pgtype.Numeric
		fixed, groups []byte
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &perHead, &p.MealCategory, &fixed, &groups)
	if err != nil {
		return catalog.PresetMenu{}, err
	}
	if err := json.Unmarshal(fixed, &p.FixedItems); err != nil {
		return catalog.PresetMenu{}, fmt.Errorf("unmarshal fixed items: %w", err)
	}
	if err := json.Unmarshal(groups, &p.OptionGroups); err != nil {
		return catalog.PresetMenu{}, fmt.Errorf("unmarshal option groups: %w", err)
	}
	p.PricePerHead = numericToDecimal(perHead)
	return p, nil
}

func presetOrNotFound(p catalog.PresetMenu, err error) (catalog.PresetMenu, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.PresetMenu{}, catalog.ErrPresetNotFound
	}
	if err != nil {
		return catalog.PresetMenu{}, fmt.Errorf("get preset menu: %w", err)
	}
	return p, nil
}

// numericToDecimal converts a pgtype.Numeric to decimal.Decimal, treating
// NULL or malformed values as zero.
func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	val, err := n.Value()
	if err != nil || val == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(val.(string))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// decimalToNumeric converts decimal.Decimal to pgtype.Numeric.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	_ = n.Scan(d.StringFixed(2))
	return n
}
