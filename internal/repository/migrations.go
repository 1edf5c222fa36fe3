package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migration is one schema change. Migrations are embedded in the binary and
// applied in order; applied names are tracked in schema_migrations so a
// restart never re-runs them.
type migration struct {
	name string
	sql  string
}

var migrations = []migration{
	{
		name: "001_create_menu_items",
		sql: `
			CREATE TABLE IF NOT EXISTS menu_items (
				id UUID PRIMARY KEY,
				name TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				price NUMERIC(12,2) NOT NULL DEFAULT 0,
				dietary TEXT NOT NULL,
				food_category TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		name: "002_create_preset_menus",
		sql: `
			CREATE TABLE IF NOT EXISTS preset_menus (
				id UUID PRIMARY KEY,
				name TEXT NOT NULL UNIQUE,
				description TEXT NOT NULL DEFAULT '',
				price_per_head NUMERIC(12,2) NOT NULL DEFAULT 0,
				meal_category TEXT NOT NULL,
				fixed_items JSONB NOT NULL DEFAULT '[]',
				option_groups JSONB NOT NULL DEFAULT '[]',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		name: "003_create_orders",
		sql: `
			CREATE TABLE IF NOT EXISTS orders (
				id UUID PRIMARY KEY,
				customer_name TEXT NOT NULL,
				customer_phone TEXT NOT NULL DEFAULT '',
				event_date DATE NOT NULL,
				event_time TEXT NOT NULL DEFAULT '',
				address TEXT NOT NULL DEFAULT '',
				meal_type TEXT NOT NULL,
				items JSONB NOT NULL DEFAULT '[]',
				status TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				per_head_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
				guest_count INTEGER NOT NULL DEFAULT 0,
				additional_costs JSONB NOT NULL DEFAULT '[]',
				total_estimated_cost NUMERIC(12,2) NOT NULL DEFAULT 0,
				completed_at TIMESTAMPTZ,
				bill_number TEXT NOT NULL DEFAULT '',
				payment_status TEXT NOT NULL DEFAULT ''
			);
			CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at DESC)
		`,
	},
}

// Migrate applies all pending migrations, each in its own transaction.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	applied := make(map[string]bool)
	rows, err := pool.Query(ctx, `SELECT name FROM schema_migrations`)
	if err != nil {
		return fmt.Errorf("read applied migrations: %w", err)
	}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return err
		}
		applied[name] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.name] {
			continue
		}
		if err := runMigration(ctx, pool, m); err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
		log.Printf("applied migration %s", m.name)
	}
	return nil
}

func runMigration(ctx context.Context, pool *pgxpool.Pool, m migration) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, m.sql); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, m.name); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
