package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is the part of a pool or transaction the schema bootstrap needs.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Order matters: referenced tables first.
//
// Deleting a user or product with dependents is refused by the database
// (RESTRICT); deleting an order takes its items with it (CASCADE).
var schema = []struct {
	name string
	ddl  string
}{
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id         BIGSERIAL PRIMARY KEY,
			email      TEXT NOT NULL UNIQUE,
			name       TEXT NOT NULL,
			country    TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			is_admin   BOOLEAN NOT NULL DEFAULT false,
			admin_role TEXT NOT NULL DEFAULT 'user',
			last_login TIMESTAMPTZ
		)`},
	{"products", `
		CREATE TABLE IF NOT EXISTS products (
			id           BIGSERIAL PRIMARY KEY,
			name         TEXT NOT NULL,
			description  TEXT,
			category     TEXT,
			price        DOUBLE PRECISION NOT NULL CHECK (price >= 0),
			subscription BOOLEAN NOT NULL DEFAULT true,
			license_type TEXT,
			version      TEXT,
			platform     TEXT,
			stock        INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
			release_date DATE NOT NULL DEFAULT CURRENT_DATE,
			is_promoted  BOOLEAN NOT NULL DEFAULT false
		)`},
	{"orders", `
		CREATE TABLE IF NOT EXISTS orders (
			id           BIGSERIAL PRIMARY KEY,
			user_id      BIGINT NOT NULL REFERENCES users(id) ON DELETE RESTRICT,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			status       TEXT NOT NULL DEFAULT 'Pending',
			total_amount DOUBLE PRECISION NOT NULL DEFAULT 0
		)`},
	{"order_items", `
		CREATE TABLE IF NOT EXISTS order_items (
			id                BIGSERIAL PRIMARY KEY,
			order_id          BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id        BIGINT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
			quantity          INTEGER NOT NULL DEFAULT 1 CHECK (quantity > 0),
			price_at_purchase DOUBLE PRECISION NOT NULL
		)`},
	{"subscriptions", `
		CREATE TABLE IF NOT EXISTS subscriptions (
			id         BIGSERIAL PRIMARY KEY,
			user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE RESTRICT,
			product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
			start_date DATE NOT NULL,
			end_date   DATE NOT NULL,
			auto_renew BOOLEAN NOT NULL DEFAULT true,
			CHECK (end_date >= start_date)
		)`},
	{"idx_orders_user_id", `CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id)`},
	{"idx_order_items_order_id", `CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id)`},
	{"idx_subscriptions_user_id", `CREATE INDEX IF NOT EXISTS idx_subscriptions_user_id ON subscriptions(user_id)`},
}

// InitSchema creates the five tables when they do not exist yet.
func InitSchema(ctx context.Context, db Execer) error {
	for _, s := range schema {
		if _, err := db.Exec(ctx, s.ddl); err != nil {
			return fmt.Errorf("create %s: %w", s.name, err)
		}
	}
	return nil
}
