package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migrate crea las tablas del sistema si no existen.
// Las sentencias son idempotentes, se pueden ejecutar en cada arranque.
func Migrate(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username VARCHAR(80) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			full_name VARCHAR(120),
			role VARCHAR(20) NOT NULL DEFAULT 'waiter',
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			category VARCHAR(50) NOT NULL,
			description TEXT,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			image_url VARCHAR(255),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ticket_counters (
			id INT PRIMARY KEY,
			last_number BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			ticket_number BIGINT UNIQUE NOT NULL,
			customer_name VARCHAR(100) NOT NULL,
			order_type VARCHAR(20) NOT NULL,
			delivery_phone VARCHAR(20),
			delivery_address TEXT,
			subtotal NUMERIC(10,2) NOT NULL DEFAULT 0,
			iva NUMERIC(10,2) NOT NULL DEFAULT 0,
			total NUMERIC(10,2) NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'open',
			payment_method VARCHAR(20) NOT NULL DEFAULT 'cash',
			printed BOOLEAN NOT NULL DEFAULT FALSE,
			created_by UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id UUID NOT NULL REFERENCES menu_items(id),
			menu_item_name VARCHAR(100) NOT NULL,
			position INT NOT NULL DEFAULT 0,
			quantity INT NOT NULL,
			unit_price NUMERIC(10,2) NOT NULL,
			subtotal NUMERIC(10,2) NOT NULL,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS daily_sales (
			id UUID PRIMARY KEY,
			date DATE UNIQUE NOT NULL,
			total_orders INT NOT NULL DEFAULT 0,
			total_sales NUMERIC(12,2) NOT NULL DEFAULT 0,
			total_iva NUMERIC(12,2) NOT NULL DEFAULT 0,
			cash_sales NUMERIC(12,2) NOT NULL DEFAULT 0,
			card_sales NUMERIC(12,2) NOT NULL DEFAULT 0,
			transfer_sales NUMERIC(12,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items (order_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("error running migration: %w", err)
		}
	}

	log.Println("Migraciones ejecutadas correctamente")
	return nil
}
