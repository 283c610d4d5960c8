// Package testdb provides an in-memory SQLite database with the order store
// schema for tests.
package testdb

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE profiles (
    id           TEXT PRIMARY KEY,
    display_name TEXT NOT NULL DEFAULT '',
    email        TEXT,
    phone        TEXT
);
CREATE TABLE products (
    id                 TEXT PRIMARY KEY,
    seller_id          TEXT NOT NULL,
    title              TEXT NOT NULL,
    price              TEXT NOT NULL,
    available_quantity INTEGER NOT NULL CHECK (available_quantity >= 0),
    version            INTEGER NOT NULL DEFAULT 0,
    updated_at         TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE orders (
    id              TEXT PRIMARY KEY,
    buyer_id        TEXT NOT NULL,
    idempotency_key TEXT,
    subtotal        TEXT NOT NULL,
    delivery_fee    TEXT NOT NULL,
    total_amount    TEXT NOT NULL,
    payment_method  TEXT NOT NULL,
    street          TEXT NOT NULL,
    city            TEXT NOT NULL,
    postcode        TEXT NOT NULL,
    phone           TEXT NOT NULL,
    status          TEXT NOT NULL,
    created_at      TIMESTAMP NOT NULL,
    updated_at      TIMESTAMP NOT NULL,
    UNIQUE (buyer_id, idempotency_key)
);
CREATE TABLE order_items (
    order_id   TEXT NOT NULL,
    product_id TEXT NOT NULL,
    seller_id  TEXT NOT NULL,
    quantity   INTEGER NOT NULL CHECK (quantity > 0),
    price      TEXT NOT NULL,
    PRIMARY KEY (order_id, product_id)
);
CREATE TABLE transactions (
    id         TEXT PRIMARY KEY,
    order_id   TEXT NOT NULL,
    profile_id TEXT NOT NULL,
    type       TEXT NOT NULL,
    amount     TEXT NOT NULL,
    status     TEXT NOT NULL,
    provider   TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
CREATE TABLE notifications (
    id         TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL,
    type       TEXT NOT NULL,
    title      TEXT NOT NULL,
    message    TEXT NOT NULL,
    link_url   TEXT NOT NULL DEFAULT '',
    read       BOOLEAN NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);
CREATE TABLE delivery_queue (
    id         TEXT PRIMARY KEY,
    channel    TEXT NOT NULL,
    recipient  TEXT NOT NULL,
    payload    TEXT NOT NULL,
    status     TEXT NOT NULL DEFAULT 'pending',
    attempts   INTEGER NOT NULL DEFAULT 0,
    last_error TEXT,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

// New returns a fresh database. A single connection keeps the in-memory
// database alive and serialises transactions the way row locks would.
func New(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

func SeedProfile(t testing.TB, db *sqlx.DB, id, name, email, phone string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO profiles(id, display_name, email, phone) VALUES (?, ?, NULLIF(?, ''), NULLIF(?, ''))`,
		id, name, email, phone)
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}
}

func SeedProduct(t testing.TB, db *sqlx.DB, id, sellerID, price string, available int) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO products(id, seller_id, title, price, available_quantity, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, sellerID, "Product "+id, decimal.RequireFromString(price).String(), available, time.Now().UTC())
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
}

func Available(t testing.TB, db *sqlx.DB, productID string) int {
	t.Helper()
	var n int
	if err := db.Get(&n, `SELECT available_quantity FROM products WHERE id = ?`, productID); err != nil {
		t.Fatalf("read stock: %v", err)
	}
	return n
}

func Count(t testing.TB, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM `+table); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
