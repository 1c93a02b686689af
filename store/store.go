package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Collection names. Each holds one JSON document (usually an array) and is
// always read and written whole, the way the original browser storage did.
const (
	ColBooks        = "books"
	ColUsers        = "users"
	ColSession      = "session"
	ColAdminSession = "adminSession"
	ColCart         = "cart"
	ColFavorites    = "favorites"
	ColOrders       = "orders"
	ColDraft        = "checkoutDraft"
)

// Store is the key-value persistence facade over named collections. All
// mutations funnel through a single in-process mutex: there is exactly one
// writer at a time, and multi-collection sequences run under RunExclusive
// so nothing interleaves between their reads and writes.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// One writer at a time; database/sql pooling would only add contention.
	db.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS collections (
		name       TEXT PRIMARY KEY,
		data       TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
	CREATE TABLE IF NOT EXISTS settlement_intents (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		kind         TEXT NOT NULL,
		payload      TEXT NOT NULL,
		created_at   TIMESTAMP NOT NULL,
		completed_at TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init store schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Tx is a view of the store valid only inside RunExclusive. It performs the
// same whole-collection reads and writes without re-acquiring the lock.
type Tx struct {
	s *Store
}

// RunExclusive runs fn while holding the single-writer lock. Settlement and
// every other multi-collection read-modify-write goes through here.
func (s *Store) RunExclusive(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{s: s})
}

func (tx *Tx) get(name string, v any) error {
	var data string
	err := tx.s.db.QueryRow(`SELECT data FROM collections WHERE name = ?`, name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil // absent collection leaves v zero-valued
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (tx *Tx) put(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	_, err = tx.s.db.Exec(`
		INSERT INTO collections (name, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (tx *Tx) del(name string) error {
	if _, err := tx.s.db.Exec(`DELETE FROM collections WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	return nil
}

// exists reports whether a collection has ever been written.
func (tx *Tx) exists(name string) (bool, error) {
	var n int
	err := tx.s.db.QueryRow(`SELECT COUNT(1) FROM collections WHERE name = ?`, name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check %s: %w", name, err)
	}
	return n > 0, nil
}
