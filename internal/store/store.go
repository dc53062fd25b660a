// Package store persists budget snapshots in a local SQLite database.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// snapshotKey names the single entry holding the serialized budget.
const snapshotKey = "budgetData"

// Store provides SQLite-backed snapshot persistence.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the budget snapshot. A missing or undecodable entry falls
// back to the default empty budget; decodable entries are returned
// as-is without further validation.
func (s *Store) Load() (*model.Budget, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM snapshots WHERE key = ?", snapshotKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return model.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var b model.Budget
	if err := json.Unmarshal([]byte(value), &b); err != nil {
		return model.New(), nil
	}
	if b.Expenses == nil {
		b.Expenses = []model.Expense{}
	}
	return &b, nil
}

// Save serializes the full budget and overwrites the snapshot entry.
func (s *Store) Save(b *model.Budget) error {
	value, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`INSERT OR REPLACE INTO snapshots (key, value, updated_at)
		VALUES (?, ?, ?)`, snapshotKey, string(value), now)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
