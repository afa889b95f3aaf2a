package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vancomm/minesweeper-console/internal/ledger"
)

// SQLite is a ledger journal kept in a local SQLite file.
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
}

func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// Need to ping the database to check if the file could be opened
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect sqlite db: %w", err)
	}
	s, err := NewSQLite(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLite wraps db and creates the journal table if needed.
func NewSQLite(db *sql.DB) (*SQLite, error) {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS ledger_entry (
	entry_id	INTEGER PRIMARY KEY AUTOINCREMENT,
	kind		TEXT NOT NULL,
	amount		TEXT NOT NULL,
	balance		TEXT NOT NULL,
	created_at	INTEGER NOT NULL
);`)
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger_entry table: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Record(ctx context.Context, e ledger.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
INSERT INTO ledger_entry (kind, amount, balance, created_at)
VALUES (?, ?, ?, ?);`,
		string(e.Kind), e.Amount.String(), e.Balance.String(), e.At.UnixMilli())
	return err
}

func (s *SQLite) Entries(ctx context.Context) ([]ledger.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT kind, amount, balance, created_at
FROM ledger_entry
ORDER BY entry_id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ledger.Entry
	for rows.Next() {
		var (
			row       entryRow
			createdAt int64
		)
		if err := rows.Scan(&row.Kind, &row.Amount, &row.Balance, &createdAt); err != nil {
			return nil, err
		}
		row.CreatedAt = time.UnixMilli(createdAt)
		e, err := row.toEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
