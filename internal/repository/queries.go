package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Queries is the Postgres-backed ledger journal.
type Queries struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Queries {
	return &Queries{db: db}
}
