package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/vancomm/minesweeper-console/internal/ledger"
)

// Numerics travel as text so no numeric codec is needed on either side.
type entryRow struct {
	Kind      string    `db:"kind"`
	Amount    string    `db:"amount"`
	Balance   string    `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
}

func (r entryRow) toEntry() (ledger.Entry, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return ledger.Entry{}, fmt.Errorf("bad amount %q: %w", r.Amount, err)
	}
	balance, err := decimal.NewFromString(r.Balance)
	if err != nil {
		return ledger.Entry{}, fmt.Errorf("bad balance %q: %w", r.Balance, err)
	}
	return ledger.Entry{
		Kind:    ledger.Kind(r.Kind),
		Amount:  amount,
		Balance: balance,
		At:      r.CreatedAt.UTC(),
	}, nil
}

func (q *Queries) Record(ctx context.Context, e ledger.Entry) error {
	_, err := q.db.Exec(
		ctx,
		`INSERT INTO ledger_entry (kind, amount, balance, created_at)
		VALUES (@kind, @amount::text::numeric, @balance::text::numeric, @created_at)`,
		pgx.NamedArgs{
			"kind":       string(e.Kind),
			"amount":     e.Amount.String(),
			"balance":    e.Balance.String(),
			"created_at": e.At,
		},
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
		switch pgErr.ConstraintName {
		case "ledger_entry_balance_check":
			return ledger.ErrInsufficientFunds
		case "ledger_entry_amount_check":
			return ledger.ErrNegativeAmount
		}
	}
	return err
}

func (q *Queries) Entries(ctx context.Context) ([]ledger.Entry, error) {
	rows, err := q.db.Query(
		ctx,
		`SELECT kind, amount::text AS amount, balance::text AS balance, created_at
		FROM ledger_entry
		ORDER BY entry_id`,
	)
	if err != nil {
		return nil, err
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[entryRow])
	if err != nil {
		return nil, err
	}
	entries := make([]ledger.Entry, 0, len(collected))
	for _, row := range collected {
		e, err := row.toEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (q *Queries) Ping(ctx context.Context) error {
	return q.db.Ping(ctx)
}

func (q *Queries) Close() {
	q.db.Close()
}
