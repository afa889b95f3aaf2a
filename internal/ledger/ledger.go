package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds to complete the withdrawal")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrCorruptJournal    = errors.New("journal balances do not add up")
)

type Kind string

const (
	Deposit    Kind = "deposit"
	Withdrawal Kind = "withdrawal"
)

// Entry is one line of the checkbook. Balance is the balance right after the
// entry was applied.
type Entry struct {
	Kind    Kind
	Amount  decimal.Decimal
	Balance decimal.Decimal
	At      time.Time
}

// Journal stores checkbook entries in the order they were made.
type Journal interface {
	Record(ctx context.Context, e Entry) error
	Entries(ctx context.Context) ([]Entry, error)
}

// Checkbook keeps a running balance that never drops below zero. Every
// accepted deposit or withdrawal is written to its journal before the balance
// changes.
type Checkbook struct {
	mu      sync.Mutex
	balance decimal.Decimal
	journal Journal
	now     func() time.Time
}

// New returns an empty checkbook. A nil journal keeps entries in memory.
func New(journal Journal) *Checkbook {
	if journal == nil {
		journal = &MemoryJournal{}
	}
	return &Checkbook{journal: journal, now: time.Now}
}

// Open restores a checkbook from the entries already in journal.
func Open(ctx context.Context, journal Journal) (*Checkbook, error) {
	c := New(journal)
	entries, err := c.journal.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to read journal: %w", err)
	}
	for i, e := range entries {
		switch e.Kind {
		case Deposit:
			c.balance = c.balance.Add(e.Amount)
		case Withdrawal:
			c.balance = c.balance.Sub(e.Amount)
		default:
			return nil, fmt.Errorf("entry %d has unknown kind %q: %w", i, e.Kind, ErrCorruptJournal)
		}
		if !c.balance.Equal(e.Balance) || c.balance.IsNegative() {
			return nil, fmt.Errorf(
				"entry %d: expected balance %s, journal has %s: %w",
				i, c.balance, e.Balance, ErrCorruptJournal,
			)
		}
	}
	return c, nil
}

// Amounts are kept in cents.
func normalize(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return amount, ErrNegativeAmount
	}
	return amount.Round(2), nil
}

func (c *Checkbook) apply(ctx context.Context, kind Kind, amount decimal.Decimal) (Entry, error) {
	amount, err := normalize(amount)
	if err != nil {
		return Entry{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	balance := c.balance
	switch kind {
	case Deposit:
		balance = balance.Add(amount)
	case Withdrawal:
		if amount.GreaterThan(balance) {
			return Entry{}, ErrInsufficientFunds
		}
		balance = balance.Sub(amount)
	}

	e := Entry{Kind: kind, Amount: amount, Balance: balance, At: c.now().UTC()}
	if err := c.journal.Record(ctx, e); err != nil {
		return Entry{}, fmt.Errorf("unable to record %s: %w", kind, err)
	}
	c.balance = balance
	return e, nil
}

func (c *Checkbook) Deposit(ctx context.Context, amount decimal.Decimal) (Entry, error) {
	return c.apply(ctx, Deposit, amount)
}

// Withdraw fails with [ErrInsufficientFunds] when amount exceeds the balance.
func (c *Checkbook) Withdraw(ctx context.Context, amount decimal.Decimal) (Entry, error) {
	return c.apply(ctx, Withdrawal, amount)
}

func (c *Checkbook) Balance() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balance
}

// FormatAmount renders an amount the way the checkbook prints money.
func FormatAmount(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
