package main

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-console/internal/ledger"
)

type brokenJournal struct {
	ledger.MemoryJournal
}

func (*brokenJournal) Record(ctx context.Context, e ledger.Entry) error {
	return errors.New("disk full")
}

func TestAuditJournalLogsEntries(t *testing.T) {
	logger, hook := test.NewNullLogger()
	cb := ledger.New(auditJournal{Journal: &ledger.MemoryJournal{}, log: logger})

	_, err := cb.Deposit(context.Background(), decimal.RequireFromString("12.5"))
	require.NoError(t, err)
	_, err = cb.Withdraw(context.Background(), decimal.RequireFromString("100"))
	require.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "entry recorded", entry.Message)
	assert.Equal(t, ledger.Deposit, entry.Data["kind"])
	assert.Equal(t, "12.50", entry.Data["amount"])
	assert.Equal(t, "12.50", entry.Data["balance"])
}

func TestAuditJournalLogsFailures(t *testing.T) {
	logger, hook := test.NewNullLogger()
	cb := ledger.New(auditJournal{Journal: &brokenJournal{}, log: logger})

	_, err := cb.Deposit(context.Background(), decimal.NewFromInt(5))
	require.Error(t, err)
	assert.True(t, cb.Balance().IsZero())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "disk full", entry.Data[logrus.ErrorKey].(error).Error())
}

func TestAuditHookWritesFile(t *testing.T) {
	path := t.TempDir() + "/audit.log"
	hook, err := auditHook(path)
	require.NoError(t, err)
	assert.Contains(t, hook.Levels(), logrus.InfoLevel)
	assert.NotContains(t, hook.Levels(), logrus.DebugLevel)
}

func TestRestoreRejectsCorruptJournal(t *testing.T) {
	ctx := context.Background()
	journal := &ledger.MemoryJournal{}
	require.NoError(t, journal.Record(ctx, ledger.Entry{
		Kind:    ledger.Deposit,
		Amount:  decimal.NewFromInt(10),
		Balance: decimal.NewFromInt(99),
	}))

	cb, err := restore(ctx, journal)
	assert.Nil(t, cb)
	assert.ErrorIs(t, err, ledger.ErrCorruptJournal)
}

func TestRestoreReplaysJournal(t *testing.T) {
	ctx := context.Background()
	journal := &ledger.MemoryJournal{}
	require.NoError(t, journal.Record(ctx, ledger.Entry{
		Kind:    ledger.Deposit,
		Amount:  decimal.NewFromInt(10),
		Balance: decimal.NewFromInt(10),
	}))

	cb, err := restore(ctx, journal)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(cb.Balance()))
}
