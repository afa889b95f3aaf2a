package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-console/internal/config"
	"github.com/vancomm/minesweeper-console/internal/console"
	"github.com/vancomm/minesweeper-console/internal/database"
	"github.com/vancomm/minesweeper-console/internal/ledger"
	"github.com/vancomm/minesweeper-console/internal/repository"
)

var (
	log = logrus.New()

	memory bool
)

func init() {
	flag.BoolVar(&memory, "memory", false, "keep the journal in memory only")
}

func setupLogging() {
	logLevel := logrus.WarnLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{})

	if memory {
		return
	}
	hook, err := auditHook(config.AuditLogPath())
	if err != nil {
		log.Fatal("unable to open audit log: ", err)
	}
	log.AddHook(hook)
}

// openJournal picks Postgres when it is configured, the SQLite file
// otherwise. The returned closer releases the storage.
func openJournal(ctx context.Context) (ledger.Journal, io.Closer, error) {
	switch {
	case memory:
		return &ledger.MemoryJournal{}, closerFunc(func() {}), nil

	case config.UsePostgres():
		pool, err := database.Open(ctx, database.Migrations)
		if err != nil {
			return nil, nil, err
		}
		log.Debug("journal in postgres")
		q := repository.New(pool)
		return q, closerFunc(q.Close), nil

	default:
		path := config.SQLitePath()
		s, err := repository.OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		log.WithField("path", path).Debug("journal in sqlite")
		return s, s, nil
	}
}

// restore replays journal behind the audit log. A journal whose balances do
// not add up is an error.
func restore(ctx context.Context, journal ledger.Journal) (*ledger.Checkbook, error) {
	cb, err := ledger.Open(ctx, auditJournal{Journal: journal, log: log})
	if err != nil {
		return nil, err
	}
	return cb, nil
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

func main() {
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	journal, closer, err := openJournal(ctx)
	if err != nil {
		log.Fatal("unable to open journal: ", err)
	}
	defer closer.Close()

	cb, err := restore(ctx, journal)
	if err != nil {
		closer.Close()
		log.Fatal("unable to restore balance: ", err)
	}
	log.WithField("balance", cb.Balance().StringFixed(2)).Debug("checkbook opened")

	if err := console.Checkbook(ctx, cb, os.Stdin, os.Stdout); err != nil {
		log.Error("checkbook stopped: ", err)
	}
}
