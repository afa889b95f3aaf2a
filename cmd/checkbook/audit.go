package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-console/internal/ledger"
)

const (
	auditMaxSizeMB  = 10
	auditMaxBackups = 5
	auditMaxAgeDays = 90
)

// auditHook writes info-and-above entries as JSON to a rotated file.
func auditHook(path string) (logrus.Hook, error) {
	return rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    auditMaxSizeMB,
		MaxBackups: auditMaxBackups,
		MaxAge:     auditMaxAgeDays,
		Level:      logrus.InfoLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
}

// auditJournal logs every entry that made it into the wrapped journal.
type auditJournal struct {
	ledger.Journal
	log logrus.FieldLogger
}

func (j auditJournal) Record(ctx context.Context, e ledger.Entry) error {
	fields := logrus.Fields{
		"kind":    e.Kind,
		"amount":  e.Amount.StringFixed(2),
		"balance": e.Balance.StringFixed(2),
		"at":      e.At,
	}
	if err := j.Journal.Record(ctx, e); err != nil {
		j.log.WithFields(fields).WithError(err).Error("entry rejected")
		return err
	}
	j.log.WithFields(fields).Info("entry recorded")
	return nil
}
