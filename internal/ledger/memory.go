package ledger

import (
	"context"
	"slices"
	"sync"
)

type MemoryJournal struct {
	mu      sync.Mutex
	entries []Entry
}

func (j *MemoryJournal) Record(ctx context.Context, e Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, e)
	return nil
}

func (j *MemoryJournal) Entries(ctx context.Context) ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return slices.Clone(j.entries), nil
}
