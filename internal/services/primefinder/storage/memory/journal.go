// Package memory provides an in-process activity journal for tests and for
// runs without a journal path.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/activity"
	"github.com/louisbranch/primefinder/internal/services/primefinder/storage"
)

var _ storage.ActivityJournal = (*Journal)(nil)

// Journal stores activity records in memory.
type Journal struct {
	mu      sync.Mutex
	records []storage.ActivityRecord
}

// NewJournal creates an empty in-memory journal.
func NewJournal() *Journal {
	return &Journal{}
}

// AppendActivities assigns sequence numbers and ids and stores entries.
func (j *Journal) AppendActivities(ctx context.Context, entries []activity.Activity) ([]storage.ActivityRecord, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if j == nil {
		return nil, storage.ErrJournalRequired
	}
	for _, entry := range entries {
		if entry.Type == nil {
			return nil, errors.New("activity type is required")
		}
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	appended := make([]storage.ActivityRecord, 0, len(entries))
	for _, entry := range entries {
		rec := storage.ActivityRecord{
			Seq:        uint64(len(j.records)) + 1,
			ID:         uuid.NewString(),
			Kind:       entry.Type.Kind(),
			Prime:      entry.Type.Value(),
			OccurredAt: entry.Timestamp.UTC(),
		}
		j.records = append(j.records, rec)
		appended = append(appended, rec)
	}
	return appended, nil
}

// ListActivities returns up to limit records with Seq > afterSeq.
func (j *Journal) ListActivities(ctx context.Context, afterSeq uint64, limit int) ([]storage.ActivityRecord, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if j == nil {
		return nil, storage.ErrJournalRequired
	}
	if limit <= 0 {
		return nil, storage.ErrPageSizeInvalid
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if afterSeq >= uint64(len(j.records)) {
		return nil, nil
	}
	end := min(int(afterSeq)+limit, len(j.records))
	out := make([]storage.ActivityRecord, end-int(afterSeq))
	copy(out, j.records[afterSeq:end])
	return out, nil
}
