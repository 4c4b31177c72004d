// Package storage defines the activity journal: an optional durable copy of
// the in-memory activity feed.
//
// The journal is write-behind audit only. Application state is never
// restored from it; a fresh process always starts from the default state.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/activity"
)

const defaultPageSize = 200

var (
	// ErrJournalRequired indicates a missing journal.
	ErrJournalRequired = errors.New("activity journal is required")
	// ErrPageSizeInvalid indicates a non-positive page size.
	ErrPageSizeInvalid = errors.New("page size must be greater than zero")
)

// ActivityRecord is one journaled activity.
type ActivityRecord struct {
	Seq        uint64
	ID         string
	Kind       activity.Kind
	Prime      int
	OccurredAt time.Time
}

// Activity converts the record back into a feed entry.
func (r ActivityRecord) Activity() (activity.Activity, error) {
	typ, err := activity.Decode(r.Kind, r.Prime)
	if err != nil {
		return activity.Activity{}, fmt.Errorf("record %d: %w", r.Seq, err)
	}
	return activity.Activity{Timestamp: r.OccurredAt.UTC(), Type: typ}, nil
}

// ActivityJournal appends and lists activity records in sequence order.
// OccurredAt comes back in UTC with the entry's full nanosecond precision.
type ActivityJournal interface {
	AppendActivities(ctx context.Context, entries []activity.Activity) ([]ActivityRecord, error)
	ListActivities(ctx context.Context, afterSeq uint64, limit int) ([]ActivityRecord, error)
}

// ListAll pages through journal from the beginning and returns every record.
func ListAll(ctx context.Context, journal ActivityJournal, pageSize int) ([]ActivityRecord, error) {
	if journal == nil {
		return nil, ErrJournalRequired
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	var (
		out     []ActivityRecord
		lastSeq uint64
	)
	for {
		page, err := journal.ListActivities(ctx, lastSeq, pageSize)
		if err != nil {
			return out, err
		}
		for _, rec := range page {
			if rec.Seq <= lastSeq {
				return out, fmt.Errorf("activity sequence out of order: %d after %d", rec.Seq, lastSeq)
			}
			out = append(out, rec)
			lastSeq = rec.Seq
		}
		if len(page) < pageSize {
			return out, nil
		}
	}
}
