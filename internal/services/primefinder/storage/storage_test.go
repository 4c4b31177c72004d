package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/activity"
)

type pagedJournal struct {
	records []ActivityRecord
	calls   int
}

func (p *pagedJournal) AppendActivities(context.Context, []activity.Activity) ([]ActivityRecord, error) {
	return nil, errors.New("not implemented")
}

func (p *pagedJournal) ListActivities(_ context.Context, afterSeq uint64, limit int) ([]ActivityRecord, error) {
	p.calls++
	var out []ActivityRecord
	for _, rec := range p.records {
		if rec.Seq > afterSeq && len(out) < limit {
			out = append(out, rec)
		}
	}
	return out, nil
}

func TestListAll_Pages(t *testing.T) {
	journal := &pagedJournal{}
	for i := uint64(1); i <= 5; i++ {
		journal.records = append(journal.records, ActivityRecord{Seq: i, Kind: activity.KindAddedFavouritePrime, Prime: int(i)})
	}

	got, err := ListAll(context.Background(), journal, 2)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 records, got %d", len(got))
	}
	if journal.calls != 3 {
		t.Fatalf("expected 3 page calls, got %d", journal.calls)
	}
}

func TestListAll_RejectsOutOfOrder(t *testing.T) {
	bad := listFunc(func(context.Context, uint64, int) ([]ActivityRecord, error) {
		return []ActivityRecord{{Seq: 2}, {Seq: 1}}, nil
	})
	if _, err := ListAll(context.Background(), bad, 10); err == nil {
		t.Fatal("expected out of order error")
	}
}

func TestListAll_RequiresJournal(t *testing.T) {
	if _, err := ListAll(context.Background(), nil, 10); !errors.Is(err, ErrJournalRequired) {
		t.Fatalf("err = %v, want %v", err, ErrJournalRequired)
	}
}

func TestActivityRecord_Activity(t *testing.T) {
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rec := ActivityRecord{Seq: 1, Kind: activity.KindRemovedFavouritePrime, Prime: 13, OccurredAt: at}
	got, err := rec.Activity()
	if err != nil {
		t.Fatalf("activity: %v", err)
	}
	if got.Type != (activity.RemovedFavouritePrime{Prime: 13}) || !got.Timestamp.Equal(at) {
		t.Fatalf("activity = %#v", got)
	}

	rec.Kind = "bogus"
	if _, err := rec.Activity(); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

type listFunc func(context.Context, uint64, int) ([]ActivityRecord, error)

func (f listFunc) AppendActivities(context.Context, []activity.Activity) ([]ActivityRecord, error) {
	return nil, errors.New("not implemented")
}

func (f listFunc) ListActivities(ctx context.Context, afterSeq uint64, limit int) ([]ActivityRecord, error) {
	return f(ctx, afterSeq, limit)
}
