package app

import (
	"context"
	"log"
	"time"

	"github.com/louisbranch/primefinder/internal/platform/timeouts"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/activity"
	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/aggregate"
	"github.com/louisbranch/primefinder/internal/services/primefinder/storage"
)

const journalBuffer = 64

// journalItem is either a batch of new activity entries or, when reply is
// set, a request to list the journal once every earlier batch is written.
type journalItem struct {
	entries []activity.Activity
	reply   chan<- historyReply
}

type historyReply struct {
	records []storage.ActivityRecord
	err     error
}

// feedObserver forwards the entries each state adds to the activity feed.
// The feed only grows, so the new entries are the tail past the last length
// seen.
func feedObserver(ctx context.Context, initial []activity.Activity, out chan<- journalItem) func(aggregate.AppState) {
	seen := len(initial)
	return func(state aggregate.AppState) {
		if len(state.ActivityFeed) <= seen {
			return
		}
		entries := append([]activity.Activity(nil), state.ActivityFeed[seen:]...)
		seen = len(state.ActivityFeed)
		select {
		case out <- journalItem{entries: entries}:
		case <-ctx.Done():
		}
	}
}

// writeJournal appends batches in order until items is closed. Append
// failures are logged and dropped; the journal is an audit trail, not the
// source of state.
func (r *Runtime) writeJournal(ctx context.Context, items <-chan journalItem) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case item, ok := <-items:
			if !ok {
				return nil
			}
			if item.reply != nil {
				records, err := storage.ListAll(ctx, r.journal, 0)
				item.reply <- historyReply{records: records, err: err}
				continue
			}
			writeCtx, cancel := context.WithTimeout(ctx, timeouts.JournalWrite)
			_, err := r.journal.AppendActivities(writeCtx, item.entries)
			cancel()
			if err != nil {
				log.Printf("journal append %d entries: %v", len(item.entries), err)
			}
		}
	}
}

// history prints the journal after every pending write has landed.
func (r *Runtime) history(ctx context.Context, journal chan<- journalItem) {
	if journal == nil {
		r.println("history.disabled")
		return
	}
	reply := make(chan historyReply, 1)
	select {
	case journal <- journalItem{reply: reply}:
	case <-ctx.Done():
		return
	}

	var result historyReply
	select {
	case result = <-reply:
	case <-ctx.Done():
		return
	}
	if result.err != nil {
		log.Printf("list journal: %v", result.err)
		r.printError(result.err)
		return
	}
	if len(result.records) == 0 {
		r.println("history.empty")
		return
	}
	for _, record := range result.records {
		r.println("history.entry", record.Seq, record.OccurredAt.Format(time.RFC3339), string(record.Kind), record.Prime)
	}
}
