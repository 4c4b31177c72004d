package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/louisbranch/primefinder/internal/services/primefinder/domain/activity"
	"github.com/louisbranch/primefinder/internal/services/primefinder/storage"
)

// AppendActivities inserts entries in one transaction, in order.
func (s *Store) AppendActivities(ctx context.Context, entries []activity.Activity) ([]storage.ActivityRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	for i, entry := range entries {
		if entry.Type == nil {
			return nil, fmt.Errorf("activity %d: type is required", i)
		}
		if entry.Timestamp.IsZero() {
			return nil, fmt.Errorf("activity %d: timestamp is required", i)
		}
	}
	if len(entries) == 0 {
		return nil, nil
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin append activities: %w", err)
	}
	appended := make([]storage.ActivityRecord, 0, len(entries))
	for _, entry := range entries {
		rec := storage.ActivityRecord{
			ID:         uuid.NewString(),
			Kind:       entry.Type.Kind(),
			Prime:      entry.Type.Value(),
			OccurredAt: entry.Timestamp.UTC(),
		}
		result, err := tx.ExecContext(ctx, `
INSERT INTO activities (id, kind, prime, occurred_at) VALUES (?, ?, ?, ?)
`,
			rec.ID,
			string(rec.Kind),
			rec.Prime,
			toNanos(rec.OccurredAt),
		)
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("append activity: %w", err)
		}
		seq, err := result.LastInsertId()
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("append activity seq: %w", err)
		}
		rec.Seq = uint64(seq)
		appended = append(appended, rec)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit append activities: %w", err)
	}
	return appended, nil
}

// ListActivities returns up to limit records with seq > afterSeq.
func (s *Store) ListActivities(ctx context.Context, afterSeq uint64, limit int) ([]storage.ActivityRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, storage.ErrPageSizeInvalid
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT seq, id, kind, prime, occurred_at
FROM activities
WHERE seq > ?
ORDER BY seq
LIMIT ?
`, int64(afterSeq), limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var out []storage.ActivityRecord
	for rows.Next() {
		var (
			rec        storage.ActivityRecord
			seq        int64
			kind       string
			occurredAt int64
		)
		if err := rows.Scan(&seq, &rec.ID, &kind, &rec.Prime, &occurredAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		rec.Seq = uint64(seq)
		rec.Kind = activity.Kind(kind)
		rec.OccurredAt = fromNanos(occurredAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return out, nil
}
