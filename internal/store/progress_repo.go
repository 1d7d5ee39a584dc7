package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/abhisek/kotoba/internal/catalog"
	"github.com/abhisek/kotoba/internal/progress"
)

// progressRow maps the item_progress table.
type progressRow struct {
	ItemType            string         `db:"item_type"`
	ItemID              string         `db:"item_id"`
	Stack               string         `db:"stack"`
	SuccessCount        int            `db:"success_count"`
	FailCount           int            `db:"fail_count"`
	IntervalDays        int            `db:"interval_days"`
	EaseFactor          float64        `db:"ease_factor"`
	LastReview          sql.NullString `db:"last_review"`
	NextReview          sql.NullString `db:"next_review"`
	GraduationThreshold int            `db:"graduation_threshold"`
}

// LoadProgress reads all persisted item progress into a fresh in-memory
// snapshot whose defaults carry the given graduation threshold.
func (s *DB) LoadProgress(graduationThreshold int) (*progress.MemoryStore, error) {
	var rows []progressRow
	if err := s.db.Select(&rows, `SELECT * FROM item_progress`); err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	mem := progress.NewMemoryStore(graduationThreshold)
	for _, r := range rows {
		p := progress.ItemProgress{
			Stack:               progress.Stack(r.Stack),
			SuccessCount:        r.SuccessCount,
			FailCount:           r.FailCount,
			Interval:            r.IntervalDays,
			EaseFactor:          r.EaseFactor,
			GraduationThreshold: r.GraduationThreshold,
		}
		if t, ok := parseTime(r.LastReview); ok {
			p.LastReview = &t
		}
		if t, ok := parseTime(r.NextReview); ok {
			p.NextReview = &t
		}
		mem.Set(catalog.ItemType(r.ItemType), r.ItemID, p)
	}
	return mem, nil
}

// SaveItem upserts one item's progress.
func (s *DB) SaveItem(t catalog.ItemType, id string, p progress.ItemProgress) error {
	_, err := s.db.Exec(`
		INSERT INTO item_progress
			(item_type, item_id, stack, success_count, fail_count,
			 interval_days, ease_factor, last_review, next_review, graduation_threshold)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (item_type, item_id) DO UPDATE SET
			stack = excluded.stack,
			success_count = excluded.success_count,
			fail_count = excluded.fail_count,
			interval_days = excluded.interval_days,
			ease_factor = excluded.ease_factor,
			last_review = excluded.last_review,
			next_review = excluded.next_review,
			graduation_threshold = excluded.graduation_threshold`,
		string(t), id, string(p.Stack), p.SuccessCount, p.FailCount,
		p.Interval, p.EaseFactor, formatTime(p.LastReview), formatTime(p.NextReview),
		p.GraduationThreshold)
	if err != nil {
		return fmt.Errorf("save item %s/%s: %w", t, id, err)
	}
	return nil
}

// SaveAll flushes the entire snapshot back to disk in one transaction.
func (s *DB) SaveAll(mem *progress.MemoryStore) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for key, p := range mem.Items() {
		_, err := tx.Exec(`
			INSERT INTO item_progress
				(item_type, item_id, stack, success_count, fail_count,
				 interval_days, ease_factor, last_review, next_review, graduation_threshold)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (item_type, item_id) DO UPDATE SET
				stack = excluded.stack,
				success_count = excluded.success_count,
				fail_count = excluded.fail_count,
				interval_days = excluded.interval_days,
				ease_factor = excluded.ease_factor,
				last_review = excluded.last_review,
				next_review = excluded.next_review,
				graduation_threshold = excluded.graduation_threshold`,
			string(key.Type), key.ID, string(p.Stack), p.SuccessCount, p.FailCount,
			p.Interval, p.EaseFactor, formatTime(p.LastReview), formatTime(p.NextReview),
			p.GraduationThreshold)
		if err != nil {
			return fmt.Errorf("save item %s: %w", key, err)
		}
	}
	return tx.Commit()
}

func parseTime(ns sql.NullString) (time.Time, bool) {
	if !ns.Valid || ns.String == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, ns.String)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func formatTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}
