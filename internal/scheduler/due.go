package scheduler

import (
	"sort"
	"time"

	"github.com/abhisek/kotoba/internal/catalog"
	"github.com/abhisek/kotoba/internal/progress"
)

// DueItems returns the IDs of items in the learning stack whose review is
// due, most overdue first. ids is the catalog declaration order for the
// type; ties keep that order.
func DueItems(t catalog.ItemType, ids []string, st progress.Store, now time.Time) []string {
	type dueItem struct {
		id      string
		overdue float64
	}
	var due []dueItem

	for _, id := range ids {
		p := st.Get(t, id)
		if p.Stack != progress.StackLearning {
			continue
		}
		if IsDue(p, now) {
			due = append(due, dueItem{id: id, overdue: OverdueDays(p, now)})
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].overdue > due[j].overdue
	})

	out := make([]string, len(due))
	for i, d := range due {
		out[i] = d.id
	}
	return out
}

// NewItems returns up to quota item IDs to introduce next. Items already
// in the learning stack but not yet due come first (finish introducing
// what's in flight before drawing more), then unlearned items in strict
// catalog declaration order. A negative quota clamps to zero.
func NewItems(t catalog.ItemType, ids []string, st progress.Store, quota int, now time.Time) []string {
	if quota < 0 {
		quota = 0
	}

	var out []string
	for _, id := range ids {
		if len(out) >= quota {
			return out
		}
		p := st.Get(t, id)
		if p.Stack == progress.StackLearning && !IsDue(p, now) {
			out = append(out, id)
		}
	}
	for _, id := range ids {
		if len(out) >= quota {
			break
		}
		if st.Get(t, id).Stack == progress.StackUnlearned {
			out = append(out, id)
		}
	}
	return out
}

// InFlight returns the learning-but-not-yet-due item IDs in declaration
// order. These consume new-item quota before brand-new items do.
func InFlight(t catalog.ItemType, ids []string, st progress.Store, now time.Time) []string {
	var out []string
	for _, id := range ids {
		p := st.Get(t, id)
		if p.Stack == progress.StackLearning && !IsDue(p, now) {
			out = append(out, id)
		}
	}
	return out
}
