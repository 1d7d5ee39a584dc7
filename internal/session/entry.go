package session

import (
	"github.com/abhisek/kotoba/internal/catalog"
	"github.com/abhisek/kotoba/internal/stage"
)

// EntryKind is the session entry variant.
type EntryKind string

const (
	// EntryReview is a due review of a learning item.
	EntryReview EntryKind = "due-review"
	// EntryNew introduces an item for the first time.
	EntryNew EntryKind = "new-item"
	// EntryStageContent is fixed content served by a gated stage.
	EntryStageContent EntryKind = "stage-content"
	// EntrySupplement is contextually injected supplementary content.
	EntrySupplement EntryKind = "supplement"
)

// KanaDrillID is the sentinel item ID for the foundational gating drill.
// It is not a catalog item; the shell renders it as a kana practice round.
const KanaDrillID = "kana-drill"

// Entry is one ordered element of a study session.
type Entry struct {
	Kind     EntryKind
	Key      catalog.Key
	IsNew    bool
	IsReview bool
}

// Session is one bounded, ordered study session. Constructed fresh on each
// request and never persisted. An empty Entries list means there is
// nothing to study right now, which is a normal state.
type Session struct {
	ID      string
	StageID string
	Entries []Entry

	// Milestone carries the active stage's progress toward its target for
	// milestone-gated sessions; nil otherwise.
	Milestone *stage.Report
}

func reviewEntry(key catalog.Key) Entry {
	return Entry{Kind: EntryReview, Key: key, IsReview: true}
}

func newEntry(key catalog.Key) Entry {
	return Entry{Kind: EntryNew, Key: key, IsNew: true}
}
