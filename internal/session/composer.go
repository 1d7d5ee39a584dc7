package session

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/kotoba/internal/catalog"
	"github.com/abhisek/kotoba/internal/deps"
	"github.com/abhisek/kotoba/internal/progress"
	"github.com/abhisek/kotoba/internal/scheduler"
	"github.com/abhisek/kotoba/internal/stage"
)

// Composer assembles study sessions. It only reads from the store and the
// static catalogs; answer processing is a separate caller-invoked
// operation.
type Composer struct {
	cat      *catalog.Catalog
	gate     *stage.Gate
	resolver *deps.Resolver
}

// NewComposer creates a composer over the given catalog, gate, and resolver.
func NewComposer(cat *catalog.Catalog, gate *stage.Gate, resolver *deps.Resolver) *Composer {
	return &Composer{cat: cat, gate: gate, resolver: resolver}
}

// BuildSession produces one bounded, ordered session for the learner
// state. The branch taken depends entirely on stage gating:
//
//  1. Foundational stage incomplete: only that stage's fixed content. The
//     gate is absolute; nothing else is mixed in.
//  2. Milestone stage (kanji) short of its target: due reviews for its
//     item type in overdue order, then new items strictly in catalog
//     declaration order. The curriculum order is pedagogically
//     load-bearing and is never shuffled.
//  3. Mixed stage: shuffled due reviews across all types at the
//     configured review:new ratio, then learnable vocab by dependency
//     satisfaction, then the grammar injection pass.
//
// rng drives review shuffling only; fixing the seed fixes the output.
func (c *Composer) BuildSession(st progress.Store, settings Settings, state stage.State, now time.Time, rng *rand.Rand) Session {
	settings = settings.Clamped()
	defs := c.gate.Definitions()

	first := defs[0]
	if !c.gate.IsComplete(first.ID, st) {
		return c.foundationalSession(first, st)
	}

	if len(defs) > 1 {
		second := defs[1]
		if second.Milestone > 0 && !c.gate.IsComplete(second.ID, st) {
			return c.milestoneSession(second, st, settings, now)
		}
	}

	return c.mixedSession(st, settings, state, now, rng)
}

// foundationalSession serves the absolute gate: a single gating-skill
// drill while either sub-track is incomplete, otherwise the next unviewed
// introductory items.
func (c *Composer) foundationalSession(d stage.Definition, st progress.Store) Session {
	s := Session{ID: uuid.New().String(), StageID: d.ID}

	if !c.gate.TracksComplete(d, st) {
		s.Entries = []Entry{{
			Kind: EntryStageContent,
			Key:  catalog.Key{Type: d.ItemType, ID: KanaDrillID},
		}}
		return s
	}

	for _, key := range d.IntroContent {
		if len(s.Entries) >= introContentCap {
			break
		}
		if st.Get(key.Type, key.ID).Stack == progress.StackUnlearned {
			s.Entries = append(s.Entries, Entry{Kind: EntryStageContent, Key: key})
		}
	}
	return s
}

// milestoneSession serves the composite-learning stage: overdue-ordered
// reviews, then new items in declaration order up to the quota.
func (c *Composer) milestoneSession(d stage.Definition, st progress.Store, settings Settings, now time.Time) Session {
	report := c.gate.Progress(d.ID, st)
	s := Session{ID: uuid.New().String(), StageID: d.ID, Milestone: &report}

	ids := c.cat.IDs(d.ItemType)
	due := scheduler.DueItems(d.ItemType, ids, st, now)
	due = capReviews(due, settings.MaxDailyReviews)
	for _, id := range due {
		s.Entries = append(s.Entries, reviewEntry(catalog.Key{Type: d.ItemType, ID: id}))
	}

	for _, id := range scheduler.NewItems(d.ItemType, ids, st, settings.DailyNewItemQuota, now) {
		s.Entries = append(s.Entries, newEntry(catalog.Key{Type: d.ItemType, ID: id}))
	}
	return s
}

// mixedSession serves the open stage: shuffled reviews across every type,
// dependency-sorted new vocabulary, and trigger-based grammar injection.
func (c *Composer) mixedSession(st progress.Store, settings Settings, state stage.State, now time.Time, rng *rand.Rand) Session {
	stageID := state.Current
	if stageID == "" {
		defs := c.gate.Definitions()
		stageID = defs[len(defs)-1].ID
	}
	s := Session{ID: uuid.New().String(), StageID: stageID}

	var due []catalog.Key
	for _, t := range catalog.AllItemTypes() {
		for _, id := range scheduler.DueItems(t, c.cat.IDs(t), st, now) {
			due = append(due, catalog.Key{Type: t, ID: id})
		}
	}
	rng.Shuffle(len(due), func(i, j int) {
		due[i], due[j] = due[j], due[i]
	})

	reviewCount := settings.reviewTarget()
	if settings.MaxDailyReviews > 0 && reviewCount > settings.MaxDailyReviews {
		reviewCount = settings.MaxDailyReviews
	}
	if len(due) > reviewCount {
		due = due[:reviewCount]
	}
	for _, key := range due {
		s.Entries = append(s.Entries, reviewEntry(key))
	}

	// In-flight vocab consumes quota before brand-new items: finish
	// introducing what was already drawn.
	quota := settings.DailyNewItemQuota
	var newKeys []catalog.Key
	for _, id := range scheduler.InFlight(catalog.TypeVocab, c.cat.IDs(catalog.TypeVocab), st, now) {
		if len(newKeys) >= quota {
			break
		}
		newKeys = append(newKeys, catalog.Key{Type: catalog.TypeVocab, ID: id})
	}
	learnable := deps.SortByDependencySatisfaction(
		c.resolver.LearnableItems(catalog.TypeVocab, st, settings.SoftDependencies))
	for _, l := range learnable {
		if len(newKeys) >= quota {
			break
		}
		newKeys = append(newKeys, l.Key)
	}
	for _, key := range newKeys {
		s.Entries = append(s.Entries, newEntry(key))
	}

	s.Entries = c.injectSupplements(s.Entries)
	return s
}

// injectSupplements inserts one supplementary grammar entry immediately
// after each newly introduced item matching a trigger pattern, at most
// once per distinct pattern per session.
func (c *Composer) injectSupplements(entries []Entry) []Entry {
	triggers := c.cat.Triggers()
	used := make(map[string]bool, len(triggers))

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
		if e.Kind != EntryNew || e.Key.Type != catalog.TypeVocab {
			continue
		}
		v, ok := c.cat.Vocab(e.Key.ID)
		if !ok {
			continue
		}
		for _, tr := range triggers {
			if used[tr.Suffix] || !strings.HasSuffix(v.Written, tr.Suffix) {
				continue
			}
			used[tr.Suffix] = true
			out = append(out, Entry{
				Kind: EntrySupplement,
				Key:  catalog.Key{Type: catalog.TypeGrammar, ID: tr.GrammarID},
			})
			break
		}
	}
	return out
}

func capReviews(ids []string, max int) []string {
	if max > 0 && len(ids) > max {
		return ids[:max]
	}
	return ids
}
