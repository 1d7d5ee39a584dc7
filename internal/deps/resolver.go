// Package deps resolves the constituent structure of composite items:
// vocabulary decomposes into the kanji of its written form, kanji into
// their radicals. Prerequisite checks gate only on priority constituents
// so that rare components never block the curriculum.
package deps

import (
	"sort"
	"sync"

	"github.com/abhisek/kotoba/internal/catalog"
	"github.com/abhisek/kotoba/internal/progress"
)

// Resolver decomposes composite items against the static catalog.
// Decomposition results are cached; the catalog is immutable for the
// process lifetime, so entries are computed once and reused. The cache is
// guarded for read-mostly concurrent use within one process.
type Resolver struct {
	cat *catalog.Catalog

	mu    sync.RWMutex
	cache map[catalog.Key][]catalog.Key
}

// NewResolver creates a resolver over the given catalog.
func NewResolver(cat *catalog.Catalog) *Resolver {
	return &Resolver{
		cat:   cat,
		cache: make(map[catalog.Key][]catalog.Key),
	}
}

// Decompose maps a composite item to its immediate constituent keys:
// vocab to cataloged kanji, kanji to radicals. Other types have no
// constituents and return nil.
func (r *Resolver) Decompose(key catalog.Key) []catalog.Key {
	r.mu.RLock()
	cached, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return cached
	}

	parts := r.decompose(key)

	r.mu.Lock()
	r.cache[key] = parts
	r.mu.Unlock()
	return parts
}

func (r *Resolver) decompose(key catalog.Key) []catalog.Key {
	switch key.Type {
	case catalog.TypeVocab:
		v, ok := r.cat.Vocab(key.ID)
		if !ok {
			return nil
		}
		var parts []catalog.Key
		seen := make(map[string]bool)
		for _, ru := range v.Written {
			k, ok := r.cat.KanjiByRune(ru)
			if !ok || seen[k.ID] {
				continue
			}
			seen[k.ID] = true
			parts = append(parts, catalog.Key{Type: catalog.TypeKanji, ID: k.ID})
		}
		return parts

	case catalog.TypeKanji:
		k, ok := r.cat.Kanji(key.ID)
		if !ok {
			return nil
		}
		var parts []catalog.Key
		for _, radID := range k.Radicals {
			parts = append(parts, catalog.Key{Type: catalog.TypeRadical, ID: radID})
		}
		return parts
	}
	return nil
}

// MissingPrerequisites returns the priority constituents of an item that
// are still unlearned. Non-priority constituents never gate.
func (r *Resolver) MissingPrerequisites(key catalog.Key, st progress.Store) []catalog.Key {
	var missing []catalog.Key
	for _, part := range r.Decompose(key) {
		if !r.isPriority(part) {
			continue
		}
		if st.Get(part.Type, part.ID).Stack == progress.StackUnlearned {
			missing = append(missing, part)
		}
	}
	return missing
}

func (r *Resolver) isPriority(key catalog.Key) bool {
	switch key.Type {
	case catalog.TypeKanji:
		k, ok := r.cat.Kanji(key.ID)
		return ok && k.Priority
	case catalog.TypeRadical:
		rad, ok := r.cat.Radical(key.ID)
		return ok && rad.Priority
	}
	return false
}

// Eligibility is the result of a prerequisite check.
type Eligibility struct {
	Allowed bool
	Missing []catalog.Key
}

// CanLearn checks whether an item's prerequisites are satisfied. In soft
// mode the check never blocks: Allowed is always true and Missing is
// advisory. In strict mode Allowed holds iff nothing is missing.
func (r *Resolver) CanLearn(key catalog.Key, st progress.Store, soft bool) Eligibility {
	missing := r.MissingPrerequisites(key, st)
	return Eligibility{
		Allowed: soft || len(missing) == 0,
		Missing: missing,
	}
}

// Learnable is an unlearned item annotated with its dependency structure.
type Learnable struct {
	Key           catalog.Key
	Constituents  []catalog.Key
	Missing       []catalog.Key
	FrequencyRank int
}

// LearnableItems returns every unlearned item of the given type whose
// prerequisite check allows learning, in catalog declaration order, each
// annotated with its full constituent set and missing set.
func (r *Resolver) LearnableItems(t catalog.ItemType, st progress.Store, soft bool) []Learnable {
	var out []Learnable
	for _, id := range r.cat.IDs(t) {
		key := catalog.Key{Type: t, ID: id}
		if st.Get(t, id).Stack != progress.StackUnlearned {
			continue
		}
		el := r.CanLearn(key, st, soft)
		if !el.Allowed {
			continue
		}
		out = append(out, Learnable{
			Key:           key,
			Constituents:  r.Decompose(key),
			Missing:       el.Missing,
			FrequencyRank: r.cat.FrequencyRank(key),
		})
	}
	return out
}

// SortByDependencySatisfaction stably orders items by missing-prerequisite
// count ascending, then static frequency rank ascending: items blocking on
// fewer prerequisites come first, more common items break ties.
func SortByDependencySatisfaction(items []Learnable) []Learnable {
	out := make([]Learnable, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].Missing) != len(out[j].Missing) {
			return len(out[i].Missing) < len(out[j].Missing)
		}
		return out[i].FrequencyRank < out[j].FrequencyRank
	})
	return out
}
