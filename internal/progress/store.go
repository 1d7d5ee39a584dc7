package progress

import (
	"github.com/abhisek/kotoba/internal/catalog"
)

// Store is the per-item progress persistence boundary. Get never fails:
// unseen items yield the default state. Implementations need last-write-wins
// semantics only; the engine is single-learner, single-writer.
type Store interface {
	Get(t catalog.ItemType, id string) ItemProgress
	Set(t catalog.ItemType, id string, p ItemProgress)
	GetAll(t catalog.ItemType) map[string]ItemProgress
}

// MemoryStore is the in-process Store used as the working state snapshot
// and by tests. A persistent layer loads into one of these at startup and
// flushes it back at the boundary.
type MemoryStore struct {
	threshold int
	items     map[catalog.Key]ItemProgress
}

// NewMemoryStore creates an empty store whose defaults carry the given
// graduation threshold.
func NewMemoryStore(graduationThreshold int) *MemoryStore {
	return &MemoryStore{
		threshold: graduationThreshold,
		items:     make(map[catalog.Key]ItemProgress),
	}
}

func (m *MemoryStore) Get(t catalog.ItemType, id string) ItemProgress {
	if p, ok := m.items[catalog.Key{Type: t, ID: id}]; ok {
		return p
	}
	return Default(m.threshold)
}

func (m *MemoryStore) Set(t catalog.ItemType, id string, p ItemProgress) {
	m.items[catalog.Key{Type: t, ID: id}] = p
}

func (m *MemoryStore) GetAll(t catalog.ItemType) map[string]ItemProgress {
	out := make(map[string]ItemProgress)
	for k, p := range m.items {
		if k.Type == t {
			out[k.ID] = p
		}
	}
	return out
}

// Items returns every tracked entry. Used by the persistence layer to
// flush the snapshot.
func (m *MemoryStore) Items() map[catalog.Key]ItemProgress {
	out := make(map[catalog.Key]ItemProgress, len(m.items))
	for k, p := range m.items {
		out[k] = p
	}
	return out
}
