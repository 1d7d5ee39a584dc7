package progress

import (
	"github.com/abhisek/kotoba/internal/catalog"
)

// Learn moves an item into the learning stack. A freshly learned item has
// no next-review date, so it counts as due immediately. Learning or known
// items are left untouched.
func Learn(st Store, key catalog.Key) ItemProgress {
	p := st.Get(key.Type, key.ID)
	if p.Stack != StackUnlearned {
		return p
	}
	p.Stack = StackLearning
	st.Set(key.Type, key.ID, p)
	return p
}

// Graduate promotes a graduation-eligible item to the known stack.
// Returns false without mutating if the item is not eligible.
func Graduate(st Store, key catalog.Key) bool {
	p := st.Get(key.Type, key.ID)
	if !p.GraduationEligible() {
		return false
	}
	p.Stack = StackKnown
	p.NextReview = nil
	st.Set(key.Type, key.ID, p)
	return true
}

// Reset returns an item to its default unlearned state. Progress is never
// deleted, only reset.
func Reset(st Store, key catalog.Key) {
	p := st.Get(key.Type, key.ID)
	st.Set(key.Type, key.ID, Default(p.GraduationThreshold))
}
