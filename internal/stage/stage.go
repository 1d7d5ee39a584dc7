// Package stage implements the curriculum stage sequence: a directed
// chain of learning stages with prerequisite gating, one parallel-unlock
// branch point, and per-stage completion predicates over aggregate
// learner counts.
package stage

import (
	"github.com/abhisek/kotoba/internal/catalog"
)

// Definition is the static configuration of one stage. Stages form a
// sequence by Order; a stage may additionally declare ParallelWith plus
// UnlockAt to permit early partial unlock before its formal prerequisite
// completes.
type Definition struct {
	ID           string
	Title        string
	Order        int
	Prerequisite string
	ParallelWith string
	UnlockAt     int

	// ItemType is the content type this stage teaches.
	ItemType catalog.ItemType

	// Milestone is the graduated-item count that completes a milestone
	// stage. Zero for stages with a structural completion predicate.
	Milestone int

	// IntroContent is the fixed ordered introductory content served by the
	// foundational stage once its gating sub-skill is complete.
	IntroContent []catalog.Key
}

// State is the learner's position in the stage sequence.
type State struct {
	Current   string
	Completed map[string]bool
}

// NewState returns the initial learner state positioned at the first stage.
func (g *Gate) NewState() State {
	return State{
		Current:   g.first.ID,
		Completed: make(map[string]bool),
	}
}

// clone copies the state so Advance stays side-effect-free.
func (s State) clone() State {
	completed := make(map[string]bool, len(s.Completed))
	for id, done := range s.Completed {
		completed[id] = done
	}
	return State{Current: s.Current, Completed: completed}
}

// IsCompleted reports whether a stage id is in the completed set.
func (s State) IsCompleted(id string) bool {
	return s.Completed[id]
}
