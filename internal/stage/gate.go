package stage

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/abhisek/kotoba/internal/catalog"
	"github.com/abhisek/kotoba/internal/progress"
)

// Gate evaluates stage unlocking, completion, and advancement against a
// progress snapshot. Definitions are validated once at construction;
// invalid stage configuration fails fast.
type Gate struct {
	defs    []Definition
	byID    map[string]*Definition
	byOrder map[int]*Definition
	first   *Definition
	cat     *catalog.Catalog
}

// NewGate validates the stage catalog and builds a gate over it.
func NewGate(defs []Definition, cat *catalog.Catalog) (*Gate, error) {
	if err := validateStages(defs, cat); err != nil {
		return nil, err
	}

	g := &Gate{
		defs:    make([]Definition, len(defs)),
		byID:    make(map[string]*Definition, len(defs)),
		byOrder: make(map[int]*Definition, len(defs)),
		cat:     cat,
	}
	copy(g.defs, defs)
	sort.SliceStable(g.defs, func(i, j int) bool { return g.defs[i].Order < g.defs[j].Order })
	for i := range g.defs {
		d := &g.defs[i]
		g.byID[d.ID] = d
		g.byOrder[d.Order] = d
	}
	g.first = g.byOrder[1]
	return g, nil
}

// Definition returns the stage with the given id.
func (g *Gate) Definition(id string) (Definition, bool) {
	d, ok := g.byID[id]
	if !ok {
		return Definition{}, false
	}
	return *d, true
}

// Definitions returns all stages in order.
func (g *Gate) Definitions() []Definition {
	out := make([]Definition, len(g.defs))
	copy(out, g.defs)
	return out
}

// IsUnlocked reports whether a stage is reachable: it is the first stage,
// its prerequisite is complete, or its parallel-unlock condition holds
// (the parallel stage's own prerequisite is complete and the aggregate
// in-progress+known count of that stage's item type passes the threshold).
func (g *Gate) IsUnlocked(id string, st progress.Store) bool {
	d, ok := g.byID[id]
	if !ok {
		return false
	}
	if d.Order == 1 {
		return true
	}
	if d.Prerequisite != "" && g.IsComplete(d.Prerequisite, st) {
		return true
	}
	if d.ParallelWith != "" {
		parallel := g.byID[d.ParallelWith]
		prereqDone := parallel.Prerequisite == "" || g.IsComplete(parallel.Prerequisite, st)
		if prereqDone && g.startedCount(parallel.ItemType, st) >= d.UnlockAt {
			return true
		}
	}
	return false
}

// IsComplete evaluates the stage's completion predicate. Gating always
// uses this boolean, never the Progress percentage.
func (g *Gate) IsComplete(id string, st progress.Store) bool {
	d, ok := g.byID[id]
	if !ok {
		return false
	}
	if d.Milestone > 0 {
		return g.knownCount(d.ItemType, st) >= d.Milestone
	}
	// Structural predicate: every item of the stage's fixed universe
	// started, plus all introductory content viewed.
	if !g.TracksComplete(*d, st) {
		return false
	}
	for _, key := range d.IntroContent {
		if st.Get(key.Type, key.ID).Stack == progress.StackUnlearned {
			return false
		}
	}
	return true
}

// TracksComplete reports whether every item in the stage's fixed universe
// is at least in progress. For the kana stage this means both sub-tracks
// at 100%.
func (g *Gate) TracksComplete(d Definition, st progress.Store) bool {
	for _, id := range g.cat.IDs(d.ItemType) {
		if st.Get(d.ItemType, id).Stack == progress.StackUnlearned {
			return false
		}
	}
	return len(g.cat.IDs(d.ItemType)) > 0
}

// Advance moves the learner forward if the current stage is complete and
// the next stage in order is unlocked. Idempotent and side-effect-free:
// the caller persists the returned state. Never moves backward.
func (g *Gate) Advance(state State, st progress.Store) State {
	cur, ok := g.byID[state.Current]
	if !ok || !g.IsComplete(cur.ID, st) {
		return state
	}

	next := g.byOrder[cur.Order+1]

	out := state.clone()
	out.Completed[cur.ID] = true
	if next != nil && g.IsUnlocked(next.ID, st) {
		out.Current = next.ID
	}
	return out
}

// Report is a display-oriented progress metric for one stage. It is never
// used for gating decisions.
type Report struct {
	StageID   string
	Percent   float64
	Current   int
	Target    int
	Breakdown map[string]int
}

// Progress computes the display progress for a stage.
func (g *Gate) Progress(id string, st progress.Store) Report {
	d, ok := g.byID[id]
	if !ok {
		return Report{StageID: id}
	}

	if d.Milestone > 0 {
		current := g.knownCount(d.ItemType, st)
		return Report{
			StageID: id,
			Percent: percent(current, d.Milestone),
			Current: current,
			Target:  d.Milestone,
			Breakdown: map[string]int{
				string(d.ItemType): current,
			},
		}
	}

	// Track breakdown for the foundational stage.
	breakdown := make(map[string]int)
	started, target := 0, 0
	for _, track := range catalog.AllTracks() {
		kana := g.cat.KanaTrack(track)
		n := 0
		for _, k := range kana {
			if st.Get(catalog.TypeKana, k.ID).Stack != progress.StackUnlearned {
				n++
			}
		}
		breakdown[string(track)] = n
		started += n
		target += len(kana)
	}
	return Report{
		StageID:   id,
		Percent:   percent(started, target),
		Current:   started,
		Target:    target,
		Breakdown: breakdown,
	}
}

// startedCount is the cross-cutting aggregate used by parallel unlock:
// items of a type in progress or known.
func (g *Gate) startedCount(t catalog.ItemType, st progress.Store) int {
	n := 0
	for _, p := range st.GetAll(t) {
		if p.Stack != progress.StackUnlearned {
			n++
		}
	}
	return n
}

func (g *Gate) knownCount(t catalog.ItemType, st progress.Store) int {
	n := 0
	for _, p := range st.GetAll(t) {
		if p.Stack == progress.StackKnown {
			n++
		}
	}
	return n
}

func percent(current, target int) float64 {
	if target <= 0 {
		return 0
	}
	pct := float64(current) / float64(target) * 100
	return math.Min(pct, 100)
}

// validateStages performs all structural checks on the stage catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateStages(defs []Definition, cat *catalog.Catalog) error {
	var errs []string

	idSet := make(map[string]bool, len(defs))
	orderSet := make(map[int]bool, len(defs))
	for _, d := range defs {
		if d.ID == "" {
			errs = append(errs, "stage with empty ID")
		}
		if idSet[d.ID] {
			errs = append(errs, fmt.Sprintf("duplicate stage ID: %q", d.ID))
		}
		idSet[d.ID] = true
		if orderSet[d.Order] {
			errs = append(errs, fmt.Sprintf("duplicate stage order %d (stage %q)", d.Order, d.ID))
		}
		orderSet[d.Order] = true
		if !d.ItemType.Valid() {
			errs = append(errs, fmt.Sprintf("stage %q has unknown item type %q", d.ID, d.ItemType))
		}
	}

	for i := 1; i <= len(defs); i++ {
		if !orderSet[i] {
			errs = append(errs, fmt.Sprintf("stage orders must be contiguous from 1: missing order %d", i))
		}
	}

	for _, d := range defs {
		if d.Order == 1 && d.Prerequisite != "" {
			errs = append(errs, fmt.Sprintf("first stage %q must not declare a prerequisite", d.ID))
		}
		if d.Order > 1 && d.Prerequisite == "" {
			errs = append(errs, fmt.Sprintf("stage %q (order %d) must declare a prerequisite", d.ID, d.Order))
		}
		if d.Prerequisite != "" && !idSet[d.Prerequisite] {
			errs = append(errs, fmt.Sprintf("stage %q references nonexistent prerequisite %q", d.ID, d.Prerequisite))
		}
		if d.ParallelWith != "" && !idSet[d.ParallelWith] {
			errs = append(errs, fmt.Sprintf("stage %q references nonexistent parallel stage %q", d.ID, d.ParallelWith))
		}
		if d.ParallelWith != "" && d.UnlockAt <= 0 {
			errs = append(errs, fmt.Sprintf("stage %q declares parallelWith but no positive unlockAt", d.ID))
		}
		if d.ParallelWith == "" && d.UnlockAt > 0 {
			errs = append(errs, fmt.Sprintf("stage %q declares unlockAt without parallelWith", d.ID))
		}
		if d.ParallelWith == d.ID && d.ParallelWith != "" {
			errs = append(errs, fmt.Sprintf("stage %q cannot be parallel with itself", d.ID))
		}
		for _, key := range d.IntroContent {
			if cat != nil && !cat.Has(key) {
				errs = append(errs, fmt.Sprintf("stage %q intro content %s not in catalog", d.ID, key))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("stage catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
