// Package app wires the engine together for the CLI shell: it owns the
// persistence boundary, loading the learner snapshot at startup and
// flushing mutations back after every state-changing operation.
package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/abhisek/kotoba/internal/catalog"
	"github.com/abhisek/kotoba/internal/deps"
	"github.com/abhisek/kotoba/internal/progress"
	"github.com/abhisek/kotoba/internal/scheduler"
	"github.com/abhisek/kotoba/internal/session"
	"github.com/abhisek/kotoba/internal/stage"
	"github.com/abhisek/kotoba/internal/store"
)

// App holds the engine and the learner state snapshot.
type App struct {
	Catalog  *catalog.Catalog
	Gate     *stage.Gate
	Resolver *deps.Resolver
	Composer *session.Composer
	Settings session.Settings

	Progress   *progress.MemoryStore
	StageState stage.State

	db *store.DB
}

// Open loads catalogs and learner state. catalogPath may be empty, in
// which case the built-in seed catalog is used.
func Open(dbPath, catalogPath string, settings session.Settings) (*App, error) {
	settings = settings.Clamped()

	var cat *catalog.Catalog
	if catalogPath != "" {
		var err error
		cat, err = catalog.Load(catalogPath)
		if err != nil {
			return nil, err
		}
	} else {
		cat = catalog.Seed()
	}

	gate, err := stage.NewGate(stage.DefaultStages(), cat)
	if err != nil {
		return nil, err
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	mem, err := db.LoadProgress(settings.GraduationThreshold)
	if err != nil {
		db.Close()
		return nil, err
	}
	stageState, err := db.LoadStageState(gate)
	if err != nil {
		db.Close()
		return nil, err
	}

	resolver := deps.NewResolver(cat)
	return &App{
		Catalog:    cat,
		Gate:       gate,
		Resolver:   resolver,
		Composer:   session.NewComposer(cat, gate, resolver),
		Settings:   settings,
		Progress:   mem,
		StageState: stageState,
		db:         db,
	}, nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.db.Close()
}

// BuildSession composes today's session. seed fixes the review shuffle.
func (a *App) BuildSession(now time.Time, seed int64) session.Session {
	rng := rand.New(rand.NewSource(seed))
	return a.Composer.BuildSession(a.Progress, a.Settings, a.StageState, now, rng)
}

// Answer processes one answer: items not yet in the learning stack are
// drawn in first, the scheduler computes the next state, and both the
// item and any stage advancement are persisted. Returns the updated
// progress; GraduationEligible on it signals a graduation candidate.
func (a *App) Answer(key catalog.Key, correct bool, now time.Time) (progress.ItemProgress, error) {
	if !a.Catalog.Has(key) {
		return progress.ItemProgress{}, fmt.Errorf("unknown item %s", key)
	}

	p := a.Progress.Get(key.Type, key.ID)
	if p.Stack == progress.StackKnown {
		return p, nil
	}
	if p.Stack == progress.StackUnlearned {
		p = progress.Learn(a.Progress, key)
	}

	next := scheduler.NextState(p, correct, now)
	a.Progress.Set(key.Type, key.ID, next)
	if err := a.db.SaveItem(key.Type, key.ID, next); err != nil {
		return next, err
	}

	return next, a.advanceStage()
}

// Learn draws an unlearned item into study.
func (a *App) Learn(key catalog.Key) error {
	if !a.Catalog.Has(key) {
		return fmt.Errorf("unknown item %s", key)
	}
	p := progress.Learn(a.Progress, key)
	if err := a.db.SaveItem(key.Type, key.ID, p); err != nil {
		return err
	}
	return a.advanceStage()
}

// Graduate promotes a graduation-eligible item to known. Returns false if
// the item is not eligible.
func (a *App) Graduate(key catalog.Key) (bool, error) {
	if !progress.Graduate(a.Progress, key) {
		return false, nil
	}
	if err := a.db.SaveItem(key.Type, key.ID, a.Progress.Get(key.Type, key.ID)); err != nil {
		return true, err
	}
	return true, a.advanceStage()
}

// Reset returns an item to its unlearned default.
func (a *App) Reset(key catalog.Key) error {
	progress.Reset(a.Progress, key)
	return a.db.SaveItem(key.Type, key.ID, a.Progress.Get(key.Type, key.ID))
}

func (a *App) advanceStage() error {
	next := a.Gate.Advance(a.StageState, a.Progress)
	if next.Current == a.StageState.Current && len(next.Completed) == len(a.StageState.Completed) {
		return nil
	}
	a.StageState = next
	return a.db.SaveStageState(next)
}

// TypeStats aggregates per-type progress counts.
type TypeStats struct {
	Unlearned int
	Learning  int
	Known     int
	Eligible  []string
}

// Stats returns per-type aggregate counts plus graduation candidates.
func (a *App) Stats() map[catalog.ItemType]TypeStats {
	out := make(map[catalog.ItemType]TypeStats)
	for _, t := range catalog.AllItemTypes() {
		var ts TypeStats
		for _, id := range a.Catalog.IDs(t) {
			p := a.Progress.Get(t, id)
			switch p.Stack {
			case progress.StackLearning:
				ts.Learning++
				if p.GraduationEligible() {
					ts.Eligible = append(ts.Eligible, id)
				}
			case progress.StackKnown:
				ts.Known++
			default:
				ts.Unlearned++
			}
		}
		out[t] = ts
	}
	return out
}
