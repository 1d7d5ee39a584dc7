package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kotoba/internal/catalog"
	"github.com/abhisek/kotoba/internal/progress"
	"github.com/abhisek/kotoba/internal/stage"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestProgressRoundTrip(t *testing.T) {
	db := openTestDB(t)

	last := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	next := last.AddDate(0, 0, 3)
	p := progress.ItemProgress{
		Stack:               progress.StackLearning,
		SuccessCount:        2,
		FailCount:           1,
		Interval:            3,
		EaseFactor:          2.6,
		LastReview:          &last,
		NextReview:          &next,
		GraduationThreshold: 5,
	}
	require.NoError(t, db.SaveItem(catalog.TypeKanji, "day", p))

	mem, err := db.LoadProgress(5)
	require.NoError(t, err)

	got := mem.Get(catalog.TypeKanji, "day")
	assert.Equal(t, progress.StackLearning, got.Stack)
	assert.Equal(t, 2, got.SuccessCount)
	assert.Equal(t, 1, got.FailCount)
	assert.Equal(t, 3, got.Interval)
	assert.InDelta(t, 2.6, got.EaseFactor, 1e-9)
	require.NotNil(t, got.LastReview)
	require.NotNil(t, got.NextReview)
	assert.True(t, got.LastReview.Equal(last))
	assert.True(t, got.NextReview.Equal(next))
}

func TestLoadProgress_UnknownItemsDefault(t *testing.T) {
	db := openTestDB(t)

	mem, err := db.LoadProgress(4)
	require.NoError(t, err)

	p := mem.Get(catalog.TypeVocab, "never-seen")
	assert.Equal(t, progress.StackUnlearned, p.Stack)
	assert.Equal(t, 4, p.GraduationThreshold)
	assert.Nil(t, p.NextReview)
}

func TestSaveAll(t *testing.T) {
	db := openTestDB(t)

	mem := progress.NewMemoryStore(5)
	progress.Learn(mem, catalog.Key{Type: catalog.TypeKana, ID: "hira-a"})
	progress.Learn(mem, catalog.Key{Type: catalog.TypeKanji, ID: "day"})
	require.NoError(t, db.SaveAll(mem))

	loaded, err := db.LoadProgress(5)
	require.NoError(t, err)
	assert.Equal(t, progress.StackLearning, loaded.Get(catalog.TypeKana, "hira-a").Stack)
	assert.Equal(t, progress.StackLearning, loaded.Get(catalog.TypeKanji, "day").Stack)
}

func TestStageStateRoundTrip(t *testing.T) {
	db := openTestDB(t)
	gate, err := stage.NewGate(stage.DefaultStages(), catalog.Seed())
	require.NoError(t, err)

	// Nothing saved yet: initial state.
	state, err := db.LoadStageState(gate)
	require.NoError(t, err)
	assert.Equal(t, "kana", state.Current)
	assert.Empty(t, state.Completed)

	state.Current = "kanji"
	state.Completed["kana"] = true
	require.NoError(t, db.SaveStageState(state))

	loaded, err := db.LoadStageState(gate)
	require.NoError(t, err)
	assert.Equal(t, "kanji", loaded.Current)
	assert.True(t, loaded.IsCompleted("kana"))
}
