package stage

import (
	"strings"
	"testing"

	"github.com/abhisek/kotoba/internal/catalog"
	"github.com/abhisek/kotoba/internal/progress"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.Data{
		Kana: []catalog.Kana{
			{ID: "hira-a", Glyph: "あ", Romaji: "a", Track: catalog.TrackHiragana},
			{ID: "hira-i", Glyph: "い", Romaji: "i", Track: catalog.TrackHiragana},
			{ID: "kata-a", Glyph: "ア", Romaji: "a", Track: catalog.TrackKatakana},
			{ID: "kata-i", Glyph: "イ", Romaji: "i", Track: catalog.TrackKatakana},
		},
		Kanji: []catalog.Kanji{
			{ID: "one", Glyph: "一", Keyword: "one"},
			{ID: "two", Glyph: "二", Keyword: "two"},
			{ID: "three", Glyph: "三", Keyword: "three"},
		},
		Vocab: []catalog.Vocab{
			{ID: "ichi", Written: "一", Reading: "いち", Meaning: "one"},
		},
		Grammar: []catalog.Grammar{
			{ID: "intro", Title: "intro"},
		},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat
}

func testStages() []Definition {
	return []Definition{
		{ID: "kana", Order: 1, ItemType: catalog.TypeKana,
			IntroContent: []catalog.Key{{Type: catalog.TypeGrammar, ID: "intro"}}},
		{ID: "kanji", Order: 2, Prerequisite: "kana", ItemType: catalog.TypeKanji, Milestone: 2},
		{ID: "vocab", Order: 3, Prerequisite: "kanji", ParallelWith: "kanji", UnlockAt: 2,
			ItemType: catalog.TypeVocab, Milestone: 1},
	}
}

func testGate(t *testing.T) *Gate {
	t.Helper()
	g, err := NewGate(testStages(), testCatalog(t))
	if err != nil {
		t.Fatalf("gate: %v", err)
	}
	return g
}

func learnAll(st *progress.MemoryStore, t catalog.ItemType, ids ...string) {
	for _, id := range ids {
		progress.Learn(st, catalog.Key{Type: t, ID: id})
	}
}

func know(st *progress.MemoryStore, t catalog.ItemType, ids ...string) {
	for _, id := range ids {
		p := progress.Default(1)
		p.Stack = progress.StackKnown
		st.Set(t, id, p)
	}
}

func completeKana(st *progress.MemoryStore) {
	learnAll(st, catalog.TypeKana, "hira-a", "hira-i", "kata-a", "kata-i")
	learnAll(st, catalog.TypeGrammar, "intro")
}

func TestNewGate_ValidationFailures(t *testing.T) {
	cat := testCatalog(t)
	tests := []struct {
		name string
		defs []Definition
		want string
	}{
		{
			name: "dangling prerequisite",
			defs: []Definition{
				{ID: "a", Order: 1, ItemType: catalog.TypeKana},
				{ID: "b", Order: 2, Prerequisite: "nope", ItemType: catalog.TypeKanji, Milestone: 1},
			},
			want: "nonexistent prerequisite",
		},
		{
			name: "duplicate order",
			defs: []Definition{
				{ID: "a", Order: 1, ItemType: catalog.TypeKana},
				{ID: "b", Order: 1, ItemType: catalog.TypeKanji, Milestone: 1},
			},
			want: "duplicate stage order",
		},
		{
			name: "parallel without threshold",
			defs: []Definition{
				{ID: "a", Order: 1, ItemType: catalog.TypeKana},
				{ID: "b", Order: 2, Prerequisite: "a", ParallelWith: "a", ItemType: catalog.TypeKanji, Milestone: 1},
			},
			want: "no positive unlockAt",
		},
		{
			name: "intro content not in catalog",
			defs: []Definition{
				{ID: "a", Order: 1, ItemType: catalog.TypeKana,
					IntroContent: []catalog.Key{{Type: catalog.TypeGrammar, ID: "ghost"}}},
			},
			want: "not in catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGate(tt.defs, cat)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestIsUnlocked_FirstStageAlways(t *testing.T) {
	g := testGate(t)
	st := progress.NewMemoryStore(1)
	if !g.IsUnlocked("kana", st) {
		t.Error("first stage must always be unlocked")
	}
}

func TestIsUnlocked_RequiresPrerequisiteComplete(t *testing.T) {
	g := testGate(t)
	st := progress.NewMemoryStore(1)

	if g.IsUnlocked("kanji", st) {
		t.Error("kanji must stay locked while kana is incomplete")
	}

	completeKana(st)
	if !g.IsUnlocked("kanji", st) {
		t.Error("kanji must unlock once kana is complete")
	}
}

func TestIsUnlocked_ParallelThreshold(t *testing.T) {
	g := testGate(t)
	st := progress.NewMemoryStore(1)
	completeKana(st)

	// Kanji milestone not reached, only one kanji started: vocab locked.
	learnAll(st, catalog.TypeKanji, "one")
	if g.IsUnlocked("vocab", st) {
		t.Error("vocab must stay locked below the parallel threshold")
	}

	// Two kanji in progress passes unlockAt even though the kanji stage
	// itself is incomplete.
	learnAll(st, catalog.TypeKanji, "two")
	if !g.IsUnlocked("vocab", st) {
		t.Error("vocab must unlock at the parallel threshold")
	}
}

func TestIsUnlocked_ParallelRequiresParallelPrerequisite(t *testing.T) {
	g := testGate(t)
	st := progress.NewMemoryStore(1)

	// Kanji started without kana complete: threshold met but the parallel
	// stage's own prerequisite is not, so vocab stays locked.
	learnAll(st, catalog.TypeKanji, "one", "two")
	if g.IsUnlocked("vocab", st) {
		t.Error("parallel unlock must require the parallel stage's prerequisite")
	}
}

func TestIsComplete_KanaStage(t *testing.T) {
	g := testGate(t)
	st := progress.NewMemoryStore(1)

	learnAll(st, catalog.TypeKana, "hira-a", "hira-i", "kata-a")
	if g.IsComplete("kana", st) {
		t.Error("kana incomplete while a track has unlearned characters")
	}

	learnAll(st, catalog.TypeKana, "kata-i")
	if g.IsComplete("kana", st) {
		t.Error("kana incomplete while intro content is unviewed")
	}

	learnAll(st, catalog.TypeGrammar, "intro")
	if !g.IsComplete("kana", st) {
		t.Error("kana complete once both tracks and intro are done")
	}
}

func TestIsComplete_MilestoneCountsKnownOnly(t *testing.T) {
	g := testGate(t)
	st := progress.NewMemoryStore(1)

	learnAll(st, catalog.TypeKanji, "one", "two", "three")
	if g.IsComplete("kanji", st) {
		t.Error("learning items must not count toward the graduation milestone")
	}

	know(st, catalog.TypeKanji, "one", "two")
	if !g.IsComplete("kanji", st) {
		t.Error("milestone reached with two known kanji")
	}
}

func TestAdvance(t *testing.T) {
	g := testGate(t)
	st := progress.NewMemoryStore(1)
	state := g.NewState()

	// Incomplete stage: no movement, idempotent.
	next := g.Advance(state, st)
	if next.Current != "kana" || len(next.Completed) != 0 {
		t.Errorf("advance on incomplete stage changed state: %+v", next)
	}

	completeKana(st)
	next = g.Advance(state, st)
	if next.Current != "kanji" {
		t.Errorf("current = %q, want kanji", next.Current)
	}
	if !next.IsCompleted("kana") {
		t.Error("kana missing from completed set")
	}
	if state.Current != "kana" {
		t.Error("advance mutated its input state")
	}

	// Idempotent when re-applied: kanji incomplete.
	again := g.Advance(next, st)
	if again.Current != "kanji" {
		t.Errorf("current = %q, want kanji (no milestone yet)", again.Current)
	}

	// Never moves backward.
	know(st, catalog.TypeKanji, "one", "two")
	final := g.Advance(again, st)
	if final.Current != "vocab" || !final.IsCompleted("kanji") {
		t.Errorf("advance past kanji = %+v", final)
	}
}

func TestProgress_Breakdown(t *testing.T) {
	g := testGate(t)
	st := progress.NewMemoryStore(1)
	learnAll(st, catalog.TypeKana, "hira-a", "hira-i", "kata-a")

	r := g.Progress("kana", st)
	if r.Current != 3 || r.Target != 4 {
		t.Errorf("progress = %d/%d, want 3/4", r.Current, r.Target)
	}
	if r.Breakdown["hiragana"] != 2 || r.Breakdown["katakana"] != 1 {
		t.Errorf("breakdown = %v", r.Breakdown)
	}

	know(st, catalog.TypeKanji, "one")
	r = g.Progress("kanji", st)
	if r.Current != 1 || r.Target != 2 || r.Percent != 50 {
		t.Errorf("kanji progress = %+v", r)
	}
}
