package stage

import "github.com/abhisek/kotoba/internal/catalog"

// DefaultStages returns the standard curriculum sequence: kana first,
// then kanji toward a graduation milestone, then open vocabulary study.
// The vocab stage may partially unlock once 50 kanji are in progress or
// known, ahead of the kanji milestone itself.
func DefaultStages() []Definition {
	return []Definition{
		{
			ID:       "kana",
			Title:    "Kana foundations",
			Order:    1,
			ItemType: catalog.TypeKana,
			IntroContent: []catalog.Key{
				{Type: catalog.TypeGrammar, ID: "intro-writing-systems"},
				{Type: catalog.TypeGrammar, ID: "intro-pronunciation"},
				{Type: catalog.TypeGrammar, ID: "intro-word-order"},
			},
		},
		{
			ID:           "kanji",
			Title:        "Kanji through components",
			Order:        2,
			Prerequisite: "kana",
			ItemType:     catalog.TypeKanji,
			Milestone:    300,
		},
		{
			ID:           "vocab",
			Title:        "Vocabulary and grammar",
			Order:        3,
			Prerequisite: "kanji",
			ParallelWith: "kanji",
			UnlockAt:     50,
			ItemType:     catalog.TypeVocab,
			Milestone:    1000,
		},
	}
}
