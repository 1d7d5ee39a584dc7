package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// validate performs all structural checks on the raw reference data.
// Returns a combined error describing all problems found, or nil if valid.
func validate(data Data) error {
	var errs []string

	kanaIDs := make(map[string]bool, len(data.Kana))
	radicalIDs := make(map[string]bool, len(data.Radicals))
	kanjiIDs := make(map[string]bool, len(data.Kanji))
	vocabIDs := make(map[string]bool, len(data.Vocab))
	grammarIDs := make(map[string]bool, len(data.Grammar))

	checkID := func(kind, id string, seen map[string]bool) {
		if id == "" {
			errs = append(errs, fmt.Sprintf("%s entry with empty ID", kind))
			return
		}
		if seen[id] {
			errs = append(errs, fmt.Sprintf("duplicate %s ID: %q", kind, id))
		}
		seen[id] = true
	}

	trackSeen := make(map[Track]bool)
	for _, k := range data.Kana {
		checkID("kana", k.ID, kanaIDs)
		if k.Track != TrackHiragana && k.Track != TrackKatakana {
			errs = append(errs, fmt.Sprintf("kana %q has unknown track %q", k.ID, k.Track))
		}
		trackSeen[k.Track] = true
	}
	if len(data.Kana) > 0 {
		for _, t := range AllTracks() {
			if !trackSeen[t] {
				errs = append(errs, fmt.Sprintf("kana track %q has no characters", t))
			}
		}
	}

	for _, r := range data.Radicals {
		checkID("radical", r.ID, radicalIDs)
	}

	for _, k := range data.Kanji {
		checkID("kanji", k.ID, kanjiIDs)
		if utf8.RuneCountInString(k.Glyph) != 1 {
			errs = append(errs, fmt.Sprintf("kanji %q glyph must be a single rune, got %q", k.ID, k.Glyph))
		}
		for _, radID := range k.Radicals {
			if !radicalIDs[radID] {
				errs = append(errs, fmt.Sprintf("kanji %q references nonexistent radical %q", k.ID, radID))
			}
		}
	}

	for _, v := range data.Vocab {
		checkID("vocab", v.ID, vocabIDs)
		if v.Written == "" {
			errs = append(errs, fmt.Sprintf("vocab %q has empty written form", v.ID))
		}
	}

	for _, g := range data.Grammar {
		checkID("grammar", g.ID, grammarIDs)
	}

	triggerSeen := make(map[string]bool, len(data.Triggers))
	for _, t := range data.Triggers {
		if t.Suffix == "" {
			errs = append(errs, "trigger with empty suffix")
		}
		if triggerSeen[t.Suffix] {
			errs = append(errs, fmt.Sprintf("duplicate trigger suffix %q", t.Suffix))
		}
		triggerSeen[t.Suffix] = true
		if !grammarIDs[t.GrammarID] {
			errs = append(errs, fmt.Sprintf("trigger %q references nonexistent grammar topic %q", t.Suffix, t.GrammarID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
