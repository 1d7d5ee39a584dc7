package catalog

import "fmt"

// ItemType identifies a learnable content type.
type ItemType string

const (
	TypeKana    ItemType = "kana"
	TypeKanji   ItemType = "kanji"
	TypeRadical ItemType = "radical"
	TypeVocab   ItemType = "vocab"
	TypeGrammar ItemType = "grammar"
)

// AllItemTypes returns all item types in display order.
func AllItemTypes() []ItemType {
	return []ItemType{TypeKana, TypeKanji, TypeRadical, TypeVocab, TypeGrammar}
}

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	switch t {
	case TypeKana, TypeKanji, TypeRadical, TypeVocab, TypeGrammar:
		return true
	}
	return false
}

// Key uniquely identifies a learnable item across all types.
type Key struct {
	Type ItemType
	ID   string
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.Type, k.ID)
}

// Track identifies one of the two kana sub-tracks.
type Track string

const (
	TrackHiragana Track = "hiragana"
	TrackKatakana Track = "katakana"
)

// AllTracks returns both kana tracks in display order.
func AllTracks() []Track {
	return []Track{TrackHiragana, TrackKatakana}
}

// Kana is a single syllabary character.
type Kana struct {
	ID     string
	Glyph  string
	Romaji string
	Track  Track
}

// Radical is a sub-character component of kanji. Priority radicals gate
// kanji learning; non-priority ones are informational only.
type Radical struct {
	ID       string
	Glyph    string
	Name     string
	Priority bool
}

// Kanji is an ideographic character. Radicals lists the component IDs it
// is built from. Priority kanji gate vocabulary learning.
type Kanji struct {
	ID            string
	Glyph         string
	Keyword       string
	Radicals      []string
	FrequencyRank int
	Priority      bool
}

// Vocab is a vocabulary word. Written is its surface form; the kanji it
// contains are derived by rune extraction against the kanji catalog.
type Vocab struct {
	ID            string
	Written       string
	Reading       string
	Meaning       string
	FrequencyRank int
}

// Grammar is a grammar pattern topic.
type Grammar struct {
	ID    string
	Title string
}

// Trigger maps a surface-form suffix on a newly introduced vocab item to a
// supplementary grammar topic.
type Trigger struct {
	Suffix    string
	GrammarID string
}

// Data is the raw, ordered reference-table input to New. Slice order is
// the declaration order used for curriculum sequencing.
type Data struct {
	Kana     []Kana
	Radicals []Radical
	Kanji    []Kanji
	Vocab    []Vocab
	Grammar  []Grammar
	Triggers []Trigger
}

// Catalog holds all static reference tables with precomputed indices.
// Immutable after New.
type Catalog struct {
	data Data

	kanaByID    map[string]*Kana
	radicalByID map[string]*Radical
	kanjiByID   map[string]*Kanji
	kanjiByRune map[rune]*Kanji
	vocabByID   map[string]*Vocab
	grammarByID map[string]*Grammar

	kanaByTrack map[Track][]Kana
}

// New builds a Catalog from raw data, validating structural integrity.
// Invalid reference data is a startup configuration error: New returns a
// combined error describing every problem found.
func New(data Data) (*Catalog, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	c := &Catalog{
		data:        data,
		kanaByID:    make(map[string]*Kana, len(data.Kana)),
		radicalByID: make(map[string]*Radical, len(data.Radicals)),
		kanjiByID:   make(map[string]*Kanji, len(data.Kanji)),
		kanjiByRune: make(map[rune]*Kanji, len(data.Kanji)),
		vocabByID:   make(map[string]*Vocab, len(data.Vocab)),
		grammarByID: make(map[string]*Grammar, len(data.Grammar)),
		kanaByTrack: make(map[Track][]Kana),
	}

	for i := range c.data.Kana {
		k := &c.data.Kana[i]
		c.kanaByID[k.ID] = k
		c.kanaByTrack[k.Track] = append(c.kanaByTrack[k.Track], *k)
	}
	for i := range c.data.Radicals {
		c.radicalByID[c.data.Radicals[i].ID] = &c.data.Radicals[i]
	}
	for i := range c.data.Kanji {
		k := &c.data.Kanji[i]
		c.kanjiByID[k.ID] = k
		for _, r := range k.Glyph {
			c.kanjiByRune[r] = k
			break
		}
	}
	for i := range c.data.Vocab {
		c.vocabByID[c.data.Vocab[i].ID] = &c.data.Vocab[i]
	}
	for i := range c.data.Grammar {
		c.grammarByID[c.data.Grammar[i].ID] = &c.data.Grammar[i]
	}

	return c, nil
}

// IDs returns the item IDs of the given type in declaration order.
func (c *Catalog) IDs(t ItemType) []string {
	var ids []string
	switch t {
	case TypeKana:
		for _, k := range c.data.Kana {
			ids = append(ids, k.ID)
		}
	case TypeRadical:
		for _, r := range c.data.Radicals {
			ids = append(ids, r.ID)
		}
	case TypeKanji:
		for _, k := range c.data.Kanji {
			ids = append(ids, k.ID)
		}
	case TypeVocab:
		for _, v := range c.data.Vocab {
			ids = append(ids, v.ID)
		}
	case TypeGrammar:
		for _, g := range c.data.Grammar {
			ids = append(ids, g.ID)
		}
	}
	return ids
}

// Has reports whether an item with the given key exists.
func (c *Catalog) Has(key Key) bool {
	switch key.Type {
	case TypeKana:
		_, ok := c.kanaByID[key.ID]
		return ok
	case TypeRadical:
		_, ok := c.radicalByID[key.ID]
		return ok
	case TypeKanji:
		_, ok := c.kanjiByID[key.ID]
		return ok
	case TypeVocab:
		_, ok := c.vocabByID[key.ID]
		return ok
	case TypeGrammar:
		_, ok := c.grammarByID[key.ID]
		return ok
	}
	return false
}

// Kanji returns the kanji with the given ID, or false if absent.
func (c *Catalog) Kanji(id string) (Kanji, bool) {
	k, ok := c.kanjiByID[id]
	if !ok {
		return Kanji{}, false
	}
	return *k, true
}

// KanjiByRune returns the kanji whose glyph is the given rune, or false
// if the rune is not a cataloged kanji.
func (c *Catalog) KanjiByRune(r rune) (Kanji, bool) {
	k, ok := c.kanjiByRune[r]
	if !ok {
		return Kanji{}, false
	}
	return *k, true
}

// Radical returns the radical with the given ID, or false if absent.
func (c *Catalog) Radical(id string) (Radical, bool) {
	r, ok := c.radicalByID[id]
	if !ok {
		return Radical{}, false
	}
	return *r, true
}

// Vocab returns the vocab entry with the given ID, or false if absent.
func (c *Catalog) Vocab(id string) (Vocab, bool) {
	v, ok := c.vocabByID[id]
	if !ok {
		return Vocab{}, false
	}
	return *v, true
}

// Grammar returns the grammar topic with the given ID, or false if absent.
func (c *Catalog) Grammar(id string) (Grammar, bool) {
	g, ok := c.grammarByID[id]
	if !ok {
		return Grammar{}, false
	}
	return *g, true
}

// KanaTrack returns the kana of one track in declaration order.
func (c *Catalog) KanaTrack(t Track) []Kana {
	out := make([]Kana, len(c.kanaByTrack[t]))
	copy(out, c.kanaByTrack[t])
	return out
}

// Triggers returns the pattern-trigger table in declaration order.
func (c *Catalog) Triggers() []Trigger {
	out := make([]Trigger, len(c.data.Triggers))
	copy(out, c.data.Triggers)
	return out
}

// FrequencyRank returns the static frequency rank for a key, or 0 if the
// item type carries no rank.
func (c *Catalog) FrequencyRank(key Key) int {
	switch key.Type {
	case TypeKanji:
		if k, ok := c.kanjiByID[key.ID]; ok {
			return k.FrequencyRank
		}
	case TypeVocab:
		if v, ok := c.vocabByID[key.ID]; ok {
			return v.FrequencyRank
		}
	}
	return 0
}
