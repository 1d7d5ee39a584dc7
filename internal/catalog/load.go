package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// fileData mirrors Data with JSON tags for external catalog files.
type fileData struct {
	Kana []struct {
		ID     string `json:"id"`
		Glyph  string `json:"glyph"`
		Romaji string `json:"romaji"`
		Track  string `json:"track"`
	} `json:"kana"`
	Radicals []struct {
		ID       string `json:"id"`
		Glyph    string `json:"glyph"`
		Name     string `json:"name"`
		Priority bool   `json:"priority"`
	} `json:"radicals"`
	Kanji []struct {
		ID       string   `json:"id"`
		Glyph    string   `json:"glyph"`
		Keyword  string   `json:"keyword"`
		Radicals []string `json:"radicals"`
		Rank     int      `json:"rank"`
		Priority bool     `json:"priority"`
	} `json:"kanji"`
	Vocab []struct {
		ID      string `json:"id"`
		Written string `json:"written"`
		Reading string `json:"reading"`
		Meaning string `json:"meaning"`
		Rank    int    `json:"rank"`
	} `json:"vocab"`
	Grammar []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"grammar"`
	Triggers []struct {
		Suffix  string `json:"suffix"`
		Grammar string `json:"grammar"`
	} `json:"triggers"`
}

// Load reads a catalog from a JSON file. The file is validated against the
// catalog JSON schema before parsing, and the resulting data goes through
// the same structural validation as New. Any problem fails fast.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

// Parse builds a catalog from raw JSON bytes. See Load.
func Parse(raw []byte) (*Catalog, error) {
	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}

	var fd fileData
	if err := json.Unmarshal(raw, &fd); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	data := Data{}
	for _, k := range fd.Kana {
		data.Kana = append(data.Kana, Kana{ID: k.ID, Glyph: k.Glyph, Romaji: k.Romaji, Track: Track(k.Track)})
	}
	for _, r := range fd.Radicals {
		data.Radicals = append(data.Radicals, Radical{ID: r.ID, Glyph: r.Glyph, Name: r.Name, Priority: r.Priority})
	}
	for _, k := range fd.Kanji {
		data.Kanji = append(data.Kanji, Kanji{
			ID: k.ID, Glyph: k.Glyph, Keyword: k.Keyword,
			Radicals: k.Radicals, FrequencyRank: k.Rank, Priority: k.Priority,
		})
	}
	for _, v := range fd.Vocab {
		data.Vocab = append(data.Vocab, Vocab{
			ID: v.ID, Written: v.Written, Reading: v.Reading,
			Meaning: v.Meaning, FrequencyRank: v.Rank,
		})
	}
	for _, g := range fd.Grammar {
		data.Grammar = append(data.Grammar, Grammar{ID: g.ID, Title: g.Title})
	}
	for _, t := range fd.Triggers {
		data.Triggers = append(data.Triggers, Trigger{Suffix: t.Suffix, GrammarID: t.Grammar})
	}

	return New(data)
}

func validateSchema(raw []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	defBytes, err := json.Marshal(catalogSchema)
	if err != nil {
		return fmt.Errorf("marshal schema definition: %w", err)
	}
	defParsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
	if err != nil {
		return fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://catalog.json", defParsed); err != nil {
		return fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile("schema://catalog.json")
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
