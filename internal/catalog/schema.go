package catalog

// catalogSchema is the JSON schema that external catalog files must satisfy
// before structural validation runs.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"kana": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":     map[string]any{"type": "string"},
					"glyph":  map[string]any{"type": "string"},
					"romaji": map[string]any{"type": "string"},
					"track":  map[string]any{"type": "string", "enum": []any{"hiragana", "katakana"}},
				},
				"required":             []any{"id", "glyph", "romaji", "track"},
				"additionalProperties": false,
			},
		},
		"radicals": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string"},
					"glyph":    map[string]any{"type": "string"},
					"name":     map[string]any{"type": "string"},
					"priority": map[string]any{"type": "boolean"},
				},
				"required":             []any{"id", "glyph", "name"},
				"additionalProperties": false,
			},
		},
		"kanji": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string"},
					"glyph":    map[string]any{"type": "string"},
					"keyword":  map[string]any{"type": "string"},
					"radicals": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"rank":     map[string]any{"type": "integer", "minimum": 0},
					"priority": map[string]any{"type": "boolean"},
				},
				"required":             []any{"id", "glyph", "keyword"},
				"additionalProperties": false,
			},
		},
		"vocab": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":      map[string]any{"type": "string"},
					"written": map[string]any{"type": "string"},
					"reading": map[string]any{"type": "string"},
					"meaning": map[string]any{"type": "string"},
					"rank":    map[string]any{"type": "integer", "minimum": 0},
				},
				"required":             []any{"id", "written", "reading", "meaning"},
				"additionalProperties": false,
			},
		},
		"grammar": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string"},
					"title": map[string]any{"type": "string"},
				},
				"required":             []any{"id", "title"},
				"additionalProperties": false,
			},
		},
		"triggers": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"suffix":  map[string]any{"type": "string"},
					"grammar": map[string]any{"type": "string"},
				},
				"required":             []any{"suffix", "grammar"},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
}
