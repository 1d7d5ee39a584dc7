package catalog

// Seed returns the built-in starter catalog: the full basic kana syllabary
// plus a small kanji/radical/vocab/grammar set. Full datasets are loaded
// from JSON via Load; the seed keeps the engine usable out of the box.
func Seed() *Catalog {
	c, err := New(seedData())
	if err != nil {
		// Built-in data is compile-time fixed; failing here is a programmer error.
		panic(err)
	}
	return c
}

var kanaRomaji = []string{
	"a", "i", "u", "e", "o",
	"ka", "ki", "ku", "ke", "ko",
	"sa", "shi", "su", "se", "so",
	"ta", "chi", "tsu", "te", "to",
	"na", "ni", "nu", "ne", "no",
	"ha", "hi", "fu", "he", "ho",
	"ma", "mi", "mu", "me", "mo",
	"ya", "yu", "yo",
	"ra", "ri", "ru", "re", "ro",
	"wa", "wo", "n",
}

const (
	hiraganaGlyphs = "あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほまみむめもやゆよらりるれろわをん"
	katakanaGlyphs = "アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヲン"
)

func seedKana() []Kana {
	var kana []Kana
	for i, glyph := range []rune(hiraganaGlyphs) {
		kana = append(kana, Kana{
			ID:     "hira-" + kanaRomaji[i],
			Glyph:  string(glyph),
			Romaji: kanaRomaji[i],
			Track:  TrackHiragana,
		})
	}
	for i, glyph := range []rune(katakanaGlyphs) {
		kana = append(kana, Kana{
			ID:     "kata-" + kanaRomaji[i],
			Glyph:  string(glyph),
			Romaji: kanaRomaji[i],
			Track:  TrackKatakana,
		})
	}
	return kana
}

func seedData() Data {
	return Data{
		Kana: seedKana(),
		Radicals: []Radical{
			{ID: "one", Glyph: "一", Name: "one", Priority: true},
			{ID: "person", Glyph: "人", Name: "person", Priority: true},
			{ID: "mouth", Glyph: "口", Name: "mouth", Priority: true},
			{ID: "sun", Glyph: "日", Name: "sun", Priority: true},
			{ID: "moon", Glyph: "月", Name: "moon", Priority: true},
			{ID: "tree", Glyph: "木", Name: "tree", Priority: true},
			{ID: "woman", Glyph: "女", Name: "woman", Priority: true},
			{ID: "child", Glyph: "子", Name: "child", Priority: true},
			{ID: "say", Glyph: "言", Name: "say", Priority: true},
			{ID: "gate", Glyph: "門", Name: "gate", Priority: false},
			{ID: "water", Glyph: "水", Name: "water", Priority: true},
			{ID: "fire", Glyph: "火", Name: "fire", Priority: true},
		},
		Kanji: []Kanji{
			{ID: "one", Glyph: "一", Keyword: "one", Radicals: []string{"one"}, FrequencyRank: 2, Priority: true},
			{ID: "person", Glyph: "人", Keyword: "person", Radicals: []string{"person"}, FrequencyRank: 1, Priority: true},
			{ID: "day", Glyph: "日", Keyword: "day", Radicals: []string{"sun"}, FrequencyRank: 3, Priority: true},
			{ID: "month", Glyph: "月", Keyword: "month", Radicals: []string{"moon"}, FrequencyRank: 23, Priority: true},
			{ID: "tree", Glyph: "木", Keyword: "tree", Radicals: []string{"tree"}, FrequencyRank: 317, Priority: true},
			{ID: "book", Glyph: "本", Keyword: "book", Radicals: []string{"tree", "one"}, FrequencyRank: 10, Priority: true},
			{ID: "rest", Glyph: "休", Keyword: "rest", Radicals: []string{"person", "tree"}, FrequencyRank: 642, Priority: false},
			{ID: "grove", Glyph: "林", Keyword: "grove", Radicals: []string{"tree"}, FrequencyRank: 854, Priority: false},
			{ID: "forest", Glyph: "森", Keyword: "forest", Radicals: []string{"tree"}, FrequencyRank: 1000, Priority: false},
			{ID: "bright", Glyph: "明", Keyword: "bright", Radicals: []string{"sun", "moon"}, FrequencyRank: 67, Priority: true},
			{ID: "like", Glyph: "好", Keyword: "like", Radicals: []string{"woman", "child"}, FrequencyRank: 423, Priority: false},
			{ID: "language", Glyph: "語", Keyword: "language", Radicals: []string{"say", "mouth"}, FrequencyRank: 301, Priority: true},
			{ID: "interval", Glyph: "間", Keyword: "interval", Radicals: []string{"gate", "sun"}, FrequencyRank: 33, Priority: true},
			{ID: "mouth", Glyph: "口", Keyword: "mouth", Radicals: []string{"mouth"}, FrequencyRank: 284, Priority: true},
			{ID: "water", Glyph: "水", Keyword: "water", Radicals: []string{"water"}, FrequencyRank: 223, Priority: true},
			{ID: "fire", Glyph: "火", Keyword: "fire", Radicals: []string{"fire"}, FrequencyRank: 574, Priority: false},
			{ID: "mountain", Glyph: "山", Keyword: "mountain", Radicals: []string{"one"}, FrequencyRank: 131, Priority: true},
			{ID: "speak", Glyph: "話", Keyword: "speak", Radicals: []string{"say", "mouth"}, FrequencyRank: 133, Priority: true},
			{ID: "eat", Glyph: "食", Keyword: "eat", Radicals: []string{"person"}, FrequencyRank: 328, Priority: true},
			{ID: "study", Glyph: "学", Keyword: "study", Radicals: []string{"child"}, FrequencyRank: 63, Priority: true},
			{ID: "life", Glyph: "生", Keyword: "life", Radicals: []string{"one"}, FrequencyRank: 29, Priority: true},
		},
		Vocab: []Vocab{
			{ID: "nihon", Written: "日本", Reading: "にほん", Meaning: "Japan", FrequencyRank: 10},
			{ID: "nihongo", Written: "日本語", Reading: "にほんご", Meaning: "Japanese language", FrequencyRank: 120},
			{ID: "hito", Written: "人", Reading: "ひと", Meaning: "person", FrequencyRank: 8},
			{ID: "gakusei", Written: "学生", Reading: "がくせい", Meaning: "student", FrequencyRank: 390},
			{ID: "yama", Written: "山", Reading: "やま", Meaning: "mountain", FrequencyRank: 680},
			{ID: "mizu", Written: "水", Reading: "みず", Meaning: "water", FrequencyRank: 520},
			{ID: "kazan", Written: "火山", Reading: "かざん", Meaning: "volcano", FrequencyRank: 3100},
			{ID: "hon", Written: "本", Reading: "ほん", Meaning: "book", FrequencyRank: 200},
			{ID: "tabemasu", Written: "食べます", Reading: "たべます", Meaning: "to eat (polite)", FrequencyRank: 410},
			{ID: "hanashimasu", Written: "話します", Reading: "はなします", Meaning: "to speak (polite)", FrequencyRank: 450},
			{ID: "tabetai", Written: "食べたい", Reading: "たべたい", Meaning: "want to eat", FrequencyRank: 1900},
			{ID: "tabenai", Written: "食べない", Reading: "たべない", Meaning: "not eat (plain)", FrequencyRank: 1700},
		},
		Grammar: []Grammar{
			{ID: "intro-writing-systems", Title: "The three writing systems"},
			{ID: "intro-pronunciation", Title: "Pronunciation and mora"},
			{ID: "intro-word-order", Title: "Basic word order"},
			{ID: "polite-form", Title: "The polite 〜ます form"},
			{ID: "desire-form", Title: "Expressing desire with 〜たい"},
			{ID: "negative-plain", Title: "Plain negative 〜ない"},
		},
		Triggers: []Trigger{
			{Suffix: "ます", GrammarID: "polite-form"},
			{Suffix: "たい", GrammarID: "desire-form"},
			{Suffix: "ない", GrammarID: "negative-plain"},
		},
	}
}
