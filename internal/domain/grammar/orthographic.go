package grammar

// OrthoRule is one orthographic spelling-change rule. When the infinitive
// matches InfinitiveSuffix and the ending's leading vowel is EndingVowel, the
// assembled stem's trailing From is replaced by To so pronunciation is
// preserved (buscar + e → busque, not *busce).
type OrthoRule struct {
	Name             string
	InfinitiveSuffix string
	EndingVowel      rune
	From             string
	To               string
}

// orthographicRules is an ordered set; the first rule whose trigger matches
// wins. The vowel condition keeps the rules dormant in the imperfect for
// -car/-gar/-zar (buscara needs no change) and in the present for -ger/-gir
// derivations that start with i.
var orthographicRules = []OrthoRule{
	{Name: "car→qu", InfinitiveSuffix: "car", EndingVowel: 'e', From: "c", To: "qu"},
	{Name: "gar→gu", InfinitiveSuffix: "gar", EndingVowel: 'e', From: "g", To: "gu"},
	{Name: "zar→c", InfinitiveSuffix: "zar", EndingVowel: 'e', From: "z", To: "c"},
	{Name: "guir→g", InfinitiveSuffix: "guir", EndingVowel: 'a', From: "gu", To: "g"},
	{Name: "ger→j", InfinitiveSuffix: "ger", EndingVowel: 'a', From: "g", To: "j"},
	{Name: "gir→j", InfinitiveSuffix: "gir", EndingVowel: 'a', From: "g", To: "j"},
}

// Apply rewrites the stem for the given ending. It reports whether the rule
// actually changed anything.
func (r OrthoRule) Apply(stem string) (string, bool) {
	if len(stem) < len(r.From) || stem[len(stem)-len(r.From):] != r.From {
		return stem, false
	}
	return stem[:len(stem)-len(r.From)] + r.To, true
}
