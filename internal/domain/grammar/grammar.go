// Package grammar holds the static Spanish grammar rule tables: regular
// subjunctive endings, irregular verb conjugations, stem-changing patterns,
// orthographic spelling-change rules, past participles, and the WEIRDO
// trigger catalog.
//
// The tables are pure immutable data, constructed once and shared read-only
// by all other components. Nothing in this package performs I/O or mutation
// after construction, so a single instance is safe for arbitrarily many
// concurrent callers.
package grammar

import (
	"sort"
	"strings"
	"sync"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
)

// Tables bundles every rule table behind lookup methods. Use Default to get
// the shared instance.
type Tables struct {
	endings     map[domain.Tense]map[string]map[domain.Person]string
	indicative  map[string]map[domain.Person]string
	irregulars  map[string]map[domain.Tense]map[domain.Person]string
	stemChanges map[domain.StemPattern]map[string]StemChange
	participles map[string]string
	orthoRules  []OrthoRule
	weirdo      map[domain.TriggerCategory]Category
	regular     map[string][]string
	frequent    []string
}

var (
	defaultTables *Tables
	once          sync.Once
)

// Default returns the shared, lazily constructed rule tables.
func Default() *Tables {
	once.Do(func() {
		defaultTables = &Tables{
			endings:     regularEndings,
			indicative:  presentIndicativeEndings,
			irregulars:  irregularVerbs,
			stemChanges: stemChangingVerbs,
			participles: irregularParticiples,
			orthoRules:  orthographicRules,
			weirdo:      weirdoCatalog,
			regular:     commonRegularVerbs,
			frequent:    frequentIrregulars,
		}
	})
	return defaultTables
}

// ConjugationClass returns the infinitive's ending class ("ar", "er", or "ir"),
// or false if the verb does not end in one of them. "ir" is the one infinitive
// that is all ending and no stem; it classifies as "ir" with an empty stem.
func ConjugationClass(verb string) (string, bool) {
	if verb == "ir" {
		return "ir", true
	}
	if len(verb) < 3 {
		return "", false
	}
	switch suffix := verb[len(verb)-2:]; suffix {
	case "ar", "er", "ir":
		return suffix, true
	default:
		return "", false
	}
}

// Stem returns the infinitive minus its two-letter ending.
func Stem(verb string) string {
	if len(verb) < 2 {
		return verb
	}
	return verb[:len(verb)-2]
}

// RegularEnding looks up the regular subjunctive ending for a tense, ending
// class, and person. The perfect tenses have no simple-ending row; they are
// assembled from haber plus a participle.
func (t *Tables) RegularEnding(tense domain.Tense, class string, person domain.Person) (string, bool) {
	byClass, ok := t.endings[tense]
	if !ok {
		return "", false
	}
	byPerson, ok := byClass[class]
	if !ok {
		return "", false
	}
	ending, ok := byPerson[person]
	return ending, ok
}

// PresentIndicativeEnding returns the simplified present-indicative ending used
// for mood-confusion detection. Only the three singular persons are covered.
func (t *Tables) PresentIndicativeEnding(class string, person domain.Person) (string, bool) {
	byPerson, ok := t.indicative[class]
	if !ok {
		return "", false
	}
	ending, ok := byPerson[person]
	return ending, ok
}

// IrregularForm returns the full irregular surface form for a verb in a
// specific tense and person. A verb may be irregular in some tenses and not
// others; absence for the requested tense means the engine should fall back
// to stem-changing or regular derivation.
func (t *Tables) IrregularForm(verb string, tense domain.Tense, person domain.Person) (string, bool) {
	byTense, ok := t.irregulars[verb]
	if !ok {
		return "", false
	}
	byPerson, ok := byTense[tense]
	if !ok {
		return "", false
	}
	form, ok := byPerson[person]
	return form, ok
}

// IsIrregularInTense reports whether the verb has irregular forms for the tense.
func (t *Tables) IsIrregularInTense(verb string, tense domain.Tense) bool {
	byTense, ok := t.irregulars[verb]
	if !ok {
		return false
	}
	_, ok = byTense[tense]
	return ok
}

// IrregularTenses lists the tenses in which the verb has irregular forms, in
// canonical tense order.
func (t *Tables) IrregularTenses(verb string) []domain.Tense {
	byTense, ok := t.irregulars[verb]
	if !ok {
		return nil
	}
	var tenses []domain.Tense
	for _, tense := range domain.Tenses() {
		if _, ok := byTense[tense]; ok {
			tenses = append(tenses, tense)
		}
	}
	return tenses
}

// IrregularVerbs lists every verb in the irregular table, sorted.
func (t *Tables) IrregularVerbs() []string {
	verbs := make([]string, 0, len(t.irregulars))
	for verb := range t.irregulars {
		verbs = append(verbs, verb)
	}
	sort.Strings(verbs)
	return verbs
}

// FrequentIrregulars lists the high-frequency irregular verbs used by the
// intermediate difficulty tier.
func (t *Tables) FrequentIrregulars() []string {
	out := make([]string, len(t.frequent))
	copy(out, t.frequent)
	return out
}

// StemChange looks up the stem-changing entry for a verb, if any.
func (t *Tables) StemChange(verb string) (domain.StemPattern, StemChange, bool) {
	for _, pattern := range []domain.StemPattern{
		domain.StemPatternEIe, domain.StemPatternOUe, domain.StemPatternEI,
	} {
		if change, ok := t.stemChanges[pattern][verb]; ok {
			return pattern, change, true
		}
	}
	return "", StemChange{}, false
}

// StemChangingVerbs lists the verbs for one pattern, sorted.
func (t *Tables) StemChangingVerbs(pattern domain.StemPattern) []string {
	byVerb, ok := t.stemChanges[pattern]
	if !ok {
		return nil
	}
	verbs := make([]string, 0, len(byVerb))
	for verb := range byVerb {
		verbs = append(verbs, verb)
	}
	sort.Strings(verbs)
	return verbs
}

// StemPatterns lists the supported stem-changing patterns.
func (t *Tables) StemPatterns() []domain.StemPattern {
	return []domain.StemPattern{domain.StemPatternEIe, domain.StemPatternOUe, domain.StemPatternEI}
}

// HasIrregularParticiple reports whether the verb has an irregular past
// participle in the dictionary.
func (t *Tables) HasIrregularParticiple(verb string) bool {
	_, ok := t.participles[verb]
	return ok
}

// PastParticiple returns the participle for the verb: the irregular dictionary
// form when present, otherwise the regular stem + -ado/-ido derivation.
func (t *Tables) PastParticiple(verb string) string {
	if p, ok := t.participles[verb]; ok {
		return p
	}
	class, ok := ConjugationClass(verb)
	if !ok {
		return ""
	}
	if class == "ar" {
		return Stem(verb) + "ado"
	}
	return Stem(verb) + "ido"
}

// OrthoRuleFor returns the first orthographic rule triggered by the verb's
// infinitive and the ending's leading vowel, if any.
func (t *Tables) OrthoRuleFor(verb, ending string) (OrthoRule, bool) {
	if ending == "" {
		return OrthoRule{}, false
	}
	lead := leadingVowel(ending)
	for _, rule := range t.orthoRules {
		if strings.HasSuffix(verb, rule.InfinitiveSuffix) && lead == rule.EndingVowel {
			return rule, true
		}
	}
	return OrthoRule{}, false
}

// OrthoRulesFor lists the names of every orthographic rule that can apply to
// the verb across the subjunctive endings it will meet.
func (t *Tables) OrthoRulesFor(verb string) []string {
	var names []string
	for _, rule := range t.orthoRules {
		if strings.HasSuffix(verb, rule.InfinitiveSuffix) {
			names = append(names, rule.Name)
		}
	}
	return names
}

// Category returns the WEIRDO catalog entry for a trigger category.
func (t *Tables) Category(cat domain.TriggerCategory) (Category, bool) {
	entry, ok := t.weirdo[cat]
	return entry, ok
}

// CommonRegularVerbs lists the common regular verbs for an ending class. The
// first entries are deliberately the most frequent and simplest; the beginner
// tier draws only from the first six.
func (t *Tables) CommonRegularVerbs(class string) []string {
	verbs := t.regular[class]
	out := make([]string, len(verbs))
	copy(out, verbs)
	return out
}

// leadingVowel returns the first rune of the ending normalized to its plain
// vowel, so accented endings like "-éis" still trigger the e-rules.
func leadingVowel(ending string) rune {
	r := []rune(ending)[0]
	switch r {
	case 'á':
		return 'a'
	case 'é':
		return 'e'
	case 'í':
		return 'i'
	case 'ó':
		return 'o'
	case 'ú':
		return 'u'
	default:
		return r
	}
}
