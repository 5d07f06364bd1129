// Package conjugation implements the subjunctive conjugation engine: deriving
// surface forms from the grammar rule tables, classifying verb irregularity,
// and validating learner answers with linguistically meaningful error types.
package conjugation

import (
	"fmt"
	"strings"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/domain/grammar"
)

// Engine conjugates verbs against the grammar rule tables. It is stateless
// and safe for concurrent use; every call recomputes its result.
type Engine struct {
	tables *grammar.Tables
}

// NewEngine creates a conjugation engine. A nil tables argument uses the
// shared default rule tables.
func NewEngine(tables *grammar.Tables) *Engine {
	if tables == nil {
		tables = grammar.Default()
	}
	return &Engine{tables: tables}
}

// Conjugate produces the subjunctive form for (verb, tense, person).
//
// Resolution order:
//  1. The irregular table for this specific tense. A verb irregular in one
//     tense but not another (querer: quisiera but quiera) falls through.
//  2. The stem-changing table, with the changed stem suppressed where the
//     pattern calls for it.
//  3. Regular derivation from the infinitive stem.
//
// Orthographic spelling-change rules apply to the assembled stem+ending in
// the derivation paths, and the perfect tenses are built from a conjugated
// form of haber plus the past participle.
//
// Malformed input fails with an error wrapping domain.ErrInvalidInput; all
// other computation is total, and verbs outside the known tables are treated
// as regular by design.
func (e *Engine) Conjugate(verb string, tense domain.Tense, person domain.Person) (*domain.ConjugationResult, error) {
	verb = strings.ToLower(strings.TrimSpace(verb))

	class, ok := grammar.ConjugationClass(verb)
	if verb == "" || !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidVerb, verb)
	}

	if !tense.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTense, tense)
	}

	if !person.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPerson, person)
	}

	if tense.IsPerfect() {
		return e.conjugatePerfect(verb, tense, person)
	}

	// Irregular for this specific tense wins outright.
	if form, ok := e.tables.IrregularForm(verb, tense, person); ok {
		return &domain.ConjugationResult{
			Conjugation: form,
			IsIrregular: true,
		}, nil
	}

	// Stem-changing derivation.
	if pattern, change, ok := e.tables.StemChange(verb); ok {
		stem := stemFor(verb, pattern, change, tense, person)
		form, rule := e.assemble(verb, stem, tense, change.Class, person)
		return &domain.ConjugationResult{
			Conjugation:        form,
			IsStemChanging:     true,
			StemChangePattern:  pattern,
			HasSpellingChange:  rule != "",
			SpellingChangeRule: rule,
		}, nil
	}

	// Regular derivation.
	form, rule := e.assemble(verb, grammar.Stem(verb), tense, class, person)
	return &domain.ConjugationResult{
		Conjugation:        form,
		HasSpellingChange:  rule != "",
		SpellingChangeRule: rule,
	}, nil
}

// FullTable conjugates the verb for all six persons. A per-person failure is
// recorded as a nil entry rather than aborting the whole table.
func (e *Engine) FullTable(verb string, tense domain.Tense) map[domain.Person]*domain.ConjugationResult {
	table := make(map[domain.Person]*domain.ConjugationResult, 6)
	for _, person := range domain.Persons() {
		result, err := e.Conjugate(verb, tense, person)
		if err != nil {
			table[person] = nil
			continue
		}
		table[person] = result
	}
	return table
}

// stemFor picks the stem a stem-changing verb uses for the tense and person.
//
// Present subjunctive: the changed stem, except nosotros/vosotros of -ar/-er
// verbs which revert to the infinitive stem; -ir verbs of the e→i pattern
// change in all six persons.
//
// Imperfect subjunctive: the change is suppressed entirely, except dormir and
// morir which carry a dedicated imperfect stem (durm-, mur-).
func stemFor(verb string, pattern domain.StemPattern, change grammar.StemChange, tense domain.Tense, person domain.Person) string {
	switch tense {
	case domain.TensePresent:
		plural := person == domain.PersonNosotros || person == domain.PersonVosotros
		if plural && !(change.Class == "ir" && pattern == domain.StemPatternEI) {
			return grammar.Stem(verb)
		}
		return change.Stem
	case domain.TenseImperfectRa, domain.TenseImperfectSe:
		if change.ImperfectStem != "" {
			return change.ImperfectStem
		}
		return grammar.Stem(verb)
	default:
		return grammar.Stem(verb)
	}
}

// assemble joins stem and regular ending, applying any orthographic rule the
// infinitive triggers for the ending's leading vowel. It returns the surface
// form and the name of the rule that fired, if any.
func (e *Engine) assemble(verb, stem string, tense domain.Tense, class string, person domain.Person) (string, string) {
	ending, ok := e.tables.RegularEnding(tense, class, person)
	if !ok {
		return "", ""
	}

	ruleName := ""
	if rule, ok := e.tables.OrthoRuleFor(verb, ending); ok {
		if changed, applied := rule.Apply(stem); applied {
			stem = changed
			ruleName = rule.Name
		}
	}

	return stem + ending, ruleName
}

// conjugatePerfect builds the compound tenses: a conjugated auxiliary from the
// haber irregular table plus the past participle.
func (e *Engine) conjugatePerfect(verb string, tense domain.Tense, person domain.Person) (*domain.ConjugationResult, error) {
	auxTense := domain.TensePresent
	if tense == domain.TensePluperfect {
		auxTense = domain.TenseImperfectRa
	}

	aux, ok := e.tables.IrregularForm("haber", auxTense, person)
	if !ok {
		return nil, fmt.Errorf("%w: no auxiliary form of haber for %s/%s", domain.ErrInvalidInput, auxTense, person)
	}

	participle := e.tables.PastParticiple(verb)

	return &domain.ConjugationResult{
		Conjugation: aux + " " + participle,
		IsIrregular: e.tables.HasIrregularParticiple(verb),
	}, nil
}
