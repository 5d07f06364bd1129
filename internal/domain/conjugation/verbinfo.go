package conjugation

import (
	"fmt"
	"strings"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/domain/grammar"
)

// VerbInfo reports the verb's classification: its class, irregular tenses,
// stem-change pattern, and applicable spelling-change rules. The exercise and
// feedback generators use it to phrase explanations.
func (e *Engine) VerbInfo(verb string) (*domain.VerbInfo, error) {
	verb = strings.ToLower(strings.TrimSpace(verb))

	class, ok := grammar.ConjugationClass(verb)
	if verb == "" || !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidVerb, verb)
	}

	info := &domain.VerbInfo{
		Verb:                verb,
		SpellingChangeRules: e.tables.OrthoRulesFor(verb),
	}

	if tenses := e.tables.IrregularTenses(verb); len(tenses) > 0 {
		info.IsIrregular = true
		info.IrregularTenses = tenses
	}

	if pattern, _, ok := e.tables.StemChange(verb); ok {
		info.IsStemChanging = true
		info.StemChangePattern = pattern
	}

	// Irregularity dominates classification, then stem changes, then the
	// regular class from the infinitive's ending.
	switch {
	case info.IsIrregular:
		info.Class = domain.VerbClassIrregular
	case info.IsStemChanging:
		info.Class = domain.VerbClassStemChanging
	default:
		info.Class = domain.VerbClass("regular-" + class)
	}

	return info, nil
}
