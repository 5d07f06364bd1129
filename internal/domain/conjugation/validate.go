package conjugation

import (
	"fmt"
	"strings"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/domain/grammar"
)

// ValidateAnswer compares a learner's free-text answer to the correct
// conjugation and, when wrong, classifies the error. Classification is
// applied in a fixed priority order; the first match wins:
//
//	mood_confusion → wrong_person → wrong_tense → spelling_error →
//	stem_change_error → spelling_change_error → wrong_ending
//
// If the correct answer itself cannot be computed, the method returns a
// degraded result with error_type "validation_error" instead of propagating
// the failure; answer submission never hard-fails at this boundary.
func (e *Engine) ValidateAnswer(verb string, tense domain.Tense, person domain.Person, userAnswer string) *domain.ValidationResult {
	result := &domain.ValidationResult{
		UserAnswer: userAnswer,
		Verb:       strings.ToLower(strings.TrimSpace(verb)),
		Tense:      tense,
		Person:     person,
	}

	correct, err := e.Conjugate(verb, tense, person)
	if err != nil {
		result.ErrorType = domain.ErrorTypeValidationInternal
		result.Suggestions = []string{
			"The answer could not be checked for this verb. Try another exercise.",
		}
		return result
	}

	result.CorrectAnswer = correct.Conjugation

	normalized := strings.ToLower(strings.TrimSpace(userAnswer))
	if normalized == strings.ToLower(correct.Conjugation) {
		result.IsCorrect = true
		return result
	}

	errType, suggestions := e.classifyError(result.Verb, tense, person, normalized, correct)
	result.ErrorType = errType
	result.Suggestions = suggestions
	return result
}

// classifyError determines why an incorrect answer is wrong.
func (e *Engine) classifyError(
	verb string,
	tense domain.Tense,
	person domain.Person,
	answer string,
	correct *domain.ConjugationResult,
) (domain.ErrorType, []string) {
	// (a) mood confusion: the answer is the present-indicative form.
	if indicative, ok := e.presentIndicativeForm(verb, person); ok && answer == indicative {
		return domain.ErrorTypeMoodConfusion, []string{
			fmt.Sprintf("%q is the present indicative. This sentence needs the subjunctive mood: %q.", answer, correct.Conjugation),
			"Look for the trigger phrase before the clause; it forces the subjunctive.",
		}
	}

	// (b) wrong person: correct form for a different person, same tense.
	for _, other := range domain.Persons() {
		if other == person {
			continue
		}
		otherResult, err := e.Conjugate(verb, tense, other)
		if err != nil {
			continue
		}
		if answer == strings.ToLower(otherResult.Conjugation) {
			return domain.ErrorTypeWrongPerson, []string{
				fmt.Sprintf("%q is the correct form for %s, but this sentence is about %s.", answer, other, person),
			}
		}
	}

	// (c) wrong tense: correct form for the same person in a different
	// subjunctive tense.
	for _, other := range domain.Tenses() {
		if other == tense {
			continue
		}
		otherResult, err := e.Conjugate(verb, other, person)
		if err != nil {
			continue
		}
		if answer == strings.ToLower(otherResult.Conjugation) {
			return domain.ErrorTypeWrongTense, []string{
				fmt.Sprintf("%q is the %s form; this sentence needs the %s.", answer, other, tense),
			}
		}
	}

	// (d) spelling error: close match to the correct answer.
	if closeMatch(answer, strings.ToLower(correct.Conjugation)) {
		return domain.ErrorTypeSpellingError, []string{
			fmt.Sprintf("You're close. Check the spelling: the correct form is %q.", correct.Conjugation),
		}
	}

	// (e) stem change missed.
	if correct.IsStemChanging {
		return domain.ErrorTypeStemChangeError, []string{
			fmt.Sprintf("%q is a stem-changing verb (%s). The stem mutates in this form: %q.", verb, correct.StemChangePattern, correct.Conjugation),
		}
	}

	// (f) orthographic spelling change missed.
	if correct.HasSpellingChange {
		return domain.ErrorTypeSpellingChangeErr, []string{
			fmt.Sprintf("This verb takes a spelling change (%s) to preserve its pronunciation: %q.", correct.SpellingChangeRule, correct.Conjugation),
		}
	}

	// (g) fallback: generic ending problem.
	class, _ := grammar.ConjugationClass(verb)
	return domain.ErrorTypeWrongEnding, []string{
		fmt.Sprintf("Check the %s endings for -%s verbs.", tense, class),
	}
}

// presentIndicativeForm derives the simplified present-indicative form used
// for mood-confusion detection. Only the singular persons are covered.
func (e *Engine) presentIndicativeForm(verb string, person domain.Person) (string, bool) {
	class, ok := grammar.ConjugationClass(verb)
	if !ok {
		return "", false
	}
	ending, ok := e.tables.PresentIndicativeEnding(class, person)
	if !ok {
		return "", false
	}
	return grammar.Stem(verb) + ending, true
}

// closeMatch implements the deliberately simplified edit-distance heuristic:
// equal length with at most two differing positions, or a length difference
// of at most two. This is not true Levenshtein distance; the boundary is part
// of the classification contract and must not be "upgraded".
func closeMatch(a, b string) bool {
	ra, rb := []rune(a), []rune(b)

	if len(ra) == len(rb) {
		diffs := 0
		for i := range ra {
			if ra[i] != rb[i] {
				diffs++
			}
		}
		return diffs <= 2
	}

	diff := len(ra) - len(rb)
	if diff < 0 {
		diff = -diff
	}
	return diff <= 2
}
