// Package feedback turns validation results into learner-facing feedback:
// severity-classified error analyses, recurring-pattern detection over a
// session's error history, and full feedback messages with suggestions and
// next steps.
package feedback

import (
	"fmt"
	"sort"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
)

// Severity grades how much an error matters for learning priority.
type Severity string

// Severity grades.
const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// DefaultMinFrequency is the number of same-type errors before DetectPatterns
// reports a pattern.
const DefaultMinFrequency = 3

// highPriorityFrequency is the error count at which a detected pattern is
// flagged high priority.
const highPriorityFrequency = 5

// ExerciseContext carries the exercise surroundings of an answer, when known,
// so explanations can name the trigger that forced the subjunctive.
type ExerciseContext struct {
	TriggerPhrase   string
	TriggerCategory domain.TriggerCategory
	Explanation     string
}

// Analysis is the analyzer's verdict on one wrong answer.
type Analysis struct {
	ErrorType   domain.ErrorType `json:"error_type"`
	Severity    Severity         `json:"severity"`
	Explanation string           `json:"explanation"`
	Suggestions []string         `json:"suggestions"`
	Frequency   int              `json:"frequency"`
}

// ErrorPattern is a recurring error type detected across a session's history.
type ErrorPattern struct {
	ErrorType  domain.ErrorType `json:"error_type"`
	Frequency  int              `json:"frequency"`
	Verbs      []string         `json:"verbs"`
	Persons    []domain.Person  `json:"persons"`
	Priority   Severity         `json:"priority"`
	Suggestion string           `json:"suggestion"`
}

// ErrorAnalyzer accumulates one learner session's wrong answers and reports
// per-error analyses and recurring patterns. It is not safe for concurrent
// use; callers hold one analyzer per session.
type ErrorAnalyzer struct {
	history []*domain.ValidationResult
	counts  map[domain.ErrorType]int
}

// NewErrorAnalyzer creates an empty analyzer.
func NewErrorAnalyzer() *ErrorAnalyzer {
	return &ErrorAnalyzer{
		counts: make(map[domain.ErrorType]int),
	}
}

// AnalyzeError classifies one wrong answer and records it in the session
// history. Correct answers are not recorded and yield a nil analysis.
func (a *ErrorAnalyzer) AnalyzeError(result *domain.ValidationResult, ctx *ExerciseContext) *Analysis {
	if result == nil || result.IsCorrect {
		return nil
	}

	a.history = append(a.history, result)
	a.counts[result.ErrorType]++

	return &Analysis{
		ErrorType:   result.ErrorType,
		Severity:    severityFor(result.ErrorType),
		Explanation: explainError(result, ctx),
		Suggestions: suggestionsFor(result.ErrorType),
		Frequency:   a.counts[result.ErrorType],
	}
}

// ErrorCount returns how many errors of the given type the session holds.
func (a *ErrorAnalyzer) ErrorCount(errorType domain.ErrorType) int {
	return a.counts[errorType]
}

// DetectPatterns groups the session's errors by type and reports every type
// occurring at least minFrequency times, most frequent first. A minFrequency
// <= 0 uses DefaultMinFrequency.
func (a *ErrorAnalyzer) DetectPatterns(minFrequency int) []ErrorPattern {
	if minFrequency <= 0 {
		minFrequency = DefaultMinFrequency
	}

	var patterns []ErrorPattern
	for errorType, count := range a.counts {
		if count < minFrequency {
			continue
		}

		verbs := make(map[string]int)
		persons := make(map[domain.Person]int)
		for _, result := range a.history {
			if result.ErrorType != errorType {
				continue
			}
			verbs[result.Verb]++
			persons[result.Person]++
		}

		patterns = append(patterns, ErrorPattern{
			ErrorType: errorType,
			Frequency: count,
			Verbs:     sortedKeys(verbs),
			Persons:   sortedPersonKeys(persons),
			Priority:  patternPriority(count),
			Suggestion: patternSuggestion(errorType,
				mostFrequentKey(verbs), mostFrequentPersonKey(persons)),
		})
	}

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Frequency != patterns[j].Frequency {
			return patterns[i].Frequency > patterns[j].Frequency
		}
		return patterns[i].ErrorType < patterns[j].ErrorType
	})
	return patterns
}

func patternPriority(frequency int) Severity {
	if frequency >= highPriorityFrequency {
		return SeverityHigh
	}
	return SeverityMedium
}

// severityFor is the fixed error-type severity table.
func severityFor(errorType domain.ErrorType) Severity {
	switch errorType {
	case domain.ErrorTypeMoodConfusion, domain.ErrorTypeStemChangeError:
		return SeverityHigh
	case domain.ErrorTypeWrongPerson, domain.ErrorTypeWrongTense, domain.ErrorTypeSpellingChangeErr:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// explainError renders the canned explanation template for the error type,
// parameterized with the answer's verb, person, and trigger when known.
func explainError(result *domain.ValidationResult, ctx *ExerciseContext) string {
	trigger := ""
	if ctx != nil && ctx.TriggerPhrase != "" {
		trigger = ctx.TriggerPhrase
	}

	switch result.ErrorType {
	case domain.ErrorTypeMoodConfusion:
		if trigger != "" {
			return fmt.Sprintf("You used the indicative, but %q requires the subjunctive mood: %q, not %q.",
				trigger, result.CorrectAnswer, result.UserAnswer)
		}
		return fmt.Sprintf("You used the indicative where the subjunctive is required: %q, not %q.",
			result.CorrectAnswer, result.UserAnswer)
	case domain.ErrorTypeWrongPerson:
		return fmt.Sprintf("You conjugated %q for a different grammatical person; this sentence needs the %s form %q.",
			result.Verb, result.Person, result.CorrectAnswer)
	case domain.ErrorTypeWrongTense:
		return fmt.Sprintf("Your form of %q belongs to a different subjunctive tense; here you need %q.",
			result.Verb, result.CorrectAnswer)
	case domain.ErrorTypeSpellingError:
		return fmt.Sprintf("Very close: check the spelling of %q.", result.CorrectAnswer)
	case domain.ErrorTypeStemChangeError:
		return fmt.Sprintf("%q is a stem-changing verb; the stem changes in this form: %q.",
			result.Verb, result.CorrectAnswer)
	case domain.ErrorTypeSpellingChangeErr:
		return fmt.Sprintf("%q needs an orthographic spelling change before this ending: %q.",
			result.Verb, result.CorrectAnswer)
	case domain.ErrorTypeWrongEnding:
		return fmt.Sprintf("The ending does not match: the %s form of %q is %q.",
			result.Person, result.Verb, result.CorrectAnswer)
	case domain.ErrorTypeValidationInternal:
		return "The answer could not be checked against a reference form; review the verb and try again."
	default:
		return fmt.Sprintf("The expected form is %q.", result.CorrectAnswer)
	}
}

// suggestionsFor is the canned per-error-type study suggestion table.
func suggestionsFor(errorType domain.ErrorType) []string {
	switch errorType {
	case domain.ErrorTypeMoodConfusion:
		return []string{
			"Review the WEIRDO trigger phrases that require the subjunctive.",
			"Practice spotting the 'que' clause that switches the mood.",
		}
	case domain.ErrorTypeWrongPerson:
		return []string{
			"Identify the subject of the subordinate clause before conjugating.",
			"Drill one verb across all six persons to internalize the endings.",
		}
	case domain.ErrorTypeWrongTense:
		return []string{
			"Match the subjunctive tense to the tense of the main clause.",
			"Contrast present and imperfect subjunctive forms of the same verb.",
		}
	case domain.ErrorTypeSpellingError:
		return []string{
			"Mind the accents; they distinguish forms like 'habléis'.",
			"Write the form out slowly before submitting.",
		}
	case domain.ErrorTypeStemChangeError:
		return []string{
			"Review the e→ie, o→ue, and e→i stem-changing patterns.",
			"Note which persons keep the infinitive stem in the present subjunctive.",
		}
	case domain.ErrorTypeSpellingChangeErr:
		return []string{
			"Review the -car, -gar, and -zar orthographic changes before 'e'.",
			"Say the form aloud; the spelling change preserves the sound.",
		}
	case domain.ErrorTypeWrongEnding:
		return []string{
			"Remember the vowel swap: -ar verbs take -e endings, -er/-ir verbs take -a endings.",
		}
	default:
		return []string{"Review the subjunctive conjugation tables for this verb."}
	}
}

// patternSuggestion phrases a recurring-pattern study suggestion, naming the
// most-affected verb and person.
func patternSuggestion(errorType domain.ErrorType, verb string, person domain.Person) string {
	focus := ""
	if verb != "" {
		focus = fmt.Sprintf(" Focus on %q", verb)
		if person != "" {
			focus += fmt.Sprintf(" in the %s form", person)
		}
		focus += "."
	}

	switch errorType {
	case domain.ErrorTypeMoodConfusion:
		return "You keep reaching for the indicative; drill the WEIRDO triggers until the subjunctive is automatic." + focus
	case domain.ErrorTypeWrongPerson:
		return "Person agreement keeps slipping; practice full six-person conjugation tables." + focus
	case domain.ErrorTypeWrongTense:
		return "Tense selection is the recurring problem; study when each subjunctive tense applies." + focus
	case domain.ErrorTypeStemChangeError:
		return "Stem changes keep tripping you up; review the three vowel-change patterns." + focus
	case domain.ErrorTypeSpellingChangeErr:
		return "The orthographic spelling changes need attention; review the -car/-gar/-zar rules." + focus
	default:
		return "This error keeps recurring; targeted review of the affected forms will help." + focus
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedPersonKeys(m map[domain.Person]int) []domain.Person {
	keys := make([]domain.Person, 0, len(m))
	for _, p := range domain.Persons() {
		if _, ok := m[p]; ok {
			keys = append(keys, p)
		}
	}
	return keys
}

// mostFrequentKey breaks count ties lexicographically so reports are stable.
func mostFrequentKey(m map[string]int) string {
	best, bestCount := "", 0
	for _, k := range sortedKeys(m) {
		if m[k] > bestCount {
			best, bestCount = k, m[k]
		}
	}
	return best
}

func mostFrequentPersonKey(m map[domain.Person]int) domain.Person {
	var best domain.Person
	bestCount := 0
	for _, p := range sortedPersonKeys(m) {
		if m[p] > bestCount {
			best, bestCount = p, m[p]
		}
	}
	return best
}
