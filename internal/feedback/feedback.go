package feedback

import (
	"fmt"
	"hash/fnv"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/domain/conjugation"
)

// Feedback is the full learner-facing response to one submitted answer.
type Feedback struct {
	IsCorrect     bool             `json:"is_correct"`
	Message       string           `json:"message"`
	Explanation   string           `json:"explanation"`
	Encouragement string           `json:"encouragement"`
	Suggestions   []string         `json:"suggestions,omitempty"`
	NextSteps     []string         `json:"next_steps"`
	RelatedRules  []string         `json:"related_rules,omitempty"`
	ErrorType     domain.ErrorType `json:"error_type,omitempty"`
	Severity      Severity         `json:"severity,omitempty"`
}

// praiseMessages are the canned congratulations for a correct answer. The
// pick is a deterministic hash of the correct form, so the same answer earns
// the same message within a run.
var praiseMessages = []string{
	"¡Excelente! That's exactly right.",
	"¡Perfecto! You nailed it.",
	"¡Muy bien! Correct.",
	"¡Fantástico! Spot on.",
	"¡Genial! That's the one.",
	"¡Bravo! Well done.",
	"¡Así es! Exactly right.",
}

// correctNextSteps are the generic follow-ups after a correct answer.
var correctNextSteps = []string{
	"Try the same verb in a different person.",
	"Practice this trigger category with a new verb.",
	"Move on to the next exercise while the pattern is fresh.",
}

// Generator produces feedback from validation results, delegating error
// bookkeeping to an ErrorAnalyzer and verb facts to the conjugation engine.
type Generator struct {
	analyzer *ErrorAnalyzer
	engine   *conjugation.Engine
}

// NewGenerator creates a feedback generator. A nil analyzer gets a fresh
// session analyzer; a nil engine uses the default rule tables.
func NewGenerator(analyzer *ErrorAnalyzer, engine *conjugation.Engine) *Generator {
	if analyzer == nil {
		analyzer = NewErrorAnalyzer()
	}
	if engine == nil {
		engine = conjugation.NewEngine(nil)
	}
	return &Generator{analyzer: analyzer, engine: engine}
}

// Analyzer exposes the session analyzer for pattern reports.
func (g *Generator) Analyzer() *ErrorAnalyzer {
	return g.analyzer
}

// Generate builds feedback for a validation result. It never fails for a
// well-formed result; a missing exercise context just yields generic,
// non-trigger-specific phrasing.
func (g *Generator) Generate(result *domain.ValidationResult, ctx *ExerciseContext, userLevel domain.Difficulty) *Feedback {
	if result == nil {
		return &Feedback{
			Message:     "No answer to review.",
			Explanation: "Submit an answer to get feedback.",
			NextSteps:   correctNextSteps,
		}
	}

	if result.IsCorrect {
		return g.correctFeedback(result, ctx)
	}
	return g.incorrectFeedback(result, ctx, userLevel)
}

func (g *Generator) correctFeedback(result *domain.ValidationResult, ctx *ExerciseContext) *Feedback {
	return &Feedback{
		IsCorrect:     true,
		Message:       praiseFor(result.CorrectAnswer),
		Explanation:   g.masteryExplanation(result),
		Encouragement: "Keep it up; consistency is what builds fluency.",
		NextSteps:     correctNextSteps,
		RelatedRules:  g.relatedRules(result, ctx),
	}
}

func (g *Generator) incorrectFeedback(result *domain.ValidationResult, ctx *ExerciseContext, userLevel domain.Difficulty) *Feedback {
	analysis := g.analyzer.AnalyzeError(result, ctx)

	feedback := &Feedback{
		Message:       fmt.Sprintf("Not quite. The correct answer is %q.", result.CorrectAnswer),
		Explanation:   analysis.Explanation,
		Encouragement: encouragementFor(userLevel),
		Suggestions:   dedupe(append(append([]string{}, analysis.Suggestions...), result.Suggestions...)),
		NextSteps:     nextStepsFor(result.ErrorType),
		RelatedRules:  g.relatedRules(result, ctx),
		ErrorType:     analysis.ErrorType,
		Severity:      analysis.Severity,
	}
	return feedback
}

// masteryExplanation names the specific pattern a correct answer exercised,
// branching on the verb's classification.
func (g *Generator) masteryExplanation(result *domain.ValidationResult) string {
	info, err := g.engine.VerbInfo(result.Verb)
	if err != nil {
		return fmt.Sprintf("%q is the right subjunctive form here.", result.CorrectAnswer)
	}

	switch {
	case info.IsIrregular:
		return fmt.Sprintf("You produced the irregular form of %q correctly; irregular verbs are the hardest part of the subjunctive.", result.Verb)
	case info.IsStemChanging:
		return fmt.Sprintf("You handled the %s stem change in %q correctly.", info.StemChangePattern, result.Verb)
	case len(info.SpellingChangeRules) > 0:
		return fmt.Sprintf("You applied the %s spelling change in %q correctly.", info.SpellingChangeRules[0], result.Verb)
	default:
		return fmt.Sprintf("You conjugated the regular verb %q correctly; the endings are becoming automatic.", result.Verb)
	}
}

// relatedRules lists the grammar facts that bear on this answer: the trigger
// that forced the subjunctive plus the verb's classification facts.
func (g *Generator) relatedRules(result *domain.ValidationResult, ctx *ExerciseContext) []string {
	var rules []string
	if ctx != nil && ctx.TriggerPhrase != "" {
		rules = append(rules, fmt.Sprintf("%q (%s) triggers the subjunctive.", ctx.TriggerPhrase, ctx.TriggerCategory))
	}

	info, err := g.engine.VerbInfo(result.Verb)
	if err != nil {
		return rules
	}
	if info.IsIrregular {
		rules = append(rules, fmt.Sprintf("%q has irregular subjunctive forms.", result.Verb))
	}
	if info.IsStemChanging {
		rules = append(rules, fmt.Sprintf("%q follows the %s stem-changing pattern.", result.Verb, info.StemChangePattern))
	}
	for _, rule := range info.SpellingChangeRules {
		rules = append(rules, fmt.Sprintf("%q takes the %s spelling change before certain endings.", result.Verb, rule))
	}
	return rules
}

// nextStepsFor is the canned three-item follow-up list per error type.
func nextStepsFor(errorType domain.ErrorType) []string {
	switch errorType {
	case domain.ErrorTypeMoodConfusion:
		return []string{
			"Reread the WEIRDO categories and their trigger phrases.",
			"Do five exercises focused on mood selection.",
			"Translate three sentences choosing between indicative and subjunctive.",
		}
	case domain.ErrorTypeWrongPerson:
		return []string{
			"Write out the full six-person table for this verb.",
			"Underline the subject of each subordinate clause before answering.",
			"Retry this exercise with a different person.",
		}
	case domain.ErrorTypeWrongTense:
		return []string{
			"Review when the imperfect subjunctive replaces the present.",
			"Conjugate this verb in both subjunctive tenses side by side.",
			"Do three exercises in the tense you missed.",
		}
	case domain.ErrorTypeStemChangeError:
		return []string{
			"List the stem-changing verbs you know under each pattern.",
			"Conjugate this verb across all persons, marking where the stem changes.",
			"Retry the exercise paying attention to the stem vowel.",
		}
	case domain.ErrorTypeSpellingChangeErr:
		return []string{
			"Review the -car, -gar, and -zar rules.",
			"Conjugate two more verbs with the same ending pattern.",
			"Retry the exercise focusing on the consonant before the ending.",
		}
	default:
		return []string{
			"Compare your answer letter by letter with the correct form.",
			"Conjugate this verb once more from the infinitive.",
			"Retry the exercise before moving on.",
		}
	}
}

// encouragementFor keeps the tone level-appropriate.
func encouragementFor(level domain.Difficulty) string {
	switch level {
	case domain.DifficultyBeginner:
		return "Errors are part of learning; every attempt builds the pattern."
	case domain.DifficultyAdvanced:
		return "At your level these are fine details; precision comes with volume."
	default:
		return "You're close; this is exactly the kind of mistake practice fixes."
	}
}

// praiseFor picks a praise message by FNV-1a hash of the correct form.
func praiseFor(answer string) string {
	h := fnv.New32a()
	h.Write([]byte(answer))
	return praiseMessages[h.Sum32()%uint32(len(praiseMessages))]
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
