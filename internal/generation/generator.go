// Package generation composes practice exercises from the grammar catalog:
// it picks verbs weighted by difficulty tier, pairs them with WEIRDO trigger
// templates, and attaches hints and multiple-choice distractors.
package generation

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/domain/conjugation"
	"github.com/lmoreno/subjuntivo-api/internal/domain/grammar"
)

// fallbackVerb stands in when a requested verb cannot be conjugated, so a
// generation call always yields a usable exercise.
const fallbackVerb = "hablar"

// Verb selection weights per difficulty tier.
const (
	intermediateRegularWeight = 0.40
	intermediateStemWeight    = 0.30

	advancedRegularWeight = 0.20
	advancedStemWeight    = 0.20
)

// beginnerPoolSize limits the beginner tier to the leading entries of each
// regular verb list.
const beginnerPoolSize = 6

// Params narrows what Generate produces. Zero values mean "generator's
// choice": an empty Verb is picked by difficulty weight, an empty Tense by
// tier, and an empty Category uniformly from the WEIRDO catalog.
type Params struct {
	Difficulty domain.Difficulty
	Type       domain.ExerciseType
	Category   domain.TriggerCategory
	Verb       string
	Tense      domain.Tense
}

// Generator builds exercises. It is safe for concurrent use only when the
// rand source is; callers that share one across goroutines should construct
// per-request generators instead.
type Generator struct {
	engine *conjugation.Engine
	tables *grammar.Tables
	rng    *rand.Rand
	logger *slog.Logger
}

// NewGenerator creates a generator. Nil arguments fall back to the default
// rule tables, a time-seeded rand source, and the default slog logger.
func NewGenerator(engine *conjugation.Engine, tables *grammar.Tables, rng *rand.Rand, logger *slog.Logger) *Generator {
	if tables == nil {
		tables = grammar.Default()
	}
	if engine == nil {
		engine = conjugation.NewEngine(tables)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		engine: engine,
		tables: tables,
		rng:    rng,
		logger: logger.With(slog.String("component", "exercise_generator")),
	}
}

// Generate builds one exercise from params.
func (g *Generator) Generate(params Params) (*domain.Exercise, error) {
	difficulty := params.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyBeginner
	}
	if !difficulty.IsValid() {
		return nil, fmt.Errorf("%w: difficulty %q", domain.ErrInvalidInput, params.Difficulty)
	}

	exerciseType := params.Type
	if exerciseType == "" {
		exerciseType = domain.ExerciseTypeFillInBlank
	}
	if exerciseType != domain.ExerciseTypeFillInBlank && exerciseType != domain.ExerciseTypeMultipleChoice {
		return nil, fmt.Errorf("%w: exercise type %q", domain.ErrInvalidInput, params.Type)
	}

	category := params.Category
	if category == "" {
		categories := domain.TriggerCategories()
		category = categories[g.rng.Intn(len(categories))]
	}
	entry, ok := g.tables.Category(category)
	if !ok {
		return nil, fmt.Errorf("%w: trigger category %q", domain.ErrInvalidInput, params.Category)
	}

	tense := params.Tense
	if tense == "" {
		tense = g.pickTense(difficulty)
	}
	if !tense.IsValid() {
		return nil, fmt.Errorf("%w: tense %q", domain.ErrInvalidTense, params.Tense)
	}

	verb := params.Verb
	if verb == "" {
		verb = g.pickVerb(difficulty)
	}

	template := entry.Templates[g.rng.Intn(len(entry.Templates))]
	trigger := entry.Triggers[g.rng.Intn(len(entry.Triggers))]

	result, err := g.engine.Conjugate(verb, tense, template.Person)
	if err != nil {
		g.logger.Warn("falling back to default verb",
			slog.String("verb", verb),
			slog.String("tense", string(tense)),
			slog.String("error", err.Error()))
		verb = fallbackVerb
		result, err = g.engine.Conjugate(verb, tense, template.Person)
		if err != nil {
			return nil, fmt.Errorf("conjugating fallback verb: %w", err)
		}
	}

	exercise := &domain.Exercise{
		ID:               uuid.New(),
		Type:             exerciseType,
		Verb:             verb,
		Tense:            tense,
		Person:           template.Person,
		TriggerPhrase:    trigger,
		TriggerCategory:  category,
		SentenceTemplate: template.Text,
		CorrectAnswer:    result.Conjugation,
		Difficulty:       difficulty,
		Context:          g.pickContext(category),
		Hints:            g.buildHints(verb, tense, template.Person, trigger, entry, result),
	}

	if exerciseType == domain.ExerciseTypeMultipleChoice {
		exercise.Distractors = g.buildDistractors(verb, tense, template.Person, result.Conjugation)
	}

	if err := exercise.Validate(); err != nil {
		return nil, fmt.Errorf("generated exercise failed validation: %w", err)
	}
	return exercise, nil
}

// GenerateSet builds count exercises for one difficulty tier, rotating through
// the given WEIRDO categories so a set covers the trigger spectrum. An empty
// categories slice means all six. Every third exercise is multiple choice.
func (g *Generator) GenerateSet(count int, difficulty domain.Difficulty, categories []domain.TriggerCategory) ([]*domain.Exercise, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: set size %d", domain.ErrInvalidInput, count)
	}

	if len(categories) == 0 {
		categories = domain.TriggerCategories()
	}
	for _, category := range categories {
		if !category.IsValid() {
			return nil, fmt.Errorf("%w: trigger category %q", domain.ErrInvalidInput, category)
		}
	}
	set := make([]*domain.Exercise, 0, count)
	for i := 0; i < count; i++ {
		exerciseType := domain.ExerciseTypeFillInBlank
		if (i+1)%3 == 0 {
			exerciseType = domain.ExerciseTypeMultipleChoice
		}

		exercise, err := g.Generate(Params{
			Difficulty: difficulty,
			Type:       exerciseType,
			Category:   categories[i%len(categories)],
		})
		if err != nil {
			return nil, fmt.Errorf("generating exercise %d of %d: %w", i+1, count, err)
		}
		set = append(set, exercise)
	}
	return set, nil
}

// pickTense selects a tense for the tier: beginners stay in the present,
// intermediates split between present and imperfect, advanced learners draw
// from all five tenses.
func (g *Generator) pickTense(difficulty domain.Difficulty) domain.Tense {
	switch difficulty {
	case domain.DifficultyBeginner:
		return domain.TensePresent
	case domain.DifficultyIntermediate:
		if g.rng.Intn(2) == 0 {
			return domain.TensePresent
		}
		return domain.TenseImperfectRa
	default:
		tenses := domain.Tenses()
		return tenses[g.rng.Intn(len(tenses))]
	}
}

// pickVerb selects a verb by tier weight. Beginners get only the leading
// regular verbs; intermediates mix in stem changers and the high-frequency
// irregulars; advanced learners lean on the full irregular table.
func (g *Generator) pickVerb(difficulty domain.Difficulty) string {
	switch difficulty {
	case domain.DifficultyBeginner:
		return g.pickRegular(beginnerPoolSize)
	case domain.DifficultyIntermediate:
		switch p := g.rng.Float64(); {
		case p < intermediateRegularWeight:
			return g.pickRegular(0)
		case p < intermediateRegularWeight+intermediateStemWeight:
			return g.pickStemChanger()
		default:
			frequent := g.tables.FrequentIrregulars()
			return frequent[g.rng.Intn(len(frequent))]
		}
	default:
		switch p := g.rng.Float64(); {
		case p < advancedRegularWeight:
			return g.pickRegular(0)
		case p < advancedRegularWeight+advancedStemWeight:
			return g.pickStemChanger()
		default:
			irregulars := g.tables.IrregularVerbs()
			return irregulars[g.rng.Intn(len(irregulars))]
		}
	}
}

// pickRegular draws a common regular verb, class chosen uniformly. A positive
// limit restricts the draw to the first entries of the class list.
func (g *Generator) pickRegular(limit int) string {
	classes := []string{"ar", "er", "ir"}
	verbs := g.tables.CommonRegularVerbs(classes[g.rng.Intn(len(classes))])
	if limit > 0 && limit < len(verbs) {
		verbs = verbs[:limit]
	}
	return verbs[g.rng.Intn(len(verbs))]
}

func (g *Generator) pickStemChanger() string {
	patterns := g.tables.StemPatterns()
	verbs := g.tables.StemChangingVerbs(patterns[g.rng.Intn(len(patterns))])
	return verbs[g.rng.Intn(len(verbs))]
}

func (g *Generator) pickContext(category domain.TriggerCategory) string {
	bucket := grammar.CategoryBucket[category]
	contexts := grammar.BucketContexts[bucket]
	if len(contexts) == 0 {
		return ""
	}
	return contexts[g.rng.Intn(len(contexts))]
}

// buildHints assembles learner-facing hints: why the trigger forces the
// subjunctive, what is special about the verb, and which person to conjugate.
func (g *Generator) buildHints(
	verb string,
	tense domain.Tense,
	person domain.Person,
	trigger string,
	entry grammar.Category,
	result *domain.ConjugationResult,
) []string {
	hints := []string{
		fmt.Sprintf("The trigger %q requires the subjunctive: %s", trigger, entry.Description),
	}

	switch {
	case result.IsIrregular:
		hints = append(hints, fmt.Sprintf("%q is irregular in this tense; its forms do not follow the regular endings.", verb))
	case result.IsStemChanging:
		hints = append(hints, fmt.Sprintf("%q is a stem-changing verb (%s); check whether the change applies to this person.", verb, result.StemChangePattern))
	}

	if result.HasSpellingChange {
		hints = append(hints, fmt.Sprintf("Watch the spelling: the %s rule changes the stem before this ending.", result.SpellingChangeRule))
	}

	hints = append(hints, fmt.Sprintf("Conjugate for %s in the %s.", person, tenseLabel(tense)))
	return hints
}

// buildDistractors collects up to three wrong forms: two forms of the same
// verb and tense in other persons, plus the present-indicative form when one
// exists, shuffled. The correct answer is never among them.
func (g *Generator) buildDistractors(verb string, tense domain.Tense, person domain.Person, correct string) []string {
	seen := map[string]bool{correct: true}
	var pool []string

	persons := domain.Persons()
	g.rng.Shuffle(len(persons), func(i, j int) { persons[i], persons[j] = persons[j], persons[i] })
	for _, other := range persons {
		if other == person || len(pool) >= 2 {
			continue
		}
		result, err := g.engine.Conjugate(verb, tense, other)
		if err != nil || seen[result.Conjugation] {
			continue
		}
		seen[result.Conjugation] = true
		pool = append(pool, result.Conjugation)
	}

	if indicative, ok := g.presentIndicative(verb, person); ok && !seen[indicative] {
		pool = append(pool, indicative)
	}

	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > 3 {
		pool = pool[:3]
	}
	return pool
}

// presentIndicative derives the simplified present-indicative form used as a
// mood distractor. Only the singular persons have indicative endings in the
// tables, and stemless "ir" is skipped because the derivation yields nothing
// resembling its real forms.
func (g *Generator) presentIndicative(verb string, person domain.Person) (string, bool) {
	class, ok := grammar.ConjugationClass(verb)
	if !ok || grammar.Stem(verb) == "" {
		return "", false
	}
	ending, ok := g.tables.PresentIndicativeEnding(class, person)
	if !ok {
		return "", false
	}
	return grammar.Stem(verb) + ending, true
}

// tenseLabel renders a tense identifier as learner-facing prose.
func tenseLabel(tense domain.Tense) string {
	switch tense {
	case domain.TensePresent:
		return "present subjunctive"
	case domain.TenseImperfectRa:
		return "imperfect subjunctive (-ra)"
	case domain.TenseImperfectSe:
		return "imperfect subjunctive (-se)"
	case domain.TensePresentPerfect:
		return "present perfect subjunctive"
	case domain.TensePluperfect:
		return "pluperfect subjunctive"
	default:
		return string(tense)
	}
}
