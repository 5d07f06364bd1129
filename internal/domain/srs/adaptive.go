package srs

import "github.com/lmoreno/subjuntivo-api/internal/domain"

// Adaptive difficulty thresholds.
const (
	// DefaultWindowSize is the number of recent attempts considered when
	// re-evaluating a learner's tier.
	DefaultWindowSize = 10

	promoteAccuracy  = 0.85
	promoteAvgTimeMs = 5000
	demoteAccuracy   = 0.60
)

// attemptSample is one attempt outcome inside the sliding window.
type attemptSample struct {
	correct        bool
	responseTimeMs int
}

// AdaptiveDifficultyManager adjusts a learner's difficulty tier from a
// sliding window of recent attempt outcomes. The tier is re-evaluated after
// every new result once the window is full; the window slides, it is never
// reset. At most one tier step happens per evaluation.
type AdaptiveDifficultyManager struct {
	window []attemptSample
	size   int
	tier   domain.Difficulty
}

// NewAdaptiveDifficultyManager creates a manager starting at the given tier.
// A windowSize <= 0 uses DefaultWindowSize; an invalid tier starts at
// beginner.
func NewAdaptiveDifficultyManager(tier domain.Difficulty, windowSize int) *AdaptiveDifficultyManager {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	if !tier.IsValid() {
		tier = domain.DifficultyBeginner
	}
	return &AdaptiveDifficultyManager{
		size: windowSize,
		tier: tier,
	}
}

// Tier returns the learner's current difficulty tier.
func (m *AdaptiveDifficultyManager) Tier() domain.Difficulty {
	return m.tier
}

// Record adds one attempt outcome and returns the (possibly adjusted) tier.
// Promotion requires accuracy >= 0.85 with an average response under 5s over
// a full window; accuracy < 0.60 demotes. Promotions cap at advanced and
// demotions floor at beginner.
func (m *AdaptiveDifficultyManager) Record(correct bool, responseTimeMs int) domain.Difficulty {
	m.window = append(m.window, attemptSample{correct: correct, responseTimeMs: responseTimeMs})
	if len(m.window) > m.size {
		m.window = m.window[len(m.window)-m.size:]
	}

	if len(m.window) < m.size {
		return m.tier
	}

	correctCount := 0
	totalTime := 0
	for _, sample := range m.window {
		if sample.correct {
			correctCount++
		}
		totalTime += sample.responseTimeMs
	}

	accuracy := float64(correctCount) / float64(len(m.window))
	avgTime := float64(totalTime) / float64(len(m.window))

	switch {
	case accuracy >= promoteAccuracy && avgTime < promoteAvgTimeMs:
		m.tier = promote(m.tier)
	case accuracy < demoteAccuracy:
		m.tier = demote(m.tier)
	}

	return m.tier
}

func promote(tier domain.Difficulty) domain.Difficulty {
	switch tier {
	case domain.DifficultyBeginner:
		return domain.DifficultyIntermediate
	case domain.DifficultyIntermediate:
		return domain.DifficultyAdvanced
	default:
		return domain.DifficultyAdvanced
	}
}

func demote(tier domain.Difficulty) domain.Difficulty {
	switch tier {
	case domain.DifficultyAdvanced:
		return domain.DifficultyIntermediate
	case domain.DifficultyIntermediate:
		return domain.DifficultyBeginner
	default:
		return domain.DifficultyBeginner
	}
}
