package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
)

// The tier must not move until the window is full: nine fast correct answers
// leave it unchanged, the tenth promotes exactly one tier.
func TestAdaptivePromotionBoundary(t *testing.T) {
	t.Parallel()
	manager := NewAdaptiveDifficultyManager(domain.DifficultyBeginner, DefaultWindowSize)

	for i := 0; i < 9; i++ {
		tier := manager.Record(true, 2000)
		assert.Equal(t, domain.DifficultyBeginner, tier, "tier moved before window filled (attempt %d)", i+1)
	}

	tier := manager.Record(true, 2000)
	assert.Equal(t, domain.DifficultyIntermediate, tier, "tenth attempt should promote exactly one tier")
}

func TestAdaptivePromotionCapsAtAdvanced(t *testing.T) {
	t.Parallel()
	manager := NewAdaptiveDifficultyManager(domain.DifficultyAdvanced, DefaultWindowSize)

	for i := 0; i < 20; i++ {
		manager.Record(true, 1000)
	}
	assert.Equal(t, domain.DifficultyAdvanced, manager.Tier())
}

func TestAdaptiveDemotion(t *testing.T) {
	t.Parallel()
	manager := NewAdaptiveDifficultyManager(domain.DifficultyAdvanced, DefaultWindowSize)

	// 5/10 correct is below the 0.60 demotion threshold.
	for i := 0; i < 5; i++ {
		manager.Record(true, 4000)
	}
	for i := 0; i < 5; i++ {
		manager.Record(false, 4000)
	}
	assert.Equal(t, domain.DifficultyIntermediate, manager.Tier())
}

func TestAdaptiveDemotionFloorsAtBeginner(t *testing.T) {
	t.Parallel()
	manager := NewAdaptiveDifficultyManager(domain.DifficultyBeginner, DefaultWindowSize)

	for i := 0; i < 20; i++ {
		manager.Record(false, 8000)
	}
	assert.Equal(t, domain.DifficultyBeginner, manager.Tier())
}

func TestAdaptiveMiddleGroundHoldsTier(t *testing.T) {
	t.Parallel()
	manager := NewAdaptiveDifficultyManager(domain.DifficultyIntermediate, DefaultWindowSize)

	// 7/10 correct with moderate speed: neither promotion nor demotion.
	for i := 0; i < 7; i++ {
		manager.Record(true, 6000)
	}
	for i := 0; i < 3; i++ {
		manager.Record(false, 6000)
	}
	assert.Equal(t, domain.DifficultyIntermediate, manager.Tier())
}

func TestAdaptiveSlowAnswersBlockPromotion(t *testing.T) {
	t.Parallel()
	manager := NewAdaptiveDifficultyManager(domain.DifficultyBeginner, DefaultWindowSize)

	// Perfect accuracy but too slow on average.
	for i := 0; i < 10; i++ {
		manager.Record(true, 9000)
	}
	assert.Equal(t, domain.DifficultyBeginner, manager.Tier())
}

func TestAdaptiveWindowSlides(t *testing.T) {
	t.Parallel()
	manager := NewAdaptiveDifficultyManager(domain.DifficultyIntermediate, DefaultWindowSize)

	// Fill the window with failures: demoted to beginner.
	for i := 0; i < 10; i++ {
		manager.Record(false, 4000)
	}
	assert.Equal(t, domain.DifficultyBeginner, manager.Tier())

	// Fast correct answers slide the failures out. At 8/10 correct accuracy
	// is still below the promotion bar; the ninth pushes it to 0.9 and
	// promotes, the tenth promotes again.
	for i := 0; i < 8; i++ {
		manager.Record(true, 2000)
	}
	assert.Equal(t, domain.DifficultyBeginner, manager.Tier())

	manager.Record(true, 2000)
	assert.Equal(t, domain.DifficultyIntermediate, manager.Tier())

	manager.Record(true, 2000)
	assert.Equal(t, domain.DifficultyAdvanced, manager.Tier())
}
