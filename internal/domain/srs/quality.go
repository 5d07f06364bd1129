package srs

// Response-time thresholds (milliseconds) for quality derivation.
const (
	fastAnswerMs    = 3000
	mediumAnswerMs  = 7000
	slowAnswerMs    = 10000
	verySlowMs      = 15000
	feltEasyMax     = 2
	feltHardMin     = 4
)

// DeriveQuality maps an attempt outcome to an SM-2 quality score in [0,5].
//
// difficultyFelt is the learner's optional self-reported difficulty on a 1-5
// scale; pass 0 when not reported.
//
// Incorrect answers score 0-2 depending on how much the learner struggled;
// correct answers score 3-5, preferring the self-report when present and
// falling back to response time.
func DeriveQuality(correct bool, responseTimeMs int, difficultyFelt int) int {
	if !correct {
		switch {
		case difficultyFelt >= feltHardMin || responseTimeMs > verySlowMs:
			return 0
		case responseTimeMs > slowAnswerMs:
			return 1
		default:
			return 2
		}
	}

	if difficultyFelt > 0 {
		switch {
		case difficultyFelt <= feltEasyMax:
			return 5
		case difficultyFelt == 3:
			return 4
		default:
			return 3
		}
	}

	switch {
	case responseTimeMs < fastAnswerMs:
		return 5
	case responseTimeMs < mediumAnswerMs:
		return 4
	default:
		return 3
	}
}
