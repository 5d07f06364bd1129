// Package srs implements the spaced-repetition scheduler: the SM-2 algorithm
// over ReviewCards, quality-score derivation from attempt outcomes, and the
// adaptive difficulty manager.
package srs

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
)

// Common errors
var (
	ErrNilCard = errors.New("review card cannot be nil")
)

// SM-2 constants. These are the exact, unmodified SuperMemo-2 values; the
// numeric behavior of Review is a hard contract and must not drift.
const (
	efBase          = 0.1
	efPenaltyLinear = 0.08
	efPenaltySquare = 0.02
	firstInterval   = 1
	secondInterval  = 6
	passingQuality  = 3
)

// Review applies one SM-2 review with quality q in [0,5] to the card and
// returns a new card; the input card is not modified.
//
//	EF' = EF + (0.1 - (5-q) * (0.08 + (5-q)*0.02)), floored at 1.3
//	q < 3: repetitions reset to 0, interval resets to 1
//	q >= 3: interval ladder 1, 6, then round(interval * EF')
//
// The quality score also drives the lifetime correct counter: q >= 3 counts
// as a correct recall.
func Review(card *domain.ReviewCard, quality int, now time.Time) (*domain.ReviewCard, error) {
	if card == nil {
		return nil, ErrNilCard
	}

	if quality < 0 || quality > 5 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidQuality, quality)
	}

	updated := *card

	q := float64(quality)
	ef := card.EaseFactor + (efBase - (5-q)*(efPenaltyLinear+(5-q)*efPenaltySquare))
	if ef < domain.MinEaseFactor {
		ef = domain.MinEaseFactor
	}
	updated.EaseFactor = ef

	if quality < passingQuality {
		updated.Repetitions = 0
		updated.IntervalDays = firstInterval
	} else {
		updated.Repetitions = card.Repetitions + 1
		switch updated.Repetitions {
		case 1:
			updated.IntervalDays = firstInterval
		case 2:
			updated.IntervalDays = secondInterval
		default:
			updated.IntervalDays = int(math.Round(float64(card.IntervalDays) * ef))
		}
		updated.CorrectReviews = card.CorrectReviews + 1
	}

	updated.TotalReviews = card.TotalReviews + 1
	updated.LastReviewedAt = now
	updated.NextReviewAt = now.AddDate(0, 0, updated.IntervalDays)
	updated.UpdatedAt = now

	return &updated, nil
}
