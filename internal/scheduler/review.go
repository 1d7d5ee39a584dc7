// Package scheduler implements the review scheduling core: the answer
// transition function and the due/new set calculators. Everything here is
// a pure function over an explicit state snapshot and an explicit now.
package scheduler

import (
	"math"
	"time"

	"github.com/abhisek/kotoba/internal/progress"
)

// Interval ladder for the first two successes; later intervals grow by
// the ease factor.
const (
	firstInterval  = 1
	secondInterval = 3
)

// Ease factor adjustment per answer.
const (
	easeReward  = 0.1
	easePenalty = 0.2
)

// failRollback is how many prior successes a wrong answer erases. This is
// a deliberate penalty, not a reset: an item at two or more successes keeps
// part of its history.
const failRollback = 2

// NextState computes the post-answer scheduling state for one item. It
// never mutates its input and is deterministic given (current, wasCorrect,
// now). Malformed numeric state is clamped rather than reported.
func NextState(current progress.ItemProgress, wasCorrect bool, now time.Time) progress.ItemProgress {
	next := current
	next.Interval = clampInterval(next.Interval)
	next.EaseFactor = clampEase(next.EaseFactor)

	if wasCorrect {
		next.SuccessCount++
		switch next.SuccessCount {
		case 1:
			next.Interval = firstInterval
		case 2:
			next.Interval = secondInterval
		default:
			next.Interval = clampInterval(int(math.Round(float64(next.Interval) * next.EaseFactor)))
		}
		next.EaseFactor = clampEase(next.EaseFactor + easeReward)
	} else {
		next.FailCount++
		next.SuccessCount -= failRollback
		if next.SuccessCount < 0 {
			next.SuccessCount = 0
		}
		next.Interval = firstInterval
		next.EaseFactor = clampEase(next.EaseFactor - easePenalty)
	}

	next.LastReview = timePtr(now)
	next.NextReview = timePtr(now.AddDate(0, 0, next.Interval))
	return next
}

// IsDue reports whether an item's scheduled review has arrived. An item
// with no next-review date is always due.
func IsDue(p progress.ItemProgress, now time.Time) bool {
	if p.NextReview == nil {
		return true
	}
	return !now.Before(*p.NextReview)
}

// OverdueDays returns how many days past due the item is. Items with no
// next-review date sort as infinitely overdue.
func OverdueDays(p progress.ItemProgress, now time.Time) float64 {
	if p.NextReview == nil {
		return math.Inf(1)
	}
	if now.Before(*p.NextReview) {
		return 0
	}
	return now.Sub(*p.NextReview).Hours() / 24.0
}

func clampInterval(days int) int {
	if days < 1 {
		return 1
	}
	return days
}

func clampEase(ef float64) float64 {
	if math.IsNaN(ef) || ef < progress.MinEaseFactor {
		return progress.MinEaseFactor
	}
	if ef > progress.MaxEaseFactor {
		return progress.MaxEaseFactor
	}
	return ef
}

func timePtr(t time.Time) *time.Time {
	return &t
}
