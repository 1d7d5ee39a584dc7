package progress

import "time"

// Stack is an item's coarse progress state.
type Stack string

const (
	// StackUnlearned means the item has never been studied.
	StackUnlearned Stack = "unlearned"
	// StackLearning means the item is actively reviewed on a schedule.
	StackLearning Stack = "learning"
	// StackKnown means the item has graduated and is no longer scheduled.
	StackKnown Stack = "known"
)

// Scheduling defaults for an item that has never been seen.
const (
	DefaultInterval   = 1
	DefaultEaseFactor = 2.5

	// MinEaseFactor and MaxEaseFactor bound interval growth.
	MinEaseFactor = 1.3
	MaxEaseFactor = 3.0
)

// ItemProgress holds the per-item scheduling state. Items in the learning
// stack participate in due-set calculation; known items are excluded from
// all further scheduling.
type ItemProgress struct {
	Stack               Stack
	SuccessCount        int
	FailCount           int
	Interval            int
	EaseFactor          float64
	LastReview          *time.Time
	NextReview          *time.Time
	GraduationThreshold int
}

// Default returns the well-defined state for a never-seen item. Lookups for
// unknown items yield this instead of an error, so callers never branch on
// "not found".
func Default(graduationThreshold int) ItemProgress {
	return ItemProgress{
		Stack:               StackUnlearned,
		Interval:            DefaultInterval,
		EaseFactor:          DefaultEaseFactor,
		GraduationThreshold: graduationThreshold,
	}
}

// GraduationEligible reports whether the item has reached its success
// threshold. Promotion to known is always an explicit caller decision.
func (p ItemProgress) GraduationEligible() bool {
	return p.Stack == StackLearning && p.GraduationThreshold > 0 && p.SuccessCount >= p.GraduationThreshold
}
