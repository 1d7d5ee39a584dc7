package session

// Settings is the user-editable configuration consumed by the composer.
// Values originate from config surfaces outside the core, so out-of-range
// numbers are clamped rather than rejected.
type Settings struct {
	// DailyNewItemQuota caps how many items are introduced per session.
	DailyNewItemQuota int

	// MaxDailyReviews caps review entries per session. 0 means unlimited.
	MaxDailyReviews int

	// GraduationThreshold is the success count at which an item becomes a
	// graduation candidate.
	GraduationThreshold int

	// SoftDependencies makes prerequisite checks advisory: missing
	// constituents are reported but never block learning.
	SoftDependencies bool

	// QuizDirection is display-only and ignored by the engine.
	QuizDirection string
}

// Review-to-new mix for mixed-stage sessions (70:30).
const (
	reviewWeight = 7
	newWeight    = 3
)

// introContentCap bounds introductory entries per foundational session.
const introContentCap = 5

// DefaultSettings returns sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		DailyNewItemQuota:   10,
		MaxDailyReviews:     0,
		GraduationThreshold: 5,
		SoftDependencies:    true,
		QuizDirection:       "prompt-to-meaning",
	}
}

// Clamped returns a copy with out-of-range numeric values pulled into
// range. Bad settings must never crash a running session.
func (s Settings) Clamped() Settings {
	out := s
	if out.DailyNewItemQuota < 0 {
		out.DailyNewItemQuota = 0
	}
	if out.MaxDailyReviews < 0 {
		out.MaxDailyReviews = 0
	}
	if out.GraduationThreshold < 1 {
		out.GraduationThreshold = 1
	}
	return out
}

// reviewTarget is the review slot count for a mixed session: the new-item
// quota scaled by the review:new ratio, rounded up. Review and new slots
// fill independently; a review shortfall is never topped up with extra
// new items.
func (s Settings) reviewTarget() int {
	return (s.DailyNewItemQuota*reviewWeight + newWeight - 1) / newWeight
}
