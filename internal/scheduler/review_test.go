package scheduler

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/abhisek/kotoba/internal/progress"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNextState_CorrectProgression(t *testing.T) {
	// Fresh item: three correct answers yield intervals 1, 3, 8 and ease
	// 2.6, 2.7, 2.8.
	p := progress.Default(5)
	p.Stack = progress.StackLearning

	wantIntervals := []int{1, 3, 8}
	wantEase := []float64{2.6, 2.7, 2.8}

	now := testNow
	for i := range wantIntervals {
		p = NextState(p, true, now)
		if p.Interval != wantIntervals[i] {
			t.Errorf("answer %d: interval = %d, want %d", i+1, p.Interval, wantIntervals[i])
		}
		if math.Abs(p.EaseFactor-wantEase[i]) > 1e-9 {
			t.Errorf("answer %d: ease = %v, want %v", i+1, p.EaseFactor, wantEase[i])
		}
		if p.SuccessCount != i+1 {
			t.Errorf("answer %d: successCount = %d, want %d", i+1, p.SuccessCount, i+1)
		}
		wantNext := now.AddDate(0, 0, p.Interval)
		if p.NextReview == nil || !p.NextReview.Equal(wantNext) {
			t.Errorf("answer %d: nextReview = %v, want %v", i+1, p.NextReview, wantNext)
		}
		now = wantNext
	}
}

func TestNextState_IncorrectPenalty(t *testing.T) {
	p := progress.Default(5)
	p.Stack = progress.StackLearning
	p.SuccessCount = 3
	p.EaseFactor = 2.5
	p.Interval = 10

	p = NextState(p, false, testNow)

	if p.SuccessCount != 1 {
		t.Errorf("successCount = %d, want 1 (wrong answer erases two successes)", p.SuccessCount)
	}
	if math.Abs(p.EaseFactor-2.3) > 1e-9 {
		t.Errorf("ease = %v, want 2.3", p.EaseFactor)
	}
	if p.Interval != 1 {
		t.Errorf("interval = %d, want 1", p.Interval)
	}
	if p.FailCount != 1 {
		t.Errorf("failCount = %d, want 1", p.FailCount)
	}
}

func TestNextState_SuccessCountFloor(t *testing.T) {
	for _, start := range []int{0, 1} {
		p := progress.Default(5)
		p.Stack = progress.StackLearning
		p.SuccessCount = start

		p = NextState(p, false, testNow)
		if p.SuccessCount != 0 {
			t.Errorf("start=%d: successCount = %d, want exactly 0", start, p.SuccessCount)
		}
	}
}

func TestNextState_EaseBoundsHoldForAnySequence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	p := progress.Default(5)
	p.Stack = progress.StackLearning

	now := testNow
	for i := 0; i < 500; i++ {
		p = NextState(p, rng.Intn(2) == 0, now)
		if p.EaseFactor < progress.MinEaseFactor || p.EaseFactor > progress.MaxEaseFactor {
			t.Fatalf("step %d: ease %v outside [%v, %v]", i, p.EaseFactor, progress.MinEaseFactor, progress.MaxEaseFactor)
		}
		if p.SuccessCount < 0 {
			t.Fatalf("step %d: negative successCount %d", i, p.SuccessCount)
		}
		if p.Interval < 1 {
			t.Fatalf("step %d: non-positive interval %d", i, p.Interval)
		}
		now = now.AddDate(0, 0, 1)
	}
}

func TestNextState_Deterministic(t *testing.T) {
	p := progress.Default(5)
	p.Stack = progress.StackLearning
	p.SuccessCount = 4
	p.Interval = 7
	p.EaseFactor = 2.1

	a := NextState(p, true, testNow)
	b := NextState(p, true, testNow)
	if a.Interval != b.Interval || a.EaseFactor != b.EaseFactor || a.SuccessCount != b.SuccessCount {
		t.Errorf("identical inputs produced different outputs: %+v vs %+v", a, b)
	}
	if p.SuccessCount != 4 {
		t.Errorf("input was mutated: %+v", p)
	}
}

func TestNextState_ClampsMalformedInput(t *testing.T) {
	p := progress.Default(5)
	p.Stack = progress.StackLearning
	p.SuccessCount = 5
	p.Interval = -10
	p.EaseFactor = math.NaN()

	p = NextState(p, true, testNow)
	if p.Interval < 1 {
		t.Errorf("interval = %d, want >= 1", p.Interval)
	}
	if p.EaseFactor < progress.MinEaseFactor || p.EaseFactor > progress.MaxEaseFactor {
		t.Errorf("ease = %v, want clamped into range", p.EaseFactor)
	}
}

func TestIsDue(t *testing.T) {
	p := progress.Default(5)
	p.Stack = progress.StackLearning

	if !IsDue(p, testNow) {
		t.Error("item with no nextReview should be due")
	}

	future := testNow.AddDate(0, 0, 3)
	p.NextReview = &future
	if IsDue(p, testNow) {
		t.Error("item scheduled in the future should not be due")
	}
	if !IsDue(p, future) {
		t.Error("item should be due exactly at its review date")
	}
	if !IsDue(p, future.Add(time.Hour)) {
		t.Error("item should be due past its review date")
	}
}

func TestOverdueDays(t *testing.T) {
	p := progress.Default(5)
	if !math.IsInf(OverdueDays(p, testNow), 1) {
		t.Error("item with no nextReview should be infinitely overdue")
	}

	due := testNow.AddDate(0, 0, -2)
	p.NextReview = &due
	if got := OverdueDays(p, testNow); math.Abs(got-2) > 1e-9 {
		t.Errorf("overdueDays = %v, want 2", got)
	}

	future := testNow.AddDate(0, 0, 1)
	p.NextReview = &future
	if got := OverdueDays(p, testNow); got != 0 {
		t.Errorf("overdueDays = %v, want 0 for future review", got)
	}
}
