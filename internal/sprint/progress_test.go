package sprint

import (
	"testing"
	"time"

	"github.com/akyairhashvil/sprintplanner/internal/models"
	"github.com/akyairhashvil/sprintplanner/internal/testutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateProgressMidSprint(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2024, time.January, 7)
	goals := []models.Goal{testutil.NewGoal("g1").WithEstimatedHours(2).Build()}

	p := CalculateProgress(start, end, goals, date(2024, time.January, 3))
	if p.TotalDays != 7 {
		t.Fatalf("expected 7 total days, got %d", p.TotalDays)
	}
	if p.DaysPassed != 3 {
		t.Fatalf("expected 3 days passed, got %d", p.DaysPassed)
	}
	if p.DaysRemaining != 4 {
		t.Fatalf("expected 4 days remaining, got %d", p.DaysRemaining)
	}
	if p.TotalGoals != 1 || p.CompletedGoals != 0 {
		t.Fatalf("expected 0/1 goals, got %d/%d", p.CompletedGoals, p.TotalGoals)
	}
}

func TestCalculateProgressClamping(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2024, time.January, 7)

	before := CalculateProgress(start, end, nil, date(2023, time.December, 25))
	if before.DaysPassed != 0 {
		t.Fatalf("expected 0 days passed before start, got %d", before.DaysPassed)
	}
	if before.DaysRemaining != 13 {
		t.Fatalf("expected 13 days remaining before start, got %d", before.DaysRemaining)
	}

	after := CalculateProgress(start, end, nil, date(2024, time.February, 1))
	if after.DaysPassed != 7 {
		t.Fatalf("expected days passed clamped to 7, got %d", after.DaysPassed)
	}
	if after.DaysRemaining != 0 {
		t.Fatalf("expected 0 days remaining after end, got %d", after.DaysRemaining)
	}
}

func TestCalculateProgressMonotonic(t *testing.T) {
	start := date(2024, time.March, 4)
	end := date(2024, time.March, 10)

	prev := -1
	for now := start.AddDate(0, 0, -3); !now.After(end.AddDate(0, 0, 3)); now = now.AddDate(0, 0, 1) {
		p := CalculateProgress(start, end, nil, now)
		if p.DaysPassed < prev {
			t.Fatalf("days passed decreased from %d to %d at %s", prev, p.DaysPassed, now.Format("2006-01-02"))
		}
		if p.DaysPassed < 0 || p.DaysPassed > p.TotalDays {
			t.Fatalf("days passed %d out of range [0,%d]", p.DaysPassed, p.TotalDays)
		}
		prev = p.DaysPassed
	}
}

func TestCalculateProgressCompletionRate(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2024, time.January, 7)
	now := date(2024, time.January, 2)

	empty := CalculateProgress(start, end, nil, now)
	if empty.GoalCompletionRate != 0 {
		t.Fatalf("expected 0 rate for zero goals, got %f", empty.GoalCompletionRate)
	}

	goals := []models.Goal{
		testutil.NewGoal("g1").Completed().Build(),
		testutil.NewGoal("g2").Build(),
		testutil.NewGoal("g3").Completed().Build(),
		testutil.NewGoal("g4").Build(),
	}
	p := CalculateProgress(start, end, goals, now)
	if p.GoalCompletionRate != 50 {
		t.Fatalf("expected 50%% completion, got %f", p.GoalCompletionRate)
	}
	if p.GoalCompletionRate < 0 || p.GoalCompletionRate > 100 {
		t.Fatalf("completion rate %f out of bounds", p.GoalCompletionRate)
	}
}

func TestCalculateProgressSingleDaySprint(t *testing.T) {
	day := date(2024, time.June, 1)
	p := CalculateProgress(day, day, nil, day)
	if p.TotalDays != 1 || p.DaysPassed != 1 || p.DaysRemaining != 0 {
		t.Fatalf("unexpected single-day progress: %+v", p)
	}
}
