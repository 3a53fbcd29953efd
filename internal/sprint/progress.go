package sprint

import (
	"time"

	"github.com/akyairhashvil/sprintplanner/internal/models"
	"github.com/akyairhashvil/sprintplanner/internal/util"
)

// CalculateProgress derives the time and completion metrics for a sprint.
// It is a pure function: "now" is supplied by the caller, never read from
// the wall clock here.
func CalculateProgress(start, end time.Time, goals []models.Goal, now time.Time) models.Progress {
	totalDays := daysBetween(start, end) + 1
	if totalDays < 1 {
		totalDays = 1
	}
	daysPassed := util.Clamp(daysBetween(start, now)+1, 0, totalDays)
	daysRemaining := daysBetween(now, end)
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	completed := 0
	for _, g := range goals {
		if g.Completed {
			completed++
		}
	}
	total := len(goals)
	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}

	return models.Progress{
		TotalDays:          totalDays,
		DaysPassed:         daysPassed,
		DaysRemaining:      daysRemaining,
		CompletedGoals:     completed,
		TotalGoals:         total,
		GoalCompletionRate: rate,
	}
}

// DateOnly truncates a timestamp to its calendar day in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole calendar days from a to b. Negative when b is
// before a.
func daysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
