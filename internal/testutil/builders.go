package testutil

import (
	"time"

	"github.com/akyairhashvil/sprintplanner/internal/models"
	"github.com/akyairhashvil/sprintplanner/internal/util"
)

// GoalBuilder provides fluent API for creating test goals.
type GoalBuilder struct {
	goal models.Goal
}

func NewGoal(id string) *GoalBuilder {
	return &GoalBuilder{
		goal: models.Goal{
			ID:             id,
			Description:    "Test Goal",
			Priority:       models.PriorityMedium,
			EstimatedHours: 2,
		},
	}
}

func (b *GoalBuilder) WithDescription(d string) *GoalBuilder {
	b.goal.Description = d
	return b
}

func (b *GoalBuilder) WithPriority(p models.Priority) *GoalBuilder {
	b.goal.Priority = p
	return b
}

func (b *GoalBuilder) WithEstimatedHours(h float64) *GoalBuilder {
	b.goal.EstimatedHours = h
	return b
}

func (b *GoalBuilder) WithActualHours(h float64) *GoalBuilder {
	b.goal.ActualHours = h
	return b
}

func (b *GoalBuilder) Completed() *GoalBuilder {
	b.goal.Completed = true
	return b
}

func (b *GoalBuilder) WithFinalStatus(s models.FinalStatus) *GoalBuilder {
	b.goal.FinalStatus = s
	return b
}

func (b *GoalBuilder) Build() models.Goal {
	return b.goal
}

// SprintBuilder provides fluent API for creating test sprints.
type SprintBuilder struct {
	sprint models.Sprint
}

func NewSprint(name string) *SprintBuilder {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &SprintBuilder{
		sprint: models.Sprint{
			ID:        "test-sprint",
			Name:      name,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 6),
			Duration:  7,
			Status:    models.StatusActive,
			CreatedAt: start,
		},
	}
}

func (b *SprintBuilder) WithID(id string) *SprintBuilder {
	b.sprint.ID = id
	return b
}

func (b *SprintBuilder) WithDates(start time.Time, duration int) *SprintBuilder {
	b.sprint.StartDate = start
	b.sprint.EndDate = start.AddDate(0, 0, duration-1)
	b.sprint.Duration = duration
	return b
}

func (b *SprintBuilder) WithGoals(goals ...models.Goal) *SprintBuilder {
	b.sprint.Goals = goals
	return b
}

func (b *SprintBuilder) CompletedAt(t time.Time, rating int) *SprintBuilder {
	b.sprint.Status = models.StatusCompleted
	b.sprint.CompletedAt = util.Ptr(t)
	b.sprint.Rating = rating
	return b
}

func (b *SprintBuilder) Build() models.Sprint {
	return b.sprint
}

// CheckinBuilder provides fluent API for creating test check-ins.
type CheckinBuilder struct {
	checkin models.DailyCheckin
}

func NewCheckin(date string) *CheckinBuilder {
	return &CheckinBuilder{
		checkin: models.DailyCheckin{
			Date:      date,
			Timestamp: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func (b *CheckinBuilder) WithUpdate(goalID string, completed bool, hours float64) *CheckinBuilder {
	b.checkin.GoalUpdates = append(b.checkin.GoalUpdates, models.GoalUpdate{
		GoalID:      goalID,
		Completed:   completed,
		HoursWorked: hours,
	})
	return b
}

func (b *CheckinBuilder) WithFocusGoals(ids ...string) *CheckinBuilder {
	b.checkin.FocusGoals = ids
	return b
}

func (b *CheckinBuilder) WithPlan(plan string) *CheckinBuilder {
	b.checkin.DailyPlan = plan
	return b
}

func (b *CheckinBuilder) Build() models.DailyCheckin {
	return b.checkin
}
