package models

import "time"

// Priority ranks a goal's importance within a sprint.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// SprintStatus enumerates the lifecycle states of a sprint.
type SprintStatus string

const (
	StatusActive    SprintStatus = "active"
	StatusCompleted SprintStatus = "completed"
)

// FinalStatus is the frozen outcome a goal receives at sprint review.
// The zero value means the sprint has not been finalized yet.
type FinalStatus string

const (
	FinalCompleted FinalStatus = "completed"
	FinalPartial   FinalStatus = "partial"
	FinalNotDone   FinalStatus = "not-done"
)

// Goal represents a single unit of work inside a sprint.
type Goal struct {
	ID             string      `json:"id"`
	Description    string      `json:"description"`
	Priority       Priority    `json:"priority"`
	EstimatedHours float64     `json:"estimatedHours"`
	ActualHours    float64     `json:"actualHours"`
	Completed      bool        `json:"completed"`
	FinalStatus    FinalStatus `json:"finalStatus,omitempty"`
}

// EffectiveFinalStatus resolves the goal's outcome for display and stats.
// Records written before final statuses existed only carry the Completed
// flag, so that is used as the fallback.
func (g Goal) EffectiveFinalStatus() FinalStatus {
	if g.FinalStatus != "" {
		return g.FinalStatus
	}
	if g.Completed {
		return FinalCompleted
	}
	return FinalNotDone
}

// Reflections holds the free-text retrospective captured at sprint review.
type Reflections struct {
	WentWell     string `json:"wentWell,omitempty"`
	Challenges   string `json:"challenges,omitempty"`
	Improvements string `json:"improvements,omitempty"`
}

// Sprint is a fixed-duration block of days with an ordered goal list.
// EndDate is inclusive: EndDate = StartDate + duration - 1 day.
type Sprint struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	StartDate           time.Time    `json:"startDate"`
	EndDate             time.Time    `json:"endDate"`
	Duration            int          `json:"duration"`
	Goals               []Goal       `json:"goals"`
	Status              SprintStatus `json:"status"`
	CreatedAt           time.Time    `json:"createdAt"`
	CompletedAt         *time.Time   `json:"completedAt,omitempty"`
	Reflections         Reflections  `json:"reflections,omitempty"`
	Rating              int          `json:"rating,omitempty"` // 0-5, 0 = unrated
	FinalCompletionRate float64      `json:"finalCompletionRate,omitempty"`
}

// GoalUpdate is one goal's progress delta inside a daily check-in.
type GoalUpdate struct {
	GoalID      string  `json:"goalId"`
	Completed   bool    `json:"completed"`
	HoursWorked float64 `json:"hoursWorked"`
	Notes       string  `json:"notes,omitempty"`
}

// DailyCheckin records one day's progress against the active sprint.
// There is at most one per (sprint, date); re-saving a day replaces it.
type DailyCheckin struct {
	Date        string       `json:"date"` // YYYY-MM-DD
	GoalUpdates []GoalUpdate `json:"goalUpdates"`
	FocusGoals  []string     `json:"focusGoals,omitempty"` // at most 3 goal ids
	DailyPlan   string       `json:"dailyPlan,omitempty"`
	Timestamp   time.Time    `json:"timestamp"`
}

// Progress is the derived point-in-time view of the active sprint.
type Progress struct {
	TotalDays          int
	DaysPassed         int
	DaysRemaining      int
	CompletedGoals     int
	TotalGoals         int
	GoalCompletionRate float64
}
