package config

// Sprint shape.
const (
	DefaultSprintDays = 7
	MaxSprintDays     = 14
	MaxFocusGoals     = 3
	MaxRating         = 5
)

// Database/application settings.
const (
	AppName    = "sprintplanner"
	DBFileName = "sprints.db"
	DateLayout = "2006-01-02"
)
