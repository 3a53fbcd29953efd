package sprint

import "github.com/akyairhashvil/sprintplanner/internal/models"

// MergeGoalUpdates folds a check-in's per-goal updates into the current goal
// list. For each goal with a matching update the completion flag is replaced
// and the worked hours are added to the accumulated total; goals without an
// update pass through unchanged. The output has the same goal ids in the
// same order as the input; nothing is added or removed.
//
// Applying the same update twice adds its hours twice. Store.SaveDailyUpdate
// compensates for same-day re-saves by feeding this function hour deltas
// against the previously saved check-in.
func MergeGoalUpdates(goals []models.Goal, updates []models.GoalUpdate) []models.Goal {
	byGoal := make(map[string]models.GoalUpdate, len(updates))
	for _, u := range updates {
		byGoal[u.GoalID] = u
	}

	merged := make([]models.Goal, len(goals))
	for i, g := range goals {
		u, ok := byGoal[g.ID]
		if !ok {
			merged[i] = g
			continue
		}
		g.Completed = u.Completed
		g.ActualHours += u.HoursWorked
		if g.ActualHours < 0 {
			g.ActualHours = 0
		}
		merged[i] = g
	}
	return merged
}

// appliedHours maps goal id to the hours a previously saved check-in already
// contributed, used to rebase a same-day re-save.
func appliedHours(checkin *models.DailyCheckin) map[string]float64 {
	if checkin == nil {
		return nil
	}
	hours := make(map[string]float64, len(checkin.GoalUpdates))
	for _, u := range checkin.GoalUpdates {
		hours[u.GoalID] = u.HoursWorked
	}
	return hours
}
