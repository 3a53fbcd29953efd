package sprint

import "github.com/akyairhashvil/sprintplanner/internal/models"

// HistoryStats aggregates outcomes across all completed sprints.
type HistoryStats struct {
	TotalSprints        int
	TotalGoals          int
	CompletedGoals      int
	CompletionRate      float64
	TotalEstimatedHours float64
	TotalActualHours    float64
	AverageRating       float64
}

// HistoryStats computes aggregate stats over the completed-sprint history.
// Zero values throughout when the history is empty.
func (s *Store) HistoryStats() HistoryStats {
	var stats HistoryStats
	stats.TotalSprints = len(s.completed)
	if stats.TotalSprints == 0 {
		return stats
	}

	ratingSum := 0
	for _, sp := range s.completed {
		ratingSum += sp.Rating
		stats.TotalGoals += len(sp.Goals)
		for _, g := range sp.Goals {
			if g.EffectiveFinalStatus() == models.FinalCompleted {
				stats.CompletedGoals++
			}
			stats.TotalEstimatedHours += g.EstimatedHours
			stats.TotalActualHours += g.ActualHours
		}
	}
	if stats.TotalGoals > 0 {
		stats.CompletionRate = float64(stats.CompletedGoals) / float64(stats.TotalGoals) * 100
	}
	stats.AverageRating = float64(ratingSum) / float64(stats.TotalSprints)
	return stats
}
