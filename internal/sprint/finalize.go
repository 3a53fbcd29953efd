package sprint

import (
	"time"

	"github.com/akyairhashvil/sprintplanner/internal/config"
	"github.com/akyairhashvil/sprintplanner/internal/models"
	"github.com/akyairhashvil/sprintplanner/internal/util"
)

// Finalize freezes an active sprint into its immutable historical form.
// Every goal receives the caller's final status for its id, defaulting to
// not-done when unmapped. Pure: "now" is injected by the caller.
func Finalize(active models.Sprint, statuses map[string]models.FinalStatus, reflections models.Reflections, rating int, now time.Time) models.Sprint {
	frozen := make([]models.Goal, len(active.Goals))
	completed := 0
	for i, g := range active.Goals {
		status, ok := statuses[g.ID]
		if !ok || status == "" {
			status = models.FinalNotDone
		}
		g.FinalStatus = status
		if status == models.FinalCompleted {
			completed++
		}
		frozen[i] = g
	}

	rate := 0.0
	if len(frozen) > 0 {
		rate = float64(completed) / float64(len(frozen)) * 100
	}

	done := active
	done.Goals = frozen
	done.Status = models.StatusCompleted
	done.CompletedAt = util.Ptr(now)
	done.Reflections = reflections
	done.Rating = util.Clamp(rating, 0, config.MaxRating)
	done.FinalCompletionRate = rate
	return done
}
