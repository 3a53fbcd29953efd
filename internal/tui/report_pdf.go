package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/sprintplanner/internal/config"
	"github.com/akyairhashvil/sprintplanner/internal/models"
	"github.com/akyairhashvil/sprintplanner/internal/sprint"
	"github.com/akyairhashvil/sprintplanner/internal/util"
)

// GeneratePDFReport writes a sprint-history report to the reports directory
// and returns the file path.
func GeneratePDFReport(store *sprint.Store) (string, error) {
	sprints := store.Completed()
	stats := store.HistoryStats()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Sprint History Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Sprints completed: %d", stats.TotalSprints))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Goals completed: %d of %d (%.0f%%)", stats.CompletedGoals, stats.TotalGoals, stats.CompletionRate))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Hours logged: %.1f of %.1f planned", stats.TotalActualHours, stats.TotalEstimatedHours))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Average rating: %.1f / %d", stats.AverageRating, config.MaxRating))
	pdf.Ln(12)

	for _, s := range sprints {
		pdf.SetFont("Arial", "B", 14)
		header := fmt.Sprintf("%s (%s - %s)", s.Name,
			s.StartDate.Format("Jan 2"), s.EndDate.Format("Jan 2, 2006"))
		pdf.Cell(0, 10, header)
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 12)
		if s.Rating > 0 {
			pdf.Cell(0, 8, fmt.Sprintf("  Rating: %d/%d", s.Rating, config.MaxRating))
			pdf.Ln(6)
		}
		for _, g := range s.Goals {
			marker := "[ ]"
			switch g.EffectiveFinalStatus() {
			case models.FinalCompleted:
				marker = "[x]"
			case models.FinalPartial:
				marker = "[~]"
			}
			pdf.Cell(0, 8, fmt.Sprintf("  %s %s (%.1f/%.1fh, %s)", marker, g.Description, g.ActualHours, g.EstimatedHours, g.Priority))
			pdf.Ln(6)
		}

		writeReflection := func(label, text string) {
			if text == "" {
				return
			}
			pdf.SetFont("Arial", "I", 11)
			pdf.MultiCell(0, 6, fmt.Sprintf("  %s %s", label, text), "", "", false)
			pdf.SetFont("Arial", "", 12)
		}
		writeReflection("Went well:", s.Reflections.WentWell)
		writeReflection("Challenges:", s.Reflections.Challenges)
		writeReflection("Improvements:", s.Reflections.Improvements)
		pdf.Ln(6)
	}

	dir := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("sprint_report_%s.pdf", time.Now().Format(config.DateLayout)))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
