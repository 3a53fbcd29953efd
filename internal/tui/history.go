package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/sprintplanner/internal/models"
	"github.com/akyairhashvil/sprintplanner/internal/sprint"
)

// HistoryModel lists completed sprints, most recent first, with aggregate
// stats and per-sprint detail for the selected entry.
type HistoryModel struct {
	ctx   context.Context
	store *sprint.Store
	theme Theme

	sprints  []models.Sprint
	selected int
}

func NewHistoryModel(ctx context.Context, store *sprint.Store, theme Theme) HistoryModel {
	return HistoryModel{
		ctx:     ctx,
		store:   store,
		theme:   theme,
		sprints: store.Completed(),
	}
}

func (m MainModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "esc":
		return m.gotoDashboard(), nil
	case "up", "k":
		if m.history.selected > 0 {
			m.history.selected--
		}
		return m, nil
	case "down", "j":
		if m.history.selected < len(m.history.sprints)-1 {
			m.history.selected++
		}
		return m, nil
	case "p":
		path, err := GeneratePDFReport(m.store)
		if err != nil {
			m.setStatusError(fmt.Sprintf("Error generating PDF: %v", err))
		} else {
			m.setStatus("PDF report written to " + path)
		}
		return m, nil
	}
	return m, nil
}

func (m MainModel) viewHistory() string {
	t := m.theme
	h := m.history
	if len(h.sprints) == 0 {
		return t.Header.Render("Sprint History") + "\n\n" +
			t.Dim.Render("No completed sprints yet. Complete your first sprint to see it here!") + "\n\n" +
			t.Dim.Render("q back")
	}

	stats := m.store.HistoryStats()
	var b strings.Builder
	b.WriteString(t.Header.Render("Sprint History") + "\n\n")
	b.WriteString(t.Panel.Render(fmt.Sprintf(
		"%d sprints | %d/%d goals (%.0f%%) | %.1fh logged of %.1fh planned | avg rating %.1f",
		stats.TotalSprints, stats.CompletedGoals, stats.TotalGoals, stats.CompletionRate,
		stats.TotalActualHours, stats.TotalEstimatedHours, stats.AverageRating)) + "\n\n")

	for i, s := range h.sprints {
		cursor := "  "
		if i == h.selected {
			cursor = t.Focused.Render("> ")
		}
		completedAt := ""
		if s.CompletedAt != nil {
			completedAt = s.CompletedAt.Format("Jan 2, 2006")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n",
			cursor,
			t.Label.Render(s.Name),
			t.Dim.Render(completedAt),
			t.Highlight.Render(fmt.Sprintf("%.0f%%", s.FinalCompletionRate))))
		if i == h.selected {
			b.WriteString(m.renderSprintDetail(s))
		}
	}

	b.WriteString("\n" + t.Dim.Render("up/down select | p PDF report | q back"))
	return b.String()
}

func (m MainModel) renderSprintDetail(s models.Sprint) string {
	t := m.theme
	width := m.width - 8
	if width < 30 {
		width = 30
	}

	var b strings.Builder
	for _, g := range s.Goals {
		b.WriteString(fmt.Sprintf("    %s %s %s\n",
			renderFinalStatus(t, g.EffectiveFinalStatus()),
			t.Goal.Render(g.Description),
			t.Dim.Render(fmt.Sprintf("%.1f/%.1fh", g.ActualHours, g.EstimatedHours))))
	}
	if s.Rating > 0 {
		b.WriteString("    " + t.Label.Render("Rating: ") + t.Value.Render(fmt.Sprintf("%d/5", s.Rating)) + "\n")
	}
	writeReflection := func(label, text string) {
		if text == "" {
			return
		}
		b.WriteString("    " + t.Label.Render(label) + "\n")
		for _, line := range strings.Split(ansi.Wrap(text, width, ""), "\n") {
			b.WriteString("      " + t.Value.Render(line) + "\n")
		}
	}
	writeReflection("Went well:", s.Reflections.WentWell)
	writeReflection("Challenges:", s.Reflections.Challenges)
	writeReflection("Improvements:", s.Reflections.Improvements)
	return b.String()
}
