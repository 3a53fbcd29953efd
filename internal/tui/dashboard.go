package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/sprintplanner/internal/models"
)

func (m MainModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.clearStatus()
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "n":
		m.state = StateSetup
		m.setup = NewSetupModel(m.ctx, m.store, m.theme)
		return m, nil
	case "c":
		if m.store.Active() == nil {
			m.setStatusError("No active sprint. Press n to create one.")
			return m, nil
		}
		m.state = StateCheckin
		m.checkin = NewCheckinModel(m.ctx, m.store, m.theme)
		return m, nil
	case "r":
		if m.store.Active() == nil {
			m.setStatusError("No active sprint to review.")
			return m, nil
		}
		m.state = StateReview
		m.review = NewReviewModel(m.ctx, m.store, m.theme)
		return m, nil
	case "h":
		m.state = StateHistory
		m.history = NewHistoryModel(m.ctx, m.store, m.theme)
		return m, nil
	}
	return m, nil
}

func (m MainModel) viewDashboard() string {
	t := m.theme
	active := m.store.Active()
	if active == nil {
		return t.Header.Render("Sprint Planner") + "\n\n" +
			t.Dim.Render("No active sprint.") + "\n\n" +
			m.dashboardHelp()
	}

	now := m.now()
	p := m.store.Progress(now)

	var b strings.Builder
	b.WriteString(t.Header.Render(active.Name) + "\n")
	b.WriteString(t.Subtitle.Render(fmt.Sprintf("%s - %s",
		active.StartDate.Format("Jan 2"),
		active.EndDate.Format("Jan 2, 2006"))) + "\n\n")

	b.WriteString(t.Label.Render(fmt.Sprintf("Day %d of %d", p.DaysPassed, p.TotalDays)))
	b.WriteString(t.Dim.Render(fmt.Sprintf("  (%d remaining)", p.DaysRemaining)) + "\n")
	b.WriteString(m.timeBar.ViewAs(float64(p.DaysPassed)/float64(p.TotalDays)) + "\n\n")

	b.WriteString(t.Label.Render(fmt.Sprintf("Goals %d/%d", p.CompletedGoals, p.TotalGoals)))
	b.WriteString(t.Dim.Render(fmt.Sprintf("  (%.0f%%)", p.GoalCompletionRate)) + "\n")
	b.WriteString(m.goalBar.ViewAs(p.GoalCompletionRate/100) + "\n\n")

	for _, g := range active.Goals {
		b.WriteString(renderGoalLine(t, g) + "\n")
	}

	if m.store.TodayCheckin() == nil {
		b.WriteString("\n" + t.Warning.Render("No check-in yet today. Press c to check in.") + "\n")
	} else {
		b.WriteString("\n" + t.Success.Render("Checked in today.") + "\n")
	}

	b.WriteString("\n" + m.dashboardHelp())
	return b.String()
}

func renderGoalLine(t Theme, g models.Goal) string {
	marker := "[ ]"
	style := t.Goal
	if g.Completed {
		marker = "[x]"
		style = t.CompletedGoal
	}
	line := fmt.Sprintf("%s %s", marker, g.Description)
	hours := fmt.Sprintf(" %.1f/%.1fh", g.ActualHours, g.EstimatedHours)
	return style.Render(line) + t.Dim.Render(hours) + " " + renderPriority(t, g.Priority)
}

func renderPriority(t Theme, p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return t.PriorityHigh.Render("!" + string(p))
	case models.PriorityLow:
		return t.PriorityLow.Render(string(p))
	default:
		return t.PriorityMed.Render(string(p))
	}
}

func (m MainModel) dashboardHelp() string {
	keys := []string{"n new sprint", "c check-in", "r review", "h history", "q quit"}
	if m.store.Active() != nil {
		p := m.store.Progress(m.now())
		if p.DaysRemaining == 0 {
			keys = append([]string{"sprint has ended - press r to review"}, keys...)
		}
	}
	return m.theme.Dim.Render(strings.Join(keys, " | "))
}
