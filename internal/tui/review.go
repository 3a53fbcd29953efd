package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/sprintplanner/internal/config"
	"github.com/akyairhashvil/sprintplanner/internal/models"
	"github.com/akyairhashvil/sprintplanner/internal/sprint"
)

var statusCycle = []models.FinalStatus{models.FinalCompleted, models.FinalPartial, models.FinalNotDone}

// ReviewModel is the sprint-review form: a final status per goal, three
// reflection prompts, and a 0-5 rating. Saving finalizes the sprint.
type ReviewModel struct {
	ctx   context.Context
	store *sprint.Store
	theme Theme

	goals       []models.Goal
	statusIdx   []int
	reflections []textinput.Model // went well, challenges, improvements
	rating      int

	row    int // goals, then 3 reflections, then rating
	errMsg string
}

var reflectionLabels = []string{"What went well?", "What was challenging?", "What would you improve?"}

func NewReviewModel(ctx context.Context, store *sprint.Store, theme Theme) ReviewModel {
	m := ReviewModel{ctx: ctx, store: store, theme: theme}
	m.reflections = make([]textinput.Model, len(reflectionLabels))
	for i := range m.reflections {
		ti := textinput.New()
		ti.CharLimit = 300
		ti.Width = 60
		m.reflections[i] = ti
	}
	active := store.Active()
	if active == nil {
		return m
	}
	m.goals = active.Goals
	m.statusIdx = make([]int, len(active.Goals))
	for i, g := range active.Goals {
		// Seed from the in-progress flag: done goals default to completed.
		if g.Completed {
			m.statusIdx[i] = 0
		} else {
			m.statusIdx[i] = 2
		}
	}
	m.applyFocus()
	return m
}

func (m ReviewModel) rowCount() int {
	return len(m.goals) + len(m.reflections) + 1
}

func (m MainModel) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			return m.gotoDashboard(), nil
		case "up", "shift+tab":
			m.review = m.review.move(-1)
			return m, nil
		case "down", "tab", "enter":
			m.review = m.review.move(1)
			return m, nil
		case "left", "right":
			m.review = m.review.cycle(keyMsg.String() == "right")
			return m, nil
		case "ctrl+s":
			next, done := m.review.complete()
			m.review = next
			if done {
				m.setStatus("Sprint completed. Nice work.")
				m.state = StateHistory
				m.history = NewHistoryModel(m.ctx, m.store, m.theme)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if idx := m.review.row - len(m.review.goals); idx >= 0 && idx < len(m.review.reflections) {
		m.review.reflections[idx], cmd = m.review.reflections[idx].Update(msg)
	}
	return m, cmd
}

func (m ReviewModel) move(delta int) ReviewModel {
	m.row = (m.row + delta + m.rowCount()) % m.rowCount()
	m.applyFocus()
	return m
}

func (m *ReviewModel) applyFocus() {
	for i := range m.reflections {
		m.reflections[i].Blur()
	}
	if idx := m.row - len(m.goals); idx >= 0 && idx < len(m.reflections) {
		m.reflections[idx].Focus()
	}
}

// cycle adjusts the focused goal's final status, or the rating.
func (m ReviewModel) cycle(forward bool) ReviewModel {
	if m.row < len(m.goals) {
		n := len(statusCycle)
		if forward {
			m.statusIdx[m.row] = (m.statusIdx[m.row] + 1) % n
		} else {
			m.statusIdx[m.row] = (m.statusIdx[m.row] + n - 1) % n
		}
		return m
	}
	if m.row == m.rowCount()-1 {
		if forward && m.rating < config.MaxRating {
			m.rating++
		} else if !forward && m.rating > 0 {
			m.rating--
		}
	}
	return m
}

func (m ReviewModel) complete() (ReviewModel, bool) {
	statuses := make(map[string]models.FinalStatus, len(m.goals))
	for i, g := range m.goals {
		statuses[g.ID] = statusCycle[m.statusIdx[i]]
	}
	reflections := models.Reflections{
		WentWell:     strings.TrimSpace(m.reflections[0].Value()),
		Challenges:   strings.TrimSpace(m.reflections[1].Value()),
		Improvements: strings.TrimSpace(m.reflections[2].Value()),
	}
	if _, err := m.store.CompleteSprint(m.ctx, statuses, reflections, m.rating); err != nil {
		m.errMsg = err.Error()
		return m, false
	}
	return m, true
}

func (m ReviewModel) View() string {
	t := m.theme
	active := m.store.Active()
	if active == nil {
		return t.Warning.Render("No active sprint to review.")
	}

	var b strings.Builder
	b.WriteString(t.Header.Render("Sprint Review: "+active.Name) + "\n\n")
	b.WriteString(t.Label.Render("Final goal outcomes") + "\n")
	for i, g := range m.goals {
		cursor := "  "
		if m.row == i {
			cursor = t.Focused.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s %s\n",
			cursor,
			t.Goal.Render(g.Description),
			renderFinalStatus(t, statusCycle[m.statusIdx[i]]),
			t.Dim.Render(fmt.Sprintf("%.1f/%.1fh", g.ActualHours, g.EstimatedHours))))
	}

	b.WriteString("\n" + t.Label.Render("Reflections") + "\n")
	for i, label := range reflectionLabels {
		cursor := "  "
		if m.row == len(m.goals)+i {
			cursor = t.Focused.Render("> ")
		}
		b.WriteString(cursor + t.Value.Render(label) + "\n    " + m.reflections[i].View() + "\n")
	}

	cursor := "  "
	if m.row == m.rowCount()-1 {
		cursor = t.Focused.Render("> ")
	}
	stars := strings.Repeat("*", m.rating) + strings.Repeat(".", config.MaxRating-m.rating)
	b.WriteString("\n" + cursor + t.Label.Render("Rating: ") + t.Highlight.Render(stars) +
		t.Dim.Render(fmt.Sprintf("  %d/%d", m.rating, config.MaxRating)) + "\n")

	if m.errMsg != "" {
		b.WriteString("\n" + t.Error.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + t.Dim.Render("up/down move | left/right change | ctrl+s complete sprint | esc cancel"))
	return b.String()
}

func renderFinalStatus(t Theme, s models.FinalStatus) string {
	switch s {
	case models.FinalCompleted:
		return t.Success.Render("[completed]")
	case models.FinalPartial:
		return t.Warning.Render("[partial]")
	default:
		return t.Error.Render("[not-done]")
	}
}
