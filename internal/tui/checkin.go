package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/sprintplanner/internal/config"
	"github.com/akyairhashvil/sprintplanner/internal/models"
	"github.com/akyairhashvil/sprintplanner/internal/sprint"
)

// CheckinModel is the daily check-in form: one row per goal plus a free-text
// plan for the day.
type CheckinModel struct {
	ctx   context.Context
	store *sprint.Store
	theme Theme

	goals     []models.Goal
	completed []bool
	hours     []textinput.Model
	notes     []textinput.Model
	plan      textinput.Model
	focusSet  map[string]bool

	row      int // len(goals) = plan row
	col      int // 0 = hours, 1 = notes
	existing bool
	errMsg   string
}

func NewCheckinModel(ctx context.Context, store *sprint.Store, theme Theme) CheckinModel {
	active := store.Active()
	m := CheckinModel{
		ctx:      ctx,
		store:    store,
		theme:    theme,
		focusSet: make(map[string]bool),
	}
	if active == nil {
		return m
	}
	m.goals = active.Goals
	m.completed = make([]bool, len(active.Goals))
	m.hours = make([]textinput.Model, len(active.Goals))
	m.notes = make([]textinput.Model, len(active.Goals))
	for i, g := range active.Goals {
		m.completed[i] = g.Completed

		hours := textinput.New()
		hours.Placeholder = "0"
		hours.CharLimit = 5
		hours.Width = 5
		m.hours[i] = hours

		notes := textinput.New()
		notes.Placeholder = "notes"
		notes.CharLimit = 120
		notes.Width = 30
		m.notes[i] = notes
	}
	m.plan = textinput.New()
	m.plan.Placeholder = "What's the plan for today?"
	m.plan.CharLimit = 200
	m.plan.Width = 50

	// Pre-fill from an existing check-in so a re-save edits today's entry
	// instead of stacking on top of it.
	if existing := store.TodayCheckin(); existing != nil {
		m.existing = true
		byGoal := make(map[string]models.GoalUpdate, len(existing.GoalUpdates))
		for _, u := range existing.GoalUpdates {
			byGoal[u.GoalID] = u
		}
		for i, g := range active.Goals {
			if u, ok := byGoal[g.ID]; ok {
				m.completed[i] = u.Completed
				if u.HoursWorked > 0 {
					m.hours[i].SetValue(strconv.FormatFloat(u.HoursWorked, 'f', -1, 64))
				}
				m.notes[i].SetValue(u.Notes)
			}
		}
		for _, id := range existing.FocusGoals {
			m.focusSet[id] = true
		}
		m.plan.SetValue(existing.DailyPlan)
	}

	m.applyFocus()
	return m
}

func (m MainModel) updateCheckin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			return m.gotoDashboard(), nil
		case "up", "shift+tab":
			m.checkin = m.checkin.move(-1)
			return m, nil
		case "down":
			m.checkin = m.checkin.move(1)
			return m, nil
		case "tab":
			m.checkin = m.checkin.nextField()
			return m, nil
		case "ctrl+d":
			m.checkin = m.checkin.toggleDone()
			return m, nil
		case "ctrl+f":
			m.checkin = m.checkin.toggleFocusGoal()
			return m, nil
		case "ctrl+s":
			next, saved := m.checkin.save()
			m.checkin = next
			if saved {
				m.setStatus("Daily check-in saved.")
				return m.gotoDashboard(), nil
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.checkin.row == len(m.checkin.goals) {
		m.checkin.plan, cmd = m.checkin.plan.Update(msg)
	} else if m.checkin.row < len(m.checkin.goals) {
		if m.checkin.col == 0 {
			m.checkin.hours[m.checkin.row], cmd = m.checkin.hours[m.checkin.row].Update(msg)
		} else {
			m.checkin.notes[m.checkin.row], cmd = m.checkin.notes[m.checkin.row].Update(msg)
		}
	}
	return m, cmd
}

func (m CheckinModel) move(delta int) CheckinModel {
	rows := len(m.goals) + 1
	m.row = (m.row + delta + rows) % rows
	m.col = 0
	m.applyFocus()
	return m
}

func (m CheckinModel) nextField() CheckinModel {
	if m.row >= len(m.goals) {
		return m.move(1)
	}
	if m.col == 0 {
		m.col = 1
		m.applyFocus()
		return m
	}
	return m.move(1)
}

func (m *CheckinModel) applyFocus() {
	for i := range m.hours {
		m.hours[i].Blur()
		m.notes[i].Blur()
	}
	m.plan.Blur()
	if m.row == len(m.goals) {
		m.plan.Focus()
	} else if m.row < len(m.goals) {
		if m.col == 0 {
			m.hours[m.row].Focus()
		} else {
			m.notes[m.row].Focus()
		}
	}
}

func (m CheckinModel) toggleDone() CheckinModel {
	if m.row < len(m.completed) {
		m.completed[m.row] = !m.completed[m.row]
	}
	return m
}

func (m CheckinModel) toggleFocusGoal() CheckinModel {
	if m.row >= len(m.goals) {
		return m
	}
	id := m.goals[m.row].ID
	if m.focusSet[id] {
		delete(m.focusSet, id)
		return m
	}
	if len(m.focusSet) >= config.MaxFocusGoals {
		m.errMsg = fmt.Sprintf("At most %d focus goals per day.", config.MaxFocusGoals)
		return m
	}
	m.focusSet[id] = true
	m.errMsg = ""
	return m
}

func (m CheckinModel) save() (CheckinModel, bool) {
	if m.store.Active() == nil {
		m.errMsg = "No active sprint."
		return m, false
	}

	updates := make([]models.GoalUpdate, len(m.goals))
	for i, g := range m.goals {
		hours := 0.0
		raw := strings.TrimSpace(m.hours[i].Value())
		if raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil || parsed < 0 {
				m.errMsg = fmt.Sprintf("Hours for %q must be a non-negative number.", g.Description)
				return m, false
			}
			hours = parsed
		}
		updates[i] = models.GoalUpdate{
			GoalID:      g.ID,
			Completed:   m.completed[i],
			HoursWorked: hours,
			Notes:       strings.TrimSpace(m.notes[i].Value()),
		}
	}

	var focus []string
	for _, g := range m.goals {
		if m.focusSet[g.ID] {
			focus = append(focus, g.ID)
		}
	}

	today := todayString()
	checkin := models.DailyCheckin{
		Date:        today,
		GoalUpdates: updates,
		FocusGoals:  focus,
		DailyPlan:   strings.TrimSpace(m.plan.Value()),
	}
	if err := m.store.SaveDailyUpdate(m.ctx, today, checkin); err != nil {
		m.errMsg = err.Error()
		return m, false
	}
	return m, true
}

func (m CheckinModel) View() string {
	t := m.theme
	var b strings.Builder
	b.WriteString(t.Header.Render("Daily Check-in") + "\n")
	b.WriteString(t.Subtitle.Render(todayString()) + "\n\n")

	if m.existing {
		b.WriteString(t.Highlight.Render("You've already checked in today. Saving updates the entry.") + "\n\n")
	}

	for i, g := range m.goals {
		marker := "[ ]"
		if m.completed[i] {
			marker = "[x]"
		}
		focusTag := ""
		if m.focusSet[g.ID] {
			focusTag = t.Warning.Render("[focus]")
		}
		cursor := "  "
		if m.row == i {
			cursor = t.Focused.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, marker, t.Goal.Render(g.Description), focusTag))
		b.WriteString(fmt.Sprintf("     hours: %s  notes: %s\n", m.hours[i].View(), m.notes[i].View()))
	}

	planCursor := "  "
	if m.row == len(m.goals) {
		planCursor = t.Focused.Render("> ")
	}
	b.WriteString("\n" + planCursor + t.Label.Render("Today's plan: ") + m.plan.View() + "\n")
	b.WriteString(t.Dim.Render(fmt.Sprintf("Focus goals: %d/%d", len(m.focusSet), config.MaxFocusGoals)) + "\n")

	if m.errMsg != "" {
		b.WriteString("\n" + t.Error.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + t.Dim.Render("up/down move | tab field | ctrl+d done | ctrl+f focus | ctrl+s save | esc cancel"))
	return b.String()
}
