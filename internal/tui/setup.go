package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/sprintplanner/internal/config"
	"github.com/akyairhashvil/sprintplanner/internal/models"
	"github.com/akyairhashvil/sprintplanner/internal/sprint"
)

// Setup form fields, in focus order.
const (
	setupFieldName = iota
	setupFieldStartDate
	setupFieldDuration
	setupFieldGoalDesc
	setupFieldGoalHours
	setupFieldPriority
	setupFieldCount
)

var priorityCycle = []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow}

// SetupModel is the new-sprint form: sprint details plus a goal staging list.
type SetupModel struct {
	ctx   context.Context
	store *sprint.Store
	theme Theme

	inputs      []textinput.Model
	focus       int
	priorityIdx int
	goals       []models.Goal
	errMsg      string
}

func NewSetupModel(ctx context.Context, store *sprint.Store, theme Theme) SetupModel {
	name := textinput.New()
	name.Placeholder = "e.g., Midterm Week"
	name.CharLimit = 60
	name.Width = 40
	name.Focus()

	startDate := textinput.New()
	startDate.Placeholder = config.DateLayout
	startDate.SetValue(time.Now().Format(config.DateLayout))
	startDate.CharLimit = 10
	startDate.Width = 12

	duration := textinput.New()
	duration.Placeholder = strconv.Itoa(config.DefaultSprintDays)
	duration.SetValue(strconv.Itoa(config.DefaultSprintDays))
	duration.CharLimit = 2
	duration.Width = 4

	goalDesc := textinput.New()
	goalDesc.Placeholder = "e.g., Finish Math Assignment 3"
	goalDesc.CharLimit = 100
	goalDesc.Width = 40

	goalHours := textinput.New()
	goalHours.Placeholder = "2"
	goalHours.CharLimit = 5
	goalHours.Width = 6

	return SetupModel{
		ctx:         ctx,
		store:       store,
		theme:       theme,
		inputs:      []textinput.Model{name, startDate, duration, goalDesc, goalHours},
		priorityIdx: 1, // Medium
	}
}

func (m MainModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			if m.store.Active() != nil {
				return m.gotoDashboard(), nil
			}
		case "tab", "down":
			m.setup = m.setup.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.setup = m.setup.focusPrev()
			return m, nil
		case "left", "right":
			if m.setup.focus == setupFieldPriority {
				m.setup = m.setup.cyclePriority(keyMsg.String() == "right")
				return m, nil
			}
		case "enter":
			if m.setup.focus == setupFieldGoalHours || m.setup.focus == setupFieldPriority {
				m.setup = m.setup.addGoal()
				return m, nil
			}
			m.setup = m.setup.focusNext()
			return m, nil
		case "ctrl+s":
			next, created := m.setup.startSprint()
			m.setup = next
			if created {
				m.setStatus("Sprint started.")
				m.state = StateDashboard
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.setup.focus < len(m.setup.inputs) {
		m.setup.inputs[m.setup.focus], cmd = m.setup.inputs[m.setup.focus].Update(msg)
	}
	return m, cmd
}

func (m SetupModel) focusNext() SetupModel {
	return m.setFocus((m.focus + 1) % setupFieldCount)
}

func (m SetupModel) focusPrev() SetupModel {
	return m.setFocus((m.focus + setupFieldCount - 1) % setupFieldCount)
}

func (m SetupModel) setFocus(focus int) SetupModel {
	m.focus = focus
	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m SetupModel) cyclePriority(forward bool) SetupModel {
	if forward {
		m.priorityIdx = (m.priorityIdx + 1) % len(priorityCycle)
	} else {
		m.priorityIdx = (m.priorityIdx + len(priorityCycle) - 1) % len(priorityCycle)
	}
	return m
}

// addGoal validates the goal sub-form and moves the goal to the staging list.
func (m SetupModel) addGoal() SetupModel {
	desc := strings.TrimSpace(m.inputs[setupFieldGoalDesc].Value())
	if desc == "" {
		m.errMsg = "Goal description is required."
		return m
	}
	hours, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[setupFieldGoalHours].Value()), 64)
	if err != nil || hours <= 0 {
		m.errMsg = "Estimated hours must be a positive number."
		return m
	}
	m.goals = append(m.goals, models.Goal{
		Description:    desc,
		Priority:       priorityCycle[m.priorityIdx],
		EstimatedHours: hours,
	})
	m.inputs[setupFieldGoalDesc].Reset()
	m.inputs[setupFieldGoalHours].Reset()
	m.priorityIdx = 1
	m.errMsg = ""
	return m.setFocus(setupFieldGoalDesc)
}

func (m SetupModel) startSprint() (SetupModel, bool) {
	startDate, err := time.Parse(config.DateLayout, strings.TrimSpace(m.inputs[setupFieldStartDate].Value()))
	if err != nil {
		m.errMsg = "Start date must be " + config.DateLayout + "."
		return m, false
	}
	duration, err := strconv.Atoi(strings.TrimSpace(m.inputs[setupFieldDuration].Value()))
	if err != nil || duration < 1 || duration > config.MaxSprintDays {
		m.errMsg = fmt.Sprintf("Duration must be 1-%d days.", config.MaxSprintDays)
		return m, false
	}

	_, err = m.store.CreateSprint(m.ctx, m.inputs[setupFieldName].Value(), startDate, duration, m.goals)
	if err != nil {
		m.errMsg = err.Error()
		return m, false
	}
	return m, true
}

func (m SetupModel) View() string {
	t := m.theme
	var b strings.Builder
	b.WriteString(t.Header.Render("Create New Sprint") + "\n\n")

	if active := m.store.Active(); active != nil {
		b.WriteString(t.Warning.Render(fmt.Sprintf(
			"Active sprint %q will be replaced when you start a new one.", active.Name)) + "\n\n")
	}

	b.WriteString(m.renderField(setupFieldName, "Sprint Name") + "\n")
	b.WriteString(m.renderField(setupFieldStartDate, "Start Date") + "\n")
	b.WriteString(m.renderField(setupFieldDuration, fmt.Sprintf("Duration (1-%d days)", config.MaxSprintDays)) + "\n")

	if end, ok := m.endDatePreview(); ok {
		b.WriteString(t.Dim.Render("End date: "+end) + "\n")
	}

	b.WriteString("\n" + t.Label.Render("Add Goal") + "\n")
	b.WriteString(m.renderField(setupFieldGoalDesc, "Description") + "\n")
	b.WriteString(m.renderField(setupFieldGoalHours, "Estimated Hours") + "\n")

	priorityLabel := "  Priority: "
	if m.focus == setupFieldPriority {
		priorityLabel = t.Focused.Render("> Priority: ")
	}
	b.WriteString(priorityLabel + renderPriority(t, priorityCycle[m.priorityIdx]) +
		t.Dim.Render("  (left/right to change, enter to add)") + "\n")

	if len(m.goals) > 0 {
		b.WriteString("\n" + t.Label.Render(fmt.Sprintf("Goals (%d)", len(m.goals))) + "\n")
		for _, g := range m.goals {
			b.WriteString(fmt.Sprintf("  - %s %s %s\n",
				t.Goal.Render(g.Description),
				t.Dim.Render(fmt.Sprintf("%.1fh", g.EstimatedHours)),
				renderPriority(t, g.Priority)))
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n" + t.Error.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + t.Dim.Render("tab next field | enter add goal | ctrl+s start sprint | esc cancel"))
	return b.String()
}

func (m SetupModel) renderField(field int, label string) string {
	marker := "  "
	if m.focus == field {
		marker = m.theme.Focused.Render("> ")
	}
	return marker + m.theme.Label.Render(label+": ") + m.inputs[field].View()
}

func (m SetupModel) endDatePreview() (string, bool) {
	start, err := time.Parse(config.DateLayout, strings.TrimSpace(m.inputs[setupFieldStartDate].Value()))
	if err != nil {
		return "", false
	}
	duration, err := strconv.Atoi(strings.TrimSpace(m.inputs[setupFieldDuration].Value()))
	if err != nil || duration < 1 {
		return "", false
	}
	return start.AddDate(0, 0, duration-1).Format("January 2, 2006"), true
}
