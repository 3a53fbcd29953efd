package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/sprintplanner/internal/config"
	"github.com/akyairhashvil/sprintplanner/internal/sprint"
)

// SessionState defines the high-level view of the application.
type SessionState int

const (
	StateDashboard SessionState = iota
	StateSetup
	StateCheckin
	StateReview
	StateHistory
)

// MainModel is the root bubbletea model that switches between views.
type MainModel struct {
	ctx   context.Context
	store *sprint.Store
	theme Theme
	state SessionState

	width  int
	height int

	status      string
	statusIsErr bool

	timeBar progress.Model
	goalBar progress.Model

	setup   SetupModel
	checkin CheckinModel
	review  ReviewModel
	history HistoryModel
}

func NewMainModel(ctx context.Context, store *sprint.Store) MainModel {
	m := MainModel{
		ctx:     ctx,
		store:   store,
		theme:   defaultTheme(),
		timeBar: progress.New(progress.WithDefaultGradient()),
		goalBar: progress.New(progress.WithDefaultGradient()),
	}
	if store.Active() == nil {
		m.state = StateSetup
		m.setup = NewSetupModel(ctx, store, m.theme)
	}
	return m
}

func (m MainModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		barWidth := msg.Width - 20
		if barWidth > 60 {
			barWidth = 60
		}
		if barWidth < 10 {
			barWidth = 10
		}
		m.timeBar.Width = barWidth
		m.goalBar.Width = barWidth
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.state {
	case StateDashboard:
		return m.updateDashboard(msg)
	case StateSetup:
		return m.updateSetup(msg)
	case StateCheckin:
		return m.updateCheckin(msg)
	case StateReview:
		return m.updateReview(msg)
	case StateHistory:
		return m.updateHistory(msg)
	}
	return m, nil
}

func (m MainModel) View() string {
	var body string
	switch m.state {
	case StateDashboard:
		body = m.viewDashboard()
	case StateSetup:
		body = m.setup.View()
	case StateCheckin:
		body = m.checkin.View()
	case StateReview:
		body = m.review.View()
	case StateHistory:
		body = m.viewHistory()
	}
	if m.status != "" {
		style := m.theme.Success
		if m.statusIsErr {
			style = m.theme.Error
		}
		body += "\n" + style.Render(m.status)
	}
	return m.theme.Base.Render(body)
}

func (m *MainModel) setStatus(message string) {
	m.status = message
	m.statusIsErr = false
}

func (m *MainModel) setStatusError(message string) {
	m.status = message
	m.statusIsErr = true
}

func (m *MainModel) clearStatus() {
	m.status = ""
	m.statusIsErr = false
}

// gotoDashboard returns to the dashboard, or to setup when no sprint exists.
func (m MainModel) gotoDashboard() MainModel {
	if m.store.Active() == nil {
		m.state = StateSetup
		m.setup = NewSetupModel(m.ctx, m.store, m.theme)
	} else {
		m.state = StateDashboard
	}
	return m
}

func (m MainModel) now() time.Time {
	return time.Now()
}

func todayString() string {
	return time.Now().Format(config.DateLayout)
}
