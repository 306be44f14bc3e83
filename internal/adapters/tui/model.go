package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/vlr/internal/core/domain"
)

// Model represents the main TUI state.
type Model struct {
	Title         string
	Label         string
	Fraction      float64
	Notifications []string
	ErrorMessage  string
	Outcome       *domain.Outcome
	Interrupted   bool

	spinner   spinner.Model
	bar       progress.Model
	width     int
	interrupt func()
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(max(msg.Width-8, 10), maxBarWidth)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgProgress:
		m.Label = msg.Label
		m.Fraction = msg.Fraction
	case MsgNotification:
		m.Notifications = append(m.Notifications, msg.Text)
		if len(m.Notifications) > maxNotifications {
			m.Notifications = m.Notifications[len(m.Notifications)-maxNotifications:]
		}
	case MsgError:
		m.ErrorMessage = msg.Message
	case MsgDone:
		outcome := msg.Outcome
		m.Outcome = &outcome
		if outcome.Succeeded() {
			m.Fraction = 1
		}
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyCtrlC {
		return m, nil
	}
	// The worker owns shutdown; the program keeps drawing until it stops.
	if !m.Interrupted && m.interrupt != nil {
		m.interrupt()
	}
	m.Interrupted = true
	if m.interrupt == nil {
		return m, tea.Quit
	}
	return m, nil
}
