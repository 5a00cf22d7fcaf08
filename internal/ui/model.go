// Package ui is the terminal front end of pomo.
//
// The Model bridges the engine's channel pair into a Bubble Tea program:
// events arrive as messages, key presses are turned into advance requests.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bft-labs/pomo/internal/domain"
)

// Controller is the sending side of the advance channel.
type Controller interface {
	Proceed() bool
	Cancel() bool
	Close()
}

type eventMsg domain.Event

type eventsClosedMsg struct{}

// Model is the Bubble Tea model of a pomo session.
type Model struct {
	events     <-chan domain.Event
	controller Controller
	cycle      domain.CycleConfig

	keys keyMap
	help help.Model
	bar  progress.Model

	awaiting  bool
	current   domain.PomodoroState
	next      domain.PomodoroState
	completed uint64
	remaining uint64
	total     uint64
	quitting  bool
}

// NewModel creates a model awaiting acknowledgement of the first pomodoro.
// completed is the number of pomodoros already finished today.
func NewModel(events <-chan domain.Event, controller Controller, cycle domain.CycleConfig, completed uint64) Model {
	return Model{
		events:     events,
		controller: controller,
		cycle:      cycle.Clamped(),
		keys:       newKeyMap(),
		help:       help.New(),
		bar:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		awaiting:   true,
		next:       domain.Pomodoro,
		completed:  completed,
	}
}

func waitForEvent(events <-chan domain.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(ev)
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.controller.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Proceed):
			if !m.awaiting {
				return m, nil
			}
			if m.controller.Proceed() {
				m.awaiting = false
				m.current = m.next
				m.total = m.cycle.Seconds(m.current)
				m.remaining = m.total
			}
			return m, nil
		case key.Matches(msg, m.keys.Cancel):
			m.controller.Cancel()
			return m, nil
		}

	case tea.WindowSizeMsg:
		w := msg.Width - 4
		if w > 60 {
			w = 60
		}
		if w < 10 {
			w = 10
		}
		m.bar.Width = w
		m.help.Width = msg.Width
		return m, nil

	case eventMsg:
		ev := domain.Event(msg)
		switch ev.Kind {
		case domain.EventTick:
			m.remaining = ev.Remaining
		case domain.EventCompleted:
			finished := m.current
			m.awaiting = true
			m.remaining = 0
			m.next = ev.Next
			m.completed = ev.CompletedPomodoros
			// The bell goes through the program's printer so only the
			// renderer writes to the terminal.
			return m, tea.Batch(waitForEvent(m.events), tea.Printf("\a%s finished.", title(finished)))
		}
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(countStyle.Render(FinishedLine(m.completed)))
	b.WriteString("\n\n")

	if m.awaiting {
		b.WriteString(stateStyle(m.next).Render(Announcement(m.next)))
		b.WriteString(promptStyle.Render(" Please press enter..."))
	} else {
		b.WriteString(stateStyle(m.current).Render(title(m.current)))
		b.WriteString("  ")
		b.WriteString(timeStyle.Render(RemainingLine(m.remaining)))
		b.WriteString("\n\n")
		b.WriteString(m.bar.ViewAs(m.Progress()))
	}

	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(m.help.View(m.keys)))
	return frameStyle.Render(b.String())
}

// Progress returns the elapsed fraction of the running interval.
func (m Model) Progress() float64 {
	switch {
	case m.awaiting:
		return 0
	case m.total == 0:
		return 1
	case m.remaining >= m.total:
		return 0
	}
	return float64(m.total-m.remaining) / float64(m.total)
}

// Awaiting reports whether the model waits for the user to proceed.
func (m Model) Awaiting() bool { return m.awaiting }

// Completed returns the number of pomodoros shown.
func (m Model) Completed() uint64 { return m.completed }

// Next returns the state announced to the user.
func (m Model) Next() domain.PomodoroState { return m.next }

// Remaining returns the last reported remaining seconds.
func (m Model) Remaining() uint64 { return m.remaining }
