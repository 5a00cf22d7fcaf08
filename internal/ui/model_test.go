package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bft-labs/pomo/internal/domain"
)

type fakeController struct {
	proceeds int
	cancels  int
	closed   bool
}

func (c *fakeController) Proceed() bool { c.proceeds++; return !c.closed }
func (c *fakeController) Cancel() bool  { c.cancels++; return !c.closed }
func (c *fakeController) Close()        { c.closed = true }

var testCycle = domain.CycleConfig{
	Pomodoro:   100 * time.Second,
	ShortBreak: 10 * time.Second,
	LongBreak:  20 * time.Second,
}

func newTestModel(completed uint64) (Model, *fakeController) {
	c := &fakeController{}
	return NewModel(make(chan domain.Event), c, testCycle, completed), c
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func enter() tea.Msg { return tea.KeyMsg{Type: tea.KeyEnter} }

func runes(s string) tea.Msg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestModel_InitialView(t *testing.T) {
	m, _ := newTestModel(3)

	if !m.Awaiting() {
		t.Fatal("new model is not awaiting acknowledgement")
	}
	view := m.View()
	for _, want := range []string{
		"You have finished 3 pomodoros today.",
		"Starting a new pomodoro.",
		"Please press enter...",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModel_ProceedAndTicks(t *testing.T) {
	m, c := newTestModel(0)

	m, _ = update(t, m, enter())
	if c.proceeds != 1 {
		t.Fatalf("proceeds = %d, want 1", c.proceeds)
	}
	if m.Awaiting() {
		t.Fatal("model still awaiting after enter")
	}

	// A second enter while the interval runs is ignored.
	m, _ = update(t, m, enter())
	if c.proceeds != 1 {
		t.Errorf("proceeds = %d after enter while running, want 1", c.proceeds)
	}

	m, cmd := update(t, m, eventMsg(domain.Tick(75)))
	if cmd == nil {
		t.Error("tick did not re-arm the event listener")
	}
	if m.Remaining() != 75 {
		t.Errorf("Remaining = %d, want 75", m.Remaining())
	}
	if got := m.Progress(); got != 0.25 {
		t.Errorf("Progress = %v, want 0.25", got)
	}
	if !strings.Contains(m.View(), "2 minutes remaining") {
		t.Errorf("view missing remaining time:\n%s", m.View())
	}
}

func TestModel_Completed(t *testing.T) {
	m, _ := newTestModel(0)
	m, _ = update(t, m, enter())
	m, cmd := update(t, m, eventMsg(domain.Completed(domain.ShortBreak, 1)))

	// Re-arm the listener and ring the bell through the program.
	if cmd == nil {
		t.Fatal("completion returned no command")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); !ok || len(batch) != 2 {
		t.Errorf("completion command returned %T, want a batch of 2", msg)
	}

	if !m.Awaiting() {
		t.Error("model not awaiting after completion")
	}
	if m.Completed() != 1 || m.Next() != domain.ShortBreak {
		t.Errorf("Completed, Next = %d, %v; want 1, ShortBreak", m.Completed(), m.Next())
	}
	view := m.View()
	for _, want := range []string{"You have finished 1 pomodoros today.", "Let's have a short break."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModel_Cancel(t *testing.T) {
	m, c := newTestModel(0)
	m, _ = update(t, m, runes("c"))

	if c.cancels != 1 {
		t.Errorf("cancels = %d, want 1", c.cancels)
	}
	if !m.Awaiting() {
		t.Error("cancel changed the model state")
	}
}

func TestModel_Quit(t *testing.T) {
	m, c := newTestModel(0)
	m, cmd := update(t, m, runes("q"))

	if !c.closed {
		t.Error("quit did not close the controller")
	}
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command is not tea.Quit")
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestModel_EventsClosed(t *testing.T) {
	events := make(chan domain.Event)
	m := NewModel(events, &fakeController{}, testCycle, 0)

	close(events)
	msg := m.Init()()
	if _, ok := msg.(eventsClosedMsg); !ok {
		t.Fatalf("Init command returned %T, want eventsClosedMsg", msg)
	}

	_, cmd := update(t, m, msg)
	if cmd == nil {
		t.Fatal("closed events returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("closed events did not quit")
	}
}

func TestModel_ZeroLengthInterval(t *testing.T) {
	c := &fakeController{}
	m := NewModel(make(chan domain.Event), c, domain.CycleConfig{}, 0)
	m, _ = update(t, m, enter())

	if got := m.Progress(); got != 1 {
		t.Errorf("Progress = %v, want 1 for a zero-length interval", got)
	}
}

func TestRemainingLine(t *testing.T) {
	tests := []struct {
		secs uint64
		want string
	}{
		{1500, "25 minutes remaining"},
		{61, "2 minutes remaining"},
		{60, "60 seconds remaining"},
		{4, "4 seconds remaining"},
		{0, "0 seconds remaining"},
	}
	for _, tt := range tests {
		if got := RemainingLine(tt.secs); got != tt.want {
			t.Errorf("RemainingLine(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestAnnouncement(t *testing.T) {
	tests := map[domain.PomodoroState]string{
		domain.Pomodoro:   "Starting a new pomodoro.",
		domain.ShortBreak: "Let's have a short break.",
		domain.LongBreak:  "Let's have a long break.",
	}
	for s, want := range tests {
		if got := Announcement(s); got != want {
			t.Errorf("Announcement(%v) = %q, want %q", s, got, want)
		}
	}
}
