package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bft-labs/pomo/internal/domain"
)

var (
	countStyle  = lipgloss.NewStyle().Bold(true)
	workStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	breakStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	frameStyle  = lipgloss.NewStyle().Padding(1, 2)
)

func stateStyle(s domain.PomodoroState) lipgloss.Style {
	if s.IsBreak() {
		return breakStyle
	}
	return workStyle
}
