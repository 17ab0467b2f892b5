package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nishantrao/studyd/internal/model"
)

func (m Model) handleFocusKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		if m.Focus.Running {
			m.Focus.Running = false
			m.Status = StatusBar{Text: "focus paused", IsError: false}
			return m, nil
		}
		if m.Focus.RemainingSec <= 0 {
			m.Focus.RemainingSec = m.currentFocusTotal()
		}
		m.Focus.Running = true
		m.Status = StatusBar{Text: "focus running", IsError: false}
		return m, focusTickCmd()
	case "r":
		m.Focus.Running = false
		m.Focus.RemainingSec = m.currentFocusTotal()
		m.Status = StatusBar{Text: "focus reset", IsError: false}
		return m, nil
	}
	return m, nil
}

func (m Model) onFocusTick() (Model, tea.Cmd) {
	if !m.Focus.Running {
		return m, nil
	}
	if m.Focus.RemainingSec > 0 {
		m.Focus.RemainingSec--
	}
	if m.Focus.RemainingSec == 0 {
		m.completeFocusPhase()
		return m, nil
	}
	return m, focusTickCmd()
}

// completeFocusPhase flips work to break and back. The completion
// notification goes out immediately, before any further input.
func (m *Model) completeFocusPhase() {
	m.Focus.Running = false
	if m.Focus.Phase == FocusPhaseWork {
		m.Focus.CompletedSessions++
		m.Focus.Phase = FocusPhaseBreak
		m.Focus.RemainingSec = m.Focus.BreakDurationSec
		m.Status = StatusBar{Text: "focus session complete, break ready", IsError: false}
		m.Center.Add("Focus session complete! Time to take a short break.", model.NotificationSuccess, m.clock())
		m.pushDesktop("Focus session complete!", "Time to take a short break.")
		return
	}
	m.Focus.Phase = FocusPhaseWork
	m.Focus.RemainingSec = m.Focus.WorkDurationSec
	m.Status = StatusBar{Text: "break complete, focus block ready", IsError: false}
}

func (m Model) currentFocusTotal() int {
	if m.Focus.Phase == FocusPhaseBreak {
		return m.Focus.BreakDurationSec
	}
	return m.Focus.WorkDurationSec
}

func focusTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return FocusTickMsg{} })
}
