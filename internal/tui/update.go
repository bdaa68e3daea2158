package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Prasad4455/dbatools/internal/model"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, nil
	case TargetStartMsg:
		m.ensureTarget(msg.FullName)
		res := m.results[msg.FullName]
		res.Status = model.StatusRunning
		m.results[msg.FullName] = res
		return m, nil
	case TargetCompleteMsg:
		name := msg.Result.FullName
		if name == "" {
			return m, nil
		}
		m.ensureTarget(name)
		existing := m.results[name]
		previouslyCompleted := completedStatus(existing.Status)
		m.results[name] = msg.Result
		if !previouslyCompleted {
			m.completed++
			m.markFinishedIfComplete()
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			m.finished = true
			return m, nil
		}
	case tea.QuitMsg:
		m.finished = true
		return m, nil
	}

	return m, nil
}

func completedStatus(status string) bool {
	switch status {
	case model.StatusApplied, model.StatusSkipped, model.StatusFailed, model.StatusWouldApply:
		return true
	}
	return false
}
