// Package tui renders batch mutation progress with Bubbletea. Plain
// (non-interactive) runs reuse the same model by feeding it messages
// directly and printing the final view.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Prasad4455/dbatools/internal/model"
	"github.com/Prasad4455/dbatools/internal/target"
)

// TargetStartMsg indicates a target has started processing.
type TargetStartMsg struct {
	FullName string
	Time     time.Time
}

// TargetCompleteMsg reports that a target has finished processing.
type TargetCompleteMsg struct {
	Result model.Result
}

type tickMsg struct{}

// Model contains the Bubbletea state for a batch run.
type Model struct {
	title          string
	results        map[string]model.Result
	order          []string
	total          int
	completed      int
	finished       bool
	cancelled      bool
	nonInteractive bool
}

// NewModel constructs a TUI model seeded with the batch targets.
func NewModel(title string, targets []target.Target, nonInteractive bool) Model {
	m := Model{
		title:          title,
		results:        make(map[string]model.Result),
		order:          make([]string, 0, len(targets)),
		nonInteractive: nonInteractive,
	}

	for _, tgt := range targets {
		name := tgt.FullName()
		if _, exists := m.results[name]; exists {
			continue
		}
		m.results[name] = model.Result{FullName: name, Status: model.StatusPending}
		m.order = append(m.order, name)
		m.total++
	}

	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Millisecond, func(time.Time) tea.Msg { return tickMsg{} })
}

// TotalTargets returns the number of targets tracked by the model.
func (m Model) TotalTargets() int {
	return m.total
}

// CompletedTargets returns the number of finished targets.
func (m Model) CompletedTargets() int {
	return m.completed
}

// IsFinished reports whether the batch has completed.
func (m Model) IsFinished() bool {
	return m.finished
}

func (m *Model) ensureTarget(name string) {
	if name == "" {
		return
	}
	if _, exists := m.results[name]; !exists {
		m.results[name] = model.Result{FullName: name, Status: model.StatusPending}
		m.order = append(m.order, name)
		m.total++
	}
}

func (m *Model) markFinishedIfComplete() {
	if m.total > 0 && m.completed >= m.total {
		m.finished = true
	}
}
