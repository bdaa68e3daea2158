package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/Prasad4455/dbatools/internal/model"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	title := titleStyle.Render(fmt.Sprintf("dbatools • %s", m.title))
	sections = append(sections, title)

	sections = append(sections, sectionStyle.Render("Progress"), renderProgress(m.completed, m.total))

	if len(m.order) > 0 {
		sections = append(sections, sectionStyle.Render("Targets"))
		sections = append(sections, m.renderTargets())
	}

	summary := m.renderSummary()
	if strings.TrimSpace(summary) != "" {
		sections = append(sections, sectionStyle.Render("Summary"), summaryStyle.Render(summary))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderProgress(completed, total int) string {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30

	ratio := 0.0
	if total > 0 {
		ratio = math.Min(1.0, float64(completed)/float64(total))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", completed, total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", bar.ViewAs(ratio))
}

func (m Model) renderTargets() string {
	var lines []string
	for _, name := range m.order {
		res := m.results[name]
		icon := StatusIcon(res.Status)
		line := fmt.Sprintf(" %s %s", icon, name)
		if strings.TrimSpace(res.Message) != "" {
			line = fmt.Sprintf("%s — %s", line, res.Message)
		}
		if res.Applied {
			transition := fmt.Sprintf("%s → %s", res.Prior.Value, res.New.Value)
			line = fmt.Sprintf("%s [%s]", line, transition)
		}
		if res.Duration > 0 {
			line = fmt.Sprintf("%s (%s)", line, res.Duration.Truncate(10*time.Millisecond))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSummary() string {
	if !m.finished {
		return ""
	}
	if m.cancelled {
		return failureStyle.Render("Cancelled")
	}

	var applied, skipped, failed int
	for _, res := range m.results {
		switch res.Status {
		case model.StatusApplied, model.StatusWouldApply:
			applied++
		case model.StatusSkipped:
			skipped++
		case model.StatusFailed:
			failed++
		}
	}

	parts := []string{
		appliedStyle.Render(fmt.Sprintf("%d applied", applied)),
		skippedStyle.Render(fmt.Sprintf("%d skipped", skipped)),
	}
	if failed > 0 {
		parts = append(parts, failureStyle.Render(fmt.Sprintf("%d failed", failed)))
	}
	return strings.Join(parts, ", ")
}

// StatusIcon returns the glyph representing a result status.
func StatusIcon(status string) string {
	switch status {
	case model.StatusApplied:
		return appliedStyle.Render("✓")
	case model.StatusRunning:
		return runningStyle.Render("⏳")
	case model.StatusFailed:
		return failureStyle.Render("✗")
	case model.StatusSkipped:
		return skippedStyle.Render("⊘")
	case model.StatusWouldApply:
		return pendingStyle.Render("↻")
	default:
		return pendingStyle.Render("…")
	}
}
