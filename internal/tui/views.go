package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains lipgloss styles for the TUI
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
	Border   lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")). // Purple
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			MarginBottom(1),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")), // Green
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color("63")).
			Foreground(lipgloss.Color("230")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2),
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case ViewLogin:
		return m.renderLogin()
	case ViewDashboard:
		return m.renderDashboard()
	case ViewProjects:
		return m.renderProjects()
	case ViewTestSuites:
		return m.renderSuites()
	case ViewExecutions:
		return m.renderExecutions()
	default:
		return ""
	}
}

func (m Model) renderLogin() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("BenchLink"))
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(m.styles.Subtitle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(m.username.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " Logging in...\n")
	}
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("tab: switch field • enter: log in • esc: quit"))
	return m.styles.Border.Render(b.String())
}

func (m Model) renderDashboard() string {
	var b strings.Builder
	b.WriteString(m.header())

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading...\n")
	} else if m.stats != nil {
		b.WriteString(fmt.Sprintf("Projects      %d\n", m.stats.TotalProjects))
		b.WriteString(fmt.Sprintf("APIs          %d\n", m.stats.TotalAPIs))
		b.WriteString(fmt.Sprintf("Test cases    %d\n", m.stats.TotalTestCases))
		b.WriteString(fmt.Sprintf("Test suites   %d\n", m.stats.TotalTestSuites))
	}

	b.WriteString(m.footer())
	return b.String()
}

func (m Model) renderProjects() string {
	var b strings.Builder
	b.WriteString(m.header())

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading...\n")
	} else if len(m.projects) == 0 {
		b.WriteString(m.styles.Muted.Render("No projects.") + "\n")
	} else {
		for i, p := range m.projects {
			line := fmt.Sprintf("%4d  %-30s %s", p.ID, p.Name, p.Description)
			if i == m.cursor {
				line = m.styles.Selected.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString(m.footer())
	return b.String()
}

func (m Model) renderSuites() string {
	var b strings.Builder
	b.WriteString(m.header())

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading...\n")
	} else if len(m.suites) == 0 {
		b.WriteString(m.styles.Muted.Render("No test suites.") + "\n")
	} else {
		for i, ts := range m.suites {
			line := fmt.Sprintf("%4d  %-30s %d cases", ts.ID, ts.Name, len(ts.TestCases))
			if i == m.cursor {
				line = m.styles.Selected.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString(m.footer())
	return b.String()
}

func (m Model) renderExecutions() string {
	var b strings.Builder
	b.WriteString(m.header())

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading...\n")
	} else if len(m.executions) == 0 {
		b.WriteString(m.styles.Muted.Render("No executions.") + "\n")
	} else {
		for i, e := range m.executions {
			status := e.Status
			if status == "passed" {
				status = m.styles.Success.Render(status)
			} else if status == "failed" {
				status = m.styles.Error.Render(status)
			}
			line := fmt.Sprintf("%4d  %-30s %s  %d/%d", e.ID, e.Name, status, e.Passed, e.Total)
			if i == m.cursor {
				line = m.styles.Selected.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString(m.footer())
	return b.String()
}

func (m Model) header() string {
	title := m.styles.Title.Render("BenchLink · " + m.view.title())
	if m.errMsg != "" {
		return title + "\n" + m.styles.Error.Render(m.errMsg) + "\n\n"
	}
	return title + "\n"
}

func (m Model) footer() string {
	return m.styles.Help.Render(
		"d: dashboard • p: projects • s: suites • e: executions • r: refresh • q: quit")
}
