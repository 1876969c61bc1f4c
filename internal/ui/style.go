package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/amonks/taskdown/document"
	"github.com/amonks/taskdown/syntax"
)

var (
	statusTodoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statusDoingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	statusDoneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	statusCancelledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)

	severityErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	severityWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	severityInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	overdueDateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// StyledStatus renders a status name, colored when styled is true.
func StyledStatus(status syntax.Status, styled bool) string {
	if !styled {
		return string(status)
	}
	switch status {
	case syntax.StatusDoing:
		return statusDoingStyle.Render(string(status))
	case syntax.StatusDone:
		return statusDoneStyle.Render(string(status))
	case syntax.StatusCancelled:
		return statusCancelledStyle.Render(string(status))
	default:
		return statusTodoStyle.Render(string(status))
	}
}

// StyledSeverity renders a diagnostic severity, colored when styled is
// true.
func StyledSeverity(severity document.Severity, styled bool) string {
	if !styled {
		return string(severity)
	}
	switch severity {
	case document.SeverityError:
		return severityErrorStyle.Render(string(severity))
	case document.SeverityWarning:
		return severityWarningStyle.Render(string(severity))
	default:
		return severityInfoStyle.Render(string(severity))
	}
}

// StyledDue renders a due date, highlighting overdue dates when styled
// is true.
func StyledDue(due syntax.Date, overdue, styled bool) string {
	if !styled || !overdue {
		return due.String()
	}
	return overdueDateStyle.Render(due.String())
}
