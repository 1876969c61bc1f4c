package document

import (
	"fmt"

	"github.com/amonks/taskdown/syntax"
)

// Severity ranks a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Diagnostic reports a date condition on a task. The detector is a pure
// function of the resolved forest and a caller-supplied reference date;
// it never reads the wall clock.
type Diagnostic struct {
	// Node identifies the task.
	Node syntax.NodeID

	// LineNumber is the task's 1-based line number.
	LineNumber int

	// Due is the task's effective due date.
	Due syntax.Date

	// DaysOverdue is reference minus due, in whole days. Negative for
	// tasks not yet due.
	DaysOverdue int

	Severity Severity
	Message  string
}

// Overdue returns one diagnostic per task whose effective due date is
// strictly before the reference date and whose effective status is
// neither done nor cancelled, in document order.
func Overdue(forest *syntax.Forest, resolution *Resolution, reference syntax.Date) []Diagnostic {
	var diagnostics []Diagnostic
	for _, id := range resolution.TaskIDs {
		resolved := resolution.Task(id)
		if !resolved.HasDue || resolved.Status.IsClosed() {
			continue
		}
		if !resolved.Due.Before(reference) {
			continue
		}
		days := resolved.Due.DaysUntil(reference)
		diagnostics = append(diagnostics, Diagnostic{
			Node:        id,
			LineNumber:  forest.Node(id).Line.Number,
			Due:         resolved.Due,
			DaysOverdue: days,
			Severity:    SeverityError,
			Message:     fmt.Sprintf("task is %d %s overdue", days, pluralDays(days)),
		})
	}
	return diagnostics
}

// DateDiagnostics extends Overdue with proximity reports: tasks due on
// the reference date warn, and tasks due within soonWindowDays are
// informational. Closed tasks never appear.
func DateDiagnostics(forest *syntax.Forest, resolution *Resolution, reference syntax.Date, soonWindowDays int) []Diagnostic {
	var diagnostics []Diagnostic
	for _, id := range resolution.TaskIDs {
		resolved := resolution.Task(id)
		if !resolved.HasDue || resolved.Status.IsClosed() {
			continue
		}

		days := resolved.Due.DaysUntil(reference)
		diagnostic := Diagnostic{
			Node:        id,
			LineNumber:  forest.Node(id).Line.Number,
			Due:         resolved.Due,
			DaysOverdue: days,
		}

		switch {
		case days > 0:
			diagnostic.Severity = SeverityError
			diagnostic.Message = fmt.Sprintf("task is %d %s overdue", days, pluralDays(days))
		case days == 0:
			diagnostic.Severity = SeverityWarning
			diagnostic.Message = "task is due today"
		case -days <= soonWindowDays:
			diagnostic.Severity = SeverityInfo
			diagnostic.Message = fmt.Sprintf("task is due in %d %s", -days, pluralDays(-days))
		default:
			continue
		}

		diagnostics = append(diagnostics, diagnostic)
	}
	return diagnostics
}

func pluralDays(days int) string {
	if days == 1 || days == -1 {
		return "day"
	}
	return "days"
}
