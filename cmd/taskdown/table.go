package main

import (
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/amonks/taskdown/syntax"
)

const bodyWrapWidth = 60

// stdoutIsTerminal reports whether stdout is attached to a terminal;
// styling is suppressed when it is not.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// wrapBody wraps long task bodies for detail output.
func wrapBody(body string) string {
	return wordwrap.String(body, bodyWrapWidth)
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}

func priorityCell(priority byte) string {
	if priority == 0 {
		return "-"
	}
	return string(rune(priority))
}

func dueCell(due syntax.Date, hasDue bool) string {
	if !hasDue {
		return "-"
	}
	return due.String()
}
