package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/amonks/taskdown/document"
	"github.com/amonks/taskdown/internal/ui"
	"github.com/amonks/taskdown/syntax"
)

var showCmd = &cobra.Command{
	Use:   "show <file> <line>",
	Short: "Show one resolved task in detail",
	Long: `Show one resolved task in detail.

The task is identified by its 1-based line number. Output includes the
effective attributes after inheritance and the task's direct subtasks.`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	lineNumber, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid line number %q", args[1])
	}

	text, err := readDocumentFile(args[0])
	if err != nil {
		return err
	}

	doc := document.Parse(text)
	if lineNumber < 1 || lineNumber > doc.LineCount() {
		return fmt.Errorf("line %d is out of range: %s has %d lines", lineNumber, args[0], doc.LineCount())
	}

	id := syntax.NodeID(lineNumber - 1)
	resolved := doc.Resolution().Task(id)
	if resolved == nil {
		return fmt.Errorf("line %d is not a task", lineNumber)
	}

	styled := stdoutIsTerminal()
	node := doc.Forest().Node(id)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, wrapBody(node.Line.Body))
	fmt.Fprintf(out, "status:      %s\n", ui.StyledStatus(resolved.Status, styled))
	fmt.Fprintf(out, "priority:    %s\n", priorityCell(resolved.Priority))
	overdue := resolved.HasDue && resolved.Due.Before(syntax.DateOf(nowFunc()))
	fmt.Fprintf(out, "due:         %s\n", dueCellStyled(resolved, overdue, styled))
	fmt.Fprintf(out, "categories:  %s\n", joinNames(resolved.Categories))
	fmt.Fprintf(out, "tags:        %s\n", joinNames(resolved.Tags))

	subtasks := 0
	for _, childID := range node.Children {
		if doc.Resolution().Task(childID) != nil {
			subtasks++
		}
	}
	if subtasks > 0 {
		fmt.Fprintf(out, "subtasks:    %d\n", subtasks)
	}
	return nil
}

func dueCellStyled(resolved *document.Resolved, overdue, styled bool) string {
	if !resolved.HasDue {
		return "-"
	}
	return ui.StyledDue(resolved.Due, overdue, styled)
}
