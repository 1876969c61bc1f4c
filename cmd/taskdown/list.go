package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/amonks/taskdown/document"
	"github.com/amonks/taskdown/internal/ui"
	"github.com/amonks/taskdown/syntax"
)

var listCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List resolved tasks from a taskdown file",
	Long: `List resolved tasks from a taskdown file.

Each task is shown with its effective attributes after inheritance:
status, priority, due date, and the accumulated category set. Header
lines are not tasks and are not listed.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

var (
	listCategory string
	listTag      string
)

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "only tasks in this category")
	listCmd.Flags().StringVar(&listTag, "tag", "", "only tasks carrying this tag")
}

func runList(cmd *cobra.Command, args []string) error {
	text, err := readDocumentFile(args[0])
	if err != nil {
		return err
	}

	doc := document.Parse(text)
	styled := stdoutIsTerminal()

	builder := ui.NewTableBuilder([]string{"LINE", "STATUS", "PRI", "DUE", "CATEGORIES", "TAGS", "TASK"}, len(doc.Resolution().TaskIDs))
	for _, id := range doc.Resolution().TaskIDs {
		resolved := doc.Resolution().Task(id)
		if !matchesListFilters(resolved) {
			continue
		}
		node := doc.Forest().Node(id)
		builder.AddRow([]string{
			strconv.Itoa(node.Line.Number),
			ui.StyledStatus(resolved.Status, styled),
			priorityCell(resolved.Priority),
			dueCell(resolved.Due, resolved.HasDue),
			joinNames(resolved.Categories),
			joinNames(resolved.Tags),
			ui.TruncateTableCell(node.Line.Body),
		})
	}

	fmt.Fprint(cmd.OutOrStdout(), builder.String())
	return nil
}

func matchesListFilters(resolved *document.Resolved) bool {
	if listCategory != "" && !containsName(resolved.Categories, listCategory) {
		return false
	}
	if listTag != "" && !containsName(resolved.Tags, listTag) {
		return false
	}
	return true
}

func containsName(names []string, name string) bool {
	for _, candidate := range names {
		if candidate == name {
			return true
		}
	}
	return false
}

// parseReferenceDate parses a --date flag value, defaulting to today.
func parseReferenceDate(value string) (syntax.Date, error) {
	if value == "" {
		return syntax.DateOf(nowFunc()), nil
	}
	date, ok := syntax.ParseDate(value)
	if !ok {
		return syntax.Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", value)
	}
	return date, nil
}
