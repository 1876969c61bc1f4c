package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/taskdown/document"
	"github.com/amonks/taskdown/internal/config"
	"github.com/amonks/taskdown/internal/markdown"
	"github.com/amonks/taskdown/internal/ui"
	"github.com/amonks/taskdown/syntax"
)

// nowFunc supplies the default reference date; the core itself never
// reads the clock.
var nowFunc = time.Now

var overdueCmd = &cobra.Command{
	Use:   "overdue <file>...",
	Short: "Report overdue tasks",
	Long: `Report overdue tasks.

A task is overdue when its effective due date is before the reference
date and its effective status is neither done nor cancelled. The
reference date defaults to today; pass --date for reproducible output.

With --all, tasks due today or due within the configured soon window
are reported too. With --report, output is a markdown report rendered
for the terminal.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOverdue,
}

var (
	overdueDate   string
	overdueAll    bool
	overdueReport bool
)

func init() {
	overdueCmd.Flags().StringVar(&overdueDate, "date", "", "reference date (YYYY-MM-DD, default today)")
	overdueCmd.Flags().BoolVar(&overdueAll, "all", false, "include due-today and due-soon tasks")
	overdueCmd.Flags().BoolVar(&overdueReport, "report", false, "render a markdown report")
}

type fileDiagnostics struct {
	path        string
	diagnostics []document.Diagnostic
	doc         *document.Document
}

func runOverdue(cmd *cobra.Command, args []string) error {
	reference, err := parseReferenceDate(overdueDate)
	if err != nil {
		return err
	}

	var results []fileDiagnostics
	total := 0
	for _, path := range args {
		text, err := readDocumentFile(path)
		if err != nil {
			return err
		}

		cfg, err := config.Load(filepath.Dir(path))
		if err != nil {
			return err
		}

		doc := document.Parse(text)
		var diagnostics []document.Diagnostic
		if overdueAll {
			diagnostics = doc.DateDiagnostics(reference, cfg.SoonWindow())
		} else {
			diagnostics = doc.Overdue(reference)
		}
		total += len(diagnostics)
		results = append(results, fileDiagnostics{path: path, diagnostics: diagnostics, doc: doc})
	}

	if overdueReport {
		report := overdueMarkdown(results, reference)
		fmt.Fprintln(cmd.OutOrStdout(), markdown.Render(80, report))
	} else {
		printDiagnosticsTable(cmd, results)
	}

	if total > 0 {
		return exitError{code: 1}
	}
	return nil
}

func printDiagnosticsTable(cmd *cobra.Command, results []fileDiagnostics) {
	styled := stdoutIsTerminal()
	builder := ui.NewTableBuilder([]string{"FILE", "LINE", "SEVERITY", "DUE", "TASK", "MESSAGE"}, len(results))
	for _, result := range results {
		for _, diagnostic := range result.diagnostics {
			node := result.doc.Forest().Node(diagnostic.Node)
			builder.AddRow([]string{
				result.path,
				strconv.Itoa(diagnostic.LineNumber),
				ui.StyledSeverity(diagnostic.Severity, styled),
				ui.StyledDue(diagnostic.Due, diagnostic.DaysOverdue > 0, styled),
				ui.TruncateTableCell(node.Line.Body),
				diagnostic.Message,
			})
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), builder.String())
}

func overdueMarkdown(results []fileDiagnostics, reference syntax.Date) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "# Overdue report for %s\n", reference)
	reported := false
	for _, result := range results {
		if len(result.diagnostics) == 0 {
			continue
		}
		reported = true
		fmt.Fprintf(&builder, "\n## %s\n\n", result.path)
		for _, diagnostic := range result.diagnostics {
			node := result.doc.Forest().Node(diagnostic.Node)
			fmt.Fprintf(&builder, "- line %d: **%s** (due %s): %s\n",
				diagnostic.LineNumber, node.Line.Body, diagnostic.Due, diagnostic.Message)
		}
	}
	if !reported {
		builder.WriteString("\nNo overdue tasks.\n")
	}
	return builder.String()
}
