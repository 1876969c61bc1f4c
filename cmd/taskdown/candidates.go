package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amonks/taskdown/document"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates (category|tag) <file> | candidates due",
	Short: "List completion candidates from a taskdown file",
	Long: `List completion candidates from a taskdown file.

Category and tag candidates are the names observed anywhere in the
document, sorted lexicographically; --prefix narrows them
case-sensitively. Due candidates are relative date suggestions computed
from --date and need no file.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCandidates,
}

var (
	candidatesPrefix string
	candidatesDate   string
)

func init() {
	candidatesCmd.Flags().StringVar(&candidatesPrefix, "prefix", "", "only candidates with this prefix")
	candidatesCmd.Flags().StringVar(&candidatesDate, "date", "", "reference date for due candidates (YYYY-MM-DD, default today)")
}

func runCandidates(cmd *cobra.Command, args []string) error {
	kind := args[0]

	if kind == "due" {
		reference, err := parseReferenceDate(candidatesDate)
		if err != nil {
			return err
		}
		for _, candidate := range document.DueCandidates(reference) {
			fmt.Fprintf(cmd.OutOrStdout(), "(%s)\t%s\n", candidate.Date, candidate.Label)
		}
		return nil
	}

	candidateKind := document.CandidateKind(kind)
	if !candidateKind.IsValid() {
		return fmt.Errorf("invalid candidate kind %q: must be category, tag, or due", kind)
	}
	if len(args) < 2 {
		return fmt.Errorf("%s candidates require a file", kind)
	}

	text, err := readDocumentFile(args[1])
	if err != nil {
		return err
	}

	doc := document.Parse(text)
	for _, name := range doc.Candidates(candidateKind, candidatesPrefix) {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
