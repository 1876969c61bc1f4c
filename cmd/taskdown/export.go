package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/amonks/taskdown/document"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export resolved tasks as JSON or YAML",
	Long: `Export resolved tasks as JSON or YAML.

Each task is exported with its effective attributes after inheritance.
Headers, blank lines, and comments are not exported.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var exportFormat string

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or yaml")
}

// exportedTask is the export schema for one resolved task.
type exportedTask struct {
	Line       int      `json:"line" yaml:"line"`
	Body       string   `json:"body" yaml:"body"`
	Status     string   `json:"status" yaml:"status"`
	Priority   string   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Due        string   `json:"due,omitempty" yaml:"due,omitempty"`
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func runExport(cmd *cobra.Command, args []string) error {
	text, err := readDocumentFile(args[0])
	if err != nil {
		return err
	}

	doc := document.Parse(text)
	tasks := make([]exportedTask, 0, len(doc.Resolution().TaskIDs))
	for _, id := range doc.Resolution().TaskIDs {
		resolved := doc.Resolution().Task(id)
		node := doc.Forest().Node(id)

		task := exportedTask{
			Line:       node.Line.Number,
			Body:       node.Line.Body,
			Status:     string(resolved.Status),
			Categories: resolved.Categories,
			Tags:       resolved.Tags,
		}
		if resolved.Priority != 0 {
			task.Priority = string(rune(resolved.Priority))
		}
		if resolved.HasDue {
			task.Due = resolved.Due.String()
		}
		tasks = append(tasks, task)
	}

	switch exportFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(tasks)
	case "yaml":
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		defer encoder.Close()
		return encoder.Encode(tasks)
	default:
		return fmt.Errorf("invalid export format %q: must be json or yaml", exportFormat)
	}
}
