package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/amonks/taskdown/document"
	"github.com/amonks/taskdown/internal/config"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>...",
	Short: "Format taskdown files canonically",
	Long: `Format taskdown files canonically.

By default the formatted text is printed to stdout. Use --write to
rewrite files in place, or --check to report files whose canonical form
differs without changing them (exit status 1 when any differ).

Formatting only reorders and respaces what is explicitly written;
inherited attributes are never added to child lines. In normalized
mode a todo symbol that restates the line's resolved status is
omitted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

var (
	fmtWrite bool
	fmtCheck bool
	fmtMode  string
)

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "rewrite files in place")
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "list files whose formatting differs and exit nonzero")
	fmtCmd.Flags().StringVar(&fmtMode, "mode", "", "format mode: raw or normalized (default from config)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	if fmtWrite && fmtCheck {
		return fmt.Errorf("--write and --check are mutually exclusive")
	}

	differed := false
	for _, path := range args {
		mode, err := resolveFormatMode(filepath.Dir(path))
		if err != nil {
			return err
		}

		text, err := readDocumentFile(path)
		if err != nil {
			return err
		}

		formatted := document.Parse(text).Format(mode)

		switch {
		case fmtCheck:
			if formatted != text {
				differed = true
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
		case fmtWrite:
			if formatted == text {
				continue
			}
			if err := writeDocumentFile(path, formatted); err != nil {
				return err
			}
		default:
			fmt.Fprint(cmd.OutOrStdout(), formatted)
		}
	}

	if differed {
		return exitError{code: 1}
	}
	return nil
}

// resolveFormatMode applies flag-over-config precedence for the mode.
func resolveFormatMode(dir string) (document.FormatMode, error) {
	if fmtMode != "" {
		mode := document.FormatMode(fmtMode)
		if !mode.IsValid() {
			return "", fmt.Errorf("invalid format mode %q: must be raw or normalized", fmtMode)
		}
		return mode, nil
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return "", err
	}
	return cfg.Mode()
}

func writeDocumentFile(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
