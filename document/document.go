package document

import (
	"strings"

	"github.com/amonks/taskdown/syntax"
)

// Document is an immutable parsed snapshot of one taskdown text. Edits
// produce a new Document; existing snapshots stay valid for concurrent
// readers.
type Document struct {
	raw        []string
	lines      []syntax.Line
	forest     *syntax.Forest
	resolution *Resolution
	index      *Index
	version    int
}

// Parse builds a document from raw text. Parsing is total: any input,
// including empty text, yields a valid document.
func Parse(text string) *Document {
	raw := splitRawLines(text)
	lines := make([]syntax.Line, len(raw))
	for i, value := range raw {
		lines[i] = syntax.ClassifyLine(i+1, value)
	}
	forest := syntax.BuildForest(lines)
	return &Document{
		raw:        raw,
		lines:      lines,
		forest:     forest,
		resolution: Resolve(forest),
		index:      NewIndex(lines),
		version:    1,
	}
}

// Forest returns the document's node forest.
func (d *Document) Forest() *syntax.Forest {
	return d.forest
}

// Resolution returns the document's resolved attributes.
func (d *Document) Resolution() *Resolution {
	return d.resolution
}

// Lines returns the classified lines in order.
func (d *Document) Lines() []syntax.Line {
	return d.lines
}

// Text returns the document's raw text.
func (d *Document) Text() string {
	if len(d.raw) == 0 {
		return ""
	}
	return strings.Join(d.raw, "\n") + "\n"
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.raw)
}

// Version increases by one with every applied edit.
func (d *Document) Version() int {
	return d.version
}

// Format serializes the document canonically.
func (d *Document) Format(mode FormatMode) string {
	return Format(d.forest, mode)
}

// Candidates returns completion candidates from the document's index.
func (d *Document) Candidates(kind CandidateKind, prefix string) []string {
	return d.index.Candidates(kind, prefix)
}

// Overdue returns overdue diagnostics against the reference date.
func (d *Document) Overdue(reference syntax.Date) []Diagnostic {
	return Overdue(d.forest, d.resolution, reference)
}

// DateDiagnostics returns overdue and proximity diagnostics against the
// reference date.
func (d *Document) DateDiagnostics(reference syntax.Date, soonWindowDays int) []Diagnostic {
	return DateDiagnostics(d.forest, d.resolution, reference, soonWindowDays)
}

func splitRawLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
