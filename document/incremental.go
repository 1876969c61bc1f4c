package document

import (
	"fmt"

	"github.com/amonks/taskdown/syntax"
)

// Edit replaces a range of lines with new text. Line numbers are
// 0-based; the range is half-open, so StartLine == EndLine inserts
// before StartLine without removing anything.
type Edit struct {
	StartLine int
	EndLine   int

	// NewText is the replacement text. Empty text deletes the range.
	NewText string
}

// ApplyEdit produces a new document with the edit applied. Only the
// edited lines are reclassified; the forest is rebuilt with one linear
// pass over the retained classifications, attributes are re-resolved
// from the edit's enclosing root downward, and the completion index is
// updated by diffing the removed and added lines. The receiver is left
// untouched, so published snapshots stay valid for readers.
//
// The result is always identical to reparsing the edited text from
// scratch; the reuse is purely a performance optimization.
func (d *Document) ApplyEdit(edit Edit) (*Document, error) {
	if edit.StartLine < 0 || edit.StartLine > edit.EndLine || edit.EndLine > len(d.raw) {
		return nil, fmt.Errorf("%w: [%d, %d) of %d lines", ErrEditOutOfRange, edit.StartLine, edit.EndLine, len(d.raw))
	}

	newRaw := splitRawLines(edit.NewText)
	added := make([]syntax.Line, len(newRaw))
	for i, value := range newRaw {
		added[i] = syntax.ClassifyLine(edit.StartLine+i+1, value)
	}
	removed := d.lines[edit.StartLine:edit.EndLine]

	raw := make([]string, 0, len(d.raw)-len(removed)+len(newRaw))
	raw = append(raw, d.raw[:edit.StartLine]...)
	raw = append(raw, newRaw...)
	raw = append(raw, d.raw[edit.EndLine:]...)

	lines := make([]syntax.Line, 0, len(raw))
	lines = append(lines, d.lines[:edit.StartLine]...)
	lines = append(lines, added...)
	for _, line := range d.lines[edit.EndLine:] {
		line.Number = len(lines) + 1
		lines = append(lines, line)
	}

	forest := syntax.BuildForest(lines)

	index := d.index.clone()
	index.Apply(removed, added)

	next := &Document{
		raw:        raw,
		lines:      lines,
		forest:     forest,
		resolution: reresolve(forest, d.resolution, edit.StartLine),
		index:      index,
		version:    d.version + 1,
	}
	return next, nil
}

// reresolve recomputes attributes from the root enclosing the first
// edited line downward. Roots wholly before the edit keep their previous
// values: their lines and node IDs are unchanged, and inheritance flows
// strictly downward, so nothing above or before the edit can differ.
func reresolve(forest *syntax.Forest, previous *Resolution, firstEdited int) *Resolution {
	resolution := &Resolution{byNode: make([]*Resolved, forest.Len())}

	fromRoot := len(forest.Roots)
	for i, root := range forest.Roots {
		if int(root) > firstEdited {
			break
		}
		fromRoot = i
	}

	var copyBelow syntax.NodeID
	if fromRoot < len(forest.Roots) {
		copyBelow = forest.Roots[fromRoot]
	} else {
		copyBelow = syntax.NodeID(forest.Len())
	}
	copy(resolution.byNode[:copyBelow], previous.byNode[:copyBelow])

	for _, root := range forest.Roots[fromRoot:] {
		resolveNode(forest, root, inherited{}, resolution)
	}

	resolution.collectTasks()
	return resolution
}
