package document

import (
	"sort"
	"strings"

	"github.com/amonks/taskdown/syntax"
)

// FormatMode selects which explicitly written fields are serialized.
type FormatMode string

const (
	// FormatRaw emits every explicitly written field.
	FormatRaw FormatMode = "raw"

	// FormatNormalized additionally omits a todo status symbol that
	// restates what the line would resolve to anyway.
	FormatNormalized FormatMode = "normalized"
)

// IsValid returns true if the mode is a known valid value.
func (m FormatMode) IsValid() bool {
	return m == FormatRaw || m == FormatNormalized
}

// Format serializes a forest back to canonical text. Attribute tokens
// are emitted in canonical order in every mode: priority, due date,
// then categories in their original relative order. Only explicitly
// written fields are emitted; inherited values never become explicit on
// a child line. Blank lines serialize as empty lines, dropping any
// source indentation. Formatting is idempotent and preserves resolved
// semantics: re-parsing the output resolves identically to the input.
func Format(forest *syntax.Forest, mode FormatMode) string {
	if forest.Len() == 0 {
		return ""
	}
	var builder strings.Builder
	for i := range forest.Nodes {
		builder.WriteString(formatNode(forest, &forest.Nodes[i], mode))
		builder.WriteByte('\n')
	}
	return builder.String()
}

func formatNode(forest *syntax.Forest, node *syntax.Node, mode FormatMode) string {
	indent := strings.Repeat("\t", node.Depth)

	switch node.Kind {
	case syntax.NodeBlank:
		return ""
	case syntax.NodeComment:
		return indent + formatComment(node.Line.Comment)
	}

	line := node.Line
	var parts []string
	if line.Status != "" && !omitStatus(forest, node, mode) {
		parts = append(parts, line.Status.Symbol())
	}
	for _, attr := range orderedAttrs(line.Attrs) {
		parts = append(parts, attr.Token())
	}
	if line.Body != "" {
		parts = append(parts, line.Body)
	}
	if line.HasComment {
		parts = append(parts, formatComment(line.Comment))
	}
	return indent + strings.Join(parts, " ")
}

// omitStatus reports whether a written todo symbol is redundant and may
// be dropped in normalized mode. It must stay when an ancestor sets a
// status, since the symbol then overrides the inherited value, and when
// the line would stop being classified as content without it.
func omitStatus(forest *syntax.Forest, node *syntax.Node, mode FormatMode) bool {
	if mode != FormatNormalized || node.Line.Status != syntax.StatusTodo {
		return false
	}
	if len(node.Line.Attrs) == 0 && node.Line.Body == "" {
		return false
	}
	return inheritedStatus(forest, node) == "" || inheritedStatus(forest, node) == syntax.StatusTodo
}

// inheritedStatus is the status the node would inherit from its nearest
// ancestor that writes one.
func inheritedStatus(forest *syntax.Forest, node *syntax.Node) syntax.Status {
	for id := node.Parent; id != syntax.NoNode; id = forest.Node(id).Parent {
		if status := forest.Node(id).Line.Status; status != "" {
			return status
		}
	}
	return ""
}

func formatComment(comment string) string {
	if comment == "" {
		return "#"
	}
	return "# " + comment
}

func orderedAttrs(attrs []syntax.Attr) []syntax.Attr {
	if len(attrs) < 2 {
		return attrs
	}
	ordered := append([]syntax.Attr(nil), attrs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return attrRank(ordered[i]) < attrRank(ordered[j])
	})
	return ordered
}

func attrRank(attr syntax.Attr) int {
	switch attr.Kind {
	case syntax.AttrPriority:
		return 1
	case syntax.AttrDue:
		return 2
	default:
		return 3
	}
}
