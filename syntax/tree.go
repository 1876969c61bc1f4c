package syntax

// NodeKind classifies a node after tree construction.
type NodeKind string

const (
	// NodeTask is a line surfaced as a task.
	NodeTask NodeKind = "task"

	// NodeHeader is an attribute-only line with children. Headers are
	// never surfaced as tasks; their attributes flow to descendants.
	NodeHeader NodeKind = "header"

	// NodeBlank is a blank line kept for lossless formatting.
	NodeBlank NodeKind = "blank"

	// NodeComment is a comment-only line kept for lossless formatting.
	NodeComment NodeKind = "comment"
)

// NodeID addresses a node in its forest's arena. It equals the 0-based
// index of the node's line in the document.
type NodeID int

// NoNode is the parent of root nodes.
const NoNode NodeID = -1

// Node is one line placed in the indentation hierarchy.
type Node struct {
	Line Line
	Kind NodeKind

	// Depth is the effective depth after clamping. It is at most the
	// parent's depth plus one.
	Depth int

	// Parent is used only for upward traversal; children own structure.
	Parent NodeID

	Children []NodeID
}

// IsTask returns true for nodes surfaced as tasks.
func (n *Node) IsTask() bool {
	return n.Kind == NodeTask
}

// Forest is an arena of nodes built from classified lines. Node i
// corresponds to line i.
type Forest struct {
	Nodes []Node
	Roots []NodeID
}

// Node returns the node with the given ID.
func (f *Forest) Node(id NodeID) *Node {
	return &f.Nodes[id]
}

// Len returns the number of nodes.
func (f *Forest) Len() int {
	return len(f.Nodes)
}

// openNode is an entry in the ancestor stack during construction.
type openNode struct {
	id    NodeID
	depth int
}

// BuildForest arranges classified lines into a forest keyed by
// indentation depth. A line deeper than its nearest ancestor plus one is
// clamped to that depth rather than rejected. Blank and comment-only
// lines become leaf nodes under the enclosing ancestor but never open a
// new level themselves.
func BuildForest(lines []Line) *Forest {
	forest := &Forest{Nodes: make([]Node, len(lines))}

	// stack holds the open ancestor chain; entries have strictly
	// increasing effective depth.
	var stack []openNode

	for i, line := range lines {
		id := NodeID(i)
		node := Node{Line: line, Parent: NoNode}

		switch line.Kind {
		case LineBlank:
			node.Kind = NodeBlank
		case LineComment:
			node.Kind = NodeComment
		default:
			node.Kind = NodeTask
		}

		if line.Kind == LineContent {
			for len(stack) > 0 && stack[len(stack)-1].depth >= line.Depth {
				stack = stack[:len(stack)-1]
			}
			node.Depth = clampDepth(line.Depth, stack)
			attach(forest, &node, id, stack)
			forest.Nodes[i] = node
			stack = append(stack, openNode{id: id, depth: node.Depth})
			continue
		}

		// Blank and comment lines attach beneath the deepest open
		// ancestor shallower than them, without popping the stack, so
		// they never cut a parent off from later children.
		enclosing := stack
		for len(enclosing) > 0 && enclosing[len(enclosing)-1].depth >= line.Depth {
			enclosing = enclosing[:len(enclosing)-1]
		}
		node.Depth = clampDepth(line.Depth, enclosing)
		attach(forest, &node, id, enclosing)
		forest.Nodes[i] = node
	}

	reclassifyHeaders(forest)
	return forest
}

// ParseForest classifies text and builds its forest in one step.
func ParseForest(text string) *Forest {
	return BuildForest(ClassifyLines(text, 1))
}

func clampDepth(depth int, stack []openNode) int {
	if len(stack) == 0 {
		return 0
	}
	if max := stack[len(stack)-1].depth + 1; depth > max {
		return max
	}
	return depth
}

func attach(forest *Forest, node *Node, id NodeID, stack []openNode) {
	if len(stack) == 0 {
		forest.Roots = append(forest.Roots, id)
		return
	}
	parent := stack[len(stack)-1].id
	node.Parent = parent
	forest.Nodes[parent].Children = append(forest.Nodes[parent].Children, id)
}

// reclassifyHeaders promotes body-empty task nodes with at least one
// task or header child to headers. A body-empty line without such
// children stays a task with an empty body.
func reclassifyHeaders(forest *Forest) {
	for i := len(forest.Nodes) - 1; i >= 0; i-- {
		node := &forest.Nodes[i]
		if node.Kind != NodeTask || node.Line.Body != "" {
			continue
		}
		for _, child := range node.Children {
			kind := forest.Nodes[child].Kind
			if kind == NodeTask || kind == NodeHeader {
				node.Kind = NodeHeader
				break
			}
		}
	}
}
