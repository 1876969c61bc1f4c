// Package document computes effective task attributes for a parsed
// taskdown forest and answers the queries an editor integration needs:
// canonical formatting, completion candidates, date diagnostics, and
// incremental updates with atomic snapshot publication.
package document

import "github.com/amonks/taskdown/syntax"

// Resolved is the effective attribute set of a task after inheritance.
type Resolved struct {
	// Status is the effective status; never empty, defaulting to todo.
	Status syntax.Status

	// Priority is the effective priority letter, or 0 when unset.
	Priority byte

	// Due is the effective due date; HasDue reports whether one is set.
	Due    syntax.Date
	HasDue bool

	// Categories is the union of inherited and own categories, in
	// first-seen order from the root down.
	Categories []string

	// Tags are the line's own tags.
	Tags []string
}

// Resolution holds per-node resolved attributes for a forest. Only task
// nodes carry attributes; headers contribute to their descendants but
// are never surfaced.
type Resolution struct {
	byNode []*Resolved

	// TaskIDs lists the task nodes in document order.
	TaskIDs []syntax.NodeID
}

// Task returns the resolved attributes for a node, or nil when the node
// is not a task.
func (r *Resolution) Task(id syntax.NodeID) *Resolved {
	if int(id) < 0 || int(id) >= len(r.byNode) {
		return nil
	}
	return r.byNode[id]
}

// inherited is the attribute context carried from ancestors. Fields are
// merged independently: an explicit value at a node replaces the
// inherited one for that field only, while categories accumulate.
type inherited struct {
	status     syntax.Status
	priority   byte
	due        syntax.Date
	hasDue     bool
	categories []string
}

// merge layers a line's explicit attributes over the inherited context.
// The returned context is what the line's descendants see.
func (ctx inherited) merge(line syntax.Line) inherited {
	next := ctx
	if line.Status != "" {
		next.status = line.Status
	}
	if priority := line.Priority(); priority != 0 {
		next.priority = priority
	}
	if due, ok := line.DueDate(); ok {
		next.due = due
		next.hasDue = true
	}
	for _, category := range line.Categories() {
		if !containsString(next.categories, category) {
			// Copy on first growth so sibling branches stay isolated.
			next.categories = append(next.categories[:len(next.categories):len(next.categories)], category)
		}
	}
	return next
}

// Resolve computes effective attributes for every task in the forest with
// a single pre-order pass.
func Resolve(forest *syntax.Forest) *Resolution {
	resolution := &Resolution{byNode: make([]*Resolved, forest.Len())}
	for _, root := range forest.Roots {
		resolveNode(forest, root, inherited{}, resolution)
	}
	resolution.collectTasks()
	return resolution
}

// collectTasks rebuilds TaskIDs from byNode in document order.
func (r *Resolution) collectTasks() {
	r.TaskIDs = r.TaskIDs[:0]
	for id, resolved := range r.byNode {
		if resolved != nil {
			r.TaskIDs = append(r.TaskIDs, syntax.NodeID(id))
		}
	}
}

func resolveNode(forest *syntax.Forest, id syntax.NodeID, ctx inherited, resolution *Resolution) {
	node := forest.Node(id)

	switch node.Kind {
	case syntax.NodeBlank, syntax.NodeComment:
		// Pass-through; these never carry attributes or children that
		// could observe them.

	case syntax.NodeHeader:
		ctx = ctx.merge(node.Line)

	case syntax.NodeTask:
		ctx = ctx.merge(node.Line)
		status := ctx.status
		if status == "" {
			status = syntax.StatusTodo
		}
		resolved := &Resolved{
			Status:     status,
			Priority:   ctx.priority,
			Due:        ctx.due,
			HasDue:     ctx.hasDue,
			Categories: append([]string(nil), ctx.categories...),
			Tags:       append([]string(nil), node.Line.Tags...),
		}
		resolution.byNode[id] = resolved
	}

	for _, child := range node.Children {
		resolveNode(forest, child, ctx, resolution)
	}
}

func containsString(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
