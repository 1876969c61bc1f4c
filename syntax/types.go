// Package syntax parses taskdown notation into classified lines and an
// indentation forest.
//
// Taskdown is a line-oriented todo notation. Each line carries an optional
// status symbol, metadata tokens (priority, due date, categories), free
// body text with @tags, and an optional trailing comment. Hierarchy comes
// from tab indentation; metadata flows from ancestors to descendants.
//
// Parsing never fails: malformed tokens degrade to body text and
// over-indented lines are clamped to the deepest legal depth.
package syntax

// Status represents the state of a task.
type Status string

const (
	// StatusTodo indicates a task that has not been started.
	StatusTodo Status = "todo"

	// StatusDoing indicates a task that is in progress.
	StatusDoing Status = "doing"

	// StatusDone indicates a completed task.
	StatusDone Status = "done"

	// StatusCancelled indicates a task that will not be done.
	StatusCancelled Status = "cancelled"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusDoing, StatusDone, StatusCancelled}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// IsClosed returns true when tasks with this status no longer need work.
// Closed tasks are excluded from date diagnostics.
func (s Status) IsClosed() bool {
	switch s {
	case StatusDone, StatusCancelled:
		return true
	default:
		return false
	}
}

// Symbol returns the notation character for the status.
func (s Status) Symbol() string {
	switch s {
	case StatusTodo:
		return "+"
	case StatusDoing:
		return "*"
	case StatusDone:
		return "-"
	case StatusCancelled:
		return "="
	default:
		return ""
	}
}

// StatusForSymbol maps a status character to its Status.
func StatusForSymbol(char byte) (Status, bool) {
	switch char {
	case '+':
		return StatusTodo, true
	case '*':
		return StatusDoing, true
	case '-':
		return StatusDone, true
	case '=':
		return StatusCancelled, true
	default:
		return "", false
	}
}

// AttrKind identifies a metadata token kind.
type AttrKind string

const (
	// AttrPriority is a single-letter priority token like "(A)".
	AttrPriority AttrKind = "priority"

	// AttrDue is a due-date token like "(2024-01-31)".
	AttrDue AttrKind = "due"

	// AttrCategory is a category token like "[work]".
	AttrCategory AttrKind = "category"
)

// Attr is one metadata token on a line. Kind selects which value field
// is meaningful.
type Attr struct {
	Kind AttrKind

	// Priority is the priority letter ('A'..'Z') when Kind is AttrPriority.
	Priority byte

	// Due is the date when Kind is AttrDue.
	Due Date

	// Category is the category name when Kind is AttrCategory.
	Category string
}

// Token returns the attribute in notation form.
func (a Attr) Token() string {
	switch a.Kind {
	case AttrPriority:
		return "(" + string(rune(a.Priority)) + ")"
	case AttrDue:
		return "(" + a.Due.String() + ")"
	case AttrCategory:
		return "[" + a.Category + "]"
	default:
		return ""
	}
}

// LineKind classifies a raw line before tree construction.
type LineKind string

const (
	// LineBlank is a line containing only whitespace.
	LineBlank LineKind = "blank"

	// LineComment is a line containing only a comment after indentation.
	LineComment LineKind = "comment"

	// LineContent is a line carrying a status, attributes, or body text.
	LineContent LineKind = "content"
)

// Line is the classification of one raw line of text.
type Line struct {
	// Number is the 1-based line number in the document.
	Number int

	// Depth is the count of leading tab characters. Leading spaces do
	// not contribute.
	Depth int

	// Kind distinguishes blank and comment-only lines from content.
	Kind LineKind

	// Status is the explicit status symbol, or "" when absent. Absent
	// status means the line inherits (defaulting to todo).
	Status Status

	// Attrs are the metadata tokens in their original order.
	Attrs []Attr

	// Body is the remaining text after status and attributes, with the
	// trailing comment removed.
	Body string

	// Tags are the tag names found in Body, without the @ sigil. Tag
	// text stays part of Body.
	Tags []string

	// Comment is the text after the comment marker, trimmed.
	Comment string

	// HasComment is true when the line contains a comment marker, even
	// with empty comment text.
	HasComment bool
}

// Priority returns the line's first explicit priority letter, or 0.
func (ln Line) Priority() byte {
	for _, attr := range ln.Attrs {
		if attr.Kind == AttrPriority {
			return attr.Priority
		}
	}
	return 0
}

// DueDate returns the line's first explicit due date.
func (ln Line) DueDate() (Date, bool) {
	for _, attr := range ln.Attrs {
		if attr.Kind == AttrDue {
			return attr.Due, true
		}
	}
	return Date{}, false
}

// Categories returns the line's category names in order.
func (ln Line) Categories() []string {
	var categories []string
	for _, attr := range ln.Attrs {
		if attr.Kind == AttrCategory {
			categories = append(categories, attr.Category)
		}
	}
	return categories
}
