package document

import (
	"sort"
	"strings"

	"github.com/amonks/taskdown/syntax"
)

// CandidateKind selects which name set a completion query searches.
type CandidateKind string

const (
	// KindCategory queries category names.
	KindCategory CandidateKind = "category"

	// KindTag queries tag names.
	KindTag CandidateKind = "tag"
)

// IsValid returns true if the kind is a known valid value.
func (k CandidateKind) IsValid() bool {
	return k == KindCategory || k == KindTag
}

// Index tracks the category and tag names observed in a document for
// completion. Names are reference-counted so line-level edits update
// the index without a document rescan, and queries depend only on the
// live name set, never on edit history.
type Index struct {
	categories *nameSet
	tags       *nameSet
}

// NewIndex builds an index from a full scan of classified lines. This
// is the only full scan; later updates go through Apply.
func NewIndex(lines []syntax.Line) *Index {
	index := &Index{categories: newNameSet(), tags: newNameSet()}
	for _, line := range lines {
		index.add(line)
	}
	return index
}

// Apply updates the index for an edit by removing the names introduced
// by the removed lines and adding those of the added lines.
func (x *Index) Apply(removed, added []syntax.Line) {
	for _, line := range removed {
		for _, category := range line.Categories() {
			x.categories.remove(category)
		}
		for _, tag := range line.Tags {
			x.tags.remove(tag)
		}
	}
	for _, line := range added {
		x.add(line)
	}
}

// Candidates returns the known names of the given kind with the given
// prefix, case-sensitively, in lexicographic order. The order depends
// only on which names the document currently contains, so an
// incrementally maintained index answers exactly like a fresh scan.
func (x *Index) Candidates(kind CandidateKind, prefix string) []string {
	var set *nameSet
	switch kind {
	case KindCategory:
		set = x.categories
	case KindTag:
		set = x.tags
	default:
		return nil
	}

	var matches []string
	for name := range set.counts {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches
}

// clone returns an independent copy so a new snapshot can diverge
// without mutating the published one.
func (x *Index) clone() *Index {
	return &Index{categories: x.categories.clone(), tags: x.tags.clone()}
}

func (x *Index) add(line syntax.Line) {
	for _, category := range line.Categories() {
		x.categories.add(category)
	}
	for _, tag := range line.Tags {
		x.tags.add(tag)
	}
}

// nameSet is a reference-counted string set. Entries are dropped the
// moment their count reaches zero.
type nameSet struct {
	counts map[string]int
}

func newNameSet() *nameSet {
	return &nameSet{counts: make(map[string]int)}
}

func (s *nameSet) add(name string) {
	s.counts[name]++
}

func (s *nameSet) remove(name string) {
	if s.counts[name] == 0 {
		return
	}
	s.counts[name]--
	if s.counts[name] == 0 {
		delete(s.counts, name)
	}
}

func (s *nameSet) clone() *nameSet {
	counts := make(map[string]int, len(s.counts))
	for name, count := range s.counts {
		counts[name] = count
	}
	return &nameSet{counts: counts}
}

// DueCandidate is a due-date completion suggestion.
type DueCandidate struct {
	Date syntax.Date

	// Label describes the suggestion, such as "today" or "in 1 week".
	Label string
}

// DueCandidates returns due-date suggestions relative to a reference
// date supplied by the caller.
func DueCandidates(reference syntax.Date) []DueCandidate {
	return []DueCandidate{
		{Date: reference, Label: "today"},
		{Date: reference.AddDays(1), Label: "tomorrow"},
		{Date: reference.AddDays(2), Label: "in 2 days"},
		{Date: reference.AddDays(7), Label: "in 1 week"},
	}
}
