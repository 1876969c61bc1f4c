package document

import (
	"reflect"
	"testing"

	"github.com/amonks/taskdown/syntax"
)

func TestIndexCandidates_Sorted(t *testing.T) {
	lines := syntax.ClassifyLines("[work] a\n[home] b\n[work] c @zed\nd @alpha @zed\n", 1)
	index := NewIndex(lines)

	if got := index.Candidates(KindCategory, ""); !reflect.DeepEqual(got, []string{"home", "work"}) {
		t.Errorf("categories = %v, want [home work]", got)
	}
	if got := index.Candidates(KindTag, ""); !reflect.DeepEqual(got, []string{"alpha", "zed"}) {
		t.Errorf("tags = %v, want [alpha zed]", got)
	}
}

func TestIndexCandidates_Prefix(t *testing.T) {
	lines := syntax.ClassifyLines("[workshop] a\n[work] b\n[home] c\n", 1)
	index := NewIndex(lines)

	tests := []struct {
		prefix string
		want   []string
	}{
		{"work", []string{"work", "workshop"}},
		{"works", []string{"workshop"}},
		{"h", []string{"home"}},
		{"x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			if got := index.Candidates(KindCategory, tt.prefix); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Candidates(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestIndexApply_MatchesFullRescan(t *testing.T) {
	before := syntax.ClassifyLines("[work] a @x\n[home] b\n[work] c\n", 1)
	after := syntax.ClassifyLines("[work] a @x\n[garden] b @y\n", 1)

	index := NewIndex(before)
	index.Apply(before[1:], after[1:])

	fresh := NewIndex(after)
	for _, kind := range []CandidateKind{KindCategory, KindTag} {
		got := index.Candidates(kind, "")
		want := fresh.Candidates(kind, "")
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s after Apply = %v, full rescan = %v", kind, got, want)
		}
	}
}

func TestIndexApply_NameSurvivesWhileReferenced(t *testing.T) {
	lines := syntax.ClassifyLines("[work] a\n[work] b\n", 1)
	index := NewIndex(lines)

	index.Apply(lines[:1], nil)
	if got := index.Candidates(KindCategory, ""); !reflect.DeepEqual(got, []string{"work"}) {
		t.Errorf("after one removal = %v, want [work]", got)
	}

	index.Apply(lines[1:], nil)
	if got := index.Candidates(KindCategory, ""); got != nil {
		t.Errorf("after both removals = %v, want nil", got)
	}
}

func TestIndexApply_ReaddedNameMatchesFullRescan(t *testing.T) {
	lines := syntax.ClassifyLines("[z] one\n[b] two\n", 1)
	index := NewIndex(lines)

	// Remove the z line, then add an equivalent line back elsewhere.
	index.Apply(lines[:1], nil)
	readded := syntax.ClassifyLines("[z] three\n", 3)
	index.Apply(nil, readded)

	fresh := NewIndex(append(append([]syntax.Line(nil), lines[1]), readded...))
	got := index.Candidates(KindCategory, "")
	want := fresh.Candidates(KindCategory, "")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates = %v, full rescan = %v", got, want)
	}
	if !reflect.DeepEqual(got, []string{"b", "z"}) {
		t.Errorf("Candidates = %v, want [b z]", got)
	}
}

func TestDueCandidates(t *testing.T) {
	reference := syntax.Date{Year: 2024, Month: 3, Day: 1}
	got := DueCandidates(reference)

	want := []DueCandidate{
		{Date: syntax.Date{Year: 2024, Month: 3, Day: 1}, Label: "today"},
		{Date: syntax.Date{Year: 2024, Month: 3, Day: 2}, Label: "tomorrow"},
		{Date: syntax.Date{Year: 2024, Month: 3, Day: 3}, Label: "in 2 days"},
		{Date: syntax.Date{Year: 2024, Month: 3, Day: 8}, Label: "in 1 week"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DueCandidates = %v, want %v", got, want)
	}
}
