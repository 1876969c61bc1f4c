package document

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

func TestSession_OpenSnapshotClose(t *testing.T) {
	session := NewSession()

	doc := session.Open("todo.td", "milk\n")
	snap, ok := session.Snapshot("todo.td")
	if !ok || snap != doc {
		t.Fatalf("Snapshot = %v, %v, want the opened document", snap, ok)
	}

	session.Close("todo.td")
	if _, ok := session.Snapshot("todo.td"); ok {
		t.Error("Snapshot after Close ok = true, want false")
	}
}

func TestSession_EditPublishesNewSnapshot(t *testing.T) {
	session := NewSession()
	old := session.Open("todo.td", "milk\n")

	next, err := session.Edit("todo.td", Edit{StartLine: 0, EndLine: 1, NewText: "- milk\n"})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}

	snap, _ := session.Snapshot("todo.td")
	if snap != next {
		t.Error("Snapshot is not the edited document")
	}
	if old.Text() != "milk\n" {
		t.Errorf("old snapshot changed to %q", old.Text())
	}
	if next.Text() != "- milk\n" {
		t.Errorf("new snapshot Text = %q, want %q", next.Text(), "- milk\n")
	}
}

func TestSession_EditUnknown(t *testing.T) {
	session := NewSession()
	if _, err := session.Edit("missing.td", Edit{}); !errors.Is(err, ErrUnknownDocument) {
		t.Errorf("err = %v, want ErrUnknownDocument", err)
	}
}

func TestSession_FailedEditKeepsSnapshot(t *testing.T) {
	session := NewSession()
	doc := session.Open("todo.td", "milk\n")

	if _, err := session.Edit("todo.td", Edit{StartLine: 0, EndLine: 9}); !errors.Is(err, ErrEditOutOfRange) {
		t.Fatalf("err = %v, want ErrEditOutOfRange", err)
	}
	snap, _ := session.Snapshot("todo.td")
	if snap != doc {
		t.Error("failed edit replaced the snapshot")
	}
}

func TestSession_ReopenReplaces(t *testing.T) {
	session := NewSession()
	session.Open("todo.td", "old\n")
	session.Open("todo.td", "new\n")

	snap, _ := session.Snapshot("todo.td")
	if snap.Text() != "new\n" {
		t.Errorf("Text = %q, want %q", snap.Text(), "new\n")
	}
	if snap.Version() != 1 {
		t.Errorf("Version = %d, want 1", snap.Version())
	}
}

func TestSession_Names(t *testing.T) {
	session := NewSession()
	session.Open("b.td", "")
	session.Open("a.td", "")
	session.Open("c.td", "")
	session.Close("c.td")

	if got := session.Names(); !reflect.DeepEqual(got, []string{"a.td", "b.td"}) {
		t.Errorf("Names = %v, want [a.td b.td]", got)
	}
}

func TestSession_ConcurrentReaders(t *testing.T) {
	session := NewSession()
	session.Open("todo.td", "a\nb\nc\n")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				snap, ok := session.Snapshot("todo.td")
				if !ok {
					t.Error("Snapshot ok = false")
					return
				}
				if snap.LineCount() == 0 {
					t.Error("snapshot has no lines")
					return
				}
				_ = snap.Format(FormatRaw)
			}
		}()
	}
	for i := 0; i < 50; i++ {
		if _, err := session.Edit("todo.td", Edit{StartLine: 0, EndLine: 1, NewText: "a\n"}); err != nil {
			t.Fatalf("Edit: %v", err)
		}
	}
	wg.Wait()
}
