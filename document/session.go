package document

import (
	"fmt"
	"sort"
	"sync"
)

// Session owns the parsed state for a set of open documents, keyed by
// name. Each document's state is replaced atomically on edit: readers
// hold whatever snapshot they fetched, and edits for one document must
// be applied in arrival order by its owner.
type Session struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{docs: make(map[string]*Document)}
}

// Open parses text and registers it under name, replacing any document
// already open under that name.
func (s *Session) Open(name, text string) *Document {
	doc := Parse(text)
	s.mu.Lock()
	s.docs[name] = doc
	s.mu.Unlock()
	return doc
}

// Snapshot returns the most recently published state of a document.
func (s *Session) Snapshot(name string) (*Document, bool) {
	s.mu.RLock()
	doc, ok := s.docs[name]
	s.mu.RUnlock()
	return doc, ok
}

// Edit applies an edit to an open document and publishes the result.
func (s *Session) Edit(name string, edit Edit) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDocument, name)
	}

	next, err := doc.ApplyEdit(edit)
	if err != nil {
		return nil, err
	}
	s.docs[name] = next
	return next, nil
}

// Close removes a document from the session.
func (s *Session) Close(name string) {
	s.mu.Lock()
	delete(s.docs, name)
	s.mu.Unlock()
}

// Names returns the open document names, sorted.
func (s *Session) Names() []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)
	return names
}
