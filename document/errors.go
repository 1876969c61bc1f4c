package document

import "errors"

// ErrEditOutOfRange is returned when an edit's line range does not fit
// the document it is applied to.
var ErrEditOutOfRange = errors.New("edit range out of bounds")

// ErrUnknownDocument is returned when a session operation names a
// document that is not open.
var ErrUnknownDocument = errors.New("document is not open")
