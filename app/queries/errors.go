package queries

import "errors"

// ErrNotFound is returned when an operation addresses an id that has
// no row. Controllers translate it to a 404; it is a normal outcome,
// not a failure.
var ErrNotFound = errors.New("record not found")
