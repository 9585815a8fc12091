// Package store holds the errors every repository backend translates its
// driver errors into.
package store

import "errors"

var (
	ErrNotFound    = errors.New("record not found")
	ErrMalformedID = errors.New("malformatted id")
	ErrDuplicate   = errors.New("duplicate key")
)
