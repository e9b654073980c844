package catalog

import (
	"errors"
	"strings"
)

var (
	// ErrDuplicate indicates an add or edit targeted a natural key already
	// used by a different record.
	ErrDuplicate = errors.New("natural key already in use")
	// ErrNotFound indicates an edit or delete targeted an unknown identifier.
	ErrNotFound = errors.New("record not found")
	// ErrMissingReference indicates a write referenced a record in another
	// family that does not exist.
	ErrMissingReference = errors.New("referenced record does not exist")
	// ErrInvalid indicates a field value violated a business rule.
	ErrInvalid = errors.New("invalid field value")
)

// Reason codes carried on mutation responses. The empty string means success.
const (
	ReasonDuplicate        = "duplicate"
	ReasonNotFound         = "not_found"
	ReasonMissingReference = "missing_reference"
	ReasonInvalid          = "invalid"
	ReasonStore            = "store"
)

// Kind classifies an access-module error into a protocol reason code. Any
// error that is not one of the declared sentinels is reported as a store
// failure; the underlying fault never crosses the process boundary.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDuplicate):
		return ReasonDuplicate
	case errors.Is(err, ErrNotFound):
		return ReasonNotFound
	case errors.Is(err, ErrMissingReference):
		return ReasonMissingReference
	case errors.Is(err, ErrInvalid):
		return ReasonInvalid
	default:
		return ReasonStore
	}
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure. The driver exposes no sentinel for this, so the message is the
// contract.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
