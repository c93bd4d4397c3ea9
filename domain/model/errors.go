package model

import (
	"errors"
	"fmt"
)

var (
	ErrZoneNotFound      = errors.New("zone not found")
	ErrRecordSetNotFound = errors.New("record set not found")
)

// ConflictError indicates an optimistic-concurrency precondition failure on
// a record set write (remote equivalent of HTTP 412). It is the only
// retriable write failure: the importer handles it by fetching the existing
// record set, merging, and retrying once.
type ConflictError struct {
	Name string
	Type RecordType
	Err  error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("record set %s/%s: write precondition failed", e.Name, e.Type)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// IsConflict reports whether err is a precondition failure.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
