package store

import "fmt"

// WriteError wraps a failed insert/update/upsert/delete with the table and
// operation it came from. The underlying driver error stays reachable through
// Unwrap but is never surfaced to API clients directly.
type WriteError struct {
	Op    string
	Table string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("store: %s on %s failed: %v", e.Op, e.Table, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// ReadError wraps a failed select/count.
type ReadError struct {
	Op    string
	Table string
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("store: %s on %s failed: %v", e.Op, e.Table, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
