package documents

import "fmt"

// StoreError is the single error type the document accessor raises. It names
// the failed operation and collection and carries the driver cause.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("documents: %s on %s failed: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
