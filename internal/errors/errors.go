// Package errors defines the domain error taxonomy. Handlers raise these;
// the HTTP edge collapses every error kind uniformly into the failure
// envelope, so nothing here maps to an HTTP status.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind partitions domain errors for callers that branch on failure class.
type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindNotFound
	KindStore
)

// DomainError is a classified error with a stable code. Err, when set, is the
// wrapped cause (typically a store error) and stays reachable via Unwrap.
type DomainError struct {
	Kind    Kind
	Code    ErrorCode
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Conflict builds a uniqueness-violation error.
func Conflict(code ErrorCode) *DomainError {
	return &DomainError{Kind: KindConflict, Code: code, Message: MessageOf(code)}
}

// NotFound builds a missing-reference error.
func NotFound(code ErrorCode) *DomainError {
	return &DomainError{Kind: KindNotFound, Code: code, Message: MessageOf(code)}
}

// Validation builds a malformed-request error with an explicit message.
func Validation(message string) *DomainError {
	return &DomainError{Kind: KindValidation, Code: ValidationGeneral, Message: message}
}

// Store wraps an underlying storage failure.
func Store(err error) *DomainError {
	return &DomainError{Kind: KindStore, Code: SystemStoreError, Message: MessageOf(SystemStoreError), Err: err}
}

// IsKind reports whether err is a DomainError of the given kind.
func IsKind(err error, kind Kind) bool {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

// IsConflict reports whether err is a uniqueness conflict.
func IsConflict(err error) bool { return IsKind(err, KindConflict) }

// IsNotFound reports whether err is a missing-reference error.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }
