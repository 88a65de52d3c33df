package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the API can surface. The handlers
// package maps each kind to an HTTP status.
type ErrorKind int

const (
	// KindMalformedID: the identifier of the directly addressed resource
	// does not parse.
	KindMalformedID ErrorKind = iota
	// KindNotFound: well-formed identifier, no matching document.
	KindNotFound
	// KindReferenceNotFound: a foreign-key identifier is malformed or does
	// not resolve to an existing document.
	KindReferenceNotFound
	// KindInvalidPayload: the request body failed struct validation.
	KindInvalidPayload
	// KindPersistenceFailure: the store did not assign an identifier on
	// insert. Defensive, not an expected path.
	KindPersistenceFailure
)

type AppError struct {
	Kind   ErrorKind
	Detail string
}

func (e *AppError) Error() string {
	return e.Detail
}

// MalformedID reports an unparseable id for the resource being addressed,
// e.g. MalformedID("event") -> "Invalid event ID".
func MalformedID(name string) *AppError {
	return &AppError{Kind: KindMalformedID, Detail: fmt.Sprintf("Invalid %s ID", name)}
}

// NotFound reports a missing directly-addressed document,
// e.g. NotFound("Event") -> "Event not found".
func NotFound(name string) *AppError {
	return &AppError{Kind: KindNotFound, Detail: fmt.Sprintf("%s not found", name)}
}

// MalformedReference reports an unparseable foreign-key id,
// e.g. MalformedReference("Venue") -> "Invalid Venue ID format".
func MalformedReference(name string) *AppError {
	return &AppError{Kind: KindReferenceNotFound, Detail: fmt.Sprintf("Invalid %s ID format", name)}
}

// ReferenceNotFound reports a well-formed foreign-key id with no matching
// document in the referenced collection.
func ReferenceNotFound(name string) *AppError {
	return &AppError{Kind: KindReferenceNotFound, Detail: fmt.Sprintf("%s not found", name)}
}

func InvalidPayload(detail string) *AppError {
	return &AppError{Kind: KindInvalidPayload, Detail: detail}
}

func PersistenceFailure(detail string) *AppError {
	return &AppError{Kind: KindPersistenceFailure, Detail: detail}
}

// KindOf extracts the error kind from err, unwrapping as needed.
func KindOf(err error) (ErrorKind, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}
