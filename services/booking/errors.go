package booking

import (
	"errors"
	"fmt"
)

// Failure codes for expected business outcomes. These are returned as values,
// never panics: "not found", "draft not ready" and "slot taken" are normal
// results of the booking flow.
const (
	CodeNotFound     = "notFound"
	CodePrecondition = "precondition"
	CodeConflict     = "conflict"
	CodePersistence  = "persistence"
)

// Error is a typed booking failure.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(format string, args ...interface{}) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewPreconditionError(format string, args ...interface{}) error {
	return &Error{Code: CodePrecondition, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...interface{}) error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

func NewPersistenceError(format string, args ...interface{}) error {
	return &Error{Code: CodePersistence, Message: fmt.Sprintf(format, args...)}
}

func hasCode(err error, code string) bool {
	var be *Error
	return errors.As(err, &be) && be.Code == code
}

func IsNotFound(err error) bool     { return hasCode(err, CodeNotFound) }
func IsPrecondition(err error) bool { return hasCode(err, CodePrecondition) }
func IsConflict(err error) bool     { return hasCode(err, CodeConflict) }
func IsPersistence(err error) bool  { return hasCode(err, CodePersistence) }
