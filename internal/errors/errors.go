//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import "fmt"

// NotFoundError indicates an operation referenced an unknown task or habit.
type NotFoundError struct {
	Kind string // "task" or "habit"
	Ref  string // id or name as given by the caller
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Ref)
}

// ValidationError indicates a malformed or missing required input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError indicates a store file read or write failure, including
// malformed JSON on load.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e PersistenceError) Unwrap() error {
	return e.Err
}
