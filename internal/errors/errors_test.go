//nolint:testpackage // Tests require internal access for thorough testing
package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name string
		err  NotFoundError
		want string
	}{
		{
			name: "task by id",
			err:  NotFoundError{Kind: "task", Ref: "42"},
			want: "task not found: 42",
		},
		{
			name: "habit by name",
			err:  NotFoundError{Kind: "habit", Ref: "Exercise"},
			want: "habit not found: Exercise",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("NotFoundError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError{Field: "title", Reason: "must not be empty"}
	want := "invalid title: must not be empty"
	if got := err.Error(); got != want {
		t.Errorf("ValidationError.Error() = %q, want %q", got, want)
	}
}

func TestPersistenceErrorUnwrap(t *testing.T) {
	err := PersistenceError{Op: "load", Path: "/tmp/tracker.json", Err: fs.ErrNotExist}
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("PersistenceError should unwrap to its cause")
	}

	want := "load /tmp/tracker.json: file does not exist"
	if got := err.Error(); got != want {
		t.Errorf("PersistenceError.Error() = %q, want %q", got, want)
	}
}
