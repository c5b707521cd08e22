package cli

import "fmt"

// NotFoundError indicates no quest with the requested name exists.
type NotFoundError struct {
	Name string // the name that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("quest %q not found", e.Name)
}

// DuplicateError indicates an add would reuse an existing quest name.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("quest %q already exists", e.Name)
}

// ValidationError indicates a validation failure.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// CorruptDataError indicates the persisted quest file exists but could not
// be used: unreadable, unparseable, or violating a collection invariant.
type CorruptDataError struct {
	Path string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("quest file %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptDataError) Unwrap() error {
	return e.Err
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
