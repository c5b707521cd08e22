package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Name: "Slay Dragon"}
	want := `quest "Slay Dragon" not found`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestDuplicateError(t *testing.T) {
	err := &DuplicateError{Name: "Slay Dragon"}
	want := `quest "Slay Dragon" already exists`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "name", Message: "must not be empty"}
	want := "invalid name: must not be empty"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}

	// Without a field, just the message
	err = &ValidationError{Message: "something went wrong"}
	if err.Error() != "something went wrong" {
		t.Errorf("got %q", err.Error())
	}
}

func TestCorruptDataError(t *testing.T) {
	inner := fmt.Errorf("unexpected end of JSON input")
	err := &CorruptDataError{Path: "quests.json", Err: inner}

	want := "quest file quests.json is corrupt: unexpected end of JSON input"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, inner) {
		t.Error("CorruptDataError should unwrap to its cause")
	}
}

func TestFormatError(t *testing.T) {
	if got := FormatError(nil); got != "" {
		t.Errorf("FormatError(nil) = %q, want empty", got)
	}

	err := &NotFoundError{Name: "X"}
	want := `error: quest "X" not found`
	if got := FormatError(err); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
