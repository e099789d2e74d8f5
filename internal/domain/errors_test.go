package domain

import (
	"errors"
	"testing"
)

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()

	err := NewValidationError("name", "Name is required")
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError should unwrap to ErrValidation")
	}
}

func TestValidationError_Fields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "name", Message: "Name is required"},
		{Field: "quantity", Message: "Quantity must be at least 1"},
		{Field: "type", Message: "Type is required"},
	})

	fields := err.Fields()
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d: %v", len(fields), fields)
	}
	if fields["quantity"] != "Quantity must be at least 1" {
		t.Errorf("quantity message: got %q", fields["quantity"])
	}
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	single := NewValidationError("q", "Search query must not be blank")
	if single.Error() != "validation: q — Search query must not be blank" {
		t.Errorf("single message: got %q", single.Error())
	}

	multi := NewValidationErrors([]FieldError{{Field: "a"}, {Field: "b"}})
	if multi.Error() != "validation: 2 errors" {
		t.Errorf("multi message: got %q", multi.Error())
	}
}

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("Part", "42")
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should unwrap to ErrNotFound")
	}
	if err.Error() != "Part with id 42 not found" {
		t.Errorf("message: got %q", err.Error())
	}
}
