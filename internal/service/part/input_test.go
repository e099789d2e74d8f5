package part

import (
	"errors"
	"strings"
	"testing"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validCreateInput() Input {
	return Input{
		Name:      strPtr("Shimano 105 brake caliper"),
		Type:      strPtr("BRAKE"),
		Location:  strPtr("Shelf A3"),
		Quantity:  intPtr(2),
		Condition: strPtr("NEW"),
	}
}

func TestValidateCreate_OK(t *testing.T) {
	t.Parallel()

	in := validCreateInput()
	in.Description = strPtr("Dual pivot, front")
	in.Notes = strPtr("Bought as a pair")

	if err := in.ValidateCreate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateCreate_CollectsAllViolations(t *testing.T) {
	t.Parallel()

	in := Input{
		Name:      strPtr("   "),
		Location:  strPtr("Shelf A3"),
		Quantity:  intPtr(0),
		Condition: strPtr("NEW"),
		// Type absent entirely.
	}

	err := in.ValidateCreate()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	fields := verr.Fields()
	if len(fields) != 3 {
		t.Errorf("expected 3 violations, got %d: %v", len(fields), fields)
	}
	if fields["name"] != "Name is required" {
		t.Errorf("name: got %q", fields["name"])
	}
	if fields["quantity"] != "Quantity must be at least 1" {
		t.Errorf("quantity: got %q", fields["quantity"])
	}
	if fields["type"] != "Type is required" {
		t.Errorf("type: got %q", fields["type"])
	}
}

func TestValidateCreate_FieldChecks(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 256)

	tests := []struct {
		name   string
		mutate func(*Input)
		field  string
	}{
		{"name too long", func(in *Input) { in.Name = &long }, "name"},
		{"description too long", func(in *Input) { in.Description = &long }, "description"},
		{"unknown type", func(in *Input) { in.Type = strPtr("WHEEL") }, "type"},
		{"blank location", func(in *Input) { in.Location = strPtr("") }, "location"},
		{"missing quantity", func(in *Input) { in.Quantity = nil }, "quantity"},
		{"unknown condition", func(in *Input) { in.Condition = strPtr("MINT") }, "condition"},
		{"notes too long", func(in *Input) { in.Notes = &long }, "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := validCreateInput()
			tt.mutate(&in)

			err := in.ValidateCreate()
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := verr.Fields()[tt.field]; !ok {
				t.Errorf("missing violation for %q: %v", tt.field, verr.Fields())
			}
		})
	}
}

func TestValidateUpdate_AbsenceIsNotAViolation(t *testing.T) {
	t.Parallel()

	in := Input{Quantity: intPtr(5)}
	if err := in.ValidateUpdate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateUpdate_PresentButInvalidIsCollected(t *testing.T) {
	t.Parallel()

	in := Input{
		Name:     strPtr(""),
		Quantity: intPtr(0),
	}

	err := in.ValidateUpdate()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	fields := verr.Fields()
	if _, ok := fields["name"]; !ok {
		t.Error("blank present name must be collected")
	}
	if _, ok := fields["quantity"]; !ok {
		t.Error("zero present quantity must be collected")
	}
}

func TestValidateUpdate_EmptyPayloadRejected(t *testing.T) {
	t.Parallel()

	err := Input{}.ValidateUpdate()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields()["input"]; !ok {
		t.Errorf("expected input-level violation, got %v", verr.Fields())
	}
}

func TestUpdateParams_EmptyStringClearsOptionalText(t *testing.T) {
	t.Parallel()

	in := Input{Notes: strPtr("  "), Description: strPtr("")}
	params := in.updateParams()

	if params.Notes == nil || *params.Notes != "" {
		t.Errorf("notes: got %v, want pointer to empty string", params.Notes)
	}
	if params.Description == nil || *params.Description != "" {
		t.Errorf("description: got %v, want pointer to empty string", params.Description)
	}
}

func TestUpdateParams_TrimsPresentText(t *testing.T) {
	t.Parallel()

	in := Input{Name: strPtr("  New name  ")}
	params := in.updateParams()

	if params.Name == nil || *params.Name != "New name" {
		t.Errorf("name: got %v, want trimmed", params.Name)
	}
	if params.Quantity != nil || params.Type != nil {
		t.Error("absent fields must stay nil")
	}
}
