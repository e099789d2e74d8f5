package part

import (
	"github.com/languidpie/smit-homework-v2/internal/domain"
	"github.com/languidpie/smit-homework-v2/internal/service/validate"
)

// Input holds a creation or partial-update payload for a part. Every field is
// a pointer: nil means absent, which the rule table treats as "required" in
// create mode and "leave unchanged" in update mode. Enum fields arrive as raw
// text so an unknown variant is collected as a field error, not a decode
// failure.
type Input struct {
	Name        *string
	Description *string
	Type        *string
	Location    *string
	Quantity    *int
	Condition   *string
	Notes       *string
}

// rules is the single validation table for parts, shared by create and
// update.
func (in Input) rules() []validate.Rule {
	return []validate.Rule{
		{
			Field: "name", RequiredOnCreate: true, RequiredMessage: "Name is required",
			Present: func() bool { return in.Name != nil },
			Check:   func() string { return validate.RequiredText(*in.Name, "Name") },
		},
		{
			Field: "description",
			Present: func() bool { return in.Description != nil },
			Check:   func() string { return validate.OptionalText(*in.Description, "Description") },
		},
		{
			Field: "type", RequiredOnCreate: true, RequiredMessage: "Type is required",
			Present: func() bool { return in.Type != nil },
			Check: func() string {
				return validate.Enum(domain.PartType(*in.Type).IsValid(), "Type", domain.PartTypeValues())
			},
		},
		{
			Field: "location", RequiredOnCreate: true, RequiredMessage: "Location is required",
			Present: func() bool { return in.Location != nil },
			Check:   func() string { return validate.RequiredText(*in.Location, "Location") },
		},
		{
			Field: "quantity", RequiredOnCreate: true, RequiredMessage: "Quantity is required",
			Present: func() bool { return in.Quantity != nil },
			Check:   func() string { return validate.Min(*in.Quantity, 1, "Quantity must be at least 1") },
		},
		{
			Field: "condition", RequiredOnCreate: true, RequiredMessage: "Condition is required",
			Present: func() bool { return in.Condition != nil },
			Check: func() string {
				return validate.Enum(domain.PartCondition(*in.Condition).IsValid(), "Condition", domain.PartConditionValues())
			},
		},
		{
			Field: "notes",
			Present: func() bool { return in.Notes != nil },
			Check:   func() string { return validate.OptionalText(*in.Notes, "Notes") },
		},
	}
}

// ValidateCreate checks the payload as a full creation request, collecting
// every violation before failing.
func (in Input) ValidateCreate() error {
	return validate.Run(validate.ModeCreate, in.rules())
}

// ValidateUpdate checks only the fields actually present.
func (in Input) ValidateUpdate() error {
	if in.updateParams().IsEmpty() {
		return domain.NewValidationError("input", "at least one field must be provided")
	}
	return validate.Run(validate.ModeUpdate, in.rules())
}

// updateParams converts a validated update payload into repository params.
// Required text fields are trimmed; optional text fields trim to the empty
// string when the caller submitted blank, which clears them.
func (in Input) updateParams() domain.PartUpdateParams {
	params := domain.PartUpdateParams{
		Quantity: in.Quantity,
	}
	if in.Name != nil {
		params.Name = trimmed(in.Name)
	}
	if in.Description != nil {
		params.Description = trimmed(in.Description)
	}
	if in.Type != nil {
		t := domain.PartType(*in.Type)
		params.Type = &t
	}
	if in.Location != nil {
		params.Location = trimmed(in.Location)
	}
	if in.Condition != nil {
		c := domain.PartCondition(*in.Condition)
		params.Condition = &c
	}
	if in.Notes != nil {
		params.Notes = trimmed(in.Notes)
	}
	return params
}
