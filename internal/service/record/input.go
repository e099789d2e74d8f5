package record

import (
	"strings"
	"time"

	"github.com/languidpie/smit-homework-v2/internal/domain"
	"github.com/languidpie/smit-homework-v2/internal/service/validate"
)

// dateLayout is the wire format for purchase dates.
const dateLayout = "2006-01-02"

// Input holds a creation or partial-update payload for a vinyl record. Every
// field is a pointer: nil means absent, which the rule table treats as
// "required" in create mode and "leave unchanged" in update mode. Enum fields
// and the purchase date arrive as raw text so a malformed value is collected
// as a field error, not a decode failure.
type Input struct {
	Title          *string
	Artist         *string
	ReleaseYear    *int
	Genre          *string
	PurchaseSource *string
	PurchaseDate   *string
	Condition      *string
	Notes          *string
}

// rules is the single validation table for records, shared by create and
// update.
func (in Input) rules() []validate.Rule {
	return []validate.Rule{
		{
			Field: "title", RequiredOnCreate: true, RequiredMessage: "Title is required",
			Present: func() bool { return in.Title != nil },
			Check:   func() string { return validate.RequiredText(*in.Title, "Title") },
		},
		{
			Field: "artist", RequiredOnCreate: true, RequiredMessage: "Artist is required",
			Present: func() bool { return in.Artist != nil },
			Check:   func() string { return validate.RequiredText(*in.Artist, "Artist") },
		},
		{
			Field: "releaseYear", RequiredOnCreate: true, RequiredMessage: "Release year is required",
			Present: func() bool { return in.ReleaseYear != nil },
			Check: func() string {
				return validate.Range(*in.ReleaseYear, domain.MinReleaseYear, domain.MaxReleaseYear,
					"Release year must be 1900 or later",
					"Release year must be 2100 or earlier")
			},
		},
		{
			Field: "genre", RequiredOnCreate: true, RequiredMessage: "Genre is required",
			Present: func() bool { return in.Genre != nil },
			Check: func() string {
				return validate.Enum(domain.Genre(*in.Genre).IsValid(), "Genre", domain.GenreValues())
			},
		},
		{
			Field: "purchaseSource",
			Present: func() bool { return in.PurchaseSource != nil },
			Check:   func() string { return validate.OptionalText(*in.PurchaseSource, "Purchase source") },
		},
		{
			Field: "purchaseDate",
			Present: func() bool { return in.PurchaseDate != nil },
			Check: func() string {
				if _, err := time.Parse(dateLayout, strings.TrimSpace(*in.PurchaseDate)); err != nil {
					return "Purchase date must be a valid date in YYYY-MM-DD format"
				}
				return ""
			},
		},
		{
			Field: "condition", RequiredOnCreate: true, RequiredMessage: "Condition is required",
			Present: func() bool { return in.Condition != nil },
			Check: func() string {
				return validate.Enum(domain.RecordCondition(*in.Condition).IsValid(), "Condition", domain.RecordConditionValues())
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

// ValidateUpdate checks only the fields actually present. Emptiness is
// judged on the raw payload so a lone malformed purchase date still reports
// the format violation.
func (in Input) ValidateUpdate() error {
	if in.isEmpty() {
		return domain.NewValidationError("input", "at least one field must be provided")
	}
	return validate.Run(validate.ModeUpdate, in.rules())
}

func (in Input) isEmpty() bool {
	return in.Title == nil && in.Artist == nil && in.ReleaseYear == nil &&
		in.Genre == nil && in.PurchaseSource == nil && in.PurchaseDate == nil &&
		in.Condition == nil && in.Notes == nil
}

// purchaseDate parses the validated wire value. nil when the field is absent
// or malformed.
func (in Input) purchaseDate() *time.Time {
	if in.PurchaseDate == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*in.PurchaseDate))
	if err != nil {
		return nil
	}
	return &t
}

// updateParams converts a validated update payload into repository params.
// Required text fields are trimmed; optional text fields trim to the empty
// string when the caller submitted blank, which clears them. A purchase date
// can be set but not cleared: nil always means unchanged.
func (in Input) updateParams() domain.RecordUpdateParams {
	params := domain.RecordUpdateParams{
		ReleaseYear:  in.ReleaseYear,
		PurchaseDate: in.purchaseDate(),
	}
	if in.Title != nil {
		params.Title = trimmed(in.Title)
	}
	if in.Artist != nil {
		params.Artist = trimmed(in.Artist)
	}
	if in.Genre != nil {
		g := domain.Genre(*in.Genre)
		params.Genre = &g
	}
	if in.PurchaseSource != nil {
		params.PurchaseSource = trimmed(in.PurchaseSource)
	}
	if in.Condition != nil {
		c := domain.RecordCondition(*in.Condition)
		params.Condition = &c
	}
	if in.Notes != nil {
		params.Notes = trimmed(in.Notes)
	}
	return params
}
