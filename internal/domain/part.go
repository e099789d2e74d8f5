package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Part is a single bicycle part in the parts inventory.
type Part struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Type        PartType
	Location    string
	Quantity    int
	Condition   PartCondition
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PartType classifies a bicycle part.
type PartType string

const (
	PartTypeFrame PartType = "FRAME"
	PartTypeBrake PartType = "BRAKE"
	PartTypeTire  PartType = "TIRE"
	PartTypePump  PartType = "PUMP"
	PartTypeOther PartType = "OTHER"
)

func (t PartType) String() string { return string(t) }

func (t PartType) IsValid() bool {
	switch t {
	case PartTypeFrame, PartTypeBrake, PartTypeTire, PartTypePump, PartTypeOther:
		return true
	}
	return false
}

// PartTypeValues lists every valid PartType, for error messages.
func PartTypeValues() string {
	return strings.Join([]string{
		string(PartTypeFrame), string(PartTypeBrake), string(PartTypeTire),
		string(PartTypePump), string(PartTypeOther),
	}, ", ")
}

// PartCondition describes the physical state of a part.
type PartCondition string

const (
	PartConditionNew       PartCondition = "NEW"
	PartConditionExcellent PartCondition = "EXCELLENT"
	PartConditionGood      PartCondition = "GOOD"
	PartConditionFair      PartCondition = "FAIR"
	PartConditionPoor      PartCondition = "POOR"
)

func (c PartCondition) String() string { return string(c) }

func (c PartCondition) IsValid() bool {
	switch c {
	case PartConditionNew, PartConditionExcellent, PartConditionGood,
		PartConditionFair, PartConditionPoor:
		return true
	}
	return false
}

// PartConditionValues lists every valid PartCondition, for error messages.
func PartConditionValues() string {
	return strings.Join([]string{
		string(PartConditionNew), string(PartConditionExcellent),
		string(PartConditionGood), string(PartConditionFair), string(PartConditionPoor),
	}, ", ")
}

// PartUpdateParams carries a partial update. nil means "leave unchanged".
// For Description and Notes a pointer to "" clears the field to NULL.
type PartUpdateParams struct {
	Name        *string
	Description *string
	Type        *PartType
	Location    *string
	Quantity    *int
	Condition   *PartCondition
	Notes       *string
}

// IsEmpty reports whether no field is set.
func (p PartUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Type == nil &&
		p.Location == nil && p.Quantity == nil && p.Condition == nil && p.Notes == nil
}
