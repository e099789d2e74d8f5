package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// VinylRecord is a single record in the vinyl collection.
// PurchaseDate is a calendar date; the time portion is always midnight UTC.
type VinylRecord struct {
	ID             uuid.UUID
	Title          string
	Artist         string
	ReleaseYear    int
	Genre          Genre
	PurchaseSource *string
	PurchaseDate   *time.Time
	Condition      RecordCondition
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Release year bounds for vinyl records.
const (
	MinReleaseYear = 1900
	MaxReleaseYear = 2100
)

// Genre is the music genre of a vinyl record.
type Genre string

const (
	GenreRock       Genre = "ROCK"
	GenreJazz       Genre = "JAZZ"
	GenreBlues      Genre = "BLUES"
	GenreClassical  Genre = "CLASSICAL"
	GenreElectronic Genre = "ELECTRONIC"
	GenrePop        Genre = "POP"
	GenreHipHop     Genre = "HIP_HOP"
	GenreCountry    Genre = "COUNTRY"
	GenreFolk       Genre = "FOLK"
	GenreSoul       Genre = "SOUL"
	GenrePunk       Genre = "PUNK"
	GenreMetal      Genre = "METAL"
	GenreOther      Genre = "OTHER"
)

func (g Genre) String() string { return string(g) }

func (g Genre) IsValid() bool {
	switch g {
	case GenreRock, GenreJazz, GenreBlues, GenreClassical, GenreElectronic,
		GenrePop, GenreHipHop, GenreCountry, GenreFolk, GenreSoul,
		GenrePunk, GenreMetal, GenreOther:
		return true
	}
	return false
}

// GenreValues lists every valid Genre, for error messages.
func GenreValues() string {
	return strings.Join([]string{
		string(GenreRock), string(GenreJazz), string(GenreBlues),
		string(GenreClassical), string(GenreElectronic), string(GenrePop),
		string(GenreHipHop), string(GenreCountry), string(GenreFolk),
		string(GenreSoul), string(GenrePunk), string(GenreMetal), string(GenreOther),
	}, ", ")
}

// RecordCondition grades the physical state of a vinyl record.
type RecordCondition string

const (
	RecordConditionMint      RecordCondition = "MINT"
	RecordConditionNearMint  RecordCondition = "NEAR_MINT"
	RecordConditionExcellent RecordCondition = "EXCELLENT"
	RecordConditionVeryGood  RecordCondition = "VERY_GOOD"
	RecordConditionGood      RecordCondition = "GOOD"
	RecordConditionFair      RecordCondition = "FAIR"
	RecordConditionPoor      RecordCondition = "POOR"
)

func (c RecordCondition) String() string { return string(c) }

func (c RecordCondition) IsValid() bool {
	switch c {
	case RecordConditionMint, RecordConditionNearMint, RecordConditionExcellent,
		RecordConditionVeryGood, RecordConditionGood, RecordConditionFair,
		RecordConditionPoor:
		return true
	}
	return false
}

// RecordConditionValues lists every valid RecordCondition, for error messages.
func RecordConditionValues() string {
	return strings.Join([]string{
		string(RecordConditionMint), string(RecordConditionNearMint),
		string(RecordConditionExcellent), string(RecordConditionVeryGood),
		string(RecordConditionGood), string(RecordConditionFair),
		string(RecordConditionPoor),
	}, ", ")
}

// RecordUpdateParams carries a partial update. nil means "leave unchanged".
// For PurchaseSource and Notes a pointer to "" clears the field to NULL.
type RecordUpdateParams struct {
	Title          *string
	Artist         *string
	ReleaseYear    *int
	Genre          *Genre
	PurchaseSource *string
	PurchaseDate   *time.Time
	Condition      *RecordCondition
	Notes          *string
}

// IsEmpty reports whether no field is set.
func (p RecordUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Artist == nil && p.ReleaseYear == nil &&
		p.Genre == nil && p.PurchaseSource == nil && p.PurchaseDate == nil &&
		p.Condition == nil && p.Notes == nil
}
