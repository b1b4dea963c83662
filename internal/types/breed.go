// Package types provides type definitions for structured data used throughout the breedwise system.
package types

import "time"

// Range is a parsed numeric measurement range. Min and Max are taken in the
// order the source text presents them; degenerate ranges (Min == Max) come
// from single-number inputs.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// TraitScores holds the eight 1-5 behavioral/care ratings for a breed.
// A nil field means the trait is unknown; a present field is always in [1,5].
type TraitScores struct {
	EnergyLevel   *int `json:"energy_level,omitempty"`
	Friendliness  *int `json:"friendliness,omitempty"`
	GroomingNeeds *int `json:"grooming_needs,omitempty"`
	Trainability  *int `json:"trainability,omitempty"`
	HealthIssues  *int `json:"health_issues,omitempty"`
	ExerciseNeeds *int `json:"exercise_needs,omitempty"`
	SheddingLevel *int `json:"shedding_level,omitempty"`
	BarkingLevel  *int `json:"barking_level,omitempty"`
}

// CompatibilityFlags holds the boolean suitability flags for a breed.
// A nil field means unknown.
type CompatibilityFlags struct {
	GoodWithChildren  *bool `json:"good_with_children,omitempty"`
	GoodWithOtherDogs *bool `json:"good_with_other_dogs,omitempty"`
	GoodWithCats      *bool `json:"good_with_cats,omitempty"`
	ApartmentFriendly *bool `json:"apartment_friendly,omitempty"`
}

// ProsAndCons is the AI-generated balanced assessment stored on a breed.
type ProsAndCons struct {
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`
}

// BreedProfile is the canonical representation of one breed. Names are unique
// case-insensitively; a profile is created once at ingestion and narrative
// fields are back-filled later by enrichment.
type BreedProfile struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	SourceID    *string `json:"source_id,omitempty"`
	Description *string `json:"description,omitempty"`
	BreedGroup  *string `json:"breed_group,omitempty"`
	Temperament *string `json:"temperament,omitempty"`
	Origin      *string `json:"origin,omitempty"`
	LifeSpan    *string `json:"life_span,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`

	WeightRange *Range `json:"weight_range,omitempty"`
	HeightRange *Range `json:"height_range,omitempty"`

	Traits TraitScores        `json:"traits"`
	Flags  CompatibilityFlags `json:"flags"`

	AISummary   *string      `json:"ai_summary,omitempty"`
	ProsAndCons *ProsAndCons `json:"pros_and_cons,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IntPtr returns a pointer to v. Convenience for building trait scores.
func IntPtr(v int) *int { return &v }

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool { return &v }

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }
