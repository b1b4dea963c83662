package types

import (
	"time"

	"github.com/google/uuid"
)

// MaxComparisonBreeds is the largest set of breeds a comparison may hold.
const MaxComparisonBreeds = 4

// Comparison is a user-saved set of breeds for side-by-side viewing.
type Comparison struct {
	ID        int       `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	BreedIDs  []int     `json:"breed_ids"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TraitWinner records which breed, if any, holds the strictly highest value
// for one comparable trait across a comparison set. BreedName is nil when all
// values are unknown or the maximum is tied.
type TraitWinner struct {
	Trait     string  `json:"trait"`
	BreedName *string `json:"breed_name,omitempty"`
	Value     *int    `json:"value,omitempty"`
}
