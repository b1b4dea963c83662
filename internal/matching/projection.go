package matching

import (
	"encoding/json"
	"fmt"

	"github.com/breedwise/breedwise/internal/types"
)

// CatalogEntry is the projection of one breed handed to the narrative
// collaborator. Every field that affects scoring is present; unknown values
// are serialized as explicit nulls rather than dropped, so the projection is
// complete and deterministic for a given catalog.
type CatalogEntry struct {
	Name        string  `json:"name"`
	Temperament *string `json:"temperament"`

	EnergyLevel   *int `json:"energy_level"`
	Friendliness  *int `json:"friendliness"`
	GroomingNeeds *int `json:"grooming_needs"`
	Trainability  *int `json:"trainability"`
	HealthIssues  *int `json:"health_issues"`
	ExerciseNeeds *int `json:"exercise_needs"`
	SheddingLevel *int `json:"shedding_level"`
	BarkingLevel  *int `json:"barking_level"`

	GoodWithChildren  *bool `json:"good_with_children"`
	GoodWithOtherDogs *bool `json:"good_with_other_dogs"`
	GoodWithCats      *bool `json:"good_with_cats"`
	ApartmentFriendly *bool `json:"apartment_friendly"`

	WeightRange *types.Range `json:"weight_range"`
}

// BuildCatalogProjection projects the breed catalog in catalog order.
func BuildCatalogProjection(catalog []types.BreedProfile) []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(catalog))
	for i := range catalog {
		b := &catalog[i]
		entries = append(entries, CatalogEntry{
			Name:              b.Name,
			Temperament:       b.Temperament,
			EnergyLevel:       b.Traits.EnergyLevel,
			Friendliness:      b.Traits.Friendliness,
			GroomingNeeds:     b.Traits.GroomingNeeds,
			Trainability:      b.Traits.Trainability,
			HealthIssues:      b.Traits.HealthIssues,
			ExerciseNeeds:     b.Traits.ExerciseNeeds,
			SheddingLevel:     b.Traits.SheddingLevel,
			BarkingLevel:      b.Traits.BarkingLevel,
			GoodWithChildren:  b.Flags.GoodWithChildren,
			GoodWithOtherDogs: b.Flags.GoodWithOtherDogs,
			GoodWithCats:      b.Flags.GoodWithCats,
			ApartmentFriendly: b.Flags.ApartmentFriendly,
			WeightRange:       b.WeightRange,
		})
	}
	return entries
}

// MarshalCatalogProjection renders the projection as indented JSON for the
// prompt. Field order is fixed by the struct, entry order by the catalog, so
// the same catalog always produces byte-identical output.
func MarshalCatalogProjection(catalog []types.BreedProfile) (string, error) {
	data, err := json.MarshalIndent(BuildCatalogProjection(catalog), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal catalog projection: %w", err)
	}
	return string(data), nil
}
