package matching

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/breedwise/breedwise/internal/types"
)

func sampleCatalog() []types.BreedProfile {
	return []types.BreedProfile{
		{
			Name:        "Labrador Retriever",
			Temperament: types.StringPtr("friendly, outgoing"),
			Traits: types.TraitScores{
				EnergyLevel:   types.IntPtr(4),
				Friendliness:  types.IntPtr(5),
				GroomingNeeds: types.IntPtr(3),
				Trainability:  types.IntPtr(5),
				HealthIssues:  types.IntPtr(3),
				ExerciseNeeds: types.IntPtr(4),
				SheddingLevel: types.IntPtr(4),
				BarkingLevel:  types.IntPtr(3),
			},
			Flags: types.CompatibilityFlags{
				GoodWithChildren:  types.BoolPtr(true),
				GoodWithOtherDogs: types.BoolPtr(true),
				GoodWithCats:      types.BoolPtr(false),
				ApartmentFriendly: types.BoolPtr(false),
			},
			WeightRange: &types.Range{Min: 25, Max: 36},
		},
		{
			// Sparse profile: unknown traits must still appear as nulls.
			Name: "Azawakh",
		},
	}
}

func TestBuildCatalogProjection(t *testing.T) {
	entries := BuildCatalogProjection(sampleCatalog())
	require.Len(t, entries, 2)

	assert.Equal(t, "Labrador Retriever", entries[0].Name)
	assert.Equal(t, "Azawakh", entries[1].Name)
	require.NotNil(t, entries[0].EnergyLevel)
	assert.Equal(t, 4, *entries[0].EnergyLevel)
	assert.Nil(t, entries[1].EnergyLevel)
}

func TestMarshalCatalogProjectionComplete(t *testing.T) {
	out, err := MarshalCatalogProjection(sampleCatalog())
	require.NoError(t, err)

	// Every scoring-relevant field is present for every breed, including
	// explicit nulls for unknowns.
	for _, field := range []string{
		"name", "temperament",
		"energy_level", "friendliness", "grooming_needs", "trainability",
		"health_issues", "exercise_needs", "shedding_level", "barking_level",
		"good_with_children", "good_with_other_dogs", "good_with_cats",
		"apartment_friendly", "weight_range",
	} {
		assert.Equal(t, 2, strings.Count(out, `"`+field+`"`), "field %s", field)
	}

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Nil(t, decoded[1]["energy_level"])
	assert.Nil(t, decoded[1]["weight_range"])
}

func TestMarshalCatalogProjectionDeterministic(t *testing.T) {
	a, err := MarshalCatalogProjection(sampleCatalog())
	require.NoError(t, err)
	b, err := MarshalCatalogProjection(sampleCatalog())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
