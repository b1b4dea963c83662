package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/breedwise/breedwise/internal/types"
)

func profileWithEnergy(name string, energy *int) types.BreedProfile {
	return types.BreedProfile{
		Name:   name,
		Traits: types.TraitScores{EnergyLevel: energy},
	}
}

func findTrait(t *testing.T, winners []types.TraitWinner, trait string) types.TraitWinner {
	t.Helper()
	for _, w := range winners {
		if w.Trait == trait {
			return w
		}
	}
	t.Fatalf("trait %s not in winners", trait)
	return types.TraitWinner{}
}

func TestWinnersSoleMaximum(t *testing.T) {
	winners, err := Winners([]types.BreedProfile{
		profileWithEnergy("Border Collie", types.IntPtr(5)),
		profileWithEnergy("Bulldog", types.IntPtr(3)),
		profileWithEnergy("Basset Hound", types.IntPtr(2)),
	})
	require.NoError(t, err)

	energy := findTrait(t, winners, "energy_level")
	require.NotNil(t, energy.BreedName)
	assert.Equal(t, "Border Collie", *energy.BreedName)
	require.NotNil(t, energy.Value)
	assert.Equal(t, 5, *energy.Value)
}

func TestWinnersTieProducesNoWinner(t *testing.T) {
	winners, err := Winners([]types.BreedProfile{
		profileWithEnergy("Border Collie", types.IntPtr(5)),
		profileWithEnergy("Vizsla", types.IntPtr(5)),
		profileWithEnergy("Basset Hound", types.IntPtr(3)),
	})
	require.NoError(t, err)

	energy := findTrait(t, winners, "energy_level")
	assert.Nil(t, energy.BreedName)
	assert.Nil(t, energy.Value)
}

func TestWinnersAllUnknownProducesNoWinner(t *testing.T) {
	winners, err := Winners([]types.BreedProfile{
		profileWithEnergy("A", nil),
		profileWithEnergy("B", nil),
	})
	require.NoError(t, err)

	energy := findTrait(t, winners, "energy_level")
	assert.Nil(t, energy.BreedName)
}

func TestWinnersUnknownValuesSkipped(t *testing.T) {
	winners, err := Winners([]types.BreedProfile{
		profileWithEnergy("A", nil),
		profileWithEnergy("B", types.IntPtr(2)),
		profileWithEnergy("C", types.IntPtr(4)),
	})
	require.NoError(t, err)

	energy := findTrait(t, winners, "energy_level")
	require.NotNil(t, energy.BreedName)
	assert.Equal(t, "C", *energy.BreedName)
}

func TestWinnersTooManyBreeds(t *testing.T) {
	profiles := make([]types.BreedProfile, 5)
	for i := range profiles {
		profiles[i] = profileWithEnergy("breed", types.IntPtr(3))
	}

	_, err := Winners(profiles)
	var tooMany *TooManyBreedsError
	require.ErrorAs(t, err, &tooMany)
	assert.Equal(t, 5, tooMany.Count)
}

func TestWinnersSmallSets(t *testing.T) {
	t.Run("single profile yields no winners", func(t *testing.T) {
		winners, err := Winners([]types.BreedProfile{profileWithEnergy("A", types.IntPtr(5))})
		require.NoError(t, err)
		for _, w := range winners {
			assert.Nil(t, w.BreedName, w.Trait)
		}
	})

	t.Run("empty set yields no winners", func(t *testing.T) {
		winners, err := Winners(nil)
		require.NoError(t, err)
		assert.Len(t, winners, 7)
		for _, w := range winners {
			assert.Nil(t, w.BreedName, w.Trait)
		}
	})
}

func TestWinnersExcludesHealthIssues(t *testing.T) {
	winners, err := Winners([]types.BreedProfile{
		{Name: "A", Traits: types.TraitScores{HealthIssues: types.IntPtr(5)}},
		{Name: "B", Traits: types.TraitScores{HealthIssues: types.IntPtr(2)}},
	})
	require.NoError(t, err)

	for _, w := range winners {
		assert.NotEqual(t, "health_issues", w.Trait)
	}
	assert.Len(t, winners, 7)
}
