// Package comparison computes per-trait "best of set" winners for a
// user-selected set of breeds viewed side by side.
package comparison

import (
	"fmt"

	"github.com/breedwise/breedwise/internal/types"
)

// TooManyBreedsError indicates the comparison set exceeds the allowed size.
// Caller-side validation error; the caller must shrink the set.
type TooManyBreedsError struct {
	Count int
}

func (e *TooManyBreedsError) Error() string {
	return fmt.Sprintf("too many breeds to compare: %d (maximum %d)", e.Count, types.MaxComparisonBreeds)
}

// comparableTraits are the seven traits that admit a "best of" framing.
// Health issues is excluded: a higher score is not better.
var comparableTraits = []struct {
	name  string
	value func(*types.BreedProfile) *int
}{
	{"energy_level", func(b *types.BreedProfile) *int { return b.Traits.EnergyLevel }},
	{"friendliness", func(b *types.BreedProfile) *int { return b.Traits.Friendliness }},
	{"trainability", func(b *types.BreedProfile) *int { return b.Traits.Trainability }},
	{"grooming_needs", func(b *types.BreedProfile) *int { return b.Traits.GroomingNeeds }},
	{"exercise_needs", func(b *types.BreedProfile) *int { return b.Traits.ExerciseNeeds }},
	{"shedding_level", func(b *types.BreedProfile) *int { return b.Traits.SheddingLevel }},
	{"barking_level", func(b *types.BreedProfile) *int { return b.Traits.BarkingLevel }},
}

// Winners computes, for each comparable trait, which profile holds the
// strictly highest known value. A tie at the maximum, or a trait unknown for
// every profile, produces no winner. Sets larger than the limit are rejected;
// sets smaller than two are allowed but cannot produce meaningful winners.
func Winners(profiles []types.BreedProfile) ([]types.TraitWinner, error) {
	if len(profiles) > types.MaxComparisonBreeds {
		return nil, &TooManyBreedsError{Count: len(profiles)}
	}

	winners := make([]types.TraitWinner, 0, len(comparableTraits))
	for _, trait := range comparableTraits {
		winners = append(winners, bestOf(trait.name, profiles, trait.value))
	}
	return winners, nil
}

// bestOf finds the sole strict maximum for one trait, if any.
func bestOf(name string, profiles []types.BreedProfile, value func(*types.BreedProfile) *int) types.TraitWinner {
	winner := types.TraitWinner{Trait: name}
	if len(profiles) < 2 {
		return winner
	}

	var best *int
	var bestName string
	tied := false
	for i := range profiles {
		v := value(&profiles[i])
		if v == nil {
			continue
		}
		switch {
		case best == nil || *v > *best:
			best = v
			bestName = profiles[i].Name
			tied = false
		case *v == *best:
			tied = true
		}
	}

	if best != nil && !tied {
		winner.BreedName = &bestName
		winner.Value = best
	}
	return winner
}
