package traits

import (
	"strings"

	"github.com/breedwise/breedwise/internal/types"
)

// baselineScore is the neutral rating assigned when the temperament text says
// nothing about a trait.
const baselineScore = 3

// keywordRule holds the positive and negative keyword sets for one
// keyword-scored trait. Matching is case-insensitive substring containment;
// each keyword counts independently, so a description hitting two positive
// keywords moves the score by +2 before clamping.
type keywordRule struct {
	positive []string
	negative []string
}

// Keyword tables for the seven keyword-scored traits. healthIssues is not
// keyword-scored; see healthScore.
var keywordRules = map[string]keywordRule{
	"energy": {
		positive: []string{"energetic", "active", "lively"},
		negative: []string{"calm", "gentle", "lazy"},
	},
	"friendliness": {
		positive: []string{"friendly", "outgoing", "social"},
		negative: []string{"aloof", "reserved", "aggressive"},
	},
	"grooming": {
		positive: []string{"long", "coat", "fluffy"},
		negative: []string{"short", "smooth"},
	},
	"trainability": {
		positive: []string{"intelligent", "obedient", "eager"},
		negative: []string{"stubborn", "independent"},
	},
	"exercise": {
		positive: []string{"active", "energetic", "working"},
		negative: []string{"calm", "gentle"},
	},
	"shedding": {
		positive: []string{"double coat", "long"},
		negative: []string{"short", "wire"},
	},
	"barking": {
		positive: []string{"alert", "watchful"},
		negative: []string{"quiet", "calm"},
	},
}

// Normalize derives the eight trait scores and four compatibility flags from
// a breed's free-text temperament and breed-group label. Same input always
// produces the same output.
func Normalize(temperament, breedGroup string) (types.TraitScores, types.CompatibilityFlags) {
	text := strings.ToLower(temperament)
	group := strings.ToLower(breedGroup)

	scores := types.TraitScores{
		EnergyLevel:   scoreKeywords(text, keywordRules["energy"]),
		Friendliness:  scoreKeywords(text, keywordRules["friendliness"]),
		GroomingNeeds: scoreKeywords(text, keywordRules["grooming"]),
		Trainability:  scoreKeywords(text, keywordRules["trainability"]),
		HealthIssues:  healthScore(group),
		ExerciseNeeds: scoreKeywords(text, keywordRules["exercise"]),
		SheddingLevel: scoreKeywords(text, keywordRules["shedding"]),
		BarkingLevel:  scoreKeywords(text, keywordRules["barking"]),
	}

	flags := types.CompatibilityFlags{
		GoodWithChildren:  types.BoolPtr(containsAny(text, "gentle", "patient", "friendly")),
		GoodWithOtherDogs: types.BoolPtr(containsAny(text, "social", "friendly") || !strings.Contains(text, "aggressive")),
		GoodWithCats:      types.BoolPtr(strings.Contains(text, "gentle") || containsAny(group, "toy", "non-sporting")),
		ApartmentFriendly: types.BoolPtr(containsAny(group, "toy", "non-sporting") || strings.Contains(text, "calm")),
	}

	return scores, flags
}

// scoreKeywords applies a keyword rule to lowered temperament text: start at
// the baseline, +1 per positive hit, -1 per negative hit, clamp to [1,5].
// Only the net sum matters; evaluation order is irrelevant.
func scoreKeywords(text string, rule keywordRule) *int {
	score := baselineScore
	for _, kw := range rule.positive {
		if strings.Contains(text, kw) {
			score++
		}
	}
	for _, kw := range rule.negative {
		if strings.Contains(text, kw) {
			score--
		}
	}
	return types.IntPtr(clamp(score, 1, 5))
}

// healthScore is a coarse breed-group lookup, deliberately separate from the
// keyword scorer: toy breeds trend toward more health issues, working breeds
// toward fewer, everything else is neutral.
func healthScore(group string) *int {
	switch {
	case strings.Contains(group, "toy"):
		return types.IntPtr(4)
	case strings.Contains(group, "working"):
		return types.IntPtr(2)
	default:
		return types.IntPtr(baselineScore)
	}
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
