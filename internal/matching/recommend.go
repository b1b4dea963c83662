package matching

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/breedwise/breedwise/internal/llm"
	"github.com/breedwise/breedwise/internal/prompts"
	"github.com/breedwise/breedwise/internal/schemas"
	"github.com/breedwise/breedwise/internal/types"
)

// MatchCount is the number of recommendations a successful scoring call
// always returns.
const MatchCount = 5

// Percentage bounds the collaborator must respect: the scorer never claims a
// perfect or a failing match.
const (
	MinMatchPercentage = 60
	MaxMatchPercentage = 98
)

// Recommender produces ranked breed matches for a quiz submission.
type Recommender struct {
	client llm.Client
}

// NewRecommender creates a Recommender over the given collaborator client.
func NewRecommender(client llm.Client) *Recommender {
	return &Recommender{client: client}
}

// matchEnvelope is the expected collaborator payload shape.
type matchEnvelope struct {
	Matches []types.MatchResult `json:"matches"`
}

// Recommend validates the quiz answers, asks the collaborator for the top
// five matches against the catalog, and enforces the response contract.
// Out-of-range percentages are rejected, never clamped. The returned slice
// is sorted strictly descending by percentage; ties keep catalog order.
func (r *Recommender) Recommend(ctx context.Context, answers types.QuizAnswer, catalog []types.BreedProfile) ([]types.MatchResult, error) {
	if err := answers.Validate(); err != nil {
		return nil, &InvalidQuizAnswerError{Cause: err}
	}

	prompt, err := buildRecommendationPrompt(answers, catalog)
	if err != nil {
		return nil, err
	}

	raw, err := r.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &UnavailableError{Cause: err}
	}

	return parseMatches([]byte(raw), catalog)
}

// buildRecommendationPrompt renders the prompt template with the answers and
// the full catalog projection.
func buildRecommendationPrompt(answers types.QuizAnswer, catalog []types.BreedProfile) (string, error) {
	projection, err := MarshalCatalogProjection(catalog)
	if err != nil {
		return "", err
	}

	template := prompts.MustGet("matching.json", "breed-recommendations")
	return prompts.Format(template, map[string]string{
		"LivingSituation":        answers.LivingSituation,
		"ExerciseTime":           answers.ExerciseTime,
		"Experience":             answers.Experience,
		"FamilySituation":        answers.FamilySituation,
		"GroomingPreference":     answers.GroomingPreference,
		"SizePreference":         answers.SizePreference,
		"EnergyPreference":       answers.EnergyPreference,
		"TrainabilityImportance": answers.TrainabilityImportance,
		"Catalog":                projection,
	}), nil
}

// parseMatches validates and decodes a collaborator payload. The payload may
// be either the documented {"matches": [...]} envelope or a bare array; both
// are normalized before schema validation.
func parseMatches(raw []byte, catalog []types.BreedProfile) ([]types.MatchResult, error) {
	doc := normalizeEnvelope(raw)

	if err := schemas.ValidateBreedMatches(doc); err != nil {
		return nil, &MalformedResponseError{Reason: "response failed schema validation", Cause: err}
	}

	var envelope matchEnvelope
	if err := json.Unmarshal(doc, &envelope); err != nil {
		return nil, &MalformedResponseError{Reason: "response is not valid JSON", Cause: err}
	}

	matches := envelope.Matches
	sortMatches(matches, catalog)
	return matches, nil
}

// normalizeEnvelope wraps a bare top-level array into the envelope shape.
func normalizeEnvelope(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		wrapped := make([]byte, 0, len(trimmed)+12)
		wrapped = append(wrapped, []byte(`{"matches":`)...)
		wrapped = append(wrapped, trimmed...)
		return append(wrapped, '}')
	}
	return trimmed
}

// sortMatches re-sorts defensively by percentage descending, never trusting
// upstream ordering. Ties break by original catalog order; names the catalog
// does not know sort after known names, keeping their response order.
func sortMatches(matches []types.MatchResult, catalog []types.BreedProfile) {
	index := make(map[string]int, len(catalog))
	for i, b := range catalog {
		index[strings.ToLower(b.Name)] = i
	}

	// Tie-break ranks are fixed before sorting so they refer to catalog
	// position, not to whatever position sorting moves an entry to.
	ranks := make([]int, len(matches))
	for i, m := range matches {
		if pos, ok := index[strings.ToLower(m.BreedName)]; ok {
			ranks[i] = pos
		} else {
			ranks[i] = len(catalog) + i
		}
	}

	order := make([]int, len(matches))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if matches[i].MatchPercentage != matches[j].MatchPercentage {
			return matches[i].MatchPercentage > matches[j].MatchPercentage
		}
		return ranks[i] < ranks[j]
	})

	sorted := make([]types.MatchResult, len(matches))
	for pos, idx := range order {
		sorted[pos] = matches[idx]
	}
	copy(matches, sorted)
}
