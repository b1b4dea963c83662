package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/breedwise/breedwise/internal/llm"
	"github.com/breedwise/breedwise/internal/types"
)

// fakeClient is a recording narrative-collaborator stub.
type fakeClient struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeClient) GenerateText(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

// fakeStore records catalog reads and submission writes.
type fakeStore struct {
	catalog     []types.BreedProfile
	listErr     error
	createErr   error
	submissions []*types.QuizSubmission
}

func (f *fakeStore) ListBreeds(_ context.Context, _, _ int) ([]types.BreedProfile, error) {
	return f.catalog, f.listErr
}

func (f *fakeStore) CreateQuizSubmission(_ context.Context, s *types.QuizSubmission) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.submissions = append(f.submissions, s)
	return nil
}

func completeAnswers() types.QuizAnswer {
	return types.QuizAnswer{
		LivingSituation:        "house with yard",
		ExerciseTime:           "1-2 hours",
		Experience:             "experienced",
		FamilySituation:        "couple, no children",
		GroomingPreference:     "moderate",
		SizePreference:         "large",
		EnergyPreference:       "high",
		TrainabilityImportance: "important",
	}
}

func namedCatalog(names ...string) []types.BreedProfile {
	catalog := make([]types.BreedProfile, len(names))
	for i, name := range names {
		catalog[i] = types.BreedProfile{ID: i + 1, Name: name}
	}
	return catalog
}

func jsonUnmarshal(s string, v any) error { return json.Unmarshal([]byte(s), v) }

func jsonMarshal(v any) (string, error) {
	b, err := json.Marshal(v)
	return string(b), err
}

func matchJSON(t *testing.T, entries []types.MatchResult) string {
	t.Helper()
	data, err := json.Marshal(map[string]any{"matches": entries})
	require.NoError(t, err)
	return string(data)
}

func fiveMatches(t *testing.T, percentages ...int) string {
	t.Helper()
	require.Len(t, percentages, 5)
	entries := make([]types.MatchResult, 5)
	for i, pct := range percentages {
		entries[i] = types.MatchResult{
			BreedName:       fmt.Sprintf("Breed %c", 'A'+i),
			MatchPercentage: pct,
			Reasoning:       "Fits the household well. Manageable for this owner.",
			Pros:            []string{"friendly", "trainable", "adaptable"},
			Cons:            []string{"needs exercise", "sheds"},
		}
	}
	return matchJSON(t, entries)
}
