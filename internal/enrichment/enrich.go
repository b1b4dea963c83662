// Package enrichment back-fills AI-generated narrative content onto breed
// profiles: a prose summary and a balanced pros/cons list per breed.
package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/breedwise/breedwise/internal/llm"
	"github.com/breedwise/breedwise/internal/prompts"
	"github.com/breedwise/breedwise/internal/schemas"
	"github.com/breedwise/breedwise/internal/types"
)

// DefaultConcurrency bounds parallel generation requests.
const DefaultConcurrency = 4

// Store lists breeds still lacking narrative content and saves generated
// content back.
type Store interface {
	ListBreedsMissingNarrative(ctx context.Context, limit int) ([]types.BreedProfile, error)
	UpdateBreedNarrative(ctx context.Context, id int, summary *string, prosCons *types.ProsAndCons) error
}

// Result summarizes one enrichment run.
type Result struct {
	Candidates int
	Enriched   int
	Failed     int
}

// Enricher generates summaries and pros/cons for breeds that need them.
type Enricher struct {
	client      llm.Client
	store       Store
	logger      *zap.Logger
	concurrency int
}

// NewEnricher creates an Enricher
func NewEnricher(client llm.Client, store Store, logger *zap.Logger) *Enricher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enricher{
		client:      client,
		store:       store,
		logger:      logger,
		concurrency: DefaultConcurrency,
	}
}

// Run enriches up to limit breeds that are missing a summary or pros/cons.
// Breeds are processed concurrently; a failed breed is logged and skipped so
// one bad generation does not abort the batch.
func (e *Enricher) Run(ctx context.Context, limit int) (*Result, error) {
	breeds, err := e.store.ListBreedsMissingNarrative(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrichment candidates: %w", err)
	}

	result := &Result{Candidates: len(breeds)}
	e.logger.Info("starting enrichment", zap.Int("candidates", result.Candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	outcomes := make([]bool, len(breeds))
	for i, breed := range breeds {
		g.Go(func() error {
			if err := e.enrichBreed(gctx, &breed); err != nil {
				e.logger.Error("failed to enrich breed", zap.String("breed", breed.Name), zap.Error(err))
				return nil
			}
			outcomes[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	for _, ok := range outcomes {
		if ok {
			result.Enriched++
		} else {
			result.Failed++
		}
	}

	e.logger.Info("enrichment completed",
		zap.Int("enriched", result.Enriched),
		zap.Int("failed", result.Failed))
	return result, nil
}

// enrichBreed fills in whichever narrative pieces the breed is missing.
// Pieces it already has are left alone.
func (e *Enricher) enrichBreed(ctx context.Context, breed *types.BreedProfile) error {
	var summary *string
	var prosCons *types.ProsAndCons

	if breed.AISummary == nil {
		text, err := e.generateSummary(ctx, breed)
		if err != nil {
			return err
		}
		summary = &text
	}

	if breed.ProsAndCons == nil {
		pc, err := e.generateProsCons(ctx, breed)
		if err != nil {
			return err
		}
		prosCons = pc
	}

	if summary == nil && prosCons == nil {
		return nil
	}
	if err := e.store.UpdateBreedNarrative(ctx, breed.ID, summary, prosCons); err != nil {
		return err
	}
	return nil
}

func (e *Enricher) generateSummary(ctx context.Context, breed *types.BreedProfile) (string, error) {
	template := prompts.MustGet("matching.json", "breed-summary")
	prompt := prompts.Format(template, summaryPromptData(breed))

	text, err := e.client.GenerateText(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", fmt.Errorf("summary generation failed: %w", err)
	}
	if text == "" {
		return "", fmt.Errorf("summary generation returned empty text")
	}
	return text, nil
}

func (e *Enricher) generateProsCons(ctx context.Context, breed *types.BreedProfile) (*types.ProsAndCons, error) {
	template := prompts.MustGet("matching.json", "breed-pros-cons")
	prompt := prompts.Format(template, prosConsPromptData(breed))

	raw, err := e.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("pros/cons generation failed: %w", err)
	}
	if err := schemas.ValidateProsCons([]byte(raw)); err != nil {
		return nil, fmt.Errorf("pros/cons response rejected: %w", err)
	}

	var pc types.ProsAndCons
	if err := json.Unmarshal([]byte(raw), &pc); err != nil {
		return nil, fmt.Errorf("failed to parse pros/cons response: %w", err)
	}
	return &pc, nil
}

func summaryPromptData(breed *types.BreedProfile) map[string]string {
	return map[string]string{
		"BreedName":     breed.Name,
		"Temperament":   stringOr(breed.Temperament, "Unknown"),
		"Origin":        stringOr(breed.Origin, "Unknown"),
		"LifeSpan":      stringOr(breed.LifeSpan, "Unknown"),
		"Weight":        rangeOr(breed.WeightRange, "Unknown", "kg"),
		"Height":        rangeOr(breed.HeightRange, "Unknown", "cm"),
		"EnergyLevel":   scoreOr(breed.Traits.EnergyLevel),
		"Friendliness":  scoreOr(breed.Traits.Friendliness),
		"Trainability":  scoreOr(breed.Traits.Trainability),
		"ExerciseNeeds": scoreOr(breed.Traits.ExerciseNeeds),
	}
}

func prosConsPromptData(breed *types.BreedProfile) map[string]string {
	return map[string]string{
		"BreedName":         breed.Name,
		"Temperament":       stringOr(breed.Temperament, "Unknown"),
		"EnergyLevel":       scoreOr(breed.Traits.EnergyLevel),
		"Friendliness":      scoreOr(breed.Traits.Friendliness),
		"GroomingNeeds":     scoreOr(breed.Traits.GroomingNeeds),
		"Trainability":      scoreOr(breed.Traits.Trainability),
		"HealthIssues":      scoreOr(breed.Traits.HealthIssues),
		"ExerciseNeeds":     scoreOr(breed.Traits.ExerciseNeeds),
		"GoodWithChildren":  boolOr(breed.Flags.GoodWithChildren),
		"GoodWithOtherDogs": boolOr(breed.Flags.GoodWithOtherDogs),
		"ApartmentFriendly": boolOr(breed.Flags.ApartmentFriendly),
	}
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func rangeOr(r *types.Range, fallback, unit string) string {
	if r == nil {
		return fallback
	}
	if r.Min == r.Max {
		return fmt.Sprintf("%d %s", r.Min, unit)
	}
	return fmt.Sprintf("%d-%d %s", r.Min, r.Max, unit)
}

func scoreOr(v *int) string {
	if v == nil {
		return "unknown"
	}
	return strconv.Itoa(*v)
}

func boolOr(v *bool) string {
	if v == nil {
		return "unknown"
	}
	return strconv.FormatBool(*v)
}
