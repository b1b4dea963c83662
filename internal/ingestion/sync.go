package ingestion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/breedwise/breedwise/internal/traits"
	"github.com/breedwise/breedwise/internal/types"
)

// Catalog is the upstream breed feed.
type Catalog interface {
	GetAllBreeds(ctx context.Context) ([]APIBreed, error)
	GetBreedImageURL(ctx context.Context, imageID string) string
}

// Store persists breed profiles. CreateBreed reports false when a breed with
// the same name already exists, which makes the sync safely re-runnable.
type Store interface {
	CreateBreed(ctx context.Context, breed *types.BreedProfile) (bool, error)
}

// Result summarizes one sync run.
type Result struct {
	Fetched int
	Created int
	Skipped int
	Failed  int
}

// Syncer loads the upstream catalog into the database.
type Syncer struct {
	catalog Catalog
	store   Store
	logger  *zap.Logger
}

// NewSyncer creates a Syncer
func NewSyncer(catalog Catalog, store Store, logger *zap.Logger) *Syncer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Syncer{catalog: catalog, store: store, logger: logger}
}

// Sync fetches every upstream breed and inserts the ones not yet present.
// Individual breed failures are logged and counted but do not stop the run.
func (s *Syncer) Sync(ctx context.Context) (*Result, error) {
	apiBreeds, err := s.catalog.GetAllBreeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch breed catalog: %w", err)
	}

	result := &Result{Fetched: len(apiBreeds)}
	s.logger.Info("starting breed sync", zap.Int("fetched", result.Fetched))

	for _, apiBreed := range apiBreeds {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		profile := s.buildProfile(ctx, apiBreed)
		created, err := s.store.CreateBreed(ctx, profile)
		if err != nil {
			result.Failed++
			s.logger.Error("failed to store breed", zap.String("breed", apiBreed.Name), zap.Error(err))
			continue
		}
		if created {
			result.Created++
			s.logger.Debug("created breed", zap.String("breed", apiBreed.Name))
		} else {
			result.Skipped++
		}
	}

	s.logger.Info("breed sync completed",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed))
	return result, nil
}

// buildProfile turns one upstream record into a breed profile with parsed
// ranges and derived trait scores. Metric measurements are used throughout.
func (s *Syncer) buildProfile(ctx context.Context, apiBreed APIBreed) *types.BreedProfile {
	temperament := deref(apiBreed.Temperament)
	breedGroup := deref(apiBreed.BreedGroup)

	scores, flags := traits.Normalize(temperament, breedGroup)

	profile := &types.BreedProfile{
		Name:        apiBreed.Name,
		SourceID:    types.StringPtr(fmt.Sprintf("%d", apiBreed.ID)),
		Description: apiBreed.BredFor,
		BreedGroup:  apiBreed.BreedGroup,
		Temperament: apiBreed.Temperament,
		Origin:      apiBreed.Origin,
		LifeSpan:    apiBreed.LifeSpan,
		Traits:      scores,
		Flags:       flags,
	}

	if apiBreed.Weight != nil {
		profile.WeightRange = traits.ParseRange(apiBreed.Weight.Metric)
	}
	if apiBreed.Height != nil {
		profile.HeightRange = traits.ParseRange(apiBreed.Height.Metric)
	}

	imageURL := ""
	if apiBreed.ReferenceImageID != nil && *apiBreed.ReferenceImageID != "" {
		imageURL = s.catalog.GetBreedImageURL(ctx, *apiBreed.ReferenceImageID)
	}
	if imageURL == "" && apiBreed.Image != nil {
		imageURL = apiBreed.Image.URL
	}
	if imageURL != "" {
		profile.ImageURL = types.StringPtr(imageURL)
	}

	return profile
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
