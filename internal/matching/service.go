package matching

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/breedwise/breedwise/internal/types"
)

// CatalogLimit caps how many breeds are projected into a single prompt.
const CatalogLimit = 100

// Store is the persistence surface the service needs: the catalog read for
// the projection and the write for validated submissions.
type Store interface {
	ListBreeds(ctx context.Context, limit, offset int) ([]types.BreedProfile, error)
	CreateQuizSubmission(ctx context.Context, submission *types.QuizSubmission) error
}

// Identity names who a submission belongs to: either an authenticated user
// or an anonymous session, never both and never neither.
type Identity struct {
	UserID    *uuid.UUID
	SessionID *string
}

// Validate enforces the exactly-one rule.
func (id Identity) Validate() error {
	switch {
	case id.UserID != nil && id.SessionID != nil:
		return &InvalidIdentityError{Reason: "user id and session id are mutually exclusive"}
	case id.UserID == nil && (id.SessionID == nil || *id.SessionID == ""):
		return &InvalidIdentityError{Reason: "a user id or a session id is required"}
	}
	return nil
}

// Service orchestrates a quiz submission: validation, scoring through the
// recommender, and persistence of the validated result set. Nothing is
// persisted when scoring fails.
type Service struct {
	recommender *Recommender
	store       Store
}

// NewService creates a quiz submission service.
func NewService(recommender *Recommender, store Store) *Service {
	return &Service{recommender: recommender, store: store}
}

// Submit scores one quiz submission and persists it under the given
// identity. Validation failures surface before any collaborator call.
func (s *Service) Submit(ctx context.Context, identity Identity, answers types.QuizAnswer) (*types.QuizSubmission, error) {
	if err := answers.Validate(); err != nil {
		return nil, &InvalidQuizAnswerError{Cause: err}
	}
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	catalog, err := s.store.ListBreeds(ctx, CatalogLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load breed catalog: %w", err)
	}

	results, err := s.recommender.Recommend(ctx, answers, catalog)
	if err != nil {
		return nil, err
	}

	submission := &types.QuizSubmission{
		UserID:    identity.UserID,
		SessionID: identity.SessionID,
		Answers:   answers,
		Results:   results,
	}
	if err := s.store.CreateQuizSubmission(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to persist quiz submission: %w", err)
	}

	return submission, nil
}
