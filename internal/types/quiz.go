package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// QuizAnswer maps the eight fixed quiz questions to the option the user
// selected. Every question is required; a submission missing any is invalid.
type QuizAnswer struct {
	LivingSituation        string `json:"living_situation" validate:"required"`
	ExerciseTime           string `json:"exercise_time" validate:"required"`
	Experience             string `json:"experience" validate:"required"`
	FamilySituation        string `json:"family_situation" validate:"required"`
	GroomingPreference     string `json:"grooming_preference" validate:"required"`
	SizePreference         string `json:"size_preference" validate:"required"`
	EnergyPreference       string `json:"energy_preference" validate:"required"`
	TrainabilityImportance string `json:"trainability_importance" validate:"required"`
}

// Validate checks that all eight questions carry an answer.
func (q *QuizAnswer) Validate() error {
	validate := validator.New()
	return validate.Struct(q)
}

// MatchResult is one ranked breed recommendation produced for a quiz
// submission. MatchPercentage is always in [60,98]; a result set holds
// exactly five entries sorted descending by percentage.
type MatchResult struct {
	BreedName       string   `json:"breed_name"`
	MatchPercentage int      `json:"match_percentage"`
	Reasoning       string   `json:"reasoning"`
	Pros            []string `json:"pros"`
	Cons            []string `json:"cons"`
}

// QuizSubmission is a persisted quiz run: the answers given, the validated
// match results, and the identity they belong to. UserID and SessionID are
// mutually exclusive; exactly one is set.
type QuizSubmission struct {
	ID        int           `json:"id"`
	UserID    *uuid.UUID    `json:"user_id,omitempty"`
	SessionID *string       `json:"session_id,omitempty"`
	Answers   QuizAnswer    `json:"answers"`
	Results   []MatchResult `json:"results"`
	CreatedAt time.Time     `json:"created_at"`
}
