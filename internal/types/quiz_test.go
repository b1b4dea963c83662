package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validAnswer() QuizAnswer {
	return QuizAnswer{
		LivingSituation:        "apartment",
		ExerciseTime:           "30-60 minutes",
		Experience:             "first-time owner",
		FamilySituation:        "young children",
		GroomingPreference:     "low maintenance",
		SizePreference:         "medium",
		EnergyPreference:       "moderate",
		TrainabilityImportance: "very important",
	}
}

func TestQuizAnswerValidate(t *testing.T) {
	t.Run("all fields present", func(t *testing.T) {
		q := validAnswer()
		assert.NoError(t, q.Validate())
	})

	t.Run("each missing field fails", func(t *testing.T) {
		mutations := map[string]func(*QuizAnswer){
			"living_situation":        func(q *QuizAnswer) { q.LivingSituation = "" },
			"exercise_time":           func(q *QuizAnswer) { q.ExerciseTime = "" },
			"experience":              func(q *QuizAnswer) { q.Experience = "" },
			"family_situation":        func(q *QuizAnswer) { q.FamilySituation = "" },
			"grooming_preference":     func(q *QuizAnswer) { q.GroomingPreference = "" },
			"size_preference":         func(q *QuizAnswer) { q.SizePreference = "" },
			"energy_preference":       func(q *QuizAnswer) { q.EnergyPreference = "" },
			"trainability_importance": func(q *QuizAnswer) { q.TrainabilityImportance = "" },
		}
		for field, mutate := range mutations {
			q := validAnswer()
			mutate(&q)
			assert.Error(t, q.Validate(), "expected validation failure when %s is empty", field)
		}
	})
}
