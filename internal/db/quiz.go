package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/breedwise/breedwise/internal/types"
)

// CreateQuizSubmission stores a completed quiz run with its answers and
// validated match results as JSONB
func (db *DB) CreateQuizSubmission(ctx context.Context, submission *types.QuizSubmission) error {
	answers, err := json.Marshal(submission.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal quiz answers: %w", err)
	}
	results, err := json.Marshal(submission.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal quiz results: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO quiz_submissions (user_id, session_id, answers, results)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		submission.UserID, submission.SessionID, answers, results,
	).Scan(&submission.ID, &submission.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create quiz submission: %w", err)
	}
	return nil
}

// GetQuizSubmission retrieves one submission by ID, or nil if not found
func (db *DB) GetQuizSubmission(ctx context.Context, id int) (*types.QuizSubmission, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, session_id, answers, results, created_at
		 FROM quiz_submissions WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz submission: %w", err)
	}
	defer rows.Close()

	submissions, err := collectQuizSubmissions(rows)
	if err != nil {
		return nil, err
	}
	if len(submissions) == 0 {
		return nil, nil
	}
	return &submissions[0], nil
}

// ListQuizSubmissionsByUser returns an authenticated user's quiz history,
// newest first
func (db *DB) ListQuizSubmissionsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]types.QuizSubmission, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, session_id, answers, results, created_at
		 FROM quiz_submissions WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz submissions: %w", err)
	}
	defer rows.Close()

	return collectQuizSubmissions(rows)
}

// ListQuizSubmissionsBySession returns an anonymous session's quiz history,
// newest first
func (db *DB) ListQuizSubmissionsBySession(ctx context.Context, sessionID string, limit int) ([]types.QuizSubmission, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, session_id, answers, results, created_at
		 FROM quiz_submissions WHERE session_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz submissions: %w", err)
	}
	defer rows.Close()

	return collectQuizSubmissions(rows)
}

func collectQuizSubmissions(rows pgx.Rows) ([]types.QuizSubmission, error) {
	var submissions []types.QuizSubmission
	for rows.Next() {
		var s types.QuizSubmission
		var answers, results []byte
		if err := rows.Scan(&s.ID, &s.UserID, &s.SessionID, &answers, &results, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quiz submission: %w", err)
		}
		if err := json.Unmarshal(answers, &s.Answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal quiz answers: %w", err)
		}
		if err := json.Unmarshal(results, &s.Results); err != nil {
			return nil, fmt.Errorf("failed to unmarshal quiz results: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read quiz submissions: %w", err)
	}
	return submissions, nil
}
