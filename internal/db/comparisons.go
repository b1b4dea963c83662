package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/breedwise/breedwise/internal/types"
)

// CreateComparison saves a named breed comparison for a user
func (db *DB) CreateComparison(ctx context.Context, comparison *types.Comparison) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO comparisons (user_id, name, breed_ids, is_public)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		comparison.UserID, comparison.Name, comparison.BreedIDs, comparison.IsPublic,
	).Scan(&comparison.ID, &comparison.CreatedAt, &comparison.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create comparison: %w", err)
	}
	return nil
}

// GetComparison retrieves a comparison by ID, or nil if not found.
// Private comparisons are only returned to their owner.
func (db *DB) GetComparison(ctx context.Context, id int, requesterID *uuid.UUID) (*types.Comparison, error) {
	var c types.Comparison
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, name, breed_ids, is_public, created_at, updated_at
		 FROM comparisons WHERE id = $1`, id,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.BreedIDs, &c.IsPublic, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get comparison: %w", err)
	}

	if !c.IsPublic && (requesterID == nil || *requesterID != c.UserID) {
		return nil, nil
	}
	return &c, nil
}

// ListComparisonsByUser returns a user's saved comparisons, newest first
func (db *DB) ListComparisonsByUser(ctx context.Context, userID uuid.UUID) ([]types.Comparison, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, breed_ids, is_public, created_at, updated_at
		 FROM comparisons WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comparisons: %w", err)
	}
	defer rows.Close()

	var comparisons []types.Comparison
	for rows.Next() {
		var c types.Comparison
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.BreedIDs, &c.IsPublic, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comparison: %w", err)
		}
		comparisons = append(comparisons, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comparisons: %w", err)
	}
	return comparisons, nil
}

// DeleteComparison removes a comparison owned by the given user. It returns
// false when no owned comparison with that ID exists.
func (db *DB) DeleteComparison(ctx context.Context, id int, userID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM comparisons WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete comparison: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
