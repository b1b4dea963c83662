package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/breedwise/breedwise/internal/types"
)

const breedColumns = `id, source_id, name, breed_group, description, temperament, origin, life_span, image_url,
	 weight_min, weight_max, height_min, height_max,
	 energy_level, friendliness, grooming_needs, trainability, health_issues,
	 exercise_needs, shedding_level, barking_level,
	 good_with_children, good_with_other_dogs, good_with_cats, apartment_friendly,
	 ai_summary, pros_and_cons, created_at, updated_at`

// CreateBreed inserts a new breed profile. Breed names are unique
// case-insensitively; if a breed with the same name already exists the insert
// is a no-op and created is false.
func (db *DB) CreateBreed(ctx context.Context, breed *types.BreedProfile) (created bool, err error) {
	prosCons, err := marshalProsAndCons(breed.ProsAndCons)
	if err != nil {
		return false, err
	}

	var weightMin, weightMax, heightMin, heightMax *int
	if breed.WeightRange != nil {
		weightMin, weightMax = &breed.WeightRange.Min, &breed.WeightRange.Max
	}
	if breed.HeightRange != nil {
		heightMin, heightMax = &breed.HeightRange.Min, &breed.HeightRange.Max
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO breeds (source_id, name, breed_group, description, temperament, origin, life_span, image_url,
		                     weight_min, weight_max, height_min, height_max,
		                     energy_level, friendliness, grooming_needs, trainability, health_issues,
		                     exercise_needs, shedding_level, barking_level,
		                     good_with_children, good_with_other_dogs, good_with_cats, apartment_friendly,
		                     ai_summary, pros_and_cons)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		 ON CONFLICT (lower(name)) DO NOTHING
		 RETURNING id`,
		breed.SourceID, breed.Name, breed.BreedGroup, breed.Description, breed.Temperament,
		breed.Origin, breed.LifeSpan, breed.ImageURL,
		weightMin, weightMax, heightMin, heightMax,
		breed.Traits.EnergyLevel, breed.Traits.Friendliness, breed.Traits.GroomingNeeds,
		breed.Traits.Trainability, breed.Traits.HealthIssues, breed.Traits.ExerciseNeeds,
		breed.Traits.SheddingLevel, breed.Traits.BarkingLevel,
		breed.Flags.GoodWithChildren, breed.Flags.GoodWithOtherDogs, breed.Flags.GoodWithCats,
		breed.Flags.ApartmentFriendly,
		breed.AISummary, prosCons,
	).Scan(&breed.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Name already present
			return false, nil
		}
		return false, fmt.Errorf("failed to create breed: %w", err)
	}
	return true, nil
}

// GetBreedByID retrieves a breed by its ID, or nil if not found
func (db *DB) GetBreedByID(ctx context.Context, id int) (*types.BreedProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+breedColumns+` FROM breeds WHERE id = $1`, id)
	breed, err := scanBreed(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get breed: %w", err)
	}
	return breed, nil
}

// GetBreedByName retrieves a breed by name, case-insensitively
func (db *DB) GetBreedByName(ctx context.Context, name string) (*types.BreedProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+breedColumns+` FROM breeds WHERE lower(name) = lower($1)`, name)
	breed, err := scanBreed(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get breed by name: %w", err)
	}
	return breed, nil
}

// ListBreeds returns up to limit breeds in name order, skipping the first
// offset rows. A limit <= 0 returns all breeds.
func (db *DB) ListBreeds(ctx context.Context, limit, offset int) ([]types.BreedProfile, error) {
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + breedColumns + ` FROM breeds ORDER BY name OFFSET $1`
	args := []any{offset}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list breeds: %w", err)
	}
	defer rows.Close()

	return collectBreeds(rows)
}

// SearchBreeds returns breeds whose name contains the query, case-insensitively
func (db *DB) SearchBreeds(ctx context.Context, query string, limit int) ([]types.BreedProfile, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT `+breedColumns+` FROM breeds WHERE name ILIKE '%' || $1 || '%' ORDER BY name LIMIT $2`,
		query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search breeds: %w", err)
	}
	defer rows.Close()

	return collectBreeds(rows)
}

// GetBreedsByIDs retrieves the breeds with the given IDs, in name order.
// Missing IDs are simply absent from the result.
func (db *DB) GetBreedsByIDs(ctx context.Context, ids []int) ([]types.BreedProfile, error) {
	if len(ids) == 0 {
		return []types.BreedProfile{}, nil
	}
	rows, err := db.pool.Query(ctx,
		`SELECT `+breedColumns+` FROM breeds WHERE id = ANY($1) ORDER BY name`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get breeds by ids: %w", err)
	}
	defer rows.Close()

	return collectBreeds(rows)
}

// ListBreedsMissingNarrative returns breeds that still lack an AI summary or
// pros/cons, oldest first, for the enrichment backfill.
func (db *DB) ListBreedsMissingNarrative(ctx context.Context, limit int) ([]types.BreedProfile, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := db.pool.Query(ctx,
		`SELECT `+breedColumns+` FROM breeds
		 WHERE ai_summary IS NULL OR pros_and_cons IS NULL
		 ORDER BY id LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list breeds missing narrative: %w", err)
	}
	defer rows.Close()

	return collectBreeds(rows)
}

// UpdateBreedNarrative sets the AI-generated summary and pros/cons for a breed.
// Nil arguments leave the corresponding column untouched.
func (db *DB) UpdateBreedNarrative(ctx context.Context, id int, summary *string, prosCons *types.ProsAndCons) error {
	prosConsJSON, err := marshalProsAndCons(prosCons)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`UPDATE breeds
		 SET ai_summary = COALESCE($1, ai_summary),
		     pros_and_cons = COALESCE($2, pros_and_cons),
		     updated_at = NOW()
		 WHERE id = $3`,
		summary, prosConsJSON, id)
	if err != nil {
		return fmt.Errorf("failed to update breed narrative: %w", err)
	}
	return nil
}

// CountBreeds returns the number of breeds in the catalog
func (db *DB) CountBreeds(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM breeds`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count breeds: %w", err)
	}
	return count, nil
}

func marshalProsAndCons(pc *types.ProsAndCons) ([]byte, error) {
	if pc == nil {
		return nil, nil
	}
	data, err := json.Marshal(pc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pros and cons: %w", err)
	}
	return data, nil
}

func scanBreed(row pgx.Row) (*types.BreedProfile, error) {
	var b types.BreedProfile
	var weightMin, weightMax, heightMin, heightMax *int
	var prosCons []byte

	err := row.Scan(
		&b.ID, &b.SourceID, &b.Name, &b.BreedGroup, &b.Description, &b.Temperament,
		&b.Origin, &b.LifeSpan, &b.ImageURL,
		&weightMin, &weightMax, &heightMin, &heightMax,
		&b.Traits.EnergyLevel, &b.Traits.Friendliness, &b.Traits.GroomingNeeds,
		&b.Traits.Trainability, &b.Traits.HealthIssues, &b.Traits.ExerciseNeeds,
		&b.Traits.SheddingLevel, &b.Traits.BarkingLevel,
		&b.Flags.GoodWithChildren, &b.Flags.GoodWithOtherDogs, &b.Flags.GoodWithCats,
		&b.Flags.ApartmentFriendly,
		&b.AISummary, &prosCons, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if weightMin != nil && weightMax != nil {
		b.WeightRange = &types.Range{Min: *weightMin, Max: *weightMax}
	}
	if heightMin != nil && heightMax != nil {
		b.HeightRange = &types.Range{Min: *heightMin, Max: *heightMax}
	}
	if prosCons != nil {
		var pc types.ProsAndCons
		if err := json.Unmarshal(prosCons, &pc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal pros and cons: %w", err)
		}
		b.ProsAndCons = &pc
	}

	return &b, nil
}

func collectBreeds(rows pgx.Rows) ([]types.BreedProfile, error) {
	var breeds []types.BreedProfile
	for rows.Next() {
		b, err := scanBreed(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan breed: %w", err)
		}
		breeds = append(breeds, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read breeds: %w", err)
	}
	return breeds, nil
}
