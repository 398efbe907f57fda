package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"skillmatrix/internal/models"
)

// UpsertSelfRating writes the self side of one (assignment, definition) pair.
// On conflict only the self columns change; a previously stored manager side
// is never touched.
func (q Querier) UpsertSelfRating(ctx context.Context, assignmentID, definitionID, ratingID, comment string) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO current_ratings (id, assignment_id, definition_id, self_rating_id, self_comment, self_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (assignment_id, definition_id) DO UPDATE SET
			self_rating_id  = EXCLUDED.self_rating_id,
			self_comment    = EXCLUDED.self_comment,
			self_updated_at = EXCLUDED.self_updated_at`,
		uuid.NewString(), assignmentID, definitionID,
		nullString(ratingID), nullString(comment), time.Now())
	if err != nil {
		return fmt.Errorf("upsert self rating: %w", err)
	}
	return nil
}

// UpsertManagerRating writes the manager side of one (assignment, definition)
// pair, leaving the self side untouched on conflict.
func (q Querier) UpsertManagerRating(ctx context.Context, assignmentID, definitionID, managerID, ratingID, comment string) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO current_ratings (id, assignment_id, definition_id, manager_id, manager_rating_id, manager_comment, manager_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (assignment_id, definition_id) DO UPDATE SET
			manager_id         = EXCLUDED.manager_id,
			manager_rating_id  = EXCLUDED.manager_rating_id,
			manager_comment    = EXCLUDED.manager_comment,
			manager_updated_at = EXCLUDED.manager_updated_at`,
		uuid.NewString(), assignmentID, definitionID,
		nullString(managerID), nullString(ratingID), nullString(comment), time.Now())
	if err != nil {
		return fmt.Errorf("upsert manager rating: %w", err)
	}
	return nil
}

// ReplaceLevelAssessments replaces the full set of level assessments for one
// assignment with the given rows. The set is written even when empty: scopes
// absent from the current run are deleted, not kept.
func (q Querier) ReplaceLevelAssessments(ctx context.Context, assignmentID string, rows []models.LevelAssessment) error {
	if _, err := q.db.ExecContext(ctx,
		`DELETE FROM level_assessments WHERE assignment_id = $1`, assignmentID); err != nil {
		return fmt.Errorf("clear level assessments: %w", err)
	}
	for _, row := range rows {
		if _, err := q.db.ExecContext(ctx, `
			INSERT INTO level_assessments (id, assignment_id, is_general, area_id, main_level, sub_level)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.NewString(), assignmentID, row.IsGeneral, row.AreaID, row.MainLevel, row.SubLevel); err != nil {
			return fmt.Errorf("insert level assessment: %w", err)
		}
	}
	return nil
}
