package store

import (
	"context"
	"fmt"

	"skillmatrix/internal/importer"
	"skillmatrix/internal/models"
)

// DefinitionIndex builds the (competency title, level code) -> definition ID
// lookup for one matrix by joining definitions with their competencies and
// levels.
func (q Querier) DefinitionIndex(ctx context.Context, matrixID string) (importer.DefinitionIndex, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT c.title, l.code, d.id
		FROM definitions d
		JOIN competencies c ON c.id = d.competency_id
		JOIN levels l ON l.id = d.level_id
		WHERE d.matrix_id = $1`, matrixID)
	if err != nil {
		return nil, fmt.Errorf("load definitions: %w", err)
	}
	defer rows.Close()

	index := importer.DefinitionIndex{}
	for rows.Next() {
		var title, code, id string
		if err := rows.Scan(&title, &code, &id); err != nil {
			return nil, fmt.Errorf("scan definition: %w", err)
		}
		index[models.DefinitionKey{CompetencyTitle: title, LevelCode: code}] = id
	}
	return index, rows.Err()
}

// RatingOptionIndex builds the trimmed-title -> option ID lookup for one
// matrix.
func (q Querier) RatingOptionIndex(ctx context.Context, matrixID string) (importer.RatingOptionIndex, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT title, id FROM rating_options WHERE matrix_id = $1`, matrixID)
	if err != nil {
		return nil, fmt.Errorf("load rating options: %w", err)
	}
	defer rows.Close()

	index := importer.RatingOptionIndex{}
	for rows.Next() {
		var title, id string
		if err := rows.Scan(&title, &id); err != nil {
			return nil, fmt.Errorf("scan rating option: %w", err)
		}
		index[models.NormalizeLabel(title)] = id
	}
	return index, rows.Err()
}

// AreasByTitle maps area titles to IDs for one matrix, used to resolve
// heatmap scopes.
func (q Querier) AreasByTitle(ctx context.Context, matrixID string) (map[string]string, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT title, id FROM areas WHERE matrix_id = $1`, matrixID)
	if err != nil {
		return nil, fmt.Errorf("load areas: %w", err)
	}
	defer rows.Close()

	areas := map[string]string{}
	for rows.Next() {
		var title, id string
		if err := rows.Scan(&title, &id); err != nil {
			return nil, fmt.Errorf("scan area: %w", err)
		}
		areas[title] = id
	}
	return areas, rows.Err()
}

// MatrixBundle is the full read model of one matrix, as needed to render a
// workbook template.
type MatrixBundle struct {
	Matrix        models.Matrix
	Levels        []models.Level
	Areas         []models.Area
	Competencies  []models.Competency
	Definitions   []models.Definition
	RatingOptions []models.RatingOption
}

// MatrixBundle loads one matrix with all its levels, areas, competencies,
// definitions and rating options in template order.
func (q Querier) MatrixBundle(ctx context.Context, matrixID string) (MatrixBundle, error) {
	bundle := MatrixBundle{}
	matrix, err := q.MatrixByID(ctx, matrixID)
	if err != nil {
		return bundle, err
	}
	bundle.Matrix = matrix

	rows, err := q.db.QueryContext(ctx,
		`SELECT id, matrix_id, code, title, position FROM levels WHERE matrix_id = $1 ORDER BY position`, matrixID)
	if err != nil {
		return bundle, fmt.Errorf("load levels: %w", err)
	}
	for rows.Next() {
		var l models.Level
		if err := rows.Scan(&l.ID, &l.MatrixID, &l.Code, &l.Title, &l.Position); err != nil {
			rows.Close()
			return bundle, fmt.Errorf("scan level: %w", err)
		}
		bundle.Levels = append(bundle.Levels, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return bundle, err
	}

	rows, err = q.db.QueryContext(ctx,
		`SELECT id, matrix_id, title, position FROM areas WHERE matrix_id = $1 ORDER BY position`, matrixID)
	if err != nil {
		return bundle, fmt.Errorf("load areas: %w", err)
	}
	for rows.Next() {
		var a models.Area
		if err := rows.Scan(&a.ID, &a.MatrixID, &a.Title, &a.Position); err != nil {
			rows.Close()
			return bundle, fmt.Errorf("scan area: %w", err)
		}
		bundle.Areas = append(bundle.Areas, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return bundle, err
	}

	rows, err = q.db.QueryContext(ctx, `
		SELECT c.id, c.matrix_id, c.area_id, c.title, c.position
		FROM competencies c
		JOIN areas a ON a.id = c.area_id
		WHERE c.matrix_id = $1
		ORDER BY a.position, c.position`, matrixID)
	if err != nil {
		return bundle, fmt.Errorf("load competencies: %w", err)
	}
	for rows.Next() {
		var c models.Competency
		if err := rows.Scan(&c.ID, &c.MatrixID, &c.AreaID, &c.Title, &c.Position); err != nil {
			rows.Close()
			return bundle, fmt.Errorf("scan competency: %w", err)
		}
		bundle.Competencies = append(bundle.Competencies, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return bundle, err
	}

	rows, err = q.db.QueryContext(ctx,
		`SELECT id, matrix_id, competency_id, level_id, requirement FROM definitions WHERE matrix_id = $1`, matrixID)
	if err != nil {
		return bundle, fmt.Errorf("load definitions: %w", err)
	}
	for rows.Next() {
		var d models.Definition
		if err := rows.Scan(&d.ID, &d.MatrixID, &d.CompetencyID, &d.LevelID, &d.Requirement); err != nil {
			rows.Close()
			return bundle, fmt.Errorf("scan definition: %w", err)
		}
		bundle.Definitions = append(bundle.Definitions, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return bundle, err
	}

	rows, err = q.db.QueryContext(ctx,
		`SELECT id, matrix_id, title, color, weight, position FROM rating_options WHERE matrix_id = $1 ORDER BY position`, matrixID)
	if err != nil {
		return bundle, fmt.Errorf("load rating options: %w", err)
	}
	for rows.Next() {
		var o models.RatingOption
		if err := rows.Scan(&o.ID, &o.MatrixID, &o.Title, &o.Color, &o.Weight, &o.Position); err != nil {
			rows.Close()
			return bundle, fmt.Errorf("scan rating option: %w", err)
		}
		bundle.RatingOptions = append(bundle.RatingOptions, o)
	}
	rows.Close()
	return bundle, rows.Err()
}
