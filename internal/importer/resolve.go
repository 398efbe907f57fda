package importer

import (
	"skillmatrix/internal/models"
)

// DefinitionIndex maps (competency title, level code) to the definition ID
// within one matrix. It is precomputed once per import and is a pure lookup:
// a miss is decided by the caller, not here.
type DefinitionIndex map[models.DefinitionKey]string

// Resolve looks up the definition for a competency title and level code.
func (idx DefinitionIndex) Resolve(title, levelCode string) (string, bool) {
	id, ok := idx[models.DefinitionKey{CompetencyTitle: title, LevelCode: levelCode}]
	return id, ok
}

// RatingOptionIndex maps trimmed rating-option titles to option IDs within
// one matrix. Matching is exact and case-sensitive.
type RatingOptionIndex map[string]string

// Resolve matches a raw cell value against the known option titles.
func (idx RatingOptionIndex) Resolve(raw string) (string, bool) {
	id, ok := idx[models.NormalizeLabel(raw)]
	return id, ok
}
