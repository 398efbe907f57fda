package importer

import (
	"skillmatrix/internal/models"
	"skillmatrix/internal/workbook"
)

// ParseRatingCells crosses every competency anchor with every level column
// and reads the rating/comment cell pair from both assessment sheets. A pair
// whose definition cannot be resolved is dropped with a diagnostic; the rest
// of the import continues.
func ParseRatingCells(
	self, manager workbook.Sheet,
	layout Layout,
	anchors []CompetencyAnchor,
	levels []LevelColumn,
	defs DefinitionIndex,
	opts RatingOptionIndex,
	diag *Diag,
) []models.ParsedRatingEntry {
	var out []models.ParsedRatingEntry
	for _, anchor := range anchors {
		for _, level := range levels {
			definitionID, ok := defs.Resolve(anchor.Title, level.Code)
			if !ok {
				diag.Addf("no definition for competency %q at level %q, cell pair dropped", anchor.Title, level.Code)
				continue
			}
			entry := models.ParsedRatingEntry{
				CompetencyTitle: anchor.Title,
				LevelCode:       level.Code,
				DefinitionID:    definitionID,
			}
			row := anchor.Row + layout.RatingRowOffset
			entry.SelfRatingID, entry.SelfComment = readCellPair(self, row, level.Column, layout, opts)
			entry.ManagerRatingID, entry.ManagerComment = readCellPair(manager, row, level.Column, layout, opts)
			out = append(out, entry)
		}
	}
	return out
}

// readCellPair classifies one rating/comment cell pair. The rating cell must
// match a known option title exactly (after trimming); unmatched non-empty
// text there is narrative, never an unresolved rating. The comment cell is
// kept only when non-empty and not itself an option title, so a rating label
// that strayed into the comment column is never mistaken for narrative text.
func readCellPair(sheet workbook.Sheet, row, col int, layout Layout, opts RatingOptionIndex) (ratingID, comment string) {
	raw := models.NormalizeLabel(sheet.Cell(row, col))
	if id, ok := opts.Resolve(raw); ok {
		ratingID = id
	} else if raw != "" {
		comment = raw
	}
	if text := models.NormalizeLabel(sheet.Cell(row, col+layout.CommentColumnOffset)); text != "" {
		if _, isOption := opts.Resolve(text); !isOption {
			comment = text
		}
	}
	return ratingID, comment
}
