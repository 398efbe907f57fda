package importer

import (
	"skillmatrix/internal/models"
	"skillmatrix/internal/workbook"
)

// Parser turns an opened workbook into rating entries and level assessments
// according to one layout. It performs no writes; persistence is the
// merger's job.
type Parser struct {
	Layout Layout
	Diag   *Diag
}

// Result is everything one parse run extracted from the workbook.
type Result struct {
	Levels       []LevelColumn
	Competencies []CompetencyAnchor
	Ratings      []models.ParsedRatingEntry
	Assessments  []models.ParsedLevelAssessment
}

// Parse reads both mandatory assessment sheets and the optional heatmap
// sheet. A missing mandatory sheet aborts with *workbook.MissingSheetError;
// everything below that is recovered per cell and surfaced through the
// diagnostics collector.
func (p *Parser) Parse(wb *workbook.Workbook, defs DefinitionIndex, opts RatingOptionIndex) (Result, error) {
	self, err := wb.RequireSheet(p.Layout.SelfSheet)
	if err != nil {
		return Result{}, err
	}
	manager, err := wb.RequireSheet(p.Layout.ManagerSheet)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Levels:       ExtractLevelColumns(self, p.Layout),
		Competencies: ScanCompetencyBlocks(self, p.Layout),
	}
	if len(result.Levels) == 0 {
		p.Diag.Addf("no level codes found on header row of sheet %q", p.Layout.SelfSheet)
	}
	result.Ratings = ParseRatingCells(self, manager, p.Layout, result.Competencies, result.Levels, defs, opts, p.Diag)

	if heatmap, ok := wb.Sheet(p.Layout.HeatmapSheet); ok {
		result.Assessments = ParseHeatmap(heatmap, p.Layout, p.Diag)
	}
	return result, nil
}
