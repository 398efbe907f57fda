package importer

import (
	"strings"

	"skillmatrix/internal/workbook"
)

// CompetencyAnchor is one competency title together with the row holding it.
// The rating row sits a fixed offset below the anchor.
type CompetencyAnchor struct {
	Title string
	Row   int
}

// ScanCompetencyBlocks walks the layout's fixed blocks and returns the
// competency titles present on the sheet, in template order. Blank slots are
// skipped; sparse blocks are tolerated.
func ScanCompetencyBlocks(sheet workbook.Sheet, layout Layout) []CompetencyAnchor {
	var out []CompetencyAnchor
	for _, block := range layout.Blocks {
		for i := 0; i < block.Count; i++ {
			row := block.StartRow + i*block.Stride
			title := strings.TrimSpace(sheet.Cell(row, layout.TitleColumn))
			if title == "" {
				continue
			}
			out = append(out, CompetencyAnchor{Title: title, Row: row})
		}
	}
	return out
}
