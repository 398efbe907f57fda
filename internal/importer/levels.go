package importer

import (
	"regexp"

	"skillmatrix/internal/workbook"
)

// levelCodePattern captures the token inside the first parenthesized group of
// a header label, e.g. "Engineer (E1)" -> "E1".
var levelCodePattern = regexp.MustCompile(`\(([^)]+)\)`)

// LevelColumn pairs a level code with the sheet column its ratings live in.
// The slice order defines the level positions used by every later stage.
type LevelColumn struct {
	Code   string
	Column int
}

// ExtractLevelColumns scans the header row of the self-assessment sheet at
// the layout's candidate columns and records every parenthesized level code
// in left-to-right order. An empty result is not an error: every rating cell
// will simply fail definition resolution and be dropped.
func ExtractLevelColumns(sheet workbook.Sheet, layout Layout) []LevelColumn {
	var out []LevelColumn
	for _, col := range layout.LevelColumns {
		label := sheet.Cell(layout.HeaderRow, col)
		match := levelCodePattern.FindStringSubmatch(label)
		if match == nil {
			continue
		}
		out = append(out, LevelColumn{Code: match[1], Column: col})
	}
	return out
}
