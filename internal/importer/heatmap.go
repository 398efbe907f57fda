package importer

import (
	"math"
	"regexp"
	"strconv"

	"skillmatrix/internal/models"
	"skillmatrix/internal/workbook"
)

// levelValuePattern matches the textual heatmap encodings: "4,3", "4.3",
// "E4.3" (the leading E is optional and case-insensitive).
var levelValuePattern = regexp.MustCompile(`^(?i)e?(\d+)[.,](\d+)$`)

// ParseLevelValue decodes one heatmap cell value into a (main, sub) level
// pair. Textual forms are tried first; anything else that parses as a number
// v becomes floor(v) and round((v-floor(v))*10). Unknown encodings report
// ok=false.
func ParseLevelValue(raw string) (mainLevel, subLevel int, ok bool) {
	value := models.NormalizeLabel(raw)
	if value == "" {
		return 0, 0, false
	}
	if match := levelValuePattern.FindStringSubmatch(value); match != nil {
		mainLevel, _ = strconv.Atoi(match[1])
		subLevel, _ = strconv.Atoi(match[2])
		return mainLevel, subLevel, true
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, 0, false
	}
	mainLevel = int(math.Floor(v))
	subLevel = int(math.Round((v - math.Floor(v)) * 10))
	return mainLevel, subLevel, true
}

// ParseHeatmap reads the fixed aggregate cells from the heatmap sheet: one
// value per competency area plus the overall judgment. Each cell fails
// independently; an undecodable value skips only its own scope.
func ParseHeatmap(sheet workbook.Sheet, layout Layout, diag *Diag) []models.ParsedLevelAssessment {
	var out []models.ParsedLevelAssessment
	for _, area := range layout.AreaCells {
		raw := sheet.Cell(area.Cell.Row, area.Cell.Col)
		mainLevel, subLevel, ok := ParseLevelValue(raw)
		if !ok {
			if models.NormalizeLabel(raw) != "" {
				diag.Addf("heatmap value %q for area %q matches no known encoding, skipped", raw, area.Area)
			}
			continue
		}
		out = append(out, models.ParsedLevelAssessment{Scope: area.Area, MainLevel: mainLevel, SubLevel: subLevel})
	}
	raw := sheet.Cell(layout.GeneralCell.Row, layout.GeneralCell.Col)
	if mainLevel, subLevel, ok := ParseLevelValue(raw); ok {
		out = append(out, models.ParsedLevelAssessment{Scope: models.GeneralScope, MainLevel: mainLevel, SubLevel: subLevel})
	} else if models.NormalizeLabel(raw) != "" {
		diag.Addf("heatmap value %q for the general cell matches no known encoding, skipped", raw)
	}
	return out
}
