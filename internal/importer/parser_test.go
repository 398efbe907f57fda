package importer

import (
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"skillmatrix/internal/models"
	"skillmatrix/internal/workbook"
)

// buildWorkbookBytes renders sheet -> axis -> value into real xlsx bytes.
func buildWorkbookBytes(t *testing.T, sheets []string, cells map[string]map[string]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, name := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("create sheet: %v", err)
		}
		for axis, value := range cells[name] {
			if err := f.SetCellValue(name, axis, value); err != nil {
				t.Fatalf("set cell %s!%s: %v", name, axis, err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestParseWorkedExample(t *testing.T) {
	layout := DefaultLayout()
	data := buildWorkbookBytes(t,
		[]string{layout.SelfSheet, layout.ManagerSheet, layout.HeatmapSheet},
		map[string]map[string]any{
			layout.SelfSheet: {
				"B1":  "Engineer (E1)",
				"D1":  "Senior Engineer (E3)",
				"B8":  "Coding & Testing",
				"B11": "Proficient",
			},
			layout.HeatmapSheet: {
				"B3": "E4.3",
			},
		})
	wb, err := workbook.Read(data)
	if err != nil {
		t.Fatalf("read workbook: %v", err)
	}

	defs := DefinitionIndex{
		{CompetencyTitle: "Coding & Testing", LevelCode: "E1"}: "def-42",
	}
	opts := RatingOptionIndex{"Proficient": "opt-p"}
	diag := NewDiag(nil)
	parser := Parser{Layout: layout, Diag: diag}

	result, err := parser.Parse(wb, defs, opts)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(result.Levels) != 2 || result.Levels[0].Code != "E1" || result.Levels[1].Code != "E3" {
		t.Fatalf("unexpected levels: %+v", result.Levels)
	}
	if len(result.Competencies) != 1 || result.Competencies[0].Row != 7 {
		t.Fatalf("unexpected competencies: %+v", result.Competencies)
	}
	if len(result.Ratings) != 1 {
		t.Fatalf("expected E3 pair dropped, got %d entries", len(result.Ratings))
	}
	entry := result.Ratings[0]
	if entry.DefinitionID != "def-42" || entry.SelfRatingID != "opt-p" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if len(result.Assessments) != 1 || result.Assessments[0] != (models.ParsedLevelAssessment{
		Scope: models.GeneralScope, MainLevel: 4, SubLevel: 3,
	}) {
		t.Fatalf("unexpected assessments: %+v", result.Assessments)
	}
	found := false
	for _, line := range diag.Lines() {
		if strings.Contains(line, "E3") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected diagnostic for dropped E3 pair, got %v", diag.Lines())
	}
}

func TestParseMissingManagerSheetIsFatal(t *testing.T) {
	layout := DefaultLayout()
	data := buildWorkbookBytes(t, []string{layout.SelfSheet}, nil)
	wb, err := workbook.Read(data)
	if err != nil {
		t.Fatalf("read workbook: %v", err)
	}
	parser := Parser{Layout: layout, Diag: NewDiag(nil)}
	_, err = parser.Parse(wb, DefinitionIndex{}, RatingOptionIndex{})
	var missing *workbook.MissingSheetError
	if !errors.As(err, &missing) || missing.Name != layout.ManagerSheet {
		t.Fatalf("expected missing manager sheet error, got %v", err)
	}
}

func TestParseWithoutLevelCodesDropsEverything(t *testing.T) {
	layout := DefaultLayout()
	data := buildWorkbookBytes(t,
		[]string{layout.SelfSheet, layout.ManagerSheet},
		map[string]map[string]any{
			layout.SelfSheet: {"B8": "Coding & Testing", "B11": "Proficient"},
		})
	wb, err := workbook.Read(data)
	if err != nil {
		t.Fatalf("read workbook: %v", err)
	}
	diag := NewDiag(nil)
	parser := Parser{Layout: layout, Diag: diag}
	result, err := parser.Parse(wb, DefinitionIndex{}, RatingOptionIndex{})
	if err != nil {
		t.Fatalf("expected header without codes to be non-fatal, got %v", err)
	}
	if len(result.Ratings) != 0 {
		t.Fatalf("expected no ratings without level codes, got %+v", result.Ratings)
	}
	if len(diag.Lines()) == 0 {
		t.Fatalf("expected diagnostic about missing level codes")
	}
}
