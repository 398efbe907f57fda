package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"skillmatrix/internal/importer"
	"skillmatrix/internal/store"
)

// ExportService renders the assessment workbook template for a matrix, so
// spreadsheets handed out offline match the layout the importer expects.
type ExportService struct {
	Store  *store.Store
	Layout importer.Layout
}

// NewExportService wires an export service with the default workbook layout.
func NewExportService(st *store.Store) *ExportService {
	return &ExportService{Store: st, Layout: importer.DefaultLayout()}
}

// Template produces the empty workbook for one matrix as xlsx bytes.
func (s *ExportService) Template(ctx context.Context, matrixID string) ([]byte, error) {
	bundle, err := s.Store.MatrixBundle(ctx, matrixID)
	if err != nil {
		return nil, err
	}
	return BuildTemplate(bundle, s.Layout)
}

// BuildTemplate renders a matrix bundle into the template workbook: level
// labels on the header row, competency titles at the block anchors with the
// requirement text one row below, and the heatmap skeleton with a rating
// legend. It is the dual of the importer and reads the same layout.
func BuildTemplate(bundle store.MatrixBundle, layout importer.Layout) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", layout.SelfSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{layout.ManagerSheet, layout.HeatmapSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}
	}

	levels := bundle.Levels
	if len(levels) > len(layout.LevelColumns) {
		levels = levels[:len(layout.LevelColumns)]
	}
	requirements := make(map[[2]string]string, len(bundle.Definitions))
	for _, d := range bundle.Definitions {
		requirements[[2]string{d.CompetencyID, d.LevelID}] = d.Requirement
	}

	for _, sheet := range []string{layout.SelfSheet, layout.ManagerSheet} {
		for i, level := range levels {
			label := fmt.Sprintf("%s (%s)", level.Title, level.Code)
			if err := setCell(f, sheet, layout.HeaderRow, layout.LevelColumns[i], label); err != nil {
				return nil, err
			}
		}
		slot := 0
		for _, block := range layout.Blocks {
			for i := 0; i < block.Count && slot < len(bundle.Competencies); i++ {
				competency := bundle.Competencies[slot]
				slot++
				row := block.StartRow + i*block.Stride
				if err := setCell(f, sheet, row, layout.TitleColumn, competency.Title); err != nil {
					return nil, err
				}
				for j, level := range levels {
					requirement := requirements[[2]string{competency.ID, level.ID}]
					if requirement == "" {
						continue
					}
					if err := setCell(f, sheet, row+1, layout.LevelColumns[j], requirement); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	if err := setCell(f, layout.HeatmapSheet, layout.GeneralCell.Row, layout.GeneralCell.Col-1, "Overall"); err != nil {
		return nil, err
	}
	for _, area := range layout.AreaCells {
		if err := setCell(f, layout.HeatmapSheet, area.Cell.Row, area.Cell.Col-1, area.Area); err != nil {
			return nil, err
		}
	}
	if len(bundle.RatingOptions) > 0 {
		if err := setCell(f, layout.HeatmapSheet, layout.LegendCell.Row, layout.LegendCell.Col, "Rating options"); err != nil {
			return nil, err
		}
		for i, option := range bundle.RatingOptions {
			if err := setCell(f, layout.HeatmapSheet, layout.LegendCell.Row+1+i, layout.LegendCell.Col, option.Title); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, sheet string, row, col int, value string) error {
	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmt.Errorf("cell address (%d,%d): %w", row, col, err)
	}
	if err := f.SetCellValue(sheet, axis, value); err != nil {
		return fmt.Errorf("set cell %s!%s: %w", sheet, axis, err)
	}
	return nil
}
