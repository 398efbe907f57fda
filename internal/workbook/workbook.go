package workbook

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidWorkbook reports upload bytes that are not a readable xlsx file.
// It is a user-input failure, not a server fault.
var ErrInvalidWorkbook = errors.New("invalid workbook")

// Workbook is an uploaded spreadsheet exposed as named, row-major cell grids.
type Workbook struct {
	Sheets []Sheet
}

// Sheet holds one worksheet as ordered rows and columns. Numeric cells carry
// their formatted string value; absent cells are empty strings.
type Sheet struct {
	Name string
	Rows [][]string
}

// MissingSheetError reports a mandatory sheet absent from the workbook. It is
// fatal: the import aborts before any writes.
type MissingSheetError struct {
	Name string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("workbook is missing sheet %q", e.Name)
}

// Read parses raw xlsx bytes into an in-memory workbook.
func Read(data []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, Sheet{Name: name, Rows: rows})
	}
	return wb, nil
}

// Sheet retrieves a sheet by its exact name.
func (wb *Workbook) Sheet(name string) (Sheet, bool) {
	for _, sheet := range wb.Sheets {
		if sheet.Name == name {
			return sheet, true
		}
	}
	return Sheet{}, false
}

// RequireSheet retrieves a mandatory sheet, returning *MissingSheetError when
// it is absent.
func (wb *Workbook) RequireSheet(name string) (Sheet, error) {
	sheet, ok := wb.Sheet(name)
	if !ok {
		return Sheet{}, &MissingSheetError{Name: name}
	}
	return sheet, nil
}

// Cell returns the raw value at a zero-based (row, column) position, or the
// empty string when the position lies outside the stored grid.
func (s Sheet) Cell(row, col int) string {
	if row < 0 || row >= len(s.Rows) {
		return ""
	}
	if col < 0 || col >= len(s.Rows[row]) {
		return ""
	}
	return s.Rows[row][col]
}
