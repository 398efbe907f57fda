package importer

// CellAddress is a zero-based (row, column) position on a sheet.
type CellAddress struct {
	Row int
	Col int
}

// Block describes one vertical run of competencies on the assessment sheets:
// Count titles starting at StartRow, one every Stride rows.
type Block struct {
	StartRow int
	Count    int
	Stride   int
}

// AreaCell maps one competency-area title to its fixed heatmap cell.
type AreaCell struct {
	Area string
	Cell CellAddress
}

// Layout is the declarative description of the workbook template. The
// importer consumes only this value, so a template change is a data change,
// not a code change.
type Layout struct {
	SelfSheet    string
	ManagerSheet string
	HeatmapSheet string

	// HeaderRow holds the level labels; level codes sit in parentheses at
	// LevelColumns, left to right.
	HeaderRow    int
	LevelColumns []int

	// TitleColumn holds competency titles at each block anchor row. The
	// rating cell sits RatingRowOffset rows below the anchor at the level's
	// column; the free-text comment sits CommentColumnOffset columns to its
	// right.
	TitleColumn         int
	RatingRowOffset     int
	CommentColumnOffset int
	Blocks              []Block

	// Fixed heatmap cells: one per area plus the overall judgment.
	AreaCells   []AreaCell
	GeneralCell CellAddress

	// LegendCell anchors the rating-option legend on the heatmap sheet;
	// option titles fill the rows below it. Only the template writer uses it.
	LegendCell CellAddress
}

// DefaultLayout describes the template handed out to employees and managers:
// six level slots on even header columns, fifteen competencies in four blocks,
// and five fixed heatmap cells.
func DefaultLayout() Layout {
	return Layout{
		SelfSheet:    "Self assessment",
		ManagerSheet: "Manager assessment",
		HeatmapSheet: "Heatmap",

		HeaderRow:    0,
		LevelColumns: []int{1, 3, 5, 7, 9, 11},

		TitleColumn:         1,
		RatingRowOffset:     3,
		CommentColumnOffset: 1,
		Blocks: []Block{
			{StartRow: 7, Count: 5, Stride: 4},
			{StartRow: 28, Count: 4, Stride: 4},
			{StartRow: 45, Count: 3, Stride: 4},
			{StartRow: 58, Count: 3, Stride: 4},
		},

		AreaCells: []AreaCell{
			{Area: "Craftsmanship", Cell: CellAddress{Row: 4, Col: 1}},
			{Area: "Collaboration", Cell: CellAddress{Row: 5, Col: 1}},
			{Area: "Leadership", Cell: CellAddress{Row: 6, Col: 1}},
			{Area: "Impact", Cell: CellAddress{Row: 7, Col: 1}},
		},
		GeneralCell: CellAddress{Row: 2, Col: 1},
		LegendCell:  CellAddress{Row: 1, Col: 3},
	}
}
