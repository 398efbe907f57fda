package importer

import (
	"strings"
	"testing"

	"skillmatrix/internal/models"
)

func testIndexes() (DefinitionIndex, RatingOptionIndex) {
	defs := DefinitionIndex{
		{CompetencyTitle: "Coding & Testing", LevelCode: "E1"}: "def-42",
	}
	opts := RatingOptionIndex{"Proficient": "opt-p", "Expert": "opt-e"}
	return defs, opts
}

func TestParseRatingCellsResolvesRatingAndComment(t *testing.T) {
	layout := DefaultLayout()
	self := gridSheet(map[[2]int]string{
		{10, 1}: "  Proficient ",
		{10, 2}: " needs more pairing ",
	})
	manager := gridSheet(map[[2]int]string{
		{10, 1}: "Expert",
	})
	defs, opts := testIndexes()
	diag := NewDiag(nil)

	entries := ParseRatingCells(self, manager, layout,
		[]CompetencyAnchor{{Title: "Coding & Testing", Row: 7}},
		[]LevelColumn{{Code: "E1", Column: 1}},
		defs, opts, diag)

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.DefinitionID != "def-42" {
		t.Fatalf("unexpected definition: %q", entry.DefinitionID)
	}
	if entry.SelfRatingID != "opt-p" {
		t.Fatalf("expected trimmed rating label to resolve, got %q", entry.SelfRatingID)
	}
	if entry.SelfComment != "needs more pairing" {
		t.Fatalf("unexpected self comment: %q", entry.SelfComment)
	}
	if entry.ManagerRatingID != "opt-e" || entry.ManagerComment != "" {
		t.Fatalf("unexpected manager side: %+v", entry)
	}
}

func TestParseRatingCellsDropsUnresolvedDefinition(t *testing.T) {
	layout := DefaultLayout()
	self := gridSheet(map[[2]int]string{{10, 3}: "Proficient"})
	defs, opts := testIndexes()
	diag := NewDiag(nil)

	entries := ParseRatingCells(self, self, layout,
		[]CompetencyAnchor{{Title: "Coding & Testing", Row: 7}},
		[]LevelColumn{{Code: "E1", Column: 1}, {Code: "E9", Column: 3}},
		defs, opts, diag)

	if len(entries) != 1 {
		t.Fatalf("expected unresolved pair to be dropped, got %d entries", len(entries))
	}
	if entries[0].LevelCode != "E1" {
		t.Fatalf("expected surviving entry for E1, got %q", entries[0].LevelCode)
	}
	lines := diag.Lines()
	if len(lines) != 1 || !strings.Contains(lines[0], "E9") {
		t.Fatalf("expected one diagnostic naming the dropped level, got %v", lines)
	}
}

func TestParseRatingCellsOptionLabelInCommentColumnIsNotAComment(t *testing.T) {
	layout := DefaultLayout()
	self := gridSheet(map[[2]int]string{
		{10, 1}: "Proficient",
		{10, 2}: "Expert",
	})
	defs, opts := testIndexes()

	entries := ParseRatingCells(self, gridSheet(nil), layout,
		[]CompetencyAnchor{{Title: "Coding & Testing", Row: 7}},
		[]LevelColumn{{Code: "E1", Column: 1}},
		defs, opts, NewDiag(nil))

	if entries[0].SelfComment != "" {
		t.Fatalf("expected option label in comment column to be ignored, got %q", entries[0].SelfComment)
	}
}

func TestParseRatingCellsUnknownLabelBecomesComment(t *testing.T) {
	layout := DefaultLayout()
	self := gridSheet(map[[2]int]string{{10, 1}: "Superb"})
	defs, opts := testIndexes()

	entries := ParseRatingCells(self, gridSheet(nil), layout,
		[]CompetencyAnchor{{Title: "Coding & Testing", Row: 7}},
		[]LevelColumn{{Code: "E1", Column: 1}},
		defs, opts, NewDiag(nil))

	if entries[0].SelfRatingID != "" {
		t.Fatalf("expected unknown label not to resolve, got %q", entries[0].SelfRatingID)
	}
	if entries[0].SelfComment != "Superb" {
		t.Fatalf("expected unknown label to be kept as comment, got %q", entries[0].SelfComment)
	}
}

func TestParseRatingCellsEmptyPairIsEmptyEntry(t *testing.T) {
	layout := DefaultLayout()
	defs, opts := testIndexes()

	entries := ParseRatingCells(gridSheet(nil), gridSheet(nil), layout,
		[]CompetencyAnchor{{Title: "Coding & Testing", Row: 7}},
		[]LevelColumn{{Code: "E1", Column: 1}},
		defs, opts, NewDiag(nil))

	if len(entries) != 1 || !entries[0].Empty() {
		t.Fatalf("expected one empty entry, got %+v", entries)
	}
}

func TestParsedRatingEntrySides(t *testing.T) {
	entry := models.ParsedRatingEntry{SelfComment: "x"}
	if !entry.HasSelf() || entry.HasManager() || entry.Empty() {
		t.Fatalf("unexpected side flags: %+v", entry)
	}
}
