package models

import (
	"strings"
	"time"
)

// Matrix is a named competency framework: levels, areas, competencies and
// rating options all hang off one matrix.
type Matrix struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Level is one rung in a matrix's seniority ladder, identified by a short code
// such as "E1".
type Level struct {
	ID       string `json:"id" db:"id"`
	MatrixID string `json:"matrixId" db:"matrix_id"`
	Code     string `json:"code" db:"code"`
	Title    string `json:"title" db:"title"`
	Position int    `json:"position" db:"position"`
}

// Area groups related competencies, e.g. "Craftsmanship".
type Area struct {
	ID       string `json:"id" db:"id"`
	MatrixID string `json:"matrixId" db:"matrix_id"`
	Title    string `json:"title" db:"title"`
	Position int    `json:"position" db:"position"`
}

// Competency is a skill assessed at every level of its matrix.
type Competency struct {
	ID       string `json:"id" db:"id"`
	MatrixID string `json:"matrixId" db:"matrix_id"`
	AreaID   string `json:"areaId" db:"area_id"`
	Title    string `json:"title" db:"title"`
	Position int    `json:"position" db:"position"`
}

// Definition pairs one competency with one level and carries the requirement
// text for that cell. Spreadsheet cells resolve to definitions through the
// (competency title, level code) composite key; no numeric ID appears in the
// workbook.
type Definition struct {
	ID           string `json:"id" db:"id"`
	MatrixID     string `json:"matrixId" db:"matrix_id"`
	CompetencyID string `json:"competencyId" db:"competency_id"`
	LevelID      string `json:"levelId" db:"level_id"`
	Requirement  string `json:"requirement" db:"requirement"`
}

// DefinitionKey is the composite lookup key for a definition within a matrix.
type DefinitionKey struct {
	CompetencyTitle string
	LevelCode       string
}

// RatingOption is a selectable assessment value scoped to one matrix.
// Spreadsheet text resolves against the trimmed, case-sensitive title.
type RatingOption struct {
	ID       string `json:"id" db:"id"`
	MatrixID string `json:"matrixId" db:"matrix_id"`
	Title    string `json:"title" db:"title"`
	Color    string `json:"color" db:"color"`
	Weight   int    `json:"weight" db:"weight"`
	Position int    `json:"position" db:"position"`
}

// OrgUnit is an organizational unit an employee belongs to. It must already
// exist when an import references it.
type OrgUnit struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Function is a job function, created on demand during import.
type Function struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Archetype is a role archetype, created on demand during import.
type Archetype struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Manager is the person giving the manager-side assessment.
type Manager struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email,omitempty" db:"email"`
}

// Employee is the person being assessed.
type Employee struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Email       string `json:"email,omitempty" db:"email"`
	OrgUnitID   string `json:"orgUnitId" db:"org_unit_id"`
	FunctionID  string `json:"functionId" db:"function_id"`
	ArchetypeID string `json:"archetypeId" db:"archetype_id"`
	ManagerID   string `json:"managerId" db:"manager_id"`
}

// Assignment links one employee to the matrix they are assessed against.
// At most one active assignment exists per employee.
type Assignment struct {
	ID         string `json:"id" db:"id"`
	EmployeeID string `json:"employeeId" db:"employee_id"`
	MatrixID   string `json:"matrixId" db:"matrix_id"`
	Active     bool   `json:"active" db:"active"`
}

// CurrentRating holds the latest assessment for one assignment-definition
// pair. The self side and the manager side are written by different actors
// and merge independently: writing one side never clobbers the other.
type CurrentRating struct {
	ID               string     `json:"id" db:"id"`
	AssignmentID     string     `json:"assignmentId" db:"assignment_id"`
	DefinitionID     string     `json:"definitionId" db:"definition_id"`
	SelfRatingID     *string    `json:"selfRatingId,omitempty" db:"self_rating_id"`
	SelfComment      *string    `json:"selfComment,omitempty" db:"self_comment"`
	SelfUpdatedAt    *time.Time `json:"selfUpdatedAt,omitempty" db:"self_updated_at"`
	ManagerID        *string    `json:"managerId,omitempty" db:"manager_id"`
	ManagerRatingID  *string    `json:"managerRatingId,omitempty" db:"manager_rating_id"`
	ManagerComment   *string    `json:"managerComment,omitempty" db:"manager_comment"`
	ManagerUpdatedAt *time.Time `json:"managerUpdatedAt,omitempty" db:"manager_updated_at"`
}

// GeneralScope names the overall (non-area) level assessment scope.
const GeneralScope = "general"

// LevelAssessment is an aggregate (main.sub) level judgment for one
// assignment, either overall ("general", AreaID nil) or for one area.
// Re-assessment overwrites in place; an import replaces the full set.
type LevelAssessment struct {
	ID           string  `json:"id" db:"id"`
	AssignmentID string  `json:"assignmentId" db:"assignment_id"`
	IsGeneral    bool    `json:"isGeneral" db:"is_general"`
	AreaID       *string `json:"areaId,omitempty" db:"area_id"`
	MainLevel    int     `json:"mainLevel" db:"main_level"`
	SubLevel     int     `json:"subLevel" db:"sub_level"`
}

// NormalizeLabel trims surrounding whitespace from a spreadsheet label.
// Matching against rating-option titles stays case-sensitive.
func NormalizeLabel(label string) string {
	return strings.TrimSpace(label)
}
