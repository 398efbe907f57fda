package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"skillmatrix/internal/importer"
	"skillmatrix/internal/metrics"
	"skillmatrix/internal/models"
	"skillmatrix/internal/store"
	"skillmatrix/internal/workbook"
)

// ErrMissingField reports a required import field absent from the request.
// It is fatal before any parsing begins.
var ErrMissingField = errors.New("missing required field")

// ImportService drives one spreadsheet import end to end: entity resolution,
// parsing, and both merge phases, all inside a single transaction.
type ImportService struct {
	Store   *store.Store
	Layout  importer.Layout
	Log     logrus.FieldLogger
	Metrics *metrics.Metrics
}

// NewImportService wires an import service over the store with the default
// workbook layout.
func NewImportService(st *store.Store, log logrus.FieldLogger) *ImportService {
	return &ImportService{Store: st, Layout: importer.DefaultLayout(), Log: log}
}

// ImportRequest carries one uploaded workbook plus the org identifiers from
// the multipart submission. Emails are optional and, when present, become the
// preferred resolution keys for employee and manager.
type ImportRequest struct {
	Workbook      []byte
	MatrixID      string
	EmployeeName  string
	EmployeeEmail string
	ManagerName   string
	ManagerEmail  string
	Function      string
	OrgUnit       string
	Archetype     string
}

// Validate checks the required fields before any parsing begins.
func (r ImportRequest) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"matrixId", r.MatrixID},
		{"employeeName", r.EmployeeName},
		{"managerName", r.ManagerName},
		{"function", r.Function},
		{"orgUnit", r.OrgUnit},
		{"archetype", r.Archetype},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}
	if len(r.Workbook) == 0 {
		return fmt.Errorf("%w: file", ErrMissingField)
	}
	return nil
}

// Run performs one import. Fatal conditions (missing sheet, unknown org unit
// or matrix, write failures) abort with an error and roll the transaction
// back; everything else is recovered per cell and reported through the
// diagnostic log in the result.
func (s *ImportService) Run(ctx context.Context, req ImportRequest) (*models.ImportResult, error) {
	started := time.Now()
	result, err := s.run(ctx, req)
	if s.Metrics != nil {
		outcome := "success"
		if err != nil {
			outcome = "failure"
		}
		s.Metrics.ImportsTotal.WithLabelValues(outcome).Inc()
		s.Metrics.ImportSeconds.Observe(time.Since(started).Seconds())
	}
	return result, err
}

func (s *ImportService) run(ctx context.Context, req ImportRequest) (*models.ImportResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	wb, err := workbook.Read(req.Workbook)
	if err != nil {
		return nil, err
	}
	// Mandatory sheets are checked before the transaction opens so a bad
	// workbook aborts before any writes.
	if _, err := wb.RequireSheet(s.Layout.SelfSheet); err != nil {
		return nil, err
	}
	if _, err := wb.RequireSheet(s.Layout.ManagerSheet); err != nil {
		return nil, err
	}

	diag := importer.NewDiag(s.Log)
	var saved []models.ParsedLevelAssessment

	err = s.Store.Atomic(ctx, func(tx *store.Tx) error {
		matrix, err := tx.MatrixByID(ctx, req.MatrixID)
		if err != nil {
			return err
		}
		orgUnit, err := tx.OrgUnitByName(ctx, req.OrgUnit)
		if err != nil {
			return err
		}
		function, err := tx.EnsureFunction(ctx, req.Function)
		if err != nil {
			return err
		}
		archetype, err := tx.EnsureArchetype(ctx, req.Archetype)
		if err != nil {
			return err
		}
		manager, err := tx.EnsureManager(ctx, req.ManagerName, req.ManagerEmail)
		if err != nil {
			return err
		}
		employee, err := tx.EnsureEmployee(ctx, store.EmployeeParams{
			Name:        req.EmployeeName,
			Email:       req.EmployeeEmail,
			OrgUnitID:   orgUnit.ID,
			FunctionID:  function.ID,
			ArchetypeID: archetype.ID,
			ManagerID:   manager.ID,
		})
		if err != nil {
			return err
		}
		assignment, err := tx.EnsureAssignment(ctx, employee.ID, matrix.ID)
		if err != nil {
			return err
		}

		defs, err := tx.DefinitionIndex(ctx, matrix.ID)
		if err != nil {
			return err
		}
		opts, err := tx.RatingOptionIndex(ctx, matrix.ID)
		if err != nil {
			return err
		}
		areas, err := tx.AreasByTitle(ctx, matrix.ID)
		if err != nil {
			return err
		}

		parser := importer.Parser{Layout: s.Layout, Diag: diag}
		parsed, err := parser.Parse(wb, defs, opts)
		if err != nil {
			return err
		}
		if s.Metrics != nil {
			dropped := len(parsed.Competencies)*len(parsed.Levels) - len(parsed.Ratings)
			if dropped > 0 {
				s.Metrics.DroppedEntries.Add(float64(dropped))
			}
		}

		for _, entry := range parsed.Ratings {
			if entry.Empty() {
				continue
			}
			if entry.HasSelf() {
				if err := tx.UpsertSelfRating(ctx, assignment.ID, entry.DefinitionID, entry.SelfRatingID, entry.SelfComment); err != nil {
					return err
				}
			}
			if entry.HasManager() {
				if err := tx.UpsertManagerRating(ctx, assignment.ID, entry.DefinitionID, manager.ID, entry.ManagerRatingID, entry.ManagerComment); err != nil {
					return err
				}
			}
		}

		rows, kept := buildAssessmentRows(assignment.ID, parsed.Assessments, areas, diag)
		// Always written, also when empty: scopes absent from this run must
		// be deleted (replace-by-run).
		if err := tx.ReplaceLevelAssessments(ctx, assignment.ID, rows); err != nil {
			return err
		}
		saved = kept
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &models.ImportResult{Log: diag.Lines(), Assessments: saved}, nil
}

// buildAssessmentRows resolves parsed heatmap scopes against the matrix's
// areas. Unknown area titles are skipped with a diagnostic; the general scope
// needs no resolution.
func buildAssessmentRows(
	assignmentID string,
	parsed []models.ParsedLevelAssessment,
	areas map[string]string,
	diag *importer.Diag,
) ([]models.LevelAssessment, []models.ParsedLevelAssessment) {
	var rows []models.LevelAssessment
	var kept []models.ParsedLevelAssessment
	for _, a := range parsed {
		row := models.LevelAssessment{
			AssignmentID: assignmentID,
			MainLevel:    a.MainLevel,
			SubLevel:     a.SubLevel,
		}
		if a.Scope == models.GeneralScope {
			row.IsGeneral = true
		} else {
			areaID, ok := areas[a.Scope]
			if !ok {
				diag.Addf("matrix has no area %q, heatmap value skipped", a.Scope)
				continue
			}
			row.AreaID = &areaID
		}
		rows = append(rows, row)
		kept = append(kept, a)
	}
	return rows, kept
}
