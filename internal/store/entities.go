package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"skillmatrix/internal/models"
)

// MatrixByID loads one matrix, returning ErrNotFound when it does not exist.
func (q Querier) MatrixByID(ctx context.Context, id string) (models.Matrix, error) {
	var m models.Matrix
	err := q.db.QueryRowContext(ctx, `SELECT id, name FROM matrices WHERE id = $1`, id).
		Scan(&m.ID, &m.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Matrix{}, fmt.Errorf("matrix %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Matrix{}, fmt.Errorf("load matrix: %w", err)
	}
	return m, nil
}

// OrgUnitByName resolves an org unit by exact name. Org units are owned by
// the surrounding product and are never created by an import.
func (q Querier) OrgUnitByName(ctx context.Context, name string) (models.OrgUnit, error) {
	var unit models.OrgUnit
	err := q.db.QueryRowContext(ctx, `SELECT id, name FROM org_units WHERE name = $1`, name).
		Scan(&unit.ID, &unit.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.OrgUnit{}, fmt.Errorf("org unit %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return models.OrgUnit{}, fmt.Errorf("load org unit: %w", err)
	}
	return unit, nil
}

// EnsureFunction resolves a job function by name, creating it on demand.
func (q Querier) EnsureFunction(ctx context.Context, name string) (models.Function, error) {
	id, err := q.ensureNamed(ctx, "org_functions", name)
	return models.Function{ID: id, Name: name}, err
}

// EnsureArchetype resolves an archetype by name, creating it on demand.
func (q Querier) EnsureArchetype(ctx context.Context, name string) (models.Archetype, error) {
	id, err := q.ensureNamed(ctx, "archetypes", name)
	return models.Archetype{ID: id, Name: name}, err
}

// ensureNamed finds or creates a row in one of the name-keyed lookup tables.
// The table name is always a compile-time constant.
func (q Querier) ensureNamed(ctx context.Context, table, name string) (string, error) {
	var id string
	err := q.db.QueryRowContext(ctx, `SELECT id FROM `+table+` WHERE name = $1`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("load %s: %w", table, err)
	}
	id = uuid.NewString()
	if _, err := q.db.ExecContext(ctx, `INSERT INTO `+table+` (id, name) VALUES ($1, $2)`, id, name); err != nil {
		return "", fmt.Errorf("create %s: %w", table, err)
	}
	return id, nil
}

// EnsureManager resolves a manager, matching by email first and exact name
// second; name and email are refreshed on a match. A new manager is created
// when neither key matches.
func (q Querier) EnsureManager(ctx context.Context, name, email string) (models.Manager, error) {
	var m models.Manager
	if email != "" {
		err := q.db.QueryRowContext(ctx,
			`SELECT id, name, email FROM managers WHERE lower(email) = lower($1)`, email).
			Scan(&m.ID, &m.Name, &m.Email)
		if err == nil {
			return q.updateManager(ctx, m.ID, name, email)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return models.Manager{}, fmt.Errorf("load manager: %w", err)
		}
	}
	err := q.db.QueryRowContext(ctx,
		`SELECT id, name, email FROM managers WHERE name = $1`, name).
		Scan(&m.ID, &m.Name, &m.Email)
	if err == nil {
		return q.updateManager(ctx, m.ID, name, email)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Manager{}, fmt.Errorf("load manager: %w", err)
	}
	m = models.Manager{ID: uuid.NewString(), Name: name, Email: email}
	if _, err := q.db.ExecContext(ctx,
		`INSERT INTO managers (id, name, email) VALUES ($1, $2, $3)`, m.ID, m.Name, m.Email); err != nil {
		return models.Manager{}, fmt.Errorf("create manager: %w", err)
	}
	return m, nil
}

func (q Querier) updateManager(ctx context.Context, id, name, email string) (models.Manager, error) {
	if _, err := q.db.ExecContext(ctx,
		`UPDATE managers SET name = $2, email = CASE WHEN $3 = '' THEN email ELSE $3 END WHERE id = $1`,
		id, name, email); err != nil {
		return models.Manager{}, fmt.Errorf("update manager: %w", err)
	}
	return models.Manager{ID: id, Name: name, Email: email}, nil
}

// EmployeeParams carries the identity and links needed to resolve or create
// an employee during import.
type EmployeeParams struct {
	Name        string
	Email       string
	OrgUnitID   string
	FunctionID  string
	ArchetypeID string
	ManagerID   string
}

// EnsureEmployee resolves an employee, matching by email first and exact name
// second. On a match the org links and the name are refreshed; otherwise the
// employee is created.
func (q Querier) EnsureEmployee(ctx context.Context, p EmployeeParams) (models.Employee, error) {
	var id string
	if p.Email != "" {
		err := q.db.QueryRowContext(ctx,
			`SELECT id FROM employees WHERE lower(email) = lower($1)`, p.Email).Scan(&id)
		if err == nil {
			return q.updateEmployee(ctx, id, p)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, fmt.Errorf("load employee: %w", err)
		}
	}
	err := q.db.QueryRowContext(ctx, `SELECT id FROM employees WHERE name = $1`, p.Name).Scan(&id)
	if err == nil {
		return q.updateEmployee(ctx, id, p)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Employee{}, fmt.Errorf("load employee: %w", err)
	}
	id = uuid.NewString()
	if _, err := q.db.ExecContext(ctx,
		`INSERT INTO employees (id, name, email, org_unit_id, function_id, archetype_id, manager_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, p.Name, p.Email, p.OrgUnitID, p.FunctionID, p.ArchetypeID, p.ManagerID); err != nil {
		return models.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	return employeeFromParams(id, p), nil
}

func (q Querier) updateEmployee(ctx context.Context, id string, p EmployeeParams) (models.Employee, error) {
	if _, err := q.db.ExecContext(ctx,
		`UPDATE employees SET name = $2,
			email = CASE WHEN $3 = '' THEN email ELSE $3 END,
			org_unit_id = $4, function_id = $5, archetype_id = $6, manager_id = $7
		 WHERE id = $1`,
		id, p.Name, p.Email, p.OrgUnitID, p.FunctionID, p.ArchetypeID, p.ManagerID); err != nil {
		return models.Employee{}, fmt.Errorf("update employee: %w", err)
	}
	return employeeFromParams(id, p), nil
}

func employeeFromParams(id string, p EmployeeParams) models.Employee {
	return models.Employee{
		ID:          id,
		Name:        p.Name,
		Email:       p.Email,
		OrgUnitID:   p.OrgUnitID,
		FunctionID:  p.FunctionID,
		ArchetypeID: p.ArchetypeID,
		ManagerID:   p.ManagerID,
	}
}

// EnsureAssignment returns the employee's active assignment to the target
// matrix, creating it if absent. An active assignment to a different matrix
// is deactivated first; one active link per employee at a time.
func (q Querier) EnsureAssignment(ctx context.Context, employeeID, matrixID string) (models.Assignment, error) {
	var a models.Assignment
	err := q.db.QueryRowContext(ctx,
		`SELECT id, employee_id, matrix_id, active FROM assignments WHERE employee_id = $1 AND active`,
		employeeID).
		Scan(&a.ID, &a.EmployeeID, &a.MatrixID, &a.Active)
	switch {
	case err == nil && a.MatrixID == matrixID:
		return a, nil
	case err == nil:
		if _, err := q.db.ExecContext(ctx,
			`UPDATE assignments SET active = FALSE WHERE id = $1`, a.ID); err != nil {
			return models.Assignment{}, fmt.Errorf("deactivate assignment: %w", err)
		}
	case !errors.Is(err, sql.ErrNoRows):
		return models.Assignment{}, fmt.Errorf("load assignment: %w", err)
	}
	a = models.Assignment{ID: uuid.NewString(), EmployeeID: employeeID, MatrixID: matrixID, Active: true}
	if _, err := q.db.ExecContext(ctx,
		`INSERT INTO assignments (id, employee_id, matrix_id, active) VALUES ($1, $2, $3, TRUE)`,
		a.ID, a.EmployeeID, a.MatrixID); err != nil {
		return models.Assignment{}, fmt.Errorf("create assignment: %w", err)
	}
	return a, nil
}
