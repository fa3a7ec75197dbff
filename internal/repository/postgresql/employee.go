package postgresql

import (
	"context"
	"errors"

	"github.com/absenta-hr/leave-backend-go/internal/domain/employee"
	"github.com/absenta-hr/leave-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, department, role, hire_date, monthly_salary,
			active, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.FullName, &e.Department, &e.Role, &e.HireDate,
		&e.MonthlySalary, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return e, nil
}

// GetActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, department, role, hire_date, monthly_salary,
			active, created_at, updated_at
		FROM employees
		WHERE active = TRUE
		ORDER BY full_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// GetActiveByDepartment implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActiveByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, department, role, hire_date, monthly_salary,
			active, created_at, updated_at
		FROM employees
		WHERE active = TRUE AND department = $1
		ORDER BY full_name ASC
	`

	rows, err := q.Query(ctx, query, department)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmployees(rows)
}

func scanEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.ID, &e.FullName, &e.Department, &e.Role, &e.HireDate,
			&e.MonthlySalary, &e.Active, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
